package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"medspa/internal/availability"
	"medspa/internal/booking"
	"medspa/internal/catalog"
	"medspa/internal/model"
	apperrors "medspa/pkg/errors"
	"medspa/pkg/httputil"
	"medspa/pkg/logger"
)

const apiVersion = "1.0.0"

// Handler is the voice-assistant REST surface. Every response body is
// written to be readable aloud by the caller's voice platform.
type Handler struct {
	catalog  catalog.CatalogService
	avail    availability.AvailabilityService
	bookings booking.BookingService
	log      *logger.Logger
}

func NewHandler(
	catalogSvc catalog.CatalogService,
	availSvc availability.AvailabilityService,
	bookingSvc booking.BookingService,
	log *logger.Logger,
) *Handler {
	return &Handler{
		catalog:  catalogSvc,
		avail:    availSvc,
		bookings: bookingSvc,
		log:      log,
	}
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/", h.Health)
	router.GET("/services", h.ListServices)
	router.GET("/services/search", h.SearchServices)
	router.GET("/availability/:date", h.Availability)
	router.POST("/book", h.Book)
	router.GET("/appointment/:id", h.GetAppointment)
	router.POST("/appointment/:id/cancel", h.CancelAppointment)
	router.GET("/staff/available", h.AvailableStaff)
	router.GET("/voice/greeting", h.Greeting)
	router.GET("/voice/services-summary", h.ServicesSummary)
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	httputil.WriteSuccess(w, map[string]string{
		"status":  "online",
		"service": "Med Spa Voice API",
		"version": apiVersion,
	})
}

func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	services, err := h.catalog.ListServices(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, services)
}

func (h *Handler) SearchServices(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query().Get("query")
	if query == "" {
		httputil.WriteError(w, apperrors.InvalidInput("query parameter is required"))
		return
	}

	result, err := h.catalog.SearchServices(r.Context(), query)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, result)
}

func (h *Handler) Availability(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	query := r.URL.Query()

	day, err := h.avail.Slots(r.Context(), ps.ByName("date"), query.Get("service_id"), query.Get("staff_id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, day)
}

// Book always answers 200: expected failures are carried in the result's
// success flag and message, matching the voice platform contract.
func (h *Handler) Book(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req booking.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("Rejected malformed booking request", "error", err)
		httputil.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	result := h.bookings.Book(r.Context(), req)
	httputil.WriteSuccess(w, result)
}

func (h *Handler) GetAppointment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	apt, err := h.bookings.Get(r.Context(), ps.ByName("id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, apt)
}

func (h *Handler) CancelAppointment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	reason := r.URL.Query().Get("reason")
	if reason == "" {
		reason = "Cancelled via phone"
	}

	apt, err := h.bookings.SetStatus(r.Context(), ps.ByName("id"), model.StatusCancelled, reason)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, map[string]any{
		"success":     true,
		"message":     fmt.Sprintf("Appointment %s cancelled", apt.ID),
		"appointment": apt,
	})
}

func (h *Handler) AvailableStaff(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	staff, err := h.catalog.ListStaff(r.Context(), r.URL.Query().Get("specialty"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, staff)
}

func (h *Handler) Greeting(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	httputil.WriteSuccess(w, map[string]string{
		"message": "Thank you for calling the med spa. I'm your AI assistant and I can help you " +
			"book treatments like Botox, dermal fillers, facials, laser hair removal, and more. " +
			"What treatment are you interested in today?",
	})
}

// ServicesSummary renders the catalog as one voice-friendly sentence,
// grouped by category in catalog order.
func (h *Handler) ServicesSummary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	services, err := h.catalog.ListServices(r.Context(), "")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	categories := make([]string, 0)
	byCategory := make(map[string][]string)
	for _, svc := range services {
		if _, ok := byCategory[svc.Category]; !ok {
			categories = append(categories, svc.Category)
		}
		byCategory[svc.Category] = append(byCategory[svc.Category],
			fmt.Sprintf("%s for $%.2f", svc.Name, svc.Price))
	}

	parts := make([]string, 0, len(categories))
	for _, cat := range categories {
		parts = append(parts, fmt.Sprintf("%s including %s", cat, strings.Join(byCategory[cat], ", ")))
	}

	httputil.WriteSuccess(w, map[string]string{
		"summary": "We offer: " + strings.Join(parts, "; "),
	})
}
