package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medspa/internal/availability"
	"medspa/internal/booking"
	"medspa/internal/catalog"
	"medspa/internal/clients"
	"medspa/internal/events"
	"medspa/internal/model"
	"medspa/internal/store"
	"medspa/pkg/config"
	"medspa/pkg/logger"
)

// 2026-09-01 is a Tuesday.
const tuesday = "2026-09-01"

func newTestRouter(t *testing.T) *httprouter.Router {
	t.Helper()

	log := logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard})
	st := store.New(store.NewMemoryBackend())
	require.NoError(t, catalog.EnsureDefaults(st, log))

	cfg := &config.Config{
		SlotIntervalMin:        30,
		DefaultSlotDurationMin: 60,
		MaxSlotsReturned:       10,
		Log:                    log,
	}

	catalogSvc := catalog.NewCatalogService(st, log)
	clientSvc := clients.NewClientService(st, log)
	availSvc := availability.NewAvailabilityService(st, cfg)
	bookingSvc := booking.NewBookingService(st, clientSvc, booking.NewBookingValidator(), events.NewPublisher(cfg), cfg)

	router := httprouter.New()
	NewHandler(catalogSvc, availSvc, bookingSvc, log).RegisterRoutes(router)
	return router
}

func doRequest(t *testing.T, router *httprouter.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "online", body["status"])
	assert.Equal(t, "Med Spa Voice API", body["service"])
}

func TestListServicesByCategory(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/services?category=Injectables", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var services []model.Service
	decode(t, rec, &services)
	require.Len(t, services, 2)
	assert.Equal(t, "Botox Treatment", services[0].Name)
}

func TestSearchServicesRequiresQuery(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/services/search", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchServicesFindsMatch(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/services/search?query=botox", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var result catalog.SearchResult
	decode(t, rec, &result)
	require.True(t, result.Found)
	assert.Equal(t, "SVC001", result.Service.ID)
}

func TestAvailabilityReturnsSlots(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/availability/"+tuesday, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var day availability.DayAvailability
	decode(t, rec, &day)
	assert.Equal(t, tuesday, day.Date)
	assert.Equal(t, "Tuesday", day.DayOfWeek)
	assert.Len(t, day.AvailableSlots, 10)
}

func TestAvailabilityBadDate(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/availability/not-a-date", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookAndCancelFlow(t *testing.T) {
	router := newTestRouter(t)

	body := `{
		"service_name": "botox",
		"date": "` + tuesday + `",
		"time": "10:00",
		"client_name": "Jane Doe",
		"client_phone": "555-0100"
	}`
	rec := doRequest(t, router, http.MethodPost, "/book", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var result booking.Result
	decode(t, rec, &result)
	require.True(t, result.Success)
	assert.Equal(t, "APT0001", result.AppointmentID)

	rec = doRequest(t, router, http.MethodGet, "/appointment/APT0001", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var apt model.Appointment
	decode(t, rec, &apt)
	assert.Equal(t, model.StatusScheduled, apt.Status)

	rec = doRequest(t, router, http.MethodPost, "/appointment/APT0001/cancel?reason=sick", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/appointment/APT0001", "")
	decode(t, rec, &apt)
	assert.Equal(t, model.StatusCancelled, apt.Status)
	assert.Equal(t, "sick", apt.Notes)
}

func TestBookFailureStillAnswers200(t *testing.T) {
	router := newTestRouter(t)

	body := `{
		"service_name": "unicorn wrap",
		"date": "` + tuesday + `",
		"time": "10:00",
		"client_name": "Jane Doe",
		"client_phone": "555-0100"
	}`
	rec := doRequest(t, router, http.MethodPost, "/book", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var result booking.Result
	decode(t, rec, &result)
	assert.False(t, result.Success)
	assert.Equal(t, "Service 'unicorn wrap' not found", result.Message)
}

func TestBookRejectsMalformedBody(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/book", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAppointmentNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/appointment/APT9999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAvailableStaffBySpecialty(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/staff/available?specialty=Facials", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var staff []model.StaffMember
	decode(t, rec, &staff)
	require.Len(t, staff, 1)
	assert.Equal(t, "STF002", staff[0].ID)
}

func TestServicesSummaryReadsAloud(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/voice/services-summary", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	assert.True(t, strings.HasPrefix(body["summary"], "We offer: "))
	assert.Contains(t, body["summary"], "Injectables including Botox Treatment for $400.00, Dermal Fillers for $650.00")
}
