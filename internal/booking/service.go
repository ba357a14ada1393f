package booking

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"medspa/internal/availability"
	"medspa/internal/clients"
	"medspa/internal/events"
	"medspa/internal/model"
	"medspa/internal/store"
	"medspa/pkg/config"
	apperrors "medspa/pkg/errors"
	"medspa/pkg/logger"
	"medspa/pkg/sanitizer"
)

// DaySchedule is the full schedule report for one date.
type DaySchedule struct {
	Date         string
	DayLabel     string
	Appointments []model.Appointment
	TotalRevenue float64
}

type BookingService interface {
	// Book resolves a human-friendly request and never returns an error
	// for expected conditions; see Result.
	Book(ctx context.Context, req BookingRequest) *Result
	// CreateAppointment is the direct ID-based path used by agent tools.
	CreateAppointment(ctx context.Context, clientID, serviceID, staffID, date, timeStr, notes string) (*model.Appointment, error)
	Get(ctx context.Context, id string) (*model.Appointment, error)
	List(ctx context.Context, filter ListFilter) ([]model.Appointment, error)
	SetStatus(ctx context.Context, id, status, notes string) (*model.Appointment, error)
	Cancel(ctx context.Context, id, reason string) (*model.Appointment, error)
	DailySchedule(ctx context.Context, date string) (*DaySchedule, error)
}

type bookingService struct {
	store     *store.Store
	clients   clients.ClientService
	validator *BookingValidator
	publisher events.Publisher
	cfg       *config.Config
	log       *logger.Logger
}

func NewBookingService(
	st *store.Store,
	clientSvc clients.ClientService,
	validator *BookingValidator,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		store:     st,
		clients:   clientSvc,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
		log:       cfg.Log,
	}
}

func failure(message string) *Result {
	return &Result{Success: false, Message: message}
}

func (s *bookingService) Book(ctx context.Context, req BookingRequest) *Result {
	req.ServiceName = sanitizer.CleanText(req.ServiceName)
	req.ClientName = sanitizer.CleanText(req.ClientName)
	req.ClientPhone = sanitizer.CleanPhone(req.ClientPhone)
	req.ClientEmail = sanitizer.CleanEmail(req.ClientEmail)

	if msg := s.validator.Validate(req); msg != "" {
		return failure(msg)
	}

	services, err := s.store.Services.Load()
	if err != nil {
		s.log.Error("Failed to load services", "error", err)
		return failure("Error booking appointment: could not load the service catalog")
	}

	service, ok := resolveService(services, req.ServiceName)
	if !ok {
		return failure(fmt.Sprintf("Service '%s' not found", req.ServiceName))
	}

	// Client resolution happens before staff selection, so a brand-new
	// caller keeps their record even if no staff matches the service.
	client, _, err := s.clients.FindOrCreateByPhone(ctx, req.ClientName, req.ClientPhone, req.ClientEmail)
	if err != nil {
		s.log.Error("Failed to resolve client", "error", err)
		return failure("Error booking appointment: could not save the client record")
	}

	staffRoster, err := s.store.Staff.Load()
	if err != nil {
		s.log.Error("Failed to load staff", "error", err)
		return failure("Error booking appointment: could not load the staff roster")
	}

	staffID := req.StaffID
	if staffID == "" {
		for _, id := range store.SortedIDs(staffRoster) {
			if staffRoster[id].HasSpecialty(service.Category) {
				staffID = id
				break
			}
		}
	}
	member, ok := staffRoster[staffID]
	if staffID == "" || !ok {
		return failure("No staff available for this service")
	}

	apt, err := s.createAppointment(client.ID, client.Name, service, member, req.Date, req.Time, "Booked via voice AI")
	if err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok {
			return failure(appErr.Message)
		}
		s.log.Error("Failed to create appointment", "error", err)
		return failure("Error booking appointment: could not save the appointment")
	}

	if err := s.clients.RecordVisit(ctx, client.ID, service.Price); err != nil {
		s.log.Error("Failed to update client stats", "client_id", client.ID, "error", err)
	}

	if err := s.publisher.AppointmentCreated(ctx, *apt); err != nil {
		s.log.Warn("Failed to publish appointment event", "appointment_id", apt.ID, "error", err)
	}

	s.log.Info("Appointment booked",
		"appointment_id", apt.ID,
		"client_id", client.ID,
		"service_id", service.ID,
		"staff_id", member.ID,
		"date", req.Date,
		"time", req.Time,
	)

	return &Result{
		Success:       true,
		AppointmentID: apt.ID,
		Message:       fmt.Sprintf("Appointment booked successfully for %s", req.ClientName),
		ConfirmationDetails: &Confirmation{
			AppointmentID: apt.ID,
			Service:       service.Name,
			Date:          req.Date,
			Time:          req.Time,
			Provider:      member.Name,
			Price:         service.Price,
			Duration:      service.DurationMinutes,
			ClientName:    req.ClientName,
			ClientPhone:   req.ClientPhone,
		},
	}
}

// resolveService matches the identifier as a case-insensitive substring of
// a service name, first match in ascending ID order.
func resolveService(services map[string]model.Service, identifier string) (model.Service, bool) {
	q := strings.ToLower(identifier)
	for _, id := range store.SortedIDs(services) {
		if strings.Contains(strings.ToLower(services[id].Name), q) {
			return services[id], true
		}
	}
	return model.Service{}, false
}

func (s *bookingService) CreateAppointment(ctx context.Context, clientID, serviceID, staffID, date, timeStr, notes string) (*model.Appointment, error) {
	if !model.IsValidDate(date) {
		return nil, apperrors.InvalidInput("Invalid date format. Use YYYY-MM-DD")
	}
	if !model.IsValidClock(timeStr) {
		return nil, apperrors.InvalidInput("Invalid time format. Use HH:MM")
	}

	client, err := s.clients.Get(ctx, clientID)
	if err != nil {
		return nil, err
	}

	services, err := s.store.Services.Load()
	if err != nil {
		return nil, apperrors.Internal("Failed to load services", err)
	}
	service, ok := services[serviceID]
	if !ok {
		return nil, apperrors.NotFound("Service", serviceID)
	}

	staffRoster, err := s.store.Staff.Load()
	if err != nil {
		return nil, apperrors.Internal("Failed to load staff", err)
	}
	member, ok := staffRoster[staffID]
	if !ok {
		return nil, apperrors.NotFound("Staff member", staffID)
	}

	apt, err := s.createAppointment(client.ID, client.Name, service, member, date, timeStr, notes)
	if err != nil {
		return nil, err
	}

	if err := s.publisher.AppointmentCreated(ctx, *apt); err != nil {
		s.log.Warn("Failed to publish appointment event", "appointment_id", apt.ID, "error", err)
	}
	return apt, nil
}

// createAppointment inserts the record under the appointments lock. In
// strict mode the overlap check runs inside the same critical section, so
// check and commit cannot interleave with another in-process booking.
func (s *bookingService) createAppointment(
	clientID, clientName string,
	service model.Service,
	member model.StaffMember,
	date, timeStr, notes string,
) (*model.Appointment, error) {
	id, err := s.store.Seq.NextID(store.CollectionAppointments, store.PrefixAppointment)
	if err != nil {
		return nil, apperrors.Internal("Failed to allocate appointment ID", err)
	}

	apt := model.Appointment{
		ID:              id,
		ClientID:        clientID,
		ClientName:      clientName,
		ServiceID:       service.ID,
		ServiceName:     service.Name,
		StaffID:         member.ID,
		StaffName:       member.Name,
		Date:            date,
		Time:            timeStr,
		DurationMinutes: service.DurationMinutes,
		Price:           service.Price,
		Status:          model.StatusScheduled,
		Notes:           notes,
		CreatedAt:       time.Now().Format(time.RFC3339),
	}

	err = s.store.Appointments.Update(func(records map[string]model.Appointment) error {
		if s.cfg.StrictBooking {
			day, _ := time.Parse("2006-01-02", date)
			if !member.WorksOn(day.Weekday().String()) {
				return apperrors.NotAvailable(
					fmt.Sprintf("%s does not work on %ss", member.Name, day.Weekday().String()))
			}
			conflict, err := availability.HasConflict(records, member.ID, date, timeStr, service.DurationMinutes)
			if err != nil {
				return err
			}
			if conflict {
				return apperrors.Conflict(
					fmt.Sprintf("%s is already booked at %s on %s", member.Name, timeStr, date))
			}
		}
		records[id] = apt
		return nil
	})
	if err != nil {
		if _, ok := err.(*apperrors.AppError); ok {
			return nil, err
		}
		return nil, apperrors.Internal("Failed to save appointment", err)
	}

	return &apt, nil
}

func (s *bookingService) Get(_ context.Context, id string) (*model.Appointment, error) {
	appointments, err := s.store.Appointments.Load()
	if err != nil {
		return nil, apperrors.Internal("Failed to load appointments", err)
	}
	apt, ok := appointments[id]
	if !ok {
		return nil, apperrors.NotFound("Appointment", id)
	}
	return &apt, nil
}

// List returns matching appointments sorted by date then time.
func (s *bookingService) List(_ context.Context, filter ListFilter) ([]model.Appointment, error) {
	appointments, err := s.store.Appointments.Load()
	if err != nil {
		return nil, apperrors.Internal("Failed to load appointments", err)
	}

	out := make([]model.Appointment, 0, len(appointments))
	for _, apt := range appointments {
		if filter.Date != "" && apt.Date != filter.Date {
			continue
		}
		if filter.ClientID != "" && apt.ClientID != filter.ClientID {
			continue
		}
		if filter.Status != "" && apt.Status != filter.Status {
			continue
		}
		out = append(out, apt)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

// SetStatus applies a status transition. The recognized values are the
// only constraint; the store does not forbid re-transition.
func (s *bookingService) SetStatus(ctx context.Context, id, status, notes string) (*model.Appointment, error) {
	if !model.IsValidStatus(status) {
		return nil, apperrors.InvalidInput(
			"Invalid status. Must be one of: scheduled, completed, cancelled, no-show")
	}

	var updated model.Appointment
	err := s.store.Appointments.Update(func(records map[string]model.Appointment) error {
		apt, ok := records[id]
		if !ok {
			return apperrors.NotFound("Appointment", id)
		}
		apt.Status = status
		if notes != "" {
			apt.Notes = notes
		}
		apt.UpdatedAt = time.Now().Format(time.RFC3339)
		records[id] = apt
		updated = apt
		return nil
	})
	if err != nil {
		if _, ok := err.(*apperrors.AppError); ok {
			return nil, err
		}
		return nil, apperrors.Internal("Failed to update appointment", err)
	}

	if err := s.publisher.AppointmentStatusChanged(ctx, updated); err != nil {
		s.log.Warn("Failed to publish appointment event", "appointment_id", id, "error", err)
	}

	s.log.Info("Appointment status updated", "appointment_id", id, "status", status)
	return &updated, nil
}

// Cancel is a convenience wrapper around SetStatus with a formatted
// reason note.
func (s *bookingService) Cancel(ctx context.Context, id, reason string) (*model.Appointment, error) {
	note := "Cancelled"
	if reason != "" {
		note = "Cancellation reason: " + reason
	}
	return s.SetStatus(ctx, id, model.StatusCancelled, note)
}

func (s *bookingService) DailySchedule(ctx context.Context, date string) (*DaySchedule, error) {
	appointments, err := s.List(ctx, ListFilter{Date: date, Status: model.StatusScheduled})
	if err != nil {
		return nil, err
	}

	label := date
	if day, err := time.Parse("2006-01-02", date); err == nil {
		label = day.Format("Monday, January 02, 2006")
	}

	var revenue float64
	for _, apt := range appointments {
		revenue += apt.Price
	}

	return &DaySchedule{
		Date:         date,
		DayLabel:     label,
		Appointments: appointments,
		TotalRevenue: revenue,
	}, nil
}
