package availability

import (
	"context"
	"sort"
	"time"

	"medspa/internal/model"
	"medspa/internal/store"
	"medspa/pkg/config"
	apperrors "medspa/pkg/errors"
)

// DayAvailability is the voice-facing answer for one date. Slots is capped
// by the caller's configuration for readability over the phone.
type DayAvailability struct {
	Date           string `json:"date"`
	DayOfWeek      string `json:"day_of_week"`
	AvailableSlots []Slot `json:"available_slots"`
}

// StaffDay is one staff member's schedule on a date, used by the
// check_availability report.
type StaffDay struct {
	Member       model.StaffMember
	Appointments []model.Appointment
}

type AvailabilityService interface {
	Slots(ctx context.Context, date, serviceID, staffID string) (*DayAvailability, error)
	DaySchedules(ctx context.Context, date, staffID string) ([]StaffDay, string, error)
}

type availabilityService struct {
	store *store.Store
	cfg   *config.Config
}

func NewAvailabilityService(st *store.Store, cfg *config.Config) AvailabilityService {
	return &availabilityService{store: st, cfg: cfg}
}

// Slots loads the current snapshots and runs the slot walk. An unknown
// serviceID silently falls back to the default duration, as the legacy
// endpoint did.
func (s *availabilityService) Slots(_ context.Context, date, serviceID, staffID string) (*DayAvailability, error) {
	staff, err := s.store.Staff.Load()
	if err != nil {
		return nil, apperrors.Internal("Failed to load staff", err)
	}
	appointments, err := s.store.Appointments.Load()
	if err != nil {
		return nil, apperrors.Internal("Failed to load appointments", err)
	}

	duration := s.cfg.DefaultSlotDurationMin
	if serviceID != "" {
		services, err := s.store.Services.Load()
		if err != nil {
			return nil, apperrors.Internal("Failed to load services", err)
		}
		if svc, ok := services[serviceID]; ok {
			duration = svc.DurationMinutes
		}
	}

	slots, dayName, err := ComputeSlots(date, staff, appointments, Options{
		ServiceDurationMin: duration,
		IntervalMin:        s.cfg.SlotIntervalMin,
		StaffID:            staffID,
		Strict:             s.cfg.StrictBooking,
	})
	if err != nil {
		return nil, err
	}

	if len(slots) > s.cfg.MaxSlotsReturned {
		slots = slots[:s.cfg.MaxSlotsReturned]
	}

	return &DayAvailability{
		Date:           date,
		DayOfWeek:      dayName,
		AvailableSlots: slots,
	}, nil
}

// DaySchedules returns, for each staff member working the date, their
// scheduled appointments sorted by time. An explicit staffID that does not
// work that weekday is NotAvailable.
func (s *availabilityService) DaySchedules(_ context.Context, date, staffID string) ([]StaffDay, string, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, "", apperrors.InvalidInput("Invalid date format. Use YYYY-MM-DD")
	}
	dayName := day.Weekday().String()

	staff, err := s.store.Staff.Load()
	if err != nil {
		return nil, "", apperrors.Internal("Failed to load staff", err)
	}
	appointments, err := s.store.Appointments.Load()
	if err != nil {
		return nil, "", apperrors.Internal("Failed to load appointments", err)
	}

	ids := make([]string, 0, len(staff))
	if staffID != "" {
		member, ok := staff[staffID]
		if !ok || !member.WorksOn(dayName) {
			return nil, dayName, apperrors.NotAvailable(
				"Staff member " + staffID + " is not available on " + dayName + "s")
		}
		ids = append(ids, staffID)
	} else {
		for _, id := range store.SortedIDs(staff) {
			if staff[id].WorksOn(dayName) {
				ids = append(ids, id)
			}
		}
	}

	out := make([]StaffDay, 0, len(ids))
	for _, id := range ids {
		byStaff := make([]model.Appointment, 0)
		for _, apt := range appointments {
			if apt.StaffID == id && apt.Date == date && apt.Status == model.StatusScheduled {
				byStaff = append(byStaff, apt)
			}
		}
		sort.Slice(byStaff, func(i, j int) bool { return byStaff[i].Time < byStaff[j].Time })
		out = append(out, StaffDay{Member: staff[id], Appointments: byStaff})
	}

	return out, dayName, nil
}
