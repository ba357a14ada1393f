package availability

import (
	"fmt"
	"time"

	"medspa/internal/model"
	"medspa/internal/store"
	apperrors "medspa/pkg/errors"
)

// Slot is a candidate appointment start time for one staff member.
type Slot struct {
	Time      string `json:"time"`
	StaffID   string `json:"staff_id"`
	StaffName string `json:"staff_name"`
}

// Options tune the slot walk. Zero values fall back to the legacy
// defaults: 30-minute granularity, 60-minute candidate duration.
type Options struct {
	// ServiceDurationMin is the candidate appointment's duration. The
	// legacy overlap rule ignores it; only Strict mode uses it.
	ServiceDurationMin int
	// IntervalMin is the slot granularity.
	IntervalMin int
	// StaffID restricts the walk to one staff member.
	StaffID string
	// Strict upgrades the start-instant overlap test to full
	// interval-interval overlap against existing appointments.
	Strict bool
}

const (
	DefaultServiceDurationMin = 60
	DefaultIntervalMin        = 30
)

// ComputeSlots walks each eligible staff member's working window for the
// date in fixed steps and returns the starts that do not collide with that
// member's scheduled appointments. Results are ordered staff-then-time,
// staff in ascending ID order. The returned string is the weekday name.
//
// A slot must start before closing time; whether its duration also fits
// before closing is deliberately not checked, for parity with the legacy
// behaviour.
func ComputeSlots(
	date string,
	roster map[string]model.StaffMember,
	appointments map[string]model.Appointment,
	opts Options,
) ([]Slot, string, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, "", apperrors.InvalidInput("Invalid date format. Use YYYY-MM-DD")
	}
	dayName := day.Weekday().String()

	if opts.ServiceDurationMin <= 0 {
		opts.ServiceDurationMin = DefaultServiceDurationMin
	}
	if opts.IntervalMin <= 0 {
		opts.IntervalMin = DefaultIntervalMin
	}

	staffIDs := make([]string, 0, len(roster))
	if opts.StaffID != "" {
		member, ok := roster[opts.StaffID]
		if !ok || !member.WorksOn(dayName) {
			return nil, dayName, apperrors.NotAvailable(
				fmt.Sprintf("Staff member %s is not available on %ss", opts.StaffID, dayName))
		}
		staffIDs = append(staffIDs, opts.StaffID)
	} else {
		for _, id := range store.SortedIDs(roster) {
			if roster[id].WorksOn(dayName) {
				staffIDs = append(staffIDs, id)
			}
		}
	}

	slots := make([]Slot, 0)
	for _, staffID := range staffIDs {
		member := roster[staffID]

		start, err := clockMinutes(member.Hours.Start)
		if err != nil {
			continue
		}
		end, err := clockMinutes(member.Hours.End)
		if err != nil {
			continue
		}

		busy := scheduledFor(appointments, staffID, date)

		for t := start; t < end; t += opts.IntervalMin {
			if conflicts(t, opts.ServiceDurationMin, busy, opts.Strict) {
				continue
			}
			slots = append(slots, Slot{
				Time:      formatClock(t),
				StaffID:   staffID,
				StaffName: member.Name,
			})
		}
	}

	return slots, dayName, nil
}

// HasConflict reports whether a [start, start+duration) interval collides
// with any of the staff member's scheduled appointments on the date. This
// is the full interval-interval test used by strict booking.
func HasConflict(
	appointments map[string]model.Appointment,
	staffID, date, startClock string,
	durationMin int,
) (bool, error) {
	start, err := clockMinutes(startClock)
	if err != nil {
		return false, apperrors.InvalidInput("Invalid time format. Use HH:MM")
	}
	for _, apt := range scheduledFor(appointments, staffID, date) {
		if start < apt.end && apt.start < start+durationMin {
			return true, nil
		}
	}
	return false, nil
}

type interval struct {
	start, end int
}

func scheduledFor(appointments map[string]model.Appointment, staffID, date string) []interval {
	busy := make([]interval, 0)
	for _, apt := range appointments {
		if apt.StaffID != staffID || apt.Date != date || apt.Status != model.StatusScheduled {
			continue
		}
		start, err := clockMinutes(apt.Time)
		if err != nil {
			continue
		}
		busy = append(busy, interval{start: start, end: start + apt.DurationMinutes})
	}
	return busy
}

func conflicts(slotStart, slotDuration int, busy []interval, strict bool) bool {
	for _, b := range busy {
		if strict {
			if slotStart < b.end && b.start < slotStart+slotDuration {
				return true
			}
		} else if b.start <= slotStart && slotStart < b.end {
			return true
		}
	}
	return false
}

func clockMinutes(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
