package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medspa/internal/model"
	apperrors "medspa/pkg/errors"
)

// 2026-09-01 is a Tuesday, 2026-09-05 a Saturday, 2026-09-07 a Monday.
const (
	tuesday  = "2026-09-01"
	saturday = "2026-09-05"
	monday   = "2026-09-07"
)

func testRoster() map[string]model.StaffMember {
	return map[string]model.StaffMember{
		"STF002": {
			ID:            "STF002",
			Name:          "Sarah Johnson",
			Role:          "Licensed Aesthetician",
			Specialties:   []string{"Facials", "Skin Treatments"},
			AvailableDays: []string{"Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
			Hours:         model.WorkingHours{Start: "10:00", End: "18:00"},
		},
	}
}

func scheduled(id, staffID, date, clock string, duration int) model.Appointment {
	return model.Appointment{
		ID:              id,
		StaffID:         staffID,
		Date:            date,
		Time:            clock,
		DurationMinutes: duration,
		Status:          model.StatusScheduled,
	}
}

func slotTimes(slots []Slot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Time)
	}
	return out
}

func TestComputeSlotsExcludesBookedStarts(t *testing.T) {
	appointments := map[string]model.Appointment{
		"APT0001": scheduled("APT0001", "STF002", tuesday, "10:00", 60),
	}

	slots, dayName, err := ComputeSlots(tuesday, testRoster(), appointments, Options{})
	require.NoError(t, err)
	assert.Equal(t, "Tuesday", dayName)

	times := slotTimes(slots)
	assert.NotContains(t, times, "10:00")
	assert.NotContains(t, times, "10:30")
	assert.Contains(t, times, "11:00")

	// full window minus the two starts inside the booking
	assert.Len(t, slots, 14)
	for _, s := range slots {
		assert.GreaterOrEqual(t, s.Time, "10:00")
		assert.Less(t, s.Time, "18:00")
		assert.Equal(t, "STF002", s.StaffID)
		assert.Equal(t, "Sarah Johnson", s.StaffName)
	}
}

func TestComputeSlotsIgnoresCancelledAppointments(t *testing.T) {
	cancelled := scheduled("APT0001", "STF002", tuesday, "10:00", 60)
	cancelled.Status = model.StatusCancelled
	appointments := map[string]model.Appointment{"APT0001": cancelled}

	slots, _, err := ComputeSlots(tuesday, testRoster(), appointments, Options{})
	require.NoError(t, err)

	assert.Contains(t, slotTimes(slots), "10:00")
	assert.Len(t, slots, 16)
}

func TestComputeSlotsStrictModeBlocksRunIn(t *testing.T) {
	appointments := map[string]model.Appointment{
		"APT0001": scheduled("APT0001", "STF002", tuesday, "12:00", 60),
	}

	legacy, _, err := ComputeSlots(tuesday, testRoster(), appointments, Options{ServiceDurationMin: 60})
	require.NoError(t, err)
	assert.Contains(t, slotTimes(legacy), "11:30")

	strict, _, err := ComputeSlots(tuesday, testRoster(), appointments, Options{ServiceDurationMin: 60, Strict: true})
	require.NoError(t, err)

	times := slotTimes(strict)
	assert.NotContains(t, times, "11:30")
	assert.Contains(t, times, "11:00")
	assert.Contains(t, times, "13:00")
}

func TestComputeSlotsInvalidDate(t *testing.T) {
	_, _, err := ComputeSlots("09/01/2026", testRoster(), nil, Options{})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestComputeSlotsStaffNotWorkingThatDay(t *testing.T) {
	_, _, err := ComputeSlots(monday, testRoster(), nil, Options{StaffID: "STF002"})

	require.True(t, apperrors.IsCode(err, apperrors.CodeNotAvailable))
	appErr, _ := err.(*apperrors.AppError)
	assert.Equal(t, "Staff member STF002 is not available on Mondays", appErr.Message)
}

func TestComputeSlotsSkipsStaffOffThatDay(t *testing.T) {
	slots, dayName, err := ComputeSlots(monday, testRoster(), nil, Options{})
	require.NoError(t, err)

	assert.Equal(t, "Monday", dayName)
	assert.Empty(t, slots)
}

func TestHasConflict(t *testing.T) {
	appointments := map[string]model.Appointment{
		"APT0001": scheduled("APT0001", "STF002", tuesday, "10:00", 60),
	}

	overlap, err := HasConflict(appointments, "STF002", tuesday, "10:30", 60)
	require.NoError(t, err)
	assert.True(t, overlap)

	adjacent, err := HasConflict(appointments, "STF002", tuesday, "11:00", 60)
	require.NoError(t, err)
	assert.False(t, adjacent)

	otherStaff, err := HasConflict(appointments, "STF001", tuesday, "10:30", 60)
	require.NoError(t, err)
	assert.False(t, otherStaff)

	otherDay, err := HasConflict(appointments, "STF002", saturday, "10:30", 60)
	require.NoError(t, err)
	assert.False(t, otherDay)
}
