package availability

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medspa/internal/model"
	"medspa/internal/store"
	"medspa/pkg/config"
	"medspa/pkg/logger"
)

func newTestService(t *testing.T, maxSlots int) (AvailabilityService, *store.Store) {
	t.Helper()
	st := store.New(store.NewMemoryBackend())
	require.NoError(t, st.Staff.Save(testRoster()))

	cfg := &config.Config{
		SlotIntervalMin:        30,
		DefaultSlotDurationMin: 60,
		MaxSlotsReturned:       maxSlots,
		Log:                    logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard}),
	}
	return NewAvailabilityService(st, cfg), st
}

func TestSlotsCapsResultCount(t *testing.T) {
	svc, _ := newTestService(t, 10)

	day, err := svc.Slots(context.Background(), tuesday, "", "")
	require.NoError(t, err)

	assert.Equal(t, tuesday, day.Date)
	assert.Equal(t, "Tuesday", day.DayOfWeek)
	assert.Len(t, day.AvailableSlots, 10)
	assert.Equal(t, "10:00", day.AvailableSlots[0].Time)
}

func TestSlotsUnknownServiceFallsBackToDefaultDuration(t *testing.T) {
	svc, _ := newTestService(t, 50)

	day, err := svc.Slots(context.Background(), tuesday, "SVC999", "")
	require.NoError(t, err)
	assert.Len(t, day.AvailableSlots, 16)
}

func TestDaySchedulesListsWorkingStaffInOrder(t *testing.T) {
	svc, st := newTestService(t, 10)

	roster := testRoster()
	roster["STF001"] = model.StaffMember{
		ID:            "STF001",
		Name:          "Dr. Maria Rodriguez",
		Role:          "Medical Director",
		Specialties:   []string{"Injectables"},
		AvailableDays: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		Hours:         model.WorkingHours{Start: "09:00", End: "17:00"},
	}
	require.NoError(t, st.Staff.Save(roster))

	err := st.Appointments.Update(func(records map[string]model.Appointment) error {
		records["APT0002"] = scheduled("APT0002", "STF002", tuesday, "14:00", 60)
		records["APT0001"] = scheduled("APT0001", "STF002", tuesday, "10:00", 30)
		return nil
	})
	require.NoError(t, err)

	days, dayName, err := svc.DaySchedules(context.Background(), tuesday, "")
	require.NoError(t, err)

	assert.Equal(t, "Tuesday", dayName)
	require.Len(t, days, 2)
	assert.Equal(t, "STF001", days[0].Member.ID)
	assert.Empty(t, days[0].Appointments)

	require.Len(t, days[1].Appointments, 2)
	assert.Equal(t, "10:00", days[1].Appointments[0].Time)
	assert.Equal(t, "14:00", days[1].Appointments[1].Time)
}

func TestDaySchedulesRejectsStaffOffThatDay(t *testing.T) {
	svc, _ := newTestService(t, 10)

	_, _, err := svc.DaySchedules(context.Background(), monday, "STF002")
	assert.Error(t, err)
}
