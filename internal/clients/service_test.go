package clients

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medspa/internal/model"
	"medspa/internal/store"
	apperrors "medspa/pkg/errors"
	"medspa/pkg/logger"
)

func newTestService(t *testing.T) (ClientService, *store.Store) {
	t.Helper()
	st := store.New(store.NewMemoryBackend())
	log := logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard})
	return NewClientService(st, log), st
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Add(ctx, model.Client{Name: "Jane Doe", Phone: "555-0100"})
	require.NoError(t, err)
	second, err := svc.Add(ctx, model.Client{Name: "John Smith", Phone: "555-0101"})
	require.NoError(t, err)

	assert.Equal(t, "CL0001", first.ID)
	assert.Equal(t, "CL0002", second.ID)
	assert.NotEmpty(t, first.CreatedAt)
	assert.Zero(t, first.TotalVisits)
}

func TestAddRejectsInvalidRecord(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Add(context.Background(), model.Client{Name: "X", Phone: "1"})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestFindByPhoneReturnsNilWhenAbsent(t *testing.T) {
	svc, _ := newTestService(t)

	client, err := svc.FindByPhone(context.Background(), "555-9999")
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestFindOrCreateByPhoneDeduplicates(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, created, err := svc.FindOrCreateByPhone(ctx, "Jane Doe", "555-0100", "jane@example.com")
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := svc.FindOrCreateByPhone(ctx, "Janet Doe", "555-0100", "")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Jane Doe", second.Name)
}

func TestRecordVisitBumpsStats(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	client, _, err := svc.FindOrCreateByPhone(ctx, "Jane Doe", "555-0100", "")
	require.NoError(t, err)

	require.NoError(t, svc.RecordVisit(ctx, client.ID, 400))
	require.NoError(t, svc.RecordVisit(ctx, client.ID, 250))

	got, err := svc.Get(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalVisits)
	assert.Equal(t, 650.0, got.TotalSpent)
}

func TestListFiltersByNameOrEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, model.Client{Name: "Jane Doe", Phone: "555-0100", Email: "jane@example.com"})
	require.NoError(t, err)
	_, err = svc.Add(ctx, model.Client{Name: "Bob Ray", Phone: "555-0101", Email: "bob@example.com"})
	require.NoError(t, err)

	byName, err := svc.List(ctx, "jane")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Jane Doe", byName[0].Name)

	byEmail, err := svc.List(ctx, "bob@")
	require.NoError(t, err)
	require.Len(t, byEmail, 1)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Bob Ray", all[0].Name)
}

func TestHistoryNewestFirst(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	client, err := svc.Add(ctx, model.Client{Name: "Jane Doe", Phone: "555-0100"})
	require.NoError(t, err)

	err = st.Appointments.Update(func(records map[string]model.Appointment) error {
		records["APT0001"] = model.Appointment{ID: "APT0001", ClientID: client.ID, Date: "2026-09-01", Time: "10:00"}
		records["APT0002"] = model.Appointment{ID: "APT0002", ClientID: client.ID, Date: "2026-09-05", Time: "09:00"}
		records["APT0003"] = model.Appointment{ID: "APT0003", ClientID: "CL9999", Date: "2026-09-05", Time: "09:00"}
		return nil
	})
	require.NoError(t, err)

	history, err := svc.History(ctx, client.ID)
	require.NoError(t, err)

	require.Len(t, history, 2)
	assert.Equal(t, "APT0002", history[0].ID)
	assert.Equal(t, "APT0001", history[1].ID)
}
