package catalog

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medspa/internal/model"
	"medspa/internal/store"
	"medspa/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard})
}

func newSeededStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New(store.NewMemoryBackend())
	require.NoError(t, EnsureDefaults(st, testLogger()))
	return st
}

func TestEnsureDefaultsSeedsOnlyOnce(t *testing.T) {
	st := newSeededStore(t)

	err := st.Services.Update(func(records map[string]model.Service) error {
		svc := records["SVC001"]
		svc.Price = 999
		records["SVC001"] = svc
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, EnsureDefaults(st, testLogger()))

	services, err := st.Services.Load()
	require.NoError(t, err)
	assert.Len(t, services, 7)
	assert.Equal(t, float64(999), services["SVC001"].Price)

	staff, err := st.Staff.Load()
	require.NoError(t, err)
	assert.Len(t, staff, 3)
}

func TestListServicesFiltersByCategory(t *testing.T) {
	svc := NewCatalogService(newSeededStore(t), testLogger())

	services, err := svc.ListServices(context.Background(), "injectables")
	require.NoError(t, err)

	require.Len(t, services, 2)
	assert.Equal(t, "Botox Treatment", services[0].Name)
	assert.Equal(t, "Dermal Fillers", services[1].Name)
}

func TestSearchServicesMatchesNameSubstring(t *testing.T) {
	svc := NewCatalogService(newSeededStore(t), testLogger())

	result, err := svc.SearchServices(context.Background(), "botox")
	require.NoError(t, err)

	require.True(t, result.Found)
	assert.Equal(t, "SVC001", result.Service.ID)
	assert.Empty(t, result.Note)
}

func TestSearchServicesFallsBackToCategory(t *testing.T) {
	svc := NewCatalogService(newSeededStore(t), testLogger())

	result, err := svc.SearchServices(context.Background(), "body")
	require.NoError(t, err)

	require.True(t, result.Found)
	assert.Equal(t, "SVC007", result.Service.ID)
	assert.Equal(t, "Found by category", result.Note)
}

func TestSearchServicesNoMatch(t *testing.T) {
	svc := NewCatalogService(newSeededStore(t), testLogger())

	result, err := svc.SearchServices(context.Background(), "tattoo removal")
	require.NoError(t, err)

	assert.False(t, result.Found)
	assert.Equal(t, "No service found matching 'tattoo removal'", result.Message)
}

func TestListStaffFiltersBySpecialty(t *testing.T) {
	svc := NewCatalogService(newSeededStore(t), testLogger())

	staff, err := svc.ListStaff(context.Background(), "Facials")
	require.NoError(t, err)

	require.Len(t, staff, 1)
	assert.Equal(t, "STF002", staff[0].ID)
}

func TestGetServiceNotFound(t *testing.T) {
	svc := NewCatalogService(newSeededStore(t), testLogger())

	_, err := svc.GetService(context.Background(), "SVC999")
	assert.Error(t, err)
}
