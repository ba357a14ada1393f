package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medspa/internal/model"
)

func TestFileBackendMissingCollectionReadsEmpty(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)

	data, err := backend.Read("appointments")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestFileBackendRoundTrip(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, backend.Write("clients", []byte(`{"CL0001":{}}`)))

	data, err := backend.Read("clients")
	require.NoError(t, err)
	assert.JSONEq(t, `{"CL0001":{}}`, string(data))
}

func TestCollectionLoadEmpty(t *testing.T) {
	col := NewCollection[model.Client](NewMemoryBackend(), CollectionClients)

	records, err := col.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCollectionUpdatePersists(t *testing.T) {
	backend := NewMemoryBackend()
	col := NewCollection[model.Client](backend, CollectionClients)

	err := col.Update(func(records map[string]model.Client) error {
		records["CL0001"] = model.Client{ID: "CL0001", Name: "Jane Doe", Phone: "555-0100"}
		return nil
	})
	require.NoError(t, err)

	reopened := NewCollection[model.Client](backend, CollectionClients)
	records, err := reopened.Load()
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", records["CL0001"].Name)
}

func TestCollectionUpdateErrorAbandonsWrite(t *testing.T) {
	col := NewCollection[model.Client](NewMemoryBackend(), CollectionClients)

	boom := errors.New("rejected")
	err := col.Update(func(records map[string]model.Client) error {
		records["CL0001"] = model.Client{ID: "CL0001"}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	records, err := col.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSortedIDs(t *testing.T) {
	records := map[string]model.Service{
		"SVC010": {},
		"SVC002": {},
		"SVC001": {},
	}
	assert.Equal(t, []string{"SVC001", "SVC002", "SVC010"}, SortedIDs(records))
}

func TestSequenceIssuesMonotonicIDs(t *testing.T) {
	seq := NewSequence(NewMemoryBackend())

	first, err := seq.NextID(CollectionAppointments, PrefixAppointment)
	require.NoError(t, err)
	second, err := seq.NextID(CollectionAppointments, PrefixAppointment)
	require.NoError(t, err)

	assert.Equal(t, "APT0001", first)
	assert.Equal(t, "APT0002", second)
}

func TestSequenceCountersAreIndependentAndSurviveReopen(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)

	seq := NewSequence(backend)
	_, err = seq.NextID(CollectionAppointments, PrefixAppointment)
	require.NoError(t, err)

	clientID, err := seq.NextID(CollectionClients, PrefixClient)
	require.NoError(t, err)
	assert.Equal(t, "CL0001", clientID)

	reopened := NewSequence(backend)
	aptID, err := reopened.NextID(CollectionAppointments, PrefixAppointment)
	require.NoError(t, err)
	assert.Equal(t, "APT0002", aptID)
}
