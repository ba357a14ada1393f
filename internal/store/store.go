package store

import "medspa/internal/model"

// Collection names double as the on-disk document names.
const (
	CollectionAppointments = "appointments"
	CollectionClients      = "clients"
	CollectionServices     = "services"
	CollectionStaff        = "staff"
)

// Display ID prefixes, kept from the legacy data for compatibility.
const (
	PrefixAppointment = "APT"
	PrefixClient      = "CL"
	PrefixService     = "SVC"
	PrefixStaff       = "STF"
)

// Store bundles the four entity collections and the ID sequence over one
// backend. Services receive it by injection so tests can run on a
// MemoryBackend.
type Store struct {
	Appointments *Collection[model.Appointment]
	Clients      *Collection[model.Client]
	Services     *Collection[model.Service]
	Staff        *Collection[model.StaffMember]
	Seq          *Sequence
}

func New(backend Backend) *Store {
	return &Store{
		Appointments: NewCollection[model.Appointment](backend, CollectionAppointments),
		Clients:      NewCollection[model.Client](backend, CollectionClients),
		Services:     NewCollection[model.Service](backend, CollectionServices),
		Staff:        NewCollection[model.StaffMember](backend, CollectionStaff),
		Seq:          NewSequence(backend),
	}
}
