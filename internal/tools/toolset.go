package tools

import (
	"fmt"
	"strings"
	"time"

	"medspa/internal/availability"
	"medspa/internal/booking"
	"medspa/internal/catalog"
	"medspa/internal/clients"
)

// Toolset bundles the services the receptionist agent tools act on.
type Toolset struct {
	bookings booking.BookingService
	clients  clients.ClientService
	catalog  catalog.CatalogService
	avail    availability.AvailabilityService
}

// NewRegistryWithTools builds the full receptionist toolset: appointment
// management, client records, the service catalog, staff, availability and
// daily reporting.
func NewRegistryWithTools(
	bookingSvc booking.BookingService,
	clientSvc clients.ClientService,
	catalogSvc catalog.CatalogService,
	availSvc availability.AvailabilityService,
) *Registry {
	ts := &Toolset{
		bookings: bookingSvc,
		clients:  clientSvc,
		catalog:  catalogSvc,
		avail:    availSvc,
	}

	r := NewRegistry()
	ts.registerAppointmentTools(r)
	ts.registerClientTools(r)
	ts.registerCatalogTools(r)
	ts.registerScheduleTools(r)
	return r
}

func rule(ch string, n int) string {
	return strings.Repeat(ch, n) + "\n"
}

// endClock returns the HH:MM end of an interval starting at start.
func endClock(start string, minutes int) string {
	t, err := time.Parse("15:04", start)
	if err != nil {
		return start
	}
	return t.Add(time.Duration(minutes) * time.Minute).Format("15:04")
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
