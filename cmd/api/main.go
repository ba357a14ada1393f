package main

import (
	"medspa/internal/availability"
	"medspa/internal/booking"
	"medspa/internal/catalog"
	"medspa/internal/clients"
	"medspa/internal/events"
	"medspa/internal/httpapi"
	"medspa/internal/store"
	"medspa/pkg/app"
	"medspa/pkg/config"
)

const ServiceName = "voice-api"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Med Spa Voice API")

	backend, err := store.NewFileBackend(cfg.DataDir)
	if err != nil {
		cfg.Log.Fatal("Failed to open data directory", "error", err)
	}
	st := store.New(backend)

	if err := catalog.EnsureDefaults(st, cfg.Log); err != nil {
		cfg.Log.Fatal("Failed to seed default data", "error", err)
	}

	handler := initHandler(st, cfg)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handler)
	serverApp.Run()
}

func initHandler(st *store.Store, cfg *config.Config) *httpapi.Handler {
	catalogSvc := catalog.NewCatalogService(st, cfg.Log)
	clientSvc := clients.NewClientService(st, cfg.Log)
	availSvc := availability.NewAvailabilityService(st, cfg)
	publisher := events.NewPublisher(cfg)
	bookingSvc := booking.NewBookingService(st, clientSvc, booking.NewBookingValidator(), publisher, cfg)

	cfg.Log.Info("Services initialized", "data_dir", cfg.DataDir)
	return httpapi.NewHandler(catalogSvc, availSvc, bookingSvc, cfg.Log)
}
