package main

import (
	"medspa/internal/availability"
	"medspa/internal/booking"
	"medspa/internal/catalog"
	"medspa/internal/clients"
	"medspa/internal/events"
	"medspa/internal/store"
	"medspa/internal/tools"
	"medspa/pkg/app"
	"medspa/pkg/config"
)

const ServiceName = "agent-tools"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Med Spa agent tool service")

	backend, err := store.NewFileBackend(cfg.DataDir)
	if err != nil {
		cfg.Log.Fatal("Failed to open data directory", "error", err)
	}
	st := store.New(backend)

	if err := catalog.EnsureDefaults(st, cfg.Log); err != nil {
		cfg.Log.Fatal("Failed to seed default data", "error", err)
	}

	registry := initRegistry(st, cfg)
	cfg.Log.Info("Tool registry initialized", "tools", len(registry.List()))

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(tools.NewHandler(registry, cfg.Log))
	serverApp.Run()
}

func initRegistry(st *store.Store, cfg *config.Config) *tools.Registry {
	catalogSvc := catalog.NewCatalogService(st, cfg.Log)
	clientSvc := clients.NewClientService(st, cfg.Log)
	availSvc := availability.NewAvailabilityService(st, cfg)
	publisher := events.NewPublisher(cfg)
	bookingSvc := booking.NewBookingService(st, clientSvc, booking.NewBookingValidator(), publisher, cfg)

	return tools.NewRegistryWithTools(bookingSvc, clientSvc, catalogSvc, availSvc)
}
