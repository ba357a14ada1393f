package config

import "time"

const (
	DefaultDataDir = "data"

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultStrictBooking          = false
	DefaultSlotIntervalMin        = 30
	DefaultDefaultSlotDurationMin = 60
	DefaultMaxSlotsReturned       = 10

	DefaultKafkaTopic = "medspa.appointments"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)
