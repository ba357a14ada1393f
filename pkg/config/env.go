package config

const (
	EnvDataDir = "DATA_DIR"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvStrictBooking          = "STRICT_BOOKING"
	EnvSlotIntervalMin        = "SLOT_INTERVAL_MIN"
	EnvDefaultSlotDurationMin = "DEFAULT_SLOT_DURATION_MIN"
	EnvMaxSlotsReturned       = "MAX_SLOTS_RETURNED"

	EnvKafkaBrokers = "KAFKA_BROKERS"
	EnvKafkaTopic   = "KAFKA_TOPIC"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)
