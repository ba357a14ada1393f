package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"medspa/pkg/logger"
)

type Config struct {
	DataDir string

	Port string

	// StrictBooking routes bookings through the availability overlap check
	// before committing and upgrades the slot test to full interval overlap.
	// Off by default for parity with the legacy voice flow.
	StrictBooking bool

	SlotIntervalMin        int
	DefaultSlotDurationMin int
	MaxSlotsReturned       int

	KafkaBrokers []string
	KafkaTopic   string

	RequestTimeout time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	Log *logger.Logger
}

func Load(serviceName string) *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DataDir: getEnvStr(EnvDataDir, DefaultDataDir),

		Port: getEnvStr(EnvPort, DefaultPort),

		StrictBooking: getEnvBool(EnvStrictBooking, DefaultStrictBooking),

		SlotIntervalMin:        getEnvNum(EnvSlotIntervalMin, DefaultSlotIntervalMin),
		DefaultSlotDurationMin: getEnvNum(EnvDefaultSlotDurationMin, DefaultDefaultSlotDurationMin),
		MaxSlotsReturned:       getEnvNum(EnvMaxSlotsReturned, DefaultMaxSlotsReturned),

		KafkaBrokers: getEnvList(EnvKafkaBrokers),
		KafkaTopic:   getEnvStr(EnvKafkaTopic, DefaultKafkaTopic),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		Log: logger.New(logger.Config{
			Level:   getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:  logger.JSON,
			Service: serviceName,
		}),
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}
	if cfg.DataDir == "" {
		errs = append(errs, "DataDir cannot be empty")
	}
	if cfg.SlotIntervalMin < 5 || cfg.SlotIntervalMin > 120 {
		errs = append(errs, fmt.Sprintf("SlotIntervalMin must be between 5 and 120, got: %d", cfg.SlotIntervalMin))
	}
	if cfg.DefaultSlotDurationMin < 5 || cfg.DefaultSlotDurationMin > 480 {
		errs = append(errs, fmt.Sprintf("DefaultSlotDurationMin must be between 5 and 480, got: %d", cfg.DefaultSlotDurationMin))
	}
	if cfg.MaxSlotsReturned < 1 {
		errs = append(errs, fmt.Sprintf("MaxSlotsReturned must be positive, got: %d", cfg.MaxSlotsReturned))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded",
		"data_dir", cfg.DataDir,
		"port", cfg.Port,
		"strict_booking", cfg.StrictBooking,
		"slot_interval_min", cfg.SlotIntervalMin,
		"default_slot_duration_min", cfg.DefaultSlotDurationMin,
		"max_slots_returned", cfg.MaxSlotsReturned,
		"kafka_enabled", len(cfg.KafkaBrokers) > 0,
		"kafka_topic", cfg.KafkaTopic,
	)
}

func getEnvStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
