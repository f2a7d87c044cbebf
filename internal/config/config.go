package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all process-wide settings. Everything is fixed at startup;
// the fleet is not resizable and the tick cadence does not change at runtime.
type Config struct {
	Port          string
	TickInterval  time.Duration
	FleetSize     int
	JWTSecret     string
	JWTExpiry     time.Duration
	AllowedOrigin string
}

// Load reads configuration from the environment, with a local .env file as
// an optional source.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "5000"),
		TickInterval:  time.Duration(getEnvInt("TICK_INTERVAL_MS", 3000)) * time.Millisecond,
		FleetSize:     getEnvInt("FLEET_SIZE", 5),
		JWTSecret:     getEnv("JWT_SECRET", "default-secret-key-change-in-production"),
		JWTExpiry:     getEnvDuration("JWT_EXPIRY", 24*time.Hour),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:5173"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
