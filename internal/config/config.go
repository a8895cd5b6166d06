package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults used when the corresponding environment variable is unset.
const (
	DefaultBaseURL     = "https://api.ipma.pt"
	DefaultHTTPTimeout = 10 * time.Second
	DefaultLogLevel    = "info"
)

// Config holds the application configuration.
type Config struct {
	// BaseURL is the root of the IPMA open-data API. Overridable so tests
	// and mirrors can point the server elsewhere.
	BaseURL string
	// HTTPTimeout bounds every remote fetch.
	HTTPTimeout time.Duration
	// LogLevel selects the minimum level written to stderr.
	LogLevel string
}

// Load reads an optional .env file and assembles the configuration from
// environment variables.
func Load() *Config {
	// A missing .env file is fine: in deployment the variables come from
	// the host environment.
	_ = godotenv.Load()

	return &Config{
		BaseURL:     getEnv("IPMA_BASE_URL", DefaultBaseURL),
		HTTPTimeout: getTimeoutSeconds("IPMA_HTTP_TIMEOUT", DefaultHTTPTimeout),
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getTimeoutSeconds reads a positive integer number of seconds; anything
// else keeps the fallback.
func getTimeoutSeconds(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}
