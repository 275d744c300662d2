package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// APIConfig points at the SIACOM authentication API.
type APIConfig struct {
	BaseURL string
	// Timeout of zero leaves the HTTP client's own defaults in place.
	Timeout time.Duration
}

type SessionConfig struct {
	CookieName string
	Secret     string
	MaxAge     int
	Secure     bool
}

type ObservabilityConfig struct {
	ServiceName  string
	MetricsAddr  string
	OTLPEndpoint string
}

type Config struct {
	ServerPort    string
	PprofAddr     string
	LogLevel      string
	API           APIConfig
	Session       SessionConfig
	Observability ObservabilityConfig
}

func Load() (*Config, error) {
	cfg := &Config{
		ServerPort: getEnvOrDefault("SERVER_PORT", "8091"),
		PprofAddr:  getEnvOrDefault("PPROF_ADDR", ":6060"),
		LogLevel:   getEnvOrDefault("LOG_LEVEL", "info"),
		API: APIConfig{
			BaseURL: strings.TrimRight(getEnvOrDefault("SIACOM_API_URL", "http://localhost:8000"), "/"),
		},
		Session: SessionConfig{
			CookieName: getEnvOrDefault("SESSION_COOKIE_NAME", "siacom_session"),
			Secret:     os.Getenv("SESSION_SECRET"),
		},
		Observability: ObservabilityConfig{
			ServiceName:  getEnvOrDefault("OTEL_SERVICE_NAME", "siacom-web"),
			MetricsAddr:  getEnvOrDefault("METRICS_ADDR", ":9092"),
			OTLPEndpoint: getEnvOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "otel-collector:4318"),
		},
	}

	if cfg.Session.Secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}

	if _, err := url.ParseRequestURI(cfg.API.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid SIACOM_API_URL %q: %w", cfg.API.BaseURL, err)
	}

	var err error
	if cfg.API.Timeout, err = getDurationOrDefault("SIACOM_API_TIMEOUT", 0); err != nil {
		return nil, err
	}
	// Credentials live until the browser drops the cookie or the user logs out.
	if cfg.Session.MaxAge, err = getIntOrDefault("SESSION_MAX_AGE", 30*24*60*60); err != nil {
		return nil, err
	}
	if cfg.Session.Secure, err = getBoolOrDefault("SESSION_SECURE", false); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}

func getIntOrDefault(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return n, nil
}

func getBoolOrDefault(key string, defaultValue bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return b, nil
}
