package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort         = "8080"
	defaultFetchTimeout = 12 * time.Second
)

type Config struct {
	Port            string
	DatasetPath     string
	ObservationsURL string
	CORSOrigins     []string
	FetchTimeout    time.Duration
	Environment     string
	LogLevel        string

	// Warnings collects fallbacks taken while loading, logged by the caller.
	Warnings []string
}

// Load reads .env files (a missing file is fine) and then the environment.
func Load(files ...string) Config {
	_ = godotenv.Load(files...)

	c := Config{
		Port:            envOr("PORT", defaultPort),
		DatasetPath:     os.Getenv("DATASET_PATH"),
		ObservationsURL: os.Getenv("OBSERVATIONS_URL"),
		CORSOrigins:     splitList(envOr("CORS_ORIGINS", "*")),
		FetchTimeout:    defaultFetchTimeout,
		Environment:     envOr("ENVIRONMENT", "local"),
		LogLevel:        envOr("LOG_LEVEL", "info"),
	}
	if v := os.Getenv("FETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			c.Warnings = append(c.Warnings, "invalid FETCH_TIMEOUT "+v+", using "+defaultFetchTimeout.String())
		} else {
			c.FetchTimeout = d
		}
	}
	return c
}

func (c Config) Addr() string { return ":" + c.Port }

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
