// Package config loads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the service.
type Config struct {
	Addr            string
	DBPath          string
	DatabaseURL     string
	Memory          bool
	CORSOrigins     []string
	PingInterval    time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Load reads an optional .env file from the working directory, then the
// environment. Variables already set in the environment win over .env.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables and defaults.
func FromEnv() (Config, error) {
	c := Config{
		Addr:        env("ADDR", ":8000"),
		DBPath:      env("DB_PATH", "baby_tracking.db"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Memory:      env("STORE", "") == "memory",
		CORSOrigins: splitList(env("CORS_ORIGINS", "*")),
	}
	var err error
	if c.PingInterval, err = durationEnv("WS_PING_INTERVAL", 25*time.Second); err != nil {
		return Config{}, err
	}
	if c.WriteTimeout, err = durationEnv("WS_WRITE_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if c.ShutdownTimeout, err = durationEnv("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Backend names the record store the config selects.
func (c Config) Backend() string {
	switch {
	case c.Memory:
		return "memory"
	case c.DatabaseURL != "":
		return "postgres"
	default:
		return "sqlite"
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
