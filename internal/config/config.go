// internal/config/config.go
//
// Process configuration, read once at startup.
// A .env file in the working directory is loaded first when present;
// real environment variables always win over it.
//
// Environment variables:
//   PORT=5175                 listen port
//   LOG_LEVEL=info            zerolog level name
//   LOG_FORMAT=json           "json" or "console"
//   REQUEST_TIMEOUT=10s       per-request handler bound
//   MAX_COMMAND_BYTES=65536   request body cap for a command post
//   CLIENT_ORIGIN=...         allowed CORS origin for /api

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the service settings.
type Config struct {
	Port            string
	LogLevel        string
	LogFormat       string
	RequestTimeout  time.Duration
	MaxCommandBytes int64
	ClientOrigin    string
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Port:            "5175",
		LogLevel:        "info",
		LogFormat:       "json",
		RequestTimeout:  10 * time.Second,
		MaxCommandBytes: 64 << 10,
		ClientOrigin:    "http://localhost:5173",
	}
}

// Load reads .env (if any) and the environment on top of Default.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config using lookup for each key. Tests pass a map-backed lookup.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	if v, ok := lookup("PORT"); ok && v != "" {
		c.Port = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup("LOG_FORMAT"); ok && v != "" {
		if v != "json" && v != "console" {
			return c, fmt.Errorf("LOG_FORMAT must be json or console, got %q", v)
		}
		c.LogFormat = v
	}
	if v, ok := lookup("REQUEST_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return c, fmt.Errorf("REQUEST_TIMEOUT: invalid duration %q", v)
		}
		c.RequestTimeout = d
	}
	if v, ok := lookup("MAX_COMMAND_BYTES"); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return c, fmt.Errorf("MAX_COMMAND_BYTES: invalid size %q", v)
		}
		c.MaxCommandBytes = n
	}
	if v, ok := lookup("CLIENT_ORIGIN"); ok && v != "" {
		c.ClientOrigin = v
	}
	return c, nil
}
