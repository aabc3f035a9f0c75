package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DefaultDataPath is the sessions file read when nothing else is configured.
const DefaultDataPath = "malaysia_ev_charging_data_clean.csv"

// DataConfig locates the sessions file.
type DataConfig struct {
	Path string `json:"path"`
}

// SetDefaults applies the default data path.
func (c *DataConfig) SetDefaults() {
	if c.Path == "" {
		c.Path = DefaultDataPath
	}
}

// Validate checks mandatory fields.
func (c DataConfig) Validate() error {
	if strings.TrimSpace(c.Path) == "" {
		return errors.New("path is required")
	}
	return nil
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr                   string `json:"addr"`
	Mode                   string `json:"mode"`
	ShutdownTimeoutSeconds int    `json:"shutdown_timeout_seconds"`
}

// SetDefaults applies fallback values for optional fields.
func (c *ServerConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.Mode == "" {
		c.Mode = "release"
	}
	if c.ShutdownTimeoutSeconds <= 0 {
		c.ShutdownTimeoutSeconds = 5
	}
}

// Validate checks the server mode.
func (c ServerConfig) Validate() error {
	switch c.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	return nil
}

// ShutdownTimeout returns the graceful shutdown timeout.
func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// CORSConfig lists the origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string `json:"allowed_origins"`
}

// SetDefaults allows every origin when none is listed.
func (c *CORSConfig) SetDefaults() {
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled   *bool  `json:"enabled"`
	Namespace string `json:"namespace"`
}

// SetDefaults enables metrics under the evdash namespace.
func (c *MetricsConfig) SetDefaults() {
	if c.Enabled == nil {
		on := true
		c.Enabled = &on
	}
	if c.Namespace == "" {
		c.Namespace = "evdash"
	}
}

// IsEnabled reports whether /metrics is served.
func (c MetricsConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// LoggingConfig sets the minimum log level.
type LoggingConfig struct {
	Level string `json:"level"`
}

// SetDefaults applies the info level.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

// Validate checks the level name.
func (c LoggingConfig) Validate() error {
	switch strings.ToLower(c.Level) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
		return nil
	}
	return fmt.Errorf("unknown level %q", c.Level)
}
