// Package config defines the runtime configuration for the gomud
// server and provides validation helpers.
package config

import (
	"fmt"
	"time"
)

// Config holds every tuneable for a server process.
type Config struct {
	// ── Listener ─────────────────────────────────────────────────────
	Port int `env:"GOMUD_PORT" envDefault:"8022"`

	// ── Host key ─────────────────────────────────────────────────────
	// HostKeyPEM carries the private key material itself; HostKeyFile
	// points at a PEM file on disk.  At least one must be set; the
	// server refuses to start without host key material.
	HostKeyPEM  string `env:"GOMUD_HOST_KEY"`
	HostKeyFile string `env:"GOMUD_HOST_KEY_FILE"`

	// ── Persistence ──────────────────────────────────────────────────
	// DBPath is the SQLite file for character records.  Empty disables
	// persistence entirely.
	DBPath string `env:"GOMUD_DB"`

	// ── Shutdown ─────────────────────────────────────────────────────
	// GracePeriod bounds how long shutdown waits for in-flight
	// sessions to drain.  Zero means DefaultGracePeriod.
	GracePeriod time.Duration `env:"GOMUD_GRACE_PERIOD"`

	// ── Output ───────────────────────────────────────────────────────
	Verbose int `env:"GOMUD_VERBOSE"`
}

// Grace returns the effective shutdown grace period.
func (c *Config) Grace() time.Duration {
	if c.GracePeriod > 0 {
		return c.GracePeriod
	}
	return DefaultGracePeriod
}

// ── Validation ───────────────────────────────────────────────────────

// Validate checks that the configuration is internally consistent.
// It does not touch the filesystem; a missing or unreadable key file
// surfaces later, at host key load time.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return &FieldError{
			Field:   "port",
			Value:   c.Port,
			Message: "port out of range 1-65535",
		}
	}
	if c.HostKeyPEM == "" && c.HostKeyFile == "" {
		return &FieldError{
			Field:   "host-key",
			Message: "no host key material configured",
			Hint:    `set GOMUD_HOST_KEY to PEM contents, or GOMUD_HOST_KEY_FILE to a key path (generate one with: ssh-keygen -t ed25519 -f host_key -N "")`,
		}
	}
	if c.GracePeriod < 0 {
		return &FieldError{
			Field:   "grace-period",
			Value:   c.GracePeriod,
			Message: "grace period cannot be negative",
		}
	}
	return nil
}

// FieldError reports an invalid configuration value.
type FieldError struct {
	Field   string      // config field name
	Value   interface{} // the invalid value (nil if missing)
	Message string      // human-readable explanation
	Hint    string      // suggestion for the operator (optional)
}

func (e *FieldError) Error() string {
	msg := "config: --" + e.Field
	if e.Value != nil {
		msg += fmt.Sprintf("=%v", e.Value)
	}
	msg += ": " + e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}
