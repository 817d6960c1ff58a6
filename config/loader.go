package config

// loader.go - configuration loading from environment variables.
//
// Precedence order (highest wins):
//   1. CLI flags  (handled by cmd/root.go)
//   2. Environment variables  (this file)
//   3. Defaults   (envDefault tags and defaults.go)

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ── Environment variable mapping ─────────────────────────────────────
//
// Every supported env var uses the GOMUD_ prefix; the full mapping
// lives in the `env` tags on [Config].  This should be called BEFORE
// CLI flag parsing so that flags take precedence.

// LoadFromEnv overlays environment variables onto cfg.  Unset env vars
// leave the existing value (or the envDefault) in place.
func LoadFromEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}
