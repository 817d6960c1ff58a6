package config

import "time"

// ── Default values ───────────────────────────────────────────────────
//
// All tuneable defaults live here so they are easy to audit and reuse
// across CLI flags and environment variable loading.

const (
	// DefaultPort is the SSH listen port when GOMUD_PORT is unset.
	DefaultPort = 8022

	// DefaultGracePeriod is how long shutdown waits for in-flight
	// sessions to finish before force-closing their connections.
	DefaultGracePeriod = 5 * time.Second
)
