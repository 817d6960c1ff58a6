package config

import (
	"testing"
	"time"
)

func TestLoadFromEnvDefaults(t *testing.T) {
	// With nothing set, the envDefault for the port applies and
	// everything else stays zero.
	cfg := &Config{}
	if err := LoadFromEnv(cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("Port = %d, want default %d", cfg.Port, DefaultPort)
	}
	if cfg.HostKeyPEM != "" || cfg.HostKeyFile != "" {
		t.Errorf("host key fields should be empty, got %q / %q", cfg.HostKeyPEM, cfg.HostKeyFile)
	}
}

func TestLoadFromEnvOverlay(t *testing.T) {
	t.Setenv("GOMUD_PORT", "2200")
	t.Setenv("GOMUD_HOST_KEY_FILE", "/tmp/host_key")
	t.Setenv("GOMUD_DB", "/tmp/mud.db")
	t.Setenv("GOMUD_GRACE_PERIOD", "10s")
	t.Setenv("GOMUD_VERBOSE", "2")

	cfg := &Config{}
	if err := LoadFromEnv(cfg); err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 2200 {
		t.Errorf("Port = %d, want 2200", cfg.Port)
	}
	if cfg.HostKeyFile != "/tmp/host_key" {
		t.Errorf("HostKeyFile = %q", cfg.HostKeyFile)
	}
	if cfg.DBPath != "/tmp/mud.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.GracePeriod != 10*time.Second {
		t.Errorf("GracePeriod = %v, want 10s", cfg.GracePeriod)
	}
	if cfg.Verbose != 2 {
		t.Errorf("Verbose = %d, want 2", cfg.Verbose)
	}
}

func TestLoadFromEnvBadValue(t *testing.T) {
	t.Setenv("GOMUD_PORT", "not-a-port")

	cfg := &Config{}
	if err := LoadFromEnv(cfg); err == nil {
		t.Fatal("expected error for non-numeric GOMUD_PORT")
	}
}
