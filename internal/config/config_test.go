package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL = %s", cfg.SessionTTL)
	}
	if cfg.MaxTokens != 1024 {
		t.Errorf("MaxTokens = %d", cfg.MaxTokens)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TUTORIZ_ADDR", ":9999")
	t.Setenv("TUTORIZ_SESSION_TTL", "5m")
	t.Setenv("TUTORIZ_SNAPSHOT_KEEP", "3")

	cfg := Load()
	if cfg.Addr != ":9999" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.SessionTTL != 5*time.Minute {
		t.Errorf("SessionTTL = %s", cfg.SessionTTL)
	}
	if cfg.SnapshotKeep != 3 {
		t.Errorf("SnapshotKeep = %d", cfg.SnapshotKeep)
	}
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("TUTORIZ_SESSION_TTL", "soon")
	t.Setenv("TUTORIZ_MAX_TOKENS", "lots")

	cfg := Load()
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL = %s, want default", cfg.SessionTTL)
	}
	if cfg.MaxTokens != 1024 {
		t.Errorf("MaxTokens = %d, want default", cfg.MaxTokens)
	}
}
