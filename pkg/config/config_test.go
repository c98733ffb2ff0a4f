package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Source.FailureRate != 0.1 {
		t.Fatalf("expected default failure rate 0.1, got %v", c.Source.FailureRate)
	}
	if c.Source.LatencyMin != 300*time.Millisecond || c.Source.LatencyMax != 900*time.Millisecond {
		t.Fatalf("unexpected default latency range %v-%v", c.Source.LatencyMin, c.Source.LatencyMax)
	}
	if c.Logging.Level != "info" {
		t.Fatalf("expected default level info, got %q", c.Logging.Level)
	}
	if c.Metrics.Enabled {
		t.Fatal("metrics should be disabled by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte("source:\n  latency_min: 10ms\n  latency_max: 20ms\n  failure_rate: 0.25\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Source.FailureRate != 0.25 {
		t.Fatalf("expected 0.25, got %v", c.Source.FailureRate)
	}
	if c.Source.LatencyMin != 10*time.Millisecond {
		t.Fatalf("expected 10ms, got %v", c.Source.LatencyMin)
	}
	// untouched sections still get defaults
	if c.Logging.Level != "info" {
		t.Fatalf("expected default level, got %q", c.Logging.Level)
	}
}

func TestLoadRejectsBadFailureRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("source:\n  failure_rate: 1.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for failure_rate > 1")
	}
}

func TestLoadRejectsInvertedLatencyRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("source:\n  latency_min: 2s\n  latency_max: 1s\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for latency_max < latency_min")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("FAILURE_RATE", "0.42")
	t.Setenv("METRICS_PORT", "9999")

	c, err := LoadWithEnv("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Source.FailureRate != 0.42 {
		t.Fatalf("env override ignored, got %v", c.Source.FailureRate)
	}
	if c.Metrics.Port != 9999 {
		t.Fatalf("env override ignored, got %d", c.Metrics.Port)
	}
}
