package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Listen != ":8080" {
		t.Errorf("expected default listen :8080, got %q", cfg.Listen)
	}
	if cfg.PollHz != 60 {
		t.Errorf("expected default poll rate 60, got %d", cfg.PollHz)
	}
	if cfg.Headless || cfg.NoOverlay {
		t.Error("expected window and overlay enabled by default")
	}
}

func TestLoadFlags(t *testing.T) {
	cfg, err := Load([]string{"--listen", ":9000", "--poll-hz", "120", "--headless"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Listen != ":9000" {
		t.Errorf("expected listen :9000, got %q", cfg.Listen)
	}
	if cfg.PollHz != 120 {
		t.Errorf("expected poll rate 120, got %d", cfg.PollHz)
	}
	if !cfg.Headless {
		t.Error("expected headless set")
	}
}

func TestInterval(t *testing.T) {
	cfg := &Config{PollHz: 100}
	if got := cfg.Interval(); got != 10*time.Millisecond {
		t.Errorf("expected 10ms, got %v", got)
	}
	cfg.PollHz = 0
	if got := cfg.Interval(); got != time.Second/60 {
		t.Errorf("expected the 60Hz fallback, got %v", got)
	}
}

func TestOverlayURL(t *testing.T) {
	cfg := &Config{Listen: ":8080"}
	if got := cfg.OverlayURL(); got != "http://localhost:8080" {
		t.Errorf("unexpected URL %q", got)
	}
	cfg.Listen = "10.0.0.2:80"
	if got := cfg.OverlayURL(); got != "http://10.0.0.2:80" {
		t.Errorf("unexpected URL %q", got)
	}
}
