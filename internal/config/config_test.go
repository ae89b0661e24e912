package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsZeroValue(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxCallDepth != 0 || cfg.Color || cfg.ClockEpoch != nil {
		t.Fatalf("expected zero-value Config, got %#v", cfg)
	}
	if cfg.Clock() != nil {
		t.Fatal("expected nil Clock() with no ClockEpoch set")
	}
}

func TestLoadParsesFields(t *testing.T) {
	dir := t.TempDir()
	contents := "maxCallDepth: 2048\ncolor: true\nclockEpoch: 1700000000\n"
	if err := os.WriteFile(filepath.Join(dir, fileName), []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxCallDepth != 2048 {
		t.Fatalf("MaxCallDepth = %d, want 2048", cfg.MaxCallDepth)
	}
	if !cfg.Color {
		t.Fatal("Color = false, want true")
	}
	if cfg.ClockEpoch == nil || *cfg.ClockEpoch != 1700000000 {
		t.Fatalf("ClockEpoch = %v, want 1700000000", cfg.ClockEpoch)
	}
	if clock := cfg.Clock(); clock == nil || clock() != 1700000000 {
		t.Fatal("expected Clock() to return the fixed epoch")
	}
}
