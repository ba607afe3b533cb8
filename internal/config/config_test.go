package config_test

import (
	"os"
	"testing"

	"github.com/ahue/dotcode/internal/config"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load("/nonexistent/dotcode-config.yaml")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.XDim != 5 {
		t.Errorf("XDim = %d, want 5", cfg.XDim)
	}
	if cfg.DotShape != "round" {
		t.Errorf("DotShape = %q, want %q", cfg.DotShape, "round")
	}
}

func TestLoad_EmptyFileReturnsDefaults(t *testing.T) {
	f, err := os.CreateTemp("", "*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())
	f.Close()

	cfg, err := config.Load(f.Name())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.QuietZone != 3 {
		t.Errorf("QuietZone = %d, want 3", cfg.QuietZone)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	f, err := os.CreateTemp("", "*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())
	f.WriteString("xdim: 8\ndot_shape: square\n")
	f.Close()

	cfg, err := config.Load(f.Name())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.XDim != 8 {
		t.Errorf("XDim = %d, want 8", cfg.XDim)
	}
	if cfg.DotShape != "square" {
		t.Errorf("DotShape = %q, want %q", cfg.DotShape, "square")
	}
	if cfg.QuietZone != 3 {
		t.Errorf("QuietZone = %d, want 3 (default preserved)", cfg.QuietZone)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/nested/config.yaml"

	want := config.Defaults()
	want.XDim = 9
	if err := config.Save(path, want); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.XDim != 9 {
		t.Errorf("XDim = %d, want 9", got.XDim)
	}
}
