package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/raulo/crm/internal/config"
)

func TestLoad_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.DefaultCountry != "India" {
		t.Errorf("default country: got %q", cfg.DefaultCountry)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected config file created: %v", err)
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := config.DefaultConfig()
	cfg.SessionEmail = "boss@raulo.com"
	cfg.DataDir = "/tmp/crm-data"
	if err := config.Save(path, &cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.SessionEmail != "boss@raulo.com" || loaded.DataDir != "/tmp/crm-data" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestLoad_FillsMissingCountry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"sessionEmail":"x@raulo.com"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.DefaultCountry != "India" {
		t.Errorf("expected default country filled in, got %q", cfg.DefaultCountry)
	}
}
