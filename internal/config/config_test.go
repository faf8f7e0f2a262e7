package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadReturnsDefaultsWhenPathEmpty(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Sep != "\t" || cfg.MinSup != "0.5" {
		t.Fatalf("expected default config, got %+v", cfg)
	}
}

func TestLoadParsesYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := "input: db.txt\nneighbors: nbrs.txt\nmin_sup: \"0.3\"\nmax_length: 4\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Input != "db.txt" || cfg.Neighbors != "nbrs.txt" || cfg.MinSup != "0.3" || cfg.MaxLength != 4 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadRejectsMissingNamedFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected an error for a missing named config file")
	}
}
