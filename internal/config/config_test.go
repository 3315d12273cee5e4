package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg.Graphics.Width != def.Graphics.Width || cfg.World.Seed != def.World.Seed {
		t.Errorf("missing file did not yield defaults: %+v", cfg)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "world:\n  seed: 99\n  chunk_grid: 4\nlogging:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.World.Seed != 99 {
		t.Errorf("seed = %d, want 99", cfg.World.Seed)
	}
	if cfg.World.ChunkGrid != 4 {
		t.Errorf("chunk_grid = %d, want 4", cfg.World.ChunkGrid)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}
	// Sections absent from the file keep their defaults.
	if cfg.Graphics.Width != Default().Graphics.Width {
		t.Errorf("width = %d, want default %d", cfg.Graphics.Width, Default().Graphics.Width)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("graphics: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}
