package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("missing file should not error, got %v", err)
	}
	def := DefaultConfig()
	if cfg.ThumbnailLongEdge != def.ThumbnailLongEdge || cfg.BrowserMaxItems != def.BrowserMaxItems {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := DefaultConfig()
	cfg.Debug = true
	cfg.GalleryDir = "/tmp/pics"
	cfg.ThumbnailLongEdge = 64
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !got.Debug || got.GalleryDir != "/tmp/pics" || got.ThumbnailLongEdge != 64 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestValidateClampsOutOfRangeValues(t *testing.T) {
	cfg := &Config{
		ThumbnailLongEdge: 1,
		PreviewMaxW:       10,
		PreviewMaxH:       10,
		BrowserMaxItems:   1000,
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.ThumbnailLongEdge != 16 {
		t.Fatalf("thumbnail edge not clamped: %d", cfg.ThumbnailLongEdge)
	}
	if cfg.PreviewMaxW != 50 || cfg.PreviewMaxH != 50 {
		t.Fatalf("preview bounds not clamped: %dx%d", cfg.PreviewMaxW, cfg.PreviewMaxH)
	}
	if cfg.BrowserMaxItems != 64 {
		t.Fatalf("browser items not clamped: %d", cfg.BrowserMaxItems)
	}
}

func TestLoadBadJSONReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if cfg == nil {
		t.Fatalf("expected defaults alongside the error")
	}
}
