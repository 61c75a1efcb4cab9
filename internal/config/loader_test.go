package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "filmstrip.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDefaultsOnly(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Preview.CrossfadeMS != 150 {
		t.Errorf("crossfade_ms = %d, want 150", cfg.Preview.CrossfadeMS)
	}
	if cfg.Preview.Bind != "127.0.0.1:0" {
		t.Errorf("bind = %q", cfg.Preview.Bind)
	}
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "preview:\n  advance_ms: 2000\nui:\n  theme: dark\n")

	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Preview.AdvanceMS != 2000 {
		t.Errorf("advance_ms = %d, want 2000", cfg.Preview.AdvanceMS)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("theme = %q, want dark", cfg.UI.Theme)
	}
	// Untouched keys keep their defaults.
	if cfg.UI.TypewriterMS != 35 {
		t.Errorf("typewriter_ms = %d, want default 35", cfg.UI.TypewriterMS)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "ui:\n  theme: dark\n")
	t.Setenv("FILMSTRIP_THEME", "light")
	t.Setenv("FILMSTRIP_TYPEWRITER_MS", "50")

	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("theme = %q, want light (env wins)", cfg.UI.Theme)
	}
	if cfg.UI.TypewriterMS != 50 {
		t.Errorf("typewriter_ms = %d, want 50", cfg.UI.TypewriterMS)
	}
}

func TestLoadIgnoresInvalidEnvNumbers(t *testing.T) {
	t.Setenv("FILMSTRIP_TYPEWRITER_MS", "fast")
	cfg, err := LoadFrom(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.UI.TypewriterMS != 35 {
		t.Errorf("typewriter_ms = %d, want default 35", cfg.UI.TypewriterMS)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "preview:\n  crossfade_ms: -1\n")
	if _, err := LoadFrom(dir); err == nil {
		t.Error("expected validation error for negative crossfade")
	}
}

func TestLoadRejectsAdvanceShorterThanCrossfade(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "preview:\n  crossfade_ms: 300\n  advance_ms: 100\n")
	if _, err := LoadFrom(dir); err == nil {
		t.Error("expected validation error when advance < crossfade")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "preview: [not a map\n")
	if _, err := LoadFrom(dir); err == nil {
		t.Error("expected parse error")
	}
}
