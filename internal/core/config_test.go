package core

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestConfigManager_DefaultConfig(t *testing.T) {
	dir := t.TempDir()
	cm := NewConfigManagerWithDir(dir)

	cfg, err := cm.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}
	if cfg.CatalogRoot != "" {
		t.Errorf("expected empty catalogRoot, got %q", cfg.CatalogRoot)
	}
	if len(cfg.DefaultAssistants) != 0 {
		t.Errorf("expected 0 default assistants, got %d", len(cfg.DefaultAssistants))
	}
	if cfg.StrictLocate {
		t.Error("expected strictLocate to be false by default")
	}
}

func TestConfigManager_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	cm := NewConfigManagerWithDir(dir)

	cfg := &Config{
		CatalogRoot:       "~/catalogs/main",
		DefaultAssistants: []string{"claude", "cursor"},
		StrictLocate:      true,
	}

	if err := cm.Save(cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// Verify file exists
	if _, err := os.Stat(cm.ConfigPath()); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	// Load back
	loaded, err := cm.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if loaded.CatalogRoot != "~/catalogs/main" {
		t.Errorf("CatalogRoot = %q, want %q", loaded.CatalogRoot, "~/catalogs/main")
	}
	if !reflect.DeepEqual(loaded.DefaultAssistants, []string{"claude", "cursor"}) {
		t.Errorf("DefaultAssistants = %v", loaded.DefaultAssistants)
	}
	if !loaded.StrictLocate {
		t.Error("expected strictLocate to be true")
	}
}

func TestConfigManager_LoadTolerantSyntax(t *testing.T) {
	dir := t.TempDir()
	cm := NewConfigManagerWithDir(dir)

	// Comments and a trailing comma must not break loading.
	raw := `{
  // pin the catalog for this machine
  "catalogRoot": "/opt/loadout/assets",
  "defaultAssistants": ["claude",],
}`
	if err := os.WriteFile(cm.ConfigPath(), []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := cm.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.CatalogRoot != "/opt/loadout/assets" {
		t.Errorf("CatalogRoot = %q", cfg.CatalogRoot)
	}
	if !reflect.DeepEqual(cfg.DefaultAssistants, []string{"claude"}) {
		t.Errorf("DefaultAssistants = %v", cfg.DefaultAssistants)
	}
}

func TestConfigManager_ConfigDir(t *testing.T) {
	dir := t.TempDir()
	cm := NewConfigManagerWithDir(dir)

	if cm.ConfigDir() != dir {
		t.Errorf("ConfigDir() = %q, want %q", cm.ConfigDir(), dir)
	}
	if cm.ConfigPath() != filepath.Join(dir, "config.json") {
		t.Errorf("ConfigPath() = %q, want %q", cm.ConfigPath(), filepath.Join(dir, "config.json"))
	}
}

func TestConfigManager_SaveCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")
	cm := NewConfigManagerWithDir(dir)

	if err := cm.Save(&Config{}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("config directory not created: %v", err)
	}
}

func TestConfigManager_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	cm := NewConfigManagerWithDir(dir)

	// Write invalid JSON
	if err := os.WriteFile(cm.ConfigPath(), []byte("{invalid"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := cm.Load()
	if err == nil {
		t.Error("Load() should return error for corrupt config")
	}
}
