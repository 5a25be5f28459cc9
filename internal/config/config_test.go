package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wethinkt/go-vstoolbox/internal/pins"
	"github.com/wethinkt/go-vstoolbox/internal/vscode"
)

func TestDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(HomeEnv, dir)

	got, err := Dir()
	if err != nil {
		t.Fatalf("Dir: %v", err)
	}
	if got != dir {
		t.Errorf("Dir() = %q, want %q", got, dir)
	}
	p, _ := Path()
	if p != filepath.Join(dir, "config.json") {
		t.Errorf("Path() = %q", p)
	}
}

func TestLoadMissingReturnsDefault(t *testing.T) {
	t.Setenv(HomeEnv, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Filter != Default().Filter {
		t.Errorf("expected default filter, got %+v", cfg.Filter)
	}
	if len(cfg.Pins) != 0 {
		t.Errorf("expected no pins, got %d", len(cfg.Pins))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv(HomeEnv, t.TempDir())

	cfg := Default()
	cfg.Filter.Search = "proj"
	cfg.Filter.ShowSSH = false
	cfg.Filter.ShowVSCodium = true
	cfg.Language = "zh-Hans"
	cfg.DetachLaunch = true
	cfg.Pins = []pins.Pin{
		{Entry: vscode.Entry{FolderURI: "file:///home/u/proj"}, Installation: vscode.Insiders},
		{Entry: vscode.Entry{Workspace: &vscode.Workspace{ID: "w", ConfigPath: "file:///w.code-workspace"}}, Installation: vscode.Stable},
	}

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Filter != cfg.Filter {
		t.Errorf("filter = %+v, want %+v", got.Filter, cfg.Filter)
	}
	if got.Language != "zh-Hans" || !got.DetachLaunch {
		t.Errorf("unexpected scalars: %+v", got)
	}
	if len(got.Pins) != 2 {
		t.Fatalf("expected 2 pins, got %d", len(got.Pins))
	}
	for i := range cfg.Pins {
		if !got.Pins[i].Entry.Equal(cfg.Pins[i].Entry) || got.Pins[i].Installation != cfg.Pins[i].Installation {
			t.Errorf("pin %d = %+v, want %+v", i, got.Pins[i], cfg.Pins[i])
		}
	}
}

func TestLoadMissingKeysKeepDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(HomeEnv, dir)

	// An older file with only some toggles and an unknown key.
	data := `{"filter":{"show_ssh":false},"legacy_field":42}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Filter.ShowSSH {
		t.Error("show_ssh from file should be false")
	}
	if !cfg.Filter.ShowVSCode || !cfg.Filter.ShowHost || !cfg.Filter.ShowWSL {
		t.Errorf("missing keys should keep defaults: %+v", cfg.Filter)
	}
	if cfg.Pins == nil {
		t.Error("pins should default to an empty list")
	}
}

func TestLoadDeduplicatesPins(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(HomeEnv, dir)

	data := `{"pins":[
		{"entry":{"folderUri":"file:///a"},"installation":"vscode"},
		{"entry":{"folderUri":"file:///a"},"installation":"vscodium"}
	]}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Pins) != 1 || cfg.Pins[0].Installation != vscode.Stable {
		t.Errorf("unexpected pins: %+v", cfg.Pins)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(HomeEnv, dir)
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestLoadKeepsPinsWithUnknownInstallation(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(HomeEnv, dir)
	path := filepath.Join(dir, "config.json")

	data := `{
		"filter": {"show_ssh": false},
		"pins": [
			{"entry":{"folderUri":"file:///keep/me"},"installation":"vscode"},
			{"entry":{"folderUri":"file:///other/fork"},"installation":"cursor"}
		]
	}`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Pins) != 1 || cfg.Pins[0].Entry.FolderURI != "file:///keep/me" {
		t.Fatalf("known pins = %+v", cfg.Pins)
	}
	if cfg.Filter.ShowSSH {
		t.Error("filter from the file should be kept")
	}

	// Saving must not lose the pin this build cannot read.
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	saved, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"file:///keep/me", "file:///other/fork", `"cursor"`} {
		if !strings.Contains(string(saved), want) {
			t.Errorf("saved config missing %s:\n%s", want, saved)
		}
	}

	again, err := Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(again.Pins) != 1 || again.Filter.ShowSSH {
		t.Errorf("reloaded config = %+v", again)
	}
}
