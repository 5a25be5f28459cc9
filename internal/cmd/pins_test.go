package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wethinkt/go-vstoolbox/internal/config"
	"github.com/wethinkt/go-vstoolbox/internal/vscode"
)

func TestResolveFolderURI(t *testing.T) {
	uri := "vscode-remote://wsl%2BUbuntu/home/me"
	if got, err := resolveFolderURI(uri); err != nil || got != uri {
		t.Errorf("resolveFolderURI(%q) = %q, %v", uri, got, err)
	}

	dir := t.TempDir()
	got, err := resolveFolderURI(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "file:///") {
		t.Errorf("local path should become a file URI, got %q", got)
	}
	if vscode.FolderPath(got) != filepath.ToSlash(dir) && vscode.FolderPath(got) != "/"+filepath.ToSlash(dir) {
		t.Errorf("FolderPath(%q) = %q, want %q", got, vscode.FolderPath(got), dir)
	}
}

func TestLookupEntry(t *testing.T) {
	groups := []vscode.AggregatedEntries{{
		Installation: vscode.Stable,
		Entries: vscode.EntryList{Entries: []vscode.Entry{
			{FolderURI: "file:///srv/app", Label: "App"},
		}},
	}}

	if e := lookupEntry(groups, vscode.Stable, "file:///srv/app"); e.Label != "App" {
		t.Errorf("known entry should keep its label, got %+v", e)
	}
	if e := lookupEntry(groups, vscode.Insiders, "file:///srv/app"); e.Label != "" {
		t.Errorf("other installation should get a fresh entry, got %+v", e)
	}
	e := lookupEntry(nil, vscode.Stable, "vscode-remote://ssh-remote%2Bbox/srv")
	if e.RemoteAuthority != "ssh-remote+box" {
		t.Errorf("remote authority = %q", e.RemoteAuthority)
	}
}

func TestPinsAddRemove(t *testing.T) {
	t.Setenv(config.HomeEnv, t.TempDir())
	t.Setenv(vscode.AppDataEnv, t.TempDir())

	prev := pinsInstallation
	defer func() { pinsInstallation = prev }()
	pinsInstallation = vscode.Insiders.ID()

	var out bytes.Buffer
	pinsAddCmd.SetOut(&out)
	pinsRemoveCmd.SetOut(&out)
	defer pinsAddCmd.SetOut(nil)
	defer pinsRemoveCmd.SetOut(nil)

	for _, uri := range []string{"file:///srv/one", "file:///srv/two", "file:///srv/one"} {
		if err := runPinsAdd(pinsAddCmd, []string{uri}); err != nil {
			t.Fatalf("add %s: %v", uri, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Pins) != 2 || cfg.Pins[0].Entry.FolderURI != "file:///srv/one" {
		t.Fatalf("pins = %+v", cfg.Pins)
	}
	if cfg.Pins[0].Installation != vscode.Insiders {
		t.Errorf("installation = %v, want insiders", cfg.Pins[0].Installation)
	}

	if err := runPinsRemove(pinsRemoveCmd, []string{"file:///srv/one"}); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := runPinsRemove(pinsRemoveCmd, []string{"file:///srv/one"}); err == nil {
		t.Error("removing a missing pin should fail")
	}

	cfg, _ = config.Load()
	if len(cfg.Pins) != 1 || cfg.Pins[0].Entry.FolderURI != "file:///srv/two" {
		t.Errorf("pins after remove = %+v", cfg.Pins)
	}
}
