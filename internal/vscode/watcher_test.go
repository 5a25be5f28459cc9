package vscode

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStoreWatcher_ReportsStoreWrites(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Dir(StorePath(Insiders, root))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	w, err := NewStoreWatcher(root, []Installation{Stable, Insiders}, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("NewStoreWatcher: %v", err)
	}
	defer w.Stop()
	if w.Watching() != 1 {
		t.Fatalf("expected 1 watched dir, got %d", w.Watching())
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := w.Start(ctx)

	// Unrelated files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "storage.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(filepath.Join(dir, "state.vscdb"), []byte{byte(i)}, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case ev := <-events:
		if ev.Installation != Insiders {
			t.Errorf("event installation = %s, want %s", ev.Installation, Insiders)
		}
		if filepath.Base(ev.Path) != "state.vscdb" {
			t.Errorf("event path = %q", ev.Path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for store event")
	}
}

func TestStoreWatcher_StopClosesChannel(t *testing.T) {
	w, err := NewStoreWatcher(t.TempDir(), nil, 0)
	if err != nil {
		t.Fatalf("NewStoreWatcher: %v", err)
	}
	events := w.Start(context.Background())
	if err := w.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	select {
	case _, ok := <-events:
		if ok {
			t.Error("expected closed channel")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("channel not closed after Stop")
	}
	// A second Stop is harmless.
	_ = w.Stop()
}

func TestIsStoreFile(t *testing.T) {
	for _, p := range []string{"/a/state.vscdb", "/a/state.vscdb-journal", "/a/state.vscdb.backup"} {
		if !isStoreFile(p) {
			t.Errorf("%s should be a store file", p)
		}
	}
	if isStoreFile("/a/storage.json") {
		t.Error("storage.json is not a store file")
	}
}
