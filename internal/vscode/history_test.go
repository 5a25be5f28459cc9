package vscode

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeStore creates a state.vscdb for inst under root. A nil value creates
// the table without the history row.
func writeStore(t *testing.T, root string, inst Installation, value *string) string {
	t.Helper()
	path := StorePath(inst, root)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir store dir: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("CREATE TABLE ItemTable (key TEXT UNIQUE ON CONFLICT REPLACE, value BLOB)"); err != nil {
		t.Fatalf("create table: %v", err)
	}
	if _, err := db.Exec("INSERT INTO ItemTable (key, value) VALUES (?, ?)", "workbench.panel.width", "300"); err != nil {
		t.Fatalf("insert filler row: %v", err)
	}
	if value != nil {
		if _, err := db.Exec("INSERT INTO ItemTable (key, value) VALUES (?, ?)", HistoryKey, *value); err != nil {
			t.Fatalf("insert history: %v", err)
		}
	}
	return path
}

func strPtr(s string) *string { return &s }

func TestReadHistory_HostEntry(t *testing.T) {
	root := t.TempDir()
	writeStore(t, root, Stable, strPtr(`{"entries":[{"folderUri":"file:///home/u/proj","remoteAuthority":null}]}`))

	list, err := ReadHistory(context.Background(), Stable, root)
	if err != nil {
		t.Fatalf("ReadHistory: %v", err)
	}
	if len(list.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(list.Entries))
	}
	e := list.Entries[0]
	if got := e.Path(); got != "/home/u/proj" {
		t.Errorf("Path() = %q, want /home/u/proj", got)
	}
	if got := e.Kind(); got != KindHost {
		t.Errorf("Kind() = %q, want %q", got, KindHost)
	}
	if got := e.Title(); got != "proj" {
		t.Errorf("Title() = %q, want proj", got)
	}
}

func TestReadHistory_SSHEntry(t *testing.T) {
	root := t.TempDir()
	writeStore(t, root, Stable, strPtr(`{"entries":[{"folderUri":"vscode-remote://ssh-remote%2Bmyhost/home/u/proj","remoteAuthority":"ssh-remote+myhost"}]}`))

	list, err := ReadHistory(context.Background(), Stable, root)
	if err != nil {
		t.Fatalf("ReadHistory: %v", err)
	}
	if got := list.Entries[0].Kind(); got != KindSSH {
		t.Errorf("Kind() = %q, want %q", got, KindSSH)
	}
	if got := list.Entries[0].Path(); got != "/home/u/proj" {
		t.Errorf("Path() = %q, want /home/u/proj", got)
	}
}

func TestReadHistory_PreservesOrderAndIgnoresUnknownFields(t *testing.T) {
	root := t.TempDir()
	doc := `{"entries":[
		{"folderUri":"file:///a","label":"A","extra":{"nested":true}},
		{"fileUri":"file:///notes.txt"},
		{"workspace":{"id":"abc","configPath":"file:///w.code-workspace"}},
		{"folderUri":"file:///b"}
	],"version":2}`
	writeStore(t, root, Insiders, &doc)

	list, err := ReadHistory(context.Background(), Insiders, root)
	if err != nil {
		t.Fatalf("ReadHistory: %v", err)
	}
	if len(list.Entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(list.Entries))
	}
	if list.Entries[0].FolderURI != "file:///a" || list.Entries[0].Label != "A" {
		t.Errorf("unexpected first entry: %+v", list.Entries[0])
	}
	if list.Entries[1].FolderURI != "" {
		t.Errorf("file-only entry should have no folder URI, got %q", list.Entries[1].FolderURI)
	}
	if ws := list.Entries[2].Workspace; ws == nil || ws.ID != "abc" || ws.ConfigPath != "file:///w.code-workspace" {
		t.Errorf("unexpected workspace: %+v", ws)
	}
	if list.Entries[3].FolderURI != "file:///b" {
		t.Errorf("order not preserved: %+v", list.Entries[3])
	}
}

func TestReadHistory_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, root string)
		wantErr error
		kind    string
	}{
		{
			name:    "missing store",
			setup:   func(t *testing.T, root string) {},
			wantErr: ErrStoreOpen,
			kind:    "store-open",
		},
		{
			name: "corrupt store",
			setup: func(t *testing.T, root string) {
				path := StorePath(Stable, root)
				if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
					t.Fatal(err)
				}
				garbage := make([]byte, 4096)
				for i := range garbage {
					garbage[i] = byte('x')
				}
				if err := os.WriteFile(path, garbage, 0o644); err != nil {
					t.Fatal(err)
				}
			},
			wantErr: ErrStoreOpen,
			kind:    "store-open",
		},
		{
			name: "missing table",
			setup: func(t *testing.T, root string) {
				path := StorePath(Stable, root)
				if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
					t.Fatal(err)
				}
				db, err := sql.Open("sqlite", path)
				if err != nil {
					t.Fatal(err)
				}
				defer db.Close()
				if _, err := db.Exec("CREATE TABLE Other (k TEXT)"); err != nil {
					t.Fatal(err)
				}
			},
			wantErr: ErrQuery,
			kind:    "query",
		},
		{
			name:    "no history row",
			setup:   func(t *testing.T, root string) { writeStore(t, root, Stable, nil) },
			wantErr: ErrNoHistory,
			kind:    "no-history",
		},
		{
			name:    "invalid json",
			setup:   func(t *testing.T, root string) { writeStore(t, root, Stable, strPtr(`{"entries":[`)) },
			wantErr: ErrParse,
			kind:    "parse",
		},
		{
			name:    "wrong shape",
			setup:   func(t *testing.T, root string) { writeStore(t, root, Stable, strPtr(`{"entries":"nope"}`)) },
			wantErr: ErrParse,
			kind:    "parse",
		},
		{
			name:    "missing entries",
			setup:   func(t *testing.T, root string) { writeStore(t, root, Stable, strPtr(`{"version":1}`)) },
			wantErr: ErrParse,
			kind:    "parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			tt.setup(t, root)

			list, err := ReadHistory(context.Background(), Stable, root)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ReadHistory error = %v, want %v", err, tt.wantErr)
			}
			if len(list.Entries) != 0 {
				t.Errorf("expected no entries on error, got %d", len(list.Entries))
			}
			if got := ReadErrorKind(err); got != tt.kind {
				t.Errorf("ReadErrorKind = %q, want %q", got, tt.kind)
			}
		})
	}
}

func TestReadHistory_DoesNotModifyStore(t *testing.T) {
	root := t.TempDir()
	path := writeStore(t, root, Stable, strPtr(`{"entries":[]}`))
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ReadHistory(context.Background(), Stable, root); err != nil {
		t.Fatalf("ReadHistory: %v", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("store contents changed after read")
	}
}

func TestParseEntryList(t *testing.T) {
	list, err := ParseEntryList([]byte(`{"entries":[]}`))
	if err != nil {
		t.Fatalf("empty entries: %v", err)
	}
	if len(list.Entries) != 0 {
		t.Errorf("expected 0 entries, got %d", len(list.Entries))
	}

	for _, bad := range []string{``, `null`, `[]`, `{"entries":null}`, `{"entries":[{"folderUri":5}]}`} {
		if _, err := ParseEntryList([]byte(bad)); !errors.Is(err, ErrParse) {
			t.Errorf("ParseEntryList(%q) error = %v, want ErrParse", bad, err)
		}
	}
}

func TestStoreDSN(t *testing.T) {
	got := storeDSN("/tmp/Code - Insiders/User/globalStorage/state.vscdb")
	want := "file:///tmp/Code - Insiders/User/globalStorage/state.vscdb?mode=ro&_pragma=busy_timeout(2000)"
	if got != want {
		t.Errorf("storeDSN = %q, want %q", got, want)
	}

	got = storeDSN("/tmp/a#b?c%d/state.vscdb")
	want = "file:///tmp/a%23b%3fc%25d/state.vscdb?mode=ro&_pragma=busy_timeout(2000)"
	if got != want {
		t.Errorf("storeDSN = %q, want %q", got, want)
	}
}
