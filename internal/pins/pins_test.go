package pins

import (
	"encoding/json"
	"testing"

	"github.com/wethinkt/go-vstoolbox/internal/vscode"
)

func entry(uri string) vscode.Entry {
	return vscode.Entry{FolderURI: uri}
}

func uris(r *Registry) []string {
	var out []string
	for _, p := range r.All() {
		out = append(out, p.Entry.FolderURI)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPinInsertsAtFront(t *testing.T) {
	r := New()
	r.Pin(entry("a"), vscode.Stable)
	r.Pin(entry("b"), vscode.Insiders)
	r.Pin(entry("c"), vscode.Stable)

	if got := uris(r); !equalStrings(got, []string{"c", "b", "a"}) {
		t.Errorf("order = %v, want [c b a]", got)
	}
}

func TestRepinMovesToFront(t *testing.T) {
	r := New()
	r.Pin(entry("a"), vscode.Stable)
	r.Pin(entry("b"), vscode.Stable)
	r.Pin(entry("a"), vscode.VSCodium)

	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
	if got := uris(r); !equalStrings(got, []string{"a", "b"}) {
		t.Errorf("order = %v, want [a b]", got)
	}
	if got := r.All()[0].Installation; got != vscode.VSCodium {
		t.Errorf("re-pinned installation = %s, want %s", got, vscode.VSCodium)
	}
}

func TestPinUnpinRoundTrip(t *testing.T) {
	r := New()
	e := vscode.Entry{FolderURI: "file:///x", RemoteAuthority: "wsl+Ubuntu"}

	r.Pin(e, vscode.Stable)
	if !r.IsPinned(e) {
		t.Fatal("entry should be pinned")
	}
	if !r.Unpin(e) {
		t.Fatal("Unpin should report removal")
	}
	if r.IsPinned(e) || r.Len() != 0 {
		t.Fatal("registry should be empty after unpin")
	}
	if r.Unpin(e) {
		t.Error("unpinning an absent entry should be a no-op")
	}
}

func TestIsPinnedIsStructural(t *testing.T) {
	r := New()
	r.Pin(vscode.Entry{Workspace: &vscode.Workspace{ID: "w1", ConfigPath: "file:///a.code-workspace"}}, vscode.Stable)

	same := vscode.Entry{Workspace: &vscode.Workspace{ID: "w1", ConfigPath: "file:///a.code-workspace"}}
	if !r.IsPinned(same) {
		t.Error("structurally equal entry should count as pinned")
	}
	if r.IsPinned(vscode.Entry{Workspace: &vscode.Workspace{ID: "w2"}}) {
		t.Error("different workspace should not count as pinned")
	}
}

func TestPinClonesEntry(t *testing.T) {
	r := New()
	e := vscode.Entry{Workspace: &vscode.Workspace{ID: "w1"}}
	r.Pin(e, vscode.Stable)
	e.Workspace.ID = "mutated"

	if r.All()[0].Entry.Workspace.ID != "w1" {
		t.Error("registry must hold its own copy of the entry")
	}
}

func TestToggle(t *testing.T) {
	r := New()
	if !r.Toggle(entry("a"), vscode.Stable) {
		t.Error("first toggle should pin")
	}
	if r.Toggle(entry("a"), vscode.Stable) {
		t.Error("second toggle should unpin")
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

func TestFromPinsDeduplicates(t *testing.T) {
	r := FromPins([]Pin{
		{Entry: entry("a"), Installation: vscode.Stable},
		{Entry: entry("b"), Installation: vscode.Stable},
		{Entry: entry("a"), Installation: vscode.Insiders},
	})
	if got := uris(r); !equalStrings(got, []string{"a", "b"}) {
		t.Errorf("order = %v, want [a b]", got)
	}
	if r.All()[0].Installation != vscode.Stable {
		t.Error("first occurrence should win")
	}
}

func TestPinJSON(t *testing.T) {
	data, err := json.Marshal(Pin{Entry: entry("file:///p"), Installation: vscode.Insiders})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var back Pin
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !back.Entry.Equal(entry("file:///p")) || back.Installation != vscode.Insiders {
		t.Errorf("unexpected pin after decode: %+v", back)
	}
}
