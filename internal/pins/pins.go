// Package pins keeps the user's pinned entries.
package pins

import "github.com/wethinkt/go-vstoolbox/internal/vscode"

// Pin pairs an entry with the installation it was pinned from.
type Pin struct {
	Entry        vscode.Entry        `json:"entry"`
	Installation vscode.Installation `json:"installation"`
}

// Registry is an ordered list of pins, most recently pinned first.
// No two pins hold structurally equal entries.
type Registry struct {
	pins []Pin
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// FromPins builds a registry from persisted pins, keeping the first
// occurrence of any duplicated entry.
func FromPins(list []Pin) *Registry {
	r := New()
	for _, p := range list {
		if r.index(p.Entry) >= 0 {
			continue
		}
		r.pins = append(r.pins, Pin{Entry: p.Entry.Clone(), Installation: p.Installation})
	}
	return r
}

// Pin inserts entry at the front. An entry that is already pinned is moved
// to the front instead of being duplicated.
func (r *Registry) Pin(entry vscode.Entry, inst vscode.Installation) {
	if i := r.index(entry); i >= 0 {
		r.pins = append(r.pins[:i], r.pins[i+1:]...)
	}
	p := Pin{Entry: entry.Clone(), Installation: inst}
	r.pins = append([]Pin{p}, r.pins...)
}

// Unpin removes the pin holding entry. Unpinning an entry that is not
// pinned does nothing. It reports whether a pin was removed.
func (r *Registry) Unpin(entry vscode.Entry) bool {
	i := r.index(entry)
	if i < 0 {
		return false
	}
	r.pins = append(r.pins[:i], r.pins[i+1:]...)
	return true
}

// Toggle pins entry if it is not pinned and unpins it otherwise. It reports
// whether the entry is pinned afterwards.
func (r *Registry) Toggle(entry vscode.Entry, inst vscode.Installation) bool {
	if r.Unpin(entry) {
		return false
	}
	r.Pin(entry, inst)
	return true
}

// IsPinned reports whether a structurally equal entry is pinned.
func (r *Registry) IsPinned(entry vscode.Entry) bool {
	return r.index(entry) >= 0
}

// All returns a copy of the pins in stored order.
func (r *Registry) All() []Pin {
	out := make([]Pin, len(r.pins))
	copy(out, r.pins)
	return out
}

// Len returns the number of pins.
func (r *Registry) Len() int {
	return len(r.pins)
}

func (r *Registry) index(entry vscode.Entry) int {
	for i, p := range r.pins {
		if p.Entry.Equal(entry) {
			return i
		}
	}
	return -1
}
