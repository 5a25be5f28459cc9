// Package vscode locates installed VS Code variants, reads their
// "recently opened" history and launches them against a chosen target.
package vscode

import (
	"fmt"
)

// Installation identifies a VS Code variant.
type Installation int

const (
	Stable Installation = iota
	Insiders
	Exploration
	VSCodium
)

// All returns every known installation in display order.
func All() []Installation {
	return []Installation{Stable, Insiders, Exploration, VSCodium}
}

var installationInfo = map[Installation]struct {
	id         string
	name       string
	dir        string
	executable string
}{
	Stable:      {"vscode", "VS Code", "Code", "code"},
	Insiders:    {"vscode-insiders", "VS Code Insiders", "Code - Insiders", "code-insiders"},
	Exploration: {"vscode-exploration", "VS Code Exploration", "Code - Exploration", "code-exploration"},
	VSCodium:    {"vscodium", "VSCodium", "VSCodium", "codium"},
}

// ID returns the stable identifier used in config files and on the command line.
func (i Installation) ID() string {
	if info, ok := installationInfo[i]; ok {
		return info.id
	}
	return fmt.Sprintf("installation(%d)", int(i))
}

// DisplayName returns a human-readable name.
func (i Installation) DisplayName() string {
	if info, ok := installationInfo[i]; ok {
		return info.name
	}
	return i.ID()
}

// Dir returns the directory name under the roaming app-data root.
func (i Installation) Dir() string {
	return installationInfo[i].dir
}

// Executable returns the command used to launch this variant.
func (i Installation) Executable() string {
	return installationInfo[i].executable
}

func (i Installation) String() string {
	return i.ID()
}

// ParseInstallation resolves an installation from its ID.
func ParseInstallation(id string) (Installation, error) {
	for _, inst := range All() {
		if inst.ID() == id {
			return inst, nil
		}
	}
	return 0, fmt.Errorf("unknown installation %q", id)
}

// MarshalText encodes the installation as its ID.
func (i Installation) MarshalText() ([]byte, error) {
	if _, ok := installationInfo[i]; !ok {
		return nil, fmt.Errorf("unknown installation %d", int(i))
	}
	return []byte(i.ID()), nil
}

// UnmarshalText decodes an installation ID.
func (i *Installation) UnmarshalText(text []byte) error {
	inst, err := ParseInstallation(string(text))
	if err != nil {
		return err
	}
	*i = inst
	return nil
}

// Workspace is the opaque multi-root workspace descriptor stored by the editor.
type Workspace struct {
	ID         string `json:"id" yaml:"id"`
	ConfigPath string `json:"configPath" yaml:"configPath"`
}

// Entry is one record of the editor's recently opened list.
// Absent string fields are empty.
type Entry struct {
	FolderURI       string     `json:"folderUri,omitempty" yaml:"folderUri,omitempty"`
	Workspace       *Workspace `json:"workspace,omitempty" yaml:"workspace,omitempty"`
	Label           string     `json:"label,omitempty" yaml:"label,omitempty"`
	RemoteAuthority string     `json:"remoteAuthority,omitempty" yaml:"remoteAuthority,omitempty"`
}

// Equal reports whether two entries are structurally equal.
func (e Entry) Equal(other Entry) bool {
	if e.FolderURI != other.FolderURI || e.Label != other.Label || e.RemoteAuthority != other.RemoteAuthority {
		return false
	}
	switch {
	case e.Workspace == nil && other.Workspace == nil:
		return true
	case e.Workspace == nil || other.Workspace == nil:
		return false
	default:
		return *e.Workspace == *other.Workspace
	}
}

// Clone returns a deep copy of the entry.
func (e Entry) Clone() Entry {
	if e.Workspace != nil {
		ws := *e.Workspace
		e.Workspace = &ws
	}
	return e
}

// Kind classifies the entry's connection.
func (e Entry) Kind() ConnectionKind {
	return Classify(e.RemoteAuthority, e.FolderURI)
}

// Path returns the filesystem path encoded in the folder URI.
func (e Entry) Path() string {
	return FolderPath(e.FolderURI)
}

// Title returns the final path segment, or the full path when there is none.
func (e Entry) Title() string {
	return PathTitle(e.Path())
}

// EntryList is the history of one installation, most recent first.
type EntryList struct {
	Entries []Entry `json:"entries" yaml:"entries"`
}

// AggregatedEntries pairs an installation with the history read from it.
// Err records why the list is empty when the read failed.
type AggregatedEntries struct {
	Installation Installation
	Entries      EntryList
	Err          error
}
