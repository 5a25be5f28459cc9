// Package filter decides which recently opened entries are shown.
package filter

import (
	"strings"

	"github.com/wethinkt/go-vstoolbox/internal/vscode"
)

// Options controls which entries are visible in the main feed.
type Options struct {
	Search string `json:"search"`

	ShowVSCode      bool `json:"show_vscode"`
	ShowInsiders    bool `json:"show_insiders"`
	ShowExploration bool `json:"show_exploration"`
	ShowVSCodium    bool `json:"show_vscodium"`

	ShowHost               bool `json:"show_host"`
	ShowWSL                bool `json:"show_wsl"`
	ShowDevContainer       bool `json:"show_dev_container"`
	ShowSSH                bool `json:"show_ssh"`
	ShowRemoteRepositories bool `json:"show_remote_repos"`
}

// Default returns the options used on first start.
func Default() Options {
	return Options{
		ShowVSCode:             true,
		ShowHost:               true,
		ShowWSL:                true,
		ShowDevContainer:       true,
		ShowSSH:                true,
		ShowRemoteRepositories: true,
	}
}

// InstallationEnabled reports whether entries of inst may be shown.
func (o *Options) InstallationEnabled(inst vscode.Installation) bool {
	switch inst {
	case vscode.Stable:
		return o.ShowVSCode
	case vscode.Insiders:
		return o.ShowInsiders
	case vscode.Exploration:
		return o.ShowExploration
	case vscode.VSCodium:
		return o.ShowVSCodium
	default:
		return false
	}
}

// KindEnabled reports whether entries of the given connection kind may be
// shown. Unknown kinds have no toggle and are always shown.
func (o *Options) KindEnabled(kind vscode.ConnectionKind) bool {
	switch kind {
	case vscode.KindHost:
		return o.ShowHost
	case vscode.KindWSL:
		return o.ShowWSL
	case vscode.KindDevContainer:
		return o.ShowDevContainer
	case vscode.KindSSH:
		return o.ShowSSH
	case vscode.KindRemoteRepository:
		return o.ShowRemoteRepositories
	default:
		return true
	}
}

// ToggleInstallation flips the visibility toggle of inst.
func (o *Options) ToggleInstallation(inst vscode.Installation) {
	if p := o.installationToggle(inst); p != nil {
		*p = !*p
	}
}

// ToggleKind flips the visibility toggle of kind. Kinds without a toggle
// are ignored.
func (o *Options) ToggleKind(kind vscode.ConnectionKind) {
	if p := o.kindToggle(kind); p != nil {
		*p = !*p
	}
}

// SetAll enables every installation and kind toggle and clears the search.
func (o *Options) SetAll() {
	o.Search = ""
	for _, inst := range vscode.All() {
		*o.installationToggle(inst) = true
	}
	for _, kind := range vscode.AllKinds() {
		if p := o.kindToggle(kind); p != nil {
			*p = true
		}
	}
}

func (o *Options) installationToggle(inst vscode.Installation) *bool {
	switch inst {
	case vscode.Stable:
		return &o.ShowVSCode
	case vscode.Insiders:
		return &o.ShowInsiders
	case vscode.Exploration:
		return &o.ShowExploration
	case vscode.VSCodium:
		return &o.ShowVSCodium
	}
	return nil
}

func (o *Options) kindToggle(kind vscode.ConnectionKind) *bool {
	switch kind {
	case vscode.KindHost:
		return &o.ShowHost
	case vscode.KindWSL:
		return &o.ShowWSL
	case vscode.KindDevContainer:
		return &o.ShowDevContainer
	case vscode.KindSSH:
		return &o.ShowSSH
	case vscode.KindRemoteRepository:
		return &o.ShowRemoteRepositories
	}
	return nil
}

// IsVisible reports whether entry from inst passes every filter dimension:
// installation toggle, a non-empty folder URI, the search text against the
// folder path, and the connection kind toggle.
func IsVisible(entry vscode.Entry, inst vscode.Installation, opts Options) bool {
	if !opts.InstallationEnabled(inst) {
		return false
	}
	if entry.FolderURI == "" {
		return false
	}
	if opts.Search != "" {
		path := strings.ToLower(entry.Path())
		if !strings.Contains(path, strings.ToLower(opts.Search)) {
			return false
		}
	}
	return opts.KindEnabled(entry.Kind())
}

// IsVisible is shorthand for the package-level IsVisible with o.
func (o Options) IsVisible(entry vscode.Entry, inst vscode.Installation) bool {
	return IsVisible(entry, inst, o)
}
