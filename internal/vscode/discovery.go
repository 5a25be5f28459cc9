package vscode

import (
	"os"
	"path/filepath"

	"github.com/wethinkt/go-vstoolbox/internal/tuilog"
)

// Discover returns the installations whose data directory exists under root.
func Discover(root string) []Installation {
	if root == "" {
		return nil
	}

	var found []Installation
	for _, inst := range All() {
		info, err := os.Stat(filepath.Join(root, inst.Dir()))
		if err != nil || !info.IsDir() {
			continue
		}
		found = append(found, inst)
	}
	return found
}

// DiscoverInstalled resolves the roaming root and discovers installations
// under it. When the root cannot be resolved it returns no installations
// and an empty root.
func DiscoverInstalled() ([]Installation, string) {
	root, err := RoamingAppDataDir()
	if err != nil {
		tuilog.Log.Warn("Discover: no app data root", "error", err)
		return nil, ""
	}
	found := Discover(root)
	tuilog.Log.Debug("Discover: done", "root", root, "found", len(found))
	return found, root
}
