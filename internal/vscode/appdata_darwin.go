//go:build darwin

package vscode

import (
	"os"
	"path/filepath"
)

func platformAppDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Library", "Application Support"), nil
}
