package vscode

import (
	"errors"
	"os"
)

// ErrPlatformRootUnresolvable is returned when the per-user roaming
// application-data directory cannot be determined.
var ErrPlatformRootUnresolvable = errors.New("roaming application data directory unresolvable")

// AppDataEnv overrides the roaming application-data root when set.
const AppDataEnv = "VSTOOLBOX_APPDATA"

// RoamingAppDataDir returns the directory under which VS Code variants keep
// their per-user data (%APPDATA% on Windows, ~/Library/Application Support on
// macOS, $XDG_CONFIG_HOME or ~/.config elsewhere).
func RoamingAppDataDir() (string, error) {
	if dir := os.Getenv(AppDataEnv); dir != "" {
		return dir, nil
	}
	dir, err := platformAppDataDir()
	if err != nil || dir == "" {
		return "", ErrPlatformRootUnresolvable
	}
	return dir, nil
}
