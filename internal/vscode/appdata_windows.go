//go:build windows

package vscode

import "golang.org/x/sys/windows"

func platformAppDataDir() (string, error) {
	return windows.KnownFolderPath(windows.FOLDERID_RoamingAppData, 0)
}
