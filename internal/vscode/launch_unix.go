//go:build !windows

package vscode

import (
	"os/exec"
	"strings"
)

func shellCommand() (string, string) {
	return "sh", "-c"
}

// setCommandLine is a no-op: sh receives the line as a single argv entry.
func setCommandLine(*exec.Cmd, *LaunchInfo) {}

// quoteArg single-quotes s for sh.
func quoteArg(s string) string {
	if s == "" {
		return "''"
	}
	if strings.IndexFunc(s, needsQuote) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func needsQuote(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	}
	return !strings.ContainsRune("-_./:%+,=@", r)
}
