//go:build windows

package vscode

import (
	"os/exec"
	"strings"
	"syscall"
)

func shellCommand() (string, string) {
	return "cmd", "/C"
}

// setCommandLine hands cmd.exe the raw command line. The default argv
// escaping turns embedded quotes into \" which cmd does not understand.
func setCommandLine(cmd *exec.Cmd, info *LaunchInfo) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine: info.Command + " " + strings.Join(info.Args, " "),
	}
}

// quoteArg double-quotes s for cmd when it contains separators.
// Percent signs are left alone: cmd only expands %NAME% when NAME is a
// defined variable, and there is no escape for % inside quotes.
func quoteArg(s string) string {
	if s == "" {
		return `""`
	}
	if !strings.ContainsAny(s, " \t&|<>^()") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
