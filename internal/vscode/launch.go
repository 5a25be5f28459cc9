package vscode

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/wethinkt/go-vstoolbox/internal/tuilog"
)

// ErrLaunchSpawn is returned when the editor process cannot be started.
var ErrLaunchSpawn = errors.New("editor could not be started")

// LaunchInfo describes the process started to open a folder URI.
type LaunchInfo struct {
	Command string   // command interpreter
	Args    []string // interpreter arguments, ending with the command line
	Line    string   // the editor command line passed to the interpreter
}

// CommandLine returns the editor invocation for folderURI:
// "<executable> --folder-uri <uri>".
func CommandLine(inst Installation, folderURI string) string {
	return fmt.Sprintf("%s --folder-uri %s", inst.Executable(), quoteArg(folderURI))
}

// LaunchCommand returns the interpreter invocation that runs CommandLine.
func LaunchCommand(inst Installation, folderURI string) *LaunchInfo {
	line := CommandLine(inst, folderURI)
	shell, flag := shellCommand()
	return &LaunchInfo{
		Command: shell,
		Args:    []string{flag, line},
		Line:    line,
	}
}

// command builds the process for info.
func (info *LaunchInfo) command(ctx context.Context) *exec.Cmd {
	cmd := exec.CommandContext(ctx, info.Command, info.Args...)
	setCommandLine(cmd, info)
	return cmd
}

// Launch starts the editor on folderURI and blocks until the spawned
// process exits. Only failure to start is reported; the exit status of
// the process is logged and otherwise ignored.
func Launch(ctx context.Context, inst Installation, folderURI string) error {
	info := LaunchCommand(inst, folderURI)
	cmd := info.command(ctx)
	if err := cmd.Start(); err != nil {
		tuilog.Log.Error("Launch: spawn failed", "installation", inst.ID(), "line", info.Line, "error", err)
		return fmt.Errorf("%w: %w", ErrLaunchSpawn, err)
	}
	tuilog.Log.Info("Launch: started", "installation", inst.ID(), "line", info.Line, "pid", cmd.Process.Pid)
	if err := cmd.Wait(); err != nil {
		tuilog.Log.Warn("Launch: process exited with error", "installation", inst.ID(), "error", err)
	}
	return nil
}

// LaunchDetached starts the editor on folderURI and returns without waiting.
func LaunchDetached(inst Installation, folderURI string) error {
	info := LaunchCommand(inst, folderURI)
	cmd := info.command(context.Background())
	if err := cmd.Start(); err != nil {
		tuilog.Log.Error("LaunchDetached: spawn failed", "installation", inst.ID(), "line", info.Line, "error", err)
		return fmt.Errorf("%w: %w", ErrLaunchSpawn, err)
	}
	tuilog.Log.Info("LaunchDetached: started", "installation", inst.ID(), "line", info.Line, "pid", cmd.Process.Pid)
	return cmd.Process.Release()
}
