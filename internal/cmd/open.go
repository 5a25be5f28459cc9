package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wethinkt/go-vstoolbox/internal/config"
	"github.com/wethinkt/go-vstoolbox/internal/i18n"
	"github.com/wethinkt/go-vstoolbox/internal/vscode"
)

var (
	openInstallation string
	openDetach       bool
	openDryRun       bool
)

var openCmd = &cobra.Command{
	Use:   "open <uri|path>",
	Short: "Open a folder in VS Code",
	Long: `Open a folder URI or local path with the chosen VS Code installation.

A local path is converted to a file:// URI first. The editor is invoked
as "<executable> --folder-uri <uri>" through the system shell.

Examples:
  vstoolbox open .
  vstoolbox open ~/src/project --installation vscode-insiders
  vstoolbox open "vscode-remote://ssh-remote+myhost/srv/app"
  vstoolbox open . --dry-run       # Print the command line only`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	openCmd.Flags().StringVarP(&openInstallation, "installation", "i", vscode.Stable.ID(), "installation to launch (vscode, vscode-insiders, vscode-exploration, vscodium)")
	openCmd.Flags().BoolVar(&openDetach, "detach", false, "return without waiting for the editor process")
	openCmd.Flags().BoolVarP(&openDryRun, "dry-run", "n", false, "print the command line without running it")
}

func runOpen(cmd *cobra.Command, args []string) error {
	inst, err := vscode.ParseInstallation(openInstallation)
	if err != nil {
		return err
	}
	uri, err := resolveFolderURI(args[0])
	if err != nil {
		return err
	}

	if openDryRun {
		fmt.Fprintln(cmd.OutOrStdout(), vscode.CommandLine(inst, uri))
		return nil
	}

	detach := openDetach
	if !cmd.Flags().Changed("detach") {
		if cfg, err := config.Load(); err == nil {
			detach = cfg.DetachLaunch
		}
	}

	if detach {
		err = vscode.LaunchDetached(inst, uri)
	} else {
		err = vscode.Launch(cmd.Context(), inst, uri)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), i18n.Tf("cmd.open.opened", "Opened %s in %s", uri, inst.DisplayName()))
	return nil
}

// resolveFolderURI returns arg unchanged when it already carries a scheme,
// otherwise the file URI of its absolute path.
func resolveFolderURI(arg string) (string, error) {
	if strings.Contains(arg, "://") {
		return arg, nil
	}
	abs, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", arg, err)
	}
	return vscode.FileURI(abs), nil
}
