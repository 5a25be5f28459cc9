package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wethinkt/go-vstoolbox/internal/config"
	"github.com/wethinkt/go-vstoolbox/internal/filter"
	"github.com/wethinkt/go-vstoolbox/internal/i18n"
	"github.com/wethinkt/go-vstoolbox/internal/pins"
	"github.com/wethinkt/go-vstoolbox/internal/vscode"
)

var (
	pinsFormat       string
	pinsInstallation string
)

var pinsCmd = &cobra.Command{
	Use:   "pins",
	Short: "Manage pinned entries",
	Long: `Manage the pinned entries shown at the top of the TUI.

Pins are stored in the config file and survive restarts. Running
without a subcommand lists them.`,
	Args: cobra.NoArgs,
	RunE: runPinsList,
}

var pinsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pinned entries, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runPinsList,
}

var pinsAddCmd = &cobra.Command{
	Use:   "add <uri|path>",
	Short: "Pin an entry",
	Long: `Pin a folder URI or local path for an installation. A pin that already
exists moves to the front.

Examples:
  vstoolbox pins add ~/src/project
  vstoolbox pins add "vscode-remote://wsl+Ubuntu/home/me" -i vscode-insiders`,
	Args: cobra.ExactArgs(1),
	RunE: runPinsAdd,
}

var pinsRemoveCmd = &cobra.Command{
	Use:     "remove <uri|path>",
	Aliases: []string{"rm"},
	Short:   "Unpin an entry",
	Args:    cobra.ExactArgs(1),
	RunE:    runPinsRemove,
}

func init() {
	addFormatFlags(pinsCmd, &pinsFormat)
	addFormatFlags(pinsListCmd, &pinsFormat)
	pinsAddCmd.Flags().StringVarP(&pinsInstallation, "installation", "i", vscode.Stable.ID(), "installation the pin opens with")
}

func runPinsList(cmd *cobra.Command, args []string) error {
	format, err := resolveFormat(pinsFormat)
	if err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	items := buildListItems(nil, filter.Options{}, pins.FromPins(cfg.Pins))
	if format != formatTable {
		if items == nil {
			items = []ListItem{}
		}
		return writeStructured(cmd.OutOrStdout(), format, items)
	}
	if len(items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cmd.pins.none", "No pinned entries."))
		return nil
	}
	return writeListTable(cmd.OutOrStdout(), items)
}

func runPinsAdd(cmd *cobra.Command, args []string) error {
	inst, err := vscode.ParseInstallation(pinsInstallation)
	if err != nil {
		return err
	}
	uri, err := resolveFolderURI(args[0])
	if err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	entry := lookupEntry(vscode.NewCache().Entries(context.Background()), inst, uri)
	registry := pins.FromPins(cfg.Pins)
	registry.Pin(entry, inst)
	cfg.Pins = registry.All()
	if err := config.Save(cfg); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), i18n.Tf("cmd.pins.added", "Pinned %s", entry.Path()))
	return nil
}

func runPinsRemove(cmd *cobra.Command, args []string) error {
	uri, err := resolveFolderURI(args[0])
	if err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	registry := pins.FromPins(cfg.Pins)
	removed := false
	for _, p := range registry.All() {
		if p.Entry.FolderURI == uri && registry.Unpin(p.Entry) {
			removed = true
		}
	}
	if !removed {
		return fmt.Errorf("%s is not pinned", uri)
	}
	cfg.Pins = registry.All()
	if err := config.Save(cfg); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), i18n.Tf("cmd.pins.removed", "Unpinned %s", vscode.FolderPath(uri)))
	return nil
}

// lookupEntry returns the history entry of inst with the given URI so the
// pin keeps its label and remote authority, or a fresh entry for the URI.
func lookupEntry(groups []vscode.AggregatedEntries, inst vscode.Installation, uri string) vscode.Entry {
	for _, g := range groups {
		if g.Installation != inst {
			continue
		}
		for _, e := range g.Entries.Entries {
			if e.FolderURI == uri {
				return e
			}
		}
	}
	return vscode.EntryForURI(uri)
}
