package cmd

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wethinkt/go-vstoolbox/internal/config"
	"github.com/wethinkt/go-vstoolbox/internal/filter"
	"github.com/wethinkt/go-vstoolbox/internal/i18n"
	"github.com/wethinkt/go-vstoolbox/internal/pins"
	"github.com/wethinkt/go-vstoolbox/internal/vscode"
)

var (
	listFormat string
	listSearch string
	listAll    bool
	listNoPins bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recently opened entries",
	Long: `List the pinned entries followed by the recently opened entries that
pass the saved filter. The saved filter is not modified.

Examples:
  vstoolbox list                   # Same rows as the TUI
  vstoolbox list --search api      # Override the saved search text
  vstoolbox list --all             # Ignore every toggle
  vstoolbox list --format json     # Machine readable output`,
	Args: cobra.NoArgs,
	RunE: runList,
}

// ListItem is one row of list output.
type ListItem struct {
	Title        string                `json:"title" yaml:"title"`
	Path         string                `json:"path" yaml:"path"`
	Kind         vscode.ConnectionKind `json:"kind" yaml:"kind"`
	Installation vscode.Installation   `json:"installation" yaml:"installation"`
	Pinned       bool                  `json:"pinned" yaml:"pinned"`
	Entry        vscode.Entry          `json:"entry" yaml:"entry"`
}

func init() {
	addFormatFlags(listCmd, &listFormat)
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "filter by path text (overrides the saved search)")
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "show entries from every installation and kind")
	listCmd.Flags().BoolVar(&listNoPins, "no-pins", false, "omit the pinned section")
}

func runList(cmd *cobra.Command, args []string) error {
	format, err := resolveFormat(listFormat)
	if err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	opts := cfg.Filter
	if listAll {
		opts.SetAll()
	}
	if cmd.Flags().Changed("search") {
		opts.Search = listSearch
	}

	registry := pins.FromPins(cfg.Pins)
	if listNoPins {
		registry = pins.New()
	}
	groups := vscode.NewCache().Entries(context.Background())
	items := buildListItems(groups, opts, registry)

	if format != formatTable {
		if items == nil {
			items = []ListItem{}
		}
		return writeStructured(cmd.OutOrStdout(), format, items)
	}
	return writeListTable(cmd.OutOrStdout(), items)
}

// buildListItems lays out the pinned entries followed by the main feed.
func buildListItems(groups []vscode.AggregatedEntries, opts filter.Options, registry *pins.Registry) []ListItem {
	var items []ListItem
	for _, p := range registry.All() {
		items = append(items, newListItem(p.Entry, p.Installation, true))
	}
	for _, it := range filter.MainFeed(groups, opts, registry) {
		items = append(items, newListItem(it.Entry, it.Installation, false))
	}
	return items
}

func newListItem(e vscode.Entry, inst vscode.Installation, pinned bool) ListItem {
	return ListItem{
		Title:        e.Title(),
		Path:         e.Path(),
		Kind:         e.Kind(),
		Installation: inst,
		Pinned:       pinned,
		Entry:        e,
	}
}

func writeListTable(out io.Writer, items []ListItem) error {
	if len(items) == 0 {
		fmt.Fprintln(out, i18n.T("cmd.list.empty", "No entries match the current filter."))
		return nil
	}

	const titleColumnWidth = 32
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PIN\tTITLE\tKIND\tINSTALLATION\tPATH")
	for _, it := range items {
		pin := ""
		if it.Pinned {
			pin = "*"
		}
		title := it.Title
		if len(title) > titleColumnWidth {
			title = title[:titleColumnWidth-3] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", pin, title, it.Kind, it.Installation.DisplayName(), it.Path)
	}
	return w.Flush()
}
