package cmd

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wethinkt/go-vstoolbox/internal/i18n"
	"github.com/wethinkt/go-vstoolbox/internal/vscode"
)

var installationsFormat string

var installationsCmd = &cobra.Command{
	Use:     "installations",
	Aliases: []string{"inst"},
	Short:   "Show discovered VS Code installations",
	Long: `Show each VS Code variant found under the roaming application data
directory, where its settings store lives, how many history entries
it holds, and why its history could not be read.

Set VSTOOLBOX_APPDATA to look under a different directory.`,
	Args: cobra.NoArgs,
	RunE: runInstallations,
}

// InstallationStatus reports the history state of one installation.
type InstallationStatus struct {
	Installation vscode.Installation `json:"installation" yaml:"installation"`
	Name         string              `json:"name" yaml:"name"`
	Executable   string              `json:"executable" yaml:"executable"`
	StorePath    string              `json:"store_path" yaml:"store_path"`
	Entries      int                 `json:"entries" yaml:"entries"`
	Error        string              `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorKind    string              `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
}

func init() {
	addFormatFlags(installationsCmd, &installationsFormat)
}

func runInstallations(cmd *cobra.Command, args []string) error {
	format, err := resolveFormat(installationsFormat)
	if err != nil {
		return err
	}

	cache := vscode.NewCache()
	statuses := installationStatuses(cache.Entries(context.Background()), cache.Root())

	if format != formatTable {
		return writeStructured(cmd.OutOrStdout(), format, statuses)
	}
	return writeInstallationsTable(cmd.OutOrStdout(), statuses, cache.Root())
}

func installationStatuses(groups []vscode.AggregatedEntries, root string) []InstallationStatus {
	statuses := make([]InstallationStatus, 0, len(groups))
	for _, g := range groups {
		s := InstallationStatus{
			Installation: g.Installation,
			Name:         g.Installation.DisplayName(),
			Executable:   g.Installation.Executable(),
			StorePath:    vscode.StorePath(g.Installation, root),
			Entries:      len(g.Entries.Entries),
		}
		if g.Err != nil {
			s.Error = g.Err.Error()
			s.ErrorKind = vscode.ReadErrorKind(g.Err)
		}
		statuses = append(statuses, s)
	}
	return statuses
}

func writeInstallationsTable(out io.Writer, statuses []InstallationStatus, root string) error {
	if len(statuses) == 0 {
		fmt.Fprintln(out, i18n.T("cmd.installations.none", "No VS Code installations found."))
		if root != "" {
			fmt.Fprintln(out, i18n.Tf("cmd.installations.searched", "Searched: %s", root))
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INSTALLATION\tEXECUTABLE\tENTRIES\tSTATUS")
	for _, s := range statuses {
		status := "ok"
		if s.ErrorKind != "" {
			status = s.ErrorKind
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", s.Name, s.Executable, s.Entries, status)
	}
	return w.Flush()
}
