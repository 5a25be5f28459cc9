package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wethinkt/go-vstoolbox/internal/config"
	"github.com/wethinkt/go-vstoolbox/internal/i18n"
	"github.com/wethinkt/go-vstoolbox/internal/tui/theme"
)

var themeFormat string

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the TUI theme",
	Long: `Show or change the TUI theme.

Built-in themes are dark and light. JSON files in ~/.vstoolbox/themes/
are also available and shadow a built-in theme of the same name.

Examples:
  vstoolbox theme            # Show the active theme
  vstoolbox theme list       # List all available themes
  vstoolbox theme set light  # Switch to a theme`,
	Args: cobra.NoArgs,
	RunE: runThemeShow,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available themes",
	Long:  `List all built-in and user themes. The active theme is marked with *.`,
	Args:  cobra.NoArgs,
	RunE:  runThemeList,
}

var themeSetCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Set the active theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeSet,
}

func init() {
	addFormatFlags(themeListCmd, &themeFormat)
}

func activeThemeName() string {
	cfg, err := config.Load()
	if err != nil || cfg.Theme == "" {
		return theme.DefaultName
	}
	return cfg.Theme
}

func runThemeShow(cmd *cobra.Command, args []string) error {
	name := activeThemeName()
	t, err := theme.LoadByName(name)
	if err != nil {
		return fmt.Errorf("theme %q: %w", name, err)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, i18n.Tf("cmd.theme.current", "Current theme: %s", name))
	if t.Description != "" {
		fmt.Fprintln(out, t.Description)
	}
	return nil
}

// ThemeListing is one theme in list output.
type ThemeListing struct {
	theme.Meta `yaml:",inline"`
	Active     bool `json:"active" yaml:"active"`
}

func runThemeList(cmd *cobra.Command, args []string) error {
	format, err := resolveFormat(themeFormat)
	if err != nil {
		return err
	}

	active := activeThemeName()
	metas := theme.ListAvailable()
	listings := make([]ThemeListing, 0, len(metas))
	for _, m := range metas {
		listings = append(listings, ThemeListing{Meta: m, Active: m.Name == active})
	}

	if format != formatTable {
		return writeStructured(cmd.OutOrStdout(), format, listings)
	}
	return writeThemeTable(cmd.OutOrStdout(), listings)
}

func writeThemeTable(out io.Writer, listings []ThemeListing) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\tNAME\tSOURCE\tDESCRIPTION")
	for _, l := range listings {
		marker := ""
		if l.Active {
			marker = "*"
		}
		source := "user"
		if l.Embedded {
			source = "built-in"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", marker, l.Name, source, l.Description)
	}
	return w.Flush()
}

func runThemeSet(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := theme.SetActive(name); err != nil {
		return fmt.Errorf("failed to set theme: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), i18n.Tf("cmd.theme.set", "Theme set to: %s", name))
	return nil
}
