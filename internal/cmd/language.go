package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wethinkt/go-vstoolbox/internal/config"
	"github.com/wethinkt/go-vstoolbox/internal/i18n"
)

var (
	languageList   bool
	languageFormat string
)

var languageCmd = &cobra.Command{
	Use:   "language [lang]",
	Short: "Get or set the display language",
	Long: `Get or set the display language. Use a BCP 47 tag (e.g., en, zh-Hans).

VSTOOLBOX_LANG overrides the configured language for a single run.

Examples:
  vstoolbox language          # show current language
  vstoolbox language --list   # list bundled languages
  vstoolbox language zh-Hans  # set to Chinese (Simplified)`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLanguage,
}

func init() {
	languageCmd.Flags().BoolVarP(&languageList, "list", "l", false, "list bundled languages")
	addFormatFlags(languageCmd, &languageFormat)
}

func runLanguage(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if languageList {
		format, err := resolveFormat(languageFormat)
		if err != nil {
			return err
		}
		langs := i18n.AvailableLanguages(i18n.ResolveLocale(cfg.Language))
		if format != formatTable {
			return writeStructured(out, format, langs)
		}
		return writeLanguageTable(out, langs)
	}

	if len(args) == 0 {
		fmt.Fprintln(out, i18n.Tf("cmd.language.current", "Current language: %s", i18n.ResolveLocale(cfg.Language)))
		return nil
	}

	cfg.Language = args[0]
	if err := config.Save(cfg); err != nil {
		return err
	}
	i18n.Init(args[0])
	fmt.Fprintln(out, i18n.Tf("cmd.language.set", "Language set to: %s", args[0]))
	return nil
}

func writeLanguageTable(out io.Writer, langs []i18n.LangInfo) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\tTAG\tLANGUAGE\tNATIVE")
	for _, l := range langs {
		marker := ""
		if l.Active {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", marker, l.Tag, l.EnglishName, l.NativeName)
	}
	return w.Flush()
}
