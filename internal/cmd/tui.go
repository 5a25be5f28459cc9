package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wethinkt/go-vstoolbox/internal/config"
	"github.com/wethinkt/go-vstoolbox/internal/tui"
	"github.com/wethinkt/go-vstoolbox/internal/tui/theme"
	"github.com/wethinkt/go-vstoolbox/internal/tuilog"
	"github.com/wethinkt/go-vstoolbox/internal/vscode"
)

var (
	tuiWatch  bool
	tuiDetach bool
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive recents list",
	Long: `Browse the recently opened folders of every installed VS Code variant.

Pinned entries are listed first and ignore the filters. The search text,
filter toggles and pins are saved to ~/.vstoolbox/config.json on exit.

Keys:
  enter   open the selected entry
  p       pin or unpin
  /       search
  1-4     toggle VS Code, Insiders, Exploration, VSCodium
  5-9     toggle host, WSL, dev container, SSH, remote repositories
  r       reload history
  q       quit`,
	RunE: runTUI,
}

func addTUIFlags(c *cobra.Command) {
	c.Flags().BoolVarP(&tuiWatch, "watch", "w", false, "reload history when VS Code updates it")
	c.Flags().BoolVar(&tuiDetach, "detach", false, "launch editors without waiting for them")
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, save := loadTUIConfig()
	if cmd.Flags().Changed("detach") {
		cfg.DetachLaunch = tuiDetach
	}

	th, err := theme.LoadByName(cfg.Theme)
	if err != nil {
		tuilog.Log.Warn("Theme unavailable, using default", "theme", cfg.Theme, "error", err)
		th = theme.DefaultTheme()
	}

	return tui.Run(tui.Options{
		Config: cfg,
		Cache:  vscode.NewCache(),
		Theme:  th,
		Watch:  tuiWatch,
		Save:   save,
	})
}

// loadTUIConfig returns the saved state and the function that persists it
// on exit. A config file that cannot be read is never overwritten: the TUI
// runs on defaults and discards its state.
func loadTUIConfig() (config.Config, func(config.Config) error) {
	cfg, err := config.Load()
	if err != nil {
		tuilog.Log.Warn("Config unreadable, using defaults without saving", "error", err)
		return config.Default(), func(config.Config) error { return nil }
	}
	return cfg, config.Save
}
