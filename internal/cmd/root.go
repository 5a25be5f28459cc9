// Package cmd provides the CLI commands for vstoolbox.
package cmd

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"

	"github.com/wethinkt/go-vstoolbox/internal/config"
	"github.com/wethinkt/go-vstoolbox/internal/i18n"
	"github.com/wethinkt/go-vstoolbox/internal/tuilog"
)

// ProfileEnv names a file to write a CPU profile to.
const ProfileEnv = "VSTOOLBOX_PROFILE"

// global flags
var (
	profileFile *os.File // held open for profiling
	logPath     string
	verbose     bool
	langFlag    string
	outputJSON  bool
)

// rootCmd is the root command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "vstoolbox",
	Short: "Browse and reopen recent VS Code folders",
	Long: `vstoolbox lists the folders, workspaces and remote targets recently
opened in every VS Code variant installed on this machine (VS Code,
Insiders, Exploration, VSCodium) and reopens them.

Running without a subcommand launches the interactive TUI.

Examples:
  vstoolbox                          # Launch TUI
  vstoolbox list                     # Print visible entries
  vstoolbox list --format yaml --all # Print every entry as YAML
  vstoolbox installations            # Show discovered installations
  vstoolbox open ~/src/project       # Open a folder in VS Code
  vstoolbox pins add file:///home/me/src/project`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// setupRun starts profiling, logging and localization for every command.
func setupRun(cmd *cobra.Command, args []string) error {
	if profilePath := os.Getenv(ProfileEnv); profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			return fmt.Errorf("create profile file: %w", err)
		}
		profileFile = f

		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			profileFile = nil
			return fmt.Errorf("start CPU profile: %w", err)
		}
	}

	switch {
	case logPath != "":
		if err := tuilog.Init(logPath); err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		if verbose {
			tuilog.Log.SetLevel(tuilog.LevelDebug)
		}
	case verbose && cmd != rootCmd && cmd != tuiCmd:
		// The TUI owns the terminal; other commands can log to stderr.
		tuilog.InitWriter(os.Stderr, tuilog.LevelDebug)
	}

	lang := langFlag
	if lang == "" {
		if cfg, err := config.Load(); err == nil {
			lang = cfg.Language
		}
	}
	i18n.Init(i18n.ResolveLocale(lang))
	return nil
}

func teardownRun(cmd *cobra.Command, args []string) error {
	if profileFile != nil {
		pprof.StopCPUProfile()
		profileFile.Close()
		profileFile = nil
	}
	return tuilog.Log.Close()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentPreRunE = setupRun
	rootCmd.PersistentPostRunE = teardownRun

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "write debug log to file")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "display language (BCP 47 tag, overrides config)")

	// The root command runs the TUI directly.
	addTUIFlags(rootCmd)
	addTUIFlags(tuiCmd)

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(installationsCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(pinsCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(languageCmd)
	rootCmd.AddCommand(versionCmd)

	pinsCmd.AddCommand(pinsListCmd)
	pinsCmd.AddCommand(pinsAddCmd)
	pinsCmd.AddCommand(pinsRemoveCmd)

	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeSetCmd)
}
