package tui

import (
	"os"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"

	"github.com/wethinkt/go-vstoolbox/internal/tuilog"
)

// termSizeOpts returns the initial window size option, trying stdout,
// stdin and stderr in order.
func termSizeOpts() []tea.ProgramOption {
	var opts []tea.ProgramOption
	for _, fd := range []int{int(os.Stdout.Fd()), int(os.Stdin.Fd()), int(os.Stderr.Fd())} {
		if term.IsTerminal(fd) {
			w, h, err := term.GetSize(fd)
			if err == nil && w > 0 && h > 0 {
				tuilog.Log.Info("Terminal size", "fd", fd, "width", w, "height", h)
				opts = append(opts, tea.WithWindowSize(w, h))
				break
			}
		}
	}
	return opts
}

// Run runs the recents list until the user quits. The filter and pins are
// saved on exit.
func Run(opts Options) error {
	tuilog.Log.Info("Starting TUI", "watch", opts.Watch)

	p := tea.NewProgram(NewModel(opts), termSizeOpts()...)
	final, err := p.Run()
	if err != nil {
		tuilog.Log.Error("TUI exited", "error", err)
		return err
	}

	if m, ok := final.(Model); ok && m.SaveError() != nil {
		return m.SaveError()
	}
	tuilog.Log.Info("TUI exited")
	return nil
}
