package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/wethinkt/go-vstoolbox/internal/tuilog"
	"github.com/wethinkt/go-vstoolbox/internal/vscode"
)

// startWatchCmd watches the stores of the loaded installations.
func (m Model) startWatchCmd() tea.Cmd {
	root := m.cache.Root()
	installations := make([]vscode.Installation, 0, len(m.groups))
	for _, g := range m.groups {
		installations = append(installations, g.Installation)
	}
	ctx := m.ctx

	return func() tea.Msg {
		if root == "" || len(installations) == 0 {
			return watchClosedMsg{}
		}
		w, err := vscode.NewStoreWatcher(root, installations, vscode.DefaultDebounce)
		if err != nil {
			tuilog.Log.Error("TUI: cannot start store watcher", "error", err)
			return watchClosedMsg{}
		}
		return watchStartedMsg{watcher: w, events: w.Start(ctx)}
	}
}

// waitForStoreEvent blocks until the next store change.
func waitForStoreEvent(events <-chan vscode.StoreEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return watchClosedMsg{}
		}
		return storeChangedMsg{event: ev, events: events}
	}
}
