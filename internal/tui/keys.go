package tui

import "charm.land/bubbles/v2/key"

// keyMap defines the key bindings of the recents list.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PgUp     key.Binding
	PgDown   key.Binding
	Home     key.Binding
	End      key.Binding
	Open     key.Binding
	Pin      key.Binding
	Search   key.Binding
	Refresh  key.Binding
	ShowAll  key.Binding
	Quit     key.Binding
	Back     key.Binding
	Help     key.Binding
	Confirm  key.Binding
	ClearAll key.Binding

	// Installation toggles
	ToggleVSCode      key.Binding
	ToggleInsiders    key.Binding
	ToggleExploration key.Binding
	ToggleVSCodium    key.Binding

	// Connection kind toggles
	ToggleHost         key.Binding
	ToggleWSL          key.Binding
	ToggleDevContainer key.Binding
	ToggleSSH          key.Binding
	ToggleRemoteRepos  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PgUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PgDown: key.NewBinding(
			key.WithKeys("pgdown", "space"),
			key.WithHelp("pgdn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("enter", "open"),
		),
		Pin: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pin/unpin"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r", "r"),
			key.WithHelp("r", "refresh"),
		),
		ShowAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "show all"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "done"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear"),
		),

		ToggleVSCode: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "VS Code"),
		),
		ToggleInsiders: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Insiders"),
		),
		ToggleExploration: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Exploration"),
		),
		ToggleVSCodium: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "VSCodium"),
		),

		ToggleHost: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "host"),
		),
		ToggleWSL: key.NewBinding(
			key.WithKeys("6"),
			key.WithHelp("6", "WSL"),
		),
		ToggleDevContainer: key.NewBinding(
			key.WithKeys("7"),
			key.WithHelp("7", "dev container"),
		),
		ToggleSSH: key.NewBinding(
			key.WithKeys("8"),
			key.WithHelp("8", "SSH"),
		),
		ToggleRemoteRepos: key.NewBinding(
			key.WithKeys("9"),
			key.WithHelp("9", "remote repos"),
		),
	}
}
