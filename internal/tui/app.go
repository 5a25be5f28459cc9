// Package tui implements the interactive recents list.
package tui

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/wethinkt/go-vstoolbox/internal/config"
	"github.com/wethinkt/go-vstoolbox/internal/filter"
	"github.com/wethinkt/go-vstoolbox/internal/i18n"
	"github.com/wethinkt/go-vstoolbox/internal/pins"
	"github.com/wethinkt/go-vstoolbox/internal/tui/theme"
	"github.com/wethinkt/go-vstoolbox/internal/tuilog"
	"github.com/wethinkt/go-vstoolbox/internal/vscode"
)

// LaunchFunc opens folderURI with inst.
type LaunchFunc func(ctx context.Context, inst vscode.Installation, folderURI string) error

// Options configures a Model.
type Options struct {
	Config config.Config
	Cache  *vscode.Cache
	Theme  theme.Theme

	// Watch reloads the history when a settings store changes.
	Watch bool

	// Launch defaults to vscode.Launch, or vscode.LaunchDetached when
	// Config.DetachLaunch is set.
	Launch LaunchFunc

	// Save persists the state on exit. Defaults to config.Save.
	Save func(config.Config) error
}

// row is one line of the list: a pinned entry or a main feed entry.
type row struct {
	entry  vscode.Entry
	inst   vscode.Installation
	pinned bool
}

// Model is the bubbletea model of the recents list. It owns the cache,
// the filter options and the pin registry.
type Model struct {
	cfg    config.Config
	cache  *vscode.Cache
	opts   filter.Options
	pins   *pins.Registry
	launch LaunchFunc
	save   func(config.Config) error
	styles Styles
	keys   keyMap

	groups  []vscode.AggregatedEntries
	rows    []row
	cursor  int
	offset  int
	loading bool

	search    textinput.Model
	searching bool
	showHelp  bool

	status    string
	statusErr bool

	watch   bool
	watcher *vscode.StoreWatcher
	ctx     context.Context
	cancel  context.CancelFunc

	width    int
	height   int
	quitting bool
	saveErr  error
}

type historyLoadedMsg struct {
	groups []vscode.AggregatedEntries
}

type launchDoneMsg struct {
	title string
	err   error
}

type storeChangedMsg struct {
	event  vscode.StoreEvent
	events <-chan vscode.StoreEvent
}

type watchStartedMsg struct {
	watcher *vscode.StoreWatcher
	events  <-chan vscode.StoreEvent
}

type watchClosedMsg struct{}

// NewModel creates the recents list model.
func NewModel(opts Options) Model {
	cache := opts.Cache
	if cache == nil {
		cache = vscode.NewCache()
	}
	launch := opts.Launch
	if launch == nil {
		launch = vscode.Launch
		if opts.Config.DetachLaunch {
			launch = func(_ context.Context, inst vscode.Installation, uri string) error {
				return vscode.LaunchDetached(inst, uri)
			}
		}
	}
	save := opts.Save
	if save == nil {
		save = config.Save
	}
	th := opts.Theme
	if th.Name == "" {
		th = theme.DefaultTheme()
	}

	ti := textinput.New()
	ti.Placeholder = i18n.T("tui.search.placeholder", "Filter by path...")
	ti.Prompt = "/ "
	ti.CharLimit = 256
	ti.SetValue(opts.Config.Filter.Search)

	ctx, cancel := context.WithCancel(context.Background())
	return Model{
		cfg:     opts.Config,
		cache:   cache,
		opts:    opts.Config.Filter,
		pins:    pins.FromPins(opts.Config.Pins),
		launch:  launch,
		save:    save,
		styles:  buildStyles(th),
		keys:    defaultKeyMap(),
		search:  ti,
		watch:   opts.Watch,
		ctx:     ctx,
		cancel:  cancel,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

// loadCmd reads every installation's history off the update loop.
func (m Model) loadCmd() tea.Cmd {
	cache := m.cache
	ctx := m.ctx
	return func() tea.Msg {
		return historyLoadedMsg{groups: cache.Entries(ctx)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.SetWidth(max(10, m.width-4))
		m.clampCursor()
		return m, nil

	case historyLoadedMsg:
		m.loading = false
		m.groups = msg.groups
		m.rebuildRows()
		m.reportReadErrors()
		if m.watch && m.watcher == nil {
			return m, m.startWatchCmd()
		}
		return m, nil

	case watchStartedMsg:
		m.watcher = msg.watcher
		return m, waitForStoreEvent(msg.events)

	case storeChangedMsg:
		tuilog.Log.Info("TUI: store changed, reloading", "installation", msg.event.Installation.ID())
		next := waitForStoreEvent(msg.events)
		if m.loading {
			return m, next
		}
		m.cache.Refresh()
		m.loading = true
		return m, tea.Batch(m.loadCmd(), next)

	case watchClosedMsg:
		return m, nil

	case launchDoneMsg:
		if msg.err != nil {
			m.setError(i18n.Tf("tui.status.launchFailed", "Could not open %s: %v", msg.title, msg.err))
		} else {
			m.setStatus(i18n.Tf("tui.status.launched", "Opened %s", msg.title))
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}

	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Back):
		m.searching = false
		m.search.Blur()
		return m, nil
	case msg.String() == "ctrl+c":
		return m.quit()
	case key.Matches(msg, m.keys.ClearAll):
		m.search.SetValue("")
	default:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.applySearch()
		return m, cmd
	}
	m.applySearch()
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Back):
		if m.opts.Search != "" {
			m.search.SetValue("")
			m.applySearch()
		} else if m.showHelp {
			m.showHelp = false
		}

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PgUp):
		m.moveCursor(-m.listHeight())
	case key.Matches(msg, m.keys.PgDown):
		m.moveCursor(m.listHeight())
	case key.Matches(msg, m.keys.Home):
		m.moveCursor(-len(m.rows))
	case key.Matches(msg, m.keys.End):
		m.moveCursor(len(m.rows))

	case key.Matches(msg, m.keys.Open):
		return m, m.openSelected()

	case key.Matches(msg, m.keys.Pin):
		m.togglePinSelected()

	case key.Matches(msg, m.keys.Refresh):
		if !m.loading {
			m.cache.Refresh()
			m.loading = true
			m.setStatus(i18n.T("tui.status.refreshing", "Reloading history..."))
			return m, m.loadCmd()
		}

	case key.Matches(msg, m.keys.ShowAll):
		m.opts.SetAll()
		m.search.SetValue("")
		m.rebuildRows()

	default:
		if m.toggleFilter(msg) {
			m.rebuildRows()
		}
	}
	return m, nil
}

// toggleFilter applies an installation or kind toggle key.
func (m *Model) toggleFilter(msg tea.KeyMsg) bool {
	installations := []struct {
		binding key.Binding
		inst    vscode.Installation
	}{
		{m.keys.ToggleVSCode, vscode.Stable},
		{m.keys.ToggleInsiders, vscode.Insiders},
		{m.keys.ToggleExploration, vscode.Exploration},
		{m.keys.ToggleVSCodium, vscode.VSCodium},
	}
	for _, t := range installations {
		if key.Matches(msg, t.binding) {
			m.opts.ToggleInstallation(t.inst)
			return true
		}
	}

	kinds := []struct {
		binding key.Binding
		kind    vscode.ConnectionKind
	}{
		{m.keys.ToggleHost, vscode.KindHost},
		{m.keys.ToggleWSL, vscode.KindWSL},
		{m.keys.ToggleDevContainer, vscode.KindDevContainer},
		{m.keys.ToggleSSH, vscode.KindSSH},
		{m.keys.ToggleRemoteRepos, vscode.KindRemoteRepository},
	}
	for _, t := range kinds {
		if key.Matches(msg, t.binding) {
			m.opts.ToggleKind(t.kind)
			return true
		}
	}
	return false
}

func (m *Model) applySearch() {
	if m.opts.Search == m.search.Value() {
		return
	}
	m.opts.Search = m.search.Value()
	m.rebuildRows()
}

// rebuildRows lays out the pinned section followed by the main feed.
func (m *Model) rebuildRows() {
	var selected *row
	if m.cursor >= 0 && m.cursor < len(m.rows) {
		r := m.rows[m.cursor]
		selected = &r
	}

	rows := make([]row, 0, m.pins.Len())
	for _, p := range m.pins.All() {
		rows = append(rows, row{entry: p.Entry, inst: p.Installation, pinned: true})
	}
	for _, item := range filter.MainFeed(m.groups, m.opts, m.pins) {
		rows = append(rows, row{entry: item.Entry, inst: item.Installation})
	}
	m.rows = rows

	if selected != nil {
		for i, r := range m.rows {
			if r.entry.Equal(selected.entry) {
				m.cursor = i
				break
			}
		}
	}
	m.clampCursor()
}

func (m *Model) reportReadErrors() {
	var failed []string
	for _, g := range m.groups {
		if g.Err != nil && vscode.ReadErrorKind(g.Err) != "no-history" {
			failed = append(failed, g.Installation.DisplayName())
		}
	}
	switch {
	case len(failed) > 0:
		m.setError(i18n.Tf("tui.status.readFailed", "Could not read history: %s", strings.Join(failed, ", ")))
	case len(m.groups) == 0:
		m.setStatus(i18n.T("tui.status.noInstallations", "No VS Code installations found"))
	case m.status == i18n.T("tui.status.refreshing", "Reloading history..."):
		m.setStatus(i18n.T("tui.status.refreshed", "History reloaded"))
	}
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m Model) selectedRow() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

func (m *Model) togglePinSelected() {
	r, ok := m.selectedRow()
	if !ok {
		return
	}
	if m.pins.Toggle(r.entry, r.inst) {
		m.setStatus(i18n.Tf("tui.status.pinned", "Pinned %s", r.entry.Title()))
	} else {
		m.setStatus(i18n.Tf("tui.status.unpinned", "Unpinned %s", r.entry.Title()))
	}
	m.rebuildRows()
}

func (m *Model) openSelected() tea.Cmd {
	r, ok := m.selectedRow()
	if !ok {
		return nil
	}
	title := r.entry.Title()
	if r.entry.FolderURI == "" {
		m.setError(i18n.Tf("tui.status.noFolder", "%s has no folder to open", title))
		return nil
	}
	m.setStatus(i18n.Tf("tui.status.launching", "Opening %s in %s...", title, r.inst.DisplayName()))

	launch := m.launch
	ctx := m.ctx
	inst := r.inst
	uri := r.entry.FolderURI
	return func() tea.Msg {
		err := launch(ctx, inst, uri)
		if err != nil {
			tuilog.Log.Error("TUI: launch failed", "installation", inst.ID(), "uri", uri, "error", err)
		}
		return launchDoneMsg{title: title, err: err}
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}

// State returns the configuration reflecting the current filter and pins.
func (m Model) State() config.Config {
	cfg := m.cfg
	cfg.Filter = m.opts
	cfg.Pins = m.pins.All()
	return cfg
}

// SaveError returns the error from persisting the state on exit, if any.
func (m Model) SaveError() error {
	return m.saveErr
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if err := m.save(m.State()); err != nil {
		tuilog.Log.Error("TUI: saving state failed", "error", err)
		m.saveErr = err
	}
	if m.watcher != nil {
		_ = m.watcher.Stop()
	}
	m.cancel()
	return m, tea.Quit
}

// listHeight is the number of rows available to the list.
func (m Model) listHeight() int {
	// title, toggles, search, blank, section headers (2), status, help
	h := m.height - 8
	if m.showHelp {
		h -= len(m.helpLines())
	}
	return max(1, h)
}

func (m Model) View() tea.View {
	v := tea.NewView(m.viewContent())
	v.AltScreen = true
	return v
}

func (m Model) viewContent() string {
	if m.quitting {
		return ""
	}
	width := m.width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("vstoolbox"))
	b.WriteString("  ")
	b.WriteString(m.styles.Muted.Render(m.summary()))
	b.WriteString("\n")
	b.WriteString(ansi.Truncate(m.renderToggles(), width, "…"))
	b.WriteString("\n")
	if m.searching || m.opts.Search != "" {
		b.WriteString(m.search.View())
	} else {
		b.WriteString(m.styles.Muted.Render(i18n.T("tui.search.hint", "press / to search")))
	}
	b.WriteString("\n\n")

	if m.loading && len(m.rows) == 0 {
		b.WriteString(m.styles.Secondary.Render(i18n.T("common.loading", "Loading...")))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderRows(width))
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus(width))
	b.WriteString("\n")
	b.WriteString(m.renderHelp(width))
	return b.String()
}

func (m Model) summary() string {
	pinned := m.pins.Len()
	return i18n.Tn("tui.summary.entries", "{{.Count}} entry", "{{.Count}} entries", len(m.rows)-pinned) +
		" · " + i18n.Tn("tui.summary.pinned", "{{.Count}} pinned", "{{.Count}} pinned", pinned)
}

func (m Model) renderToggles() string {
	var parts []string
	for _, inst := range vscode.All() {
		parts = append(parts, m.renderToggle(inst.DisplayName(), m.opts.InstallationEnabled(inst)))
	}
	parts = append(parts, m.styles.Muted.Render("│"))
	for _, kind := range vscode.AllKinds() {
		if kind == vscode.KindUnknown {
			continue
		}
		parts = append(parts, m.renderToggle(kindLabel(kind), m.opts.KindEnabled(kind)))
	}
	return strings.Join(parts, " ")
}

func (m Model) renderToggle(label string, on bool) string {
	if on {
		return m.styles.ToggleOn.Render("[x] " + label)
	}
	return m.styles.ToggleOff.Render("[ ] " + label)
}

// kindLabel returns the localized name of a connection kind.
func kindLabel(kind vscode.ConnectionKind) string {
	switch kind {
	case vscode.KindHost:
		return i18n.T("kind.host", "Host")
	case vscode.KindWSL:
		return i18n.T("kind.wsl", "WSL")
	case vscode.KindDevContainer:
		return i18n.T("kind.devContainer", "Dev Container")
	case vscode.KindSSH:
		return i18n.T("kind.ssh", "SSH")
	case vscode.KindRemoteRepository:
		return i18n.T("kind.remoteRepo", "Remote Repository")
	default:
		return i18n.T("kind.unknown", "Unknown")
	}
}

func (m Model) renderRows(width int) string {
	var b strings.Builder
	pinnedCount := m.pins.Len()
	end := min(len(m.rows), m.offset+m.listHeight())

	for i := m.offset; i < end; i++ {
		if i == m.offset && i < pinnedCount {
			b.WriteString(m.styles.SectionTitle.Render(i18n.T("tui.section.pinned", "Pinned")) + "\n")
		}
		if i == pinnedCount {
			b.WriteString(m.styles.SectionTitle.Render(i18n.T("tui.section.recent", "Recent")) + "\n")
		}
		b.WriteString(m.renderRow(m.rows[i], i == m.cursor, width) + "\n")
	}

	// The main feed is empty: the loop never reached its header.
	if end == len(m.rows) && len(m.rows) == pinnedCount {
		b.WriteString(m.styles.SectionTitle.Render(i18n.T("tui.section.recent", "Recent")) + "\n")
		b.WriteString(m.styles.Muted.Render(i18n.T("tui.feed.empty", "No entries match the current filter")) + "\n")
	}
	return b.String()
}

func (m Model) renderRow(r row, selected bool, width int) string {
	marker := "  "
	if r.pinned {
		marker = m.styles.PinnedMarker.Render("★ ")
	}
	cursor := "  "
	if selected {
		cursor = m.styles.Title.Render("› ")
	}

	kind := r.entry.Kind()
	title := r.entry.Title()
	if title == "" {
		title = r.entry.FolderURI
	}
	titleStyle := m.styles.Primary
	if selected {
		titleStyle = m.styles.Selected
	}

	line := cursor + marker + titleStyle.Render(title) + "  " +
		m.styles.Secondary.Render(r.entry.Path()) + "  " +
		m.styles.KindBadge(kind).Render("["+string(kind)+"]") + " " +
		m.styles.Muted.Render(r.inst.DisplayName())
	return ansi.Truncate(line, width, "…")
}

func (m Model) renderStatus(width int) string {
	if m.status == "" {
		return ""
	}
	style := m.styles.StatusOK
	if m.statusErr {
		style = m.styles.StatusError
	}
	return ansi.Truncate(style.Render(m.status), width, "…")
}

func (m Model) helpLines() []string {
	var bindings [][]key.Binding
	bindings = append(bindings,
		[]key.Binding{m.keys.Up, m.keys.Down, m.keys.PgUp, m.keys.PgDown, m.keys.Home, m.keys.End},
		[]key.Binding{m.keys.Open, m.keys.Pin, m.keys.Search, m.keys.Refresh, m.keys.ShowAll, m.keys.Quit},
		[]key.Binding{m.keys.ToggleVSCode, m.keys.ToggleInsiders, m.keys.ToggleExploration, m.keys.ToggleVSCodium},
		[]key.Binding{m.keys.ToggleHost, m.keys.ToggleWSL, m.keys.ToggleDevContainer, m.keys.ToggleSSH, m.keys.ToggleRemoteRepos},
	)
	var lines []string
	for _, group := range bindings {
		var parts []string
		for _, b := range group {
			h := b.Help()
			parts = append(parts, fmt.Sprintf("%s %s", h.Key, h.Desc))
		}
		lines = append(lines, strings.Join(parts, " · "))
	}
	return lines
}

func (m Model) renderHelp(width int) string {
	if !m.showHelp {
		short := []key.Binding{m.keys.Open, m.keys.Pin, m.keys.Search, m.keys.Refresh, m.keys.Help, m.keys.Quit}
		var parts []string
		for _, b := range short {
			h := b.Help()
			parts = append(parts, h.Key+" "+h.Desc)
		}
		return ansi.Truncate(m.styles.Muted.Render(strings.Join(parts, " · ")), width, "…")
	}
	lines := m.helpLines()
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "…")
	}
	return m.styles.Muted.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
