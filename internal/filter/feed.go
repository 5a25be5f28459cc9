package filter

import "github.com/wethinkt/go-vstoolbox/internal/vscode"

// Item is one row of the main feed.
type Item struct {
	Entry        vscode.Entry        `json:"entry"`
	Installation vscode.Installation `json:"installation"`
}

// PinChecker reports whether an entry is pinned.
type PinChecker interface {
	IsPinned(entry vscode.Entry) bool
}

// MainFeed returns the visible, unpinned entries of groups in installation
// order, keeping each installation's most-recent-first ordering. A nil
// pinned skips pin deduplication.
func MainFeed(groups []vscode.AggregatedEntries, opts Options, pinned PinChecker) []Item {
	var items []Item
	for _, g := range groups {
		if !opts.InstallationEnabled(g.Installation) {
			continue
		}
		for _, e := range g.Entries.Entries {
			if pinned != nil && pinned.IsPinned(e) {
				continue
			}
			if !IsVisible(e, g.Installation, opts) {
				continue
			}
			items = append(items, Item{Entry: e, Installation: g.Installation})
		}
	}
	return items
}
