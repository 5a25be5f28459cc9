package vscode

import (
	"context"

	"github.com/wethinkt/go-vstoolbox/internal/tuilog"
)

// HistoryReader reads the history of one installation.
type HistoryReader func(ctx context.Context, inst Installation, root string) (EntryList, error)

// Locator returns the discovered installations and the root they live under.
type Locator func() ([]Installation, string)

// Cache holds the aggregated history of every discovered installation.
// It is filled lazily on the first call to Entries after construction or
// Refresh; the entries are never persisted.
type Cache struct {
	locate Locator
	read   HistoryReader

	loaded bool
	root   string
	groups []AggregatedEntries
}

// NewCache creates a cache that discovers installations on the host.
func NewCache() *Cache {
	return NewCacheWith(DiscoverInstalled, ReadHistory)
}

// NewCacheWith creates a cache with custom discovery and read functions.
func NewCacheWith(locate Locator, read HistoryReader) *Cache {
	return &Cache{locate: locate, read: read}
}

// Loaded reports whether the cache currently holds data.
func (c *Cache) Loaded() bool {
	return c.loaded
}

// Root returns the app-data root used by the last load.
func (c *Cache) Root() string {
	return c.root
}

// Refresh clears the cache so the next Entries call rereads every store.
func (c *Cache) Refresh() {
	c.loaded = false
	c.groups = nil
	c.root = ""
}

// Entries returns the aggregated entries, loading them first if needed.
// A failed read yields an empty list for that installation with Err set.
func (c *Cache) Entries(ctx context.Context) []AggregatedEntries {
	if c.loaded {
		return c.groups
	}

	installations, root := c.locate()
	groups := make([]AggregatedEntries, 0, len(installations))
	for _, inst := range installations {
		list, err := c.read(ctx, inst, root)
		if err != nil {
			tuilog.Log.Warn("Cache: history unavailable", "installation", inst.ID(), "kind", ReadErrorKind(err), "error", err)
			list = EntryList{}
		}
		groups = append(groups, AggregatedEntries{
			Installation: inst,
			Entries:      list,
			Err:          err,
		})
	}

	c.groups = groups
	c.root = root
	c.loaded = true
	return c.groups
}
