package vscode

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/wethinkt/go-vstoolbox/internal/tuilog"
)

// HistoryKey is the ItemTable key holding the recently opened list.
const HistoryKey = "history.recentlyOpenedPathsList"

const historyQuery = "SELECT value FROM ItemTable WHERE key = ?"

// Read errors. Every error returned by ReadHistory wraps exactly one of these.
var (
	ErrStoreOpen = errors.New("settings store cannot be opened")
	ErrQuery     = errors.New("settings store query failed")
	ErrNoHistory = errors.New("no recently opened history")
	ErrParse     = errors.New("recently opened history is malformed")
)

// ReadErrorKind returns a short name for the read error class of err,
// or "" when err is nil.
func ReadErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoHistory):
		return "no-history"
	case errors.Is(err, ErrStoreOpen):
		return "store-open"
	case errors.Is(err, ErrQuery):
		return "query"
	case errors.Is(err, ErrParse):
		return "parse"
	default:
		return "error"
	}
}

// StorePath returns the location of an installation's settings store.
func StorePath(inst Installation, root string) string {
	return filepath.Join(root, inst.Dir(), "User", "globalStorage", "state.vscdb")
}

// ReadHistory reads the recently opened list of inst from its settings store
// under root. The store is opened read-only and closed before returning.
func ReadHistory(ctx context.Context, inst Installation, root string) (EntryList, error) {
	defer tuilog.Log.Timed("ReadHistory " + inst.ID())()

	path := StorePath(inst, root)
	info, err := os.Stat(path)
	if err != nil {
		return EntryList{}, fmt.Errorf("%w: %w", ErrStoreOpen, err)
	}
	if info.IsDir() {
		return EntryList{}, fmt.Errorf("%w: %s is a directory", ErrStoreOpen, path)
	}

	db, err := sql.Open("sqlite", storeDSN(path))
	if err != nil {
		return EntryList{}, fmt.Errorf("%w: %s: %w", ErrStoreOpen, path, err)
	}
	defer db.Close()

	// Reading the schema forces SQLite to validate the file header, so
	// locked or corrupt stores surface here rather than as query errors.
	var tables int
	if err := db.QueryRowContext(ctx, "SELECT count(*) FROM sqlite_master").Scan(&tables); err != nil {
		return EntryList{}, fmt.Errorf("%w: %s: %w", ErrStoreOpen, path, err)
	}

	var value []byte
	err = db.QueryRowContext(ctx, historyQuery, HistoryKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return EntryList{}, fmt.Errorf("%w: %s", ErrNoHistory, inst.DisplayName())
	}
	if err != nil {
		return EntryList{}, fmt.Errorf("%w: %w", ErrQuery, err)
	}

	list, err := ParseEntryList(value)
	if err != nil {
		return EntryList{}, err
	}
	tuilog.Log.Debug("ReadHistory: parsed", "installation", inst.ID(), "entries", len(list.Entries))
	return list, nil
}

// ParseEntryList decodes the stored history document. Unknown fields are
// ignored; a document without an entries array is rejected.
func ParseEntryList(data []byte) (EntryList, error) {
	var raw struct {
		Entries *[]Entry `json:"entries"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return EntryList{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if raw.Entries == nil {
		return EntryList{}, fmt.Errorf("%w: missing entries array", ErrParse)
	}
	return EntryList{Entries: *raw.Entries}, nil
}

var uriEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

// storeDSN builds a read-only SQLite URI for path.
func storeDSN(path string) string {
	p := uriEscaper.Replace(filepath.ToSlash(path))
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return "file://" + p + "?mode=ro&_pragma=busy_timeout(2000)"
}
