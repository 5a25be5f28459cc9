// Package theme provides the color themes of the vstoolbox TUI.
package theme

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wethinkt/go-vstoolbox/internal/config"
)

//go:embed themes/*.json
var embeddedThemes embed.FS

// DefaultName is the theme used when none is configured.
const DefaultName = "dark"

// Style defines colors and text attributes for a UI element.
type Style struct {
	Fg        string `json:"fg,omitempty"`
	Bg        string `json:"bg,omitempty"`
	Bold      bool   `json:"bold,omitempty"`
	Italic    bool   `json:"italic,omitempty"`
	Underline bool   `json:"underline,omitempty"`
}

// Theme defines all styles used in the TUI.
type Theme struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	Accent         string `json:"accent,omitempty"`
	BorderActive   string `json:"border_active,omitempty"`
	BorderInactive string `json:"border_inactive,omitempty"`

	TextPrimary   Style `json:"text_primary,omitempty"`
	TextSecondary Style `json:"text_secondary,omitempty"`
	TextMuted     Style `json:"text_muted,omitempty"`

	// Feed rows
	Selected     Style `json:"selected,omitempty"`
	PinnedMarker Style `json:"pinned_marker,omitempty"`
	SectionTitle Style `json:"section_title,omitempty"`

	// Toggle bar
	ToggleOn  Style `json:"toggle_on,omitempty"`
	ToggleOff Style `json:"toggle_off,omitempty"`

	// Connection kind badges, keyed by kind label (host, wsl, ssh, ...)
	KindBadges map[string]Style `json:"kind_badges,omitempty"`

	// Status line
	StatusOK    Style `json:"status_ok,omitempty"`
	StatusError Style `json:"status_error,omitempty"`
}

// Meta holds metadata about an available theme.
type Meta struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Path        string `json:"path,omitempty" yaml:"path,omitempty"` // File path (empty for embedded)
	Embedded    bool   `json:"embedded" yaml:"embedded"`
}

// DefaultTheme returns the embedded dark theme.
func DefaultTheme() Theme {
	theme, _ := LoadEmbedded(DefaultName)
	return theme
}

// LoadEmbedded loads a theme from the embedded themes.
func LoadEmbedded(name string) (Theme, error) {
	data, err := embeddedThemes.ReadFile("themes/" + name + ".json")
	if err != nil {
		return Theme{}, fmt.Errorf("theme %q not found", name)
	}

	var theme Theme
	if err := json.Unmarshal(data, &theme); err != nil {
		return Theme{}, fmt.Errorf("theme %q: %w", name, err)
	}
	theme.Name = name
	return theme, nil
}

// ListEmbedded returns the names of all embedded themes.
func ListEmbedded() []string {
	entries, err := embeddedThemes.ReadDir("themes")
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
		}
	}
	return names
}

// Dir returns the path to the user themes directory.
func Dir() (string, error) {
	configDir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "themes"), nil
}

// ListAvailable returns the embedded themes followed by user themes.
// A user theme shadows an embedded theme of the same name.
func ListAvailable() []Meta {
	byName := make(map[string]Meta)
	for _, name := range ListEmbedded() {
		theme, err := LoadEmbedded(name)
		if err != nil {
			continue
		}
		byName[name] = Meta{Name: name, Description: theme.Description, Embedded: true}
	}

	if themesDir, err := Dir(); err == nil {
		entries, _ := os.ReadDir(themesDir)
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
				continue
			}
			name := strings.TrimSuffix(entry.Name(), ".json")
			path := filepath.Join(themesDir, entry.Name())

			description := "User theme"
			if data, err := os.ReadFile(path); err == nil {
				var t Theme
				if json.Unmarshal(data, &t) == nil && t.Description != "" {
					description = t.Description
				}
			}
			byName[name] = Meta{Name: name, Description: description, Path: path}
		}
	}

	out := make([]Meta, 0, len(byName))
	for _, m := range byName {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LoadByName loads a theme by name, checking user themes first, then embedded.
// User themes start from the default theme so missing fields keep a value.
func LoadByName(name string) (Theme, error) {
	if themesDir, err := Dir(); err == nil {
		data, err := os.ReadFile(filepath.Join(themesDir, name+".json"))
		if err == nil {
			theme := DefaultTheme()
			if err := json.Unmarshal(data, &theme); err != nil {
				return DefaultTheme(), fmt.Errorf("theme %q: %w", name, err)
			}
			theme.Name = name
			return theme, nil
		}
	}
	return LoadEmbedded(name)
}

// Load loads the configured theme, falling back to the default theme.
func Load() (Theme, error) {
	cfg, err := config.Load()
	if err != nil {
		return DefaultTheme(), err
	}
	name := cfg.Theme
	if name == "" {
		name = DefaultName
	}
	theme, err := LoadByName(name)
	if err != nil {
		return DefaultTheme(), err
	}
	return theme, nil
}

// SetActive stores name as the configured theme.
func SetActive(name string) error {
	if _, err := LoadByName(name); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.Theme = name
	return config.Save(cfg)
}

var current *Theme

// Current returns the current theme, loading it on first use.
func Current() Theme {
	if current == nil {
		theme, _ := Load()
		current = &theme
	}
	return *current
}

// Reload forces a reload of the theme from disk.
func Reload() (Theme, error) {
	theme, err := Load()
	current = &theme
	return theme, err
}

// GetAccent returns the accent color, with fallback.
func (t Theme) GetAccent() string {
	if t.Accent != "" {
		return t.Accent
	}
	return "#007ACC"
}

// GetBorderActive returns the active border color.
func (t Theme) GetBorderActive() string {
	if t.BorderActive != "" {
		return t.BorderActive
	}
	return t.GetAccent()
}

// GetBorderInactive returns the inactive border color.
func (t Theme) GetBorderInactive() string {
	if t.BorderInactive != "" {
		return t.BorderInactive
	}
	return "#444444"
}

// KindBadge returns the badge style for a connection kind label.
func (t Theme) KindBadge(kind string) Style {
	if s, ok := t.KindBadges[kind]; ok {
		return s
	}
	return t.TextMuted
}
