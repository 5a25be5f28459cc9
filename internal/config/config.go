// Package config provides application state persistence for vstoolbox.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/wethinkt/go-vstoolbox/internal/filter"
	"github.com/wethinkt/go-vstoolbox/internal/pins"
	"github.com/wethinkt/go-vstoolbox/internal/tuilog"
)

// HomeEnv overrides the configuration directory.
const HomeEnv = "VSTOOLBOX_HOME"

// Config holds the persisted vstoolbox state.
type Config struct {
	Theme        string         `json:"theme"`                   // Name of the active theme
	Filter       filter.Options `json:"filter"`                  // Search text and visibility toggles
	Pins         []pins.Pin     `json:"pins"`                    // Pinned entries, most recent first
	Language     string         `json:"language,omitempty"`      // UI language tag (empty = auto)
	DetachLaunch bool           `json:"detach_launch,omitempty"` // Launch the editor without waiting for it

	// Pins this build cannot decode, such as ones naming an installation
	// added by a newer version. They are written back unchanged by Save.
	unknownPins []json.RawMessage
}

// fileConfig is the on-disk form. Pins are decoded one at a time so a
// single unreadable pin does not reject the whole file.
type fileConfig struct {
	Config
	Pins []json.RawMessage `json:"pins"`
}

// Dir returns the path to the .vstoolbox directory.
func Dir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".vstoolbox"), nil
}

// Path returns the path to the main config file.
func Path() (string, error) {
	configDir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// Load loads the configuration from ~/.vstoolbox/config.json.
// A missing file yields the defaults.
func Load() (Config, error) {
	configPath, err := Path()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return Default(), nil
	} else if err != nil {
		return Config{}, err
	}

	// Start from defaults so keys missing from older files keep
	// their default values.
	file := fileConfig{Config: Default()}
	if err := json.Unmarshal(data, &file); err != nil {
		return Config{}, err
	}
	config := file.Config
	if config.Theme == "" {
		config.Theme = "dark"
	}

	config.Pins = make([]pins.Pin, 0, len(file.Pins))
	for _, raw := range file.Pins {
		var p pins.Pin
		if err := json.Unmarshal(raw, &p); err != nil {
			tuilog.Log.Warn("Config: keeping unreadable pin as is", "error", err)
			config.unknownPins = append(config.unknownPins, raw)
			continue
		}
		config.Pins = append(config.Pins, p)
	}

	// Drop duplicated pins a hand-edited file may carry.
	config.Pins = pins.FromPins(config.Pins).All()

	return config, nil
}

// Default returns a default configuration with all defaults set.
func Default() Config {
	return Config{
		Theme:  "dark",
		Filter: filter.Default(),
		Pins:   []pins.Pin{},
	}
}

// Save saves the configuration to ~/.vstoolbox/config.json.
func Save(config Config) error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	file := fileConfig{Config: config, Pins: make([]json.RawMessage, 0, len(config.Pins)+len(config.unknownPins))}
	for _, p := range config.Pins {
		raw, err := json.Marshal(p)
		if err != nil {
			return err
		}
		file.Pins = append(file.Pins, raw)
	}
	file.Pins = append(file.Pins, config.unknownPins...)

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}
