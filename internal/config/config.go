// Package config loads termcube settings from a TOML file.
//
// Settings from the file are overlaid onto built-in defaults, so a
// config file only needs the keys it wants to change. A missing file
// means all defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/seamusw/termcube"
)

// Config holds the user-tunable settings.
type Config struct {
	UI     UIConfig
	Colors map[string]string // color letter -> terminal color value
	Keys   map[string]string // key -> move notation, empty to unbind
}

// UIConfig controls how the cube is drawn.
type UIConfig struct {
	Scale  int
	Labels bool
}

// fileConfig mirrors the TOML layout of config.toml.
type fileConfig struct {
	UI struct {
		Scale  int  `toml:"scale"`
		Labels bool `toml:"labels"`
	} `toml:"ui"`
	Colors map[string]string `toml:"colors"`
	Keys   map[string]string `toml:"keys"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		UI:     UIConfig{Scale: 2, Labels: false},
		Colors: map[string]string{},
		Keys:   map[string]string{},
	}
}

// DefaultPath returns the standard config location, ~/.termcube/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".termcube", "config.toml"), nil
}

// Load reads the config file at path and overlays it onto the defaults.
// Only keys actually present in the file override anything. A missing
// file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if meta.IsDefined("ui", "scale") {
		cfg.UI.Scale = raw.UI.Scale
	}
	if meta.IsDefined("ui", "labels") {
		cfg.UI.Labels = raw.UI.Labels
	}
	for letter, value := range raw.Colors {
		cfg.Colors[letter] = value
	}
	for key, notation := range raw.Keys {
		cfg.Keys[key] = notation
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.UI.Scale < 1 || c.UI.Scale > 3 {
		return fmt.Errorf("ui.scale must be between 1 and 3, got %d", c.UI.Scale)
	}
	for letter := range c.Colors {
		if _, err := termcube.ParseColor(letter); err != nil {
			return fmt.Errorf("colors: unknown sticker letter %q", letter)
		}
	}
	for key, notation := range c.Keys {
		if notation == "" {
			continue
		}
		if _, err := termcube.ParseMove(notation); err != nil {
			return fmt.Errorf("keys: %q is bound to invalid move %q", key, notation)
		}
	}
	return nil
}
