// Package config defines core configuration types for inkwell. These are
// pure data structures; discovery and merging live in the configloader.
package config

import (
	"fmt"
	"slices"
)

// Flavor specifies the Markdown flavor used by the format bridge.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// IsValid returns true if the flavor is a known valid flavor.
func (f Flavor) IsValid() bool {
	switch f {
	case FlavorCommonMark, FlavorGFM:
		return true
	default:
		return false
	}
}

// Themes available to the editor.
const (
	ThemeDefault = "default"
	ThemeDark    = "dark"
	ThemeLight   = "light"
	ThemeMono    = "mono"
)

// ThemeNames lists the valid theme names in cycle order.
func ThemeNames() []string {
	return []string{ThemeDefault, ThemeDark, ThemeLight, ThemeMono}
}

// BackupsConfig controls backup behavior when overwriting files.
type BackupsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Mode    string `yaml:"mode"` // "sidecar", "timestamp", or "none"
}

// Config is the root configuration structure for inkwell.
type Config struct {
	// Theme names the editor color theme.
	Theme string `yaml:"theme"`

	// Format is the active export format, "markdown" or "html".
	Format string `yaml:"format"`

	// Flavor specifies the Markdown flavor ("commonmark" or "gfm").
	Flavor Flavor `yaml:"flavor"`

	// HistoryLimit bounds the undo stack.
	HistoryLimit int `yaml:"history_limit"`

	// Autosave persists the session when the editor quits.
	Autosave bool `yaml:"autosave"`

	// StateFile overrides the session state file location.
	StateFile string `yaml:"state_file"`

	// Backups configures backups before in-place writes.
	Backups BackupsConfig `yaml:"backups"`

	// CLI-level options (not persisted to config files).

	// Debug enables debug logging.
	Debug bool `yaml:"-"`

	// Color is the color mode: "auto", "always", or "never".
	Color string `yaml:"-"`
}

// NewConfig returns a Config with the defaults.
func NewConfig() *Config {
	return &Config{
		Theme:        ThemeDefault,
		Format:       "markdown",
		Flavor:       FlavorGFM,
		HistoryLimit: 100,
		Autosave:     true,
		Backups: BackupsConfig{
			Enabled: true,
			Mode:    "sidecar",
		},
		Color: "auto",
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if !slices.Contains(ThemeNames(), c.Theme) {
		return fmt.Errorf("invalid theme %q; valid themes: default, dark, light, mono", c.Theme)
	}
	if c.Format != "markdown" && c.Format != "html" {
		return fmt.Errorf("invalid format %q; valid formats: markdown, html", c.Format)
	}
	if !c.Flavor.IsValid() {
		return fmt.Errorf("invalid flavor %q; valid flavors: commonmark, gfm", c.Flavor)
	}
	if c.HistoryLimit < 1 {
		return fmt.Errorf("history_limit must be at least 1, got %d", c.HistoryLimit)
	}
	switch c.Backups.Mode {
	case "sidecar", "timestamp", "none":
	default:
		return fmt.Errorf("invalid backup mode %q; valid modes: sidecar, timestamp, none", c.Backups.Mode)
	}
	return nil
}
