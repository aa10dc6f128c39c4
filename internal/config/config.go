// Package config loads and validates the editor's rendering
// configuration from TOML files.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/realbigsean/helix/internal/renderer/core"
)

// Config is the root configuration document.
type Config struct {
	Editor     EditorConfig     `toml:"editor"`
	Suggestion SuggestionConfig `toml:"suggestion"`
	Scripts    []ScriptConfig   `toml:"scripts"`
}

// EditorConfig controls text layout.
type EditorConfig struct {
	// TabWidth is the tab stop interval in columns.
	TabWidth int `toml:"tab_width"`

	// SoftWrap wraps long lines at the viewport edge instead of
	// clipping them.
	SoftWrap bool `toml:"soft_wrap"`
}

// SuggestionConfig controls inline completion ghost text.
type SuggestionConfig struct {
	Enabled bool `toml:"enabled"`

	// Color is the ghost text foreground as a hex string ("#6c6c6c").
	Color  string `toml:"color"`
	Italic bool   `toml:"italic"`
}

// ScriptConfig registers a Lua decoration script.
type ScriptConfig struct {
	Path  string `toml:"path"`
	Color string `toml:"color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			TabWidth: 4,
			SoftWrap: true,
		},
		Suggestion: SuggestionConfig{
			Enabled: true,
			Color:   "#6c6c6c",
			Italic:  true,
		},
	}
}

// ParseError describes a malformed configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing config %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads the configuration at path, layered over the defaults.
// A missing file is not an error; the defaults are returned as-is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and color syntax.
func (c *Config) Validate() error {
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		return fmt.Errorf("editor.tab_width %d out of range [1,16]", c.Editor.TabWidth)
	}
	if c.Suggestion.Color != "" {
		if _, err := core.ColorFromHex(c.Suggestion.Color); err != nil {
			return fmt.Errorf("suggestion.color: %w", err)
		}
	}
	for i, s := range c.Scripts {
		if s.Path == "" {
			return fmt.Errorf("scripts[%d]: path is required", i)
		}
		if s.Color != "" {
			if _, err := core.ColorFromHex(s.Color); err != nil {
				return fmt.Errorf("scripts[%d].color: %w", i, err)
			}
		}
	}
	return nil
}

// SuggestionStyle resolves the ghost text style. Without a configured
// color the foreground is derived by dimming white toward the
// background, so ghost text reads as muted even on terminals that
// ignore the faint attribute. Invalid colors were rejected by
// Validate, so a parse failure here falls back to that derived gray.
func (c *Config) SuggestionStyle() core.Style {
	style := core.NewStyle(core.ColorWhite.Dimmed(core.ColorBlack, 0.45)).Dim()
	if c.Suggestion.Color != "" {
		if col, err := core.ColorFromHex(c.Suggestion.Color); err == nil {
			style = core.NewStyle(col)
		}
	}
	if c.Suggestion.Italic {
		style = style.Italic()
	}
	return style
}

// ScriptStyle resolves the style for a registered script: the script's
// color layered over the de-emphasized overlay base.
func (c *Config) ScriptStyle(s ScriptConfig) core.Style {
	base := core.DefaultStyle().Dim()
	if s.Color == "" {
		return base
	}
	col, err := core.ColorFromHex(s.Color)
	if err != nil {
		return base
	}
	return base.Merge(core.NewStyle(col))
}
