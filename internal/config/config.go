// Package config provides configuration types and defaults for halfmoon.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/Karvyz/halfmoon/internal/log"
	"github.com/Karvyz/halfmoon/internal/ui/styles"
)

// Config holds all configuration options for halfmoon.
type Config struct {
	Editor  EditorConfig  `mapstructure:"editor"`
	UI      UIConfig      `mapstructure:"ui"`
	Storage StorageConfig `mapstructure:"storage"`
	Theme   ThemeConfig   `mapstructure:"theme"`
}

// EditorConfig holds settings for the modal input box.
type EditorConfig struct {
	StartMode   string `mapstructure:"start_mode"` // "normal" (default) or "insert"
	Placeholder string `mapstructure:"placeholder"`
	MaxHeight   int    `mapstructure:"max_height"` // 0 = unlimited
	TabWidth    int    `mapstructure:"tab_width"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	MarkdownStyle string `mapstructure:"markdown_style"` // "dark" (default), "light", "notty" or "plain"
	ShowBorders   bool   `mapstructure:"show_borders"`
	ShowStatusBar bool   `mapstructure:"show_status_bar"`
}

// StorageConfig holds transcript persistence options.
type StorageConfig struct {
	// Path is the SQLite transcript file.
	// Default: ~/.config/halfmoon/transcript.db
	Path string `mapstructure:"path"`
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Valid values: "default", "catppuccin-mocha", "dracula", "nord"
	Preset string `mapstructure:"preset"`

	// Colors allows overriding individual color tokens.
	// Supports both nested YAML structure and dot notation.
	// Example YAML:
	//   colors:
	//     vim:
	//       insert: "#73F59F"
	// Or quoted dot notation:
	//   colors:
	//     "vim.insert": "#73F59F"
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
// This handles both nested YAML structures and already-flat keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

// Styles converts the theme section into the form styles.ApplyTheme takes.
func (t ThemeConfig) Styles() styles.ThemeConfig {
	return styles.ThemeConfig{
		Preset: t.Preset,
		Colors: t.FlattenedColors(),
	}
}

// flattenColors recursively flattens a nested map into dot-notation keys.
func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any)
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// Valid option values.
var (
	StartModes     = []string{"normal", "insert"}
	MarkdownStyles = []string{"dark", "light", "notty", "plain"}
)

// Validate checks the whole configuration for errors.
// Empty values are valid and fall back to defaults.
func (c Config) Validate() error {
	if err := ValidateEditor(c.Editor); err != nil {
		return err
	}
	if err := ValidateUI(c.UI); err != nil {
		return err
	}
	if err := styles.ValidateTheme(c.Theme.Styles()); err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	return nil
}

// ValidateEditor checks editor configuration for errors.
func ValidateEditor(e EditorConfig) error {
	if e.StartMode != "" && !slices.Contains(StartModes, e.StartMode) {
		return fmt.Errorf("editor.start_mode must be one of %v, got %q", StartModes, e.StartMode)
	}
	if e.TabWidth <= 0 {
		return fmt.Errorf("editor.tab_width must be positive, got %d", e.TabWidth)
	}
	if e.MaxHeight < 0 {
		return fmt.Errorf("editor.max_height must not be negative, got %d", e.MaxHeight)
	}
	return nil
}

// ValidateUI checks UI configuration for errors.
func ValidateUI(ui UIConfig) error {
	if ui.MarkdownStyle != "" && !slices.Contains(MarkdownStyles, ui.MarkdownStyle) {
		return fmt.Errorf("ui.markdown_style must be one of %v, got %q", MarkdownStyles, ui.MarkdownStyle)
	}
	return nil
}

// DefaultStoragePath returns the default transcript database path.
// Returns ~/.config/halfmoon/transcript.db or empty string if home dir unavailable.
func DefaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "halfmoon", "transcript.db")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Editor: EditorConfig{
			StartMode:   "normal",
			Placeholder: "Press i to start typing...",
			MaxHeight:   6,
			TabWidth:    4,
		},
		UI: UIConfig{
			MarkdownStyle: "dark",
			ShowBorders:   true,
			ShowStatusBar: true,
		},
		Storage: StorageConfig{
			Path: DefaultStoragePath(),
		},
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Halfmoon Configuration

# Modal input box
editor:
  start_mode: normal   # "normal" (default) or "insert"
  placeholder: "Press i to start typing..."
  max_height: 6        # Visible lines before the input scrolls (0 = unlimited)
  tab_width: 4         # Spaces inserted by Tab in insert mode

# UI settings
ui:
  markdown_style: dark   # Message rendering: "dark" (default), "light", "notty" or "plain"
  show_borders: true     # Draw titled borders around the transcript and input
  show_status_bar: true  # Show mode and errors at the bottom

# Transcript storage
# storage:
#   path: ~/.config/halfmoon/transcript.db

# Theme configuration
# Use a preset theme or customize individual colors
theme:
  # preset: catppuccin-mocha
  #
  # Available presets:
  #   default           - Default halfmoon theme
  #   catppuccin-mocha  - Warm, cozy dark theme
  #   dracula           - Dark theme with vibrant colors
  #   nord              - Arctic, north-bluish palette
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   vim.normal: "#54A0FF"
  #   vim.insert: "#73F59F"
  #   vim.visual: "#C56CF0"
  #   vim.operator: "#FECA57"
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	// Create parent directory if needed
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	// Write the template
	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
