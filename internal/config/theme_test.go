package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/Karvyz/halfmoon/internal/ui/styles"
)

func resetTheme(t *testing.T) {
	t.Helper()
	t.Cleanup(func() { _ = styles.ApplyTheme(styles.ThemeConfig{}) })
}

// TestThemeConfig_WithPreset tests loading a config file with a preset.
func TestThemeConfig_WithPreset(t *testing.T) {
	resetTheme(t)
	cfg := loadConfigFromYAML(t, `
theme:
  preset: catppuccin-mocha
`)

	require.Equal(t, "catppuccin-mocha", cfg.Theme.Preset)

	require.NoError(t, styles.ApplyTheme(cfg.Theme.Styles()))
	// Catppuccin Mocha uses #CDD6F4 for text.primary
	require.Equal(t, "#CDD6F4", styles.TextPrimaryColor.Dark)
}

// TestThemeConfig_WithColorOverridesFromYAML tests dotted and nested overrides.
func TestThemeConfig_WithColorOverridesFromYAML(t *testing.T) {
	resetTheme(t)
	cfg := loadConfigFromYAML(t, `
theme:
  colors:
    "vim.insert": "#00FF00"
    vim:
      visual: "#0000FF"
`)

	require.NoError(t, styles.ApplyTheme(cfg.Theme.Styles()))
	require.Equal(t, "#00FF00", styles.VimInsertModeColor.Dark)
	require.Equal(t, "#0000FF", styles.VimVisualModeColor.Dark)
}

// TestThemeConfig_PresetWithOverrides tests that overrides win over the preset.
func TestThemeConfig_PresetWithOverrides(t *testing.T) {
	resetTheme(t)
	cfg := loadConfigFromYAML(t, `
theme:
  preset: dracula
  colors:
    "vim.normal": "#ABCDEF"
`)

	require.NoError(t, styles.ApplyTheme(cfg.Theme.Styles()))
	require.Equal(t, "#ABCDEF", styles.VimNormalModeColor.Dark)
	require.Equal(t, "#F8F8F2", styles.TextPrimaryColor.Dark)
}

func TestThemeConfig_InvalidColorToken(t *testing.T) {
	cfg := loadConfigFromYAML(t, `
theme:
  colors:
    "vim.replace": "#FF0000"
`)

	err := styles.ValidateTheme(cfg.Theme.Styles())
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown color token")
}

func TestThemeConfig_InvalidHexColor(t *testing.T) {
	cfg := loadConfigFromYAML(t, `
theme:
  colors:
    "vim.insert": "green"
`)

	err := styles.ValidateTheme(cfg.Theme.Styles())
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid hex color")
}

// TestThemeConfig_AllPresets verifies every built-in preset loads and validates.
func TestThemeConfig_AllPresets(t *testing.T) {
	resetTheme(t)
	for name := range styles.Presets {
		t.Run(name, func(t *testing.T) {
			cfg := loadConfigFromYAML(t, "theme:\n  preset: "+name+"\n")
			require.NoError(t, styles.ApplyTheme(cfg.Theme.Styles()))
		})
	}
}

// loadConfigFromYAML is a helper to load config from YAML string.
func loadConfigFromYAML(t *testing.T, yaml string) Config {
	t.Helper()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configPath, []byte(yaml), 0644)
	require.NoError(t, err)

	// Use custom key delimiter "::" to allow dotted keys like "vim.insert"
	// in the theme.colors map without viper treating them as nested paths.
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigFile(configPath)
	err = v.ReadInConfig()
	require.NoError(t, err)

	var cfg Config
	err = v.Unmarshal(&cfg)
	require.NoError(t, err)

	return cfg
}
