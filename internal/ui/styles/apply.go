package styles

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Preset string
	Colors map[string]string
}

// ApplyTheme applies a complete theme configuration.
// Order of application:
// 1. Start with default colors
// 2. Apply preset (if specified)
// 3. Apply individual color overrides
// 4. Rebuild all Style objects
func ApplyTheme(cfg ThemeConfig) error {
	colors := maps.Clone(DefaultPreset.Colors)

	if cfg.Preset != "" && cfg.Preset != "default" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
	}

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	applyColors(colors)
	rebuildStyles()
	return nil
}

// ValidateTheme checks a theme configuration without applying it.
func ValidateTheme(cfg ThemeConfig) error {
	if cfg.Preset != "" && cfg.Preset != "default" {
		if _, ok := Presets[cfg.Preset]; !ok {
			return fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
	}
	for key, value := range cfg.Colors {
		if !isValidToken(ColorToken(key)) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
	}
	return nil
}

func applyColors(colors map[ColorToken]string) {
	// Helper to create adaptive color (uses same color for both modes)
	makeColor := func(hex string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: hex, Dark: hex}
	}

	targets := map[ColorToken]*lipgloss.AdaptiveColor{
		TokenTextPrimary:         &TextPrimaryColor,
		TokenTextSecondary:       &TextSecondaryColor,
		TokenTextMuted:           &TextMutedColor,
		TokenTextPlaceholder:     &TextPlaceholderColor,
		TokenBorderDefault:       &BorderDefaultColor,
		TokenBorderFocus:         &BorderFocusColor,
		TokenStatusSuccess:       &StatusSuccessColor,
		TokenStatusWarning:       &StatusWarningColor,
		TokenStatusError:         &StatusErrorColor,
		TokenSelectionIndicator:  &SelectionIndicatorColor,
		TokenSelectionBackground: &SelectionBackgroundColor,
		TokenSelectionForeground: &SelectionForegroundColor,
		TokenVimNormal:           &VimNormalModeColor,
		TokenVimInsert:           &VimInsertModeColor,
		TokenVimVisual:           &VimVisualModeColor,
		TokenVimOperator:         &VimOperatorModeColor,
		TokenRoleUser:            &RoleUserColor,
		TokenRoleNote:            &RoleNoteColor,
	}
	for token, target := range targets {
		if c, ok := colors[token]; ok {
			*target = makeColor(c)
		}
	}
}

func isValidToken(token ColorToken) bool {
	return slices.Contains(AllTokens(), token)
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
