package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":          DefaultPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
	"dracula":          DraculaPreset,
	"nord":             NordPreset,
}

// DefaultPreset is the halfmoon color scheme (dark values of styles.go).
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default halfmoon theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#CCCCCC",
		TokenTextSecondary:   "#BBBBBB",
		TokenTextMuted:       "#696969",
		TokenTextPlaceholder: "#777777",

		TokenBorderDefault: "#696969",
		TokenBorderFocus:   "#54A0FF",

		TokenStatusSuccess: "#73F59F",
		TokenStatusWarning: "#FECA57",
		TokenStatusError:   "#FF8787",

		TokenSelectionIndicator:  "#FFFFFF",
		TokenSelectionBackground: "#444444",
		TokenSelectionForeground: "#FFFFFF",

		TokenVimNormal:   "#54A0FF",
		TokenVimInsert:   "#73F59F",
		TokenVimVisual:   "#7D56F4",
		TokenVimOperator: "#FECA57",

		TokenRoleUser: "#89B4FA",
		TokenRoleNote: "#CBA6F7",
	},
}

// CatppuccinMochaPreset is the Catppuccin Mocha theme.
var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Description: "Soothing pastel theme (dark)",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#CDD6F4", // text
		TokenTextSecondary:   "#BAC2DE", // subtext1
		TokenTextMuted:       "#6C7086", // overlay0
		TokenTextPlaceholder: "#585B70", // surface2

		TokenBorderDefault: "#45475A", // surface1
		TokenBorderFocus:   "#CDD6F4", // text

		TokenStatusSuccess: "#A6E3A1", // green
		TokenStatusWarning: "#F9E2AF", // yellow
		TokenStatusError:   "#F38BA8", // red

		TokenSelectionIndicator:  "#CDD6F4",
		TokenSelectionBackground: "#45475A",
		TokenSelectionForeground: "#CDD6F4",

		TokenVimNormal:   "#89B4FA", // blue
		TokenVimInsert:   "#A6E3A1", // green
		TokenVimVisual:   "#CBA6F7", // mauve
		TokenVimOperator: "#FAB387", // peach

		TokenRoleUser: "#89B4FA", // blue
		TokenRoleNote: "#CBA6F7", // mauve
	},
}

// DraculaPreset is the Dracula theme.
var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dark theme with vibrant colors",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#F8F8F2", // foreground
		TokenTextSecondary:   "#BFBFBF",
		TokenTextMuted:       "#6272A4", // comment
		TokenTextPlaceholder: "#6272A4", // comment

		TokenBorderDefault: "#44475A", // current line
		TokenBorderFocus:   "#F8F8F2", // foreground

		TokenStatusSuccess: "#50FA7B", // green
		TokenStatusWarning: "#F1FA8C", // yellow
		TokenStatusError:   "#FF5555", // red

		TokenSelectionIndicator:  "#F8F8F2",
		TokenSelectionBackground: "#44475A",
		TokenSelectionForeground: "#F8F8F2",

		TokenVimNormal:   "#8BE9FD", // cyan
		TokenVimInsert:   "#50FA7B", // green
		TokenVimVisual:   "#BD93F9", // purple
		TokenVimOperator: "#FFB86C", // orange

		TokenRoleUser: "#8BE9FD", // cyan
		TokenRoleNote: "#FF79C6", // pink
	},
}

// NordPreset is the Nord theme.
var NordPreset = Preset{
	Name:        "nord",
	Description: "Arctic, north-bluish color palette",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#ECEFF4", // snow storm 3
		TokenTextSecondary:   "#D8DEE9", // snow storm 1
		TokenTextMuted:       "#4C566A", // polar night 4
		TokenTextPlaceholder: "#4C566A", // polar night 4

		TokenBorderDefault: "#3B4252", // polar night 2
		TokenBorderFocus:   "#ECEFF4", // snow storm 3

		TokenStatusSuccess: "#A3BE8C", // aurora green
		TokenStatusWarning: "#EBCB8B", // aurora yellow
		TokenStatusError:   "#BF616A", // aurora red

		TokenSelectionIndicator:  "#ECEFF4",
		TokenSelectionBackground: "#434C5E",
		TokenSelectionForeground: "#ECEFF4",

		TokenVimNormal:   "#88C0D0", // frost 2
		TokenVimInsert:   "#A3BE8C", // aurora green
		TokenVimVisual:   "#B48EAD", // aurora purple
		TokenVimOperator: "#D08770", // aurora orange

		TokenRoleUser: "#88C0D0", // frost 2
		TokenRoleNote: "#B48EAD", // aurora purple
	},
}
