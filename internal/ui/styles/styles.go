// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"} // Message bodies
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#BBBBBB"} // Timestamps, secondary info
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // Hints, help text, footers
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#777777"} // Input placeholders

	// Semantic color names - Border
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Unfocused borders
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"} // Focused pane

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Success states
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"} // Warnings
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Errors

	// Selection indicator color (used for ">" prefix on the selected message)
	SelectionIndicatorColor = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}

	// Visual-mode selection in the input box
	SelectionBackgroundColor = lipgloss.AdaptiveColor{Light: "#C8C8C8", Dark: "#444444"}
	SelectionForegroundColor = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}

	// Vim mode indicator colors
	VimNormalModeColor   = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#54A0FF"}
	VimInsertModeColor   = lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#73F59F"}
	VimVisualModeColor   = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#7D56F4"}
	VimOperatorModeColor = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#FECA57"}

	// Transcript roles
	RoleUserColor = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"}
	RoleNoteColor = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"}

	// Selection indicator style (used for ">" prefix in the transcript list)
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	// Help footer
	HelpStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	// Message time and edit marker
	TimestampStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	// Error display
	ErrorStyle = lipgloss.NewStyle().
			Foreground(StatusErrorColor).
			Bold(true)

	RoleUserStyle = lipgloss.NewStyle().Bold(true).Foreground(RoleUserColor)
	RoleNoteStyle = lipgloss.NewStyle().Bold(true).Foreground(RoleNoteColor)
)

// rebuildStyles recreates Style values after colors change.
func rebuildStyles() {
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)
	StatusBarStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor).Padding(0, 1)
	HelpStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	TimestampStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor).Bold(true)
	RoleUserStyle = lipgloss.NewStyle().Bold(true).Foreground(RoleUserColor)
	RoleNoteStyle = lipgloss.NewStyle().Bold(true).Foreground(RoleNoteColor)
}
