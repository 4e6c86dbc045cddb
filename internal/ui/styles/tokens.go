package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens organized by category.
// These are the keys users can override in their config.
const (
	// Text hierarchy
	TokenTextPrimary     ColorToken = "text.primary"
	TokenTextSecondary   ColorToken = "text.secondary"
	TokenTextMuted       ColorToken = "text.muted"
	TokenTextPlaceholder ColorToken = "text.placeholder"

	// Borders
	TokenBorderDefault ColorToken = "border.default"
	TokenBorderFocus   ColorToken = "border.focus"

	// Status indicators
	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"

	// Selection
	TokenSelectionIndicator  ColorToken = "selection.indicator"
	TokenSelectionBackground ColorToken = "selection.background"
	TokenSelectionForeground ColorToken = "selection.foreground"

	// Vim modes
	TokenVimNormal   ColorToken = "vim.normal"
	TokenVimInsert   ColorToken = "vim.insert"
	TokenVimVisual   ColorToken = "vim.visual"
	TokenVimOperator ColorToken = "vim.operator"

	// Transcript roles
	TokenRoleUser ColorToken = "role.user"
	TokenRoleNote ColorToken = "role.note"
)

// AllTokens returns all valid color tokens for validation.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenTextPrimary,
		TokenTextSecondary,
		TokenTextMuted,
		TokenTextPlaceholder,

		TokenBorderDefault,
		TokenBorderFocus,

		TokenStatusSuccess,
		TokenStatusWarning,
		TokenStatusError,

		TokenSelectionIndicator,
		TokenSelectionBackground,
		TokenSelectionForeground,

		TokenVimNormal,
		TokenVimInsert,
		TokenVimVisual,
		TokenVimOperator,

		TokenRoleUser,
		TokenRoleNote,
	}
}
