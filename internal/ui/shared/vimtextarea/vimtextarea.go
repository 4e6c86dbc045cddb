package vimtextarea

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Karvyz/halfmoon/internal/log"
	"github.com/Karvyz/halfmoon/internal/ui/styles"
)

// Config defines vimtextarea configuration with optional callbacks.
type Config struct {
	// StartMode is the mode a fresh session starts in. Only ModeNormal and
	// ModeInsert are honoured.
	StartMode Mode

	// Placeholder is the text shown when the textarea is empty and unfocused.
	Placeholder string

	// MaxHeight is the maximum display height in lines. 0 means unlimited.
	MaxHeight int

	// TabWidth is the Insert-mode tab stop. 0 means DefaultTabWidth.
	TabWidth int

	// OnSubmit produces a custom message when the editor commits (Enter in Normal).
	// If nil, vimtextarea produces SubmitMsg{Content: content}.
	OnSubmit func(content string) tea.Msg

	// OnCancel produces a custom message when the editor cancels (q in Normal).
	// If nil, vimtextarea produces CancelMsg{Content: content}.
	OnCancel func(content string) tea.Msg

	// OnModeChange produces a custom message when vim mode changes.
	// If nil, vimtextarea produces ModeChangeMsg.
	OnModeChange func(mode Mode, previous Mode) tea.Msg

	// OnChange produces a custom message when content changes.
	// If nil, no message is emitted on content change.
	OnChange func(content string) tea.Msg
}

// Model is the Bubble Tea component around an Editor.
type Model struct {
	config Config
	editor *Editor

	// Display state
	width   int
	height  int
	focused bool

	// First visible display row
	scrollOffset int
}

// SubmitMsg is sent when the editor commits.
type SubmitMsg struct {
	Content string
}

// CancelMsg is sent when the editor cancels. Content is the text at the time
// of cancelling so hosts can keep it as a draft.
type CancelMsg struct {
	Content string
}

// ModeChangeMsg is sent when vim mode changes (if OnModeChange callback is not set).
type ModeChangeMsg struct {
	Mode     Mode
	Previous Mode
}

// ChangeMsg is the payload hosts usually return from OnChange.
type ChangeMsg struct {
	Content string
}

// New creates a new vimtextarea with the given configuration.
func New(cfg Config) Model {
	m := Model{config: cfg}
	m.editor = m.newEditor("")
	return m
}

func (m Model) newEditor(text string) *Editor {
	e := NewEditorWithText(text)
	e.SetTabWidth(m.config.TabWidth)
	e.SetMode(m.config.StartMode)
	return e
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	toks := ClassifyAll(keyMsg)
	if keyMsg.Paste && m.editor.Mode().Kind != KindInsert {
		// pasted text would otherwise run as commands
		log.Debug(log.CatEditor, "paste ignored outside insert", "mode", m.editor.Mode())
		return m, nil
	}
	return m.feed(toks)
}

// Input drives the editor with already classified tokens, as a headless
// session or a test would.
func (m Model) Input(toks ...Token) (Model, tea.Cmd) {
	return m.feed(toks)
}

func (m Model) feed(toks []Token) (Model, tea.Cmd) {
	previousMode := m.editor.Mode()
	previousText := m.editor.Text()

	var cmds []tea.Cmd
	scrolled := false
	for _, tok := range toks {
		sig := m.editor.Input(tok)
		if s := m.editor.LastScroll(); s != ScrollNone {
			m.applyScroll(s)
			scrolled = true
		}
		if sig == Continue {
			continue
		}

		log.Debug(log.CatEditor, "signal", "signal", sig, "mode", m.editor.Mode())
		if sig == Commit {
			cmds = append(cmds, m.submitCmd())
		} else {
			cmds = append(cmds, m.cancelCmd())
		}
		break
	}

	if mode := m.editor.Mode(); mode != previousMode {
		log.Debug(log.CatEditor, "mode change", "from", previousMode, "to", mode)
		cmds = append(cmds, m.modeChangeCmd(previousMode))
	}
	if m.editor.Text() != previousText {
		cmds = append(cmds, m.onChangeCmd())
	}
	if !scrolled {
		m.ensureCursorVisible()
	}
	return m, tea.Batch(cmds...)
}

// applyScroll moves the view without moving the cursor.
func (m *Model) applyScroll(s Scroll) {
	page := max(m.viewHeight(), 1)
	switch s {
	case ScrollLineDown:
		m.scrollOffset++
	case ScrollLineUp:
		m.scrollOffset--
	case ScrollHalfPageDown:
		m.scrollOffset += max(page/2, 1)
	case ScrollHalfPageUp:
		m.scrollOffset -= max(page/2, 1)
	case ScrollPageDown:
		m.scrollOffset += page
	case ScrollPageUp:
		m.scrollOffset -= page
	}
	m.clampScroll()
}

func (m Model) submitCmd() tea.Cmd {
	content := m.editor.Text()
	if m.config.OnSubmit != nil {
		return func() tea.Msg { return m.config.OnSubmit(content) }
	}
	return func() tea.Msg { return SubmitMsg{Content: content} }
}

func (m Model) cancelCmd() tea.Cmd {
	content := m.editor.Text()
	if m.config.OnCancel != nil {
		return func() tea.Msg { return m.config.OnCancel(content) }
	}
	return func() tea.Msg { return CancelMsg{Content: content} }
}

// modeChangeCmd returns a command that emits a mode change message.
func (m Model) modeChangeCmd(previous Mode) tea.Cmd {
	mode := m.editor.Mode()
	if m.config.OnModeChange != nil {
		return func() tea.Msg { return m.config.OnModeChange(mode, previous) }
	}
	return func() tea.Msg { return ModeChangeMsg{Mode: mode, Previous: previous} }
}

// onChangeCmd returns a command that emits a change message if OnChange is configured.
func (m Model) onChangeCmd() tea.Cmd {
	if m.config.OnChange == nil {
		return nil
	}
	content := m.editor.Text()
	return func() tea.Msg { return m.config.OnChange(content) }
}

// SetSize sets the viewport dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.ensureCursorVisible()
}

// Focus focuses the textarea.
func (m *Model) Focus() {
	m.focused = true
}

// Blur removes focus from the textarea.
func (m *Model) Blur() {
	m.focused = false
}

// Focused returns whether the textarea is focused.
func (m Model) Focused() bool {
	return m.focused
}

// Editor exposes the engine for read-only queries.
func (m Model) Editor() *Editor {
	return m.editor
}

// Value returns the full content as a single string with newlines.
func (m Model) Value() string {
	return m.editor.Text()
}

// Lines returns the content as a slice of lines.
func (m Model) Lines() []string {
	return m.editor.Lines()
}

// SetValue starts a new session seeded with s. History and register do not
// carry over.
func (m *Model) SetValue(s string) {
	m.editor = m.newEditor(s)
	m.scrollOffset = 0
	m.ensureCursorVisible()
}

// Reset starts a new empty session.
func (m *Model) Reset() {
	m.SetValue("")
}

// SetPlaceholder sets the placeholder text.
func (m *Model) SetPlaceholder(placeholder string) {
	m.config.Placeholder = placeholder
}

// SetTabWidth changes the Insert-mode tab stop for this and later sessions.
func (m *Model) SetTabWidth(n int) {
	m.config.TabWidth = n
	m.editor.SetTabWidth(n)
}

// SetStartMode changes the mode later sessions start in.
func (m *Model) SetStartMode(mode Mode) {
	m.config.StartMode = mode
}

// SetMaxHeight changes the display height limit.
func (m *Model) SetMaxHeight(n int) {
	m.config.MaxHeight = n
	m.ensureCursorVisible()
}

// Mode returns the current vim mode.
func (m Model) Mode() Mode {
	return m.editor.Mode()
}

// CursorPosition returns the current cursor position.
func (m Model) CursorPosition() Position {
	return m.editor.Cursor()
}

// InInsertMode returns true if currently in insert mode.
func (m Model) InInsertMode() bool {
	return m.editor.Mode().Kind == KindInsert
}

// ModeColor returns the status colour for mode.
func ModeColor(mode Mode) lipgloss.AdaptiveColor {
	switch mode.Kind {
	case KindNormal:
		return styles.VimNormalModeColor
	case KindInsert:
		return styles.VimInsertModeColor
	case KindVisual:
		return styles.VimVisualModeColor
	case KindOperatorPending:
		return styles.VimOperatorModeColor
	default:
		return styles.TextMutedColor
	}
}

// ModeIndicator returns a styled mode indicator string (e.g., "[NORMAL]" or "[INSERT]")
// suitable for display in a UI. A pending key is shown after the label.
func (m Model) ModeIndicator() string {
	mode := m.editor.Mode()
	label := "[" + mode.String() + "]"
	if p := m.editor.Pending(); !p.IsNull() {
		label += " " + p.String()
	}
	return lipgloss.NewStyle().Foreground(ModeColor(mode)).Render(label)
}
