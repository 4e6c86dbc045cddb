package app

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/Karvyz/halfmoon/internal/ui/overlay"
	"github.com/Karvyz/halfmoon/internal/ui/shared/chatrender"
	"github.com/Karvyz/halfmoon/internal/ui/shared/vimtextarea"
	"github.com/Karvyz/halfmoon/internal/ui/styles"
)

// zoneMessagePrefix prefixes the bubblezone ID of each rendered message.
const zoneMessagePrefix = "halfmoon-msg:"

func messageZoneID(id string) string {
	return zoneMessagePrefix + id
}

// frame is the rows and columns a pane border takes.
func (m Model) frame() int {
	if m.cfg.UI.ShowBorders {
		return 2
	}
	return 0
}

// activeInput is the textarea shown in the input pane.
func (m Model) activeInput() vimtextarea.Model {
	if m.focus == focusEdit {
		return m.editor
	}
	return m.input
}

// inputRows is the number of rows the input pane shows, without its border.
func (m Model) inputRows() int {
	rows := m.activeInput().TotalDisplayLines()
	if limit := m.cfg.Editor.MaxHeight; limit > 0 {
		rows = min(rows, limit)
	}
	return max(rows, 1)
}

// layout sizes the textareas and the transcript viewport to the window.
func (m *Model) layout() {
	innerWidth := max(m.width-m.frame(), 1)
	m.input.SetSize(innerWidth, 0)
	m.editor.SetSize(innerWidth, 0)

	status := 0
	if m.cfg.UI.ShowStatusBar {
		status = 1
	}
	inputHeight := m.inputRows() + m.frame()

	m.viewport.Width = innerWidth
	m.viewport.Height = max(m.height-status-inputHeight-m.frame(), 1)
	m.scrollToSelected()
}

// refreshTranscript re-renders every message into the viewport. Bodies come
// from the render cache, so only new or edited messages are rendered again.
func (m *Model) refreshTranscript() {
	m.offsets = m.offsets[:0]
	m.heights = m.heights[:0]
	if m.width == 0 {
		// not sized yet; the first WindowSizeMsg renders
		return
	}
	if len(m.messages) == 0 {
		m.viewport.SetContent(styles.HelpStyle.Render("No messages yet. Press i to write one."))
		return
	}

	ctx := context.Background()
	blocks := make([]string, len(m.messages))
	line := 0
	for i, msg := range m.messages {
		block := m.renderer.Render(ctx, msg, chatrender.Options{
			Width:    m.viewport.Width,
			Style:    m.cfg.UI.MarkdownStyle,
			Selected: i == m.selected,
		})
		height := lipgloss.Height(block)
		m.offsets = append(m.offsets, line)
		m.heights = append(m.heights, height)
		line += height + 1
		blocks[i] = zone.Mark(messageZoneID(msg.ID), block)
	}
	m.viewport.SetContent(strings.Join(blocks, "\n\n"))
	m.scrollToSelected()
}

// selectMessage moves the selection to i, clamped, and scrolls it into view.
func (m *Model) selectMessage(i int) {
	if len(m.messages) == 0 {
		return
	}
	i = max(min(i, len(m.messages)-1), 0)
	if i == m.selected {
		return
	}
	m.selected = i
	m.refreshTranscript()
}

func (m *Model) scrollToSelected() {
	if m.selected >= len(m.offsets) {
		return
	}
	top := m.offsets[m.selected]
	bottom := top + m.heights[m.selected] - 1
	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(min(top, bottom-m.viewport.Height+1))
	}
}

// messageAt returns the index of the message under a mouse event.
func (m Model) messageAt(msg tea.MouseMsg) (int, bool) {
	for i, message := range m.messages {
		if z := zone.Get(messageZoneID(message.ID)); z != nil && z.InBounds(msg) {
			return i, true
		}
	}
	return 0, false
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	transcript := m.viewport.View()
	input := m.activeInput().View()
	if m.cfg.UI.ShowBorders {
		transcript = styles.RenderWithTitleBorder(transcript, m.transcriptTitle(),
			m.width, m.viewport.Height+2, m.focus == focusList)
		input = styles.RenderWithTitleBorder(input, m.inputTitle(),
			m.width, m.inputRows()+2, m.focus != focusList)
	}

	parts := []string{transcript, input}
	if m.cfg.UI.ShowStatusBar {
		parts = append(parts, m.statusLine())
	}
	view := lipgloss.JoinVertical(lipgloss.Left, parts...)

	if m.toaster.Visible() {
		view = m.toaster.Overlay(view, m.width, m.height)
	}
	if m.showHelp {
		view = m.help.Overlay(view)
	}
	if m.confirmQuit {
		view = overlay.Place(overlay.Config{Width: m.width, Height: m.height}, quitBox(), view)
	}
	return zone.Scan(view)
}

func (m Model) transcriptTitle() string {
	return fmt.Sprintf("Transcript (%d)", len(m.messages))
}

func (m Model) inputTitle() string {
	if m.focus == focusEdit {
		return "Editing message"
	}
	return "Message"
}

// statusLine shows the editor mode and the last error on the left and key
// hints on the right, truncated to the window width.
func (m Model) statusLine() string {
	left := m.activeInput().ModeIndicator()
	if m.focus == focusList {
		left = styles.HelpStyle.Render("[LIST]")
	}
	if m.status != "" {
		left += " " + styles.ErrorStyle.Render(m.status)
	}

	var right string
	if m.focus == focusList {
		right = m.shortHelp.ShortHelpView(m.keys.ShortHelp())
	} else {
		right = m.shortHelp.ShortHelpView(m.editorKeys.ShortHelp())
	}

	inner := max(m.width-styles.StatusBarStyle.GetHorizontalFrameSize(), 0)
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	line := left
	if gap > 0 {
		line += strings.Repeat(" ", gap) + right
	}
	return styles.StatusBarStyle.Render(ansi.Truncate(line, inner, "…"))
}

func quitBox() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(styles.TextPrimaryColor).Render("Quit halfmoon?")
	hint := styles.HelpStyle.Render("enter quit · any other key stay")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.StatusWarningColor).
		Padding(0, 2).
		Render(title + "\n\n" + hint)
}
