// Package help contains the keybinding overlay.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/Karvyz/halfmoon/internal/keys"
	"github.com/Karvyz/halfmoon/internal/ui/overlay"
	"github.com/Karvyz/halfmoon/internal/ui/styles"
)

// Styles read the palette at render time so a theme reload applies.
func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(styles.BorderFocusColor).PaddingLeft(2)
}

func sectionStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(styles.TextPrimaryColor).MarginTop(1)
}

func keyStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.TextSecondaryColor).Width(14)
}

func descStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.TextMutedColor)
}

// section is one titled column of bindings.
type section struct {
	title    string
	bindings []key.Binding
}

// Model holds the help view state.
type Model struct {
	keys       keys.KeyMap
	editorKeys keys.EditorKeyMap
	width      int
	height     int
}

// New creates a help view over the composer and editor keymaps.
func New(k keys.KeyMap, ek keys.EditorKeyMap) Model {
	return Model{keys: k, editorKeys: ek}
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Overlay renders the help box centered on top of background.
func (m Model) Overlay(background string) string {
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), background)
}

// View renders the help box.
func (m Model) View() string {
	list := m.keys.FullHelp()
	editor := m.editorKeys.FullHelp()

	rows := []string{
		renderColumns([]section{
			{"Transcript", list[0]},
			{"Actions", list[1]},
			{"General", list[2]},
		}),
		renderColumns([]section{
			{"Editor", editor[0]},
			{"Commands", editor[1]},
			{"Finish", editor[2]},
		}),
	}
	columns := lipgloss.JoinVertical(lipgloss.Left, rows...)

	boxWidth := lipgloss.Width(columns) + 4
	footer := lipgloss.NewStyle().Foreground(styles.TextMutedColor).MarginTop(1).Render("Press ? or Esc to close")
	body := lipgloss.NewStyle().Padding(0, 2).Render(columns + "\n" + footer)
	divider := lipgloss.NewStyle().Foreground(styles.BorderDefaultColor).Render(strings.Repeat("─", boxWidth))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderDefaultColor).
		Width(boxWidth)
	return box.Render(titleStyle().Render("Keybindings") + "\n" + divider + "\n" + body)
}

func renderColumns(sections []section) string {
	columnStyle := lipgloss.NewStyle().MarginRight(4)

	cols := make([]string, 0, len(sections))
	for i, s := range sections {
		var b strings.Builder
		b.WriteString(sectionStyle().Render(s.title))
		for _, binding := range s.bindings {
			h := binding.Help()
			b.WriteString("\n" + keyStyle().Render(h.Key) + descStyle().Render(h.Desc))
		}
		if i < len(sections)-1 {
			cols = append(cols, columnStyle.Render(b.String()))
		} else {
			cols = append(cols, b.String())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}
