// Package toaster shows short-lived notices at the bottom of the screen.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Karvyz/halfmoon/internal/ui/overlay"
	"github.com/Karvyz/halfmoon/internal/ui/styles"
)

// Style determines the visual appearance of the toast.
type Style int

const (
	StyleSuccess Style = iota
	StyleError
	StyleInfo
	StyleWarn
)

// Model holds the toaster state.
type Model struct {
	message string
	style   Style
	visible bool
	// seq identifies the current toast so a dismissal scheduled for an
	// older one does not hide it early.
	seq int
}

// New creates a new toaster model.
func New() Model {
	return Model{}
}

// Show displays message, replacing any toast already visible, and returns
// the command that dismisses it after d.
func (m Model) Show(message string, style Style, d time.Duration) (Model, tea.Cmd) {
	m.message = message
	m.style = style
	m.visible = true
	m.seq++
	seq := m.seq
	return m, tea.Tick(d, func(time.Time) tea.Msg {
		return DismissMsg{seq: seq}
	})
}

// Update hides the toast when its dismissal arrives.
func (m Model) Update(msg tea.Msg) Model {
	if d, ok := msg.(DismissMsg); ok && d.seq == m.seq {
		m.visible = false
		m.message = ""
	}
	return m
}

// Visible returns whether the toast is currently showing.
func (m Model) Visible() bool {
	return m.visible
}

// Message returns the text of the visible toast.
func (m Model) Message() string {
	return m.message
}

// View renders the toast box.
func (m Model) View() string {
	if !m.visible {
		return ""
	}

	style := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	var mark string
	switch m.style {
	case StyleError:
		style = style.BorderForeground(styles.StatusErrorColor)
		mark = "✗"
	case StyleInfo:
		style = style.BorderForeground(styles.BorderFocusColor)
		mark = "•"
	case StyleWarn:
		style = style.BorderForeground(styles.StatusWarningColor)
		mark = "!"
	default:
		style = style.BorderForeground(styles.StatusSuccessColor)
		mark = "✓"
	}
	return style.Render(mark + " " + m.message)
}

// Overlay renders the toast on top of bg, one row above the bottom edge.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.visible {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    width,
		Height:   height,
		Position: overlay.Bottom,
		PadY:     1,
	}, m.View(), bg)
}

// DismissMsg hides the toast it was scheduled for.
type DismissMsg struct {
	seq int
}
