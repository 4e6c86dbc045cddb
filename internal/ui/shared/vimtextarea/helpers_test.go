package vimtextarea

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// newTestEditor creates an editor over the given lines, cursor at the origin.
func newTestEditor(lines ...string) *Editor {
	return NewEditorWithText(strings.Join(lines, "\n"))
}

// feed drives the editor with a key script and returns the first
// non-Continue signal, stopping there as a host would.
func feed(e *Editor, script string) Signal {
	for _, tok := range ParseKeys(script) {
		if sig := e.Input(tok); sig != Continue {
			return sig
		}
	}
	return Continue
}

func at(row, col int) Position {
	return Position{Row: row, Col: col}
}

// collectMsgs runs cmd and flattens batches into the messages they produce.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collectMsgs(c)...)
	}
	return out
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}
