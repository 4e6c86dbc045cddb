// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the composer keybindings used while the transcript list has focus.
type KeyMap struct {
	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Actions
	FocusInput    key.Binding
	Edit          key.Binding
	Delete        key.Binding
	ToggleBorders key.Binding

	// General
	Help      key.Binding
	Escape    key.Binding
	Confirm   key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "previous message"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "next message"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first message"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last message"),
		),

		// Actions
		FocusInput: key.NewBinding(
			key.WithKeys("i", "tab"),
			key.WithHelp("i", "write message"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit message"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete message"),
		),
		ToggleBorders: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle borders"),
		),

		// General
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit now"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusInput, k.Edit, k.Help, k.Escape}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},                  // Navigation
		{k.FocusInput, k.Edit, k.Delete, k.ToggleBorders}, // Actions
		{k.Help, k.Escape, k.ForceQuit},                  // General
	}
}

// EditorKeyMap documents the modal editor keys. The editor interprets keys
// itself; these bindings only feed the help view.
type EditorKeyMap struct {
	Insert  key.Binding
	Normal  key.Binding
	Visual  key.Binding
	Motions key.Binding
	Operate key.Binding
	Paste   key.Binding
	Undo    key.Binding
	Submit  key.Binding
	Cancel  key.Binding
}

// DefaultEditorKeyMap returns the help entries for the modal editor.
func DefaultEditorKeyMap() EditorKeyMap {
	return EditorKeyMap{
		Insert: key.NewBinding(
			key.WithKeys("i", "a", "I", "A", "o", "O"),
			key.WithHelp("i/a/o", "insert"),
		),
		Normal: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "normal mode"),
		),
		Visual: key.NewBinding(
			key.WithKeys("v", "V"),
			key.WithHelp("v/V", "visual"),
		),
		Motions: key.NewBinding(
			key.WithKeys("h", "j", "k", "l", "w", "b", "e", "0", "^", "$", "g", "G"),
			key.WithHelp("hjkl w b e", "move"),
		),
		Operate: key.NewBinding(
			key.WithKeys("d", "c", "y", "x", "D", "C"),
			key.WithHelp("d/c/y", "operate"),
		),
		Paste: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p/P", "paste"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u", "ctrl+r"),
			key.WithHelp("u/ctrl+r", "undo/redo"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "leave input"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k EditorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Insert, k.Normal, k.Submit, k.Cancel}
}

// FullHelp returns keybindings for the full help view.
func (k EditorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Insert, k.Normal, k.Visual},
		{k.Motions, k.Operate, k.Paste, k.Undo},
		{k.Submit, k.Cancel},
	}
}
