package vimtextarea

// ModeKind is the tag of a Mode.
type ModeKind int

const (
	// KindNormal is the default vim mode for navigation and commands.
	KindNormal ModeKind = iota
	// KindInsert is the mode for inserting text.
	KindInsert
	// KindVisual is the mode for character-wise visual selection.
	KindVisual
	// KindOperatorPending waits for the motion that completes y, d or c.
	KindOperatorPending
)

// Mode is the current vim editing mode. Operator is only meaningful for
// KindOperatorPending; use the constructors rather than building literals.
type Mode struct {
	Kind     ModeKind
	Operator rune
}

var (
	ModeNormal = Mode{Kind: KindNormal}
	ModeInsert = Mode{Kind: KindInsert}
	ModeVisual = Mode{Kind: KindVisual}
)

// ModeOperatorPending returns the operator-pending mode for op ('y', 'd' or 'c').
func ModeOperatorPending(op rune) Mode {
	return Mode{Kind: KindOperatorPending, Operator: op}
}

// String returns the mode label shown in the status line.
func (m Mode) String() string {
	switch m.Kind {
	case KindNormal:
		return "NORMAL"
	case KindInsert:
		return "INSERT"
	case KindVisual:
		return "VISUAL"
	case KindOperatorPending:
		return "OPERATOR(" + string(m.Operator) + ")"
	default:
		return "UNKNOWN"
	}
}

// Help returns a one-line hint for the mode.
func (m Mode) Help() string {
	switch m.Kind {
	case KindNormal:
		return "i insert · v visual · enter send · q back"
	case KindInsert:
		return "esc normal mode"
	case KindVisual:
		return "y yank · d delete · c change · esc cancel"
	case KindOperatorPending:
		return "move cursor to apply operator · esc cancel"
	default:
		return ""
	}
}

// Signal is what the editor tells its host after each token.
type Signal int

const (
	// Continue keeps the session going.
	Continue Signal = iota
	// Commit asks the host to accept the current text.
	Commit
	// Cancel asks the host to abandon the session.
	Cancel
)

func (s Signal) String() string {
	switch s {
	case Continue:
		return "continue"
	case Commit:
		return "commit"
	case Cancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Scroll is a viewport hint produced by Ctrl-e/y/d/u/f/b. The editor never
// acts on it; the view decides how far a page is.
type Scroll int

const (
	ScrollNone Scroll = iota
	ScrollLineDown
	ScrollLineUp
	ScrollHalfPageDown
	ScrollHalfPageUp
	ScrollPageDown
	ScrollPageUp
)
