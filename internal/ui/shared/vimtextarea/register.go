package vimtextarea

// RegisterKind records how register content was captured and therefore how
// it pastes back.
type RegisterKind int

const (
	// CharacterWise content splices into the line at the cursor.
	CharacterWise RegisterKind = iota
	// LineWise content is one or more whole lines.
	LineWise
)

func (k RegisterKind) String() string {
	if k == LineWise {
		return "linewise"
	}
	return "characterwise"
}

// Register is the single unnamed yank/delete slot. Every copy or cut
// overwrites it.
type Register struct {
	Text string
	Kind RegisterKind
}

// IsEmpty reports whether there is nothing to paste.
func (r Register) IsEmpty() bool {
	return r.Text == "" && r.Kind == CharacterWise
}
