package vimtextarea

import "slices"

// Snapshot is a full copy of the buffer content and cursor.
type Snapshot struct {
	Lines  []string
	Cursor Position
}

func (b *Buffer) snapshot() Snapshot {
	return Snapshot{Lines: slices.Clone(b.lines), Cursor: b.cursor}
}

func (b *Buffer) restore(s Snapshot) {
	b.lines = slices.Clone(s.Lines)
	if len(b.lines) == 0 {
		b.lines = []string{""}
	}
	b.cursor = b.clamp(s.Cursor, true)
}

// History holds unbounded undo and redo stacks of snapshots.
type History struct {
	undo []Snapshot
	redo []Snapshot
}

// Push records the state before a mutation and drops anything redoable.
func (h *History) Push(s Snapshot) {
	h.undo = append(h.undo, s)
	h.redo = nil
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }

func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Undo pops the newest undo snapshot, saving cur for redo.
func (h *History) Undo(cur Snapshot) (Snapshot, bool) {
	if len(h.undo) == 0 {
		return Snapshot{}, false
	}
	i := len(h.undo) - 1
	prev := h.undo[i]
	h.undo = h.undo[:i]
	h.redo = append(h.redo, cur)
	return prev, true
}

// Redo pops the newest redo snapshot, saving cur for undo.
func (h *History) Redo(cur Snapshot) (Snapshot, bool) {
	if len(h.redo) == 0 {
		return Snapshot{}, false
	}
	i := len(h.redo) - 1
	next := h.redo[i]
	h.redo = h.redo[:i]
	h.undo = append(h.undo, cur)
	return next, true
}
