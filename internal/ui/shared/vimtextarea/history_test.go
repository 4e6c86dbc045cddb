package vimtextarea

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHistory_UndoRedo(t *testing.T) {
	var h History
	s1 := Snapshot{Lines: []string{"one"}}
	s2 := Snapshot{Lines: []string{"two"}, Cursor: at(0, 1)}
	cur := Snapshot{Lines: []string{"three"}}

	h.Push(s1)
	h.Push(s2)
	require.True(t, h.CanUndo())
	require.False(t, h.CanRedo())

	got, ok := h.Undo(cur)
	require.True(t, ok)
	require.Equal(t, s2, got)
	require.True(t, h.CanRedo())

	got, ok = h.Redo(s2)
	require.True(t, ok)
	require.Equal(t, cur, got)
	require.False(t, h.CanRedo())
}

func TestHistory_PushClearsRedo(t *testing.T) {
	var h History
	h.Push(Snapshot{Lines: []string{"a"}})
	_, _ = h.Undo(Snapshot{Lines: []string{"b"}})
	require.True(t, h.CanRedo())

	h.Push(Snapshot{Lines: []string{"a"}})

	require.False(t, h.CanRedo())
}

func TestHistory_EmptyStacks(t *testing.T) {
	var h History

	_, ok := h.Undo(Snapshot{})
	require.False(t, ok)
	_, ok = h.Redo(Snapshot{})
	require.False(t, ok)
}

// TestBuffer_SnapshotIsDeepCopy verifies later edits do not leak into a snapshot
func TestBuffer_SnapshotIsDeepCopy(t *testing.T) {
	b := NewBuffer("hello")
	s := b.snapshot()

	b.InsertText(at(0, 0), "X")

	require.Equal(t, []string{"hello"}, s.Lines)
	b.restore(s)
	require.Equal(t, []string{"hello"}, b.Lines())
}
