package vimtextarea

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBuffer_NeverEmpty(t *testing.T) {
	b := NewBuffer("")
	require.Equal(t, []string{""}, b.Lines())
	require.Equal(t, 1, b.LineCount())

	b = NewBuffer("a\r\nb\n")
	require.Equal(t, []string{"a", "b", ""}, b.Lines())
}

func TestBuffer_TextRange(t *testing.T) {
	b := NewBuffer("hello\nbig\nworld")

	require.Equal(t, "ell", b.TextRange(at(0, 1), at(0, 4)))
	require.Equal(t, "lo\nbig\nwo", b.TextRange(at(0, 3), at(2, 2)))
	require.Equal(t, "\n", b.TextRange(at(0, 5), at(1, 0)))
	// order does not matter
	require.Equal(t, "ell", b.TextRange(at(0, 4), at(0, 1)))
	require.Equal(t, "", b.TextRange(at(1, 1), at(1, 1)))
}

func TestBuffer_DeleteRange(t *testing.T) {
	b := NewBuffer("hello\nbig\nworld")

	removed := b.DeleteRange(at(0, 3), at(2, 2))

	require.Equal(t, "lo\nbig\nwo", removed)
	require.Equal(t, []string{"helrld"}, b.Lines())
	require.Equal(t, at(0, 3), b.Cursor())
}

func TestBuffer_DeleteRange_WholeBufferLeavesOneLine(t *testing.T) {
	b := NewBuffer("ab\ncd")

	b.DeleteRange(at(0, 0), at(1, 2))

	require.Equal(t, []string{""}, b.Lines())
}

func TestBuffer_InsertText(t *testing.T) {
	b := NewBuffer("hello")

	end := b.InsertText(at(0, 2), "XY")
	require.Equal(t, []string{"heXYllo"}, b.Lines())
	require.Equal(t, at(0, 4), end)

	end = b.InsertText(at(0, 2), "1\n2\n3")
	require.Equal(t, []string{"he1", "2", "3XYllo"}, b.Lines())
	require.Equal(t, at(2, 1), end)
}

func TestBuffer_InsertText_SplitsLine(t *testing.T) {
	b := NewBuffer("hello")

	end := b.InsertText(at(0, 5), "\n")

	require.Equal(t, []string{"hello", ""}, b.Lines())
	require.Equal(t, at(1, 0), end)
}

func TestBuffer_InsertLines(t *testing.T) {
	b := NewBuffer("a\nb")

	b.InsertLines(1, "x", "y")
	require.Equal(t, []string{"a", "x", "y", "b"}, b.Lines())

	b.InsertLines(99, "z")
	require.Equal(t, []string{"a", "x", "y", "b", "z"}, b.Lines())
}

func TestBuffer_CursorClamping(t *testing.T) {
	b := NewBuffer("abc\n")

	b.SetCursor(at(0, 10))
	require.Equal(t, at(0, 3), b.Cursor())

	b.ClampCursor(false)
	require.Equal(t, at(0, 2), b.Cursor())

	b.SetCursor(at(7, 2))
	require.Equal(t, at(1, 0), b.Cursor())
}

func TestBuffer_Graphemes(t *testing.T) {
	b := NewBuffer("a😀b")
	require.Equal(t, 3, b.LineLen(0))

	removed := b.DeleteRange(at(0, 1), at(0, 2))
	require.Equal(t, "😀", removed)
	require.Equal(t, "ab", b.Text())
}

func TestPosition_Before(t *testing.T) {
	require.True(t, at(0, 5).Before(at(1, 0)))
	require.True(t, at(1, 0).Before(at(1, 1)))
	require.False(t, at(1, 1).Before(at(1, 1)))
	require.False(t, at(2, 0).Before(at(1, 9)))
}
