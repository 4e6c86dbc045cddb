package vimtextarea

import (
	"slices"
	"strings"
)

// Position represents a cursor position in the buffer.
// Col is a grapheme index (not byte offset), representing the nth visible character.
type Position struct {
	Row int // Line number (0-indexed)
	Col int // Column as grapheme index (0-indexed, not byte offset)
}

// Before reports whether p sorts strictly before q.
func (p Position) Before(q Position) bool {
	return p.Row < q.Row || (p.Row == q.Row && p.Col < q.Col)
}

// ordered returns a and b with the earlier position first.
func ordered(a, b Position) (start, end Position) {
	if b.Before(a) {
		return b, a
	}
	return a, b
}

// Buffer owns the lines of text and the cursor. It always holds at least one
// line. Ranges passed to it are half-open; a position whose Col equals the
// line length addresses the line break after it.
type Buffer struct {
	lines  []string
	cursor Position
}

// NewBuffer creates a buffer from text split on newlines, cursor at the origin.
func NewBuffer(text string) *Buffer {
	return &Buffer{lines: splitLines(text)}
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}

// Lines returns a copy of the buffer lines.
func (b *Buffer) Lines() []string {
	return slices.Clone(b.lines)
}

// Text returns the content joined with newlines.
func (b *Buffer) Text() string {
	return strings.Join(b.lines, "\n")
}

// LineCount returns the number of lines (always >= 1).
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return b.lines[row]
}

// LineLen returns the grapheme count of row.
func (b *Buffer) LineLen(row int) int {
	return GraphemeCount(b.Line(row))
}

// Cursor returns the cursor position.
func (b *Buffer) Cursor() Position {
	return b.cursor
}

// SetCursor moves the cursor, clamped so the column may rest past the last character.
func (b *Buffer) SetCursor(p Position) {
	b.cursor = b.clamp(p, true)
}

// ClampCursor re-clamps the cursor. Without pastEnd the column stays on the
// last character of a non-empty line.
func (b *Buffer) ClampCursor(pastEnd bool) {
	b.cursor = b.clamp(b.cursor, pastEnd)
}

func (b *Buffer) clamp(p Position, pastEnd bool) Position {
	p.Row = max(min(p.Row, len(b.lines)-1), 0)
	limit := b.LineLen(p.Row)
	if !pastEnd && limit > 0 {
		limit--
	}
	p.Col = max(min(p.Col, limit), 0)
	return p
}

// TextRange returns the text in [start, end). Line breaks inside the range
// come back as "\n".
func (b *Buffer) TextRange(start, end Position) string {
	start, end = ordered(b.clamp(start, true), b.clamp(end, true))
	if start == end {
		return ""
	}
	if start.Row == end.Row {
		return SliceByGraphemes(b.lines[start.Row], start.Col, end.Col)
	}

	parts := make([]string, 0, end.Row-start.Row+1)
	first := b.lines[start.Row]
	parts = append(parts, SliceByGraphemes(first, start.Col, GraphemeCount(first)))
	parts = append(parts, b.lines[start.Row+1:end.Row]...)
	parts = append(parts, SliceByGraphemes(b.lines[end.Row], 0, end.Col))
	return strings.Join(parts, "\n")
}

// DeleteRange removes [start, end), leaves the cursor at start and returns
// the removed text.
func (b *Buffer) DeleteRange(start, end Position) string {
	start, end = ordered(b.clamp(start, true), b.clamp(end, true))
	removed := b.TextRange(start, end)
	if removed == "" {
		b.cursor = start
		return ""
	}

	prefix := SliceByGraphemes(b.lines[start.Row], 0, start.Col)
	last := b.lines[end.Row]
	suffix := SliceByGraphemes(last, end.Col, GraphemeCount(last))

	merged := make([]string, 0, len(b.lines)-(end.Row-start.Row))
	merged = append(merged, b.lines[:start.Row]...)
	merged = append(merged, prefix+suffix)
	merged = append(merged, b.lines[end.Row+1:]...)
	b.lines = merged
	b.cursor = start
	return removed
}

// InsertText inserts text at pos, splitting lines on "\n", and returns the
// position just after the inserted text. The cursor is not moved.
func (b *Buffer) InsertText(pos Position, text string) Position {
	pos = b.clamp(pos, true)
	if text == "" {
		return pos
	}
	parts := splitLines(text)
	line := b.lines[pos.Row]
	prefix := SliceByGraphemes(line, 0, pos.Col)
	suffix := SliceByGraphemes(line, pos.Col, GraphemeCount(line))

	if len(parts) == 1 {
		b.lines[pos.Row] = prefix + parts[0] + suffix
		return Position{Row: pos.Row, Col: pos.Col + GraphemeCount(parts[0])}
	}

	last := len(parts) - 1
	replacement := make([]string, 0, len(parts))
	replacement = append(replacement, prefix+parts[0])
	replacement = append(replacement, parts[1:last]...)
	replacement = append(replacement, parts[last]+suffix)
	b.lines = slices.Replace(b.lines, pos.Row, pos.Row+1, replacement...)
	return Position{Row: pos.Row + last, Col: GraphemeCount(parts[last])}
}

// InsertLines inserts whole lines before row (row == LineCount appends).
func (b *Buffer) InsertLines(row int, lines ...string) {
	row = max(min(row, len(b.lines)), 0)
	b.lines = slices.Insert(b.lines, row, lines...)
}

// ReplaceLine replaces the text of row.
func (b *Buffer) ReplaceLine(row int, text string) {
	if row < 0 || row >= len(b.lines) {
		return
	}
	b.lines[row] = text
}
