package vimtextarea

import (
	"slices"
	"strings"
)

// DefaultTabWidth is the tab stop used by Insert-mode Tab.
const DefaultTabWidth = 4

// Editor is the modal editing engine: a buffer driven one Token at a time
// through Normal, Insert, Visual and OperatorPending modes. It is not safe
// for concurrent use; the owner feeds it tokens from a single goroutine.
type Editor struct {
	buf      *Buffer
	mode     Mode
	anchor   Position
	register Register
	history  History
	pending  Token
	scroll   Scroll
	tabWidth int

	// want is the column vertical motions aim for.
	want     int
	keepWant bool
}

// NewEditor creates an editor over an empty buffer in Normal mode.
func NewEditor() *Editor {
	return NewEditorWithText("")
}

// NewEditorWithText creates an editor seeded with text, cursor at the origin.
func NewEditorWithText(text string) *Editor {
	return &Editor{
		buf:      NewBuffer(text),
		mode:     ModeNormal,
		tabWidth: DefaultTabWidth,
	}
}

// Mode returns the current mode.
func (e *Editor) Mode() Mode { return e.mode }

// Lines returns a copy of the buffer lines.
func (e *Editor) Lines() []string { return e.buf.Lines() }

// Text returns the buffer joined with newlines.
func (e *Editor) Text() string { return e.buf.Text() }

// Cursor returns the cursor position.
func (e *Editor) Cursor() Position { return e.buf.Cursor() }

// Register returns the register content.
func (e *Editor) Register() Register { return e.register }

// Pending returns the buffered token, or Null.
func (e *Editor) Pending() Token { return e.pending }

// CanUndo reports whether u would change anything.
func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether Ctrl-r would change anything.
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// LastScroll returns the scroll hint produced by the most recent token.
func (e *Editor) LastScroll() Scroll { return e.scroll }

// Selection returns the inclusive visual range, ordered. ok is false outside
// Visual mode.
func (e *Editor) Selection() (start, end Position, ok bool) {
	if e.mode.Kind != KindVisual {
		return Position{}, Position{}, false
	}
	start, end = ordered(e.anchor, e.buf.Cursor())
	return start, end, true
}

// SetTabWidth changes the Insert-mode tab stop. Non-positive widths are ignored.
func (e *Editor) SetTabWidth(n int) {
	if n > 0 {
		e.tabWidth = n
	}
}

// SetMode switches between Normal and Insert from outside the key stream,
// for hosts that start sessions in Insert.
func (e *Editor) SetMode(m Mode) {
	switch m.Kind {
	case KindNormal, KindInsert:
		e.setMode(m)
	}
}

// SetCursor moves the cursor, clamped for the current mode.
func (e *Editor) SetCursor(p Position) {
	e.buf.SetCursor(p)
	if e.mode.Kind != KindInsert {
		e.buf.ClampCursor(false)
	}
	e.want = e.buf.Cursor().Col
}

// Input processes one token and reports what the host should do next.
func (e *Editor) Input(t Token) Signal {
	if t.IsNull() {
		return Continue
	}
	e.scroll = ScrollNone
	e.keepWant = false

	var sig Signal
	switch e.mode.Kind {
	case KindNormal:
		sig = e.inputNormal(t)
	case KindInsert:
		sig = e.inputInsert(t)
	case KindVisual:
		sig = e.inputVisual(t)
	case KindOperatorPending:
		sig = e.inputOperator(t)
	}

	if !e.keepWant {
		e.want = e.buf.Cursor().Col
	}
	return sig
}

func (e *Editor) setMode(m Mode) {
	e.mode = m
	e.pending = Null
	if m.Kind != KindInsert {
		e.buf.ClampCursor(false)
	}
}

// takeGG consumes a pending g. It returns true when t completes gg.
func (e *Editor) takeGG(t Token) bool {
	prev := e.pending
	e.pending = Null
	return prev.isChar('g') && t.isChar('g')
}

// move applies a motion to the cursor, keeping the preferred column for
// vertical moves.
func (e *Editor) move(m Motion, pastEnd bool) {
	next := m.Apply(e.buf.lines, e.buf.Cursor(), e.want, pastEnd)
	e.buf.SetCursor(next)
	switch m {
	case MotionUp, MotionDown:
		e.keepWant = true
	case MotionLineEnd:
		e.want = endOfLine
		e.keepWant = true
	}
}

// edit runs a buffer mutation, recording an undo snapshot only when the
// lines actually changed.
func (e *Editor) edit(fn func()) bool {
	before := e.buf.snapshot()
	fn()
	if slices.Equal(before.Lines, e.buf.lines) {
		return false
	}
	e.history.Push(before)
	return true
}

// cut removes [start, end) into the register.
func (e *Editor) cut(start, end Position, kind RegisterKind) {
	var removed string
	e.edit(func() { removed = e.buf.DeleteRange(start, end) })
	if removed != "" {
		e.register = Register{Text: removed, Kind: kind}
	}
}

// advance steps one position forward, crossing to the next line head at a
// line end. It never leaves the buffer.
func (e *Editor) advance(p Position) Position {
	if p.Col < e.buf.LineLen(p.Row) {
		return Position{Row: p.Row, Col: p.Col + 1}
	}
	if p.Row < e.buf.LineCount()-1 {
		return Position{Row: p.Row + 1}
	}
	return p
}

func scrollFor(t Token) Scroll {
	switch t.Name {
	case KeyPgDown:
		return ScrollPageDown
	case KeyPgUp:
		return ScrollPageUp
	case KeyChar:
		if !t.Ctrl {
			return ScrollNone
		}
	default:
		return ScrollNone
	}
	switch t.Char {
	case 'e':
		return ScrollLineDown
	case 'y':
		return ScrollLineUp
	case 'd':
		return ScrollHalfPageDown
	case 'u':
		return ScrollHalfPageUp
	case 'f':
		return ScrollPageDown
	case 'b':
		return ScrollPageUp
	}
	return ScrollNone
}

// ============================================================================
// Normal mode
// ============================================================================

func (e *Editor) inputNormal(t Token) Signal {
	if e.takeGG(t) {
		e.move(MotionTop, false)
		return Continue
	}
	if m, ok := motionFor(t); ok {
		e.move(m, false)
		return Continue
	}
	if s := scrollFor(t); s != ScrollNone {
		e.scroll = s
		return Continue
	}
	switch t.Name {
	case KeyEnter:
		return Commit
	case KeyEsc:
		return Continue
	}
	if t.isCtrl('r') {
		e.redo()
		return Continue
	}
	if t.Name != KeyChar || t.Ctrl || t.Alt {
		e.pending = t
		return Continue
	}

	cur := e.buf.Cursor()
	lineLen := e.buf.LineLen(cur.Row)

	switch t.Char {
	case 'q':
		return Cancel
	case 'x':
		if lineLen > 0 {
			e.cut(cur, Position{Row: cur.Row, Col: cur.Col + 1}, CharacterWise)
			e.buf.ClampCursor(false)
		}
	case 'D':
		e.cut(cur, Position{Row: cur.Row, Col: lineLen}, CharacterWise)
		e.buf.ClampCursor(false)
	case 'C':
		e.cut(cur, Position{Row: cur.Row, Col: lineLen}, CharacterWise)
		e.setMode(ModeInsert)
	case 'p':
		e.paste(true)
	case 'P':
		e.paste(false)
	case 'u':
		e.undo()
	case 'i':
		e.setMode(ModeInsert)
	case 'a':
		if lineLen > 0 {
			e.buf.SetCursor(Position{Row: cur.Row, Col: cur.Col + 1})
		}
		e.setMode(ModeInsert)
	case 'A':
		e.buf.SetCursor(Position{Row: cur.Row, Col: lineLen})
		e.setMode(ModeInsert)
	case 'I':
		e.buf.SetCursor(Position{Row: cur.Row})
		e.setMode(ModeInsert)
	case 'o':
		e.edit(func() { e.buf.InsertLines(cur.Row+1, "") })
		e.buf.SetCursor(Position{Row: cur.Row + 1})
		e.setMode(ModeInsert)
	case 'O':
		e.edit(func() { e.buf.InsertLines(cur.Row, "") })
		e.buf.SetCursor(Position{Row: cur.Row})
		e.setMode(ModeInsert)
	case 'v':
		e.anchor = cur
		e.setMode(ModeVisual)
	case 'V':
		e.anchor = Position{Row: cur.Row}
		e.buf.SetCursor(Position{Row: cur.Row, Col: lineLen})
		e.setMode(ModeVisual)
	case 'y', 'd', 'c':
		e.anchor = cur
		e.setMode(ModeOperatorPending(t.Char))
	default:
		e.pending = t
	}
	return Continue
}

// paste puts the register after (or before) the cursor.
func (e *Editor) paste(after bool) {
	reg := e.register
	if reg.IsEmpty() {
		return
	}
	cur := e.buf.Cursor()

	if reg.Kind == LineWise {
		row := cur.Row
		if after {
			row++
		}
		e.edit(func() { e.buf.InsertLines(row, strings.Split(reg.Text, "\n")...) })
		e.buf.SetCursor(Position{Row: row})
		e.buf.ClampCursor(false)
		return
	}

	at := cur
	if after && e.buf.LineLen(cur.Row) > 0 {
		at.Col++
	}
	var end Position
	e.edit(func() { end = e.buf.InsertText(at, reg.Text) })
	if end.Col > 0 {
		end.Col--
	}
	e.buf.SetCursor(end)
	e.buf.ClampCursor(false)
}

func (e *Editor) undo() {
	prev, ok := e.history.Undo(e.buf.snapshot())
	if !ok {
		return
	}
	e.buf.restore(prev)
	e.buf.ClampCursor(false)
}

func (e *Editor) redo() {
	next, ok := e.history.Redo(e.buf.snapshot())
	if !ok {
		return
	}
	e.buf.restore(next)
	e.buf.ClampCursor(false)
}

// ============================================================================
// Operator-pending mode
// ============================================================================

func (e *Editor) inputOperator(t Token) Signal {
	op := e.mode.Operator
	cur := e.buf.Cursor()

	if t.Name == KeyEsc {
		e.setMode(ModeNormal)
		return Continue
	}
	if t.isChar(op) {
		e.pending = Null
		e.applyLinewise(op)
		return Continue
	}

	var m Motion
	switch {
	case e.takeGG(t):
		m = MotionTop
	case t.isChar('g'):
		// first half of dgg; stay pending
		e.pending = t
		return Continue
	default:
		var ok bool
		if m, ok = motionFor(t); !ok {
			e.setMode(ModeNormal)
			return Continue
		}
	}

	// cw on a word changes to its end, leaving the following space
	if op == 'c' && m == MotionWordForward && e.buf.LineLen(cur.Row) > cur.Col &&
		classOf(Graphemes(e.buf.Line(cur.Row))[cur.Col]) != ClassSpace {
		m = MotionWordEnd
	}

	target := m.Apply(e.buf.lines, cur, e.want, true)
	lineLen := e.buf.LineLen(cur.Row)
	switch m {
	case MotionWordEnd:
		// the character under the target is part of the range
		if target.Col < e.buf.LineLen(target.Row) {
			target.Col++
		}
	case MotionWordForward:
		if target.Row != cur.Row {
			target = Position{Row: cur.Row, Col: lineLen}
		}
	case MotionDown:
		if cur.Row == e.buf.LineCount()-1 {
			target = Position{Row: cur.Row, Col: lineLen}
		}
	case MotionUp:
		if cur.Row == 0 {
			target = Position{Row: cur.Row}
		}
	}

	e.applyOperator(op, e.anchor, target, CharacterWise)
	return Continue
}

// applyOperator runs op over [a, b) in either order.
func (e *Editor) applyOperator(op rune, a, b Position, kind RegisterKind) {
	start, end := ordered(a, b)
	if start == end {
		e.setMode(ModeNormal)
		return
	}

	switch op {
	case 'y':
		e.register = Register{Text: e.buf.TextRange(start, end), Kind: kind}
		e.buf.SetCursor(start)
		e.setMode(ModeNormal)
	case 'd':
		e.cut(start, end, kind)
		e.setMode(ModeNormal)
	case 'c':
		e.cut(start, end, kind)
		e.setMode(ModeInsert)
	default:
		e.setMode(ModeNormal)
	}
}

// applyLinewise handles yy, dd and cc on the cursor line.
func (e *Editor) applyLinewise(op rune) {
	cur := e.buf.Cursor()
	start := Position{Row: cur.Row}
	end := Position{Row: cur.Row, Col: e.buf.LineLen(cur.Row)}
	if cur.Row < e.buf.LineCount()-1 {
		end = Position{Row: cur.Row + 1}
	}

	text := strings.TrimSuffix(e.buf.TextRange(start, end), "\n")
	e.register = Register{Text: text, Kind: LineWise}

	switch op {
	case 'y':
		e.setMode(ModeNormal)
	case 'd':
		e.edit(func() { e.buf.DeleteRange(start, end) })
		e.buf.SetCursor(Position{Row: min(cur.Row, e.buf.LineCount()-1)})
		e.setMode(ModeNormal)
	case 'c':
		e.edit(func() { e.buf.DeleteRange(start, end) })
		e.buf.SetCursor(start)
		e.setMode(ModeInsert)
	default:
		e.setMode(ModeNormal)
	}
}

// ============================================================================
// Visual mode
// ============================================================================

func (e *Editor) inputVisual(t Token) Signal {
	if e.takeGG(t) {
		e.move(MotionTop, false)
		return Continue
	}
	if t.Name == KeyEsc || t.isChar('v') {
		e.setMode(ModeNormal)
		return Continue
	}
	if m, ok := motionFor(t); ok {
		e.move(m, false)
		return Continue
	}
	if s := scrollFor(t); s != ScrollNone {
		e.scroll = s
		return Continue
	}
	if t.Name != KeyChar || t.Ctrl || t.Alt {
		return Continue
	}

	switch t.Char {
	case 'y', 'd', 'c':
		e.applyVisual(t.Char)
	case 'x':
		e.applyVisual('d')
	case 'g':
		e.pending = t
	}
	return Continue
}

// applyVisual runs op over the selection with its later end advanced one
// position so both endpoints are included.
func (e *Editor) applyVisual(op rune) {
	start, end := ordered(e.anchor, e.buf.Cursor())
	e.applyOperator(op, start, e.advance(end), CharacterWise)
}

// ============================================================================
// Insert mode
// ============================================================================

func (e *Editor) inputInsert(t Token) Signal {
	cur := e.buf.Cursor()

	if t.Name == KeyEsc || t.isCtrl('c') {
		if cur.Col > 0 {
			e.buf.SetCursor(Position{Row: cur.Row, Col: cur.Col - 1})
		}
		e.setMode(ModeNormal)
		return Continue
	}

	switch t.Name {
	case KeyEnter:
		e.insert("\n")
	case KeyTab:
		e.insert(strings.Repeat(" ", e.tabWidth-cur.Col%e.tabWidth))
	case KeyBackspace:
		switch {
		case cur.Col > 0:
			e.edit(func() { e.buf.DeleteRange(Position{Row: cur.Row, Col: cur.Col - 1}, cur) })
		case cur.Row > 0:
			prev := Position{Row: cur.Row - 1, Col: e.buf.LineLen(cur.Row - 1)}
			e.edit(func() { e.buf.DeleteRange(prev, cur) })
		}
	case KeyDelete:
		e.edit(func() { e.buf.DeleteRange(cur, e.advance(cur)) })
		e.buf.SetCursor(cur)
	case KeyLeft, KeyRight, KeyUp, KeyDown, KeyHome, KeyEnd:
		m, _ := motionFor(t)
		e.move(m, true)
	case KeyPgUp, KeyPgDown:
		e.scroll = scrollFor(t)
	case KeyChar:
		// Alt only marks how the key was typed; the character goes in as is
		if !t.Ctrl {
			e.insert(string(t.Char))
		}
	}
	return Continue
}

func (e *Editor) insert(s string) {
	var end Position
	e.edit(func() { end = e.buf.InsertText(e.buf.Cursor(), s) })
	e.buf.SetCursor(end)
}
