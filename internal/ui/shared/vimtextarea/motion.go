package vimtextarea

// Motion is a cursor movement. Motions are pure: they read the lines and
// return a new position, always clamped into the buffer.
type Motion int

const (
	MotionNone Motion = iota
	MotionLeft
	MotionRight
	MotionUp
	MotionDown
	MotionWordForward
	MotionWordBackward
	MotionWordEnd
	MotionLineHead
	MotionLineEnd
	MotionTop
	MotionBottom
)

// endOfLine is the preferred column after '$': vertical moves keep hugging
// the line end.
const endOfLine = int(^uint(0) >> 1)

// motionFor maps a token to the motion it names. gg is handled through the
// pending token and never reaches here.
func motionFor(t Token) (Motion, bool) {
	switch t.Name {
	case KeyLeft:
		return MotionLeft, true
	case KeyRight:
		return MotionRight, true
	case KeyUp:
		return MotionUp, true
	case KeyDown:
		return MotionDown, true
	case KeyHome:
		return MotionLineHead, true
	case KeyEnd:
		return MotionLineEnd, true
	case KeyChar:
		if t.Ctrl || t.Alt {
			return MotionNone, false
		}
	default:
		return MotionNone, false
	}

	switch t.Char {
	case 'h':
		return MotionLeft, true
	case 'l':
		return MotionRight, true
	case 'k':
		return MotionUp, true
	case 'j':
		return MotionDown, true
	case 'w':
		return MotionWordForward, true
	case 'b':
		return MotionWordBackward, true
	case 'e':
		return MotionWordEnd, true
	case '^', '0':
		return MotionLineHead, true
	case '$':
		return MotionLineEnd, true
	case 'G':
		return MotionBottom, true
	}
	return MotionNone, false
}

// lineLimit is the largest column the cursor may take on line. With pastEnd
// the column may sit one past the last character.
func lineLimit(line string, pastEnd bool) int {
	n := GraphemeCount(line)
	if !pastEnd && n > 0 {
		return n - 1
	}
	return n
}

func clampPosition(lines []string, pos Position, pastEnd bool) Position {
	if len(lines) == 0 {
		return Position{}
	}
	pos.Row = max(min(pos.Row, len(lines)-1), 0)
	pos.Col = max(min(pos.Col, lineLimit(lines[pos.Row], pastEnd)), 0)
	return pos
}

// Apply moves pos by the motion. want is the preferred column used by
// vertical moves; pastEnd lets the column equal the line length.
func (m Motion) Apply(lines []string, pos Position, want int, pastEnd bool) Position {
	if len(lines) == 0 {
		return Position{}
	}
	pos = clampPosition(lines, pos, true)
	last := len(lines) - 1

	var next Position
	switch m {
	case MotionLeft:
		next = Position{Row: pos.Row, Col: pos.Col - 1}
	case MotionRight:
		next = Position{Row: pos.Row, Col: min(pos.Col+1, lineLimit(lines[pos.Row], pastEnd))}
	case MotionUp:
		next = Position{Row: max(pos.Row-1, 0), Col: want}
		if next.Row == pos.Row {
			next.Col = pos.Col
		}
	case MotionDown:
		next = Position{Row: min(pos.Row+1, last), Col: want}
		if next.Row == pos.Row {
			next.Col = pos.Col
		}
	case MotionWordForward:
		next = wordForward(lines, pos, pastEnd)
	case MotionWordBackward:
		next = wordBackward(lines, pos)
	case MotionWordEnd:
		next = wordEnd(lines, pos)
	case MotionLineHead:
		next = Position{Row: pos.Row}
	case MotionLineEnd:
		next = Position{Row: pos.Row, Col: lineLimit(lines[pos.Row], pastEnd)}
	case MotionTop:
		next = Position{Row: 0, Col: pos.Col}
	case MotionBottom:
		next = Position{Row: last, Col: pos.Col}
	default:
		next = pos
	}
	return clampPosition(lines, next, pastEnd)
}

// wordForward finds the start of the next word. An empty line counts as a
// word. Without a next word the cursor goes to the end of the last line.
func wordForward(lines []string, pos Position, pastEnd bool) Position {
	g := Graphemes(lines[pos.Row])
	col := pos.Col
	if col < len(g) {
		if cls := classOf(g[col]); cls != ClassSpace {
			for col < len(g) && classOf(g[col]) == cls {
				col++
			}
		}
		for col < len(g) && classOf(g[col]) == ClassSpace {
			col++
		}
		if col < len(g) {
			return Position{Row: pos.Row, Col: col}
		}
	}

	for row := pos.Row + 1; row < len(lines); row++ {
		g = Graphemes(lines[row])
		if len(g) == 0 {
			return Position{Row: row}
		}
		col = 0
		for col < len(g) && classOf(g[col]) == ClassSpace {
			col++
		}
		if col < len(g) {
			return Position{Row: row, Col: col}
		}
	}

	row := len(lines) - 1
	return Position{Row: row, Col: lineLimit(lines[row], pastEnd)}
}

// wordBackward finds the start of the current or previous word.
func wordBackward(lines []string, pos Position) Position {
	row, col := pos.Row, pos.Col
	g := Graphemes(lines[row])
	col = min(col, len(g))

	for {
		if col == 0 {
			if row == 0 {
				return Position{}
			}
			row--
			g = Graphemes(lines[row])
			col = len(g)
			if col == 0 {
				return Position{Row: row}
			}
			continue
		}
		if classOf(g[col-1]) != ClassSpace {
			break
		}
		col--
	}

	cls := classOf(g[col-1])
	for col > 0 && classOf(g[col-1]) == cls {
		col--
	}
	return Position{Row: row, Col: col}
}

// wordEnd finds the last character of the current or next word. When no
// word follows, the cursor stays where it is.
func wordEnd(lines []string, pos Position) Position {
	row, col := pos.Row, pos.Col+1
	g := Graphemes(lines[row])
	for {
		for col < len(g) && classOf(g[col]) == ClassSpace {
			col++
		}
		if col < len(g) {
			break
		}
		if row == len(lines)-1 {
			return pos
		}
		row++
		col = 0
		g = Graphemes(lines[row])
	}

	cls := classOf(g[col])
	for col+1 < len(g) && classOf(g[col+1]) == cls {
		col++
	}
	return Position{Row: row, Col: col}
}
