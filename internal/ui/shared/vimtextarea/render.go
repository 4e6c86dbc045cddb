package vimtextarea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Karvyz/halfmoon/internal/ui/styles"
)

// View renders the textarea with cursor and visual selection, soft-wrapped to
// the configured width. The mode indicator is not part of the view; hosts
// place ModeIndicator wherever their layout wants it.
func (m Model) View() string {
	if m.isEmpty() {
		return m.renderEmpty()
	}

	cursor := m.editor.Cursor()
	selStart, selEnd, inVisual := m.editor.Selection()
	inVisual = inVisual && m.focused

	cursorStyle := lipgloss.NewStyle().Reverse(true)
	selectionStyle := lipgloss.NewStyle().
		Background(styles.SelectionBackgroundColor).
		Foreground(styles.SelectionForegroundColor)

	height := m.viewHeight()
	displayRow := 0
	var out []string

	for row, line := range m.editor.buf.lines {
		segments, starts := m.wrapLineWithInfo(line)
		lineLen := GraphemeCount(line)

		for wrapIdx, segment := range segments {
			if displayRow < m.scrollOffset {
				displayRow++
				continue
			}
			if height > 0 && len(out) >= height {
				break
			}

			var b strings.Builder
			col := starts[wrapIdx]
			for _, g := range Graphemes(segment) {
				pos := Position{Row: row, Col: col}
				switch {
				case m.focused && pos == cursor:
					b.WriteString(cursorStyle.Render(g))
				case inVisual && !pos.Before(selStart) && !selEnd.Before(pos):
					b.WriteString(selectionStyle.Render(g))
				default:
					b.WriteString(g)
				}
				col++
			}

			// cursor resting past the last character, or on an empty line
			lastSegment := wrapIdx == len(segments)-1
			if lastSegment {
				end := Position{Row: row, Col: lineLen}
				switch {
				case m.focused && cursor == end:
					b.WriteString(cursorStyle.Render(" "))
				case inVisual && lineLen == 0 && !end.Before(selStart) && !selEnd.Before(end):
					b.WriteString(selectionStyle.Render(" "))
				}
			}

			out = append(out, b.String())
			displayRow++
		}

		if height > 0 && len(out) >= height {
			break
		}
	}

	return strings.Join(out, "\n")
}

// wrapLineWithInfo splits line into segments no wider than the model width,
// returning each segment's starting grapheme index.
func (m Model) wrapLineWithInfo(line string) ([]string, []int) {
	if m.width <= 0 || len(line) == 0 {
		return []string{line}, []int{0}
	}

	var wrapped []string
	var starts []int
	var current strings.Builder
	currentWidth := 0
	segmentStart := 0

	for i, g := range Graphemes(line) {
		w := GraphemeDisplayWidth(g)
		if currentWidth+w > m.width && currentWidth > 0 {
			wrapped = append(wrapped, current.String())
			starts = append(starts, segmentStart)
			current.Reset()
			currentWidth = 0
			segmentStart = i
		}
		current.WriteString(g)
		currentWidth += w
	}

	if current.Len() > 0 || len(wrapped) == 0 {
		wrapped = append(wrapped, current.String())
		starts = append(starts, segmentStart)
	}
	return wrapped, starts
}

func (m Model) renderEmpty() string {
	if m.focused {
		return lipgloss.NewStyle().Reverse(true).Render(" ")
	}
	if m.config.Placeholder != "" {
		return lipgloss.NewStyle().Foreground(styles.TextPlaceholderColor).Render(m.config.Placeholder)
	}
	return ""
}

func (m Model) isEmpty() bool {
	lines := m.editor.buf.lines
	return len(lines) == 1 && lines[0] == ""
}

// viewHeight is the number of display rows available, 0 meaning unlimited.
func (m Model) viewHeight() int {
	switch {
	case m.height > 0 && m.config.MaxHeight > 0:
		return min(m.height, m.config.MaxHeight)
	case m.config.MaxHeight > 0:
		return m.config.MaxHeight
	default:
		return m.height
	}
}

func (m Model) displayLinesForLine(line string) int {
	segments, _ := m.wrapLineWithInfo(line)
	return len(segments)
}

// TotalDisplayLines returns the number of display rows the content needs,
// counting soft wraps.
func (m Model) TotalDisplayLines() int {
	total := 0
	for _, line := range m.editor.buf.lines {
		total += m.displayLinesForLine(line)
	}
	return total
}

// cursorDisplayRow returns the display row holding the cursor.
func (m Model) cursorDisplayRow() int {
	cursor := m.editor.Cursor()
	row := 0
	for i := 0; i < cursor.Row; i++ {
		row += m.displayLinesForLine(m.editor.buf.lines[i])
	}

	_, starts := m.wrapLineWithInfo(m.editor.buf.lines[cursor.Row])
	wrap := 0
	for i, s := range starts {
		if cursor.Col >= s {
			wrap = i
		}
	}
	return row + wrap
}

// ensureCursorVisible adjusts the scroll offset so the cursor row is on screen.
func (m *Model) ensureCursorVisible() {
	height := m.viewHeight()
	if height <= 0 {
		m.scrollOffset = 0
		return
	}

	cursorRow := m.cursorDisplayRow()
	m.scrollOffset = min(m.scrollOffset, cursorRow)
	if cursorRow >= m.scrollOffset+height {
		m.scrollOffset = cursorRow - height + 1
	}
	m.clampScroll()
}

func (m *Model) clampScroll() {
	height := m.viewHeight()
	if height <= 0 {
		m.scrollOffset = 0
		return
	}
	maxOffset := max(m.TotalDisplayLines()-height, 0)
	m.scrollOffset = max(min(m.scrollOffset, maxOffset), 0)
}

// ScrollOffset returns the first visible display row.
func (m Model) ScrollOffset() int {
	return m.scrollOffset
}
