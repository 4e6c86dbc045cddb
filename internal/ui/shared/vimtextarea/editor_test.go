package vimtextarea

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// ============================================================================
// Scenarios
// ============================================================================

// TestEditor_ScenarioInsertHello verifies typing into an empty buffer and leaving Insert
func TestEditor_ScenarioInsertHello(t *testing.T) {
	e := NewEditor()

	feed(e, "ihello<esc>")

	require.Equal(t, []string{"hello"}, e.Lines())
	require.Equal(t, ModeNormal, e.Mode())
	require.Equal(t, at(0, 4), e.Cursor())
}

// TestEditor_ScenarioYankLinePaste verifies yy then p duplicates the line below
func TestEditor_ScenarioYankLinePaste(t *testing.T) {
	e := newTestEditor("foo", "bar")

	feed(e, "yy")
	require.Equal(t, Register{Text: "foo", Kind: LineWise}, e.Register())
	require.Equal(t, []string{"foo", "bar"}, e.Lines())
	require.Equal(t, ModeNormal, e.Mode())

	feed(e, "p")
	require.Equal(t, []string{"foo", "foo", "bar"}, e.Lines())
	require.Equal(t, at(1, 0), e.Cursor())
}

// TestEditor_ScenarioDeleteWord verifies dw removes the word and its trailing space
func TestEditor_ScenarioDeleteWord(t *testing.T) {
	e := newTestEditor("hello world")

	feed(e, "dw")

	require.Equal(t, []string{"world"}, e.Lines())
	require.Equal(t, Register{Text: "hello ", Kind: CharacterWise}, e.Register())
	require.Equal(t, ModeNormal, e.Mode())
}

// TestEditor_ScenarioVisualYank verifies the visual range includes the character under the cursor
func TestEditor_ScenarioVisualYank(t *testing.T) {
	e := newTestEditor("abc")

	feed(e, "vlly")

	require.Equal(t, Register{Text: "abc", Kind: CharacterWise}, e.Register())
	require.Equal(t, ModeNormal, e.Mode())
	require.Equal(t, at(0, 0), e.Cursor())
	require.Equal(t, []string{"abc"}, e.Lines())
}

// ============================================================================
// Normal mode
// ============================================================================

func TestEditor_GGAndG(t *testing.T) {
	e := newTestEditor("one", "two", "three")

	feed(e, "G")
	require.Equal(t, 2, e.Cursor().Row)

	feed(e, "g")
	require.Equal(t, Char('g'), e.Pending())
	require.Equal(t, ModeNormal, e.Mode())

	feed(e, "g")
	require.Equal(t, 0, e.Cursor().Row)
	require.True(t, e.Pending().IsNull())
}

func TestEditor_PendingClearedByRecognisedCommand(t *testing.T) {
	e := newTestEditor("abc")

	feed(e, "gl")

	require.True(t, e.Pending().IsNull())
	require.Equal(t, at(0, 1), e.Cursor())
}

func TestEditor_UnknownTokenBecomesPending(t *testing.T) {
	e := newTestEditor("abc")

	feed(e, "Z")

	require.Equal(t, Char('Z'), e.Pending())
	require.Equal(t, []string{"abc"}, e.Lines())
	require.False(t, e.CanUndo())
}

func TestEditor_PreferredColumn(t *testing.T) {
	e := newTestEditor("hello", "hi", "hello")

	feed(e, "llllj")
	require.Equal(t, at(1, 1), e.Cursor())

	feed(e, "j")
	require.Equal(t, at(2, 4), e.Cursor())
}

func TestEditor_DollarKeepsLineEnd(t *testing.T) {
	e := newTestEditor("ab", "abcdef")

	feed(e, "$j")

	require.Equal(t, at(1, 5), e.Cursor())
}

func TestEditor_X(t *testing.T) {
	e := newTestEditor("abc")

	feed(e, "$x")

	require.Equal(t, []string{"ab"}, e.Lines())
	require.Equal(t, at(0, 1), e.Cursor())
	require.Equal(t, Register{Text: "c", Kind: CharacterWise}, e.Register())
}

func TestEditor_XThenPSwapsCharacters(t *testing.T) {
	e := newTestEditor("abc")

	feed(e, "xp")

	require.Equal(t, []string{"bac"}, e.Lines())
	require.Equal(t, at(0, 1), e.Cursor())
}

func TestEditor_XOnEmptyLineRecordsNothing(t *testing.T) {
	e := NewEditor()

	feed(e, "x")

	require.Equal(t, []string{""}, e.Lines())
	require.False(t, e.CanUndo())
	require.True(t, e.Register().IsEmpty())
}

func TestEditor_DeleteToLineEnd(t *testing.T) {
	e := newTestEditor("hello world")

	feed(e, "wD")

	require.Equal(t, []string{"hello "}, e.Lines())
	require.Equal(t, at(0, 5), e.Cursor())
	require.Equal(t, "world", e.Register().Text)
}

func TestEditor_ChangeToLineEnd(t *testing.T) {
	e := newTestEditor("hello world")

	feed(e, "wCthere<esc>")

	require.Equal(t, []string{"hello there"}, e.Lines())
	require.Equal(t, ModeNormal, e.Mode())
}

func TestEditor_PasteBefore(t *testing.T) {
	e := newTestEditor("abc")

	feed(e, "lxP")

	require.Equal(t, []string{"abc"}, e.Lines())
	require.Equal(t, at(0, 1), e.Cursor())
}

func TestEditor_PasteLinewiseAbove(t *testing.T) {
	e := newTestEditor("foo", "bar")

	feed(e, "jyykP")

	require.Equal(t, []string{"bar", "foo", "bar"}, e.Lines())
	require.Equal(t, at(0, 0), e.Cursor())
}

func TestEditor_PasteEmptyRegisterRecordsNothing(t *testing.T) {
	e := newTestEditor("abc")

	feed(e, "p")

	require.Equal(t, []string{"abc"}, e.Lines())
	require.False(t, e.CanUndo())
}

func TestEditor_InsertEntries(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   []string
	}{
		{"i at cursor", "lliX<esc>", []string{"abXc", "def"}},
		{"a after cursor", "aX<esc>", []string{"aXbc", "def"}},
		{"A at line end", "AX<esc>", []string{"abcX", "def"}},
		{"I at line head", "llIX<esc>", []string{"Xabc", "def"}},
		{"o opens below", "oX<esc>", []string{"abc", "X", "def"}},
		{"O opens above", "OX<esc>", []string{"X", "abc", "def"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEditor("abc", "def")
			feed(e, tt.script)
			require.Equal(t, tt.want, e.Lines())
			require.Equal(t, ModeNormal, e.Mode())
		})
	}
}

func TestEditor_Signals(t *testing.T) {
	e := newTestEditor("draft")

	require.Equal(t, Commit, feed(e, "<cr>"))
	require.Equal(t, Cancel, feed(e, "q"))
	require.Equal(t, Continue, feed(e, "l"))
	require.Equal(t, []string{"draft"}, e.Lines())
}

func TestEditor_ScrollHints(t *testing.T) {
	e := newTestEditor("a", "b")

	feed(e, "<c-d>")
	require.Equal(t, ScrollHalfPageDown, e.LastScroll())
	require.Equal(t, at(0, 0), e.Cursor())

	feed(e, "<pgup>")
	require.Equal(t, ScrollPageUp, e.LastScroll())

	feed(e, "j")
	require.Equal(t, ScrollNone, e.LastScroll())
	require.False(t, e.CanUndo())
}

// ============================================================================
// Undo / redo
// ============================================================================

func TestEditor_UndoRedoRoundTrip(t *testing.T) {
	e := newTestEditor("hello world")

	feed(e, "wD")
	after := e.Lines()

	feed(e, "u")
	require.Equal(t, []string{"hello world"}, e.Lines())
	require.Equal(t, at(0, 6), e.Cursor())
	require.True(t, e.CanRedo())

	feed(e, "<c-r>")
	require.Equal(t, after, e.Lines())
	require.True(t, e.CanUndo())
	require.False(t, e.CanRedo())
}

func TestEditor_NewEditClearsRedo(t *testing.T) {
	e := newTestEditor("abc")

	feed(e, "xu")
	require.True(t, e.CanRedo())

	feed(e, "x")
	require.False(t, e.CanRedo())

	feed(e, "<c-r>")
	require.Equal(t, []string{"bc"}, e.Lines())
}

func TestEditor_UndoIsPerKeystrokeInInsert(t *testing.T) {
	e := NewEditor()

	feed(e, "iab<esc>u")
	require.Equal(t, []string{"a"}, e.Lines())

	feed(e, "u")
	require.Equal(t, []string{""}, e.Lines())
	require.False(t, e.CanUndo())
}

func TestEditor_UndoWithEmptyHistory(t *testing.T) {
	e := newTestEditor("abc")

	feed(e, "u<c-r>")

	require.Equal(t, []string{"abc"}, e.Lines())
}

// ============================================================================
// Operator-pending mode
// ============================================================================

func TestEditor_OperatorModeLabel(t *testing.T) {
	e := newTestEditor("abc")

	feed(e, "d")

	require.Equal(t, ModeOperatorPending('d'), e.Mode())
	require.Equal(t, "OPERATOR(d)", e.Mode().String())
}

func TestEditor_OperatorMotions(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		script   string
		want     []string
		register string
	}{
		{"de includes target", []string{"hello world"}, "de", []string{" world"}, "hello"},
		{"d$ to line end", []string{"hello world"}, "d$", []string{""}, "hello world"},
		{"dw on last word", []string{"hello world"}, "wdw", []string{"hello "}, "world"},
		{"dw stays on line", []string{"foo", "bar"}, "dw", []string{"", "bar"}, "foo"},
		{"dl deletes one char", []string{"abc"}, "dl", []string{"bc"}, "a"},
		{"db deletes backward", []string{"foo bar"}, "$db", []string{"foo r"}, "ba"},
		{"dj on last line to end", []string{"ab", "cd"}, "jdj", []string{"ab", ""}, "cd"},
		{"dk on first line to head", []string{"abc"}, "lldk", []string{"c"}, "ab"},
		{"dgg to top", []string{"a", "b", "c"}, "jjdgg", []string{"c"}, "a\nb\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEditor(tt.lines...)
			feed(e, tt.script)
			require.Equal(t, tt.want, e.Lines())
			require.Equal(t, Register{Text: tt.register, Kind: CharacterWise}, e.Register())
			require.Equal(t, ModeNormal, e.Mode())
		})
	}
}

func TestEditor_YankMotionLeavesBuffer(t *testing.T) {
	e := newTestEditor("hello world")

	feed(e, "wyb")

	require.Equal(t, []string{"hello world"}, e.Lines())
	require.Equal(t, "hello ", e.Register().Text)
	require.Equal(t, at(0, 0), e.Cursor())
	require.False(t, e.CanUndo())
}

func TestEditor_ChangeWord(t *testing.T) {
	e := newTestEditor("hello world")

	feed(e, "cwbye<esc>")

	require.Equal(t, []string{"bye world"}, e.Lines())
	require.Equal(t, "hello", e.Register().Text)
}

func TestEditor_ZeroWidthRangeIsNoop(t *testing.T) {
	e := newTestEditor("abc")

	feed(e, "dh")

	require.Equal(t, []string{"abc"}, e.Lines())
	require.Equal(t, ModeNormal, e.Mode())
	require.False(t, e.CanUndo())
	require.True(t, e.Register().IsEmpty())
}

func TestEditor_EscapeCancelsOperator(t *testing.T) {
	e := newTestEditor("abc")

	feed(e, "ld<esc>")

	require.Equal(t, ModeNormal, e.Mode())
	require.Equal(t, []string{"abc"}, e.Lines())
	require.Equal(t, at(0, 1), e.Cursor())
	require.True(t, e.Register().IsEmpty())
}

func TestEditor_OtherTokenCancelsOperatorSilently(t *testing.T) {
	e := newTestEditor("abc")

	feed(e, "dx")

	require.Equal(t, ModeNormal, e.Mode())
	require.Equal(t, []string{"abc"}, e.Lines())
}

// ============================================================================
// Line-wise operators
// ============================================================================

func TestEditor_DDSingleLineLeavesEmptyLine(t *testing.T) {
	e := newTestEditor("hello")

	feed(e, "dd")

	require.Equal(t, []string{""}, e.Lines())
	require.Equal(t, Register{Text: "hello", Kind: LineWise}, e.Register())
}

func TestEditor_DDMiddleLine(t *testing.T) {
	e := newTestEditor("a", "b", "c")

	feed(e, "jdd")

	require.Equal(t, []string{"a", "c"}, e.Lines())
	require.Equal(t, at(1, 0), e.Cursor())
	require.Equal(t, Register{Text: "b", Kind: LineWise}, e.Register())
}

func TestEditor_DDLastLineStopsAtLineEnd(t *testing.T) {
	e := newTestEditor("a", "b")

	feed(e, "jdd")

	require.Equal(t, []string{"a", ""}, e.Lines())
	require.Equal(t, Register{Text: "b", Kind: LineWise}, e.Register())
}

func TestEditor_DDThenPMovesLine(t *testing.T) {
	e := newTestEditor("a", "b", "c")

	feed(e, "ddp")

	require.Equal(t, []string{"b", "a", "c"}, e.Lines())
	require.Equal(t, at(1, 0), e.Cursor())
}

func TestEditor_CCRemovesWholeLine(t *testing.T) {
	e := newTestEditor("foo", "bar")

	feed(e, "cc")

	require.Equal(t, []string{"bar"}, e.Lines())
	require.Equal(t, at(0, 0), e.Cursor())
	require.Equal(t, ModeInsert, e.Mode())
	require.Equal(t, Register{Text: "foo", Kind: LineWise}, e.Register())

	feed(e, "baz")
	require.Equal(t, []string{"bazbar"}, e.Lines())
}

func TestEditor_CCLastLineLeavesEmptyLine(t *testing.T) {
	e := newTestEditor("foo", "bar")

	feed(e, "jccbaz<esc>")

	require.Equal(t, []string{"foo", "baz"}, e.Lines())
	require.Equal(t, Register{Text: "bar", Kind: LineWise}, e.Register())
}

func TestEditor_CCThenUndoRestoresLine(t *testing.T) {
	e := newTestEditor("foo", "bar")

	feed(e, "cc<esc>u")

	require.Equal(t, []string{"foo", "bar"}, e.Lines())
}

func TestEditor_VisualLineYankIsCharacterWise(t *testing.T) {
	e := newTestEditor("ab", "cd")

	feed(e, "Vy")

	require.Equal(t, Register{Text: "ab", Kind: CharacterWise}, e.Register())
	require.Equal(t, ModeNormal, e.Mode())
	require.Equal(t, at(0, 0), e.Cursor())

	feed(e, "jp")
	require.Equal(t, []string{"ab", "cabd"}, e.Lines())
	require.Equal(t, at(1, 2), e.Cursor())
}

func TestEditor_InsertAltCharacterVerbatim(t *testing.T) {
	e := newTestEditor("")

	feed(e, "ia<a-b>c")

	require.Equal(t, []string{"abc"}, e.Lines())
	require.Equal(t, at(0, 3), e.Cursor())
}

func TestEditor_YYOnEmptyLinePastesEmptyLine(t *testing.T) {
	e := newTestEditor("", "x")

	feed(e, "yyp")

	require.Equal(t, []string{"", "", "x"}, e.Lines())
}

// ============================================================================
// Visual mode
// ============================================================================

func TestEditor_VisualSelection(t *testing.T) {
	e := newTestEditor("hello")

	_, _, ok := e.Selection()
	require.False(t, ok)

	feed(e, "lvl")
	start, end, ok := e.Selection()
	require.True(t, ok)
	require.Equal(t, at(0, 1), start)
	require.Equal(t, at(0, 2), end)
}

func TestEditor_VisualBackwardDelete(t *testing.T) {
	e := newTestEditor("hello")

	feed(e, "$vhhd")

	require.Equal(t, []string{"he"}, e.Lines())
	require.Equal(t, "llo", e.Register().Text)
	require.Equal(t, at(0, 1), e.Cursor())
}

func TestEditor_VisualAcrossLines(t *testing.T) {
	e := newTestEditor("ab", "cd")

	feed(e, "vjy")

	require.Equal(t, "ab\nc", e.Register().Text)
	require.Equal(t, ModeNormal, e.Mode())
}

func TestEditor_VisualChange(t *testing.T) {
	e := newTestEditor("abc")

	feed(e, "vlcX<esc>")

	require.Equal(t, []string{"Xc"}, e.Lines())
	require.Equal(t, "ab", e.Register().Text)
}

func TestEditor_VisualXDeletes(t *testing.T) {
	e := newTestEditor("abc")

	feed(e, "vx")

	require.Equal(t, []string{"bc"}, e.Lines())
}

func TestEditor_VisualToBottom(t *testing.T) {
	e := newTestEditor("a", "b")

	feed(e, "vGd")

	require.Equal(t, []string{""}, e.Lines())
}

func TestEditor_VisualCancel(t *testing.T) {
	for _, script := range []string{"vl<esc>", "vlv"} {
		e := newTestEditor("abc")
		feed(e, script)
		require.Equal(t, ModeNormal, e.Mode(), script)
		require.Equal(t, []string{"abc"}, e.Lines(), script)
		require.True(t, e.Register().IsEmpty(), script)
	}
}

func TestEditor_VisualLineSelectsWholeLine(t *testing.T) {
	e := newTestEditor("hello", "world")

	feed(e, "lV")
	start, end, ok := e.Selection()
	require.True(t, ok)
	require.Equal(t, at(0, 0), start)
	require.Equal(t, at(0, 4), end)

	feed(e, "y")
	require.Equal(t, Register{Text: "hello", Kind: CharacterWise}, e.Register())
}

// ============================================================================
// Insert mode
// ============================================================================

func TestEditor_InsertEnterSplits(t *testing.T) {
	e := NewEditor()

	feed(e, "ihello<cr>world<esc>")

	require.Equal(t, []string{"hello", "world"}, e.Lines())
	require.Equal(t, at(1, 4), e.Cursor())
	require.Equal(t, "hello\nworld", e.Text())
}

func TestEditor_InsertTab(t *testing.T) {
	e := NewEditor()
	feed(e, "i<tab>x")
	require.Equal(t, []string{"    x"}, e.Lines())

	e = NewEditor()
	feed(e, "iab<tab>")
	require.Equal(t, []string{"ab  "}, e.Lines())

	e = NewEditor()
	e.SetTabWidth(2)
	feed(e, "ia<tab>")
	require.Equal(t, []string{"a "}, e.Lines())
}

func TestEditor_InsertBackspaceJoinsLines(t *testing.T) {
	e := newTestEditor("ab", "cd")

	feed(e, "ji<bs>")

	require.Equal(t, []string{"abcd"}, e.Lines())
	require.Equal(t, at(0, 2), e.Cursor())
}

func TestEditor_InsertBackspaceAtOrigin(t *testing.T) {
	e := newTestEditor("ab")

	feed(e, "i<bs>")

	require.Equal(t, []string{"ab"}, e.Lines())
	require.False(t, e.CanUndo())
}

func TestEditor_InsertDeleteJoinsNextLine(t *testing.T) {
	e := newTestEditor("ab", "cd")

	feed(e, "A<del>")

	require.Equal(t, []string{"abcd"}, e.Lines())
	require.Equal(t, at(0, 2), e.Cursor())
}

func TestEditor_InsertArrowsMayRestPastEnd(t *testing.T) {
	e := newTestEditor("ab", "cdef")

	feed(e, "i<end>")
	require.Equal(t, at(0, 2), e.Cursor())

	feed(e, "<down><home><right>")
	require.Equal(t, at(1, 1), e.Cursor())
}

func TestEditor_LeavingInsertStepsBack(t *testing.T) {
	e := NewEditor()
	feed(e, "ihi<c-c>")
	require.Equal(t, ModeNormal, e.Mode())
	require.Equal(t, at(0, 1), e.Cursor())

	e = newTestEditor("abc")
	feed(e, "i<esc>")
	require.Equal(t, at(0, 0), e.Cursor())
}

func TestEditor_InsertUnicode(t *testing.T) {
	e := NewEditor()

	feed(e, "ih😀i<esc>x")

	require.Equal(t, []string{"h😀"}, e.Lines())
	require.Equal(t, at(0, 1), e.Cursor())
}

func TestEditor_SetModeInsert(t *testing.T) {
	e := NewEditor()

	e.SetMode(ModeInsert)
	feed(e, "x")
	require.Equal(t, []string{"x"}, e.Lines())

	e.SetMode(ModeVisual)
	require.Equal(t, ModeInsert, e.Mode())
}

func TestEditor_NullTokenIsNoop(t *testing.T) {
	e := newTestEditor("abc")
	feed(e, "g")

	require.Equal(t, Continue, e.Input(Null))
	require.Equal(t, Char('g'), e.Pending())
}
