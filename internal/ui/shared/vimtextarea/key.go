package vimtextarea

import (
	"regexp"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyName identifies a canonical key.
type KeyName int

const (
	// KeyNull is the no-op token. Unrecognised input classifies to it.
	KeyNull KeyName = iota
	KeyChar
	KeyEsc
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDown
)

var keyNames = map[KeyName]string{
	KeyNull:      "<null>",
	KeyEsc:       "<esc>",
	KeyEnter:     "<enter>",
	KeyBackspace: "<bs>",
	KeyDelete:    "<del>",
	KeyTab:       "<tab>",
	KeyLeft:      "<left>",
	KeyRight:     "<right>",
	KeyUp:        "<up>",
	KeyDown:      "<down>",
	KeyHome:      "<home>",
	KeyEnd:       "<end>",
	KeyPgUp:      "<pgup>",
	KeyPgDown:    "<pgdown>",
}

// Token is a classified key event: a character or a named key plus modifiers.
type Token struct {
	Name KeyName
	Char rune // set when Name == KeyChar
	Ctrl bool
	Alt  bool
}

// Null is the distinguished no-op token.
var Null = Token{}

// Char returns the token for a plain character.
func Char(r rune) Token { return Token{Name: KeyChar, Char: r} }

// Ctrl returns the token for Ctrl plus a character.
func Ctrl(r rune) Token { return Token{Name: KeyChar, Char: r, Ctrl: true} }

// Named returns the token for a named key.
func Named(k KeyName) Token { return Token{Name: k} }

// IsNull reports whether t is the no-op token.
func (t Token) IsNull() bool { return t.Name == KeyNull }

// isChar reports whether t is the unmodified character r.
func (t Token) isChar(r rune) bool {
	return t.Name == KeyChar && !t.Ctrl && !t.Alt && t.Char == r
}

// isCtrl reports whether t is Ctrl plus r.
func (t Token) isCtrl(r rune) bool {
	return t.Name == KeyChar && t.Ctrl && t.Char == r
}

// String renders the token in the same notation ParseKeys accepts.
func (t Token) String() string {
	if t.Name != KeyChar {
		return keyNames[t.Name]
	}
	switch {
	case t.Ctrl:
		return "<c-" + string(t.Char) + ">"
	case t.Alt:
		return "<a-" + string(t.Char) + ">"
	case t.Char == '<':
		return "<lt>"
	default:
		return string(t.Char)
	}
}

// mouseEscapePattern matches SGR mouse tracking sequences that weren't parsed by bubbletea.
// These look like "[<65;87;15M" or "<65;87;15M" (CSI < Pb ; Px ; Py M/m format).
var mouseEscapePattern = regexp.MustCompile(`^\[?<\d+;\d+;\d+[Mm]$`)

// isMouseEscapeSequence checks if runes represent an unparsed SGR mouse tracking sequence.
func isMouseEscapeSequence(runes []rune) bool {
	if len(runes) < 6 {
		return false
	}
	return mouseEscapePattern.MatchString(string(runes))
}

// Classify converts a tea.KeyMsg into a Token. Anything it does not know,
// including multi-rune pastes, becomes Null; use ClassifyAll for pastes.
func Classify(msg tea.KeyMsg) Token {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) != 1 || msg.Paste {
			return Null
		}
		return Token{Name: KeyChar, Char: msg.Runes[0], Alt: msg.Alt}
	case tea.KeySpace:
		return Token{Name: KeyChar, Char: ' ', Alt: msg.Alt}
	case tea.KeyEscape:
		return Named(KeyEsc)
	case tea.KeyEnter:
		return Token{Name: KeyEnter, Alt: msg.Alt}
	case tea.KeyBackspace:
		return Named(KeyBackspace)
	case tea.KeyDelete:
		return Named(KeyDelete)
	case tea.KeyTab:
		return Named(KeyTab)
	case tea.KeyLeft:
		return Named(KeyLeft)
	case tea.KeyRight:
		return Named(KeyRight)
	case tea.KeyUp:
		return Named(KeyUp)
	case tea.KeyDown:
		return Named(KeyDown)
	case tea.KeyHome:
		return Named(KeyHome)
	case tea.KeyEnd:
		return Named(KeyEnd)
	case tea.KeyPgUp:
		return Named(KeyPgUp)
	case tea.KeyPgDown:
		return Named(KeyPgDown)
	}

	// Ctrl+letter arrive as the control codes 1..26.
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		return Ctrl(rune('a' + int(msg.Type-tea.KeyCtrlA)))
	}
	return Null
}

// ClassifyAll classifies a key event that may carry several runes (a bracketed
// paste or a fast typist). Newlines become Enter and tabs become Tab.
func ClassifyAll(msg tea.KeyMsg) []Token {
	if msg.Type != tea.KeyRunes || (len(msg.Runes) == 1 && !msg.Paste) {
		if tok := Classify(msg); !tok.IsNull() {
			return []Token{tok}
		}
		return nil
	}
	if isMouseEscapeSequence(msg.Runes) {
		return nil
	}

	toks := make([]Token, 0, len(msg.Runes))
	for i, r := range msg.Runes {
		switch r {
		case '\r':
			// \r\n collapses to a single Enter
			if i+1 < len(msg.Runes) && msg.Runes[i+1] == '\n' {
				continue
			}
			toks = append(toks, Named(KeyEnter))
		case '\n':
			toks = append(toks, Named(KeyEnter))
		case '\t':
			toks = append(toks, Named(KeyTab))
		default:
			if r < ' ' {
				continue
			}
			toks = append(toks, Char(r))
		}
	}
	return toks
}

var namedGroups = map[string]Token{
	"esc":    Named(KeyEsc),
	"escape": Named(KeyEsc),
	"cr":     Named(KeyEnter),
	"enter":  Named(KeyEnter),
	"return": Named(KeyEnter),
	"bs":     Named(KeyBackspace),
	"del":    Named(KeyDelete),
	"tab":    Named(KeyTab),
	"left":   Named(KeyLeft),
	"right":  Named(KeyRight),
	"up":     Named(KeyUp),
	"down":   Named(KeyDown),
	"home":   Named(KeyHome),
	"end":    Named(KeyEnd),
	"pgup":   Named(KeyPgUp),
	"pgdown": Named(KeyPgDown),
	"space":  Char(' '),
	"lt":     Char('<'),
}

// ParseKeys parses a key script such as "ihello<esc>0dw" into tokens.
// Groups in angle brackets name special keys; <c-r> and <a-x> add modifiers.
// Unknown groups become Null so a script never fails to parse. A '<' without
// a closing '>' is taken literally.
func ParseKeys(script string) []Token {
	runes := []rune(script)
	toks := make([]Token, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '<' {
			toks = append(toks, Char(r))
			continue
		}
		end := -1
		for j := i + 1; j < len(runes); j++ {
			if runes[j] == '>' {
				end = j
				break
			}
		}
		if end < 0 {
			toks = append(toks, Char(r))
			continue
		}
		toks = append(toks, parseGroup(string(runes[i+1:end])))
		i = end
	}
	return toks
}

func parseGroup(group string) Token {
	lower := strings.ToLower(group)
	if tok, ok := namedGroups[lower]; ok {
		return tok
	}
	if len(lower) >= 3 && lower[1] == '-' {
		rest := []rune(group[2:])
		if len(rest) == 1 {
			switch lower[0] {
			case 'c':
				return Ctrl(unicode.ToLower(rest[0]))
			case 'a', 'm':
				return Token{Name: KeyChar, Char: rest[0], Alt: true}
			}
		}
	}
	return Null
}
