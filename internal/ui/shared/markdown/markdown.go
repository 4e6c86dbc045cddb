// Package markdown renders message text for the transcript.
package markdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

// StylePlain skips markdown and only word-wraps.
const StylePlain = "plain"

// noMarginStyle is a JSON style that removes document margins.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Renderer wraps glamour with halfmoon-specific configuration.
type Renderer struct {
	renderer *glamour.TermRenderer // nil for StylePlain
	width    int
	style    string
}

// New creates a renderer with the given width and style.
// style is a glamour style name ("dark", "light", "notty") or StylePlain.
// Defaults to "dark" if empty. A named style is used instead of
// WithAutoStyle() because auto detection queries the terminal, and the
// response leaks into the input stream.
func New(width int, style string) (*Renderer, error) {
	if style == "" {
		style = "dark"
	}
	if style == StylePlain {
		return &Renderer{width: width, style: style}, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s markdown renderer: %w", style, err)
	}
	return &Renderer{renderer: r, width: width, style: style}, nil
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Style returns the style the renderer was built with.
func (r *Renderer) Style() string {
	return r.style
}

// Render transforms markdown to styled terminal output without surrounding
// blank lines.
func (r *Renderer) Render(text string) (string, error) {
	if r.renderer == nil {
		return wordwrap.String(text, r.width), nil
	}
	out, err := r.renderer.Render(text)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return strings.Trim(out, "\n"), nil
}
