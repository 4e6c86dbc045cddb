// Package chatrender renders transcript messages for the composer.
package chatrender

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Karvyz/halfmoon/internal/cachemanager"
	"github.com/Karvyz/halfmoon/internal/log"
	"github.com/Karvyz/halfmoon/internal/transcript"
	"github.com/Karvyz/halfmoon/internal/ui/shared/markdown"
	"github.com/Karvyz/halfmoon/internal/ui/styles"
)

// BodyTTL is how long a rendered body stays cached without being shown.
const BodyTTL = 30 * time.Minute

// indent is the body's left margin, aligned under the role label.
const indent = "  "

// Options controls how a single message is drawn.
type Options struct {
	Width    int
	Style    string
	Selected bool
}

type bodyInput struct {
	text  string
	width int
	style string
}

// Renderer draws messages, caching rendered bodies per message revision,
// width and style.
type Renderer struct {
	bodies   *cachemanager.ReadThroughCache[string, string, bodyInput]
	markdown map[string]*markdown.Renderer
}

// NewRenderer creates a Renderer storing bodies in cache.
func NewRenderer(cache cachemanager.CacheManager[string, string]) *Renderer {
	r := &Renderer{markdown: make(map[string]*markdown.Renderer)}
	r.bodies = cachemanager.NewReadThroughCache(cache, r.renderBody, false)
	return r
}

// BodyKey identifies one rendering of a message. Editing a message changes
// UpdatedAt, so stale renderings are never returned.
func BodyKey(msg transcript.Message, width int, style string) string {
	return fmt.Sprintf("%s@%d/%d/%s", msg.ID, msg.UpdatedAt.UnixNano(), width, style)
}

// Render draws the header line and the indented body of msg.
func (r *Renderer) Render(ctx context.Context, msg transcript.Message, opts Options) string {
	var b strings.Builder
	b.WriteString(Header(msg, opts.Selected))

	bodyWidth := max(opts.Width-len(indent), 1)
	body, err := r.Body(ctx, msg, bodyWidth, opts.Style)
	if err != nil {
		log.ErrorErr(log.CatUI, "rendering message failed", err, "id", msg.ID)
		body = msg.Text
	}
	for line := range strings.SplitSeq(body, "\n") {
		b.WriteString("\n")
		b.WriteString(indent)
		b.WriteString(line)
	}
	return b.String()
}

// Body returns the rendered text of msg, from cache when possible.
func (r *Renderer) Body(ctx context.Context, msg transcript.Message, width int, style string) (string, error) {
	in := bodyInput{text: msg.Text, width: width, style: style}
	return r.bodies.GetWithRefresh(ctx, BodyKey(msg, width, style), in, BodyTTL)
}

// Reset drops every cached body and markdown renderer. Call it after the
// theme changes.
func (r *Renderer) Reset(ctx context.Context) error {
	clear(r.markdown)
	return r.bodies.Reset(ctx)
}

func (r *Renderer) renderBody(_ context.Context, in bodyInput) (string, error) {
	md, err := r.markdownFor(in.width, in.style)
	if err != nil {
		return "", err
	}
	return md.Render(in.text)
}

func (r *Renderer) markdownFor(width int, style string) (*markdown.Renderer, error) {
	key := fmt.Sprintf("%s/%d", style, width)
	if md, ok := r.markdown[key]; ok {
		return md, nil
	}
	md, err := markdown.New(width, style)
	if err != nil {
		return nil, err
	}
	r.markdown[key] = md
	return md, nil
}

// Header renders the selection indicator, role label, time and edit marker.
func Header(msg transcript.Message, selected bool) string {
	indicator := "  "
	if selected {
		indicator = styles.SelectionIndicatorStyle.Render(">") + " "
	}

	meta := msg.CreatedAt.Format("15:04")
	if msg.Edited() {
		meta += " · edited"
	}
	return indicator + RoleLabel(msg.Role) + " " + styles.TimestampStyle.Render(meta)
}

// RoleLabel returns the styled display name of role.
func RoleLabel(role transcript.Role) string {
	switch role {
	case transcript.RoleNote:
		return styles.RoleNoteStyle.Render("Note")
	default:
		return styles.RoleUserStyle.Render("You")
	}
}
