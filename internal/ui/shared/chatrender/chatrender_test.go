package chatrender

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/Karvyz/halfmoon/internal/cachemanager"
	"github.com/Karvyz/halfmoon/internal/transcript"
	"github.com/Karvyz/halfmoon/internal/ui/shared/markdown"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

var created = time.Date(2026, 2, 3, 14, 5, 0, 0, time.UTC)

func userMessage(id, text string) transcript.Message {
	return transcript.Message{
		ID:        id,
		Role:      transcript.RoleUser,
		Text:      text,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func newRenderer() (*Renderer, *cachemanager.InMemoryCacheManager[string, string]) {
	cache := cachemanager.NewInMemoryCacheManager[string, string]("test", time.Minute, time.Minute)
	return NewRenderer(cache), cache
}

func TestHeader(t *testing.T) {
	msg := userMessage("m1", "hi")

	require.Equal(t, "  You 14:05", ansi.Strip(Header(msg, false)))
	require.Equal(t, "> You 14:05", ansi.Strip(Header(msg, true)))

	msg.Role = transcript.RoleNote
	msg.UpdatedAt = created.Add(time.Minute)
	require.Equal(t, "  Note 14:05 · edited", ansi.Strip(Header(msg, false)))
}

func TestRender_IndentsBody(t *testing.T) {
	r, _ := newRenderer()

	out := r.Render(context.Background(), userMessage("m1", "first line\n\nsecond line"), Options{Width: 40, Style: markdown.StylePlain})

	lines := strings.Split(ansi.Strip(out), "\n")
	require.Equal(t, []string{"  You 14:05", "  first line", "  ", "  second line"}, lines)
}

func TestRender_WrapsToWidthMinusIndent(t *testing.T) {
	r, _ := newRenderer()

	out := r.Render(context.Background(), userMessage("m1", "aaaa bbbb cccc"), Options{Width: 11, Style: markdown.StylePlain})

	lines := strings.Split(ansi.Strip(out), "\n")
	require.Equal(t, []string{"  You 14:05", "  aaaa bbbb", "  cccc"}, lines)
}

func TestBody_CachedPerRevision(t *testing.T) {
	r, cache := newRenderer()
	ctx := context.Background()
	msg := userMessage("m1", "hello")

	first, err := r.Body(ctx, msg, 20, markdown.StylePlain)
	require.NoError(t, err)
	require.Equal(t, "hello", first)
	require.Equal(t, 1, cache.Len())

	_, err = r.Body(ctx, msg, 20, markdown.StylePlain)
	require.NoError(t, err)
	require.Equal(t, 1, cache.Len(), "same revision is a hit")

	msg.Text = "hello again"
	msg.UpdatedAt = created.Add(time.Second)
	edited, err := r.Body(ctx, msg, 20, markdown.StylePlain)
	require.NoError(t, err)
	require.Equal(t, "hello again", edited)
	require.Equal(t, 2, cache.Len())

	_, err = r.Body(ctx, msg, 30, markdown.StylePlain)
	require.NoError(t, err)
	require.Equal(t, 3, cache.Len(), "width is part of the key")
}

func TestBodyKey(t *testing.T) {
	msg := userMessage("m1", "x")
	a := BodyKey(msg, 40, "dark")
	require.NotEqual(t, a, BodyKey(msg, 40, "light"))
	require.NotEqual(t, a, BodyKey(msg, 41, "dark"))

	msg.UpdatedAt = msg.UpdatedAt.Add(time.Nanosecond)
	require.NotEqual(t, a, BodyKey(msg, 40, "dark"))
}

func TestReset_DropsBodies(t *testing.T) {
	r, cache := newRenderer()
	ctx := context.Background()

	_, err := r.Body(ctx, userMessage("m1", "x"), 20, "notty")
	require.NoError(t, err)
	require.Equal(t, 1, cache.Len())
	require.Len(t, r.markdown, 1)

	require.NoError(t, r.Reset(ctx))
	require.Zero(t, cache.Len())
	require.Empty(t, r.markdown)
}

func TestRender_MarkdownStyle(t *testing.T) {
	r, _ := newRenderer()

	out := r.Render(context.Background(), userMessage("m1", "- one\n- two"), Options{Width: 40, Style: "notty"})

	stripped := ansi.Strip(out)
	require.Contains(t, stripped, "one")
	require.Contains(t, stripped, "two")
	require.True(t, strings.HasPrefix(stripped, "  You 14:05\n"))
}
