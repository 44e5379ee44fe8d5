package tui

import (
	"strings"
	"testing"

	"github.com/heyojules/folio/internal/hero"
)

func gridRow(row []cell) string {
	var b strings.Builder
	for _, c := range row {
		b.WriteRune(c.r)
	}
	return b.String()
}

func TestCanvas_ResizeReportsPixelBounds(t *testing.T) {
	t.Parallel()

	c := NewCanvas()
	c.Resize(100, 30)
	w, h := c.Bounds()
	if w != 800 || h != 480 {
		t.Fatalf("bounds = %vx%v, want 800x480", w, h)
	}
	if cols, rows := c.Size(); cols != 100 || rows != 30 {
		t.Fatalf("size = %dx%d, want 100x30", cols, rows)
	}
}

func TestCanvas_DrawsElementAtItsCell(t *testing.T) {
	t.Parallel()

	c := NewCanvas()
	c.Resize(20, 6)
	el := &hero.Element{ID: 1, Markup: "ab\ncd", Dataset: map[string]string{"x": "16", "y": "32"}}
	el.AddClass(hero.ClassSnippet)
	el.AddClass(hero.ClassVisible)
	c.Attach(el)

	g := c.grid("", "")
	if got := gridRow(g[2]); got != "  ab                " {
		t.Fatalf("row 2 = %q", got)
	}
	if got := gridRow(g[3]); got != "  cd                " {
		t.Fatalf("row 3 = %q", got)
	}
	if got := g[2][2].phase; got != hero.ClassVisible {
		t.Fatalf("phase = %q, want visible", got)
	}
}

func TestCanvas_TypingShowsCursorAndClipsToGrid(t *testing.T) {
	t.Parallel()

	c := NewCanvas()
	c.Resize(5, 2)
	el := &hero.Element{ID: 1, Markup: "abcd", Dataset: map[string]string{"x": "8", "y": "16"}}
	el.AddClass(hero.ClassTyping)
	c.Attach(el)

	g := c.grid("", "")
	if got := gridRow(g[1]); got != " abcd" {
		t.Fatalf("row 1 = %q, want clipped text without cursor", got)
	}

	el.Markup = "ab"
	g = c.grid("", "")
	if got := gridRow(g[1]); got != " ab▌ " {
		t.Fatalf("row 1 = %q, want cursor after text", got)
	}
	if got := g[1][3].class; got != classCursor {
		t.Fatalf("cursor class = %q", got)
	}
}

func TestCanvas_OverlayCentred(t *testing.T) {
	t.Parallel()

	c := NewCanvas()
	c.Resize(10, 4)
	g := c.grid("Hi", "abcd")

	if got := gridRow(g[1]); got != "    Hi    " {
		t.Fatalf("title row = %q", got)
	}
	if got := gridRow(g[2]); got != "   abcd   " {
		t.Fatalf("tagline row = %q", got)
	}
	if got := g[1][4].class; got != classTitle {
		t.Fatalf("title class = %q", got)
	}
}

func TestCanvas_EmptyRendersNothing(t *testing.T) {
	t.Parallel()

	if got := NewCanvas().Render("t", "x"); got != "" {
		t.Fatalf("render = %q, want empty", got)
	}
}
