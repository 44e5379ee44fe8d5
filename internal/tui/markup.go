package tui

import (
	"strings"

	"golang.org/x/net/html"
)

// glyph is one rune of rendered markup and the innermost span class it
// sits in.
type glyph struct {
	r     rune
	class string
}

// parseMarkup splits highlight markup into lines of glyphs. Nested spans
// take the innermost class; unbalanced end tags are ignored.
func parseMarkup(markup string) [][]glyph {
	z := html.NewTokenizer(strings.NewReader(markup))
	lines := [][]glyph{nil}
	var stack []string

	top := func() string {
		if len(stack) == 0 {
			return ""
		}
		return stack[len(stack)-1]
	}

	for {
		switch z.Next() {
		case html.ErrorToken:
			return lines
		case html.TextToken:
			cls := top()
			for _, r := range string(z.Text()) {
				if r == '\n' {
					lines = append(lines, nil)
					continue
				}
				lines[len(lines)-1] = append(lines[len(lines)-1], glyph{r: r, class: cls})
			}
		case html.StartTagToken:
			cls := top()
			_, more := z.TagName()
			for more {
				var k, v []byte
				k, v, more = z.TagAttr()
				if string(k) == "class" {
					cls = string(v)
				}
			}
			stack = append(stack, cls)
		case html.EndTagToken:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
}

// RenderMarkup turns highlight markup into styled terminal text.
func RenderMarkup(markup string) string {
	lines := parseMarkup(markup)
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = renderRuns(line, func(g glyph) string { return g.class }, func(key string, text string) string {
			return classStyle(key).Render(text)
		})
	}
	return strings.Join(out, "\n")
}

// renderRuns groups consecutive glyphs sharing a style key and renders each
// run once.
func renderRuns(line []glyph, keyOf func(glyph) string, render func(key, text string) string) string {
	var b strings.Builder
	var run []rune
	var runKey string
	flush := func() {
		if len(run) > 0 {
			b.WriteString(render(runKey, string(run)))
			run = run[:0]
		}
	}
	for _, g := range line {
		k := keyOf(g)
		if k != runKey {
			flush()
			runKey = k
		}
		run = append(run, g.r)
	}
	flush()
	return b.String()
}
