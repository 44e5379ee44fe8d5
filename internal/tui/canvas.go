package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/heyojules/folio/internal/hero"
)

// Terminal cell size in CSS pixels, used to map snippet placement onto the
// grid.
const (
	cellWidth  = 8.0
	cellHeight = 16.0
)

const (
	classCursor  = "cursor"
	classTitle   = "title"
	classTagline = "tagline"
)

// Canvas is the hero background container. It keeps snippet elements in a
// hero.Stage sized from the terminal and draws them onto a cell grid.
type Canvas struct {
	*hero.Stage
	cols int
	rows int
}

// NewCanvas returns an empty canvas; call Resize before rendering.
func NewCanvas() *Canvas {
	return &Canvas{Stage: hero.NewStage(0, 0)}
}

// Resize sets the grid size and the pixel bounds reported to the pool.
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	c.Stage.Width = float64(c.cols) * cellWidth
	c.Stage.Height = float64(c.rows) * cellHeight
}

// Size returns the grid size in cells.
func (c *Canvas) Size() (cols, rows int) { return c.cols, c.rows }

type cell struct {
	glyph
	phase string
}

// Render draws attached snippets in attachment order, then centres the
// overlay lines (title first, tagline after) on top.
func (c *Canvas) Render(title, tagline string) string {
	grid := c.grid(title, tagline)
	if grid == nil {
		return ""
	}
	lines := make([]string, len(grid))
	for i, row := range grid {
		glyphs := make([]glyph, len(row))
		for j, cl := range row {
			glyphs[j] = glyph{r: cl.r, class: cl.class + "|" + cl.phase}
		}
		lines[i] = renderRuns(glyphs, func(g glyph) string { return g.class }, renderCell)
	}
	return strings.Join(lines, "\n")
}

func (c *Canvas) grid(title, tagline string) [][]cell {
	if c.cols == 0 || c.rows == 0 {
		return nil
	}
	grid := make([][]cell, c.rows)
	for i := range grid {
		grid[i] = make([]cell, c.cols)
		for j := range grid[i] {
			grid[i][j] = cell{glyph: glyph{r: ' '}}
		}
	}
	for _, el := range c.Elements() {
		c.drawElement(grid, el)
	}
	c.drawOverlay(grid, title, tagline)
	return grid
}

func renderCell(key, text string) string {
	class, phase, _ := strings.Cut(key, "|")
	s := classStyle(class)
	if phase == hero.ClassFading {
		s = s.Faint(true)
	}
	return s.Render(text)
}

func elementPhase(el *hero.Element) string {
	for _, p := range []string{hero.ClassFading, hero.ClassVisible, hero.ClassTyping} {
		if el.HasClass(p) {
			return p
		}
	}
	return ""
}

func (c *Canvas) drawElement(grid [][]cell, el *hero.Element) {
	pos := el.Position()
	col := int(pos.X / cellWidth)
	row := int(pos.Y / cellHeight)
	phase := elementPhase(el)

	lines := parseMarkup(el.Markup)
	if phase == hero.ClassTyping {
		last := len(lines) - 1
		lines[last] = append(lines[last], glyph{r: '▌', class: classCursor})
	}
	for i, line := range lines {
		y := row + i
		if y < 0 || y >= c.rows {
			continue
		}
		for j, g := range line {
			x := col + j
			if x < 0 || x >= c.cols {
				continue
			}
			grid[y][x] = cell{glyph: g, phase: phase}
		}
	}
}

func (c *Canvas) drawOverlay(grid [][]cell, title, tagline string) {
	var lines []glyphLine
	if title != "" {
		lines = append(lines, glyphLine{text: title, class: classTitle})
	}
	if tagline != "" {
		lines = append(lines, glyphLine{text: tagline, class: classTagline})
	}
	startRow := (c.rows - len(lines)) / 2
	for i, l := range lines {
		y := startRow + i
		if y < 0 || y >= c.rows {
			continue
		}
		runes := []rune(l.text)
		startCol := max((c.cols-lipgloss.Width(l.text))/2, 0)
		for j, r := range runes {
			x := startCol + j
			if x >= c.cols {
				break
			}
			grid[y][x] = cell{glyph: glyph{r: r, class: l.class}}
		}
	}
}

type glyphLine struct {
	text  string
	class string
}
