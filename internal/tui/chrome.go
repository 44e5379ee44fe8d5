package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/heyojules/folio/internal/site"
)

// Page IDs and the site paths they serve.
const (
	PageHome = "home"
	PageWork = "work"
)

var pagePaths = map[string]string{
	"/":     PageHome,
	"/work": PageWork,
}

const (
	headerHeight = 2
	scrollFrame  = 16 * time.Millisecond
)

// Options carries the chrome settings shared by all pages.
type Options struct {
	// ReducedMotion turns smooth scrolling into jumps and reveals every
	// block up front. Read once at startup.
	ReducedMotion bool
	// ScrollThreshold is the offset, in lines, past which the header
	// switches to its scrolled state.
	ScrollThreshold int
	// HeaderOffset is the number of lines kept above an anchor target.
	HeaderOffset int
}

// scrollTickMsg advances a page's smooth scroll by one frame.
type scrollTickMsg struct{ page string }

func (scrollTickMsg) broadcast() {}

// chrome is the header, scrolling body and help footer every page shares.
type chrome struct {
	page   string
	path   string
	hash   string
	site   *site.Site
	opts   Options
	keys   KeyMap
	help   help.Model
	vp     viewport.Model
	cursor int

	scrollTarget int
	scrolling    bool

	width  int
	height int
}

func newChrome(pageID, path string, s *site.Site, opts Options) chrome {
	c := chrome{
		page: pageID,
		path: path,
		site: s,
		opts: opts,
		keys: DefaultKeyMap(),
		help: help.New(),
		vp:   viewport.New(0, 0),
	}
	c.resetCursor()
	return c
}

func (c *chrome) resize(width, height int) {
	c.width, c.height = width, height
	c.vp.Width = width
	c.help.Width = width
	c.vp.Height = max(height-headerHeight-lipgloss.Height(c.renderFooter()), 1)
}

// activeLinks reports which nav links point at this page and hash.
func (c *chrome) activeLinks() []bool {
	return site.ActiveLinks(c.path, c.hash, c.site.Hrefs())
}

// resetCursor focuses the last active nav link, so an anchor link wins
// over the page link it belongs to.
func (c *chrome) resetCursor() {
	c.cursor = 0
	for i, on := range c.activeLinks() {
		if on {
			c.cursor = i
		}
	}
}

func (c *chrome) scrolled() bool {
	return site.HeaderScrolled(c.vp.YOffset, c.opts.ScrollThreshold)
}

// handleMouse forwards wheel events to the viewport.
func (c *chrome) handleMouse(msg tea.MouseMsg) tea.Cmd {
	c.stopScroll()
	var cmd tea.Cmd
	c.vp, cmd = c.vp.Update(msg)
	return cmd
}

// handleKey processes keys common to every page. anchorTop resolves an
// anchor on the current page to its first content line.
func (c *chrome) handleKey(msg tea.KeyMsg, anchorTop func(id string) (int, bool)) (tea.Cmd, *PageNav) {
	switch {
	case key.Matches(msg, c.keys.ForceQuit), key.Matches(msg, c.keys.Quit):
		return tea.Quit, nil
	case key.Matches(msg, c.keys.Help):
		c.help.ShowAll = !c.help.ShowAll
		c.resize(c.width, c.height)
	case key.Matches(msg, c.keys.Up):
		c.stopScroll()
		c.vp.ScrollUp(1)
	case key.Matches(msg, c.keys.Down):
		c.stopScroll()
		c.vp.ScrollDown(1)
	case key.Matches(msg, c.keys.PageUp):
		c.stopScroll()
		c.vp.PageUp()
	case key.Matches(msg, c.keys.PageDown):
		c.stopScroll()
		c.vp.PageDown()
	case key.Matches(msg, c.keys.Top):
		c.stopScroll()
		c.vp.GotoTop()
	case key.Matches(msg, c.keys.Bottom):
		c.stopScroll()
		c.vp.GotoBottom()
	case key.Matches(msg, c.keys.NextLink):
		if n := len(c.site.Nav); n > 0 {
			c.cursor = (c.cursor + 1) % n
		}
	case key.Matches(msg, c.keys.PrevLink):
		if n := len(c.site.Nav); n > 0 {
			c.cursor = (c.cursor - 1 + n) % n
		}
	case key.Matches(msg, c.keys.Follow):
		return c.follow(c.cursor, anchorTop)
	case key.Matches(msg, c.keys.Jump):
		idx := int(msg.String()[0] - '1')
		if idx >= 0 && idx < len(c.site.Nav) {
			c.cursor = idx
			return c.follow(idx, anchorTop)
		}
	}
	return nil, nil
}

// follow activates nav link idx: anchors on this page scroll, anything else
// switches page.
func (c *chrome) follow(idx int, anchorTop func(id string) (int, bool)) (tea.Cmd, *PageNav) {
	if idx < 0 || idx >= len(c.site.Nav) {
		return nil, nil
	}
	path, anchor := site.SplitHref(c.site.Nav[idx].Href)
	target := c.path
	if path != "" {
		target = strings.TrimSuffix(path, "/")
		if target == "" {
			target = "/"
		}
	}

	if target == c.path {
		if anchor == "" {
			c.hash = ""
			return c.scrollTo(0), nil
		}
		return c.jumpToAnchor(anchor, anchorTop), nil
	}

	pageID, ok := pagePaths[target]
	if !ok {
		return nil, nil
	}
	return nil, &PageNav{PageID: pageID, Params: anchor}
}

func (c *chrome) jumpToAnchor(anchor string, anchorTop func(id string) (int, bool)) tea.Cmd {
	top, ok := anchorTop(anchor)
	if !ok {
		return nil
	}
	c.hash = "#" + anchor
	return c.scrollTo(site.AnchorOffset(top, c.opts.HeaderOffset))
}

// scrollTo eases toward offset one frame at a time, or jumps under reduced
// motion.
func (c *chrome) scrollTo(offset int) tea.Cmd {
	if c.opts.ReducedMotion {
		c.vp.SetYOffset(offset)
		c.scrolling = false
		return nil
	}
	c.scrollTarget = offset
	c.scrolling = true
	return c.scrollTick()
}

func (c *chrome) scrollTick() tea.Cmd {
	page := c.page
	return tea.Tick(scrollFrame, func(time.Time) tea.Msg { return scrollTickMsg{page: page} })
}

func (c *chrome) stopScroll() { c.scrolling = false }

// stepScroll moves a quarter of the remaining distance, at least one line.
func (c *chrome) stepScroll() tea.Cmd {
	if !c.scrolling {
		return nil
	}
	cur := c.vp.YOffset
	diff := c.scrollTarget - cur
	if diff == 0 {
		c.scrolling = false
		return nil
	}
	step := diff / 4
	if step == 0 {
		step = diff / max(abs(diff), 1)
	}
	c.vp.SetYOffset(cur + step)
	if c.vp.YOffset == cur {
		c.scrolling = false
		return nil
	}
	return c.scrollTick()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (c *chrome) renderHeader() string {
	active := c.activeLinks()

	title := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(c.site.Title)

	links := make([]string, len(c.site.Nav))
	for i, l := range c.site.Nav {
		s := lipgloss.NewStyle().Foreground(theme.Muted).Padding(0, 1)
		if active[i] {
			s = s.Foreground(theme.Foreground).Underline(true)
		}
		if i == c.cursor {
			s = s.Bold(true).Foreground(theme.Accent)
		}
		links[i] = s.Render(fmt.Sprintf("%d %s", i+1, l.Label))
	}
	nav := lipgloss.JoinHorizontal(lipgloss.Top, links...)

	gap := max(c.width-lipgloss.Width(title)-lipgloss.Width(nav), 1)
	bar := title + strings.Repeat(" ", gap) + nav

	rule := strings.Repeat(" ", max(c.width, 0))
	if c.scrolled() {
		rule = lipgloss.NewStyle().Foreground(theme.Muted).Render(strings.Repeat("─", max(c.width, 0)))
	}
	return bar + "\n" + rule
}

func (c *chrome) renderFooter() string {
	return c.help.View(c.keys)
}

func (c *chrome) render() string {
	return lipgloss.JoinVertical(lipgloss.Left, c.renderHeader(), c.vp.View(), c.renderFooter())
}

// wrapBody wraps prose to the viewport width.
func (c *chrome) wrapBody(text string, style lipgloss.Style) string {
	w := max(c.width-4, 20)
	return style.Width(w).PaddingLeft(2).Render(strings.TrimSpace(text))
}
