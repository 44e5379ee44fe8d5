package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/heyojules/folio/internal/hero"
	"github.com/heyojules/folio/internal/site"
)

const (
	minHeroRows = 12
	revealClass = "revealed"
	// revealMarginBottom shrinks the viewport bottom by ~50px.
	revealMarginBottom = -3
	revealThreshold    = 0.1
)

// HomePage shows the hero with its code background and the home sections.
type HomePage struct {
	chrome
	hero     *HeroEffect
	revealer *site.Revealer

	boxes []site.Box
}

// NewHomePage builds the home page.
func NewHomePage(s *site.Site, heroCfg hero.Config, opts Options, heroOpts ...hero.Option) *HomePage {
	heroCfg.ReducedMotion = heroCfg.ReducedMotion || opts.ReducedMotion
	return &HomePage{
		chrome:   newChrome(PageHome, "/", s, opts),
		hero:     NewHeroEffect(heroCfg, heroOpts...),
		revealer: site.NewRevealer(revealClass, site.RootMargin{Bottom: revealMarginBottom}, revealThreshold, opts.ReducedMotion),
	}
}

func (p *HomePage) ID() string { return PageHome }

func (p *HomePage) Init() tea.Cmd {
	return p.hero.Start()
}

// Enter scrolls to the anchor passed by another page's nav link.
func (p *HomePage) Enter(params interface{}) tea.Cmd {
	anchor, _ := params.(string)
	if anchor == "" {
		p.hash = ""
		p.vp.GotoTop()
		p.resetCursor()
		p.refresh()
		return nil
	}
	cmd := p.jumpToAnchor(anchor, p.anchorTop)
	p.resetCursor()
	p.refresh()
	return cmd
}

func (p *HomePage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	var cmd tea.Cmd
	var nav *PageNav

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.resize(msg.Width, msg.Height)
		p.hero.Resize(msg.Width, max(p.vp.Height, minHeroRows))
	case heroTickMsg:
		cmd = p.hero.Update(msg)
	case scrollTickMsg:
		if msg.page == p.page {
			cmd = p.stepScroll()
		}
	case tea.KeyMsg:
		cmd, nav = p.handleKey(msg, p.anchorTop)
	case tea.MouseMsg:
		cmd = p.handleMouse(msg)
	}

	p.refresh()
	return cmd, nav
}

// refresh rebuilds the body and runs the reveal observer at the current
// scroll position.
func (p *HomePage) refresh() {
	p.vp.SetContent(p.body())
	p.revealer.Observe(p.boxes, p.vp.YOffset, p.vp.Height)
	// Reveals change only visibility, never layout.
	p.vp.SetContent(p.body())
}

func (p *HomePage) anchorTop(id string) (int, bool) {
	if p.boxes == nil {
		p.body()
	}
	for _, b := range p.boxes {
		if b.ID == id {
			return b.Top, true
		}
	}
	return 0, false
}

// body renders the hero and the sections, recording section boxes.
func (p *HomePage) body() string {
	var b strings.Builder
	heroView := p.hero.View(p.site.Title, p.site.Tagline)
	b.WriteString(heroView)

	line := lipgloss.Height(heroView)
	p.boxes = p.boxes[:0]

	titleStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).PaddingLeft(2)
	bodyStyle := lipgloss.NewStyle().Foreground(theme.Foreground)

	for _, sec := range p.site.Home.Sections {
		block := "\n" + titleStyle.Render(sec.Title) + "\n" + p.wrapBody(sec.Body, bodyStyle) + "\n"
		h := lipgloss.Height(block)
		p.boxes = append(p.boxes, site.Box{ID: sec.ID, Top: line, Height: h})

		if sec.Reveal && !p.revealer.Revealed(sec.ID) {
			block = strings.Repeat("\n", h-1)
		}
		b.WriteString("\n")
		b.WriteString(block)
		line += h
	}
	return b.String()
}

func (p *HomePage) View(width, height int) string {
	return p.render()
}

// Hero exposes the background effect.
func (p *HomePage) Hero() *HeroEffect { return p.hero }
