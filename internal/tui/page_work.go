package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/heyojules/folio/internal/site"
)

const scrollInClass = "scroll-in"

// WorkPage lists case studies that brighten as they scroll into the middle
// 80% of the viewport.
type WorkPage struct {
	chrome
	revealer *site.Revealer
	boxes    []site.Box
}

// NewWorkPage builds the work page.
func NewWorkPage(s *site.Site, opts Options) *WorkPage {
	return &WorkPage{
		chrome:   newChrome(PageWork, "/work", s, opts),
		revealer: site.NewRevealer(scrollInClass, site.RootMargin{Top: -10, Bottom: -10, Percent: true}, revealThreshold, opts.ReducedMotion),
	}
}

func (p *WorkPage) ID() string { return PageWork }

func (p *WorkPage) Init() tea.Cmd {
	p.refresh()
	return nil
}

// Enter resets the page to the top, or to a case study anchor.
func (p *WorkPage) Enter(params interface{}) tea.Cmd {
	p.hash = ""
	p.resetCursor()
	anchor, _ := params.(string)
	if anchor == "" {
		p.vp.GotoTop()
		p.refresh()
		return nil
	}
	cmd := p.jumpToAnchor(anchor, p.anchorTop)
	p.refresh()
	return cmd
}

func (p *WorkPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	var cmd tea.Cmd
	var nav *PageNav

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.resize(msg.Width, msg.Height)
	case scrollTickMsg:
		if msg.page == p.page {
			cmd = p.stepScroll()
		}
	case tea.KeyMsg:
		cmd, nav = p.handleKey(msg, p.anchorTop)
	case tea.MouseMsg:
		cmd = p.handleMouse(msg)
	default:
		return nil, nil
	}

	p.refresh()
	return cmd, nav
}

func (p *WorkPage) refresh() {
	p.vp.SetContent(p.body())
	p.revealer.Observe(p.boxes, p.vp.YOffset, p.vp.Height)
	p.vp.SetContent(p.body())
}

func (p *WorkPage) anchorTop(id string) (int, bool) {
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

func (p *WorkPage) body() string {
	var b strings.Builder
	heading := lipgloss.NewStyle().Foreground(theme.Foreground).Bold(true).PaddingLeft(2).Render("Selected work")
	b.WriteString("\n" + heading + "\n")
	line := 3
	p.boxes = p.boxes[:0]

	for _, cs := range p.site.Work.CaseStudies {
		in := p.revealer.Revealed(cs.ID)

		title := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).PaddingLeft(2)
		role := lipgloss.NewStyle().Foreground(theme.Muted).Italic(true).PaddingLeft(2)
		text := lipgloss.NewStyle().Foreground(theme.Foreground)
		if !in {
			title = title.Faint(true)
			role = role.Faint(true)
			text = text.Faint(true)
		}

		block := title.Render(cs.Title) + "\n" + role.Render(cs.Role) + "\n" + p.wrapBody(cs.Body, text) + "\n"
		h := lipgloss.Height(block)
		p.boxes = append(p.boxes, site.Box{ID: cs.ID, Top: line, Height: h})
		b.WriteString("\n")
		b.WriteString(block)
		line += h
	}
	return b.String()
}

func (p *WorkPage) View(width, height int) string {
	return p.render()
}
