package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/heyojules/folio/internal/hero"
)

// heroTickMsg delivers a fired hero timer back to the pool.
type heroTickMsg struct{ ev hero.Event }

func (heroTickMsg) broadcast() {}

// tickScheduler turns pool timers into tea.Tick commands. Commands queued
// while the pool handles an event are flushed as one batch.
type tickScheduler struct {
	cmds []tea.Cmd
}

func (s *tickScheduler) After(d time.Duration, ev hero.Event) {
	s.cmds = append(s.cmds, tea.Tick(d, func(time.Time) tea.Msg { return heroTickMsg{ev: ev} }))
}

func (s *tickScheduler) flush() tea.Cmd {
	if len(s.cmds) == 0 {
		return nil
	}
	cmd := tea.Batch(s.cmds...)
	s.cmds = nil
	return cmd
}

// HeroEffect binds a snippet pool to a canvas on the Bubble Tea loop.
type HeroEffect struct {
	canvas *Canvas
	pool   *hero.Pool
	sched  *tickScheduler
}

// NewHeroEffect builds the effect. Under cfg.ReducedMotion it never spawns.
func NewHeroEffect(cfg hero.Config, opts ...hero.Option) *HeroEffect {
	canvas := NewCanvas()
	sched := &tickScheduler{}
	return &HeroEffect{
		canvas: canvas,
		pool:   hero.NewPool(cfg, canvas, sched, opts...),
		sched:  sched,
	}
}

// Start begins spawning. Later calls are no-ops.
func (h *HeroEffect) Start() tea.Cmd {
	h.pool.Start()
	return h.sched.flush()
}

// Update handles hero timer messages and ignores everything else.
func (h *HeroEffect) Update(msg tea.Msg) tea.Cmd {
	m, ok := msg.(heroTickMsg)
	if !ok {
		return nil
	}
	h.pool.Handle(m.ev)
	return h.sched.flush()
}

// Resize sets the canvas size in cells. Instances already placed keep
// their position.
func (h *HeroEffect) Resize(cols, rows int) { h.canvas.Resize(cols, rows) }

// View renders the background with the title block centred on top.
func (h *HeroEffect) View(title, tagline string) string {
	return h.canvas.Render(title, tagline)
}

// Pool exposes the underlying pool.
func (h *HeroEffect) Pool() *hero.Pool { return h.pool }
