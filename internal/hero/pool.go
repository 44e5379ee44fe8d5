// Package hero implements the hero section's typing code-snippet background:
// a bounded pool of animated snippet elements with spaced placement and a
// typed, held, faded and removed lifecycle.
//
// All state is mutated from Pool.Handle, which the caller runs on a single
// task. Timers go through a Scheduler, so the same pool runs on Bubble Tea
// ticks or on a VirtualClock in tests.
package hero

import (
	"log"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/heyojules/folio/internal/highlight"
	"github.com/heyojules/folio/internal/model"
)

// Config controls pool size, timings and placement.
type Config struct {
	MaxConcurrent   int
	TypingSpeed     time.Duration
	VisibleDuration time.Duration
	FadeDuration    time.Duration

	InitialSpawns   int
	InitialInterval time.Duration
	SpawnDelayMin   time.Duration
	SpawnDelayMax   time.Duration

	Placement Placement

	// ReducedMotion disables the effect entirely. It is read once when the
	// pool is built.
	ReducedMotion bool
}

// DefaultConfig returns the stock timings.
func DefaultConfig() Config {
	return Config{
		MaxConcurrent:   model.DefaultMaxConcurrent,
		TypingSpeed:     model.DefaultTypingSpeed,
		VisibleDuration: model.DefaultVisibleDuration,
		FadeDuration:    model.DefaultFadeDuration,
		InitialSpawns:   model.DefaultInitialSpawns,
		InitialInterval: model.DefaultInitialInterval,
		SpawnDelayMin:   model.DefaultSpawnDelayMin,
		SpawnDelayMax:   model.DefaultSpawnDelayMax,
		Placement:       DefaultPlacement(),
	}
}

// Option customizes a Pool.
type Option func(*Pool)

// WithRand sets the random source used for selection, placement and delays.
func WithRand(rng *rand.Rand) Option {
	return func(p *Pool) { p.rng = rng }
}

// WithHighlighter replaces the markup renderer.
func WithHighlighter(fn HighlightFunc) Option {
	return func(p *Pool) { p.animator.Highlight = fn }
}

// WithCatalog replaces the snippet buckets.
func WithCatalog(c map[model.Language][]model.Snippet) Option {
	return func(p *Pool) { p.setCatalog(c) }
}

// Pool owns the active snippet instances.
type Pool struct {
	cfg       Config
	container Container
	sched     Scheduler
	rng       *rand.Rand
	animator  Animator

	languages []model.Language
	catalog   map[model.Language][]model.Snippet

	active  []*Instance
	nextID  int
	started bool
}

// NewPool builds a pool spawning into container. A nil container yields a
// pool that never starts.
func NewPool(cfg Config, container Container, sched Scheduler, opts ...Option) *Pool {
	p := &Pool{
		cfg:       cfg,
		container: container,
		sched:     sched,
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		animator: Animator{
			TypingSpeed:     cfg.TypingSpeed,
			VisibleDuration: cfg.VisibleDuration,
			FadeDuration:    cfg.FadeDuration,
			ReducedMotion:   cfg.ReducedMotion,
			Highlight:       highlight.Highlight,
			Container:       container,
		},
	}
	p.setCatalog(model.Catalog())
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Pool) setCatalog(c map[model.Language][]model.Snippet) {
	p.catalog = c
	p.languages = p.languages[:0]
	for _, lang := range model.Languages {
		if len(c[lang]) > 0 {
			p.languages = append(p.languages, lang)
		}
	}
}

// Start queues the initial spawns and the recurring spawn loop. It does
// nothing under reduced motion, without a container, or when called twice.
func (p *Pool) Start() {
	if p.started || !p.enabled() {
		return
	}
	p.started = true

	for i := range min(p.cfg.InitialSpawns, p.cfg.MaxConcurrent) {
		p.sched.After(time.Duration(i)*p.cfg.InitialInterval, Event{Kind: EventSpawn})
	}
	p.scheduleNext()
}

// Handle dispatches a fired timer.
func (p *Pool) Handle(ev Event) {
	switch ev.Kind {
	case EventSpawn:
		p.TrySpawn()
	case EventSpawnLoop:
		if !p.Saturated() {
			p.TrySpawn()
		}
		p.scheduleNext()
	case EventStep:
		if in := p.find(ev.Instance); in != nil {
			p.step(in)
		}
	default:
		log.Printf("hero: ignoring unknown event %v", ev.Kind)
	}
}

// TrySpawn adds one instance unless the pool is saturated. It reports
// whether an instance was created.
func (p *Pool) TrySpawn() bool {
	if p.Saturated() || !p.enabled() {
		return false
	}

	snippet := p.pick()
	width, height := p.container.Bounds()
	pos := Solve(p.rng, width, height, p.positions(), p.cfg.Placement)

	p.nextID++
	el := newElement(p.nextID, pos)
	el.AddClass(ClassTyping)
	p.container.Attach(el)

	in := &Instance{ID: p.nextID, Snippet: snippet, Position: pos, Element: el}
	p.active = append(p.active, in)
	p.step(in)
	return true
}

func (p *Pool) enabled() bool {
	return !p.cfg.ReducedMotion && p.container != nil && p.sched != nil && len(p.languages) > 0
}

func (p *Pool) step(in *Instance) {
	delay, done := p.animator.Advance(in)
	if done {
		p.remove(in)
		return
	}
	p.sched.After(delay, Event{Kind: EventStep, Instance: in.ID})
}

func (p *Pool) remove(in *Instance) {
	p.active = slices.DeleteFunc(p.active, func(a *Instance) bool { return a == in })
}

func (p *Pool) find(id int) *Instance {
	for _, in := range p.active {
		if in.ID == id {
			return in
		}
	}
	return nil
}

// pick chooses a language uniformly, then a variant uniformly within it.
func (p *Pool) pick() model.Snippet {
	lang := p.languages[p.rng.IntN(len(p.languages))]
	variants := p.catalog[lang]
	return variants[p.rng.IntN(len(variants))]
}

// positions reads the placements of active elements from their dataset.
func (p *Pool) positions() []model.Position {
	out := make([]model.Position, 0, len(p.active))
	for _, in := range p.active {
		out = append(out, in.Element.Position())
	}
	return out
}

func (p *Pool) scheduleNext() {
	span := p.cfg.SpawnDelayMax - p.cfg.SpawnDelayMin
	delay := p.cfg.SpawnDelayMin
	if span > 0 {
		delay += time.Duration(p.rng.Float64() * float64(span))
	}
	p.sched.After(delay, Event{Kind: EventSpawnLoop})
}

// Saturated reports whether the pool holds MaxConcurrent instances.
func (p *Pool) Saturated() bool { return len(p.active) >= p.cfg.MaxConcurrent }

// Len returns the number of active instances.
func (p *Pool) Len() int { return len(p.active) }

// Instances returns the active instances in spawn order.
func (p *Pool) Instances() []*Instance { return slices.Clone(p.active) }

// Animator exposes the lifecycle timings in use.
func (p *Pool) Animator() *Animator { return &p.animator }
