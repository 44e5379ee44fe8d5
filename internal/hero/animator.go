package hero

import (
	"fmt"
	"time"

	"github.com/heyojules/folio/internal/model"
)

// Phase is the display stage of an instance.
type Phase int

const (
	PhaseTyping Phase = iota
	PhaseVisible
	PhaseFading
	PhaseRemoved
)

func (p Phase) String() string {
	switch p {
	case PhaseTyping:
		return "typing"
	case PhaseVisible:
		return "visible"
	case PhaseFading:
		return "fading"
	case PhaseRemoved:
		return "removed"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Instance is one displayed, animating copy of a snippet.
type Instance struct {
	ID       int
	Snippet  model.Snippet
	Position model.Position
	Element  *Element
	Phase    Phase

	typed int
}

// Typed returns how many characters have been revealed.
func (in *Instance) Typed() int { return in.typed }

// HighlightFunc renders text of a language into span markup.
type HighlightFunc func(lang model.Language, text string) string

// Animator drives instances through Typing, Visible, Fading and Removed.
type Animator struct {
	TypingSpeed     time.Duration
	VisibleDuration time.Duration
	FadeDuration    time.Duration
	ReducedMotion   bool

	Highlight HighlightFunc
	Container Container
}

// Advance performs the work of the instance's current phase and returns how
// long to wait before the next call. done is true once the element has been
// detached and the instance reached PhaseRemoved.
func (a *Animator) Advance(in *Instance) (delay time.Duration, done bool) {
	switch in.Phase {
	case PhaseTyping:
		if a.typing() && in.typed < in.Snippet.Len() {
			in.typed++
			in.Element.Markup = a.Highlight(in.Snippet.Language, in.Snippet.Prefix(in.typed))
			return a.TypingSpeed, false
		}
		in.typed = in.Snippet.Len()
		in.Element.Markup = a.Highlight(in.Snippet.Language, in.Snippet.Code)
		in.Element.RemoveClass(ClassTyping)
		in.Element.AddClass(ClassVisible)
		in.Phase = PhaseVisible
		return a.VisibleDuration, false

	case PhaseVisible:
		in.Element.RemoveClass(ClassVisible)
		in.Element.AddClass(ClassFading)
		in.Phase = PhaseFading
		return a.FadeDuration, false

	case PhaseFading:
		if a.Container != nil {
			a.Container.Detach(in.Element)
		}
		in.Phase = PhaseRemoved
		return 0, true
	}
	return 0, true
}

func (a *Animator) typing() bool {
	return !a.ReducedMotion && a.TypingSpeed > 0
}

// Lifetime returns the time from spawn to removal for a snippet.
func (a *Animator) Lifetime(s model.Snippet) time.Duration {
	var typing time.Duration
	if a.typing() {
		typing = time.Duration(s.Len()) * a.TypingSpeed
	}
	return typing + a.VisibleDuration + a.FadeDuration
}
