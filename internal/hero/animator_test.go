package hero

import (
	"strings"
	"testing"
	"time"

	"github.com/heyojules/folio/internal/model"
)

type recordingHighlighter struct {
	calls []string
}

func (r *recordingHighlighter) highlight(_ model.Language, text string) string {
	r.calls = append(r.calls, text)
	return "<" + text + ">"
}

func newTestInstance(code string) (*Instance, *Stage) {
	stage := NewStage(1000, 800)
	el := newElement(1, model.Position{})
	el.AddClass(ClassTyping)
	stage.Attach(el)
	return &Instance{ID: 1, Snippet: model.Snippet{Language: model.Python, Code: code}, Element: el}, stage
}

func TestAnimator_TypesThenHoldsThenFades(t *testing.T) {
	t.Parallel()

	rec := &recordingHighlighter{}
	in, stage := newTestInstance("abc")
	a := &Animator{
		TypingSpeed:     240 * time.Millisecond,
		VisibleDuration: 4 * time.Second,
		FadeDuration:    2 * time.Second,
		Highlight:       rec.highlight,
		Container:       stage,
	}

	var delays []time.Duration
	for {
		d, done := a.Advance(in)
		if done {
			break
		}
		delays = append(delays, d)
		if len(delays) > 10 {
			t.Fatal("animator never finished")
		}
	}

	want := []time.Duration{240 * time.Millisecond, 240 * time.Millisecond, 240 * time.Millisecond, 4 * time.Second, 2 * time.Second}
	if len(delays) != len(want) {
		t.Fatalf("delays = %v, want %v", delays, want)
	}
	for i := range want {
		if delays[i] != want[i] {
			t.Fatalf("delay[%d] = %v, want %v", i, delays[i], want[i])
		}
	}
	if got := strings.Join(rec.calls, ","); got != "a,ab,abc,abc" {
		t.Fatalf("highlight calls = %q, want a,ab,abc,abc", got)
	}
	if in.Phase != PhaseRemoved {
		t.Fatalf("phase = %v, want removed", in.Phase)
	}
	if n := len(stage.Elements()); n != 0 {
		t.Fatalf("stage still holds %d elements", n)
	}
}

func TestAnimator_PhaseClasses(t *testing.T) {
	t.Parallel()

	rec := &recordingHighlighter{}
	in, stage := newTestInstance("x")
	a := &Animator{TypingSpeed: time.Millisecond, Highlight: rec.highlight, Container: stage}

	a.Advance(in) // types "x"
	if !in.Element.HasClass(ClassTyping) || in.Phase != PhaseTyping {
		t.Fatalf("after typing: classes %v phase %v", in.Element.Classes(), in.Phase)
	}
	a.Advance(in) // settles
	if in.Element.HasClass(ClassTyping) || !in.Element.HasClass(ClassVisible) || in.Phase != PhaseVisible {
		t.Fatalf("after settle: classes %v phase %v", in.Element.Classes(), in.Phase)
	}
	a.Advance(in) // fades
	if in.Element.HasClass(ClassVisible) || !in.Element.HasClass(ClassFading) || in.Phase != PhaseFading {
		t.Fatalf("after fade: classes %v phase %v", in.Element.Classes(), in.Phase)
	}
	if !in.Element.HasClass(ClassSnippet) {
		t.Fatal("snippet class lost")
	}
}

func TestAnimator_ReducedMotionSkipsTyping(t *testing.T) {
	t.Parallel()

	rec := &recordingHighlighter{}
	in, stage := newTestInstance("hello")
	a := &Animator{
		TypingSpeed:     240 * time.Millisecond,
		VisibleDuration: 4 * time.Second,
		FadeDuration:    2 * time.Second,
		ReducedMotion:   true,
		Highlight:       rec.highlight,
		Container:       stage,
	}

	d, done := a.Advance(in)
	if done || d != 4*time.Second {
		t.Fatalf("first advance = %v, %v; want 4s hold", d, done)
	}
	if len(rec.calls) != 1 || rec.calls[0] != "hello" {
		t.Fatalf("highlight calls = %q, want only the full text", rec.calls)
	}
	if in.Element.Markup != "<hello>" {
		t.Fatalf("markup = %q", in.Element.Markup)
	}
	if got := a.Lifetime(in.Snippet); got != 6*time.Second {
		t.Fatalf("Lifetime = %v, want 6s", got)
	}
}

func TestPhaseString(t *testing.T) {
	t.Parallel()

	for p, want := range map[Phase]string{PhaseTyping: "typing", PhaseVisible: "visible", PhaseFading: "fading", PhaseRemoved: "removed"} {
		if got := p.String(); got != want {
			t.Fatalf("%d.String() = %q, want %q", int(p), got, want)
		}
	}
}
