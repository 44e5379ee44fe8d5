package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestActiveLinks(t *testing.T) {
	t.Parallel()

	hrefs := []string{"/", "/work", "/#about", "/#contact", ""}
	cases := []struct {
		name string
		path string
		hash string
		want []bool
	}{
		{"home", "/", "", []bool{true, false, false, false, false}},
		{"home with anchor", "/", "#contact", []bool{true, false, false, true, false}},
		{"work trailing slash", "/work/", "", []bool{false, true, false, false, false}},
		{"anchor ignored off home", "/work", "#about", []bool{false, true, false, false, false}},
		{"double slashes", "//work//", "", []bool{false, true, false, false, false}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ActiveLinks(tc.path, tc.hash, hrefs)
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("ActiveLinks(%q, %q)[%d] (%q) = %v, want %v", tc.path, tc.hash, i, hrefs[i], got[i], tc.want[i])
				}
			}
		})
	}
}

func TestActiveLinks_RelativeHref(t *testing.T) {
	t.Parallel()

	got := ActiveLinks("/work", "", []string{"work", "../work", "/work/"})
	want := []bool{true, true, true}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("relative href %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestHeaderScrolledAndAnchorOffset(t *testing.T) {
	t.Parallel()

	if HeaderScrolled(1, 1) {
		t.Fatal("header scrolled at threshold")
	}
	if !HeaderScrolled(2, 1) {
		t.Fatal("header not scrolled past threshold")
	}
	if got := AnchorOffset(40, 2); got != 38 {
		t.Fatalf("AnchorOffset = %d, want 38", got)
	}
	if got := AnchorOffset(1, 2); got != 0 {
		t.Fatalf("AnchorOffset near top = %d, want 0", got)
	}
}

func TestRevealer_StickyWithThreshold(t *testing.T) {
	t.Parallel()

	r := NewRevealer("revealed", RootMargin{Bottom: -3}, 0.1, false)
	boxes := []Box{{ID: "a", Top: 5, Height: 10}, {ID: "b", Top: 30, Height: 10}}

	// Viewport 0..20, shrunk to 0..17: a fully visible, b below.
	if got := r.Observe(boxes, 0, 20); len(got) != 1 || got[0] != "a" {
		t.Fatalf("first observe = %v, want [a]", got)
	}
	// Viewport 12..32 shrunk to 12..29: b not reached.
	if got := r.Observe(boxes, 12, 20); len(got) != 0 {
		t.Fatalf("second observe = %v, want none", got)
	}
	// Viewport 14..34 shrunk to 14..31: one line of b (10%).
	if got := r.Observe(boxes, 14, 20); len(got) != 1 || got[0] != "b" {
		t.Fatalf("third observe = %v, want [b]", got)
	}
	if !r.Revealed("a") {
		t.Fatal("a lost its revealed state after scrolling away")
	}
}

func TestRevealer_PercentMargin(t *testing.T) {
	t.Parallel()

	r := NewRevealer("scroll-in", RootMargin{Top: -10, Bottom: -10, Percent: true}, 0.1, false)
	// Viewport 0..50 shrinks to 5..45.
	boxes := []Box{{ID: "top", Top: 0, Height: 5}, {ID: "mid", Top: 20, Height: 5}}
	got := r.Observe(boxes, 0, 50)
	if len(got) != 1 || got[0] != "mid" {
		t.Fatalf("observe = %v, want [mid]", got)
	}
}

func TestRevealer_ReducedMotionRevealsAll(t *testing.T) {
	t.Parallel()

	r := NewRevealer("revealed", RootMargin{}, 0.1, true)
	if !r.Revealed("anything") {
		t.Fatal("reduced motion should reveal every block")
	}
	if got := r.Observe([]Box{{ID: "x", Top: 100, Height: 1}}, 0, 10); got != nil {
		t.Fatalf("observe under reduced motion = %v, want nil", got)
	}
}

func TestDefaultContent(t *testing.T) {
	t.Parallel()

	s, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	if len(s.Nav) == 0 || len(s.Home.Sections) == 0 || len(s.Work.CaseStudies) == 0 {
		t.Fatalf("default content incomplete: %+v", s)
	}
	if got := s.Hrefs(); got[0] != "/" {
		t.Fatalf("first href = %q, want /", got[0])
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "site.yml")
	data := "title: ''\nnav:\n  - label: Home\nhome:\n  sections:\n    - id: a\n    - id: a\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"title is required", "nav[0]", "duplicate id"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q missing %q", err, want)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
