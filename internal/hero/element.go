package hero

import (
	"slices"
	"strconv"

	"github.com/heyojules/folio/internal/model"
)

// Style classes applied to snippet elements.
const (
	ClassSnippet = "code-snippet"
	ClassTyping  = "typing"
	ClassVisible = "visible"
	ClassFading  = "fading"
)

// Element is a rendered snippet box owned by exactly one Instance.
type Element struct {
	ID      int
	Markup  string
	Dataset map[string]string

	classes []string
}

func newElement(id int, pos model.Position) *Element {
	return &Element{
		ID: id,
		Dataset: map[string]string{
			"x": strconv.FormatFloat(pos.X, 'f', -1, 64),
			"y": strconv.FormatFloat(pos.Y, 'f', -1, 64),
		},
		classes: []string{ClassSnippet},
	}
}

// AddClass adds class if absent.
func (e *Element) AddClass(class string) {
	if !e.HasClass(class) {
		e.classes = append(e.classes, class)
	}
}

// RemoveClass removes class if present.
func (e *Element) RemoveClass(class string) {
	e.classes = slices.DeleteFunc(e.classes, func(c string) bool { return c == class })
}

// HasClass reports whether class is set.
func (e *Element) HasClass(class string) bool {
	return slices.Contains(e.classes, class)
}

// Classes returns a copy of the class list in insertion order.
func (e *Element) Classes() []string {
	return slices.Clone(e.classes)
}

// Position reads the placement stored in the dataset. Missing or
// unparsable coordinates read as 0.
func (e *Element) Position() model.Position {
	return model.Position{X: datasetFloat(e.Dataset, "x"), Y: datasetFloat(e.Dataset, "y")}
}

func datasetFloat(ds map[string]string, key string) float64 {
	v, err := strconv.ParseFloat(ds[key], 64)
	if err != nil {
		return 0
	}
	return v
}

// Container is the surface snippet elements are attached to.
type Container interface {
	// Bounds returns the measured width and height in pixels.
	Bounds() (width, height float64)
	Attach(el *Element)
	Detach(el *Element)
}

// Stage is an in-memory Container. Attached elements are kept in
// attachment order.
type Stage struct {
	Width  float64
	Height float64

	elements []*Element
}

// NewStage creates an empty stage of the given pixel size.
func NewStage(width, height float64) *Stage {
	return &Stage{Width: width, Height: height}
}

func (s *Stage) Bounds() (float64, float64) { return s.Width, s.Height }

func (s *Stage) Attach(el *Element) { s.elements = append(s.elements, el) }

func (s *Stage) Detach(el *Element) {
	s.elements = slices.DeleteFunc(s.elements, func(e *Element) bool { return e == el })
}

// Elements returns the attached elements.
func (s *Stage) Elements() []*Element {
	return slices.Clone(s.elements)
}
