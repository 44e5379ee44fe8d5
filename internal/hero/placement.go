package hero

import (
	"math"
	"math/rand/v2"

	"github.com/heyojules/folio/internal/model"
)

// Placement holds the solver parameters in pixels.
type Placement struct {
	Width       float64 // snippet footprint
	Height      float64
	MinDistance float64
	MaxAttempts int
}

// DefaultPlacement returns the stock footprint and spacing.
func DefaultPlacement() Placement {
	return Placement{
		Width:       model.DefaultSnippetWidth,
		Height:      model.DefaultSnippetHeight,
		MinDistance: model.DefaultMinDistance,
		MaxAttempts: model.DefaultMaxAttempts,
	}
}

// Solve picks a top-left position inside [0,maxX]x[0,maxY], where the
// maxima are the container size minus the footprint. It samples up to
// MaxAttempts candidates and returns the first one at least MinDistance away
// from every existing position. When every attempt fails it returns one more
// unfiltered sample. Solve never fails.
func Solve(rng *rand.Rand, width, height float64, existing []model.Position, p Placement) model.Position {
	maxX := max(width-p.Width, 0)
	maxY := max(height-p.Height, 0)

	for range p.MaxAttempts {
		c := model.Position{X: rng.Float64() * maxX, Y: rng.Float64() * maxY}
		if farEnough(c, existing, p.MinDistance) {
			return c
		}
	}
	return model.Position{X: rng.Float64() * maxX, Y: rng.Float64() * maxY}
}

func farEnough(c model.Position, existing []model.Position, minDistance float64) bool {
	for _, e := range existing {
		if distance(c, e) < minDistance {
			return false
		}
	}
	return true
}

func distance(a, b model.Position) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
