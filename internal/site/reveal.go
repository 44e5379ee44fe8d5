package site

// Box is a block of the document in line coordinates.
type Box struct {
	ID     string
	Top    int
	Height int
}

// RootMargin grows (positive) or shrinks (negative) the viewport before
// intersection is tested. With Percent set the values are percentages of the
// viewport height.
type RootMargin struct {
	Top     int
	Bottom  int
	Percent bool
}

func (m RootMargin) resolve(viewH int) (top, bottom int) {
	if m.Percent {
		return m.Top * viewH / 100, m.Bottom * viewH / 100
	}
	return m.Top, m.Bottom
}

// Revealer marks blocks as revealed once enough of them enters the viewport.
// Revealed blocks stay revealed.
type Revealer struct {
	Class     string
	Margin    RootMargin
	Threshold float64

	revealAll bool
	revealed  map[string]bool
}

// NewRevealer creates an observer tagging blocks with class. Under reduced
// motion every block counts as revealed from the start.
func NewRevealer(class string, margin RootMargin, threshold float64, reducedMotion bool) *Revealer {
	return &Revealer{
		Class:     class,
		Margin:    margin,
		Threshold: threshold,
		revealAll: reducedMotion,
		revealed:  make(map[string]bool),
	}
}

// Observe tests boxes against the viewport [scrollY, scrollY+viewH) and
// returns the IDs revealed by this call.
func (r *Revealer) Observe(boxes []Box, scrollY, viewH int) []string {
	if r.revealAll {
		return nil
	}
	mt, mb := r.Margin.resolve(viewH)
	rootTop := scrollY - mt
	rootBottom := scrollY + viewH + mb

	var fresh []string
	for _, b := range boxes {
		if r.revealed[b.ID] {
			continue
		}
		if intersects(b, rootTop, rootBottom, r.Threshold) {
			r.revealed[b.ID] = true
			fresh = append(fresh, b.ID)
		}
	}
	return fresh
}

// Revealed reports whether id carries the reveal class.
func (r *Revealer) Revealed(id string) bool {
	return r.revealAll || r.revealed[id]
}

func intersects(b Box, rootTop, rootBottom int, threshold float64) bool {
	if rootBottom <= rootTop {
		return false
	}
	if b.Height <= 0 {
		return b.Top >= rootTop && b.Top < rootBottom
	}
	overlap := min(b.Top+b.Height, rootBottom) - max(b.Top, rootTop)
	if overlap <= 0 {
		return false
	}
	return float64(overlap)/float64(b.Height) >= threshold
}
