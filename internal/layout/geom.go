package layout

// Grid is the cell coordinate space widgets are arranged on.
type Grid struct {
	Cols int
	Rows int
}

// Rect is an axis-aligned rectangle in cell units. At rest all four fields
// hold exact integers; while a gesture is feeding pointer deltas in they
// track the pointer and may be fractional.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Right returns the exclusive right edge (X + W).
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the exclusive bottom edge (Y + H).
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CellRect builds a Rect from integer cell coordinates.
func CellRect(x, y, w, h int) Rect {
	return Rect{X: float64(x), Y: float64(y), W: float64(w), H: float64(h)}
}

// Overlaps reports whether a and b intersect. The comparisons are strict, so
// rectangles that only touch along an edge do not overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.Right() && a.Right() > b.X &&
		a.Y < b.Bottom() && a.Bottom() > b.Y
}

// WithinBounds reports whether r lies entirely inside the grid.
func WithinBounds(r Rect, g Grid) bool {
	return r.X >= 0 && r.Y >= 0 &&
		r.Right() <= float64(g.Cols) && r.Bottom() <= float64(g.Rows)
}

// AnyOverlap reports whether candidate overlaps any entity whose id is not in
// exclude. A nil exclude map excludes nothing.
func AnyOverlap(candidate Rect, entities []*Entity, exclude map[string]bool) bool {
	for _, e := range entities {
		if exclude[e.ID] {
			continue
		}
		if Overlaps(candidate, e.Rect) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
