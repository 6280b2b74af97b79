package layout

// FindFirstAvailable scans candidate top-left cells in row-major order
// (y outer, x inner) and returns the first cell where a w×h rectangle fits
// without overlapping any entity other than excludeID. When no free cell
// exists it returns the origin as a degraded fallback — the caller decides
// whether that means "grid full, reject the add". Pass excludeID "" to
// exclude nothing.
func FindFirstAvailable(w, h int, g Grid, entities []*Entity, excludeID string) (int, int) {
	exclude := excludeSet(excludeID)
	for y := 0; y+h <= g.Rows; y++ {
		for x := 0; x+w <= g.Cols; x++ {
			if !AnyOverlap(CellRect(x, y, w, h), entities, exclude) {
				return x, y
			}
		}
	}
	return 0, 0
}

// FindNearestAvailable returns the free cell for a w×h rectangle closest to
// (tx, ty) by Chebyshev distance. The target itself wins if it is free;
// otherwise square rings of offsets at distance d = 1, 2, … up to
// max(Cols, Rows) are visited, skipping cells that leave the grid. If no
// ring yields a free cell the search falls back to FindFirstAvailable.
func FindNearestAvailable(tx, ty, w, h int, g Grid, entities []*Entity, excludeID string) (int, int) {
	exclude := excludeSet(excludeID)
	free := func(x, y int) bool {
		r := CellRect(x, y, w, h)
		return WithinBounds(r, g) && !AnyOverlap(r, entities, exclude)
	}
	if free(tx, ty) {
		return tx, ty
	}
	maxD := g.Cols
	if g.Rows > maxD {
		maxD = g.Rows
	}
	for d := 1; d <= maxD; d++ {
		for dy := -d; dy <= d; dy++ {
			for dx := -d; dx <= d; dx++ {
				if chebyshev(dx, dy) != d {
					continue // interior cell, already visited at a smaller d
				}
				if free(tx+dx, ty+dy) {
					return tx + dx, ty + dy
				}
			}
		}
	}
	return FindFirstAvailable(w, h, g, entities, excludeID)
}

func chebyshev(dx, dy int) int {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

func excludeSet(id string) map[string]bool {
	if id == "" {
		return nil
	}
	return map[string]bool{id: true}
}
