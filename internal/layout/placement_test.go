package layout

import "testing"

func TestFindFirstAvailable_RowMajorSequence(t *testing.T) {
	// Three 2×1 adds in sequence land at (0,0), (2,0), (4,0).
	g := Grid{Cols: 12, Rows: 8}
	var entities []*Entity
	want := [][2]int{{0, 0}, {2, 0}, {4, 0}}
	for i, w := range want {
		x, y := FindFirstAvailable(2, 1, g, entities, "")
		if x != w[0] || y != w[1] {
			t.Fatalf("add %d: got (%d,%d), want (%d,%d)", i, x, y, w[0], w[1])
		}
		entities = append(entities, &Entity{ID: string(rune('a' + i)), Rect: CellRect(x, y, 2, 1)})
	}
}

func TestFindFirstAvailable_WrapsToNextRow(t *testing.T) {
	g := Grid{Cols: 4, Rows: 4}
	entities := []*Entity{{ID: "a", Rect: CellRect(0, 0, 4, 1)}}
	x, y := FindFirstAvailable(3, 1, g, entities, "")
	if x != 0 || y != 1 {
		t.Fatalf("got (%d,%d), want (0,1)", x, y)
	}
}

func TestFindFirstAvailable_FullGridReturnsOrigin(t *testing.T) {
	g := Grid{Cols: 2, Rows: 2}
	entities := []*Entity{{ID: "a", Rect: CellRect(0, 0, 2, 2)}}
	x, y := FindFirstAvailable(1, 1, g, entities, "")
	if x != 0 || y != 0 {
		t.Fatalf("full grid should return the origin sentinel, got (%d,%d)", x, y)
	}
}

func TestFindFirstAvailable_OversizedReturnsOrigin(t *testing.T) {
	g := Grid{Cols: 4, Rows: 4}
	x, y := FindFirstAvailable(5, 1, g, nil, "")
	if x != 0 || y != 0 {
		t.Fatalf("oversized request should return the origin sentinel, got (%d,%d)", x, y)
	}
}

func TestFindFirstAvailable_ExcludeID(t *testing.T) {
	g := Grid{Cols: 4, Rows: 4}
	entities := []*Entity{{ID: "a", Rect: CellRect(0, 0, 2, 2)}}
	x, y := FindFirstAvailable(2, 2, g, entities, "a")
	if x != 0 || y != 0 {
		t.Fatalf("excluded entity should not block its own cells, got (%d,%d)", x, y)
	}
}

func TestFindNearestAvailable_TargetFreeReturnsTarget(t *testing.T) {
	g := Grid{Cols: 12, Rows: 8}
	entities := []*Entity{{ID: "a", Rect: CellRect(0, 0, 2, 1)}}
	x, y := FindNearestAvailable(5, 3, 2, 1, g, entities, "")
	if x != 5 || y != 3 {
		t.Fatalf("free target should come back unchanged, got (%d,%d)", x, y)
	}
}

func TestFindNearestAvailable_FindsAdjacentCell(t *testing.T) {
	g := Grid{Cols: 12, Rows: 8}
	entities := []*Entity{{ID: "a", Rect: CellRect(5, 3, 2, 1)}}
	x, y := FindNearestAvailable(5, 3, 1, 1, g, entities, "")
	if chebyshev(x-5, y-3) != 1 {
		t.Fatalf("nearest free cell should sit on the first ring, got (%d,%d)", x, y)
	}
	if AnyOverlap(CellRect(x, y, 1, 1), entities, nil) {
		t.Fatalf("returned cell (%d,%d) overlaps", x, y)
	}
}

func TestFindNearestAvailable_SkipsOutOfBoundsRingCells(t *testing.T) {
	// Target in the corner: most ring offsets leave the grid and must be
	// skipped, not returned.
	g := Grid{Cols: 4, Rows: 4}
	entities := []*Entity{{ID: "a", Rect: CellRect(0, 0, 1, 1)}}
	x, y := FindNearestAvailable(0, 0, 1, 1, g, entities, "")
	if !WithinBounds(CellRect(x, y, 1, 1), g) {
		t.Fatalf("result (%d,%d) is out of bounds", x, y)
	}
	if chebyshev(x, y) != 1 {
		t.Fatalf("nearest free cell from corner should be at distance 1, got (%d,%d)", x, y)
	}
}

func TestFindNearestAvailable_MatchesExhaustiveSearch(t *testing.T) {
	// On a small grid, the ring search never returns a cell further (by
	// Chebyshev distance) than the closest free cell an exhaustive scan
	// finds.
	g := Grid{Cols: 6, Rows: 5}
	entities := []*Entity{
		{ID: "a", Rect: CellRect(0, 0, 3, 2)},
		{ID: "b", Rect: CellRect(4, 1, 2, 2)},
		{ID: "c", Rect: CellRect(1, 3, 2, 2)},
	}
	w, h := 2, 1
	for ty := 0; ty < g.Rows; ty++ {
		for tx := 0; tx < g.Cols; tx++ {
			best := -1
			for y := 0; y+h <= g.Rows; y++ {
				for x := 0; x+w <= g.Cols; x++ {
					if AnyOverlap(CellRect(x, y, w, h), entities, nil) {
						continue
					}
					d := chebyshev(x-tx, y-ty)
					if best == -1 || d < best {
						best = d
					}
				}
			}
			if best == -1 {
				continue // provably full for this size
			}
			x, y := FindNearestAvailable(tx, ty, w, h, g, entities, "")
			if got := chebyshev(x-tx, y-ty); got > best {
				t.Fatalf("target (%d,%d): got distance %d, exhaustive best %d", tx, ty, got, best)
			}
			if AnyOverlap(CellRect(x, y, w, h), entities, nil) {
				t.Fatalf("target (%d,%d): result (%d,%d) overlaps", tx, ty, x, y)
			}
		}
	}
}

func TestFindNearestAvailable_FullGridFallsBackToOrigin(t *testing.T) {
	g := Grid{Cols: 3, Rows: 3}
	entities := []*Entity{{ID: "a", Rect: CellRect(0, 0, 3, 3)}}
	x, y := FindNearestAvailable(1, 1, 1, 1, g, entities, "")
	if x != 0 || y != 0 {
		t.Fatalf("full grid should fall through to the origin sentinel, got (%d,%d)", x, y)
	}
}
