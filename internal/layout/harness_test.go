package layout

import "testing"

// bench wires a Controller to an in-memory entity set the way the editor
// does, minus the ebiten host, and records everything the controller emits.
// Built from functional options so each test states only what it cares
// about.
type bench struct {
	set  *benchSet
	ctrl *Controller

	updates    []Rect   // every UpdateEntity payload, in order
	selections [][]string // every SelectMultiple payload
	singles    []string   // every Select payload
}

type benchSet struct {
	entities []*Entity
}

func (s *benchSet) Entities() []*Entity { return s.entities }

func (s *benchSet) ByID(id string) *Entity {
	for _, e := range s.entities {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func (s *benchSet) remove(id string) {
	kept := s.entities[:0]
	for _, e := range s.entities {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.entities = kept
}

type benchOption func(*benchConfig)

type benchConfig struct {
	grid      Grid
	viewW     float64
	viewH     float64
	entities  []*Entity
	selection []string
}

// withGrid sets the grid dimensions. Default is 12×8.
func withGrid(cols, rows int) benchOption {
	return func(c *benchConfig) { c.grid = Grid{Cols: cols, Rows: rows} }
}

// withViewport sets the container pixel size. Default gives 10×10px cells.
func withViewport(w, h float64) benchOption {
	return func(c *benchConfig) {
		c.viewW = w
		c.viewH = h
	}
}

// withoutViewport leaves the container unmeasured (cell size zero).
func withoutViewport() benchOption {
	return func(c *benchConfig) {
		c.viewW = 0
		c.viewH = 0
	}
}

// withEntity places an entity at rest.
func withEntity(id string, x, y, w, h int) benchOption {
	return func(c *benchConfig) {
		c.entities = append(c.entities, &Entity{ID: id, Rect: CellRect(x, y, w, h)})
	}
}

// withSelection marks ids as the current multi-selection.
func withSelection(ids ...string) benchOption {
	return func(c *benchConfig) { c.selection = ids }
}

func newBench(t *testing.T, opts ...benchOption) *bench {
	t.Helper()
	cfg := benchConfig{grid: Grid{Cols: 12, Rows: 8}}
	cfg.viewW = -1 // sentinel: derive 10px cells from the grid
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.viewW == -1 {
		cfg.viewW = float64(cfg.grid.Cols) * 10
		cfg.viewH = float64(cfg.grid.Rows) * 10
	}

	b := &bench{set: &benchSet{entities: cfg.entities}}
	b.ctrl = NewController(cfg.grid, b.set, Callbacks{
		UpdateEntity:   func(id string, r Rect) { b.updates = append(b.updates, r) },
		Select:         func(id string) { b.singles = append(b.singles, id) },
		SelectMultiple: func(ids []string) { b.selections = append(b.selections, ids) },
	})
	b.ctrl.SetViewport(cfg.viewW, cfg.viewH)
	b.ctrl.SetSelection(cfg.selection)
	return b
}

// rect fetches the live rect for id, failing the test if the entity is gone.
func (b *bench) rect(t *testing.T, id string) Rect {
	t.Helper()
	e := b.set.ByID(id)
	if e == nil {
		t.Fatalf("entity %q not found", id)
	}
	return e.Rect
}

// drag runs a full move gesture: down on the entity at fromPx, one move
// frame per waypoint, then release at the last waypoint.
func (b *bench) drag(t *testing.T, id string, fromX, fromY float64, waypoints ...[2]float64) {
	t.Helper()
	if !b.ctrl.StartMove(id, PointerEvent{Phase: PointerDown, X: fromX, Y: fromY}) {
		t.Fatalf("StartMove(%q) refused", id)
	}
	last := [2]float64{fromX, fromY}
	for _, wp := range waypoints {
		b.ctrl.PointerMove(PointerEvent{Phase: PointerMove, X: wp[0], Y: wp[1]})
		last = wp
	}
	b.ctrl.PointerUp(PointerEvent{Phase: PointerUp, X: last[0], Y: last[1]})
}

func sameRect(a, b Rect) bool {
	return a.X == b.X && a.Y == b.Y && a.W == b.W && a.H == b.H
}
