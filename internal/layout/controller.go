package layout

import "math"

// Handle identifies one of the eight resize affordances around a selected
// entity. The opposite edge(s) stay anchored while the named edge(s) follow
// the pointer.
type Handle uint8

const (
	HandleN Handle = iota
	HandleS
	HandleE
	HandleW
	HandleNE
	HandleNW
	HandleSE
	HandleSW
)

func (h Handle) String() string {
	switch h {
	case HandleN:
		return "n"
	case HandleS:
		return "s"
	case HandleE:
		return "e"
	case HandleW:
		return "w"
	case HandleNE:
		return "ne"
	case HandleNW:
		return "nw"
	case HandleSE:
		return "se"
	case HandleSW:
		return "sw"
	default:
		return "?"
	}
}

func (h Handle) north() bool { return h == HandleN || h == HandleNE || h == HandleNW }
func (h Handle) south() bool { return h == HandleS || h == HandleSE || h == HandleSW }
func (h Handle) east() bool  { return h == HandleE || h == HandleNE || h == HandleSE }
func (h Handle) west() bool  { return h == HandleW || h == HandleNW || h == HandleSW }

type gesture uint8

const (
	gestureMove gesture = iota
	gestureResize
)

// member is one entity carried by a session: the leader plus, for group
// moves, every other selected entity. start is the rest-state rect captured
// at gesture start.
type member struct {
	id    string
	start Rect
}

// session is the transient state of one drag or resize gesture. It exists
// only between pointer-down and pointer-up (or Cancel) and is never
// persisted. valid is the last fully validated snapped snapshot, one rect
// per member; it doubles as the preview and is seeded with the members'
// start rects so a release always commits a rest-valid layout.
type session struct {
	kind     gesture
	handle   Handle
	leaderID string

	startX float64 // pointer at gesture start, container px
	startY float64
	offX   float64 // pointer offset from the leader's top-left, px (move only)
	offY   float64

	members []member // leader first
	valid   map[string]Rect
}

// Controller is the direct-manipulation state machine. At most one session
// (single entity or group) or one selection box is active at a time; all
// methods are driven synchronously from the host's input callbacks, in
// arrival order.
type Controller struct {
	grid  Grid
	viewW float64 // container size, px
	viewH float64
	cellW float64
	cellH float64

	src Source
	cb  Callbacks

	selected map[string]bool

	session *session
	box     *selectionBox

	// BoxThresholdPx is the minimum rubber-band extent, per axis, below
	// which a release is treated as an accidental click.
	BoxThresholdPx float64
}

// DefaultBoxThresholdPx is the stock accidental-click threshold.
const DefaultBoxThresholdPx = 5

// NewController builds a controller over the host's entity set. The cell
// size stays zero (and every interaction frame a no-op) until SetViewport
// reports the first real container measurement.
func NewController(grid Grid, src Source, cb Callbacks) *Controller {
	return &Controller{
		grid:           grid,
		src:            src,
		cb:             cb,
		selected:       make(map[string]bool),
		BoxThresholdPx: DefaultBoxThresholdPx,
	}
}

// SetViewport records the pixel size of the layout container and recomputes
// the cell size. Zero or negative sizes leave the cell size at zero, which
// turns all interaction frames into no-ops.
func (c *Controller) SetViewport(wpx, hpx float64) {
	c.viewW = wpx
	c.viewH = hpx
	c.recalcCell()
}

// SetGrid changes the grid dimensions and recomputes the cell size.
func (c *Controller) SetGrid(g Grid) {
	c.grid = g
	c.recalcCell()
}

// Grid returns the current grid dimensions.
func (c *Controller) Grid() Grid { return c.grid }

// CellSize returns the current cell size in pixels. Both values are zero
// before the container has been measured.
func (c *Controller) CellSize() (w, h float64) { return c.cellW, c.cellH }

func (c *Controller) recalcCell() {
	c.cellW = 0
	c.cellH = 0
	if c.grid.Cols > 0 && c.viewW > 0 {
		c.cellW = c.viewW / float64(c.grid.Cols)
	}
	if c.grid.Rows > 0 && c.viewH > 0 {
		c.cellH = c.viewH / float64(c.grid.Rows)
	}
}

// SetSelection replaces the controller's copy of the current selection set.
// The host owns selection; the controller only reads it to decide whether a
// move gesture carries a group.
func (c *Controller) SetSelection(ids []string) {
	c.selected = make(map[string]bool, len(ids))
	for _, id := range ids {
		c.selected[id] = true
	}
}

// Active reports whether a drag/resize session is in progress.
func (c *Controller) Active() bool { return c.session != nil }

// SessionMembers returns the ids carried by the active session, leader
// first, or nil when idle.
func (c *Controller) SessionMembers() []string {
	if c.session == nil {
		return nil
	}
	ids := make([]string, len(c.session.members))
	for i, m := range c.session.members {
		ids[i] = m.id
	}
	return ids
}

// Preview returns the validated snapped rect for id during an active
// session. This is the rect the entity will occupy if the pointer is
// released now.
func (c *Controller) Preview(id string) (Rect, bool) {
	if c.session == nil {
		return Rect{}, false
	}
	r, ok := c.session.valid[id]
	return r, ok
}

// StartMove begins a move gesture on the entity under the pointer. If the
// entity is part of the current multi-selection the whole group rides along,
// with this entity as the leader. Returns false when another gesture is
// active, the container is unmeasured, or the entity is unknown.
func (c *Controller) StartMove(id string, ev PointerEvent) bool {
	if c.session != nil || c.box != nil || c.cellW <= 0 || c.cellH <= 0 {
		return false
	}
	e := c.src.ByID(id)
	if e == nil {
		return false
	}
	// Pointer-down on an entity outside the current selection collapses the
	// selection to that entity before the gesture begins.
	if !c.selected[id] {
		c.selected = map[string]bool{id: true}
		if c.cb.Select != nil {
			c.cb.Select(id)
		}
	}
	s := &session{
		kind:     gestureMove,
		leaderID: id,
		startX:   ev.X,
		startY:   ev.Y,
		offX:     ev.X - e.Rect.X*c.cellW,
		offY:     ev.Y - e.Rect.Y*c.cellH,
	}
	s.members = append(s.members, member{id: id, start: e.Rect})
	if c.selected[id] {
		for _, other := range c.src.Entities() {
			if other.ID != id && c.selected[other.ID] {
				s.members = append(s.members, member{id: other.ID, start: other.Rect})
			}
		}
	}
	s.valid = make(map[string]Rect, len(s.members))
	for _, m := range s.members {
		s.valid[m.id] = m.start
	}
	c.session = s
	return true
}

// StartResize begins a resize gesture via one of the eight handles. Resize
// is always single-entity; handles are only rendered on a selected entity,
// so group semantics never apply.
func (c *Controller) StartResize(id string, h Handle, ev PointerEvent) bool {
	if c.session != nil || c.box != nil || c.cellW <= 0 || c.cellH <= 0 {
		return false
	}
	e := c.src.ByID(id)
	if e == nil {
		return false
	}
	s := &session{
		kind:     gestureResize,
		handle:   h,
		leaderID: id,
		startX:   ev.X,
		startY:   ev.Y,
		members:  []member{{id: id, start: e.Rect}},
		valid:    map[string]Rect{id: e.Rect},
	}
	c.session = s
	return true
}

// PointerMove advances the active gesture or selection box by one frame.
// Events arriving while idle are ignored.
func (c *Controller) PointerMove(ev PointerEvent) {
	switch {
	case c.box != nil:
		c.box.x1 = ev.X
		c.box.y1 = ev.Y
	case c.session != nil:
		c.frame(ev)
	}
}

// PointerUp ends the active gesture, committing the last valid snapped
// snapshot as each member's resting state, or finishes the selection box.
func (c *Controller) PointerUp(ev PointerEvent) {
	if c.box != nil {
		c.finishBox(ev)
		return
	}
	s := c.session
	if s == nil {
		return
	}
	c.session = nil
	for _, m := range s.members {
		e := c.src.ByID(m.id)
		if e == nil {
			continue
		}
		r, ok := s.valid[m.id]
		if !ok {
			r = m.start
		}
		e.Rect = r
		c.update(e.ID, r)
	}
}

// Cancel aborts the active gesture: every member reverts to its rect at
// gesture start and nothing is committed. An active selection box is
// discarded without emitting. The host calls this for an explicit abort key
// and on teardown so no session state outlives its gesture.
func (c *Controller) Cancel() {
	if s := c.session; s != nil {
		c.session = nil
		for _, m := range s.members {
			if e := c.src.ByID(m.id); e != nil {
				e.Rect = m.start
				c.update(e.ID, m.start)
			}
		}
	}
	c.box = nil
}

// frame applies one pointer-move to the active session: the continuous track
// is written straight to the entities, then a snapped candidate is validated
// into the session's snapshot.
func (c *Controller) frame(ev PointerEvent) {
	if c.cellW <= 0 || c.cellH <= 0 {
		return // container not measured yet
	}
	s := c.session
	leader := c.src.ByID(s.leaderID)
	if leader == nil {
		// Deleted out from under the gesture: end without committing.
		c.session = nil
		return
	}
	if s.kind == gestureResize {
		c.resizeFrame(ev, leader)
		return
	}

	// The leader tracks (pointer - grab offset) converted to cells; every
	// follower rides the same delta.
	lx := (ev.X - s.offX) / c.cellW
	ly := (ev.Y - s.offY) / c.cellH
	dx := lx - s.members[0].start.X
	dy := ly - s.members[0].start.Y
	for _, m := range s.members {
		e := c.src.ByID(m.id)
		if e == nil {
			continue
		}
		e.Rect.X = m.start.X + dx
		e.Rect.Y = m.start.Y + dy
		c.update(e.ID, e.Rect)
	}

	if len(s.members) == 1 {
		c.snapSingleMove(dx, dy)
		return
	}
	c.snapGroupMove(dx, dy)
}

// snapSingleMove validates the snapped candidate for a lone entity: round to
// the nearest cell, clamp into the grid, reject on overlap.
func (c *Controller) snapSingleMove(dx, dy float64) {
	s := c.session
	cand := s.members[0].start
	cand.X = clamp(math.Round(cand.X+dx), 0, float64(c.grid.Cols)-cand.W)
	cand.Y = clamp(math.Round(cand.Y+dy), 0, float64(c.grid.Rows)-cand.H)
	if AnyOverlap(cand, c.src.Entities(), map[string]bool{s.leaderID: true}) {
		return // keep the previous snapshot; no flicker to invalid states
	}
	s.valid[s.leaderID] = cand
}

// resizeFrame handles one frame of a resize gesture. The dragged edges
// follow the pointer on the continuous track; the snapped candidate rounds
// the dragged edges to cell lines while the anchored edges keep their exact
// gesture-start coordinates, so the anchored side never drifts.
func (c *Controller) resizeFrame(ev PointerEvent, e *Entity) {
	s := c.session
	start := s.members[0].start
	dx := (ev.X - s.startX) / c.cellW
	dy := (ev.Y - s.startY) / c.cellH

	cont := start
	if s.handle.west() {
		cont.X = start.X + dx
		cont.W = start.W - dx
		if cont.W < 1 {
			cont.X = start.Right() - 1
			cont.W = 1
		}
	}
	if s.handle.east() {
		cont.W = start.W + dx
		if cont.W < 1 {
			cont.W = 1
		}
	}
	if s.handle.north() {
		cont.Y = start.Y + dy
		cont.H = start.H - dy
		if cont.H < 1 {
			cont.Y = start.Bottom() - 1
			cont.H = 1
		}
	}
	if s.handle.south() {
		cont.H = start.H + dy
		if cont.H < 1 {
			cont.H = 1
		}
	}
	e.Rect = cont
	c.update(e.ID, cont)

	cand := start
	if s.handle.west() {
		left := clamp(math.Round(cont.X), 0, start.Right()-1)
		cand.X = left
		cand.W = start.Right() - left
	}
	if s.handle.east() {
		right := clamp(math.Round(cont.Right()), start.X+1, float64(c.grid.Cols))
		cand.W = right - start.X
	}
	if s.handle.north() {
		top := clamp(math.Round(cont.Y), 0, start.Bottom()-1)
		cand.Y = top
		cand.H = start.Bottom() - top
	}
	if s.handle.south() {
		bottom := clamp(math.Round(cont.Bottom()), start.Y+1, float64(c.grid.Rows))
		cand.H = bottom - start.Y
	}
	if AnyOverlap(cand, c.src.Entities(), map[string]bool{e.ID: true}) {
		return
	}
	s.valid[e.ID] = cand
}

func (c *Controller) update(id string, r Rect) {
	if c.cb.UpdateEntity != nil {
		c.cb.UpdateEntity(id, r)
	}
}
