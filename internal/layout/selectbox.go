package layout

import "math"

// selectionBox tracks a rubber-band drag in container pixels. (x0, y0) is
// the anchor from pointer-down; (x1, y1) follows the pointer and may lie on
// any side of the anchor.
type selectionBox struct {
	x0, y0 float64
	x1, y1 float64
}

// StartSelectionBox begins a rubber-band selection anchored at the pointer.
// Only valid while no gesture is active — the host calls this for a
// pointer-down on empty grid background.
func (c *Controller) StartSelectionBox(ev PointerEvent) {
	if c.session != nil || c.box != nil {
		return
	}
	c.box = &selectionBox{x0: ev.X, y0: ev.Y, x1: ev.X, y1: ev.Y}
}

// SelectionBox returns the active rubber-band rect in container pixels,
// normalized so w and h are non-negative. ok is false while no box is
// active.
func (c *Controller) SelectionBox() (x, y, w, h float64, ok bool) {
	b := c.box
	if b == nil {
		return 0, 0, 0, 0, false
	}
	return math.Min(b.x0, b.x1), math.Min(b.y0, b.y1),
		math.Abs(b.x1 - b.x0), math.Abs(b.y1 - b.y0), true
}

// finishBox resolves the rubber band on pointer-up. A box under the pixel
// threshold on both axes is an accidental click and emits nothing. Otherwise
// the box is converted to cell space and every entity it intersects (same
// open-interval test as entity-vs-entity overlap) is reported through
// SelectMultiple; an empty result clears the selection on the host side.
func (c *Controller) finishBox(ev PointerEvent) {
	b := c.box
	c.box = nil
	b.x1 = ev.X
	b.y1 = ev.Y

	w := math.Abs(b.x1 - b.x0)
	h := math.Abs(b.y1 - b.y0)
	if w < c.BoxThresholdPx && h < c.BoxThresholdPx {
		return
	}
	if c.cellW <= 0 || c.cellH <= 0 {
		return
	}

	box := Rect{
		X: math.Min(b.x0, b.x1) / c.cellW,
		Y: math.Min(b.y0, b.y1) / c.cellH,
		W: w / c.cellW,
		H: h / c.cellH,
	}
	var ids []string
	for _, e := range c.src.Entities() {
		if Overlaps(box, e.Rect) {
			ids = append(ids, e.ID)
		}
	}
	if c.cb.SelectMultiple != nil {
		c.cb.SelectMultiple(ids)
	}
}
