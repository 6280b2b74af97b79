package layout

import "math"

// snapGroupMove validates the snapped candidate for a group move. The
// leader's delta is rounded to a whole-cell offset and applied to every
// member's gesture-start rect, keeping the group rigid. The set is accepted
// or rejected as a whole: pass (a) checks every candidate against the grid
// bounds, pass (b) checks every candidate for overlap against entities
// outside the group only — members are mutually excluded so the group may
// slide through its own original footprints. Any failure leaves the previous
// snapshot in place for every member; a partial move would desynchronize the
// layout from the user's intent.
func (c *Controller) snapGroupMove(dx, dy float64) {
	s := c.session
	idx := math.Round(dx)
	idy := math.Round(dy)

	group := make(map[string]bool, len(s.members))
	for _, m := range s.members {
		group[m.id] = true
	}

	cands := make(map[string]Rect, len(s.members))
	for _, m := range s.members {
		if c.src.ByID(m.id) == nil {
			continue // member deleted mid-gesture; it no longer constrains the set
		}
		cand := m.start
		cand.X += idx
		cand.Y += idy
		if !WithinBounds(cand, c.grid) {
			return
		}
		cands[m.id] = cand
	}
	if len(cands) == 0 {
		return
	}

	entities := c.src.Entities()
	for _, cand := range cands {
		if AnyOverlap(cand, entities, group) {
			return
		}
	}
	s.valid = cands
}
