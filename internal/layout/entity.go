package layout

// Entity is one placed control as the engine sees it: an opaque id, a kind
// tag for the host's benefit, and a rectangle in cell units. Rect is the
// continuous track — the engine writes fractional values into it on every
// gesture frame so dependent rendering follows the pointer exactly, and
// writes the final snapped integers back on commit.
type Entity struct {
	ID   string
	Kind string
	Rect Rect
}

// Source is the engine's view of the entity set. The host owns the set; the
// engine only ever mutates geometry of entities the host hands it, never
// membership. ByID returning nil mid-gesture means the host deleted the
// entity; the engine ends the session without committing.
type Source interface {
	Entities() []*Entity
	ByID(id string) *Entity
}

// Callbacks are the engine's out-ports. All are optional; a nil func is
// skipped. UpdateEntity fires on every continuous frame and once more with
// the committed integer rect on release. Select carries a single id, or the
// empty string to clear. SelectMultiple replaces the whole selection set; an
// empty slice clears it.
type Callbacks struct {
	UpdateEntity   func(id string, r Rect)
	Select         func(id string)
	SelectMultiple func(ids []string)
}
