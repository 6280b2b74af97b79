package editor

import (
	"encoding/json"
	"math"

	"github.com/atotto/clipboard"
)

// layoutEntry is the clipboard JSON shape for one widget. Coordinates are
// integer cells — the rest-state contract the engine guarantees on commit.
type layoutEntry struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Label string `json:"label"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	W     int    `json:"w"`
	H     int    `json:"h"`
}

// exportJSON renders the widget set as indented JSON. Rects are rounded so
// an export taken mid-gesture still yields whole cells.
func exportJSON(ws []*Widget) ([]byte, error) {
	entries := make([]layoutEntry, len(ws))
	for i, w := range ws {
		r := w.Entity.Rect
		entries[i] = layoutEntry{
			ID:    w.Entity.ID,
			Kind:  w.Kind.String(),
			Label: w.Label,
			X:     int(math.Round(r.X)),
			Y:     int(math.Round(r.Y)),
			W:     int(math.Round(r.W)),
			H:     int(math.Round(r.H)),
		}
	}
	return json.MarshalIndent(entries, "", "  ")
}

// copyLayout places the current layout on the system clipboard.
func (e *Editor) copyLayout() {
	b, err := exportJSON(e.board.Widgets())
	if err != nil {
		e.log.Error("layout export failed", "err", err)
		return
	}
	if err := clipboard.WriteAll(string(b)); err != nil {
		e.log.Error("clipboard write failed", "err", err)
		return
	}
	e.dirty = false
	e.log.Info("layout copied to clipboard", "widgets", len(e.board.Widgets()))
}
