package editor

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Inspector panel geometry, anchored to the window's top-right corner.
const (
	inspW     = 210
	inspPad   = 8
	inspLineH = 14
)

// drawInspector renders a small panel describing the current selection: one
// widget in detail, or a count for a multi-selection.
func (e *Editor) drawInspector(screen *ebiten.Image) {
	if len(e.selection) == 0 {
		return
	}

	var lines []string
	if len(e.selection) == 1 {
		w := e.board.WidgetByID(e.selection[0])
		if w == nil {
			return
		}
		r := w.Entity.Rect
		lines = []string{
			w.Label,
			"kind: " + w.Kind.String(),
			"id:   " + shortID(w.Entity.ID),
			fmt.Sprintf("cell: (%.1f, %.1f)", r.X, r.Y),
			fmt.Sprintf("size: %.1f x %.1f", r.W, r.H),
		}
		if p, ok := e.ctrl.Preview(w.Entity.ID); ok {
			lines = append(lines, fmt.Sprintf("snap: (%.0f, %.0f)", p.X, p.Y))
		}
	} else {
		lines = []string{fmt.Sprintf("%d widgets selected", len(e.selection))}
	}

	x := float32(e.width - inspW - inspPad)
	h := float32(len(lines)*inspLineH + 2*inspPad)
	vector.FillRect(screen, x, inspPad, inspW, h, colPalette, false)
	vector.StrokeRect(screen, x, inspPad, inspW, h, 1, colSelection, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, int(x)+inspPad, 2*inspPad+i*inspLineH-4)
	}
}
