package editor

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"panelforge/internal/layout"
)

var (
	colBackground = color.RGBA{R: 24, G: 26, B: 28, A: 255}
	colPalette    = color.RGBA{R: 32, G: 34, B: 38, A: 255}
	colGridLine   = color.RGBA{R: 44, G: 47, B: 51, A: 255}
	colWidgetEdge = color.RGBA{R: 110, G: 116, B: 122, A: 255}
	colSelection  = color.RGBA{R: 255, G: 176, B: 46, A: 255}
	colPreview    = color.RGBA{R: 80, G: 200, B: 120, A: 255}
	colRubberFill = color.RGBA{R: 70, G: 130, B: 200, A: 48}
	colRubberEdge = color.RGBA{R: 70, G: 130, B: 200, A: 200}
	colText       = color.RGBA{R: 222, G: 224, B: 226, A: 255}
	colTextDim    = color.RGBA{R: 150, G: 153, B: 156, A: 255}
)

// paletteEntryHeight is the pixel height of one palette row.
const paletteEntryHeight = 44

func (e *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)
	e.drawGrid(screen)
	e.drawWidgets(screen)
	e.drawPreviews(screen)
	e.drawRubberBand(screen)
	e.drawPalette(screen)
	e.drawInspector(screen)
	e.drawHUD(screen)
}

func (e *Editor) drawGrid(screen *ebiten.Image) {
	cw, ch := e.ctrl.CellSize()
	if cw <= 0 || ch <= 0 {
		return
	}
	g := e.ctrl.Grid()
	ox := float32(paletteWidth)
	w := float32(float64(g.Cols) * cw)
	h := float32(float64(g.Rows) * ch)
	for c := 0; c <= g.Cols; c++ {
		x := ox + float32(float64(c)*cw)
		vector.StrokeLine(screen, x, 0, x, h, 1, colGridLine, false)
	}
	for r := 0; r <= g.Rows; r++ {
		y := float32(float64(r) * ch)
		vector.StrokeLine(screen, ox, y, ox+w, y, 1, colGridLine, false)
	}
}

func (e *Editor) drawWidgets(screen *ebiten.Image) {
	cw, ch := e.ctrl.CellSize()
	if cw <= 0 || ch <= 0 {
		return
	}
	for _, w := range e.board.Widgets() {
		r := w.Entity.Rect
		px := float32(paletteWidth + r.X*cw)
		py := float32(r.Y * ch)
		pw := float32(r.W * cw)
		ph := float32(r.H * ch)

		vector.FillRect(screen, px+1, py+1, pw-2, ph-2, kindFill(w.Kind), false)
		vector.StrokeRect(screen, px+1, py+1, pw-2, ph-2, 1, colWidgetEdge, false)
		e.drawWidgetBody(screen, w, px, py, pw, ph)

		if e.isSelected(w.Entity.ID) {
			vector.StrokeRect(screen, px, py, pw, ph, 2, colSelection, false)
		}
	}
	// Handles only appear on a lone selected widget; that is the sole path
	// into a resize gesture.
	if len(e.selection) == 1 {
		if ent := e.board.ByID(e.selection[0]); ent != nil {
			e.drawHandles(screen, ent.Rect, cw, ch)
		}
	}
}

// drawWidgetBody adds the kind-specific decoration inside the body rect.
func (e *Editor) drawWidgetBody(screen *ebiten.Image, w *Widget, px, py, pw, ph float32) {
	switch w.Kind {
	case KindSlider:
		ty := py + ph/2
		vector.StrokeLine(screen, px+8, ty, px+pw-8, ty, 2, colTextDim, false)
		kx := px + 8 + (pw-16)*float32(w.Value)
		vector.FillRect(screen, kx-3, ty-7, 6, 14, colText, false)
	case KindToggle:
		onCol := colTextDim
		if w.Value > 0 {
			onCol = colPreview
		}
		vector.StrokeRect(screen, px+pw/2-8, py+ph/2-8, 16, 16, 2, onCol, false)
	case KindTextBox:
		vector.StrokeLine(screen, px+6, py+ph-7, px+pw-6, py+ph-7, 1, colTextDim, false)
	}
	text.Draw(screen, w.Label, e.face, int(px)+6, int(py)+15, colText)
}

func (e *Editor) drawHandles(screen *ebiten.Image, r layout.Rect, cw, ch float64) {
	handles := []layout.Handle{
		layout.HandleN, layout.HandleS, layout.HandleE, layout.HandleW,
		layout.HandleNE, layout.HandleNW, layout.HandleSE, layout.HandleSW,
	}
	for _, h := range handles {
		hx, hy := handleCenter(r, h, cw, ch)
		x := float32(paletteWidth + hx)
		y := float32(hy)
		vector.FillRect(screen, x-3, y-3, 6, 6, colSelection, false)
	}
}

// drawPreviews outlines the validated snapped rect for every member of the
// active session — where the widgets will land on release.
func (e *Editor) drawPreviews(screen *ebiten.Image) {
	if !e.ctrl.Active() {
		return
	}
	cw, ch := e.ctrl.CellSize()
	for _, id := range e.ctrl.SessionMembers() {
		p, ok := e.ctrl.Preview(id)
		if !ok {
			continue
		}
		vector.StrokeRect(screen,
			float32(paletteWidth+p.X*cw), float32(p.Y*ch),
			float32(p.W*cw), float32(p.H*ch), 2, colPreview, false)
	}
}

func (e *Editor) drawRubberBand(screen *ebiten.Image) {
	x, y, w, h, ok := e.ctrl.SelectionBox()
	if !ok {
		return
	}
	vector.FillRect(screen, float32(paletteWidth+x), float32(y), float32(w), float32(h), colRubberFill, false)
	vector.StrokeRect(screen, float32(paletteWidth+x), float32(y), float32(w), float32(h), 1, colRubberEdge, false)
}

func (e *Editor) drawPalette(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, paletteWidth, float32(e.height), colPalette, false)
	vector.StrokeLine(screen, paletteWidth, 0, paletteWidth, float32(e.height), 1, colGridLine, false)
	text.Draw(screen, "Widgets", e.face, 10, 20, colTextDim)
	for k := KindSlider; k < kindCount; k++ {
		y := paletteEntryY(k)
		vector.FillRect(screen, 8, float32(y), paletteWidth-16, paletteEntryHeight-8, kindFill(k), false)
		vector.StrokeRect(screen, 8, float32(y), paletteWidth-16, paletteEntryHeight-8, 1, colWidgetEdge, false)
		text.Draw(screen, fmt.Sprintf("%s  [%d]", kindTitle(k), k+1), e.face, 16, y+23, colText)
	}
}

// paletteEntryY returns the top pixel of a palette row.
func paletteEntryY(k Kind) int {
	return 32 + int(k)*paletteEntryHeight
}

// paletteEntryAt maps a palette-strip click to a widget kind.
func (e *Editor) paletteEntryAt(sy float64) (Kind, bool) {
	for k := KindSlider; k < kindCount; k++ {
		y := float64(paletteEntryY(k))
		if sy >= y && sy < y+paletteEntryHeight-8 {
			return k, true
		}
	}
	return 0, false
}

func (e *Editor) drawHUD(screen *ebiten.Image) {
	g := e.ctrl.Grid()
	status := fmt.Sprintf("%dx%d grid  |  %d widgets  |  C copy  Del delete  Esc cancel",
		g.Cols, g.Rows, len(e.board.Widgets()))
	if e.dirty {
		status += "  *"
	}
	ebitenutil.DebugPrintAt(screen, status, paletteWidth+8, e.height-18)
}
