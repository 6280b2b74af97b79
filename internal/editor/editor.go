package editor

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"panelforge/internal/layout"
)

// paletteWidth is the pixel width of the widget palette strip on the left;
// the layout container is everything to its right.
const paletteWidth = 148

// handleHitRadius is the pick radius around a resize handle, in pixels.
const handleHitRadius = 6

// Editor is the ebiten host: it owns the widget board, normalizes mouse and
// touch input into the engine's pointer vocabulary, and renders the grid,
// widgets, previews and panels.
type Editor struct {
	cfg   Config
	log   *log.Logger
	board *Board
	ctrl  *layout.Controller

	selection []string // current selection, insertion-ordered
	dirty     bool     // geometry changed since the last clipboard export

	face font.Face

	width  int // window size, px
	height int

	prevMouseLeft bool
	touchActive   bool
	activeTouch   ebiten.TouchID
	touchScratch  []ebiten.TouchID

	boxEmitted bool // a rubber-band result arrived during the current release
}

// New builds an editor from config. logger may be nil for a silent editor
// (used by tests).
func New(cfg Config, logger *log.Logger) (*Editor, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse label font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: 13, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("build label face: %w", err)
	}

	e := &Editor{
		cfg:   cfg,
		log:   logger,
		board: NewBoard(),
		face:  face,
	}
	e.ctrl = layout.NewController(layout.Grid{Cols: cfg.Columns, Rows: cfg.Rows}, e.board, layout.Callbacks{
		UpdateEntity: func(id string, r layout.Rect) { e.dirty = true },
		Select: func(id string) {
			if id == "" {
				e.selection = nil
			} else {
				e.selection = []string{id}
			}
			e.ctrl.SetSelection(e.selection)
		},
		SelectMultiple: func(ids []string) {
			e.boxEmitted = true
			e.selection = ids
			e.ctrl.SetSelection(ids)
			e.log.Debug("rubber-band selection", "count", len(ids))
		},
	})
	e.ctrl.BoxThresholdPx = cfg.BoxThreshold
	return e, nil
}

// Shutdown releases any in-flight gesture so no session state outlives the
// host. Deferred by main around RunGame.
func (e *Editor) Shutdown() {
	e.ctrl.Cancel()
}

// Layout reports the render size and keeps the controller's viewport in sync
// with the window. The layout container is the window minus the palette
// strip; until it has a positive size the engine treats every frame as a
// no-op.
func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.width || outsideHeight != e.height {
		e.width = outsideWidth
		e.height = outsideHeight
		e.ctrl.SetViewport(float64(outsideWidth-paletteWidth), float64(outsideHeight))
		cw, ch := e.ctrl.CellSize()
		e.log.Debug("viewport", "w", outsideWidth, "h", outsideHeight, "cellW", cw, "cellH", ch)
	}
	return outsideWidth, outsideHeight
}

func (e *Editor) Update() error {
	e.handleKeys()
	e.handleMouse()
	e.handleTouch()
	return nil
}

func (e *Editor) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if e.ctrl.Active() {
			e.ctrl.Cancel()
			e.log.Info("gesture cancelled")
		} else if _, _, _, _, box := e.ctrl.SelectionBox(); box {
			e.ctrl.Cancel()
		} else {
			e.setSelection(nil)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		e.deleteSelected()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		e.copyLayout()
	}
	// 1–5 add widgets without touching the palette.
	for k := KindSlider; k < kindCount; k++ {
		if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(k)) {
			e.addWidget(k)
		}
	}
}

// handleMouse translates the primary mouse button into the canonical
// pointer stream. Edge detection follows the previous-state pattern rather
// than inpututil so move frames and the release share one code path.
func (e *Editor) handleMouse() {
	mx, my := ebiten.CursorPosition()
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	switch {
	case left && !e.prevMouseLeft:
		e.pointerDown(float64(mx), float64(my))
	case left && e.prevMouseLeft:
		e.pointerMove(float64(mx), float64(my))
	case !left && e.prevMouseLeft:
		e.pointerUp(float64(mx), float64(my))
	}
	e.prevMouseLeft = left
}

// handleTouch tracks the first active touch and feeds it through the same
// pointer vocabulary as the mouse, so gesture logic never sees the device.
func (e *Editor) handleTouch() {
	if e.touchActive {
		if inpututil.IsTouchJustReleased(e.activeTouch) {
			x, y := inpututil.TouchPositionInPreviousTick(e.activeTouch)
			e.pointerUp(float64(x), float64(y))
			e.touchActive = false
			return
		}
		x, y := ebiten.TouchPosition(e.activeTouch)
		e.pointerMove(float64(x), float64(y))
		return
	}
	e.touchScratch = inpututil.AppendJustPressedTouchIDs(e.touchScratch[:0])
	if len(e.touchScratch) > 0 {
		e.activeTouch = e.touchScratch[0]
		e.touchActive = true
		x, y := ebiten.TouchPosition(e.activeTouch)
		e.pointerDown(float64(x), float64(y))
	}
}

// pointerDown routes a press: palette strip, then resize handles (rendered
// only on a lone selected widget), then widgets top-most first, then empty
// background, which anchors the rubber band.
func (e *Editor) pointerDown(sx, sy float64) {
	if sx < paletteWidth {
		if k, ok := e.paletteEntryAt(sy); ok {
			e.addWidget(k)
		}
		return
	}
	cx, cy := sx-paletteWidth, sy
	ev := layout.PointerEvent{Phase: layout.PointerDown, X: cx, Y: cy}

	if len(e.selection) == 1 {
		if h, ok := e.handleAt(e.selection[0], cx, cy); ok {
			if e.ctrl.StartResize(e.selection[0], h, ev) {
				e.log.Debug("resize start", "handle", h.String())
			}
			return
		}
	}
	if w := e.widgetAt(cx, cy); w != nil {
		id := w.Entity.ID
		if ebiten.IsKeyPressed(ebiten.KeyShift) && !e.isSelected(id) {
			e.setSelection(append(append([]string{}, e.selection...), id))
		}
		e.ctrl.StartMove(id, ev)
		return
	}
	e.ctrl.StartSelectionBox(ev)
}

func (e *Editor) pointerMove(sx, sy float64) {
	e.ctrl.PointerMove(layout.PointerEvent{Phase: layout.PointerMove, X: sx - paletteWidth, Y: sy})
}

func (e *Editor) pointerUp(sx, sy float64) {
	_, _, _, _, wasBox := e.ctrl.SelectionBox()
	wasSession := e.ctrl.Active()
	members := e.ctrl.SessionMembers()
	e.boxEmitted = false
	e.ctrl.PointerUp(layout.PointerEvent{Phase: layout.PointerUp, X: sx - paletteWidth, Y: sy})
	if wasBox && !e.boxEmitted {
		// Under-threshold release on empty background is a plain click:
		// clear the selection.
		e.setSelection(nil)
	}
	if wasSession {
		e.log.Debug("gesture committed", "widgets", len(members))
	}
}

// widgetAt returns the top-most widget whose continuous rect contains the
// container-pixel point, or nil.
func (e *Editor) widgetAt(cx, cy float64) *Widget {
	cw, ch := e.ctrl.CellSize()
	if cw <= 0 || ch <= 0 {
		return nil
	}
	gx, gy := cx/cw, cy/ch
	ws := e.board.Widgets()
	for i := len(ws) - 1; i >= 0; i-- {
		r := ws[i].Entity.Rect
		if gx >= r.X && gx < r.Right() && gy >= r.Y && gy < r.Bottom() {
			return ws[i]
		}
	}
	return nil
}

// handleAt tests the eight resize handles of the given widget, corners
// before edges so a tiny widget still exposes its corners.
func (e *Editor) handleAt(id string, cx, cy float64) (layout.Handle, bool) {
	ent := e.board.ByID(id)
	if ent == nil {
		return 0, false
	}
	cw, ch := e.ctrl.CellSize()
	if cw <= 0 || ch <= 0 {
		return 0, false
	}
	order := []layout.Handle{
		layout.HandleNE, layout.HandleNW, layout.HandleSE, layout.HandleSW,
		layout.HandleN, layout.HandleS, layout.HandleE, layout.HandleW,
	}
	for _, h := range order {
		hx, hy := handleCenter(ent.Rect, h, cw, ch)
		if cx >= hx-handleHitRadius && cx <= hx+handleHitRadius &&
			cy >= hy-handleHitRadius && cy <= hy+handleHitRadius {
			return h, true
		}
	}
	return 0, false
}

// handleCenter returns the container-pixel centre of a resize handle.
func handleCenter(r layout.Rect, h layout.Handle, cw, ch float64) (float64, float64) {
	left, top := r.X*cw, r.Y*ch
	right, bottom := r.Right()*cw, r.Bottom()*ch
	midX, midY := (left+right)/2, (top+bottom)/2
	switch h {
	case layout.HandleN:
		return midX, top
	case layout.HandleS:
		return midX, bottom
	case layout.HandleE:
		return right, midY
	case layout.HandleW:
		return left, midY
	case layout.HandleNE:
		return right, top
	case layout.HandleNW:
		return left, top
	case layout.HandleSE:
		return right, bottom
	default: // HandleSW
		return left, bottom
	}
}

func (e *Editor) isSelected(id string) bool {
	for _, s := range e.selection {
		if s == id {
			return true
		}
	}
	return false
}

func (e *Editor) setSelection(ids []string) {
	e.selection = ids
	e.ctrl.SetSelection(ids)
}

func (e *Editor) addWidget(k Kind) {
	w, err := e.board.Add(k, e.ctrl.Grid())
	if err != nil {
		e.log.Warn("add rejected", "kind", k.String(), "err", err)
		return
	}
	e.dirty = true
	r := w.Entity.Rect
	e.log.Info("widget added", "kind", k.String(), "label", w.Label,
		"at", fmt.Sprintf("(%.0f,%.0f)", r.X, r.Y))
}

func (e *Editor) deleteSelected() {
	if len(e.selection) == 0 {
		return
	}
	for _, id := range e.selection {
		if e.board.Remove(id) {
			e.log.Info("widget removed", "id", shortID(id))
		}
	}
	e.dirty = true
	e.setSelection(nil)
}

// shortID trims a uuid to its first group for log and panel output.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
