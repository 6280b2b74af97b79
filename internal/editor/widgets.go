package editor

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/google/uuid"

	"panelforge/internal/layout"
)

// Kind identifies a control widget type.
type Kind uint8

const (
	KindSlider Kind = iota
	KindButton
	KindToggle
	KindLabel
	KindTextBox
	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindSlider:
		return "slider"
	case KindButton:
		return "button"
	case KindToggle:
		return "toggle"
	case KindLabel:
		return "label"
	case KindTextBox:
		return "textbox"
	default:
		return "unknown"
	}
}

// kindTitle returns the display name used for palette entries and captions.
func kindTitle(k Kind) string {
	switch k {
	case KindSlider:
		return "Slider"
	case KindButton:
		return "Button"
	case KindToggle:
		return "Toggle"
	case KindLabel:
		return "Label"
	case KindTextBox:
		return "Text Box"
	default:
		return "?"
	}
}

// kindDefaultSize returns the footprint in cells for a freshly added widget.
func kindDefaultSize(k Kind) (w, h int) {
	switch k {
	case KindSlider:
		return 4, 1
	case KindButton:
		return 2, 1
	case KindToggle:
		return 1, 1
	case KindLabel:
		return 2, 1
	case KindTextBox:
		return 3, 1
	default:
		return 1, 1
	}
}

// kindFill returns the body colour for a widget kind.
func kindFill(k Kind) color.RGBA {
	switch k {
	case KindSlider:
		return color.RGBA{R: 52, G: 74, B: 96, A: 255}
	case KindButton:
		return color.RGBA{R: 70, G: 92, B: 58, A: 255}
	case KindToggle:
		return color.RGBA{R: 96, G: 74, B: 52, A: 255}
	case KindLabel:
		return color.RGBA{R: 58, G: 58, B: 64, A: 255}
	case KindTextBox:
		return color.RGBA{R: 48, G: 60, B: 72, A: 255}
	default:
		return color.RGBA{R: 60, G: 60, B: 60, A: 255}
	}
}

// Widget is one placed control. The embedded layout entity carries the
// geometry — integer cells at rest, fractional while a gesture drives it;
// everything else is presentation state the engine never touches.
type Widget struct {
	Entity layout.Entity
	Kind   Kind
	Label  string
	Value  float64 // demo state shown in the body (slider position, toggle on/off)
}

// ErrGridFull is returned by Add when no free rectangle remains for the
// requested footprint.
var ErrGridFull = errors.New("no free cells on the grid")

// Board owns the widget set and adapts it to the engine's Source view. The
// engine mutates geometry through the *layout.Entity pointers the board
// hands out; membership changes stay on this side.
type Board struct {
	widgets []*Widget
	serial  [kindCount]int
}

func NewBoard() *Board { return &Board{} }

// Entities returns the live layout entities, in stacking order.
func (b *Board) Entities() []*layout.Entity {
	out := make([]*layout.Entity, len(b.widgets))
	for i, w := range b.widgets {
		out[i] = &w.Entity
	}
	return out
}

// ByID returns the live layout entity for id, or nil.
func (b *Board) ByID(id string) *layout.Entity {
	if w := b.WidgetByID(id); w != nil {
		return &w.Entity
	}
	return nil
}

// Widgets returns the widget list in stacking order (later = on top).
func (b *Board) Widgets() []*Widget { return b.widgets }

// WidgetByID returns the widget with the given id, or nil.
func (b *Board) WidgetByID(id string) *Widget {
	for _, w := range b.widgets {
		if w.Entity.ID == id {
			return w
		}
	}
	return nil
}

// Add places a new widget of the given kind at the first free cell in
// row-major order. Returns ErrGridFull when the placement search comes back
// with an occupied or out-of-bounds rectangle — the origin result is only a
// sentinel, so it is re-checked here before the add is accepted.
func (b *Board) Add(k Kind, g layout.Grid) (*Widget, error) {
	wCells, hCells := kindDefaultSize(k)
	x, y := layout.FindFirstAvailable(wCells, hCells, g, b.Entities(), "")
	r := layout.CellRect(x, y, wCells, hCells)
	if !layout.WithinBounds(r, g) || layout.AnyOverlap(r, b.Entities(), nil) {
		return nil, ErrGridFull
	}

	b.serial[k]++
	w := &Widget{
		Entity: layout.Entity{ID: uuid.NewString(), Kind: k.String(), Rect: r},
		Kind:   k,
		Label:  fmt.Sprintf("%s %d", kindTitle(k), b.serial[k]),
	}
	if k == KindSlider {
		w.Value = 0.5
	}
	b.widgets = append(b.widgets, w)
	return w, nil
}

// Remove deletes the widget with the given id. Returns false if unknown.
func (b *Board) Remove(id string) bool {
	for i, w := range b.widgets {
		if w.Entity.ID == id {
			b.widgets = append(b.widgets[:i], b.widgets[i+1:]...)
			return true
		}
	}
	return false
}
