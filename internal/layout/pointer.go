package layout

// PointerPhase is one of the three canonical pointer transitions.
type PointerPhase uint8

const (
	PointerDown PointerPhase = iota
	PointerMove
	PointerUp
)

// PointerEvent is the device-independent input the controller consumes.
// The host adapter translates both mouse and touch activity into this
// vocabulary before it reaches any gesture logic, with X/Y in layout
// container pixels (origin at the container's top-left corner).
type PointerEvent struct {
	Phase PointerPhase
	X     float64
	Y     float64
}
