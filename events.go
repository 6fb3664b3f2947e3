package pinchzoom

import "time"

// PointerHandler consumes mouse and wheel input in viewport coordinates.
// Both Viewport and PanZoom implement it.
type PointerHandler interface {
	PointerDown(p Point, button MouseButton)
	PointerMove(p Point)
	PointerUp(button MouseButton)
	Wheel(deltaY float64, p Point)
}

// TouchHandler consumes touch input in addition to pointer input.
type TouchHandler interface {
	PointerHandler
	TouchStart(points []Point, t time.Time)
	TouchMove(points []Point)
	TouchEnd(remaining int, t time.Time)
}

var (
	_ TouchHandler   = (*Viewport)(nil)
	_ PointerHandler = (*PanZoom)(nil)
)

// EventKind identifies a raw input event.
type EventKind uint8

const (
	EventPointerDown EventKind = iota
	EventPointerMove
	EventPointerUp
	EventTouchStart
	EventTouchMove
	EventTouchEnd
	EventWheel
)

var eventKindNames = [...]string{
	EventPointerDown: "pointer-down",
	EventPointerMove: "pointer-move",
	EventPointerUp:   "pointer-up",
	EventTouchStart:  "touch-start",
	EventTouchMove:   "touch-move",
	EventTouchEnd:    "touch-end",
	EventWheel:       "wheel",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}

// Event is one raw input event. Which fields are meaningful depends on
// Kind: Point for pointer and wheel events, Points for touch start/move,
// Remaining for touch end, Button for pointer down/up, DeltaY for wheel,
// and Time for touch start/end.
type Event struct {
	Kind      EventKind
	Point     Point
	Points    []Point
	Button    MouseButton
	Remaining int
	DeltaY    float64
	Time      time.Time
}

// Dispatch delivers e to h. Touch events are dropped when h does not
// implement TouchHandler.
func Dispatch(h PointerHandler, e Event) {
	switch e.Kind {
	case EventPointerDown:
		h.PointerDown(e.Point, e.Button)
	case EventPointerMove:
		h.PointerMove(e.Point)
	case EventPointerUp:
		h.PointerUp(e.Button)
	case EventWheel:
		h.Wheel(e.DeltaY, e.Point)
	case EventTouchStart, EventTouchMove, EventTouchEnd:
		th, ok := h.(TouchHandler)
		if !ok {
			return
		}
		switch e.Kind {
		case EventTouchStart:
			th.TouchStart(e.Points, e.Time)
		case EventTouchMove:
			th.TouchMove(e.Points)
		default:
			th.TouchEnd(e.Remaining, e.Time)
		}
	}
}
