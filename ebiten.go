package pinchzoom

import (
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenInput polls Ebitengine's mouse, wheel and touch state once per
// frame and turns it into handler calls. Call Update from ebiten.Game.Update.
// Touch input is only delivered when the handler implements TouchHandler.
type EbitenInput struct {
	// Origin is the screen position of the viewport's top-left corner.
	// Positions are delivered relative to it.
	Origin Point
	// Now supplies touch timestamps. Defaults to time.Now.
	Now func() time.Time

	pointer PointerHandler
	touch   TouchHandler

	mouseDown  bool
	lastCursor Point

	touchIDs   []ebiten.TouchID
	lastIDs    []ebiten.TouchID
	lastPoints []Point
}

// NewEbitenInput creates an adapter feeding h.
func NewEbitenInput(h PointerHandler) *EbitenInput {
	e := &EbitenInput{pointer: h, Now: time.Now}
	if th, ok := h.(TouchHandler); ok {
		e.touch = th
	}
	return e
}

// Update polls Ebitengine and dispatches this frame's input.
func (e *EbitenInput) Update() {
	cx, cy := ebiten.CursorPosition()
	cursor := e.local(float64(cx), float64(cy))

	e.feedMouse(cursor, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	if _, dy := ebiten.Wheel(); dy != 0 {
		e.feedWheel(dy, cursor)
	}

	if e.touch == nil {
		return
	}
	e.touchIDs = ebiten.AppendTouchIDs(e.touchIDs[:0])
	// Sort so the same finger keeps its index while others come and go.
	slices.Sort(e.touchIDs)
	points := make([]Point, len(e.touchIDs))
	for i, id := range e.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		points[i] = e.local(float64(tx), float64(ty))
	}
	e.feedTouches(e.touchIDs, points, e.now())
}

func (e *EbitenInput) local(x, y float64) Point {
	return Point{X: x - e.Origin.X, Y: y - e.Origin.Y}
}

func (e *EbitenInput) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// feedMouse runs the left-button state machine for one frame.
func (e *EbitenInput) feedMouse(cursor Point, pressed bool) {
	switch {
	case pressed && !e.mouseDown:
		e.mouseDown = true
		e.pointer.PointerDown(cursor, MouseButtonLeft)
	case pressed && e.mouseDown:
		if cursor != e.lastCursor {
			e.pointer.PointerMove(cursor)
		}
	case !pressed && e.mouseDown:
		e.mouseDown = false
		e.pointer.PointerUp(MouseButtonLeft)
	}
	e.lastCursor = cursor
}

// feedWheel converts Ebitengine's wheel offset (positive = scroll up) to
// the deltaY convention (negative = zoom in).
func (e *EbitenInput) feedWheel(dy float64, cursor Point) {
	e.pointer.Wheel(-dy, cursor)
}

// feedTouches diffs this frame's touches against the last frame's by ID.
// Lifted fingers are reported first as an end, then landed fingers as a
// start with every active touch. With the same fingers down, new positions
// are a move. ids must be sorted and parallel to points.
func (e *EbitenInput) feedTouches(ids []ebiten.TouchID, points []Point, now time.Time) {
	lifted := 0
	for _, id := range e.lastIDs {
		if _, found := slices.BinarySearch(ids, id); !found {
			lifted++
		}
	}
	landed := 0
	for _, id := range ids {
		if _, found := slices.BinarySearch(e.lastIDs, id); !found {
			landed++
		}
	}

	switch {
	case lifted > 0 || landed > 0:
		if lifted > 0 {
			e.touch.TouchEnd(len(e.lastIDs)-lifted, now)
		}
		if landed > 0 {
			e.touch.TouchStart(points, now)
		}
	case len(points) > 0 && !slices.Equal(points, e.lastPoints):
		e.touch.TouchMove(points)
	}
	e.lastIDs = append(e.lastIDs[:0], ids...)
	e.lastPoints = append(e.lastPoints[:0], points...)
}
