package pinchzoom

import "math"

// Point is a 2D coordinate in either viewport space or content space.
// Viewport space has its origin at the container's top-left, with Y
// increasing downward.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Midpoint returns the point halfway between p and q.
func Midpoint(p, q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Transform is the translation and uniform scale applied to the content
// plane. A renderer draws content with translate(X, Y) scale(Scale) and a
// top-left transform origin:
//
//	view = content*Scale + (X, Y)
type Transform struct {
	X, Y  float64
	Scale float64
}

// Identity is the rest pose: no translation, scale 1.
var Identity = Transform{Scale: 1}

// Translate returns the translation component as a Point.
func (t Transform) Translate() Point {
	return Point{X: t.X, Y: t.Y}
}

// State is the engine's transform state. Width and Height are the scaled
// content dimensions and always equal the base viewport size times Scale.
type State struct {
	X, Y          float64
	Scale         float64
	Width, Height float64
}

// Transform returns the (X, Y, Scale) triple of s.
func (s State) Transform() Transform {
	return Transform{X: s.X, Y: s.Y, Scale: s.Scale}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// GestureKind identifies what the gesture classifier recognized.
type GestureKind uint8

const (
	GesturePanStart   GestureKind = iota // single pointer went down
	GesturePan                           // single pointer moved the content
	GesturePanEnd                        // single pointer session ended
	GesturePinchStart                    // two touches went down
	GesturePinch                         // two touches changed the scale
	GesturePinchEnd                      // two-touch session ended
	GestureTap                           // last touch released without a reset
	GestureDoubleTap                     // two releases within the double-tap threshold
	GestureWheelZoom                     // wheel step applied
	GestureSnapBack                      // released out of scale bounds; animating back
)

var gestureKindNames = [...]string{
	GesturePanStart:   "pan-start",
	GesturePan:        "pan",
	GesturePanEnd:     "pan-end",
	GesturePinchStart: "pinch-start",
	GesturePinch:      "pinch",
	GesturePinchEnd:   "pinch-end",
	GestureTap:        "tap",
	GestureDoubleTap:  "double-tap",
	GestureWheelZoom:  "wheel-zoom",
	GestureSnapBack:   "snap-back",
}

func (k GestureKind) String() string {
	if int(k) < len(gestureKindNames) {
		return gestureKindNames[k]
	}
	return "unknown"
}

// GestureEvent is delivered to OnGesture callbacks.
type GestureEvent struct {
	Kind GestureKind
	// Point is the pan point, pinch midpoint, or wheel pointer position in
	// viewport coordinates. Zero for kinds without a position.
	Point Point
	// Scale is the viewport scale after the gesture step was applied.
	Scale float64
}
