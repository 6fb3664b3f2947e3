package pinchzoom

import "math"

// identityMatrix is the identity affine matrix.
var identityMatrix = [6]float64{1, 0, 0, 1, 0, 0}

// Matrix returns t as an affine matrix mapping content space to viewport
// space.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func (t Transform) Matrix() [6]float64 {
	return [6]float64{t.Scale, 0, 0, t.Scale, t.X, t.Y}
}

// ContentToView converts a content-space point to viewport space.
func (t Transform) ContentToView(p Point) Point {
	x, y := transformPoint(t.Matrix(), p.X, p.Y)
	return Point{X: x, Y: y}
}

// ViewToContent converts a viewport-space point to content space:
//
//	content = (view - translate) / scale
func (t Transform) ViewToContent(p Point) Point {
	x, y := transformPoint(invertAffine(t.Matrix()), p.X, p.Y)
	return Point{X: x, Y: y}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityMatrix
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// --- Clamping ---

// clampRange clamps v into the range spanned by a and b, in either order.
func clampRange(a, b, v float64) float64 {
	lo, hi := math.Min(a, b), math.Max(a, b)
	return math.Max(lo, math.Min(v, hi))
}

// clampPan restricts a translation so the scaled content never reveals
// empty space past its edges: x in [baseW - width, 0], y in
// [baseH - height, 0]. When the content is smaller than the viewport the
// range is inverted and clampRange keeps it well-ordered.
func clampPan(s State, baseW, baseH float64, x, y float64) (float64, float64) {
	return clampRange(baseW-s.Width, 0, x), clampRange(baseH-s.Height, 0, y)
}

// settle snaps val onto target once it is strictly within rng of it.
func settle(val, target, rng float64) float64 {
	if math.Abs(val-target) < rng {
		return target
	}
	return val
}

// approach moves current toward target by the fraction speed, then settles.
func approach(current, target, speed, rng float64) float64 {
	return settle(current+speed*(target-current), target, rng)
}

// --- Zoom ---

// zoomAboutPoint returns s rescaled to scale, translating so the content
// under mid (viewport space) stays put. It works on the cached scaled
// width/height:
//
//	x' = x + (-(mid.x*scale) * (width' - width) / width')
//
// The formula is exact when zooming away from the rest pose and is what
// pinch and the snap-back animation are tuned against.
func zoomAboutPoint(s State, baseW, baseH, scale float64, mid Point) State {
	nextW := baseW * scale
	nextH := baseH * scale
	return State{
		X:      s.X + (-(mid.X * scale) * (nextW - s.Width) / nextW),
		Y:      s.Y + (-(mid.Y * scale) * (nextH - s.Height) / nextH),
		Scale:  scale,
		Width:  nextW,
		Height: nextH,
	}
}

// zoomAtPointer returns the translation that keeps the content point under
// pointer fixed when going from scale to newScale. It works on the raw
// translate/scale pair:
//
//	content = (pointer - translate) / scale
//	translate' = content*(scale - newScale) + translate
func zoomAtPointer(translate Point, scale, newScale float64, pointer Point) Point {
	cx := (pointer.X - translate.X) / scale
	cy := (pointer.Y - translate.Y) / scale
	return Point{
		X: cx*(scale-newScale) + translate.X,
		Y: cy*(scale-newScale) + translate.Y,
	}
}

// wheelScale applies one multiplicative wheel step. Negative deltaY zooms
// in; positive zooms out.
func wheelScale(scale, deltaY, step float64) float64 {
	if deltaY < 0 {
		return scale * step
	}
	return scale / step
}

// finite reports whether v is neither NaN nor infinite.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
