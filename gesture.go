package pinchzoom

import "time"

// --- Gesture session ---

// session is the per-gesture state. Exactly one variant is active; a
// panning and a pinching session can never coexist.
type session interface {
	name() string
}

type idleSession struct{}

type panSession struct {
	last  Point
	moved bool
}

type pinchSession struct {
	midpoint Point
	distance float64
}

type animSession struct {
	anim *animation
}

func (idleSession) name() string  { return "idle" }
func (panSession) name() string   { return "panning" }
func (pinchSession) name() string { return "pinching" }
func (s animSession) name() string {
	return "animating:" + s.anim.kind.String()
}

func (v *Viewport) setSession(s session) {
	if v.logger != nil && s.name() != v.session.name() {
		v.debugLog("session", "from", v.session.name(), "to", s.name())
	}
	v.session = s
}

// endSession closes a pan or pinch session and returns it. Animation
// sessions are left alone; callers cancel those explicitly.
func (v *Viewport) endSession() session {
	ended := v.session
	switch s := ended.(type) {
	case panSession:
		v.setSession(idleSession{})
		v.emit(GesturePanEnd, s.last)
	case pinchSession:
		v.setSession(idleSession{})
		v.emit(GesturePinchEnd, s.midpoint)
	}
	return ended
}

// --- Mouse ---

// PointerDown starts a mouse-drag pan. Only the left button pans.
func (v *Viewport) PointerDown(p Point, button MouseButton) {
	if button != MouseButtonLeft {
		return
	}
	v.cancelAnimation()
	v.endSession()
	v.setSession(panSession{last: p})
	v.emit(GesturePanStart, p)
}

// PointerMove pans while the left button is held.
func (v *Viewport) PointerMove(p Point) {
	if _, ok := v.session.(panSession); ok {
		v.panMove(p)
	}
}

// PointerUp ends a mouse-drag pan.
func (v *Viewport) PointerUp(button MouseButton) {
	if button != MouseButtonLeft {
		return
	}
	if _, ok := v.session.(panSession); ok {
		v.endSession()
	}
}

// --- Touch ---

// TouchStart is called with every active touch whenever a touch lands.
// Any gesture in progress ends and a new one matching the touch count
// begins.
func (v *Viewport) TouchStart(points []Point, t time.Time) {
	v.cancelAnimation()
	v.endSession()
	v.touches = len(points)
	v.beginTouchSession(points)
}

// TouchMove is called with every active touch whenever one moves. A touch
// count that no longer matches the session starts a fresh session from the
// current points, so stale pan or pinch data is never reused.
func (v *Viewport) TouchMove(points []Point) {
	if v.touches == 0 || len(points) == 0 {
		return
	}
	switch s := v.session.(type) {
	case pinchSession:
		if len(points) >= 2 {
			v.pinchMove(s, points[0], points[1])
			return
		}
	case panSession:
		if len(points) == 1 {
			v.panMove(points[0])
			return
		}
	}
	v.cancelAnimation()
	v.endSession()
	v.touches = len(points)
	v.beginTouchSession(points)
}

// TouchEnd is called when a touch lifts, with the number still down. The
// final release snaps an out-of-bounds scale back into range, or checks
// for a double tap. A TouchEnd with no touches down is ignored.
func (v *Viewport) TouchEnd(remaining int, t time.Time) {
	if v.touches == 0 {
		return
	}
	ended := v.endSession()
	v.touches = max(remaining, 0)
	if v.touches > 0 {
		return
	}

	switch {
	case v.state.Scale > v.cfg.MaxScale:
		v.emit(GestureSnapBack, v.lastMidpoint)
		v.ZoomTo(v.cfg.MaxScale, v.lastMidpoint)
		return
	case v.state.Scale < v.cfg.MinScale:
		v.emit(GestureSnapBack, v.lastMidpoint)
		v.ZoomTo(v.cfg.MinScale, v.lastMidpoint)
		return
	}

	if v.hasRelease && t.Sub(v.lastRelease) < v.cfg.DoubleTapThreshold {
		v.emit(GestureDoubleTap, Point{})
		v.Reset()
	} else if pan, ok := ended.(panSession); ok && !pan.moved {
		v.emit(GestureTap, pan.last)
	}
	v.lastRelease = t
	v.hasRelease = true
}

func (v *Viewport) beginTouchSession(points []Point) {
	switch {
	case len(points) >= 2:
		mid := Midpoint(points[0], points[1])
		v.setSession(pinchSession{midpoint: mid, distance: points[0].Dist(points[1])})
		v.emit(GesturePinchStart, mid)
	case len(points) == 1:
		v.setSession(panSession{last: points[0]})
		v.emit(GesturePanStart, points[0])
	}
}

// --- Pan and pinch ---

// panMove translates by the pointer delta, clamped to the content edges.
// At scale 1 there is nothing to pan, but the movement still rules out a tap.
func (v *Viewport) panMove(p Point) {
	s := v.session.(panSession)
	if v.state.Scale == Identity.Scale {
		v.setSession(panSession{last: p, moved: s.moved || p != s.last})
		return
	}
	x, y := clampPan(v.state, v.cfg.Width, v.cfg.Height,
		v.state.X+p.X-s.last.X, v.state.Y+p.Y-s.last.Y)
	v.setSession(panSession{last: p, moved: true})
	v.apply(v.scaled(x, y, v.state.Scale))
	v.emit(GesturePan, p)
}

// pinchMove scales by the ratio of the new to the previous touch distance,
// allowing Overshoot past the scale bounds, anchored on the midpoint.
func (v *Viewport) pinchMove(s pinchSession, a, b Point) {
	dist := a.Dist(b)
	mid := Midpoint(a, b)

	if s.distance > 0 && finite(dist) {
		scale := clampRange(
			v.cfg.MinScale-v.cfg.Overshoot,
			v.cfg.MaxScale+v.cfg.Overshoot,
			v.state.Scale*(dist/s.distance),
		)
		v.apply(zoomAboutPoint(v.state, v.cfg.Width, v.cfg.Height, scale, mid))
		v.emit(GesturePinch, mid)
	} else {
		v.debugLog("degenerate pinch skipped", "distance", s.distance)
	}

	v.lastMidpoint = mid
	v.setSession(pinchSession{midpoint: mid, distance: dist})
}

// --- Wheel ---

// Wheel zooms one step about the pointer. Negative deltaY zooms in. The
// scale stays within [MinScale, MaxScale] and the translation within the
// pan bounds. A zero delta is ignored.
func (v *Viewport) Wheel(deltaY float64, p Point) {
	if deltaY == 0 || !finite(deltaY) {
		return
	}
	v.cancelAnimation()

	scale := v.state.Scale
	next := clampRange(v.cfg.MinScale, v.cfg.MaxScale, wheelScale(scale, deltaY, v.cfg.WheelStep))
	if next == scale {
		return
	}
	tr := zoomAtPointer(v.state.Transform().Translate(), scale, next, p)
	st := v.scaled(tr.X, tr.Y, next)
	st.X, st.Y = clampPan(st, v.cfg.Width, v.cfg.Height, st.X, st.Y)

	v.lastMidpoint = p
	v.apply(st)
	v.emit(GestureWheelZoom, p)
}
