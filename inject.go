package pinchzoom

import "time"

// Injector queues synthetic input and releases it one event per frame, so
// gestures can be replayed headlessly with the same timing a host would
// produce. Touch events are stamped with the frame time passed to Step.
type Injector struct {
	queue []Event
}

// Len returns the number of queued events.
func (in *Injector) Len() int {
	return len(in.queue)
}

// Inject queues a raw event.
func (in *Injector) Inject(e Event) {
	in.queue = append(in.queue, e)
}

// InjectTap queues a single-touch press and release at p. Consumes two
// frames.
func (in *Injector) InjectTap(p Point) {
	in.Inject(Event{Kind: EventTouchStart, Points: []Point{p}})
	in.Inject(Event{Kind: EventTouchEnd, Remaining: 0})
}

// InjectDoubleTap queues two taps at p on consecutive frames.
func (in *Injector) InjectDoubleTap(p Point) {
	in.InjectTap(p)
	in.InjectTap(p)
}

// InjectDrag queues a single-touch drag: press at from, frames-2 linearly
// interpolated moves ending exactly on to, and a release. The total
// sequence consumes `frames` frames. Minimum frames is 2.
func (in *Injector) InjectDrag(from, to Point, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.Inject(Event{Kind: EventTouchStart, Points: []Point{from}})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		in.Inject(Event{Kind: EventTouchMove, Points: []Point{lerpPoint(from, to, float64(i)/float64(steps))}})
	}
	in.Inject(Event{Kind: EventTouchEnd, Remaining: 0})
}

// InjectMouseDrag queues a left-button drag from from to to, like
// InjectDrag but with pointer events.
func (in *Injector) InjectMouseDrag(from, to Point, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.Inject(Event{Kind: EventPointerDown, Point: from, Button: MouseButtonLeft})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		in.Inject(Event{Kind: EventPointerMove, Point: lerpPoint(from, to, float64(i)/float64(steps))})
	}
	in.Inject(Event{Kind: EventPointerUp, Button: MouseButtonLeft})
}

// InjectPinch queues a horizontal two-finger pinch centred on center whose
// finger distance goes from fromDist to toDist over `frames` move frames,
// followed by both fingers lifting one frame apart.
func (in *Injector) InjectPinch(center Point, fromDist, toDist float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	in.Inject(Event{Kind: EventTouchStart, Points: pinchPoints(center, fromDist)})
	for i := 1; i <= frames; i++ {
		d := fromDist + (toDist-fromDist)*float64(i)/float64(frames)
		in.Inject(Event{Kind: EventTouchMove, Points: pinchPoints(center, d)})
	}
	in.Inject(Event{Kind: EventTouchEnd, Remaining: 1})
	in.Inject(Event{Kind: EventTouchEnd, Remaining: 0})
}

// InjectWheel queues a wheel event at p.
func (in *Injector) InjectWheel(p Point, deltaY float64) {
	in.Inject(Event{Kind: EventWheel, Point: p, DeltaY: deltaY})
}

// Step pops one event, stamps touch events with now, and dispatches it to
// h. Returns true if an event was consumed.
func (in *Injector) Step(h PointerHandler, now time.Time) bool {
	if len(in.queue) == 0 {
		return false
	}
	evt := in.queue[0]
	copy(in.queue, in.queue[1:])
	in.queue[len(in.queue)-1] = Event{}
	in.queue = in.queue[:len(in.queue)-1]

	if evt.Time.IsZero() {
		evt.Time = now
	}
	Dispatch(h, evt)
	return true
}

func lerpPoint(a, b Point, t float64) Point {
	return Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

func pinchPoints(center Point, dist float64) []Point {
	return []Point{
		{X: center.X - dist/2, Y: center.Y},
		{X: center.X + dist/2, Y: center.Y},
	}
}
