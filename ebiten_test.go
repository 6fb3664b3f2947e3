package pinchzoom

import (
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// recorder logs handler calls as strings.
type recorder struct {
	calls []string
}

func (r *recorder) PointerDown(p Point, b MouseButton) {
	r.calls = append(r.calls, fmt.Sprintf("down %v,%v %d", p.X, p.Y, b))
}
func (r *recorder) PointerMove(p Point) { r.calls = append(r.calls, fmt.Sprintf("move %v,%v", p.X, p.Y)) }
func (r *recorder) PointerUp(b MouseButton) {
	r.calls = append(r.calls, fmt.Sprintf("up %d", b))
}
func (r *recorder) Wheel(dy float64, p Point) {
	r.calls = append(r.calls, fmt.Sprintf("wheel %v at %v,%v", dy, p.X, p.Y))
}

type touchRecorder struct {
	recorder
}

func (r *touchRecorder) TouchStart(points []Point, _ time.Time) {
	r.calls = append(r.calls, fmt.Sprintf("tstart %d", len(points)))
}
func (r *touchRecorder) TouchMove(points []Point) {
	r.calls = append(r.calls, fmt.Sprintf("tmove %d", len(points)))
}
func (r *touchRecorder) TouchEnd(remaining int, _ time.Time) {
	r.calls = append(r.calls, fmt.Sprintf("tend %d", remaining))
}

func TestEbitenInputMouse(t *testing.T) {
	rec := &recorder{}
	e := NewEbitenInput(rec)

	e.feedMouse(Point{X: 1, Y: 2}, false)
	e.feedMouse(Point{X: 1, Y: 2}, true)
	e.feedMouse(Point{X: 1, Y: 2}, true) // no movement
	e.feedMouse(Point{X: 5, Y: 6}, true)
	e.feedMouse(Point{X: 5, Y: 6}, false)
	e.feedMouse(Point{X: 9, Y: 9}, false)

	want := []string{"down 1,2 0", "move 5,6", "up 0"}
	if !slices.Equal(rec.calls, want) {
		t.Errorf("calls = %q, want %q", rec.calls, want)
	}
}

func TestEbitenInputWheelInvertsDirection(t *testing.T) {
	rec := &recorder{}
	e := NewEbitenInput(rec)
	e.feedWheel(1, Point{X: 3, Y: 4})

	want := []string{"wheel -1 at 3,4"}
	if !slices.Equal(rec.calls, want) {
		t.Errorf("calls = %q, want %q", rec.calls, want)
	}
}

func TestEbitenInputTouchDiff(t *testing.T) {
	rec := &touchRecorder{}
	e := NewEbitenInput(rec)
	if e.touch == nil {
		t.Fatal("touch handler not detected")
	}

	one, two := []ebiten.TouchID{1}, []ebiten.TouchID{1, 2}
	a, b := Point{X: 10, Y: 10}, Point{X: 50, Y: 10}
	e.feedTouches(nil, nil, t0)
	e.feedTouches(one, []Point{a}, t0)
	e.feedTouches(one, []Point{a}, t0) // unchanged
	e.feedTouches(one, []Point{{X: 12, Y: 10}}, t0)
	e.feedTouches(two, []Point{a, b}, t0)
	e.feedTouches(two, []Point{a, {X: 60, Y: 10}}, t0)
	e.feedTouches(one, []Point{a}, t0)
	e.feedTouches(nil, nil, t0)

	want := []string{"tstart 1", "tmove 1", "tstart 2", "tmove 2", "tend 1", "tend 0"}
	if !slices.Equal(rec.calls, want) {
		t.Errorf("calls = %q, want %q", rec.calls, want)
	}
}

func TestEbitenInputFingerSwapIsNotAMove(t *testing.T) {
	tests := []struct {
		name     string
		fromIDs  []ebiten.TouchID
		from     []Point
		toIDs    []ebiten.TouchID
		to       []Point
		wantCall []string
	}{
		{
			name:    "one finger replaced",
			fromIDs: []ebiten.TouchID{1}, from: []Point{{X: 10, Y: 10}},
			toIDs: []ebiten.TouchID{2}, to: []Point{{X: 300, Y: 10}},
			wantCall: []string{"tend 0", "tstart 1"},
		},
		{
			name:    "second finger replaced",
			fromIDs: []ebiten.TouchID{1, 2}, from: []Point{{X: 10, Y: 10}, {X: 50, Y: 10}},
			toIDs: []ebiten.TouchID{1, 3}, to: []Point{{X: 10, Y: 10}, {X: 90, Y: 10}},
			wantCall: []string{"tend 1", "tstart 2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &touchRecorder{}
			e := NewEbitenInput(rec)
			e.feedTouches(tt.fromIDs, tt.from, t0)
			rec.calls = nil
			e.feedTouches(tt.toIDs, tt.to, t0)
			if !slices.Equal(rec.calls, tt.wantCall) {
				t.Errorf("calls = %q, want %q", rec.calls, tt.wantCall)
			}
		})
	}
}

func TestEbitenInputFingerSwapDoesNotPan(t *testing.T) {
	v, frames := newTestViewport(t)
	v.ZoomTo(2, Point{X: 200, Y: 150})
	frames.Drain(10000)
	before := v.State()

	e := NewEbitenInput(v)
	e.feedTouches([]ebiten.TouchID{1}, []Point{{X: 100, Y: 100}}, t0)
	e.feedTouches([]ebiten.TouchID{2}, []Point{{X: 300, Y: 100}}, t0.Add(time.Second))

	if v.State() != before {
		t.Errorf("state = %+v, want unchanged %+v", v.State(), before)
	}
}

func TestEbitenInputPointerOnlyHandler(t *testing.T) {
	e := NewEbitenInput(&recorder{})
	if e.touch != nil {
		t.Error("pointer-only handler should not receive touches")
	}
}

func TestEbitenInputOrigin(t *testing.T) {
	e := NewEbitenInput(&recorder{})
	e.Origin = Point{X: 100, Y: 50}
	if got := e.local(130, 70); got != (Point{X: 30, Y: 20}) {
		t.Errorf("local = %v, want (30, 20)", got)
	}
}

func TestEbitenInputDrivesViewport(t *testing.T) {
	v, frames := newTestViewport(t)
	e := NewEbitenInput(v)

	two := []ebiten.TouchID{1, 2}
	e.feedTouches(two, pinchPoints(Point{X: 200, Y: 150}, 100), t0)
	e.feedTouches(two, pinchPoints(Point{X: 200, Y: 150}, 150), t0)
	e.feedTouches(two[:1], pinchPoints(Point{X: 200, Y: 150}, 150)[:1], t0)
	e.feedTouches(nil, nil, t0)
	frames.Drain(100)

	assertState(t, v.State(), State{X: -100, Y: -75, Scale: 1.5, Width: 600, Height: 450})
}
