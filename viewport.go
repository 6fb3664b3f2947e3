package pinchzoom

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Viewport is the self-owned pan and zoom engine for a fixed-size
// container. It consumes pointer, touch and wheel events, keeps its own
// State, and animates toward targets on frames delivered by a Scheduler.
//
// A Viewport is a single-threaded state machine: every method, and every
// frame callback it schedules, must run on the same goroutine. Starting a
// gesture always cancels a running animation first, so the two writers
// never interleave.
type Viewport struct {
	cfg   Config
	state State

	session session
	touches int // active touches as last reported by the host

	// lastMidpoint is the most recent pinch midpoint or wheel pointer. It
	// outlives the pinch session so the snap-back on final release can
	// anchor on it after a 2->1->0 release sequence.
	lastMidpoint Point
	lastRelease  time.Time
	hasRelease   bool

	frames Scheduler
	frame  FrameID

	handlers handlerRegistry
	logger   *log.Logger
}

// NewViewport creates a Viewport at the rest pose (X=0, Y=0, Scale=1,
// Width/Height equal to the base size). frames delivers animation ticks.
func NewViewport(cfg Config, frames Scheduler) (*Viewport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if frames == nil {
		return nil, fmt.Errorf("%w: nil scheduler", ErrInvalidConfig)
	}
	return &Viewport{
		cfg:     cfg,
		state:   restState(cfg),
		session: idleSession{},
		frames:  frames,
	}, nil
}

func restState(cfg Config) State {
	return State{
		X:      Identity.X,
		Y:      Identity.Y,
		Scale:  Identity.Scale,
		Width:  cfg.Width,
		Height: cfg.Height,
	}
}

// Config returns the configuration the viewport was created with.
func (v *Viewport) Config() Config {
	return v.cfg
}

// State returns the current transform state.
func (v *Viewport) State() State {
	return v.state
}

// Transform returns the current (X, Y, Scale) for the renderer.
func (v *Viewport) Transform() Transform {
	return v.state.Transform()
}

// Animating reports whether an animation is in flight.
func (v *Viewport) Animating() bool {
	_, ok := v.session.(animSession)
	return ok
}

// scaled returns a State at scale with Width/Height recomputed and the
// given translation. All writes of Scale go through here or
// zoomAboutPoint so Width/Height never drift from Scale.
func (v *Viewport) scaled(x, y, scale float64) State {
	return State{
		X:      x,
		Y:      y,
		Scale:  scale,
		Width:  v.cfg.Width * scale,
		Height: v.cfg.Height * scale,
	}
}

// apply stores next and notifies OnChange listeners when it differs.
func (v *Viewport) apply(next State) {
	if next == v.state {
		return
	}
	v.state = next
	t := next.Transform()
	for _, h := range v.handlers.change {
		h.fn(t)
	}
}

func (v *Viewport) emit(kind GestureKind, p Point) {
	if len(v.handlers.gesture) == 0 {
		return
	}
	ev := GestureEvent{Kind: kind, Point: p, Scale: v.state.Scale}
	for _, h := range v.handlers.gesture {
		h.fn(ev)
	}
}
