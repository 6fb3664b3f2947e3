package pinchzoom

// FrameID identifies a frame callback requested from a Scheduler.
// The zero value never identifies a pending frame.
type FrameID uint64

// Scheduler delivers "next frame" callbacks, in the manner of a browser's
// requestAnimationFrame. The host owns the actual frame clock.
type Scheduler interface {
	// RequestFrame schedules fn to run on the next frame.
	RequestFrame(fn func()) FrameID
	// CancelFrame drops a pending callback. Cancelling an unknown or
	// already-run frame is a no-op.
	CancelFrame(id FrameID)
}

type pendingFrame struct {
	id FrameID
	fn func()
}

// FrameLoop is a cooperative Scheduler driven by calling Tick once per
// frame, typically from ebiten.Game.Update. It is not safe for concurrent
// use; all calls must come from the goroutine running the game loop.
type FrameLoop struct {
	pending []pendingFrame
	running []pendingFrame
	nextID  FrameID
}

// NewFrameLoop creates an empty FrameLoop.
func NewFrameLoop() *FrameLoop {
	return &FrameLoop{}
}

// RequestFrame implements Scheduler.
func (l *FrameLoop) RequestFrame(fn func()) FrameID {
	l.nextID++
	l.pending = append(l.pending, pendingFrame{id: l.nextID, fn: fn})
	return l.nextID
}

// CancelFrame implements Scheduler.
func (l *FrameLoop) CancelFrame(id FrameID) {
	if id == 0 {
		return
	}
	for i := range l.pending {
		if l.pending[i].id == id {
			copy(l.pending[i:], l.pending[i+1:])
			l.pending[len(l.pending)-1] = pendingFrame{}
			l.pending = l.pending[:len(l.pending)-1]
			return
		}
	}
}

// Tick runs every callback that was pending when Tick was called and
// returns how many ran. Callbacks requested during the tick run on the
// next one.
func (l *FrameLoop) Tick() int {
	if len(l.pending) == 0 {
		return 0
	}
	l.running = append(l.running[:0], l.pending...)
	l.pending = l.pending[:0]
	for _, f := range l.running {
		f.fn()
	}
	n := len(l.running)
	clear(l.running)
	return n
}

// Pending returns the number of callbacks waiting for the next tick.
func (l *FrameLoop) Pending() int {
	return len(l.pending)
}

// Drain ticks until nothing is pending or maxFrames ticks have run, and
// returns the number of ticks.
func (l *FrameLoop) Drain(maxFrames int) int {
	frames := 0
	for frames < maxFrames && len(l.pending) > 0 {
		l.Tick()
		frames++
	}
	return frames
}
