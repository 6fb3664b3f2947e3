package pinchzoom

// PanZoom is the mouse-only pan and zoom controller for state owned by the
// caller. It never stores the transform: View reads the caller's current
// translate and scale before each step and OnChange reports the result for
// the caller to store. Pans are unclamped and nothing is animated.
//
//	view    = content*scale + translate
//	content = (view - translate) / scale
type PanZoom struct {
	// View returns the caller-owned translate and scale.
	View func() (translate Point, scale float64)
	// OnChange receives the new translate and scale.
	OnChange func(translate Point, scale float64)
	// WheelStep is the multiplicative zoom per wheel event.
	WheelStep float64

	lastPan Point
	panning bool
}

// NewPanZoom creates a PanZoom with the default wheel step.
func NewPanZoom(view func() (Point, float64), onChange func(Point, float64)) *PanZoom {
	return &PanZoom{View: view, OnChange: onChange, WheelStep: DefaultWheelStep}
}

// Panning reports whether a left-button drag is in progress.
func (p *PanZoom) Panning() bool {
	return p.panning
}

// PointerDown starts a drag when the left button is pressed.
func (p *PanZoom) PointerDown(pt Point, button MouseButton) {
	if button == MouseButtonLeft {
		p.lastPan = pt
		p.panning = true
	}
}

// PointerMove translates by the pointer delta while dragging.
func (p *PanZoom) PointerMove(pt Point) {
	if !p.panning || p.View == nil {
		return
	}
	translate, scale := p.View()
	p.report(Point{
		X: translate.X + pt.X - p.lastPan.X,
		Y: translate.Y + pt.Y - p.lastPan.Y,
	}, scale)
	p.lastPan = pt
}

// PointerUp ends the drag when the left button is released.
func (p *PanZoom) PointerUp(button MouseButton) {
	if button == MouseButtonLeft {
		p.panning = false
	}
}

// Wheel zooms one step about pointer, keeping the content point under it
// fixed. Negative deltaY zooms in, anything else zooms out.
func (p *PanZoom) Wheel(deltaY float64, pointer Point) {
	if p.View == nil {
		return
	}
	translate, scale := p.View()
	if scale <= 0 || !finite(scale) {
		return
	}
	step := p.WheelStep
	if step <= 1 {
		step = DefaultWheelStep
	}
	next := wheelScale(scale, deltaY, step)
	p.report(zoomAtPointer(translate, scale, next, pointer), next)
}

func (p *PanZoom) report(translate Point, scale float64) {
	if p.OnChange != nil {
		p.OnChange(translate, scale)
	}
}
