package pinchzoom

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type animKind uint8

const (
	animZoomTo animKind = iota // exponential approach of scale, fixed anchor
	animReset                  // exponential approach of x, y and scale to the rest pose
	animEased                  // gween tweens over a fixed duration
)

func (k animKind) String() string {
	switch k {
	case animZoomTo:
		return "zoom-to"
	case animReset:
		return "reset"
	case animEased:
		return "eased"
	}
	return "unknown"
}

// animation is one in-flight per-frame loop. step advances the viewport
// by a frame and reports whether another frame is needed.
type animation struct {
	kind      animKind
	step      func(v *Viewport) bool
	cancelled bool
}

// startAnimation cancels any running animation, then schedules a's first
// frame.
func (v *Viewport) startAnimation(a *animation) {
	v.cancelAnimation()
	v.endSession()
	v.setSession(animSession{anim: a})
	v.debugLog("animation start", "kind", a.kind, "scale", v.state.Scale)
	v.scheduleFrame(a)
}

func (v *Viewport) scheduleFrame(a *animation) {
	v.frame = v.frames.RequestFrame(func() { v.runFrame(a) })
}

func (v *Viewport) runFrame(a *animation) {
	if a.cancelled {
		return
	}
	v.frame = 0
	more := a.step(v)
	// A callback fired by step may have started another animation.
	if a.cancelled {
		return
	}
	if more {
		v.scheduleFrame(a)
		return
	}
	v.debugLog("animation done", "kind", a.kind, "x", v.state.X, "y", v.state.Y, "scale", v.state.Scale)
	v.setSession(idleSession{})
}

// CancelAnimation stops the running animation, leaving the state where the
// last frame put it. Safe to call when nothing is running.
func (v *Viewport) CancelAnimation() {
	v.cancelAnimation()
}

func (v *Viewport) cancelAnimation() {
	v.frames.CancelFrame(v.frame)
	v.frame = 0
	if s, ok := v.session.(animSession); ok {
		s.anim.cancelled = true
		v.setSession(idleSession{})
		v.debugLog("animation cancelled", "kind", s.anim.kind)
	}
}

// ZoomTo animates the scale toward target, anchored on the viewport point
// anchor, approaching by AnimationSpeed of the remaining distance per
// frame. target is clamped to [MinScale, MaxScale]. The loop stops once the
// scale has settled exactly on target; X and Y follow from the anchor.
func (v *Viewport) ZoomTo(target float64, anchor Point) {
	target = clampRange(v.cfg.MinScale, v.cfg.MaxScale, target)
	v.startAnimation(&animation{
		kind: animZoomTo,
		step: func(v *Viewport) bool {
			if v.state.Scale == target {
				return false
			}
			scale := approach(v.state.Scale, target, v.cfg.AnimationSpeed, v.cfg.SettleRange)
			v.apply(zoomAboutPoint(v.state, v.cfg.Width, v.cfg.Height, scale, anchor))
			return true
		},
	})
}

// Reset animates X, Y and Scale independently back to the rest pose at
// ResetSpeed. The loop stops once all three have settled exactly.
func (v *Viewport) Reset() {
	v.startAnimation(&animation{
		kind: animReset,
		step: func(v *Viewport) bool {
			s := v.state
			if s.X == Identity.X && s.Y == Identity.Y && s.Scale == Identity.Scale {
				return false
			}
			speed, rng := v.cfg.ResetSpeed, v.cfg.SettleRange
			v.apply(v.scaled(
				approach(s.X, Identity.X, speed, rng),
				approach(s.Y, Identity.Y, speed, rng),
				approach(s.Scale, Identity.Scale, speed, rng),
			))
			return true
		},
	})
}

// AnimateTo tweens the viewport to target over duration seconds using the
// easing function, advancing 1/TPS seconds per frame. The final frame lands
// exactly on target. Bounds are not applied. A non-positive duration jumps
// immediately.
func (v *Viewport) AnimateTo(target Transform, duration float32, fn ease.TweenFunc) {
	if target.Scale <= 0 || !finite(target.Scale) || !finite(target.X) || !finite(target.Y) {
		v.debugLog("animate-to ignored", "target", target)
		return
	}
	if duration <= 0 {
		v.cancelAnimation()
		v.apply(v.scaled(target.X, target.Y, target.Scale))
		return
	}
	if fn == nil {
		fn = ease.Linear
	}

	s := v.state
	tweens := [3]*gween.Tween{
		gween.New(float32(s.X), float32(target.X), duration, fn),
		gween.New(float32(s.Y), float32(target.Y), duration, fn),
		gween.New(float32(s.Scale), float32(target.Scale), duration, fn),
	}
	var done [3]bool
	dt := float32(1.0 / float64(v.cfg.TPS))

	v.startAnimation(&animation{
		kind: animEased,
		step: func(v *Viewport) bool {
			var vals [3]float64
			allDone := true
			for i, tw := range tweens {
				val, finished := tw.Update(dt)
				vals[i] = float64(val)
				done[i] = done[i] || finished
				allDone = allDone && done[i]
			}
			if allDone {
				v.apply(v.scaled(target.X, target.Y, target.Scale))
				return false
			}
			if vals[2] <= 0 {
				vals[2] = v.state.Scale
			}
			v.apply(v.scaled(vals[0], vals[1], vals[2]))
			return true
		},
	})
}
