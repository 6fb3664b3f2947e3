// Package pinchzoom is a pointer- and touch-driven pan and zoom transform
// engine for a fixed-size viewport.
//
// It consumes single- and multi-touch gestures, mouse drags and wheel
// steps, and maintains the translation and uniform scale that map a content
// plane onto the viewport. Renderers receive (X, Y, Scale) and draw content
// with translate(X, Y) scale(Scale) from the top-left corner; the engine
// never draws anything itself.
//
// # Quick start
//
// A [Viewport] owns its state and animates on frames from a [Scheduler].
// [FrameLoop] is a cooperative scheduler you tick once per game frame:
//
//	frames := pinchzoom.NewFrameLoop()
//	vp, err := pinchzoom.NewViewport(pinchzoom.DefaultConfig(400, 300), frames)
//	if err != nil {
//		return err
//	}
//	vp.OnChange(func(t pinchzoom.Transform) {
//		// apply t to the content
//	})
//
//	// per frame:
//	input.Update() // an EbitenInput, or your own event source
//	frames.Tick()
//
// # Gestures
//
// One touch pans, clamped so the scaled content never reveals space past
// its edges. Two touches pinch, anchored on their midpoint, and may
// overshoot the scale bounds by [Config.Overshoot]; releasing out of
// bounds animates back with [Viewport.ZoomTo]. Two releases within
// [Config.DoubleTapThreshold] animate back to the rest pose with
// [Viewport.Reset]. The wheel zooms by [Config.WheelStep] about the
// pointer.
//
// Starting any gesture cancels a running animation first, so gesture
// handlers and animation frames never write the state on the same tick.
//
// # Caller-owned state
//
// [PanZoom] is the simpler mouse-only controller for transforms stored by
// the caller: it reads the current translate and scale through a getter
// and reports new values through a callback, without clamping or
// animation.
//
// # Headless replay
//
// [Injector] and [ScriptRunner] feed synthetic gestures one event per
// frame, from code or from JSON/TOML scripts. The pzreplay command runs
// such scripts and prints the resulting transforms.
package pinchzoom
