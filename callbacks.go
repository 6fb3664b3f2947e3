package pinchzoom

import "slices"

type changeHandler struct {
	id uint32
	fn func(Transform)
}

type gestureHandler struct {
	id uint32
	fn func(GestureEvent)
}

type callbackKind uint8

const (
	callbackChange callbackKind = iota
	callbackGesture
)

type handlerRegistry struct {
	change  []changeHandler
	gesture []gestureHandler
	nextID  uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind callbackKind
}

// Remove unregisters this callback so it no longer fires. It is safe to
// call from inside a callback.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case callbackChange:
		h.reg.change = removeHandler(h.reg.change, func(c changeHandler) bool { return c.id == h.id })
	case callbackGesture:
		h.reg.gesture = removeHandler(h.reg.gesture, func(g gestureHandler) bool { return g.id == h.id })
	}
}

// removeHandler returns s without the first match. The result is a fresh
// slice, so a dispatch loop still ranging over s sees it unchanged.
func removeHandler[T any](s []T, match func(T) bool) []T {
	i := slices.IndexFunc(s, match)
	if i < 0 {
		return s
	}
	return slices.Concat(s[:i:i], s[i+1:])
}

// OnChange registers a callback fired with the new transform after every
// state change, from gestures and animation frames alike. Renderers apply
// the transform and must not write it back.
func (v *Viewport) OnChange(fn func(Transform)) CallbackHandle {
	v.handlers.nextID++
	id := v.handlers.nextID
	v.handlers.change = append(v.handlers.change, changeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &v.handlers, kind: callbackChange}
}

// OnGesture registers a callback fired for each gesture the viewport
// recognizes.
func (v *Viewport) OnGesture(fn func(GestureEvent)) CallbackHandle {
	v.handlers.nextID++
	id := v.handlers.nextID
	v.handlers.gesture = append(v.handlers.gesture, gestureHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &v.handlers, kind: callbackGesture}
}
