package pinchzoom

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// ErrEmptyScript is returned when a gesture script has no steps.
var ErrEmptyScript = errors.New("no steps")

// ScriptStep is a single action in a gesture script.
type ScriptStep struct {
	Action   string  `json:"action" toml:"action"`
	Label    string  `json:"label,omitempty" toml:"label"`
	X        float64 `json:"x,omitempty" toml:"x"`
	Y        float64 `json:"y,omitempty" toml:"y"`
	FromX    float64 `json:"fromX,omitempty" toml:"from_x"`
	FromY    float64 `json:"fromY,omitempty" toml:"from_y"`
	ToX      float64 `json:"toX,omitempty" toml:"to_x"`
	ToY      float64 `json:"toY,omitempty" toml:"to_y"`
	FromDist float64 `json:"fromDist,omitempty" toml:"from_dist"`
	ToDist   float64 `json:"toDist,omitempty" toml:"to_dist"`
	DeltaY   float64 `json:"deltaY,omitempty" toml:"delta_y"`
	Frames   int     `json:"frames,omitempty" toml:"frames"`
}

// Script is the top-level structure of a gesture script.
type Script struct {
	Steps []ScriptStep `json:"steps" toml:"steps"`
}

var scriptActions = map[string]bool{
	"tap": true, "doubletap": true, "drag": true, "mousedrag": true,
	"pinch": true, "wheel": true, "wait": true, "settle": true,
	"reset": true, "mark": true,
}

// ScriptRunner sequences injected gestures across frames. Call Step once
// per frame before stepping the Injector.
type ScriptRunner struct {
	// OnMark is called with the label of each "mark" step.
	OnMark func(label string)

	steps     []ScriptStep
	cursor    int
	waitCount int
	settling  bool
	done      bool
}

// LoadScript parses a JSON gesture script.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var script Script
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return newScriptRunner(script)
}

// LoadScriptTOML parses a TOML gesture script with one [[steps]] table per
// step.
func LoadScriptTOML(data []byte) (*ScriptRunner, error) {
	var script Script
	if err := toml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return newScriptRunner(script)
}

func newScriptRunner(script Script) (*ScriptRunner, error) {
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse script: %w", ErrEmptyScript)
	}
	for i, st := range script.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Len returns the number of steps in the script.
func (r *ScriptRunner) Len() int {
	return len(r.steps)
}

// Done reports whether all steps have been executed and their input
// drained.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame, queueing input on in. target
// receives "reset" steps and is polled by "settle" steps when it
// implements Reset() and Animating() respectively.
func (r *ScriptRunner) Step(in *Injector, target PointerHandler) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if in.Len() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.settling {
		if a, ok := target.(interface{ Animating() bool }); ok && a.Animating() {
			return
		}
		r.settling = false
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "tap":
		in.InjectTap(Point{X: st.X, Y: st.Y})
	case "doubletap":
		in.InjectDoubleTap(Point{X: st.X, Y: st.Y})
	case "drag":
		in.InjectDrag(Point{X: st.FromX, Y: st.FromY}, Point{X: st.ToX, Y: st.ToY}, max(st.Frames, 2))
	case "mousedrag":
		in.InjectMouseDrag(Point{X: st.FromX, Y: st.FromY}, Point{X: st.ToX, Y: st.ToY}, max(st.Frames, 2))
	case "pinch":
		in.InjectPinch(Point{X: st.X, Y: st.Y}, st.FromDist, st.ToDist, max(st.Frames, 1))
	case "wheel":
		in.InjectWheel(Point{X: st.X, Y: st.Y}, st.DeltaY)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "settle":
		r.settling = true
	case "reset":
		if rs, ok := target.(interface{ Reset() }); ok {
			rs.Reset()
		}
	case "mark":
		if r.OnMark != nil {
			r.OnMark(st.Label)
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && !r.settling && in.Len() == 0 {
		r.done = true
	}
}
