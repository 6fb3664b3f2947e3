package pinchzoom

import (
	"errors"
	"testing"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "mark", "label": "initial"},
			{"action": "pinch", "x": 200, "y": 150, "fromDist": 100, "toDist": 150, "frames": 3},
			{"action": "wait", "frames": 3},
			{"action": "wheel", "x": 50, "y": 50, "deltaY": -10}
		]
	}`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if runner.Len() != 4 {
		t.Fatalf("expected 4 steps, got %d", runner.Len())
	}
	if runner.steps[0].Action != "mark" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	st := runner.steps[1]
	if st.Action != "pinch" || st.X != 200 || st.FromDist != 100 || st.ToDist != 150 || st.Frames != 3 {
		t.Errorf("step 1 mismatch: %+v", st)
	}
	if runner.steps[3].DeltaY != -10 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadScriptTOML(t *testing.T) {
	data := []byte(`
[[steps]]
action = "drag"
from_x = 10.0
from_y = 20.0
to_x = 30.0
to_y = 40.0
frames = 4

[[steps]]
action = "settle"
`)
	runner, err := LoadScriptTOML(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if runner.Len() != 2 {
		t.Fatalf("expected 2 steps, got %d", runner.Len())
	}
	st := runner.steps[0]
	if st.FromX != 10 || st.FromY != 20 || st.ToX != 30 || st.ToY != 40 || st.Frames != 4 {
		t.Errorf("step 0 mismatch: %+v", st)
	}
}

func TestLoadScript_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `not json`},
		{"unknown action", `{"steps": [{"action": "fly"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
	if _, err := LoadScriptTOML([]byte(`steps = 3`)); err == nil {
		t.Error("expected error for malformed TOML script")
	}
}

func TestLoadScript_Empty(t *testing.T) {
	_, err := LoadScript([]byte(`{"steps": []}`))
	if !errors.Is(err, ErrEmptyScript) {
		t.Errorf("err = %v, want ErrEmptyScript", err)
	}
}

// runScript drives runner, injector and frame loop until the runner is
// done and no frames are pending, returning the frame count.
func runScript(t *testing.T, runner *ScriptRunner, v *Viewport, frames *FrameLoop) int {
	t.Helper()
	var in Injector
	now := t0
	n := 0
	for !runner.Done() || in.Len() > 0 || frames.Pending() > 0 {
		runner.Step(&in, v)
		in.Step(v, now)
		frames.Tick()
		now = now.Add(frameDur)
		n++
		if n > 100000 {
			t.Fatal("script did not finish")
		}
	}
	return n
}

func TestScriptRunnerPinchThenReset(t *testing.T) {
	v, frames := newTestViewport(t)
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "pinch", "x": 200, "y": 150, "fromDist": 100, "toDist": 150, "frames": 2},
		{"action": "mark", "label": "zoomed"},
		{"action": "reset"},
		{"action": "settle"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	var marked State
	runner.OnMark = func(label string) {
		if label == "zoomed" {
			marked = v.State()
		}
	}

	runScript(t, runner, v, frames)

	assertState(t, marked, State{X: -100, Y: -75, Scale: 1.5, Width: 600, Height: 450})
	if v.Transform() != Identity {
		t.Errorf("Transform() = %+v, want identity", v.Transform())
	}
}

func TestScriptRunnerWait(t *testing.T) {
	v, frames := newTestViewport(t)
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "mark", "label": "done"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	var in Injector

	// Frame 1: wait starts (counts as 1 of 3).
	runner.Step(&in, v)
	if runner.Done() {
		t.Fatal("should not be done after first wait frame")
	}
	// Frames 2-3: counting down.
	runner.Step(&in, v)
	runner.Step(&in, v)
	if runner.Done() {
		t.Fatal("should not be done during wait")
	}
	// Frame 4: mark executes and finishes the script.
	runner.Step(&in, v)
	if !runner.Done() {
		t.Error("should be done after mark")
	}
	_ = frames
}

func TestScriptRunnerSettleWaitsForAnimation(t *testing.T) {
	v, frames := newTestViewport(t)
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "settle"},
		{"action": "mark", "label": "settled"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	var settledScale float64
	runner.OnMark = func(string) { settledScale = v.State().Scale }

	v.ZoomTo(2, Point{})
	runScript(t, runner, v, frames)

	if settledScale != 2 {
		t.Errorf("mark ran at scale %v, want 2 (after settling)", settledScale)
	}
}
