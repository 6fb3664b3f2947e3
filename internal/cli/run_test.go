package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/phanxgames/pinchzoom"
)

const pinchScript = `{"steps": [
	{"action": "pinch", "x": 200, "y": 150, "fromDist": 100, "toDist": 150, "frames": 4},
	{"action": "mark", "label": "pinched"},
	{"action": "doubletap", "x": 10, "y": 10},
	{"action": "settle"}
]}`

func TestRunCommandJSON(t *testing.T) {
	path := writeFile(t, "pinch.json", pinchScript)
	var out, logs bytes.Buffer
	root := New(&out, &logs, LogInfo).RootCommand()
	root.SetArgs([]string{"run", path, "--width", "400", "--height", "300"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("output lines = %d, want 2:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "pinched") || !strings.Contains(lines[0], "x=-100.000 y=-75.000 scale=1.5000") {
		t.Errorf("mark line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "final") || !strings.Contains(lines[1], "x=0.000 y=0.000 scale=1.0000") {
		t.Errorf("final line = %q", lines[1])
	}
	if !strings.Contains(logs.String(), "Replayed") {
		t.Errorf("logs missing progress line:\n%s", logs.String())
	}
}

func TestRunCommandTOML(t *testing.T) {
	path := writeFile(t, "wheel.toml", `
[[steps]]
action = "wheel"
x = 50.0
y = 50.0
delta_y = -10.0
`)
	var out, logs bytes.Buffer
	root := New(&out, &logs, LogInfo).RootCommand()
	root.SetArgs([]string{"run", path})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), "x=-5.000 y=-5.000 scale=1.1000") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunCommandEvery(t *testing.T) {
	path := writeFile(t, "wait.json", `{"steps": [{"action": "wait", "frames": 4}]}`)
	var out, logs bytes.Buffer
	root := New(&out, &logs, LogInfo).RootCommand()
	root.SetArgs([]string{"run", path, "--every", "2"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if n := strings.Count(out.String(), "frame "); n < 2 {
		t.Errorf("periodic lines = %d, want at least 2:\n%s", n, out.String())
	}
}

func TestRunCommandErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"empty", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "spin"}]}`},
		{"malformed", `{"steps":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "bad.json", tt.script)
			var out, logs bytes.Buffer
			root := New(&out, &logs, LogInfo).RootCommand()
			root.SetArgs([]string{"run", path})
			root.SetErr(&logs)
			if err := root.Execute(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestReplayFrameLimit(t *testing.T) {
	runner, err := pinchzoom.LoadScript([]byte(`{"steps": [{"action": "wait", "frames": 50}]}`))
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	_, err = replay(context.Background(), &out, runner, pinchzoom.DefaultConfig(400, 300), runOptions{maxFrames: 10})
	if !errors.Is(err, errFrameLimit) {
		t.Errorf("err = %v, want errFrameLimit", err)
	}
}

func TestReplayCancelled(t *testing.T) {
	runner, err := pinchzoom.LoadScript([]byte(`{"steps": [{"action": "wait", "frames": 50}]}`))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	_, err = replay(ctx, &out, runner, pinchzoom.DefaultConfig(400, 300), runOptions{maxFrames: 1000})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
