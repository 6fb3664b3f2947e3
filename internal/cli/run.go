package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/phanxgames/pinchzoom"
)

// errFrameLimit is returned when a replay does not finish in time.
var errFrameLimit = errors.New("frame limit reached")

// replayEpoch is the fixed clock origin for replays so that double-tap
// timing is reproducible.
var replayEpoch = time.Unix(0, 0).UTC()

type runOptions struct {
	every     int
	maxFrames int
}

// runCommand creates the run command that replays a gesture script.
func (c *CLI) runCommand(cfgOpts *configOptions) *cobra.Command {
	opts := runOptions{maxFrames: defaultMaxFrames}

	cmd := &cobra.Command{
		Use:   "run [script.json|script.toml]",
		Short: "Replay a gesture script and print the resulting transform",
		Long: `Replay a gesture script against a fresh viewport.

Scripts are JSON ({"steps": [...]}) or TOML ([[steps]] tables), chosen by
file extension. Each frame the script may queue input, one queued event is
delivered, and pending animation frames run. The replay ends once the
script is done and the viewport has settled.

Marks in the script print the transform at that point. The final transform
is always printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, cfgOpts)
			if err != nil {
				return err
			}
			return c.runReplay(cmd.Context(), args[0], cfg, opts)
		},
	}

	cmd.Flags().IntVar(&opts.every, "every", 0, "also print the transform every N frames (0 disables)")
	cmd.Flags().IntVar(&opts.maxFrames, "max-frames", opts.maxFrames, "abort if the replay runs longer than this")

	return cmd
}

// loadScriptFile reads a JSON or TOML gesture script.
func loadScriptFile(path string) (*pinchzoom.ScriptRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	var runner *pinchzoom.ScriptRunner
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		runner, err = pinchzoom.LoadScriptTOML(data)
	default:
		runner, err = pinchzoom.LoadScript(data)
	}
	if err != nil {
		return nil, fmt.Errorf("load script %s: %w", path, err)
	}
	return runner, nil
}

// runReplay loads the script at path and replays it.
func (c *CLI) runReplay(ctx context.Context, path string, cfg pinchzoom.Config, opts runOptions) error {
	logger := loggerFromContext(ctx)

	runner, err := loadScriptFile(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded script", "path", path, "steps", runner.Len())

	frames, err := replay(ctx, c.out, runner, cfg, opts)
	if err != nil {
		return fmt.Errorf("replay %s: %w", path, err)
	}
	newProgress(logger).done(fmt.Sprintf("Replayed %d frames", frames))
	return nil
}

// replay drives runner against a new viewport until the script is done
// and the viewport has settled. It returns the number of frames run.
func replay(ctx context.Context, out io.Writer, runner *pinchzoom.ScriptRunner, cfg pinchzoom.Config, opts runOptions) (int, error) {
	logger := loggerFromContext(ctx)

	loop := pinchzoom.NewFrameLoop()
	v, err := pinchzoom.NewViewport(cfg, loop)
	if err != nil {
		return 0, err
	}
	v.SetLogger(logger)
	v.OnGesture(func(e pinchzoom.GestureEvent) {
		logger.Debug("gesture", "kind", e.Kind, "x", e.Point.X, "y", e.Point.Y, "scale", e.Scale)
	})

	var (
		in    pinchzoom.Injector
		frame int
		now   = replayEpoch
		dt    = time.Second / time.Duration(cfg.TPS)
	)
	runner.OnMark = func(label string) {
		printTransform(out, label, frame, v.Transform())
	}

	for !runner.Done() || in.Len() > 0 || v.Animating() {
		if err := ctx.Err(); err != nil {
			return frame, err
		}
		if frame >= opts.maxFrames {
			return frame, fmt.Errorf("%w after %d frames", errFrameLimit, frame)
		}
		runner.Step(&in, v)
		in.Step(v, now)
		loop.Tick()
		frame++
		now = now.Add(dt)

		if opts.every > 0 && frame%opts.every == 0 {
			printTransform(out, "frame", frame, v.Transform())
		}
	}
	printTransform(out, "final", frame, v.Transform())
	return frame, nil
}

func printTransform(w io.Writer, label string, frame int, t pinchzoom.Transform) {
	fmt.Fprintf(w, "%-8s frame=%-5d x=%.3f y=%.3f scale=%.4f\n", label, frame, t.X, t.Y, t.Scale)
}
