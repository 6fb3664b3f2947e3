// Package cli implements the pzreplay command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const (
	appName = "pzreplay"

	// envPrefix namespaces environment overrides, e.g. PINCHZOOM_MAX_SCALE.
	envPrefix = "PINCHZOOM"

	defaultWidth     = 800
	defaultHeight    = 600
	defaultMaxFrames = 100000
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out io.Writer
}

// New creates a CLI writing command output to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		out:    out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var opts configOptions

	root := &cobra.Command{
		Use:   appName,
		Short: "Replay pan and zoom gesture scripts headlessly",
		Long: `pzreplay drives a pinchzoom viewport from a scripted sequence of taps,
drags, pinches and wheel events, one input event per frame, and prints the
resulting transform. Use it to check gesture tuning without a display.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.path, "config", "c", "", "TOML config file")
	root.PersistentFlags().Float64Var(&opts.width, "width", defaultWidth, "viewport width")
	root.PersistentFlags().Float64Var(&opts.height, "height", defaultHeight, "viewport height")

	root.AddCommand(c.runCommand(&opts))
	root.AddCommand(c.configCommand(&opts))

	return root
}
