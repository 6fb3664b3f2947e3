package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/phanxgames/pinchzoom"
)

// configOptions are the root flags that shape the viewport config.
type configOptions struct {
	path          string
	width, height float64
}

// loadConfig builds the effective config. Later sources win: defaults
// sized by the width/height flags, then the TOML file, then PINCHZOOM_*
// environment variables, then width/height flags the user set explicitly.
func loadConfig(cmd *cobra.Command, opts *configOptions) (pinchzoom.Config, error) {
	cfg := pinchzoom.DefaultConfig(opts.width, opts.height)

	if opts.path != "" {
		if _, err := toml.DecodeFile(opts.path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", opts.path, err)
		}
	}
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("load config from environment: %w", err)
	}
	if cmd != nil {
		flags := cmd.Flags()
		if flags.Changed("width") {
			cfg.Width = opts.width
		}
		if flags.Changed("height") {
			cfg.Height = opts.height
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// configCommand prints the effective config as TOML.
func (c *CLI) configCommand(opts *configOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective viewport config",
		Long: `Print the viewport config after applying defaults, the --config file,
PINCHZOOM_* environment variables and the --width/--height flags.

The output is valid TOML and can be saved as a starting point for --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			if err := toml.NewEncoder(c.out).Encode(cfg); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return nil
		},
	}
}
