package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/roach88/ordkey/internal/config"
)

// ConfigResult is the output of config commands.
type ConfigResult struct {
	Path   string         `json:"path"`
	Config *config.Config `json:"config"`
	Wrote  bool           `json:"wrote"`
}

func (r ConfigResult) String() string {
	if r.Wrote {
		return "wrote " + r.Path
	}
	data, err := yaml.Marshal(r.Config)
	if err != nil {
		return err.Error()
	}
	return strings.TrimSuffix(string(data), "\n")
}

// effectiveConfig returns the loaded config with explicit flags applied.
func (o *RootOptions) effectiveConfig() *config.Config {
	cfg := *o.Config
	cfg.Database = o.Database
	cfg.Format = o.Format
	return &cfg
}

// NewConfigCommand creates the config command group.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	opts := rootOpts

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or write the configuration file",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.formatter(cmd).Success(ConfigResult{Path: opts.ConfigPath, Config: opts.effectiveConfig()})
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to --config",
		Long: `Write the effective configuration (defaults, file, environment and
flags combined) to the path given by --config.

Examples:
  ordkey config init
  ordkey --db board.db --config ./ordkey.yaml config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.ConfigPath
			if _, err := os.Stat(path); err == nil && !force {
				return NewExitError(ExitFailure, fmt.Sprintf("config file %s already exists (use --force to overwrite)", path))
			}
			cfg := opts.effectiveConfig()
			if err := cfg.Save(path); err != nil {
				return WrapExitError(ExitCommandError, "failed to write config", err)
			}
			opts.Logger.Debug("config written", "path", path)
			return opts.formatter(cmd).Success(ConfigResult{Path: path, Config: cfg, Wrote: true})
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	cmd.AddCommand(show, initCmd)
	return cmd
}
