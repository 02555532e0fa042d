// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcpstack/tool-bootstrap/internal/cmdtypes"
	"github.com/mcpstack/tool-bootstrap/internal/config"
	"github.com/mcpstack/tool-bootstrap/internal/output"
	"github.com/mcpstack/tool-bootstrap/internal/prompt"
	"github.com/mcpstack/tool-bootstrap/internal/workspace"
)

// Option customizes the root command.
type Option func(*cmdtypes.GlobalConfig)

// WithPrompter replaces the terminal prompter, e.g. with a prompt.Scripted
// in tests.
func WithPrompter(p prompt.Prompter) Option {
	return func(cfg *cmdtypes.GlobalConfig) {
		cfg.Prompter = p
	}
}

// NewRootCmd creates the root command for the mcpstack-tool CLI.
func NewRootCmd(opts ...Option) *cobra.Command {
	cfg := &cmdtypes.GlobalConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var timestamps bool

	rootCmd := &cobra.Command{
		Use:   "mcpstack-tool",
		Short: "Bootstrap an MCPStack tool from the template",
		Long: `mcpstack-tool turns the MCPStack tool template into your own tool.

It rewrites the template's placeholder names (your_tool_name, YourTool,
mcpstack_your_tool_name, mcpstack-your-tool-name, MCP_YOUR_TOOL_NAME) into
the names you choose and moves the package directory to match.

Typical flow:
  mcpstack-tool init       # choose and store names
  mcpstack-tool preview    # see what the names look like
  mcpstack-tool apply      # rewrite the tree
  mcpstack-tool validate   # confirm no placeholder survived`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd, cfg, timestamps)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfg.RootFlag, "root", "",
		"Project root (env: MCPSTACK_ROOT, default: nearest directory with pyproject.toml)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false,
		"Enable verbose output (env: MCPSTACK_VERBOSE)")
	rootCmd.PersistentFlags().BoolVar(&timestamps, "timestamps", false,
		"Show timestamps in log output (env: MCPSTACK_TIMESTAMPS)")

	rootCmd.AddCommand(
		NewInitCmd(cfg),
		NewPreviewCmd(cfg),
		NewApplyCmd(cfg),
		NewValidateCmd(cfg),
		NewResetCmd(cfg),
		NewDoctorCmd(cfg),
		NewNewCmd(cfg),
		NewVersionCmd(cfg),
	)

	return rootCmd
}

// initializeGlobals sets up logging and resolves the project root.
func initializeGlobals(cmd *cobra.Command, cfg *cmdtypes.GlobalConfig, timestamps bool) error {
	settings := config.NewLoader().Load()

	logCfg := output.LogConfig{
		Verbose: cfg.Verbose || settings.Verbose,
		Writer:  cmd.ErrOrStderr(),
	}
	// Resolve timestamps: flag (if explicitly set) > env > default (off)
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestamps)
	} else {
		logCfg.Timestamps = settings.Timestamps
	}
	output.SetupLogging(logCfg)
	cfg.Verbose = logCfg.Verbose

	wd, err := os.Getwd()
	if err != nil {
		return &cmdtypes.ExitError{Code: cmdtypes.ExitGeneralError, Err: fmt.Errorf("getting working directory: %w", err)}
	}
	detected, err := workspace.FindRoot(wd)
	if err != nil {
		return &cmdtypes.ExitError{Code: cmdtypes.ExitGeneralError, Err: err}
	}

	cfg.Root = config.ResolveRoot(config.ResolveRootOptions{
		FlagValue: cfg.RootFlag,
		EnvValue:  settings.Root,
		Detected:  detected,
	})
	config.LogResolvedValues(output.Logger(), []config.ResolvedValue{cfg.Root})

	return nil
}
