package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcpstack/tool-bootstrap/internal/cmdtypes"
	"github.com/mcpstack/tool-bootstrap/internal/cmdutil"
	"github.com/mcpstack/tool-bootstrap/internal/output"
	"github.com/mcpstack/tool-bootstrap/internal/scaffold"
)

// resetOptions holds the flags for the reset command.
type resetOptions struct {
	hard bool
}

// NewResetCmd creates the reset command.
func NewResetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &resetOptions{}

	c := &cobra.Command{
		Use:   "reset",
		Short: "Restore the template from scripts/scaffold",
		Long: `Restore src/, tests/, pyproject.toml and the README from the pristine
copy under scripts/scaffold. Without --hard nothing is changed.

Members missing from the scaffold are skipped with a warning and the
current copy is kept. A missing scripts/scaffold is an error (exit 5).`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runReset(c, cfg, opts)
		},
	}

	c.Flags().BoolVar(&opts.hard, "hard", false, "Overwrite the tree from the scaffold")

	return c
}

func runReset(c *cobra.Command, cfg *cmdtypes.GlobalConfig, opts *resetOptions) error {
	ws, err := cfg.Workspace(c.OutOrStdout(), "reset")
	if err != nil {
		return cmdutil.Exit(err)
	}

	if !opts.hard {
		fmt.Fprintln(ws.Out, "Nothing changed. Use 'git checkout -- src tests' or 'mcpstack-tool reset --hard'.")
		return nil
	}

	report, err := scaffold.NewResetter(ws).Reset(true)
	for _, o := range report.Outcomes {
		if o.Restored {
			fmt.Fprintln(ws.Out, output.FormatFileLine(o.Path, output.StatusRestored))
		} else {
			fmt.Fprintln(ws.Out, output.FormatFileLine(string(o.Member), output.StatusSkipped))
		}
	}
	if err != nil {
		return cmdutil.Exit(err)
	}

	if report.Partial() {
		ws.Log.Warn("reset partial", "skipped", len(report.Skipped()))
		return nil
	}
	fmt.Fprintln(ws.Out, output.FormatCheckmark("Reset complete"))
	return nil
}
