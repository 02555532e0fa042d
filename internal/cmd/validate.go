package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcpstack/tool-bootstrap/internal/cmdtypes"
	"github.com/mcpstack/tool-bootstrap/internal/cmdutil"
	"github.com/mcpstack/tool-bootstrap/internal/doctor"
	"github.com/mcpstack/tool-bootstrap/internal/output"
)

// validateOptions holds the flags for the validate command.
type validateOptions struct {
	output cmdutil.OutputFlags
}

// NewValidateCmd creates the validate command.
func NewValidateCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &validateOptions{}

	c := &cobra.Command{
		Use:   "validate",
		Short: "Report which template placeholders remain",
		Long: `Scan src/, tests/ and pyproject.toml for each template placeholder.

Before apply every placeholder should be present; after apply none should.
The report lists every placeholder that no longer occurs. Validate never
changes the tree and always exits 0.

Examples:
  mcpstack-tool validate
  mcpstack-tool validate -o json`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runValidate(c, cfg, opts)
		},
	}

	opts.output.AddTo(c)

	return c
}

func runValidate(c *cobra.Command, cfg *cmdtypes.GlobalConfig, opts *validateOptions) error {
	format, err := opts.output.Parse()
	if err != nil {
		return cmdutil.Exit(err)
	}

	ws, err := cfg.Workspace(c.OutOrStdout(), "validate")
	if err != nil {
		return cmdutil.Exit(err)
	}

	report, err := doctor.CheckPlaceholders(ws)
	if err != nil {
		return cmdutil.Exit(err)
	}

	if format != output.FormatTable {
		return cmdutil.Exit(output.WriteStructured(ws.Out, format, report))
	}

	tbl := output.NewTable("FIELD", "PLACEHOLDER", "STATUS", "FIRST FILE").WithStatusColumn(2)
	for _, s := range report.Placeholders {
		status := output.StatusValid
		if !s.Found {
			status = output.StatusMissing
		}
		tbl.Row(string(s.Field), s.Placeholder, status, s.FirstFile)
	}
	fmt.Fprintln(ws.Out, tbl.String())

	if report.OK() {
		fmt.Fprintln(ws.Out, output.FormatCheckmark("All placeholders present"))
		return nil
	}
	fmt.Fprintln(ws.Out, output.FormatCross(
		fmt.Sprintf("%d of %d placeholders missing", len(report.Missing), len(report.Placeholders))))
	for _, p := range report.Missing {
		fmt.Fprintln(ws.Out, "  - "+p)
	}
	return nil
}
