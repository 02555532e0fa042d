package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcpstack/tool-bootstrap/internal/cmdtypes"
	"github.com/mcpstack/tool-bootstrap/internal/cmdutil"
	"github.com/mcpstack/tool-bootstrap/internal/doctor"
	"github.com/mcpstack/tool-bootstrap/internal/output"
)

// doctorOptions holds the flags for the doctor command.
type doctorOptions struct {
	output cmdutil.OutputFlags
}

// NewDoctorCmd creates the doctor command.
func NewDoctorCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &doctorOptions{}

	c := &cobra.Command{
		Use:   "doctor",
		Short: "Report project health",
		Long: `Report the mcpstack_* package directories under src/, whether
pyproject.toml declares the mcpstack.tools entry point, the project version,
the CI workflows and the placeholder map. Doctor never changes the tree.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runDoctor(c, cfg, opts)
		},
	}

	opts.output.AddTo(c)

	return c
}

func runDoctor(c *cobra.Command, cfg *cmdtypes.GlobalConfig, opts *doctorOptions) error {
	format, err := opts.output.Parse()
	if err != nil {
		return cmdutil.Exit(err)
	}

	ws, err := cfg.Workspace(c.OutOrStdout(), "doctor")
	if err != nil {
		return cmdutil.Exit(err)
	}

	report, err := doctor.Run(ws)
	if err != nil {
		return cmdutil.Exit(err)
	}
	for _, p := range report.Problems {
		ws.Log.Warn(p)
	}

	if format != output.FormatTable {
		return cmdutil.Exit(output.WriteStructured(ws.Out, format, report))
	}

	checks := output.NewTable("CHECK", "RESULT")
	checks.Row("Package dirs", orNone(strings.Join(report.PackageDirs, ", ")))
	checks.Row("Entry point", entryPointResult(report))
	checks.Row("Project", projectResult(report.Project))
	checks.Row("Workflows", workflowsResult(report.Workflows))
	fmt.Fprintln(ws.Out, checks.String())

	placeholders := output.NewTable("FIELD", "PLACEHOLDER")
	for _, m := range report.Placeholders {
		placeholders.Row(string(m.Field), m.Placeholder)
	}
	fmt.Fprintln(ws.Out, output.Panel("Placeholder map", placeholders.String()))
	return nil
}

func entryPointResult(r doctor.Report) string {
	if !r.MetadataFound {
		return output.StatusMissing
	}
	if !r.Project.EntryPointDeclared {
		return "not declared (" + doctor.EntryPointHeader + ")"
	}
	targets := make([]string, len(r.Project.EntryPoints))
	for i, ep := range r.Project.EntryPoints {
		targets[i] = ep.Name + " = " + ep.Target
	}
	return "declared " + orNone(strings.Join(targets, ", "))
}

func projectResult(p doctor.ProjectInfo) string {
	if p.Name == "" && p.Version == "" {
		return output.StatusMissing
	}
	res := p.Name + " " + p.Version
	if p.Version != "" && !p.VersionValid {
		res += " (invalid version)"
	}
	return res
}

func workflowsResult(workflows []doctor.Workflow) string {
	parts := make([]string, len(workflows))
	for i, w := range workflows {
		parts[i] = fmt.Sprintf("%s [%s]", w.File, strings.Join(w.Jobs, ", "))
	}
	return orNone(strings.Join(parts, ", "))
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
