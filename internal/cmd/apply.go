package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcpstack/tool-bootstrap/internal/apply"
	"github.com/mcpstack/tool-bootstrap/internal/cmdtypes"
	"github.com/mcpstack/tool-bootstrap/internal/cmdutil"
	"github.com/mcpstack/tool-bootstrap/internal/names"
	"github.com/mcpstack/tool-bootstrap/internal/output"
	"github.com/mcpstack/tool-bootstrap/internal/prompt"
	"github.com/mcpstack/tool-bootstrap/internal/workspace"
)

// nextSteps are printed after a successful apply.
var nextSteps = []string{
	"uv lock && uv sync",
	"uv run pytest -q",
	"uv run mcpstack list-tools",
}

// applyOptions holds the flags for the apply command.
type applyOptions struct {
	names  cmdutil.NameFlags
	config cmdutil.ConfigFlags
	yes    bool
}

// NewApplyCmd creates the apply command.
func NewApplyCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &applyOptions{}

	c := &cobra.Command{
		Use:   "apply",
		Short: "Rewrite the template with the chosen names",
		Long: `Rewrite every file under src/ and tests/ plus pyproject.toml, replacing
the template placeholders with the resolved names, then move
src/mcpstack_your_tool_name to src/<package-name>.

Apply asks for confirmation unless --yes is given. Declining changes
nothing. Without a terminal and without --yes, apply declines.

Examples:
  # Apply the stored names
  mcpstack-tool apply --yes

  # Apply explicit names
  mcpstack-tool apply -s weather -c Weather -y`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runApply(c, cfg, opts)
		},
	}

	opts.names.AddTo(c)
	opts.config.AddTo(c)
	c.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Apply without asking for confirmation")

	return c
}

func runApply(c *cobra.Command, cfg *cmdtypes.GlobalConfig, opts *applyOptions) error {
	ws, err := cfg.Workspace(c.OutOrStdout(), "apply")
	if err != nil {
		return cmdutil.Exit(err)
	}

	n, err := cmdutil.ResolveNames(ws, opts.names, opts.config.Enabled())
	if err != nil {
		return cmdutil.Exit(err)
	}

	confirmed := opts.yes
	if !confirmed {
		fmt.Fprintln(ws.Out, cmdutil.NamesPanel("Names to apply", n))
		confirmed, err = prompt.ConfirmOrDecline(cfg.Prompt(),
			fmt.Sprintf("Rewrite %s with these names?", ws.Root), false)
		if err != nil {
			return cmdutil.Exit(err)
		}
	}

	return cmdutil.Exit(applyNames(ws, n, confirmed))
}

// applyNames runs the apply engine and reports the outcome.
func applyNames(ws *workspace.Workspace, n names.NameSet, confirmed bool) error {
	result, err := apply.NewEngine(ws).Apply(n, confirmed)
	if result.Applied {
		cmdutil.WriteStats(ws.Out, result.Stats)
	}
	if err != nil {
		return err
	}

	if result.Aborted() {
		fmt.Fprintln(ws.Out, "Aborted.")
		return nil
	}

	fmt.Fprintln(ws.Out, output.FormatCheckmark(
		fmt.Sprintf("Replacements applied in %d of %d files", result.Stats.FilesChanged, result.Stats.FilesScanned)))
	if result.Stats.PackageMoved {
		fmt.Fprintln(ws.Out, output.FormatCheckmark(
			"Moved package dir to "+output.StyleNoun.Render(result.Stats.NewPackagePath)))
	}

	fmt.Fprintln(ws.Out)
	fmt.Fprintln(ws.Out, output.StyleAction.Render("Next steps:"))
	for _, step := range nextSteps {
		fmt.Fprintln(ws.Out, "  "+step)
	}
	return nil
}
