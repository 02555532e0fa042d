package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcpstack/tool-bootstrap/internal/cmdtypes"
	"github.com/mcpstack/tool-bootstrap/internal/cmdutil"
	"github.com/mcpstack/tool-bootstrap/internal/output"
	"github.com/mcpstack/tool-bootstrap/internal/templates"
	"github.com/mcpstack/tool-bootstrap/internal/workspace"
)

// newOptions holds the flags for the new command.
type newOptions struct {
	force bool
}

// NewNewCmd creates the new command.
func NewNewCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &newOptions{}

	c := &cobra.Command{
		Use:   "new <dir>",
		Short: "Create a fresh tool template in a directory",
		Long: `Write the MCPStack tool template into <dir>, together with a pristine
copy under scripts/scaffold for 'reset --hard'.

The directory must be empty or absent unless --force is given.

Examples:
  mcpstack-tool new ./weather-tool
  cd weather-tool && mcpstack-tool init`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runNew(c, args[0], opts)
		},
	}

	c.Flags().BoolVar(&opts.force, "force", false, "Write into a non-empty directory, overwriting files")

	return c
}

func runNew(c *cobra.Command, dir string, opts *newOptions) error {
	target, err := workspace.New(dir, c.OutOrStdout(), output.ScopedLogger("new"))
	if err != nil {
		return cmdutil.Exit(err)
	}

	result, err := templates.NewGenerator(templates.GenerateOptions{
		TargetDir: target.Root,
		Force:     opts.force,
		Logger:    target.Log,
	}).Generate()
	if err != nil {
		return cmdutil.Exit(err)
	}

	fmt.Fprintln(target.Out, output.FormatCheckmark(
		fmt.Sprintf("Created %d files in %s", len(result.Files), output.StyleNoun.Render(result.TargetDir))))
	fmt.Fprintln(target.Out)
	fmt.Fprintln(target.Out, output.StyleAction.Render("Next steps:"))
	fmt.Fprintf(target.Out, "  cd %s\n", dir)
	fmt.Fprintln(target.Out, "  mcpstack-tool init")
	return nil
}
