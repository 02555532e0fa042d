package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcpstack/tool-bootstrap/internal/apply"
	"github.com/mcpstack/tool-bootstrap/internal/cmdtypes"
	"github.com/mcpstack/tool-bootstrap/internal/cmdutil"
	"github.com/mcpstack/tool-bootstrap/internal/names"
	"github.com/mcpstack/tool-bootstrap/internal/output"
	"github.com/mcpstack/tool-bootstrap/internal/workspace"
)

// previewOptions holds the flags for the preview command.
type previewOptions struct {
	names  cmdutil.NameFlags
	config cmdutil.ConfigFlags
	files  bool
}

// NewPreviewCmd creates the preview command.
func NewPreviewCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &previewOptions{}

	c := &cobra.Command{
		Use:   "preview",
		Short: "Show the derived names and a rewritten sample file",
		Long: `Show the names apply would use and the template's tool module as it
would look after the rewrite. Nothing on disk is changed.

With --files, every file apply would change is listed as well.

Examples:
  # Preview the stored names
  mcpstack-tool preview

  # Preview a different slug, ignoring stored names
  mcpstack-tool preview -s weather --no-config --files`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runPreview(c, cfg, opts)
		},
	}

	opts.names.AddTo(c)
	opts.config.AddTo(c)
	c.Flags().BoolVar(&opts.files, "files", false, "List the files apply would change")

	return c
}

func runPreview(c *cobra.Command, cfg *cmdtypes.GlobalConfig, opts *previewOptions) error {
	ws, err := cfg.Workspace(c.OutOrStdout(), "preview")
	if err != nil {
		return cmdutil.Exit(err)
	}

	n, err := cmdutil.ResolveNames(ws, opts.names, opts.config.Enabled())
	if err != nil {
		return cmdutil.Exit(err)
	}
	return cmdutil.Exit(writePreview(ws, n, opts.files))
}

// writePreview renders n, the rewritten sample file and, when files is set,
// the dry-run file list.
func writePreview(ws *workspace.Workspace, n names.NameSet, files bool) error {
	fmt.Fprintln(ws.Out, cmdutil.NamesPanel("Derived names", n))

	engine := apply.NewEngine(ws)
	sample, ok, err := engine.Sample(n)
	if err != nil {
		return fmt.Errorf("reading %s: %w", apply.SampleFile, err)
	}
	if ok {
		fmt.Fprintln(ws.Out, output.Panel(sample.Path+" (after rewrite)", sample.Rewritten))
	} else {
		ws.Log.Warn("sample file not found", "path", apply.SampleFile)
	}

	if !files {
		return nil
	}

	stats, err := engine.Plan(n)
	if err != nil {
		return err
	}
	cmdutil.WriteStats(ws.Out, stats)
	fmt.Fprintln(ws.Out, output.StyleSummary.Render(
		fmt.Sprintf("%d of %d files would change", stats.FilesChanged, stats.FilesScanned)))
	return nil
}
