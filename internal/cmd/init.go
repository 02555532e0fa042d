package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/mcpstack/tool-bootstrap/internal/cmdtypes"
	"github.com/mcpstack/tool-bootstrap/internal/cmdutil"
	"github.com/mcpstack/tool-bootstrap/internal/config"
	"github.com/mcpstack/tool-bootstrap/internal/names"
	"github.com/mcpstack/tool-bootstrap/internal/output"
	"github.com/mcpstack/tool-bootstrap/internal/prompt"
	"github.com/mcpstack/tool-bootstrap/internal/workspace"
)

// Follow-up questions asked after an interactive init.
const (
	titleRunPreview = "Run a preview now?"
	titleApplyNow   = "Apply changes now?"
)

// initOptions holds the flags for the init command.
type initOptions struct {
	names          cmdutil.NameFlags
	nonInteractive bool
}

// NewInitCmd creates the init command.
func NewInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &initOptions{}

	c := &cobra.Command{
		Use:   "init",
		Short: "Choose the tool names and store them",
		Long: `Choose the five tool names and store them in .mcpstack-tool.json.

On a terminal each name is asked for, defaulting to the flag value, then the
stored value, then a suggestion derived from the slug. Without a terminal, or
with --non-interactive, names resolve per field as flag > stored > default.

After an interactive init you are offered a preview and an apply.

Examples:
  # Ask for every name
  mcpstack-tool init

  # Store names without prompting
  mcpstack-tool init --non-interactive -s weather -c Weather`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, cfg, opts)
		},
	}

	opts.names.AddTo(c)
	c.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false,
		"Do not prompt; use flags, stored names and defaults")

	return c
}

func runInit(c *cobra.Command, cfg *cmdtypes.GlobalConfig, opts *initOptions) error {
	ws, err := cfg.Workspace(c.OutOrStdout(), "init")
	if err != nil {
		return cmdutil.Exit(err)
	}

	store, err := cmdutil.OpenStore(ws)
	if err != nil {
		return cmdutil.Exit(err)
	}
	loaded := store.Load()
	if !loaded.Present {
		ws.Log.Debug("no stored names", "reason", loaded.Reason)
	}
	stored := loaded.Names()

	p := cfg.Prompt()
	interactive := !opts.nonInteractive && prompt.Interactive(p)

	var n names.NameSet
	if interactive {
		n, err = prompt.AskNames(p, opts.names.Names, stored)
		if errors.Is(err, prompt.ErrCancelled) {
			ws.Log.Info("init cancelled, nothing saved")
			return nil
		}
		if err != nil {
			return cmdutil.Exit(err)
		}
	} else {
		var values []config.ResolvedValue
		n, values = config.ResolveNames(config.NameInputs{Flags: opts.names.Names, Stored: stored})
		config.LogResolvedValues(ws.Log, values)
	}

	if err := cmdutil.CheckNames(ws, n); err != nil {
		return cmdutil.Exit(err)
	}

	if stored != nil && *stored != n {
		writeNamesDiff(ws, *stored, n)
	}
	if err := store.Save(n); err != nil {
		return cmdutil.Exit(err)
	}

	fmt.Fprintln(ws.Out, cmdutil.NamesPanel("Names", n))
	fmt.Fprintln(ws.Out, output.FormatCheckmark("Saved "+output.StyleNoun.Render(ws.Rel(store.Path()))))

	if !interactive {
		return nil
	}

	preview, err := prompt.ConfirmOrDecline(p, titleRunPreview, true)
	if err != nil {
		return cmdutil.Exit(err)
	}
	if preview {
		if err := writePreview(ws, n, false); err != nil {
			return cmdutil.Exit(err)
		}
	}

	applyNow, err := prompt.ConfirmOrDecline(p, titleApplyNow, false)
	if err != nil {
		return cmdutil.Exit(err)
	}
	if !applyNow {
		fmt.Fprintln(ws.Out, output.StyleDim.Render("Run 'mcpstack-tool apply' when ready."))
		return nil
	}
	return cmdutil.Exit(applyNames(ws, n, true))
}

// writeNamesDiff shows how the stored names change.
func writeNamesDiff(ws *workspace.Workspace, from, to names.NameSet) {
	before, err := yaml.Marshal(config.Config{Names: from})
	if err != nil {
		ws.Log.Debug("encoding stored names", "error", err)
		return
	}
	after, err := yaml.Marshal(config.Config{Names: to})
	if err != nil {
		ws.Log.Debug("encoding new names", "error", err)
		return
	}

	diff, err := output.DiffYAML(before, after, output.UseColor(ws.Out))
	if err != nil {
		ws.Log.Debug("diffing names", "error", err)
		return
	}
	if diff == "" {
		return
	}
	fmt.Fprintln(ws.Out, output.StyleAction.Render("Updating stored names:"))
	fmt.Fprintln(ws.Out, output.IndentDiff(diff, "  "))
}
