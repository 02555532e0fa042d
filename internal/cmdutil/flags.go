// Package cmdutil provides shared command utilities. It centralizes flag
// group management, name resolution for commands and output helpers.
package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcpstack/tool-bootstrap/internal/names"
	"github.com/mcpstack/tool-bootstrap/internal/output"
)

// NameFlags holds the name override flags (init, preview, apply).
// Unset flags are empty strings.
type NameFlags struct {
	Names names.NameSet
}

// AddTo registers the name flags on the given cobra command.
func (f *NameFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Names.ToolSlug, "tool-slug", "s", "",
		"Tool slug, lower snake case (e.g. my_tool)")
	cmd.Flags().StringVarP(&f.Names.ClassName, "class-name", "c", "",
		"Tool class name, PascalCase (e.g. MyTool)")
	cmd.Flags().StringVarP(&f.Names.PackageName, "package-name", "p", "",
		"Python package name (default: mcpstack_<slug>)")
	cmd.Flags().StringVarP(&f.Names.DistName, "dist-name", "d", "",
		"Distribution name (default: mcpstack-<slug>)")
	cmd.Flags().StringVarP(&f.Names.EnvPrefix, "env-prefix", "e", "",
		"Environment variable prefix (default: MCP_<SLUG>)")
}

// ConfigFlags selects whether the stored config takes part in resolution
// (preview, apply).
type ConfigFlags struct {
	UseConfig bool
	NoConfig  bool
}

// AddTo registers the config flags on the given cobra command.
func (f *ConfigFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.UseConfig, "use-config", true,
		"Use names stored by 'init' as defaults")
	cmd.Flags().BoolVar(&f.NoConfig, "no-config", false,
		"Ignore names stored by 'init'")
}

// Enabled reports whether the stored config should be read.
func (f *ConfigFlags) Enabled() bool {
	return f.UseConfig && !f.NoConfig
}

// OutputFlags holds the report format flag (validate, doctor).
type OutputFlags struct {
	Format string
}

// AddTo registers the output flag on the given cobra command.
func (f *OutputFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Format, "output", "o", string(output.FormatTable),
		"Output format: "+strings.Join(output.ValidFormats(), ", "))
}

// Parse returns the selected format.
func (f *OutputFlags) Parse() (output.OutputFormat, error) {
	format, ok := output.ParseOutputFormat(f.Format)
	if !ok {
		return "", fmt.Errorf("invalid output format %q (valid: %s)",
			f.Format, strings.Join(output.ValidFormats(), ", "))
	}
	return format, nil
}
