package cmdutil

import (
	"fmt"
	"io"

	"github.com/mcpstack/tool-bootstrap/internal/apply"
	"github.com/mcpstack/tool-bootstrap/internal/names"
	"github.com/mcpstack/tool-bootstrap/internal/output"
)

// NamesPanel renders n as a titled field/value table.
func NamesPanel(title string, n names.NameSet) string {
	fields := names.Fields()
	keys := make([]string, len(fields))
	values := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = string(f)
		values[i] = n.Get(f)
	}
	return output.Panel(title, output.NamesTable(keys, values))
}

// WriteStats writes one line per changed file followed by the package move.
func WriteStats(w io.Writer, stats apply.Stats) {
	for _, path := range stats.ChangedFiles {
		fmt.Fprintln(w, output.FormatFileLine(path, output.StatusChanged))
	}
	if stats.PackageMoved {
		fmt.Fprintln(w, output.FormatFileLine(stats.NewPackagePath, output.StatusMoved))
	}
}
