// Package doctor implements the read-only diagnostics: placeholder survival
// and the project health report.
package doctor

import (
	"fmt"
	"os"
	"strings"

	"github.com/mcpstack/tool-bootstrap/internal/names"
	"github.com/mcpstack/tool-bootstrap/internal/walker"
	"github.com/mcpstack/tool-bootstrap/internal/workspace"
)

// PlaceholderStatus records whether one placeholder still occurs in the tree.
type PlaceholderStatus struct {
	Field       names.Field `json:"field"`
	Placeholder string      `json:"placeholder"`
	Found       bool        `json:"found"`
	// FirstFile is the first file, relative to the root, containing it.
	FirstFile string `json:"first_file,omitempty"`
}

// PlaceholderReport is the result of CheckPlaceholders.
type PlaceholderReport struct {
	FilesScanned int                 `json:"files_scanned"`
	Placeholders []PlaceholderStatus `json:"placeholders"`
	// Missing lists placeholders with no occurrence, in field order.
	Missing []string `json:"missing"`
}

// OK reports whether every placeholder is still present.
func (r PlaceholderReport) OK() bool {
	return len(r.Missing) == 0
}

// CheckPlaceholders scans the walked files for each placeholder token by
// plain substring search. The walk stops as soon as all are found.
func CheckPlaceholders(ws *workspace.Workspace) (PlaceholderReport, error) {
	fields := names.Fields()
	statuses := make([]PlaceholderStatus, len(fields))
	for i, f := range fields {
		statuses[i] = PlaceholderStatus{Field: f, Placeholder: names.Placeholder(f)}
	}

	report := PlaceholderReport{Missing: []string{}}
	remaining := len(statuses)

	w := walker.New(ws.Root, walker.WithLogger(ws.Log))
	for path := range w.Files() {
		data, err := os.ReadFile(path)
		if err != nil {
			return report, fmt.Errorf("reading %s: %w", ws.Rel(path), err)
		}
		report.FilesScanned++

		text := string(data)
		for i := range statuses {
			s := &statuses[i]
			if s.Found || !strings.Contains(text, s.Placeholder) {
				continue
			}
			s.Found = true
			s.FirstFile = ws.Rel(path)
			remaining--
		}
		if remaining == 0 {
			break
		}
	}

	for _, s := range statuses {
		if !s.Found {
			report.Missing = append(report.Missing, s.Placeholder)
		}
	}
	report.Placeholders = statuses
	return report, nil
}
