package doctor

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mcpstack/tool-bootstrap/internal/names"
	"github.com/mcpstack/tool-bootstrap/internal/workspace"
)

// PlaceholderMapping pairs a field with its template token.
type PlaceholderMapping struct {
	Field       names.Field `json:"field"`
	Placeholder string      `json:"placeholder"`
}

// Report is the doctor health report.
type Report struct {
	// PackageDirs are mcpstack_* directories under src/, sorted.
	PackageDirs []string `json:"package_dirs"`

	// MetadataFound is false when pyproject.toml is absent.
	MetadataFound bool        `json:"metadata_found"`
	Project       ProjectInfo `json:"project"`

	Workflows    []Workflow           `json:"workflows"`
	Placeholders []PlaceholderMapping `json:"placeholders"`

	// Problems are non-fatal findings (unparsable files, missing metadata).
	Problems []string `json:"problems"`
}

// Run builds the health report. It never mutates the tree.
func Run(ws *workspace.Workspace) (Report, error) {
	r := Report{
		PackageDirs:  []string{},
		Workflows:    []Workflow{},
		Placeholders: PlaceholderMap(),
		Problems:     []string{},
		Project:      ProjectInfo{EntryPoints: []EntryPoint{}},
	}

	dirs, err := packageDirs(ws.SrcDir())
	if err != nil {
		return r, err
	}
	r.PackageDirs = dirs

	data, err := os.ReadFile(ws.MetadataPath())
	switch {
	case errors.Is(err, fs.ErrNotExist):
		r.Problems = append(r.Problems, workspace.MetadataFile+" not found")
	case err != nil:
		return r, err
	default:
		r.MetadataFound = true
		info, perr := ParseProject(data)
		r.Project = info
		if perr != nil {
			r.Problems = append(r.Problems, perr.Error())
		} else if info.Version != "" && !info.VersionValid {
			r.Problems = append(r.Problems, "project.version "+info.Version+" is not a semantic version")
		}
	}

	workflows, problems, err := ReadWorkflows(ws.WorkflowsDir())
	if err != nil {
		return r, err
	}
	if workflows != nil {
		r.Workflows = workflows
	}
	for _, p := range problems {
		r.Problems = append(r.Problems, filepath.ToSlash(workspace.WorkflowsDir)+"/"+p)
	}

	return r, nil
}

// PlaceholderMap returns the field to placeholder mapping in field order.
func PlaceholderMap() []PlaceholderMapping {
	fields := names.Fields()
	out := make([]PlaceholderMapping, len(fields))
	for i, f := range fields {
		out[i] = PlaceholderMapping{Field: f, Placeholder: names.Placeholder(f)}
	}
	return out
}

func packageDirs(src string) ([]string, error) {
	entries, err := os.ReadDir(src)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	dirs := []string{}
	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(e.Name(), names.PackagePrefix) {
			dirs = append(dirs, e.Name())
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}
