// Package apply rewrites a template tree in place for a NameSet and
// relocates the placeholder package directory.
package apply

import (
	"fmt"
	"os"
	"path/filepath"

	oerrors "github.com/mcpstack/tool-bootstrap/internal/errors"
	"github.com/mcpstack/tool-bootstrap/internal/names"
	"github.com/mcpstack/tool-bootstrap/internal/rewrite"
	"github.com/mcpstack/tool-bootstrap/internal/walker"
	"github.com/mcpstack/tool-bootstrap/internal/workspace"
)

// Stats describes what a pass changed, or would change in a dry run.
type Stats struct {
	// FilesScanned counts every enumerated file.
	FilesScanned int `json:"files_scanned"`

	// FilesChanged counts files whose content differed after rewriting.
	FilesChanged int `json:"files_changed"`

	// ChangedFiles lists changed files relative to the root, in walk order.
	ChangedFiles []string `json:"changed_files"`

	// PackageMoved is true when the placeholder package directory was relocated.
	PackageMoved bool `json:"package_moved"`

	// NewPackagePath is the package directory relative to the root after the
	// pass. Empty when no package directory was relocated.
	NewPackagePath string `json:"new_package_path,omitempty"`
}

// Result is the outcome of Apply. An aborted result carries zero Stats and
// means nothing on disk was touched.
type Result struct {
	Applied bool
	Stats   Stats
}

// Aborted reports whether the apply was refused for lack of confirmation.
func (r Result) Aborted() bool {
	return !r.Applied
}

// Engine applies NameSets to a workspace.
type Engine struct {
	ws *workspace.Workspace
}

// NewEngine creates an Engine for ws.
func NewEngine(ws *workspace.Workspace) *Engine {
	return &Engine{ws: ws}
}

// Apply rewrites every walked file and then relocates the package directory.
// Unless confirmed is true nothing is touched and an aborted Result is
// returned. Invalid names are rejected before any write.
//
// The two phases are sequential and not transactional: an I/O error stops
// the pass and the returned Stats describe what was already written.
func (e *Engine) Apply(n names.NameSet, confirmed bool) (Result, error) {
	if err := check(n); err != nil {
		return Result{}, err
	}
	if !confirmed {
		e.ws.Log.Debug("apply not confirmed, nothing changed")
		return Result{}, nil
	}

	stats, err := e.run(n, true)
	return Result{Applied: true, Stats: stats}, err
}

// Plan reports what Apply would change without writing anything. It runs the
// same rewrite code path as Apply.
func (e *Engine) Plan(n names.NameSet) (Stats, error) {
	if err := check(n); err != nil {
		return Stats{}, err
	}
	return e.run(n, false)
}

func check(n names.NameSet) error {
	if err := names.Validate(n); err != nil {
		return oerrors.NewValidationError(err.Error(), "", "fix the names above and retry")
	}
	if re := rewrite.Reentrant(n); len(re) > 0 {
		return oerrors.NewValidationError(re[0].Error(), string(re[0].Field),
			"choose a value that does not start with a template placeholder")
	}
	return nil
}

func (e *Engine) run(n names.NameSet, write bool) (Stats, error) {
	plan := rewrite.NewPlan(n)
	stats := Stats{ChangedFiles: []string{}}

	w := walker.New(e.ws.Root, walker.WithLogger(e.ws.Log))
	for path := range w.Files() {
		stats.FilesScanned++

		changed, err := rewriteFile(path, plan, write)
		if err != nil {
			return stats, fmt.Errorf("rewriting %s: %w", e.ws.Rel(path), err)
		}
		if !changed {
			continue
		}
		stats.FilesChanged++
		stats.ChangedFiles = append(stats.ChangedFiles, e.ws.Rel(path))
		e.ws.Log.Debug("file rewritten", "path", e.ws.Rel(path), "dry_run", !write)
	}

	moved, dest, err := e.relocate(n.PackageName, write)
	if err != nil {
		return stats, err
	}
	if moved {
		stats.PackageMoved = true
		stats.NewPackagePath = e.ws.Rel(dest)
	}
	return stats, nil
}

// rewriteFile reports whether path's content changes under plan, writing
// the new content back when write is true.
func rewriteFile(path string, plan rewrite.Plan, write bool) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	before := string(data)
	after := plan.Apply(before)
	if after == before {
		return false, nil
	}
	if write {
		if err := os.WriteFile(path, []byte(after), info.Mode().Perm()); err != nil {
			return false, err
		}
	}
	return true, nil
}

// relocate moves src/<placeholder package> to src/<pkg>. It is a no-op when
// the placeholder directory is absent or pkg is the placeholder.
func (e *Engine) relocate(pkg string, write bool) (bool, string, error) {
	src := e.ws.PlaceholderPackageDir()
	dest := e.ws.PackageDir(pkg)

	if pkg == names.PlaceholderPackageName || !workspace.IsDir(src) {
		return false, "", nil
	}
	if workspace.Exists(dest) {
		return false, "", oerrors.NewConflictError(
			fmt.Sprintf("cannot move %s: %s already exists", e.ws.Rel(src), e.ws.Rel(dest)),
			e.ws.Rel(dest),
			"remove or rename the existing package directory, or run 'reset --hard'",
		)
	}
	if !write {
		return true, dest, nil
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return false, "", fmt.Errorf("creating %s: %w", e.ws.Rel(filepath.Dir(dest)), err)
	}
	if err := os.Rename(src, dest); err != nil {
		return false, "", fmt.Errorf("moving package directory: %w", err)
	}
	e.ws.Log.Debug("package moved", "from", e.ws.Rel(src), "to", e.ws.Rel(dest))
	return true, dest, nil
}
