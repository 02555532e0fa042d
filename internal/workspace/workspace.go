// Package workspace holds the explicit context every operation runs against:
// the project root, the well-known paths beneath it and the output sinks.
package workspace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/mcpstack/tool-bootstrap/internal/names"
)

// Well-known names relative to the project root.
const (
	SrcDir       = "src"
	TestsDir     = "tests"
	MetadataFile = "pyproject.toml"
	ConfigFile   = ".mcpstack-tool.json"
	ScaffoldDir  = "scripts/scaffold"
	WorkflowsDir = ".github/workflows"
)

// ReadmeCandidates lists README file names in lookup order.
var ReadmeCandidates = []string{"README.md", "README.rst"}

// Workspace is the project an operation acts on.
type Workspace struct {
	// Root is the absolute project root.
	Root string

	// Out receives user-facing output (reports, previews).
	Out io.Writer

	// Log receives diagnostics.
	Log *log.Logger
}

// New creates a Workspace rooted at root. Relative roots are made absolute.
func New(root string, out io.Writer, logger *log.Logger) (*Workspace, error) {
	expanded, err := ExpandPath(root)
	if err != nil {
		return nil, fmt.Errorf("expanding root %q: %w", root, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return nil, fmt.Errorf("resolving root %q: %w", root, err)
	}
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Workspace{Root: abs, Out: out, Log: logger}, nil
}

// Path joins elem onto the root.
func (w *Workspace) Path(elem ...string) string {
	return filepath.Join(append([]string{w.Root}, elem...)...)
}

// Rel returns path relative to the root, in slash form. Paths outside the
// root are returned unchanged.
func (w *Workspace) Rel(path string) string {
	rel, err := filepath.Rel(w.Root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

// SrcDir returns the source root.
func (w *Workspace) SrcDir() string { return w.Path(SrcDir) }

// TestsDir returns the tests root.
func (w *Workspace) TestsDir() string { return w.Path(TestsDir) }

// MetadataPath returns the project metadata file path.
func (w *Workspace) MetadataPath() string { return w.Path(MetadataFile) }

// ConfigPath returns the stored-names config file path.
func (w *Workspace) ConfigPath() string { return w.Path(ConfigFile) }

// ScaffoldDir returns the pristine scaffold root.
func (w *Workspace) ScaffoldDir() string { return w.Path(filepath.FromSlash(ScaffoldDir)) }

// WorkflowsDir returns the CI workflow directory.
func (w *Workspace) WorkflowsDir() string { return w.Path(filepath.FromSlash(WorkflowsDir)) }

// PackageDir returns src/<pkg>.
func (w *Workspace) PackageDir(pkg string) string { return w.Path(SrcDir, pkg) }

// PlaceholderPackageDir returns the package directory of the pristine template.
func (w *Workspace) PlaceholderPackageDir() string {
	return w.PackageDir(names.PlaceholderPackageName)
}

// ReadmePath returns the first README under dir that exists, and false if
// none does.
func ReadmePath(dir string) (string, bool) {
	for _, name := range ReadmeCandidates {
		p := filepath.Join(dir, name)
		if isFile(p) {
			return p, true
		}
	}
	return "", false
}

// FindRoot walks upward from start looking for the project metadata file and
// returns the first directory containing it. When none is found the
// absolute start directory is returned.
func FindRoot(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	dir := abs
	for {
		if isFile(filepath.Join(dir, MetadataFile)) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return abs, nil
		}
		dir = parent
	}
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path is an existing directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
