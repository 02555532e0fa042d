package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/mcpstack/tool-bootstrap/internal/workspace"
)

// scaffoldMembers are the template parts copied under scripts/scaffold.
var scaffoldMembers = []string{"src", "tests", "pyproject.toml", "README.md"}

// GenerateOptions configures project generation.
type GenerateOptions struct {
	// TargetDir is the directory to create the project in.
	TargetDir string

	// Force allows writing into a non-empty directory, overwriting files.
	Force bool

	// Logger receives debug output. Optional.
	Logger *log.Logger
}

// GenerateResult lists what Generate wrote.
type GenerateResult struct {
	TargetDir string
	// Files are written paths relative to TargetDir, scaffold copies included.
	Files []string
}

// Generator writes new projects from the embedded template.
type Generator struct {
	opts GenerateOptions
}

// NewGenerator creates a generator with the given options.
func NewGenerator(opts GenerateOptions) *Generator {
	return &Generator{opts: opts}
}

// Generate writes the template into TargetDir, plus a pristine copy of the
// restorable members under scripts/scaffold.
func (g *Generator) Generate() (*GenerateResult, error) {
	if err := g.checkTargetDir(); err != nil {
		return nil, err
	}

	files, err := ListFiles()
	if err != nil {
		return nil, fmt.Errorf("listing template: %w", err)
	}

	scaffold := filepath.FromSlash(workspace.ScaffoldDir)
	result := &GenerateResult{TargetDir: g.opts.TargetDir}

	for _, name := range files {
		if err := g.write(name, filepath.FromSlash(name)); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, name)
	}
	for _, name := range files {
		if !inScaffold(name) {
			continue
		}
		dest := filepath.Join(scaffold, filepath.FromSlash(name))
		if err := g.write(name, dest); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, filepath.ToSlash(dest))
	}

	return result, nil
}

func (g *Generator) write(name, rel string) error {
	data, err := ReadFile(name)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", name, err)
	}

	target := filepath.Join(g.opts.TargetDir, rel)
	if !g.opts.Force && workspace.Exists(target) {
		return fmt.Errorf("file %s already exists; use --force to overwrite", target)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", target, err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	if g.opts.Logger != nil {
		g.opts.Logger.Debug("created file", "path", filepath.ToSlash(rel))
	}
	return nil
}

func inScaffold(name string) bool {
	top := name
	for {
		dir := path.Dir(top)
		if dir == "." {
			break
		}
		top = dir
	}
	for _, m := range scaffoldMembers {
		if top == m {
			return true
		}
	}
	return false
}

// checkTargetDir accepts a missing or empty directory, or any directory
// when Force is set.
func (g *Generator) checkTargetDir() error {
	info, err := os.Stat(g.opts.TargetDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking target directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s exists and is not a directory", g.opts.TargetDir)
	}
	if g.opts.Force {
		return nil
	}

	entries, err := os.ReadDir(g.opts.TargetDir)
	if err != nil {
		return fmt.Errorf("reading target directory: %w", err)
	}
	if len(entries) > 0 {
		return fmt.Errorf("directory %s is not empty; use --force to write into it", g.opts.TargetDir)
	}
	return nil
}
