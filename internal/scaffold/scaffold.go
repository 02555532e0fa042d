// Package scaffold restores a rewritten tree from the pristine copy kept
// under scripts/scaffold.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	oerrors "github.com/mcpstack/tool-bootstrap/internal/errors"
	"github.com/mcpstack/tool-bootstrap/internal/fsutil"
	"github.com/mcpstack/tool-bootstrap/internal/workspace"
)

// Member is one restorable part of the tree.
type Member string

// Members restored by a hard reset, in order.
const (
	MemberSrc      Member = "src"
	MemberTests    Member = "tests"
	MemberMetadata Member = "pyproject.toml"
	MemberReadme   Member = "README"
)

// Members returns the restorable members in restore order.
func Members() []Member {
	return []Member{MemberSrc, MemberTests, MemberMetadata, MemberReadme}
}

// Outcome is the result of restoring one member.
type Outcome struct {
	Member   Member `json:"member"`
	Restored bool   `json:"restored"`
	// Path is the restored path relative to the root, when Restored.
	Path string `json:"path,omitempty"`
	// Reason says why the member was skipped.
	Reason string `json:"reason,omitempty"`
}

// Report summarizes a reset.
type Report struct {
	// Performed is false for the no-op (non-hard) reset.
	Performed bool      `json:"performed"`
	Outcomes  []Outcome `json:"outcomes"`
}

// Partial reports whether a performed reset skipped any member.
func (r Report) Partial() bool {
	if !r.Performed {
		return false
	}
	for _, o := range r.Outcomes {
		if !o.Restored {
			return true
		}
	}
	return false
}

// Skipped returns the members that were not restored.
func (r Report) Skipped() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if !o.Restored {
			out = append(out, o)
		}
	}
	return out
}

// Resetter restores a workspace from its scaffold.
type Resetter struct {
	ws *workspace.Workspace
}

// NewResetter creates a Resetter for ws.
func NewResetter(ws *workspace.Workspace) *Resetter {
	return &Resetter{ws: ws}
}

// Reset restores src/, tests/, the metadata file and the README from the
// scaffold. Without hard it changes nothing and returns a report with
// Performed false. A missing scaffold root is an error and nothing is
// changed; a missing member is skipped with a warning, leaving the current
// copy in place.
func (r *Resetter) Reset(hard bool) (Report, error) {
	if !hard {
		return Report{}, nil
	}

	scaffold := r.ws.ScaffoldDir()
	if !workspace.IsDir(scaffold) {
		return Report{}, oerrors.NewNotFoundError(
			"scaffold directory not found",
			r.ws.Rel(scaffold),
			"restore scripts/scaffold from version control, or use 'git checkout -- src tests'",
		)
	}

	report := Report{Performed: true}
	for _, m := range Members() {
		o, err := r.restore(scaffold, m)
		if err != nil {
			return report, err
		}
		if !o.Restored {
			r.ws.Log.Warn("scaffold member missing, skipped", "member", string(m), "reason", o.Reason)
		} else {
			r.ws.Log.Debug("restored from scaffold", "path", o.Path)
		}
		report.Outcomes = append(report.Outcomes, o)
	}
	return report, nil
}

func (r *Resetter) restore(scaffold string, m Member) (Outcome, error) {
	switch m {
	case MemberSrc, MemberTests:
		return r.restoreDir(scaffold, m)
	case MemberMetadata:
		return r.restoreFile(filepath.Join(scaffold, string(m)), m, string(m))
	case MemberReadme:
		src, ok := workspace.ReadmePath(scaffold)
		if !ok {
			return Outcome{Member: m, Reason: "no README.md or README.rst in scaffold"}, nil
		}
		return r.restoreFile(src, m, filepath.Base(src))
	default:
		return Outcome{}, fmt.Errorf("unknown scaffold member %q", m)
	}
}

func (r *Resetter) restoreDir(scaffold string, m Member) (Outcome, error) {
	src := filepath.Join(scaffold, string(m))
	if !workspace.IsDir(src) {
		return Outcome{Member: m, Reason: r.ws.Rel(src) + " not found"}, nil
	}

	dest := r.ws.Path(string(m))
	if err := os.RemoveAll(dest); err != nil {
		return Outcome{}, fmt.Errorf("removing %s: %w", r.ws.Rel(dest), err)
	}
	if err := fsutil.CopyDir(src, dest); err != nil {
		return Outcome{}, fmt.Errorf("copying %s: %w", r.ws.Rel(src), err)
	}
	return Outcome{Member: m, Restored: true, Path: r.ws.Rel(dest)}, nil
}

func (r *Resetter) restoreFile(src string, m Member, name string) (Outcome, error) {
	info, err := os.Stat(src)
	if err != nil || !info.Mode().IsRegular() {
		return Outcome{Member: m, Reason: r.ws.Rel(src) + " not found"}, nil
	}

	dest := r.ws.Path(name)
	if err := fsutil.CopyFile(src, dest); err != nil {
		return Outcome{}, fmt.Errorf("copying %s: %w", r.ws.Rel(src), err)
	}
	return Outcome{Member: m, Restored: true, Path: name}, nil
}
