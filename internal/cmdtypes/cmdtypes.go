// Package cmdtypes provides shared types for the cmd package and the
// command helpers in internal/cmdutil. It is separate from internal/cmd to
// avoid import cycles between the two.
package cmdtypes

import (
	"io"

	"github.com/mcpstack/tool-bootstrap/internal/config"
	oerrors "github.com/mcpstack/tool-bootstrap/internal/errors"
	"github.com/mcpstack/tool-bootstrap/internal/output"
	"github.com/mcpstack/tool-bootstrap/internal/prompt"
	"github.com/mcpstack/tool-bootstrap/internal/workspace"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is created once by NewRootCmd and passed explicitly into every
// sub-command constructor.
type GlobalConfig struct {
	// RootFlag is the raw --root flag value.
	RootFlag string

	// Root is the resolved project root.
	Root config.ResolvedValue

	Verbose bool

	// Prompter asks the interactive questions. Nil means prompt.Default().
	Prompter prompt.Prompter
}

// Prompt returns the configured prompter, falling back to prompt.Default.
func (g *GlobalConfig) Prompt() prompt.Prompter {
	if g.Prompter == nil {
		g.Prompter = prompt.Default()
	}
	return g.Prompter
}

// Workspace opens the resolved root. Command output goes to out and log
// lines carry scope as their prefix.
func (g *GlobalConfig) Workspace(out io.Writer, scope string) (*workspace.Workspace, error) {
	return workspace.New(g.Root.Value, out, output.ScopedLogger(scope))
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess         = oerrors.ExitSuccess
	ExitGeneralError    = oerrors.ExitGeneralError
	ExitValidationError = oerrors.ExitValidationError
	ExitNotFound        = oerrors.ExitNotFound
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
