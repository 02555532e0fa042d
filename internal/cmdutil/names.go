package cmdutil

import (
	"errors"
	"strings"

	"github.com/mcpstack/tool-bootstrap/internal/config"
	oerrors "github.com/mcpstack/tool-bootstrap/internal/errors"
	"github.com/mcpstack/tool-bootstrap/internal/names"
	"github.com/mcpstack/tool-bootstrap/internal/rewrite"
	"github.com/mcpstack/tool-bootstrap/internal/workspace"
)

// validationHint is shown under every name validation failure.
const validationHint = "pass corrected values with --tool-slug, --class-name, --package-name, --dist-name or --env-prefix"

// OpenStore opens the config store of ws.
func OpenStore(ws *workspace.Workspace) (*config.Store, error) {
	return config.NewStore(ws.ConfigPath(), ws.Log)
}

// LoadStored returns the stored names of ws, or nil when there are none.
func LoadStored(ws *workspace.Workspace) *names.NameSet {
	store, err := OpenStore(ws)
	if err != nil {
		ws.Log.Debug("config store unavailable", "error", err)
		return nil
	}
	return store.Load().Names()
}

// ResolveNames resolves the effective names from flags, the stored config
// (when useConfig) and defaults, then checks them with CheckNames.
func ResolveNames(ws *workspace.Workspace, flags NameFlags, useConfig bool) (names.NameSet, error) {
	var stored *names.NameSet
	if useConfig {
		stored = LoadStored(ws)
	}

	n, values := config.ResolveNames(config.NameInputs{Flags: flags.Names, Stored: stored})
	config.LogResolvedValues(ws.Log, values)

	return n, CheckNames(ws, n)
}

// CheckNames validates n. Every convention violation is reported in one
// error; a value that would be rewritten again by a later apply is rejected.
// Fields sharing a value only produce a warning.
func CheckNames(ws *workspace.Workspace, n names.NameSet) error {
	if err := names.Validate(n); err != nil {
		var verrs names.ValidationErrors
		msg := err.Error()
		if errors.As(err, &verrs) {
			msg = strings.Join(verrs.Messages(), "\n")
		}
		return oerrors.NewValidationError(msg, "", validationHint)
	}

	if re := rewrite.Reentrant(n); len(re) > 0 {
		msgs := make([]string, len(re))
		for i, e := range re {
			msgs[i] = e.Error()
		}
		return oerrors.NewValidationError(strings.Join(msgs, "\n"), string(re[0].Field),
			"choose values that do not start with a template placeholder")
	}

	for _, c := range names.Collisions(n) {
		ws.Log.Warn("names share a value", "fields", c.A.FlagName()+", "+c.B.FlagName(), "value", c.Value)
	}
	return nil
}

// Exit wraps err in an ExitError carrying the exit code for its kind.
func Exit(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
}
