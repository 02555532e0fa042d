package cmdutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcpstack/tool-bootstrap/internal/config"
	oerrors "github.com/mcpstack/tool-bootstrap/internal/errors"
	"github.com/mcpstack/tool-bootstrap/internal/names"
	"github.com/mcpstack/tool-bootstrap/internal/workspace"
)

func newWorkspace(t *testing.T, logs *bytes.Buffer) *workspace.Workspace {
	t.Helper()
	var logger *log.Logger
	if logs != nil {
		logger = log.New(logs)
	}
	ws, err := workspace.New(t.TempDir(), nil, logger)
	require.NoError(t, err)
	return ws
}

func saveNames(t *testing.T, ws *workspace.Workspace, n names.NameSet) {
	t.Helper()
	store, err := config.NewStore(ws.ConfigPath(), nil)
	require.NoError(t, err)
	require.NoError(t, store.Save(n))
}

func TestResolveNames_DefaultsArePlaceholders(t *testing.T) {
	ws := newWorkspace(t, nil)

	n, err := ResolveNames(ws, NameFlags{}, true)
	require.NoError(t, err)
	assert.Equal(t, names.Placeholders(), n)
}

func TestResolveNames_UsesStoredConfig(t *testing.T) {
	ws := newWorkspace(t, nil)
	stored := names.Derive("stored_tool", "StoredTool", names.Overrides{})
	saveNames(t, ws, stored)

	n, err := ResolveNames(ws, NameFlags{}, true)
	require.NoError(t, err)
	assert.Equal(t, stored, n)

	n, err = ResolveNames(ws, NameFlags{}, false)
	require.NoError(t, err)
	assert.Equal(t, names.Placeholders(), n)
}

func TestResolveNames_FlagsWinPerField(t *testing.T) {
	ws := newWorkspace(t, nil)
	saveNames(t, ws, names.Derive("stored_tool", "StoredTool", names.Overrides{}))

	n, err := ResolveNames(ws, NameFlags{Names: names.NameSet{ClassName: "Other"}}, true)
	require.NoError(t, err)
	assert.Equal(t, "stored_tool", n.ToolSlug)
	assert.Equal(t, "Other", n.ClassName)
}

func TestCheckNames_ReportsEveryViolation(t *testing.T) {
	ws := newWorkspace(t, nil)

	err := CheckNames(ws, names.NameSet{ToolSlug: "Bad", ClassName: "bad", PackageName: "Bad", DistName: "Bad", EnvPrefix: "bad"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
	for _, f := range names.Fields() {
		assert.Contains(t, err.Error(), f.FlagName())
	}
}

func TestCheckNames_RejectsReentrant(t *testing.T) {
	ws := newWorkspace(t, nil)
	n := names.Derive("my_tool", "YourToolX", names.Overrides{})

	err := CheckNames(ws, n)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
	assert.Contains(t, err.Error(), "class-name")
}

func TestCheckNames_WarnsOnCollision(t *testing.T) {
	var logs bytes.Buffer
	ws := newWorkspace(t, &logs)
	n := names.Derive("tool", "Tool", names.Overrides{PackageName: "tool"})

	require.NoError(t, CheckNames(ws, n))
	assert.Contains(t, logs.String(), "names share a value")
}

func TestExit(t *testing.T) {
	assert.NoError(t, Exit(nil))

	var exitErr *oerrors.ExitError
	err := Exit(oerrors.NewValidationError("bad", "", ""))
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, oerrors.ExitValidationError, exitErr.Code)

	err = Exit(oerrors.NewNotFoundError("gone", "", ""))
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, oerrors.ExitNotFound, exitErr.Code)

	orig := &oerrors.ExitError{Code: 7, Err: errors.New("x")}
	assert.Same(t, orig, Exit(orig))
}
