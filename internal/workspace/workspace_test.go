package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcpstack/tool-bootstrap/internal/testutil"
)

func TestNew_AbsoluteRoot(t *testing.T) {
	dir := t.TempDir()
	ws, err := New(dir, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, dir, ws.Root)
	assert.Equal(t, filepath.Join(dir, "src"), ws.SrcDir())
	assert.Equal(t, filepath.Join(dir, "tests"), ws.TestsDir())
	assert.Equal(t, filepath.Join(dir, "pyproject.toml"), ws.MetadataPath())
	assert.Equal(t, filepath.Join(dir, ".mcpstack-tool.json"), ws.ConfigPath())
	assert.Equal(t, filepath.Join(dir, "scripts", "scaffold"), ws.ScaffoldDir())
	assert.Equal(t, filepath.Join(dir, "src", "mcpstack_your_tool_name"), ws.PlaceholderPackageDir())
	assert.Equal(t, "src/pkg/a.py", ws.Rel(filepath.Join(dir, "src", "pkg", "a.py")))
	assert.NotNil(t, ws.Out)
	assert.NotNil(t, ws.Log)
}

func TestNew_RelativeRoot(t *testing.T) {
	ws, err := New(".", nil, nil)
	require.NoError(t, err)
	wd, _ := os.Getwd()
	assert.Equal(t, wd, ws.Root)
}

func TestFindRoot(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "pyproject.toml", "[project]\n")
	nested := filepath.Join(dir, "src", "pkg")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	root, err := FindRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, dir, root)
}

func TestFindRoot_FallsBackToStart(t *testing.T) {
	dir := t.TempDir()
	root, err := FindRoot(dir)
	require.NoError(t, err)
	// t.TempDir has no pyproject.toml above it in practice.
	if _, statErr := os.Stat(filepath.Join(root, "pyproject.toml")); statErr != nil {
		assert.Equal(t, dir, root)
	}
}

func TestReadmePath(t *testing.T) {
	dir := t.TempDir()
	_, ok := ReadmePath(dir)
	assert.False(t, ok)

	testutil.WriteFile(t, dir, "README.rst", "rst")
	p, ok := ReadmePath(dir)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "README.rst"), p)

	testutil.WriteFile(t, dir, "README.md", "md")
	p, ok = ReadmePath(dir)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "README.md"), p)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/abs/path", "/abs/path"},
		{"rel", "rel"},
		{"~", home},
		{"~/proj", filepath.Join(home, "proj")},
		{"~other/proj", "~other/proj"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ExpandPath(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExistsAndIsDir(t *testing.T) {
	dir := t.TempDir()
	f := testutil.WriteFile(t, dir, "a.txt", "x")
	assert.True(t, Exists(f))
	assert.False(t, IsDir(f))
	assert.True(t, IsDir(dir))
	assert.False(t, Exists(filepath.Join(dir, "nope")))
}
