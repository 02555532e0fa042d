package apply

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/mcpstack/tool-bootstrap/internal/errors"
	"github.com/mcpstack/tool-bootstrap/internal/names"
	"github.com/mcpstack/tool-bootstrap/internal/testutil"
	"github.com/mcpstack/tool-bootstrap/internal/workspace"
)

func newEngine(t *testing.T, root string) *Engine {
	t.Helper()
	ws, err := workspace.New(root, nil, nil)
	require.NoError(t, err)
	return NewEngine(ws)
}

func myTool() names.NameSet {
	return names.Derive("my_tool", "MyTool", names.Overrides{})
}

func TestApply_RequiresConfirmation(t *testing.T) {
	root := testutil.WriteTemplate(t, t.TempDir())
	before := testutil.ReadTree(t, root)

	res, err := newEngine(t, root).Apply(myTool(), false)
	require.NoError(t, err)
	assert.True(t, res.Aborted())
	assert.Equal(t, Stats{}, res.Stats)
	assert.Equal(t, before, testutil.ReadTree(t, root))
}

func TestApply_RewritesAndRelocates(t *testing.T) {
	root := testutil.WriteTemplate(t, t.TempDir())

	res, err := newEngine(t, root).Apply(myTool(), true)
	require.NoError(t, err)
	require.True(t, res.Applied)

	assert.True(t, res.Stats.PackageMoved)
	assert.Equal(t, "src/mcpstack_my_tool", res.Stats.NewPackagePath)
	assert.NoDirExists(t, filepath.Join(root, "src", "mcpstack_your_tool_name"))

	tree := testutil.ReadTree(t, root)
	assert.Equal(t, []string{
		"README.md",
		"pyproject.toml",
		"src/mcpstack_my_tool/__init__.py",
		"src/mcpstack_my_tool/cli.py",
		"src/mcpstack_my_tool/tool.py",
		"tests/test_tool.py",
	}, testutil.Paths(tree))

	assert.Contains(t, tree["src/mcpstack_my_tool/tool.py"], "class MyTool:")
	assert.Contains(t, tree["src/mcpstack_my_tool/tool.py"], `name = "my_tool"`)
	assert.Contains(t, tree["src/mcpstack_my_tool/tool.py"], "MCP_MY_TOOL_API_KEY")
	assert.Contains(t, tree["src/mcpstack_my_tool/cli.py"], "class MyToolCLI:")
	assert.Contains(t, tree["pyproject.toml"], `name = "mcpstack-my-tool"`)
	assert.Contains(t, tree["pyproject.toml"], `my_tool = "mcpstack_my_tool.tool:MyTool"`)
	assert.Contains(t, tree["tests/test_tool.py"], "from mcpstack_my_tool.tool import MyTool")

	// README is outside the walked set.
	assert.Contains(t, tree["README.md"], "mcpstack-your-tool-name")
}

func TestApply_CountsOnlyChangedFiles(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 7; i++ {
		testutil.WriteFile(t, root, fmt.Sprintf("src/plain/f%d.py", i), "x = 1\n")
	}
	testutil.WriteFile(t, root, "src/pkg/a.py", "import mcpstack_your_tool_name\n")
	testutil.WriteFile(t, root, "tests/test_b.py", "YourTool()\n")
	testutil.WriteFile(t, root, "pyproject.toml", "name = \"mcpstack-your-tool-name\"\n")

	plainInfo, err := os.Stat(filepath.Join(root, "src/plain/f0.py"))
	require.NoError(t, err)

	res, err := newEngine(t, root).Apply(myTool(), true)
	require.NoError(t, err)

	assert.Equal(t, 10, res.Stats.FilesScanned)
	assert.Equal(t, 3, res.Stats.FilesChanged)
	assert.Equal(t, []string{"src/pkg/a.py", "tests/test_b.py", "pyproject.toml"}, res.Stats.ChangedFiles)
	assert.False(t, res.Stats.PackageMoved)
	assert.Empty(t, res.Stats.NewPackagePath)

	after, err := os.Stat(filepath.Join(root, "src/plain/f0.py"))
	require.NoError(t, err)
	assert.Equal(t, plainInfo.ModTime(), after.ModTime(), "unchanged files are not rewritten")
}

func TestApply_Idempotent(t *testing.T) {
	root := testutil.WriteTemplate(t, t.TempDir())
	e := newEngine(t, root)

	_, err := e.Apply(myTool(), true)
	require.NoError(t, err)
	first := testutil.ReadTree(t, root)

	res, err := e.Apply(myTool(), true)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Stats.FilesChanged)
	assert.False(t, res.Stats.PackageMoved)
	assert.Equal(t, first, testutil.ReadTree(t, root))
}

func TestApply_PlaceholderNamesChangeNothing(t *testing.T) {
	root := testutil.WriteTemplate(t, t.TempDir())
	before := testutil.ReadTree(t, root)

	res, err := newEngine(t, root).Apply(names.Placeholders(), true)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Stats.FilesChanged)
	assert.False(t, res.Stats.PackageMoved)
	assert.Equal(t, before, testutil.ReadTree(t, root))
}

func TestApply_RejectsInvalidNames(t *testing.T) {
	root := testutil.WriteTemplate(t, t.TempDir())
	before := testutil.ReadTree(t, root)

	bad := myTool()
	bad.ToolSlug = "Bad Slug"
	bad.ClassName = "lower"

	_, err := newEngine(t, root).Apply(bad, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrValidation)
	assert.Contains(t, err.Error(), "tool-slug")
	assert.Contains(t, err.Error(), "class-name")
	assert.Equal(t, before, testutil.ReadTree(t, root))
}

func TestApply_RejectsReentrantNames(t *testing.T) {
	root := testutil.WriteTemplate(t, t.TempDir())
	n := myTool()
	n.ClassName = "YourToolPro"

	_, err := newEngine(t, root).Apply(n, true)
	assert.ErrorIs(t, err, oerrors.ErrValidation)
}

func TestApply_DestinationExists(t *testing.T) {
	root := testutil.WriteTemplate(t, t.TempDir())
	testutil.WriteFile(t, root, "src/mcpstack_my_tool/keep.py", "")

	res, err := newEngine(t, root).Apply(myTool(), true)
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrConflict)
	assert.True(t, res.Applied)
	assert.Positive(t, res.Stats.FilesChanged, "text pass completed before the move")
	assert.DirExists(t, filepath.Join(root, "src", "mcpstack_your_tool_name"))
}

func TestApply_PreservesFileMode(t *testing.T) {
	root := t.TempDir()
	path := testutil.WriteFile(t, root, "src/run.sh", "echo your_tool_name\n")
	require.NoError(t, os.Chmod(path, 0o755))

	_, err := newEngine(t, root).Apply(myTool(), true)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	assert.Equal(t, "echo my_tool\n", testutil.ReadFile(t, root, "src/run.sh"))
}

func TestPlan_MatchesApplyWithoutWriting(t *testing.T) {
	root := testutil.WriteTemplate(t, t.TempDir())
	before := testutil.ReadTree(t, root)
	e := newEngine(t, root)

	planned, err := e.Plan(myTool())
	require.NoError(t, err)
	assert.Equal(t, before, testutil.ReadTree(t, root))

	res, err := e.Apply(myTool(), true)
	require.NoError(t, err)

	// Paths of changed files are reported before relocation in both runs.
	assert.Equal(t, planned, res.Stats)
}

func TestSample(t *testing.T) {
	root := testutil.WriteTemplate(t, t.TempDir())
	e := newEngine(t, root)

	s, ok, err := e.Sample(myTool())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "src/mcpstack_your_tool_name/tool.py", s.Path)
	assert.Contains(t, s.Original, "class YourTool:")
	assert.Contains(t, s.Rewritten, "class MyTool:")

	_, ok, err = newEngine(t, t.TempDir()).Sample(myTool())
	require.NoError(t, err)
	assert.False(t, ok)
}
