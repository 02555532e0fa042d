package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/mcpstack/tool-bootstrap/internal/errors"
	"github.com/mcpstack/tool-bootstrap/internal/testutil"
	"github.com/mcpstack/tool-bootstrap/internal/workspace"
)

func newResetter(t *testing.T, root string) *Resetter {
	t.Helper()
	ws, err := workspace.New(root, nil, nil)
	require.NoError(t, err)
	return NewResetter(ws)
}

// rewrittenProject writes a project whose live tree was already renamed and
// whose scaffold holds the pristine template.
func rewrittenProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	testutil.WriteTemplate(t, filepath.Join(root, "scripts", "scaffold"))
	testutil.WriteTree(t, root, map[string]string{
		"src/mcpstack_my_tool/tool.py": "class MyTool: pass\n",
		"src/mcpstack_my_tool/new.py":  "extra\n",
		"tests/test_tool.py":           "from mcpstack_my_tool.tool import MyTool\n",
		"pyproject.toml":               "name = \"mcpstack-my-tool\"\n",
		"README.md":                    "# mcpstack-my-tool\n",
	})
	return root
}

func TestReset_NoHardIsNoOp(t *testing.T) {
	root := rewrittenProject(t)
	before := testutil.ReadTree(t, root)

	report, err := newResetter(t, root).Reset(false)
	require.NoError(t, err)
	assert.False(t, report.Performed)
	assert.False(t, report.Partial())
	assert.Empty(t, report.Outcomes)
	assert.Equal(t, before, testutil.ReadTree(t, root))
}

func TestReset_HardRestoresEverything(t *testing.T) {
	root := rewrittenProject(t)

	report, err := newResetter(t, root).Reset(true)
	require.NoError(t, err)
	assert.True(t, report.Performed)
	assert.False(t, report.Partial())
	require.Len(t, report.Outcomes, 4)
	assert.Equal(t, "README.md", report.Outcomes[3].Path)

	pristine := testutil.TemplateTree()
	tree := testutil.ReadTree(t, root)
	for path, content := range pristine {
		assert.Equal(t, content, tree[path], path)
	}
	assert.NoDirExists(t, filepath.Join(root, "src", "mcpstack_my_tool"), "stale package removed")

	// scaffold itself is untouched
	assert.Equal(t, pristine["pyproject.toml"], tree["scripts/scaffold/pyproject.toml"])
}

func TestReset_IdempotentOnPristineTree(t *testing.T) {
	root := rewrittenProject(t)
	r := newResetter(t, root)

	_, err := r.Reset(true)
	require.NoError(t, err)
	first := testutil.ReadTree(t, root)

	_, err = r.Reset(true)
	require.NoError(t, err)
	assert.Equal(t, first, testutil.ReadTree(t, root))
}

func TestReset_MissingMemberIsPartial(t *testing.T) {
	root := rewrittenProject(t)
	require.NoError(t, os.RemoveAll(filepath.Join(root, "scripts", "scaffold", "tests")))

	report, err := newResetter(t, root).Reset(true)
	require.NoError(t, err)
	assert.True(t, report.Partial())

	skipped := report.Skipped()
	require.Len(t, skipped, 1)
	assert.Equal(t, MemberTests, skipped[0].Member)
	assert.Contains(t, skipped[0].Reason, "scripts/scaffold/tests")

	// the live tests tree is kept as-is
	assert.Equal(t, "from mcpstack_my_tool.tool import MyTool\n", testutil.ReadFile(t, root, "tests/test_tool.py"))
	// other members were still restored
	assert.FileExists(t, filepath.Join(root, "src", "mcpstack_your_tool_name", "tool.py"))
}

func TestReset_ReadmeFallsBackToRst(t *testing.T) {
	root := rewrittenProject(t)
	scaffold := filepath.Join(root, "scripts", "scaffold")
	require.NoError(t, os.Remove(filepath.Join(scaffold, "README.md")))
	testutil.WriteFile(t, scaffold, "README.rst", "mcpstack-your-tool-name\n")

	report, err := newResetter(t, root).Reset(true)
	require.NoError(t, err)
	assert.False(t, report.Partial())
	assert.Equal(t, "README.rst", report.Outcomes[3].Path)
	assert.Equal(t, "mcpstack-your-tool-name\n", testutil.ReadFile(t, root, "README.rst"))
}

func TestReset_MissingReadmeAndMetadata(t *testing.T) {
	root := rewrittenProject(t)
	scaffold := filepath.Join(root, "scripts", "scaffold")
	require.NoError(t, os.Remove(filepath.Join(scaffold, "README.md")))
	require.NoError(t, os.Remove(filepath.Join(scaffold, "pyproject.toml")))

	report, err := newResetter(t, root).Reset(true)
	require.NoError(t, err)
	assert.Len(t, report.Skipped(), 2)
	assert.Equal(t, "name = \"mcpstack-my-tool\"\n", testutil.ReadFile(t, root, "pyproject.toml"))
}

func TestReset_MissingScaffoldRoot(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "src/mcpstack_my_tool/tool.py", "x")
	before := testutil.ReadTree(t, root)

	_, err := newResetter(t, root).Reset(true)
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrNotFound)
	assert.Equal(t, oerrors.ExitNotFound, oerrors.ExitCodeFromError(err))
	assert.Equal(t, before, testutil.ReadTree(t, root))
}
