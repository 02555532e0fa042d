package cmd

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"

	"github.com/mcpstack/tool-bootstrap/internal/doctor"
	oerrors "github.com/mcpstack/tool-bootstrap/internal/errors"
	"github.com/mcpstack/tool-bootstrap/internal/names"
	"github.com/mcpstack/tool-bootstrap/internal/testutil"
)

func TestValidate_PristineTemplate(t *testing.T) {
	root := testutil.WriteTemplate(t, t.TempDir())

	res := execute(t, nil, "validate", "--root", root)
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "All placeholders present")
	assert.Contains(t, res.out, names.PlaceholderEnvPrefix)
}

func TestValidate_AfterApplyReportsEveryMissing(t *testing.T) {
	root := testutil.WriteTemplate(t, t.TempDir())
	require.NoError(t, execute(t, nil, "apply", "--root", root, "-s", "weather", "-c", "Weather", "-y").err)

	res := execute(t, nil, "validate", "--root", root, "-o", "json")
	require.NoError(t, res.err)

	var report doctor.PlaceholderReport
	require.NoError(t, json.Unmarshal([]byte(res.out), &report))
	assert.False(t, report.OK())
	assert.Len(t, report.Missing, len(names.Fields()))
}

func TestValidate_TableListsMissing(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "pyproject.toml", "name = \"mcpstack-your-tool-name\"\n")

	res := execute(t, nil, "validate", "--root", root)
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "placeholders missing")
	assert.Contains(t, res.out, "- "+names.PlaceholderClassName)
	assert.NotContains(t, res.out, "- "+names.PlaceholderDistName)
}

func TestValidate_InvalidOutputFormat(t *testing.T) {
	res := execute(t, nil, "validate", "--root", t.TempDir(), "-o", "xml")
	requireExitCode(t, res.err, oerrors.ExitGeneralError)
	assert.Contains(t, res.err.Error(), "invalid output format")
}

func TestDoctor_GeneratedProject(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj")
	require.NoError(t, execute(t, nil, "new", root).err)

	res := execute(t, nil, "doctor", "--root", root, "-o", "yaml")
	require.NoError(t, res.err)

	var report doctor.Report
	require.NoError(t, yaml.Unmarshal([]byte(res.out), &report))
	assert.Equal(t, []string{names.PlaceholderPackageName}, report.PackageDirs)
	assert.True(t, report.MetadataFound)
	assert.True(t, report.Project.EntryPointDeclared)
	assert.True(t, report.Project.VersionValid)
	assert.NotEmpty(t, report.Workflows)
	assert.Len(t, report.Placeholders, len(names.Fields()))
	assert.Empty(t, report.Problems)
}

func TestDoctor_Table(t *testing.T) {
	root := testutil.WriteTemplate(t, t.TempDir())

	res := execute(t, nil, "doctor", "--root", root)
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Package dirs")
	assert.Contains(t, res.out, names.PlaceholderPackageName)
	assert.Contains(t, res.out, "declared")
	assert.Contains(t, res.out, "Placeholder map")
}

func TestDoctor_MissingMetadataWarns(t *testing.T) {
	res := execute(t, nil, "doctor", "--root", t.TempDir())
	require.NoError(t, res.err)
	assert.Contains(t, res.errOut, "pyproject.toml not found")
	assert.Contains(t, res.out, "missing")
}
