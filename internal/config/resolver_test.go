package config

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/mcpstack/tool-bootstrap/internal/names"
)

func TestResolveNames_Defaults(t *testing.T) {
	got, values := ResolveNames(NameInputs{})
	assert.Equal(t, names.Placeholders(), got)
	for _, v := range values {
		assert.Contains(t, []ConfigSource{SourceDefault, SourceDerived}, v.Source, v.Key)
		assert.Empty(t, v.Shadowed, v.Key)
	}
}

func TestResolveNames_PrecedencePerField(t *testing.T) {
	stored := names.Derive("stored_tool", "StoredTool", names.Overrides{})

	for _, f := range names.Fields() {
		t.Run(string(f), func(t *testing.T) {
			var flags names.NameSet
			flags.Set(f, "flag_value")

			// flag beats stored
			got, values := ResolveNames(NameInputs{Flags: flags, Stored: &stored})
			assert.Equal(t, "flag_value", got.Get(f))
			rv := find(values, f)
			assert.Equal(t, SourceFlag, rv.Source)
			assert.Equal(t, stored.Get(f), rv.Shadowed[SourceConfig])

			// stored beats default
			got, values = ResolveNames(NameInputs{Stored: &stored})
			assert.Equal(t, stored.Get(f), got.Get(f))
			assert.Equal(t, SourceConfig, find(values, f).Source)
		})
	}
}

func TestResolveNames_DerivesFromResolvedSlug(t *testing.T) {
	got, values := ResolveNames(NameInputs{Flags: names.NameSet{ToolSlug: "my_tool", ClassName: "MyTool"}})
	assert.Equal(t, names.Derive("my_tool", "MyTool", names.Overrides{}), got)
	assert.Equal(t, SourceDerived, find(values, names.FieldPackageName).Source)
}

func TestResolveNames_StoredBeatsDerivation(t *testing.T) {
	stored := names.Derive("old_tool", "OldTool", names.Overrides{})
	got, values := ResolveNames(NameInputs{
		Flags:  names.NameSet{ToolSlug: "new_tool"},
		Stored: &stored,
	})

	assert.Equal(t, "new_tool", got.ToolSlug)
	assert.Equal(t, "OldTool", got.ClassName)
	assert.Equal(t, "mcpstack_old_tool", got.PackageName)
	assert.Equal(t, "mcpstack_new_tool", find(values, names.FieldPackageName).Shadowed[SourceDerived])
}

func TestResolveNames_NormalizesSlug(t *testing.T) {
	got, _ := ResolveNames(NameInputs{Flags: names.NameSet{ToolSlug: "My-Tool"}})
	assert.Equal(t, "my_tool", got.ToolSlug)
	assert.Equal(t, "mcpstack_my_tool", got.PackageName)
	assert.Equal(t, "MCP_MY_TOOL", got.EnvPrefix)
}

func TestResolveNames_NilStoredIgnored(t *testing.T) {
	got, _ := ResolveNames(NameInputs{Flags: names.NameSet{EnvPrefix: "X"}})
	assert.Equal(t, "X", got.EnvPrefix)
	assert.Equal(t, names.PlaceholderToolSlug, got.ToolSlug)
}

func TestResolveRoot(t *testing.T) {
	rv := ResolveRoot(ResolveRootOptions{FlagValue: "/flag", EnvValue: "/env", Detected: "/cwd"})
	assert.Equal(t, "/flag", rv.Value)
	assert.Equal(t, SourceFlag, rv.Source)
	assert.Equal(t, "/env", rv.Shadowed[SourceEnv])
	assert.Equal(t, "/cwd", rv.Shadowed[SourceDefault])

	rv = ResolveRoot(ResolveRootOptions{EnvValue: "/env", Detected: "/cwd"})
	assert.Equal(t, "/env", rv.Value)
	assert.Equal(t, SourceEnv, rv.Source)

	rv = ResolveRoot(ResolveRootOptions{Detected: "/cwd"})
	assert.Equal(t, "/cwd", rv.Value)
	assert.Equal(t, SourceDefault, rv.Source)
	assert.Empty(t, rv.Shadowed)
}

func TestLogResolvedValues(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	_, values := ResolveNames(NameInputs{Flags: names.NameSet{ToolSlug: "my_tool"}})
	LogResolvedValues(logger, values)

	out := buf.String()
	assert.Contains(t, out, "value resolved")
	assert.Contains(t, out, "key=tool_slug")
	assert.Contains(t, out, "shadowed_value=your_tool_name")
}

func find(values []ResolvedValue, f names.Field) ResolvedValue {
	for _, v := range values {
		if v.Key == string(f) {
			return v
		}
	}
	return ResolvedValue{}
}
