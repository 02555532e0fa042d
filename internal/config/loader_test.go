package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoader_FromEnv(t *testing.T) {
	t.Setenv("MCPSTACK_ROOT", "/work/tool")
	t.Setenv("MCPSTACK_VERBOSE", "true")
	t.Setenv("MCPSTACK_TIMESTAMPS", "false")

	s := NewLoader().Load()
	assert.Equal(t, "/work/tool", s.Root)
	assert.True(t, s.Verbose)
	require.NotNil(t, s.Timestamps)
	assert.False(t, *s.Timestamps)
}

func TestLoader_Unset(t *testing.T) {
	t.Setenv("MCPSTACK_ROOT", "")
	t.Setenv("MCPSTACK_VERBOSE", "")

	s := NewLoader().Load()
	assert.Empty(t, s.Root)
	assert.False(t, s.Verbose)
}
