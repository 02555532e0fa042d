package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	info := Get()

	require.NotEmpty(t, info.GoVersion, "GoVersion should be populated")
	require.NotEmpty(t, info.Version)
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "v1.0.0",
		GitCommit: "abc123",
		BuildDate: "2026-01-29",
		GoVersion: "go1.25",
	}

	str := info.String()

	assert.Contains(t, str, "mcpstack-tool version v1.0.0")
	assert.Contains(t, str, "abc123")
	assert.Contains(t, str, "2026-01-29")
	assert.Contains(t, str, "go1.25")
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("v1.2.3"))
	assert.True(t, Valid("0.1.0"))
	assert.True(t, Valid("v0.0.0-dev"))
	assert.False(t, Valid("(devel)"))
	assert.False(t, Valid(""))
}
