// Package config persists the chosen tool names between invocations and
// resolves the effective names from flags, the stored file and defaults.
package config

import (
	"github.com/mcpstack/tool-bootstrap/internal/names"
	"github.com/mcpstack/tool-bootstrap/internal/workspace"
)

// FileName is the stored config file name at the project root.
const FileName = workspace.ConfigFile

// Config is the on-disk shape of the stored config.
type Config struct {
	// Names is the last saved NameSet.
	Names names.NameSet `json:"names"`
}

// LoadResult is the outcome of reading the stored config. When Present is
// false, Config is the zero value and Reason says why it was not usable.
type LoadResult struct {
	Config  Config
	Present bool
	Reason  string
}

func present(cfg Config) LoadResult {
	return LoadResult{Config: cfg, Present: true}
}

func absent(reason string) LoadResult {
	return LoadResult{Reason: reason}
}

// Names returns the stored names, or nil when the config is absent.
func (r LoadResult) Names() *names.NameSet {
	if !r.Present {
		return nil
	}
	n := r.Config.Names
	return &n
}
