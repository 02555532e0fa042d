package doctor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml/v2"
)

// EntryPointGroup is the plugin namespace MCPStack discovers tools under.
const EntryPointGroup = "mcpstack.tools"

// EntryPointHeader is the literal table header declaring the tool entry point.
var EntryPointHeader = fmt.Sprintf("[project.entry-points.%q]", EntryPointGroup)

// EntryPoint is one declared tool entry point.
type EntryPoint struct {
	Name   string `json:"name"`
	Target string `json:"target"`
}

// ProjectInfo is what doctor reads from pyproject.toml.
type ProjectInfo struct {
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
	// VersionValid is true when Version parses as a semantic version.
	VersionValid bool `json:"version_valid"`
	// EntryPointDeclared is true when EntryPointHeader occurs verbatim.
	EntryPointDeclared bool         `json:"entry_point_declared"`
	EntryPoints        []EntryPoint `json:"entry_points"`
}

type pyproject struct {
	Project struct {
		Name        string                       `toml:"name"`
		Version     string                       `toml:"version"`
		EntryPoints map[string]map[string]string `toml:"entry-points"`
	} `toml:"project"`
}

// ParseProject extracts ProjectInfo from pyproject.toml content. The
// entry-point header check is textual and holds even when the document does
// not parse; the parse error is returned alongside.
func ParseProject(data []byte) (ProjectInfo, error) {
	info := ProjectInfo{
		EntryPointDeclared: strings.Contains(string(data), EntryPointHeader),
		EntryPoints:        []EntryPoint{},
	}

	var doc pyproject
	if err := toml.Unmarshal(data, &doc); err != nil {
		return info, fmt.Errorf("parsing pyproject.toml: %w", err)
	}

	info.Name = doc.Project.Name
	info.Version = doc.Project.Version
	if info.Version != "" {
		_, err := semver.NewVersion(info.Version)
		info.VersionValid = err == nil
	}

	group := doc.Project.EntryPoints[EntryPointGroup]
	for name, target := range group {
		info.EntryPoints = append(info.EntryPoints, EntryPoint{Name: name, Target: target})
	}
	sort.Slice(info.EntryPoints, func(i, j int) bool {
		return info.EntryPoints[i].Name < info.EntryPoints[j].Name
	})
	return info, nil
}
