// Package testutil provides test helpers for building project trees.
package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// WriteFile creates a file with the given content under dir, creating parent
// directories as needed. name uses forward slashes.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// WriteTree writes every file of tree (slash path -> content) under dir.
func WriteTree(t *testing.T, dir string, tree map[string]string) {
	t.Helper()
	for name, content := range tree {
		WriteFile(t, dir, name, content)
	}
}

// ReadFile returns the content of dir/name, failing the test on error.
func ReadFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
	if err != nil {
		t.Fatalf("failed to read %s: %v", name, err)
	}
	return string(data)
}

// ReadTree returns every regular file under dir as slash path -> content.
func ReadTree(t *testing.T, dir string) map[string]string {
	t.Helper()
	tree := make(map[string]string)
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		tree[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to read tree %s: %v", dir, err)
	}
	return tree
}

// Paths returns the sorted keys of a tree.
func Paths(tree map[string]string) []string {
	paths := make([]string, 0, len(tree))
	for p := range tree {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// TemplateTree is a minimal pristine MCPStack tool template.
func TemplateTree() map[string]string {
	return map[string]string{
		"pyproject.toml": `[project]
name = "mcpstack-your-tool-name"
version = "0.1.0"

[project.entry-points."mcpstack.tools"]
your_tool_name = "mcpstack_your_tool_name.tool:YourTool"
`,
		"README.md": "# mcpstack-your-tool-name\n\nSet MCP_YOUR_TOOL_NAME_API_KEY before use.\n",
		"src/mcpstack_your_tool_name/__init__.py": "from .tool import YourTool\n\n__all__ = [\"YourTool\"]\n",
		"src/mcpstack_your_tool_name/tool.py": `import os


class YourTool:
    name = "your_tool_name"

    def __init__(self):
        self.key = os.getenv("MCP_YOUR_TOOL_NAME_API_KEY")
`,
		"src/mcpstack_your_tool_name/cli.py": "class YourToolCLI:\n    pass\n",
		"tests/test_tool.py":                  "from mcpstack_your_tool_name.tool import YourTool\n\n\ndef test_name():\n    assert YourTool.name == \"your_tool_name\"\n",
	}
}

// WriteTemplate writes TemplateTree under dir and returns dir.
func WriteTemplate(t *testing.T, dir string) string {
	t.Helper()
	WriteTree(t, dir, TemplateTree())
	return dir
}
