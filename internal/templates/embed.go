// Package templates embeds the pristine MCPStack tool template and writes
// new projects from it.
package templates

import (
	"embed"
	"io/fs"
	"sort"
)

//go:embed all:tool
var toolFS embed.FS

// root is the template directory inside toolFS.
const root = "tool"

// FS returns the template tree rooted at the project root.
func FS() fs.FS {
	sub, err := fs.Sub(toolFS, root)
	if err != nil {
		// the embed directive guarantees the directory exists
		panic(err)
	}
	return sub
}

// ListFiles returns every template file relative to the project root, in
// slash form and sorted.
func ListFiles() ([]string, error) {
	var files []string
	err := fs.WalkDir(FS(), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	sort.Strings(files)
	return files, err
}

// ReadFile returns the content of a template file.
func ReadFile(name string) ([]byte, error) {
	return fs.ReadFile(FS(), name)
}
