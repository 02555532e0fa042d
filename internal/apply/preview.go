package apply

import (
	"errors"
	"io/fs"
	"os"
	"path"

	"github.com/mcpstack/tool-bootstrap/internal/names"
	"github.com/mcpstack/tool-bootstrap/internal/rewrite"
)

// SampleFile is the template file shown rewritten by preview, relative to
// the root.
var SampleFile = path.Join("src", names.PlaceholderPackageName, "tool.py")

// Sample is the rewritten content of SampleFile.
type Sample struct {
	Path      string
	Original  string
	Rewritten string
}

// Sample rewrites SampleFile in memory. ok is false when the file is absent.
func (e *Engine) Sample(n names.NameSet) (Sample, bool, error) {
	data, err := os.ReadFile(e.ws.Path(SampleFile))
	if errors.Is(err, fs.ErrNotExist) {
		return Sample{}, false, nil
	}
	if err != nil {
		return Sample{}, false, err
	}
	return Sample{
		Path:      SampleFile,
		Original:  string(data),
		Rewritten: rewrite.Rewrite(string(data), n),
	}, true, nil
}
