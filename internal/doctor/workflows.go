package doctor

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Workflow is a CI workflow file found under .github/workflows.
type Workflow struct {
	File string   `json:"file"`
	Name string   `json:"name,omitempty"`
	Jobs []string `json:"jobs"`
}

type workflowDoc struct {
	Name string               `yaml:"name"`
	Jobs map[string]yaml.Node `yaml:"jobs"`
}

// ReadWorkflows parses every *.yml and *.yaml file in dir, sorted by file
// name. A missing dir yields no workflows. Files that fail to parse are
// returned in problems and left out of the result.
func ReadWorkflows(dir string) (workflows []Workflow, problems []string, err error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	for _, e := range entries {
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if e.IsDir() || (ext != ".yml" && ext != ".yaml") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", name, err))
			continue
		}

		var doc workflowDoc
		if err := yaml.Unmarshal(data, &doc); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", name, err))
			continue
		}

		jobs := make([]string, 0, len(doc.Jobs))
		for id := range doc.Jobs {
			jobs = append(jobs, id)
		}
		sort.Strings(jobs)
		workflows = append(workflows, Workflow{File: name, Name: doc.Name, Jobs: jobs})
	}
	return workflows, problems, nil
}
