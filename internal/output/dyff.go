package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
)

// DiffYAML computes a YAML-aware difference between two documents with dyff.
// It returns "" when the documents are equivalent.
func DiffYAML(from, to []byte, useColor bool) (string, error) {
	if len(bytes.TrimSpace(from)) == 0 && len(bytes.TrimSpace(to)) == 0 {
		return "", nil
	}

	fromInput, err := parseYAMLInput("stored", from)
	if err != nil {
		return "", fmt.Errorf("parsing stored YAML: %w", err)
	}

	toInput, err := parseYAMLInput("new", to)
	if err != nil {
		return "", fmt.Errorf("parsing new YAML: %w", err)
	}

	report, err := dyff.CompareInputFiles(fromInput, toInput)
	if err != nil {
		return "", fmt.Errorf("comparing YAML: %w", err)
	}

	if len(report.Diffs) == 0 {
		return "", nil
	}

	return renderDyffReport(report, useColor)
}

func parseYAMLInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	return ytbx.InputFile{
		Location:  name,
		Documents: docs,
	}, nil
}

func renderDyffReport(report dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer

	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}

	if err := reportWriter.WriteReport(&buf); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// IndentDiff indents every non-empty line of diff.
func IndentDiff(diff string, indent string) string {
	if diff == "" {
		return ""
	}

	var sb strings.Builder
	for _, line := range strings.Split(diff, "\n") {
		if line != "" {
			sb.WriteString(indent)
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
