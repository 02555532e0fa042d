package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"sigs.k8s.io/yaml"
)

// OutputFormat specifies the output format of report commands.
type OutputFormat string

const (
	// FormatTable renders human-readable tables.
	FormatTable OutputFormat = "table"

	// FormatJSON outputs indented JSON.
	FormatJSON OutputFormat = "json"

	// FormatYAML outputs YAML.
	FormatYAML OutputFormat = "yaml"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// Valid checks if the output format is known.
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatTable, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses a string into an OutputFormat.
// The second return value is false when the string is not a known format.
func ParseOutputFormat(s string) (OutputFormat, bool) {
	switch strings.ToLower(s) {
	case "table":
		return FormatTable, true
	case "json":
		return FormatJSON, true
	case "yaml", "yml":
		return FormatYAML, true
	default:
		return OutputFormat(s), false
	}
}

// ValidFormats returns the valid output format strings.
func ValidFormats() []string {
	return []string{"table", "json", "yaml"}
}

// WriteStructured encodes v as JSON or YAML to w.
func WriteStructured(w io.Writer, format OutputFormat, v any) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("format %q is not a structured format", format)
	}
}
