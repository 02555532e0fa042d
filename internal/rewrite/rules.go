// Package rewrite substitutes the template's placeholder tokens with the
// names of a NameSet.
//
// Rules are a declarative, ordered table. Each rule matches exactly one
// placeholder token on word boundaries, and no two placeholders can match
// overlapping text:
//
//   - mcpstack_your_tool_name and your_tool_name cannot overlap because the
//     underscore before "your" is a word character, so \byour_tool_name never
//     matches inside the package placeholder.
//   - mcpstack-your-tool-name, YourTool and MCP_YOUR_TOOL_NAME share no
//     spelling with any other placeholder.
//
// Order therefore only fixes output determinism, not correctness.
package rewrite

import (
	"regexp"

	"github.com/mcpstack/tool-bootstrap/internal/names"
)

// Rule binds one placeholder pattern to a NameSet field.
type Rule struct {
	// Name describes the rule in reports.
	Name string

	// Field is the NameSet field whose value replaces the match.
	Field names.Field

	// Placeholder is the literal token the rule rewrites.
	Placeholder string

	// Pattern matches the placeholder. Compound patterns also consume the
	// single character that follows it.
	Pattern *regexp.Regexp

	// Compound marks prefix rules (YourToolCLI, MCP_YOUR_TOOL_NAME_PREFIX).
	Compound bool
}

var rules = []Rule{
	{
		Name:        "package name",
		Field:       names.FieldPackageName,
		Placeholder: names.PlaceholderPackageName,
		Pattern:     regexp.MustCompile(`\bmcpstack_your_tool_name\b`),
	},
	{
		Name:        "distribution name",
		Field:       names.FieldDistName,
		Placeholder: names.PlaceholderDistName,
		Pattern:     regexp.MustCompile(`\bmcpstack-your-tool-name\b`),
	},
	{
		Name:        "class name prefix",
		Field:       names.FieldClassName,
		Placeholder: names.PlaceholderClassName,
		Pattern:     regexp.MustCompile(`\bYourTool[A-Z_]`),
		Compound:    true,
	},
	{
		Name:        "class name",
		Field:       names.FieldClassName,
		Placeholder: names.PlaceholderClassName,
		Pattern:     regexp.MustCompile(`\bYourTool\b`),
	},
	{
		Name:        "tool slug",
		Field:       names.FieldToolSlug,
		Placeholder: names.PlaceholderToolSlug,
		Pattern:     regexp.MustCompile(`\byour_tool_name\b`),
	},
	{
		Name:        "env prefix prefix",
		Field:       names.FieldEnvPrefix,
		Placeholder: names.PlaceholderEnvPrefix,
		Pattern:     regexp.MustCompile(`\bMCP_YOUR_TOOL_NAME[A-Z0-9_]`),
		Compound:    true,
	},
	{
		Name:        "env prefix",
		Field:       names.FieldEnvPrefix,
		Placeholder: names.PlaceholderEnvPrefix,
		Pattern:     regexp.MustCompile(`\bMCP_YOUR_TOOL_NAME\b`),
	},
}

// Rules returns a copy of the ordered rule table.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}
