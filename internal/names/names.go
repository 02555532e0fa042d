// Package names derives and validates the canonical name variants of an
// MCPStack tool: slug, class name, package name, distribution name and
// environment-variable prefix.
package names

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Field identifies one of the five name variants.
type Field string

const (
	// FieldToolSlug is the lower snake-case tool identifier.
	FieldToolSlug Field = "tool_slug"

	// FieldClassName is the PascalCase class name of the tool.
	FieldClassName Field = "class_name"

	// FieldPackageName is the importable package (module) name.
	FieldPackageName Field = "package_name"

	// FieldDistName is the kebab-case distribution name.
	FieldDistName Field = "dist_name"

	// FieldEnvPrefix is the upper snake-case environment-variable prefix.
	FieldEnvPrefix Field = "env_prefix"
)

// Fields returns all fields in canonical order.
func Fields() []Field {
	return []Field{FieldToolSlug, FieldClassName, FieldPackageName, FieldDistName, FieldEnvPrefix}
}

// FlagName returns the command-line spelling of the field (tool_slug -> tool-slug).
func (f Field) FlagName() string {
	return strings.ReplaceAll(string(f), "_", "-")
}

// Prefixes used when deriving names from the slug.
const (
	PackagePrefix = "mcpstack_"
	DistPrefix    = "mcpstack-"
	EnvPrefix     = "MCP_"
)

// NameSet is the full set of derived names for a generated tool.
type NameSet struct {
	ToolSlug    string `json:"tool_slug"`
	ClassName   string `json:"class_name"`
	PackageName string `json:"package_name"`
	DistName    string `json:"dist_name"`
	EnvPrefix   string `json:"env_prefix"`
}

// Get returns the value of a field. Unknown fields return "".
func (n NameSet) Get(f Field) string {
	switch f {
	case FieldToolSlug:
		return n.ToolSlug
	case FieldClassName:
		return n.ClassName
	case FieldPackageName:
		return n.PackageName
	case FieldDistName:
		return n.DistName
	case FieldEnvPrefix:
		return n.EnvPrefix
	default:
		return ""
	}
}

// Set assigns the value of a field. Unknown fields are ignored.
func (n *NameSet) Set(f Field, v string) {
	switch f {
	case FieldToolSlug:
		n.ToolSlug = v
	case FieldClassName:
		n.ClassName = v
	case FieldPackageName:
		n.PackageName = v
	case FieldDistName:
		n.DistName = v
	case FieldEnvPrefix:
		n.EnvPrefix = v
	}
}

// Overrides holds optional explicit values for the slug-derived fields.
// Empty strings mean "derive from the slug".
type Overrides struct {
	PackageName string
	DistName    string
	EnvPrefix   string
}

// NormalizeSlug lowercases the slug and turns hyphens into underscores.
func NormalizeSlug(slug string) string {
	return strings.ReplaceAll(strings.ToLower(slug), "-", "_")
}

// DefaultPackageName returns the package name derived from a slug.
func DefaultPackageName(slug string) string {
	return PackagePrefix + NormalizeSlug(slug)
}

// DefaultDistName returns the distribution name derived from a slug.
func DefaultDistName(slug string) string {
	return DistPrefix + strings.ReplaceAll(NormalizeSlug(slug), "_", "-")
}

// DefaultEnvPrefix returns the environment prefix derived from a slug.
func DefaultEnvPrefix(slug string) string {
	return EnvPrefix + strings.ToUpper(NormalizeSlug(slug))
}

// Derive builds a NameSet from a slug and class name, filling every unset
// override from the slug. Derive never fails; the result may be invalid and
// must go through Validate before it is trusted.
func Derive(slug, className string, o Overrides) NameSet {
	n := NameSet{
		ToolSlug:    NormalizeSlug(slug),
		ClassName:   className,
		PackageName: o.PackageName,
		DistName:    o.DistName,
		EnvPrefix:   o.EnvPrefix,
	}
	if n.PackageName == "" {
		n.PackageName = DefaultPackageName(slug)
	}
	if n.DistName == "" {
		n.DistName = DefaultDistName(slug)
	}
	if n.EnvPrefix == "" {
		n.EnvPrefix = DefaultEnvPrefix(slug)
	}
	return n
}

// SuggestClassName turns a slug into a PascalCase class name
// (my_tool -> MyTool). It is only a default offered to the user.
func SuggestClassName(slug string) string {
	caser := cases.Title(language.Und)
	var b strings.Builder
	for _, part := range strings.Split(NormalizeSlug(slug), "_") {
		if part == "" {
			continue
		}
		b.WriteString(caser.String(part))
	}
	return b.String()
}
