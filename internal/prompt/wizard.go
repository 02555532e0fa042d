package prompt

import (
	"github.com/mcpstack/tool-bootstrap/internal/names"
)

// Question titles asked by AskNames, in order.
const (
	TitleToolSlug    = "Tool slug (snake_case)"
	TitleClassName   = "Class name (PascalCase)"
	TitlePackageName = "Package name (module)"
	TitleDistName    = "Distribution name (PyPI, kebab-case)"
	TitleEnvPrefix   = "ENV prefix (UPPER_SNAKE)"
)

// AskNames walks the user through the five names. Each default is the flag
// value, else the stored value, else a suggestion: the placeholder slug, a
// PascalCase class from the slug (the placeholder class for the placeholder
// slug), and the slug-derived package, dist and env
// names for the slug just entered. Answers are not validated here.
func AskNames(p Prompter, flags names.NameSet, stored *names.NameSet) (names.NameSet, error) {
	pick := func(f names.Field, fallback string) string {
		if v := flags.Get(f); v != "" {
			return v
		}
		if stored != nil {
			if v := stored.Get(f); v != "" {
				return v
			}
		}
		return fallback
	}

	var n names.NameSet
	var err error

	if n.ToolSlug, err = p.Input(TitleToolSlug, pick(names.FieldToolSlug, names.PlaceholderToolSlug)); err != nil {
		return n, err
	}
	n.ToolSlug = names.NormalizeSlug(n.ToolSlug)

	classDefault := names.SuggestClassName(n.ToolSlug)
	if n.ToolSlug == names.PlaceholderToolSlug {
		classDefault = names.PlaceholderClassName
	}
	if n.ClassName, err = p.Input(TitleClassName, pick(names.FieldClassName, classDefault)); err != nil {
		return n, err
	}
	if n.PackageName, err = p.Input(TitlePackageName, pick(names.FieldPackageName, names.DefaultPackageName(n.ToolSlug))); err != nil {
		return n, err
	}
	if n.DistName, err = p.Input(TitleDistName, pick(names.FieldDistName, names.DefaultDistName(n.ToolSlug))); err != nil {
		return n, err
	}
	if n.EnvPrefix, err = p.Input(TitleEnvPrefix, pick(names.FieldEnvPrefix, names.DefaultEnvPrefix(n.ToolSlug))); err != nil {
		return n, err
	}
	return n, nil
}
