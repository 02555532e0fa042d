package config

import (
	"github.com/charmbracelet/log"

	"github.com/mcpstack/tool-bootstrap/internal/names"
)

// ConfigSource indicates where a resolved value came from.
type ConfigSource string

const (
	// SourceFlag indicates the value came from a command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates the value came from an environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates the value came from the stored config file.
	SourceConfig ConfigSource = "config"
	// SourceDerived indicates the value was derived from the resolved slug.
	SourceDerived ConfigSource = "derived"
	// SourceDefault indicates the value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue records how a single setting was resolved.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource
	// Shadowed holds lower-precedence values that lost.
	Shadowed map[ConfigSource]string
}

// NameInputs are the candidate sources for name resolution.
type NameInputs struct {
	// Flags holds explicitly provided values. Empty strings count as unset.
	Flags names.NameSet

	// Stored is the stored config, or nil when absent or disabled.
	Stored *names.NameSet
}

// ResolveNames resolves each of the five fields independently with the
// precedence flag > stored config > default. The default of tool_slug and
// class_name is the placeholder; the default of the other three is derived
// from the resolved slug, which equals the placeholder when the slug is.
// The slug is normalized the way Derive normalizes it.
func ResolveNames(in NameInputs) (names.NameSet, []ResolvedValue) {
	var out names.NameSet
	values := make([]ResolvedValue, 0, len(names.Fields()))

	for _, f := range names.Fields() {
		rv := ResolvedValue{Key: string(f), Shadowed: make(map[ConfigSource]string)}

		flag := in.Flags.Get(f)
		stored := ""
		if in.Stored != nil {
			stored = in.Stored.Get(f)
		}
		def, defSource := defaultFor(f, out.ToolSlug)

		switch {
		case flag != "":
			rv.Value, rv.Source = flag, SourceFlag
			if stored != "" {
				rv.Shadowed[SourceConfig] = stored
			}
		case stored != "":
			rv.Value, rv.Source = stored, SourceConfig
		default:
			rv.Value, rv.Source = def, defSource
		}
		if f == names.FieldToolSlug {
			rv.Value = names.NormalizeSlug(rv.Value)
		}
		if rv.Source != defSource && def != rv.Value {
			rv.Shadowed[defSource] = def
		}

		out.Set(f, rv.Value)
		values = append(values, rv)
	}

	return out, values
}

// defaultFor returns the lowest-precedence value of f given the already
// resolved slug. Fields() orders tool_slug first.
func defaultFor(f names.Field, slug string) (string, ConfigSource) {
	switch f {
	case names.FieldPackageName:
		return names.DefaultPackageName(slug), SourceDerived
	case names.FieldDistName:
		return names.DefaultDistName(slug), SourceDerived
	case names.FieldEnvPrefix:
		return names.DefaultEnvPrefix(slug), SourceDerived
	default:
		return names.Placeholder(f), SourceDefault
	}
}

// ResolveRootOptions are the candidate sources for the project root.
type ResolveRootOptions struct {
	FlagValue string
	EnvValue  string
	// Detected is the root found by searching upward from the working directory.
	Detected string
}

// ResolveRoot resolves the project root with the precedence
// --root flag > MCPSTACK_ROOT > detected root.
func ResolveRoot(opts ResolveRootOptions) ResolvedValue {
	rv := ResolvedValue{Key: "root", Shadowed: make(map[ConfigSource]string)}

	switch {
	case opts.FlagValue != "":
		rv.Value, rv.Source = opts.FlagValue, SourceFlag
		if opts.EnvValue != "" {
			rv.Shadowed[SourceEnv] = opts.EnvValue
		}
		rv.Shadowed[SourceDefault] = opts.Detected
	case opts.EnvValue != "":
		rv.Value, rv.Source = opts.EnvValue, SourceEnv
		rv.Shadowed[SourceDefault] = opts.Detected
	default:
		rv.Value, rv.Source = opts.Detected, SourceDefault
	}

	return rv
}

// LogResolvedValues logs each resolution and its shadowed values at debug level.
func LogResolvedValues(logger *log.Logger, values []ResolvedValue) {
	for _, v := range values {
		logger.Debug("value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			logger.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
