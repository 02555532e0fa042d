package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for runtime settings.
const envPrefix = "MCPSTACK"

// Settings are runtime settings read from the environment. Flags take
// precedence over them; see ResolveRoot.
type Settings struct {
	Root       string
	Verbose    bool
	Timestamps *bool
}

// Loader reads Settings from MCPSTACK_* environment variables.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a settings loader bound to the environment.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("root", "MCPSTACK_ROOT")
	_ = v.BindEnv("verbose", "MCPSTACK_VERBOSE")
	_ = v.BindEnv("timestamps", "MCPSTACK_TIMESTAMPS")

	return &Loader{v: v}
}

// Load returns the current settings.
func (l *Loader) Load() Settings {
	s := Settings{
		Root:    l.v.GetString("root"),
		Verbose: l.v.GetBool("verbose"),
	}
	if l.v.IsSet("timestamps") {
		ts := l.v.GetBool("timestamps")
		s.Timestamps = &ts
	}
	return s
}
