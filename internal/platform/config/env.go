package config

import (
	"strings"

	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/v2"
)

// envPrefix marks the environment variables that override config keys.
const envPrefix = "APP_"

// envKeys maps the underscore form of every known config key back to its
// dotted koanf path, e.g. "commands_dispatch_timeout" to
// "commands.dispatch_timeout". Without it an underscore inside a key name
// could not be told apart from a nesting separator.
type envKeys map[string]string

func newEnvKeys(known []string) envKeys {
	keys := make(envKeys, len(known))
	for _, path := range known {
		keys[strings.ReplaceAll(path, ".", "_")] = path
	}
	return keys
}

// resolve turns APP_SERVER_READ_TIMEOUT into "server.read_timeout". A
// variable naming no known key falls back to one level per underscore.
func (e envKeys) resolve(name string) string {
	name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
	if path, ok := e[name]; ok {
		return path
	}
	return strings.ReplaceAll(name, "_", ".")
}

// envProvider reads APP_* variables, resolving names against known.
func envProvider(known []string) koanf.Provider {
	keys := newEnvKeys(known)
	return env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			return keys.resolve(name), value
		},
	})
}
