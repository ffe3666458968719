package lib

import (
	"os"
	"sort"
	"strings"
)

// EnvironmentVariables is a complete child environment.
type EnvironmentVariables map[string]string

// EnvironmentVariablesUpdate is an overlay applied on top of an environment.
type EnvironmentVariablesUpdate map[string]string

// CurrentEnvironmentVariables returns the environment of this process.
func CurrentEnvironmentVariables() EnvironmentVariables {
	return ParseEnviron(os.Environ())
}

// ParseEnviron builds an environment from KEY=VALUE entries.
// Later duplicates win; entries without '=' are skipped.
func ParseEnviron(environ []string) EnvironmentVariables {
	env := make(EnvironmentVariables, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = v
	}
	return env
}

// UpdateWith returns a copy of env with update applied; update wins on key conflicts.
func (env EnvironmentVariables) UpdateWith(update EnvironmentVariablesUpdate) EnvironmentVariables {
	merged := make(EnvironmentVariables, len(env)+len(update))
	for k, v := range env {
		merged[k] = v
	}
	for k, v := range update {
		merged[k] = v
	}
	return merged
}

// Envv renders env as KEY=VALUE entries sorted by key.
func (env EnvironmentVariables) Envv() []string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	envv := make([]string, 0, len(keys))
	for _, k := range keys {
		envv = append(envv, k+"="+env[k])
	}
	return envv
}
