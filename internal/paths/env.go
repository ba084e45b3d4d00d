package paths

import (
	"os"
	"strings"
)

// Env is an explicit snapshot of the process environment.
// Resolution reads only from this map so callers can test it without t.Setenv.
type Env map[string]string

// EnvFromOS captures the current process environment. HOME is filled from
// the OS user lookup when the environment does not set it.
func EnvFromOS() Env {
	env := make(Env)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	if env.Get("HOME") == "" {
		if h, err := os.UserHomeDir(); err == nil {
			env["HOME"] = h
		}
	}
	return env
}

// Get returns the trimmed value of key, or "" when unset.
func (e Env) Get(key string) string {
	return strings.TrimSpace(e[key])
}

// Home returns HOME from the map, or "" when it is unset.
func (e Env) Home() string {
	return e.Get("HOME")
}

// ExpandTilde replaces a leading "~" with home. With no home the path is
// returned unchanged.
func ExpandTilde(path, home string) string {
	if home == "" || !strings.HasPrefix(path, "~") {
		return path
	}
	return home + path[1:]
}
