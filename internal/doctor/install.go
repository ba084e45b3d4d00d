package doctor

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/dkoosis/zshift/internal/paths"
)

// EnvSelfPath optionally names the installed binary the shell should run.
const EnvSelfPath = "ZSHIFT_PATH"

// InstallDir is where `go install` puts binaries for env, with the variable
// that decided it.
func InstallDir(env paths.Env) (dir, origin string) {
	if gobin := env.Get("GOBIN"); gobin != "" {
		return gobin, "GOBIN"
	}
	if gopath := env.Get("GOPATH"); gopath != "" {
		first := filepath.SplitList(gopath)[0]
		return filepath.Join(first, "bin"), "GOPATH"
	}
	home := env.Home()
	if home == "" {
		return "", ""
	}
	return filepath.Join(home, "go", "bin"), "default"
}

// OnPath reports whether dir is an entry of the PATH in env.
func OnPath(dir string, env paths.Env) bool {
	if dir == "" {
		return false
	}
	want := filepath.Clean(dir)
	return slices.ContainsFunc(filepath.SplitList(env.Get("PATH")), func(entry string) bool {
		return entry != "" && filepath.Clean(entry) == want
	})
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
