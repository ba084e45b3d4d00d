package magetasks

import (
	"fmt"
	"strings"
	"time"

	"github.com/magefile/mage/sh"
)

// LDFlags stamps internal/version with the given build metadata.
func LDFlags(version, commit, date string) string {
	pkg := ModulePath + "/internal/version"
	return fmt.Sprintf("-s -w -X '%s.Version=%s' -X '%s.CommitHash=%s' -X '%s.BuildDate=%s'",
		pkg, version, pkg, commit, pkg, date)
}

// BuildAll builds the zshift binary.
func BuildAll() error {
	ldflags := LDFlags(gitVersion(), gitCommit(), time.Now().UTC().Format(time.RFC3339))
	if err := Run("Build", "go", "build", "-ldflags", ldflags, "-o", BinPath, MainPackage); err != nil {
		return err
	}
	PrintInfo("Built: " + BinPath)
	return nil
}

// Install runs go install with the same ldflags, placing zshift in GOBIN.
func Install() error {
	ldflags := LDFlags(gitVersion(), gitCommit(), time.Now().UTC().Format(time.RFC3339))
	return Run("Install", "go", "install", "-ldflags", ldflags, MainPackage)
}

// Doctor builds the binary and runs its doctor report.
func Doctor() error {
	if err := BuildAll(); err != nil {
		return err
	}
	return Run("Doctor", BinPath, "doctor")
}

// Clean removes build artifacts.
func Clean() error {
	PrintH2Header("Clean")
	if err := sh.Rm("./bin"); err != nil {
		return err
	}
	if err := sh.Rm("coverage.out"); err != nil {
		return err
	}
	PrintSuccess("Cleaned build artifacts")
	return nil
}

func gitVersion() string {
	out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty", "--match=v*")
	if err != nil || strings.TrimSpace(out) == "" {
		return "dev"
	}
	return strings.TrimSpace(out)
}

func gitCommit() string {
	out, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil || strings.TrimSpace(out) == "" {
		return "unknown"
	}
	return strings.TrimSpace(out)
}
