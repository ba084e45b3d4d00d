//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"

	"github.com/dkoosis/zshift/internal/magetasks"
)

// Default is build.
var Default = Build

func init() {
	if err := magetasks.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "mage: %v\n", err)
		os.Exit(1)
	}
}

// Build compiles bin/zshift.
func Build() error {
	return magetasks.BuildAll()
}

// Install puts a version-stamped zshift in GOBIN.
func Install() error {
	return magetasks.Install()
}

// Doctor builds zshift and runs `zshift doctor` against this machine.
func Doctor() error {
	return magetasks.Doctor()
}

// Clean deletes bin/ and coverage output.
func Clean() error {
	return magetasks.Clean()
}

// QA lints, then tests and builds; lint findings only warn.
func QA() error {
	return magetasks.QualityCheck()
}

type Lint mg.Namespace

// All runs gofmt, go vet, staticcheck and golangci-lint.
func (Lint) All() error {
	return magetasks.LintAll()
}

// Fmt lists files gofmt would change.
func (Lint) Fmt() error {
	return magetasks.LintFormat()
}

// Vet runs go vet.
func (Lint) Vet() error {
	return magetasks.LintVet()
}

// Fix lets golangci-lint apply its suggested edits.
func (Lint) Fix() error {
	return magetasks.LintExternal(true)
}

type Test mg.Namespace

// All runs the unit tests.
func (Test) All() error {
	return magetasks.TestAll()
}

// Cover writes coverage.out and prints per-function coverage.
func (Test) Cover() error {
	return magetasks.TestCoverage()
}

// Race runs the tests under the race detector.
func (Test) Race() error {
	return magetasks.TestRace()
}
