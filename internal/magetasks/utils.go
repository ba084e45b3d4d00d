package magetasks

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/magefile/mage/sh"
)

// Run prints a section header for title and runs the command with output
// streamed to the terminal.
func Run(title, name string, args ...string) error {
	PrintH2Header(title)
	if err := sh.RunV(name, args...); err != nil {
		PrintError(title + " failed")
		return err
	}
	PrintSuccess(title)
	return nil
}

// IsCommandNotFound checks if the error indicates the command was not found.
// This handles exec.ErrNotFound and the wrapped text sh reports.
func IsCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "executable file not found") ||
		strings.Contains(errStr, "no such file or directory")
}
