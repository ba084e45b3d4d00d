// Package domain holds the error taxonomy shared by every zshift command.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for broad classification.
var (
	ErrThemesDirNotFound = errors.New("no themes directory found")
	ErrNoThemes          = errors.New("no themes available")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	// KindNotFound marks a required input that could not be located.
	KindNotFound ErrorKind = "not_found"
	// KindEmptyPool marks a selection where every fallback pool was empty.
	KindEmptyPool ErrorKind = "empty_pool"
	// KindWrite marks a failure to create a directory or write a file.
	KindWrite ErrorKind = "write"
	// KindInvalid marks a bad argument or flag value.
	KindInvalid ErrorKind = "invalid"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Hint string // Optional: remediation shown to the user
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(e.Op)
	if e.Path != "" {
		fmt.Fprintf(&b, " %s", e.Path)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	} else {
		fmt.Fprintf(&b, ": %s", e.Kind)
	}
	if e.Hint != "" {
		fmt.Fprintf(&b, ". %s", e.Hint)
	}
	return b.String()
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on the packages that raised them.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// ExitCode maps an error to the process exit status.
// Invalid input exits 2 like a flag parse failure; every other failure exits 1.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case IsKind(err, KindInvalid):
		return 2
	default:
		return 1
	}
}
