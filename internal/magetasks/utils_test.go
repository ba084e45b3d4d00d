package magetasks

import (
	"errors"
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCommandNotFound(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil", err: nil, expected: false},
		{name: "exec.ErrNotFound", err: exec.ErrNotFound, expected: true},
		{name: "wrapped exec.ErrNotFound", err: fmt.Errorf("run: %w", exec.ErrNotFound), expected: true},
		{name: "executable file not found", err: errors.New(`failed to run "staticcheck": executable file not found in $PATH`), expected: true},
		{name: "no such file or directory", err: errors.New("fork/exec ./bin/zshift: no such file or directory"), expected: true},
		{name: "other error", err: errors.New("exit status 1"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsCommandNotFound(tt.err))
		})
	}
}

func TestRun_ReportsFailure_When_CommandMissing(t *testing.T) {
	out := capture(t, func() {
		err := Run("Missing Tool", "zshift-definitely-not-installed")
		assert.True(t, IsCommandNotFound(err), "err = %v", err)
	})

	assert.Contains(t, out, "=== Missing Tool ===")
	assert.Contains(t, out, "Missing Tool failed")
}
