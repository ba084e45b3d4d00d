// Command zshift picks a random Oh My Zsh theme and FIGlet font.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dkoosis/zshift/internal/cli"
	"github.com/dkoosis/zshift/internal/domain"
	"github.com/dkoosis/zshift/internal/paths"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the application logic and returns the exit code.
// This allows tests to invoke the logic without os.Exit terminating the test runner.
func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	self, err := os.Executable()
	if err != nil {
		self = ""
	}

	app := &cli.App{
		Env:    paths.EnvFromOS(),
		Stdout: stdout,
		Stderr: stderr,
		Self:   self,
	}
	if err := app.Execute(ctx, args); err != nil {
		fmt.Fprintln(stderr, cli.ErrorLine(err))
		return domain.ExitCode(err)
	}
	return 0
}
