package doctor

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Contract formats of `zshift random` output.
const (
	ContractBare     = "bare"
	ContractPrefixed = "prefixed"
	ContractUnknown  = "unknown"
)

// themePrefix marks the theme line in prefixed output.
const themePrefix = "ZSH_THEME="

// Contract is what the random command printed when probed.
type Contract struct {
	Format   string
	LastLine string
	Err      error
}

// Classify inspects random command output.
func Classify(out string) Contract {
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	for _, l := range lines {
		if strings.HasPrefix(strings.TrimSpace(l), themePrefix) {
			return Contract{Format: ContractPrefixed, LastLine: last}
		}
	}
	if last == "" {
		return Contract{Format: ContractUnknown}
	}
	return Contract{Format: ContractBare, LastLine: last}
}

// Probe runs the program's own random command to observe its output format.
type Probe struct {
	// Exe is the program to run. Empty disables the probe.
	Exe  string
	Args []string
	// ExtraEnv is appended to the inherited environment.
	ExtraEnv []string
}

// waitDelay bounds how long Wait lingers on inherited pipes after a kill.
const waitDelay = time.Second

// Run executes the probe. The child runs in its own process group and the
// whole group is killed if ctx is cancelled. No timeout is applied.
func (p Probe) Run(ctx context.Context) Contract {
	if p.Exe == "" {
		return Contract{Format: ContractUnknown}
	}

	cmd := exec.CommandContext(ctx, p.Exe, p.Args...)
	setProcessGroup(cmd)
	cmd.Cancel = func() error { return killProcessGroup(cmd) }
	cmd.WaitDelay = waitDelay
	cmd.Env = append(os.Environ(), p.ExtraEnv...)

	out, err := cmd.Output()
	if err != nil {
		return Contract{Format: ContractUnknown, Err: err}
	}
	return Classify(string(out))
}
