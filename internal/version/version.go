// Package version carries build metadata stamped in by the linker.
package version

import "fmt"

// These variables are populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "dev"     // Default value if not built with LDFLAGS
	CommitHash = "unknown" // Default value
	BuildDate  = "unknown" // Default value
)

// String is the text printed by `zshift --version`.
func String() string {
	return fmt.Sprintf("zshift version %s\nCommit: %s\nBuilt: %s\n", Version, CommitHash, BuildDate)
}
