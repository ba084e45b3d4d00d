// Package config resolves zshift's behavioural settings.
//
// # Configuration Precedence
//
// Settings are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--emit, --no-banner, --palette, --debug)
//  2. Environment variables (ZSHIFT_EMIT, ZSHIFT_BANNER, ZSHIFT_PALETTE, NO_COLOR, ZSHIFT_DEBUG)
//  3. YAML settings file (<config dir>/zshift/config.yaml, or ZSHIFT_SETTINGS)
//  4. Hardcoded defaults
//
// Each resolved value records which tier supplied it so `zshift config show`
// can explain the result.
//
// File locations (preference lists, themes directory) are not settings; they
// are resolved by package paths.
//
// # Environment Variables
//
//   - ZSHIFT_EMIT: bare or prefixed
//   - ZSHIFT_BANNER: "false" or "0" suppresses the banner
//   - ZSHIFT_PALETTE: default, orca or mono
//   - NO_COLOR: any non-empty value forces the mono palette
//   - ZSHIFT_DEBUG: any non-empty value enables debug logging
package config
