package config

import (
	"fmt"
	"strconv"

	"github.com/dkoosis/zshift/internal/domain"
	"github.com/dkoosis/zshift/internal/paths"
)

// Environment variables read during resolution.
const (
	EnvEmit    = "ZSHIFT_EMIT"
	EnvBanner  = "ZSHIFT_BANNER"
	EnvPalette = "ZSHIFT_PALETTE"
	EnvNoColor = "NO_COLOR"
	EnvDebug   = "ZSHIFT_DEBUG"
)

// Value sources, reported by `zshift config show`.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// CliFlags holds command-line values and whether the user set them.
type CliFlags struct {
	Emit     string
	NoBanner bool
	Palette  string
	Debug    bool

	EmitSet     bool
	NoBannerSet bool
	PaletteSet  bool
	DebugSet    bool
}

// Resolved holds the final settings after applying all priority rules.
type Resolved struct {
	Emit          Emit
	Banner        bool
	Palette       string
	Debug         bool
	ZshrcTemplate string

	// Resolution metadata
	EmitSource     string
	BannerSource   string
	PaletteSource  string
	DebugSource    string
	TemplateSource string

	SettingsPath paths.ResolvedPath
	// FileErr is set when the settings file existed but could not be used.
	// Resolution falls back to defaults for the file tier.
	FileErr error
}

// Resolve applies CLI > env > file > default for every setting.
// Invalid CLI or environment values are errors; a bad settings file is not.
func Resolve(flags CliFlags, env paths.Env, settings paths.ResolvedPath) (*Resolved, error) {
	file, fileErr := LoadFile(settings.Path)

	r := &Resolved{
		Emit:           DefaultEmit,
		Banner:         DefaultBanner,
		Palette:        DefaultPalette,
		EmitSource:     SourceDefault,
		BannerSource:   SourceDefault,
		PaletteSource:  SourceDefault,
		DebugSource:    SourceDefault,
		TemplateSource: SourceDefault,
		SettingsPath:   settings,
		FileErr:        fileErr,
	}

	if err := r.resolveEmit(flags, env, file); err != nil {
		return nil, err
	}
	if err := r.resolveBanner(flags, env, file); err != nil {
		return nil, err
	}
	if err := r.resolvePalette(flags, env, file); err != nil {
		return nil, err
	}

	switch {
	case flags.DebugSet:
		r.Debug, r.DebugSource = flags.Debug, SourceCLI
	case env.Get(EnvDebug) != "":
		r.Debug, r.DebugSource = true, SourceEnv
	}

	if file.ZshrcTemplate != "" {
		r.ZshrcTemplate, r.TemplateSource = file.ZshrcTemplate, SourceFile
	}

	return r, nil
}

func (r *Resolved) resolveEmit(flags CliFlags, env paths.Env, file *File) error {
	if flags.EmitSet {
		e, err := ParseEmit(flags.Emit)
		if err != nil {
			return invalid("--emit", err)
		}
		r.Emit, r.EmitSource = e, SourceCLI
		return nil
	}
	if v := env.Get(EnvEmit); v != "" {
		e, err := ParseEmit(v)
		if err != nil {
			return invalid(EnvEmit, err)
		}
		r.Emit, r.EmitSource = e, SourceEnv
		return nil
	}
	if file.Emit != "" {
		e, err := ParseEmit(file.Emit)
		if err != nil {
			r.FileErr = err
			return nil
		}
		r.Emit, r.EmitSource = e, SourceFile
	}
	return nil
}

func (r *Resolved) resolveBanner(flags CliFlags, env paths.Env, file *File) error {
	if flags.NoBannerSet {
		r.Banner, r.BannerSource = !flags.NoBanner, SourceCLI
		return nil
	}
	if b := getEnvBool(env, EnvBanner); b != nil {
		r.Banner, r.BannerSource = *b, SourceEnv
		return nil
	} else if env.Get(EnvBanner) != "" {
		return invalid(EnvBanner, fmt.Errorf("not a boolean: %q", env.Get(EnvBanner)))
	}
	if file.Banner != nil {
		r.Banner, r.BannerSource = *file.Banner, SourceFile
	}
	return nil
}

func (r *Resolved) resolvePalette(flags CliFlags, env paths.Env, file *File) error {
	switch {
	case flags.PaletteSet:
		if !validPalette(flags.Palette) {
			return invalid("--palette", fmt.Errorf("unknown palette %q (must be: default, orca, mono)", flags.Palette))
		}
		r.Palette, r.PaletteSource = flags.Palette, SourceCLI
	case env.Get(EnvNoColor) != "":
		r.Palette, r.PaletteSource = "mono", SourceEnv
	case env.Get(EnvPalette) != "":
		v := env.Get(EnvPalette)
		if !validPalette(v) {
			return invalid(EnvPalette, fmt.Errorf("unknown palette %q (must be: default, orca, mono)", v))
		}
		r.Palette, r.PaletteSource = v, SourceEnv
	case file.Palette != "":
		if !validPalette(file.Palette) {
			r.FileErr = fmt.Errorf("unknown palette %q in settings", file.Palette)
			return nil
		}
		r.Palette, r.PaletteSource = file.Palette, SourceFile
	}
	return nil
}

// getEnvBool reads a boolean from env, trying multiple keys.
// Returns nil if none are set to a parseable value.
func getEnvBool(env paths.Env, keys ...string) *bool {
	for _, key := range keys {
		if val := env.Get(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
		}
	}
	return nil
}

func invalid(source string, err error) error {
	return &domain.OpError{Op: "resolve settings (" + source + ")", Kind: domain.KindInvalid, Err: err}
}
