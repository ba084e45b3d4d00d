// Package paths decides where zshift reads and writes its files.
//
// Every location is resolved by the same precedence chain:
//  1. an explicit flag value
//  2. a kind-specific environment variable
//  3. the zshift config directory (ZSHIFT_CONFIG_HOME, XDG_CONFIG_HOME, ~/.config)
//  4. for the themes directory only, well-known install locations that exist on disk
//
// The first rule yielding a non-empty value wins and is recorded as the Source.
package paths

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Kind identifies a resolvable location.
type Kind int

const (
	ConfigDir Kind = iota
	ExcludedThemes
	LikedThemes
	ExcludedFonts
	LikedFonts
	ThemesDir
	Settings
)

// Source is the provenance tag of a ResolvedPath.
type Source string

const (
	SourceFlag   Source = "flag"
	SourceEnv    Source = "env"
	SourceXDG    Source = "xdg"
	SourceProbe  Source = "probe"
	SourceBundle Source = "bundle"
	SourceNone   Source = "none"
)

// Environment variables consulted during resolution.
const (
	EnvConfigHome     = "ZSHIFT_CONFIG_HOME"
	EnvXDGConfigHome  = "XDG_CONFIG_HOME"
	EnvExcludedThemes = "ZSHIFT_EXCLUDED"
	EnvLikedThemes    = "ZSHIFT_LIKED"
	EnvExcludedFonts  = "ZSHIFT_FONT_EXCLUDED"
	EnvLikedFonts     = "ZSHIFT_FONT_LIKED"
	EnvThemesDir      = "ZSH_THEMES_DIR"
	EnvOhMyZsh        = "ZSH"
	EnvSettings       = "ZSHIFT_SETTINGS"
)

// AppDir is the directory created under the config dir.
const AppDir = "zshift"

type kindInfo struct {
	label  string
	envVar string
	rel    string // slash-separated, relative to the config dir
}

var kindTable = map[Kind]kindInfo{
	ConfigDir:      {label: "config dir", envVar: EnvConfigHome},
	ExcludedThemes: {label: "excluded themes", envVar: EnvExcludedThemes, rel: path.Join(AppDir, "excluded.txt")},
	LikedThemes:    {label: "liked themes", envVar: EnvLikedThemes, rel: path.Join(AppDir, "liked.txt")},
	ExcludedFonts:  {label: "excluded fonts", envVar: EnvExcludedFonts, rel: path.Join(AppDir, "fonts", "excluded.txt")},
	LikedFonts:     {label: "liked fonts", envVar: EnvLikedFonts, rel: path.Join(AppDir, "fonts", "liked.txt")},
	ThemesDir:      {label: "themes dir", envVar: EnvThemesDir},
	Settings:       {label: "settings", envVar: EnvSettings, rel: path.Join(AppDir, "config.yaml")},
}

// Kinds returns every kind in report order.
func Kinds() []Kind {
	return []Kind{ConfigDir, ExcludedThemes, LikedThemes, ExcludedFonts, LikedFonts, ThemesDir, Settings}
}

func (k Kind) String() string { return kindTable[k].label }

// EnvVar is the kind-specific override variable.
func (k Kind) EnvVar() string { return kindTable[k].envVar }

// RelPath is the slash-separated location of k relative to the config dir,
// or "" for directories. The bundled defaults use the same layout.
func (k Kind) RelPath() string { return kindTable[k].rel }

// ResolvedPath is a location together with the rule that produced it.
type ResolvedPath struct {
	Kind   Kind
	Path   string
	Source Source
	Origin string // variable or probe that supplied the value, if any
}

// Found reports whether resolution yielded a location.
func (r ResolvedPath) Found() bool {
	return r.Source != SourceNone && r.Path != ""
}

// Resolver applies the precedence chain against an explicit Env.
type Resolver struct {
	Env Env
	// ConfigDirFlag is an explicit config dir (--config-dir). It outranks the
	// environment and moves every list that is not set individually.
	ConfigDirFlag string
	// Exists reports whether a probed directory is present.
	// Nil means a real os.Stat check.
	Exists func(dir string) bool
}

// Resolve is a convenience wrapper around Resolver.Resolve.
func Resolve(kind Kind, flag string, env Env) ResolvedPath {
	return Resolver{Env: env}.Resolve(kind, flag)
}

// Resolve returns the location for kind. flag is the explicit command-line value, if any.
func (r Resolver) Resolve(kind Kind, flag string) ResolvedPath {
	home := r.Env.Home()

	if flag = strings.TrimSpace(flag); flag != "" {
		return ResolvedPath{Kind: kind, Path: clean(ExpandTilde(flag, home)), Source: SourceFlag, Origin: "flag"}
	}

	if kind == ConfigDir {
		return r.configDir(home)
	}

	info := kindTable[kind]
	if v := r.Env.Get(info.envVar); v != "" {
		return ResolvedPath{Kind: kind, Path: clean(ExpandTilde(v, home)), Source: SourceEnv, Origin: info.envVar}
	}

	if kind == ThemesDir {
		return r.probeThemesDir(home)
	}

	base := r.configDir(home)
	if !base.Found() {
		return ResolvedPath{Kind: kind, Source: SourceNone}
	}
	return ResolvedPath{Kind: kind, Path: filepath.Join(base.Path, filepath.FromSlash(info.rel)), Source: SourceXDG, Origin: base.Origin}
}

// configDir resolves the base config directory. The three environment tiers
// share the xdg tag; Origin records which one applied.
func (r Resolver) configDir(home string) ResolvedPath {
	if r.ConfigDirFlag != "" {
		return ResolvedPath{Kind: ConfigDir, Path: clean(ExpandTilde(r.ConfigDirFlag, home)), Source: SourceFlag, Origin: "--config-dir"}
	}
	for _, key := range []string{EnvConfigHome, EnvXDGConfigHome} {
		if v := r.Env.Get(key); v != "" {
			return ResolvedPath{Kind: ConfigDir, Path: clean(ExpandTilde(v, home)), Source: SourceXDG, Origin: key}
		}
	}
	if home == "" {
		return ResolvedPath{Kind: ConfigDir, Source: SourceNone}
	}
	return ResolvedPath{Kind: ConfigDir, Path: filepath.Join(home, ".config"), Source: SourceXDG, Origin: "~/.config"}
}

func (r Resolver) probeThemesDir(home string) ResolvedPath {
	type probe struct{ origin, path string }
	var probes []probe
	if zsh := r.Env.Get(EnvOhMyZsh); zsh != "" {
		probes = append(probes, probe{"$" + EnvOhMyZsh, filepath.Join(ExpandTilde(zsh, home), "themes")})
	}
	if home != "" {
		probes = append(probes, probe{"~/.oh-my-zsh", filepath.Join(home, ".oh-my-zsh", "themes")})
	}

	exists := r.Exists
	if exists == nil {
		exists = dirExists
	}
	for _, p := range probes {
		if exists(p.path) {
			return ResolvedPath{Kind: ThemesDir, Path: p.path, Source: SourceProbe, Origin: p.origin}
		}
	}
	return ResolvedPath{Kind: ThemesDir, Source: SourceNone}
}

func dirExists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}

func clean(p string) string {
	if p == "" {
		return ""
	}
	return filepath.Clean(p)
}
