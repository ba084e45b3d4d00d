// Package selector builds candidate pools from the themes directory and the
// font catalog and draws one entry uniformly at random.
package selector

import (
	"math/rand/v2"
	"os"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/dkoosis/zshift/internal/domain"
	"github.com/dkoosis/zshift/internal/paths"
	"github.com/dkoosis/zshift/internal/prefs"
)

// ThemesDirHint tells the user how to point zshift at a themes directory.
const ThemesDirHint = "Set --themes-dir or ZSH_THEMES_DIR, or install Oh My Zsh"

// Selector draws themes and fonts.
type Selector struct {
	// Pick returns an index in [0, n). Nil means math/rand/v2.
	Pick func(n int) int
	Log  *zap.Logger
}

func (s Selector) pick(pool []string) string {
	pickFn := s.Pick
	if pickFn == nil {
		pickFn = rand.IntN
	}
	return pool[pickFn(len(pool))]
}

func (s Selector) log() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

// ListThemes returns the suffix-stripped names of theme files in dir, sorted.
func ListThemes(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), prefs.ThemeSuffix) {
			continue
		}
		if name := strings.TrimSuffix(e.Name(), prefs.ThemeSuffix); name != "" {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}

// LoadThemes lists the resolved themes directory, mapping every failure to a
// not-found error that carries the remediation hint.
func LoadThemes(dir paths.ResolvedPath) ([]string, error) {
	if !dir.Found() {
		return nil, &domain.OpError{
			Op:   "resolve themes directory",
			Kind: domain.KindNotFound,
			Err:  domain.ErrThemesDirNotFound,
			Hint: ThemesDirHint,
		}
	}
	names, err := ListThemes(dir.Path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "list themes in",
			Kind: domain.KindNotFound,
			Path: dir.Path,
			Err:  err,
			Hint: ThemesDirHint,
		}
	}
	return names, nil
}

// FreshThemes removes excluded and liked names from all.
// Liked themes are held back so unseen themes come up first.
func FreshThemes(all []string, excluded, liked prefs.NamedList) []string {
	var pool []string
	for _, name := range all {
		if excluded.Contains(name) || liked.Contains(name) {
			continue
		}
		pool = append(pool, name)
	}
	return pool
}

// SelectTheme picks a theme from the fresh pool, falling back to the liked list
// when the directory has nothing new to offer.
func (s Selector) SelectTheme(excluded, liked prefs.NamedList, themesDir paths.ResolvedPath) (string, error) {
	all, err := LoadThemes(themesDir)
	if err != nil {
		return "", err
	}
	return s.SelectThemeFrom(all, excluded, liked)
}

// SelectThemeFrom is SelectTheme over an already listed directory.
func (s Selector) SelectThemeFrom(all []string, excluded, liked prefs.NamedList) (string, error) {
	pool := FreshThemes(all, excluded, liked)
	s.log().Debug("theme pool",
		zap.Int("directory", len(all)),
		zap.Int("excluded", len(excluded)),
		zap.Int("liked", len(liked)),
		zap.Int("fresh", len(pool)))

	if len(pool) == 0 {
		pool = liked
		s.log().Debug("fresh theme pool empty, using liked themes", zap.Int("liked", len(liked)))
	}
	if len(pool) == 0 {
		return "", &domain.OpError{
			Op:   "select theme",
			Kind: domain.KindEmptyPool,
			Err:  domain.ErrNoThemes,
			Hint: "Remove entries from the excluded list or like a theme",
		}
	}
	return s.pick(pool), nil
}

// FreshFonts returns catalog entries whose canonical name is neither liked nor excluded.
func FreshFonts(catalog []string, excluded, liked prefs.NamedList) []string {
	var pool []string
	for _, raw := range catalog {
		c := prefs.Canonical(prefs.Font, raw)
		if excluded.Contains(c) || liked.Contains(c) {
			continue
		}
		pool = append(pool, raw)
	}
	return pool
}

// SelectFont picks a raw catalog font name. ok is false when the catalog is empty.
//
// Order: fresh fonts, then liked fonts present in the catalog, then anything
// not excluded.
func (s Selector) SelectFont(excluded, liked prefs.NamedList, catalog []string) (font string, ok bool) {
	if len(catalog) == 0 {
		return "", false
	}

	pool := FreshFonts(catalog, excluded, liked)
	if len(pool) == 0 {
		byCanonical := make(map[string]string, len(catalog))
		for _, raw := range catalog {
			c := prefs.Canonical(prefs.Font, raw)
			if _, seen := byCanonical[c]; !seen {
				byCanonical[c] = raw
			}
		}
		for _, name := range liked {
			if raw, found := byCanonical[name]; found {
				pool = append(pool, raw)
			}
		}
	}
	if len(pool) == 0 {
		for _, raw := range catalog {
			if !excluded.Contains(prefs.Canonical(prefs.Font, raw)) {
				pool = append(pool, raw)
			}
		}
	}
	s.log().Debug("font pool", zap.Int("catalog", len(catalog)), zap.Int("candidates", len(pool)))

	if len(pool) == 0 {
		return "", false
	}
	return s.pick(pool), true
}
