package prefs

import (
	"slices"
	"strings"

	"github.com/dkoosis/zshift/internal/paths"
)

// ThemeSuffix marks theme files in a themes directory.
const ThemeSuffix = ".zsh-theme"

// Subject is what a preference list holds.
type Subject int

const (
	Theme Subject = iota
	Font
)

func (s Subject) String() string {
	if s == Font {
		return "font"
	}
	return "theme"
}

// ParseSubject accepts the --kind flag spellings.
func ParseSubject(s string) (Subject, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "theme", "themes":
		return Theme, true
	case "font", "fonts":
		return Font, true
	}
	return Theme, false
}

// Polarity is whether a list promotes or removes its entries.
type Polarity int

const (
	Liked Polarity = iota
	Excluded
)

func (p Polarity) String() string {
	if p == Excluded {
		return "excluded"
	}
	return "liked"
}

// PathKind maps a list to its resolvable location.
func PathKind(s Subject, p Polarity) paths.Kind {
	switch {
	case s == Theme && p == Liked:
		return paths.LikedThemes
	case s == Theme:
		return paths.ExcludedThemes
	case p == Liked:
		return paths.LikedFonts
	default:
		return paths.ExcludedFonts
	}
}

// Canonical normalizes name for membership comparisons.
//
// Theme names stay case-sensitive and lose only the theme file suffix.
// Font names are case-insensitive and treat underscores as spaces, so
// "Larry_3D" and "larry 3d" are the same font.
func Canonical(s Subject, name string) string {
	if s == Font {
		return strings.ToLower(strings.TrimSpace(strings.ReplaceAll(name, "_", " ")))
	}
	return strings.TrimSuffix(strings.TrimSpace(name), ThemeSuffix)
}

// NamedList is a sorted, deduplicated set of canonical names.
type NamedList []string

// Parse builds a NamedList from list file contents: one entry per line,
// blank lines ignored.
func Parse(s Subject, content string) NamedList {
	var out NamedList
	for _, line := range strings.Split(content, "\n") {
		if name := Canonical(s, line); name != "" {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Contains reports whether the canonical name is in the list.
func (l NamedList) Contains(name string) bool {
	_, ok := slices.BinarySearch(l, name)
	return ok
}

// Set returns the list as a lookup map.
func (l NamedList) Set() map[string]bool {
	m := make(map[string]bool, len(l))
	for _, n := range l {
		m[n] = true
	}
	return m
}
