package banner

import "slices"

// catalog is the subset of go-figure's fonts that stay legible at terminal width.
var catalog = []string{
	"banner",
	"big",
	"block",
	"bubble",
	"digital",
	"doom",
	"epic",
	"graffiti",
	"isometric1",
	"larry3d",
	"lean",
	"mini",
	"ogre",
	"rectangles",
	"script",
	"shadow",
	"slant",
	"small",
	"smslant",
	"speed",
	"standard",
	"starwars",
	"stop",
	"thin",
}

// Catalog returns a copy of the bundled font names.
func Catalog() []string {
	return slices.Clone(catalog)
}
