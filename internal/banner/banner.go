// Package banner renders the text-art line printed above a theme selection.
package banner

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/common-nighthawk/go-figure"
)

// Renderer turns text into a banner using a named font.
type Renderer interface {
	// Render returns the banner without a trailing newline. An empty font
	// lets the renderer choose.
	Render(text, font string) (string, error)
	// Fonts lists the font names Render accepts.
	Fonts() []string
}

// Colors used for banner rows, one per row, cycling.
var rowColors = []lipgloss.Color{"39", "34", "214", "170", "75", "108", "179"}

// Figlet renders FIGlet fonts bundled with go-figure.
type Figlet struct {
	// Catalog overrides the bundled font list.
	Catalog []string
	// Style is used to colour rows. Nil renders plain text.
	Style *lipgloss.Renderer
	// Pick chooses the starting colour. Nil means math/rand/v2.
	Pick func(n int) int
}

// Fonts implements Renderer.
func (f Figlet) Fonts() []string {
	if f.Catalog != nil {
		return f.Catalog
	}
	return Catalog()
}

// Render implements Renderer. Unknown fonts are an error rather than a panic.
func (f Figlet) Render(text, font string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render banner with font %q: %v", font, r)
		}
	}()

	rows := figure.NewFigure(text, font, false).Slicify()
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	if f.Style != nil {
		rows = f.colorize(rows)
	}
	return strings.Join(rows, "\n"), nil
}

func (f Figlet) colorize(rows []string) []string {
	pick := f.Pick
	if pick == nil {
		pick = rand.IntN
	}
	start := pick(len(rowColors))
	out := make([]string, len(rows))
	for i, row := range rows {
		c := rowColors[(start+i)%len(rowColors)]
		out[i] = f.Style.NewStyle().Foreground(c).Render(row)
	}
	return out
}

// Plain renders the text verbatim. It stands in when no font catalog is wanted.
type Plain struct{}

// Render implements Renderer.
func (Plain) Render(text, _ string) (string, error) { return text, nil }

// Fonts implements Renderer.
func (Plain) Fonts() []string { return nil }
