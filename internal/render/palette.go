package render

import "github.com/charmbracelet/lipgloss"

// Palette defines colors and icons for report output.
// Named palette rather than theme to keep it apart from the zsh themes zshift selects.
type Palette struct {
	Name    string
	Primary lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Icons   Icons
}

// Icons defines the status markers for a palette.
type Icons struct {
	Pass   string
	Fail   string
	Warn   string
	Info   string
	Bullet string
}

// DefaultPalette returns a vibrant palette bound to r.
func DefaultPalette(r *lipgloss.Renderer) Palette {
	return Palette{
		Name:    "default",
		Primary: r.NewStyle().Foreground(lipgloss.Color("39")),  // blue
		Success: r.NewStyle().Foreground(lipgloss.Color("34")),  // green
		Warning: r.NewStyle().Foreground(lipgloss.Color("214")), // orange
		Error:   r.NewStyle().Foreground(lipgloss.Color("196")), // red
		Muted:   r.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Bold:    r.NewStyle().Bold(true),
		Icons: Icons{
			Pass:   "✓",
			Fail:   "✗",
			Warn:   "⚠",
			Info:   "●",
			Bullet: "·",
		},
	}
}

// OrcaPalette returns a muted palette.
func OrcaPalette(r *lipgloss.Renderer) Palette {
	return Palette{
		Name:    "orca",
		Primary: r.NewStyle().Foreground(lipgloss.Color("75")),  // pale blue
		Success: r.NewStyle().Foreground(lipgloss.Color("108")), // sage green
		Warning: r.NewStyle().Foreground(lipgloss.Color("179")), // muted gold
		Error:   r.NewStyle().Foreground(lipgloss.Color("167")), // muted red
		Muted:   r.NewStyle().Foreground(lipgloss.Color("245")), // lighter gray
		Bold:    r.NewStyle().Bold(true),
		Icons: Icons{
			Pass:   "✓",
			Fail:   "✗",
			Warn:   "!",
			Info:   "·",
			Bullet: "·",
		},
	}
}

// MonoPalette returns a palette with no colors and ASCII icons.
func MonoPalette(r *lipgloss.Renderer) Palette {
	return Palette{
		Name:    "mono",
		Primary: r.NewStyle(),
		Success: r.NewStyle(),
		Warning: r.NewStyle(),
		Error:   r.NewStyle(),
		Muted:   r.NewStyle(),
		Bold:    r.NewStyle(),
		Icons: Icons{
			Pass:   "+",
			Fail:   "x",
			Warn:   "!",
			Info:   "*",
			Bullet: "-",
		},
	}
}

// PaletteByName returns a palette by name, defaulting to DefaultPalette.
func PaletteByName(name string, r *lipgloss.Renderer) Palette {
	switch name {
	case "orca":
		return OrcaPalette(r)
	case "mono":
		return MonoPalette(r)
	default:
		return DefaultPalette(r)
	}
}
