// Package render formats zshift's human-readable reports and machine output.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Status marks a report row.
type Status int

const (
	StatusInfo Status = iota
	StatusOK
	StatusWarn
	StatusFail
)

// Row is one labelled fact. Source is the provenance tag, if any.
type Row struct {
	Label  string
	Value  string
	Source string
	Status Status
}

// Section groups rows under a heading.
type Section struct {
	Title string
	Rows  []Row
}

// Report is a sequence of sections printed as aligned label/value tables.
type Report struct {
	Sections []Section
}

// Write renders the report to w.
func (r Report) Write(w io.Writer, p Palette, width int) error {
	labelWidth := 0
	for _, s := range r.Sections {
		for _, row := range s.Rows {
			labelWidth = max(labelWidth, runewidth.StringWidth(row.Label))
		}
	}

	// A Caser carries state, so each Write gets its own.
	titler := cases.Title(language.English)
	var sb strings.Builder
	for i, s := range r.Sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(p.Bold.Render(titler.String(s.Title)))
		sb.WriteString("\n")
		sb.WriteString(p.Muted.Render(strings.Repeat("─", min(width, 60))))
		sb.WriteString("\n")
		for _, row := range s.Rows {
			icon, style := p.statusStyle(row.Status)
			sb.WriteString(style.Render(icon))
			sb.WriteString(" ")
			sb.WriteString(runewidth.FillRight(row.Label, labelWidth))
			sb.WriteString("  ")
			sb.WriteString(row.Value)
			if row.Source != "" {
				sb.WriteString(" ")
				sb.WriteString(p.Muted.Render(fmt.Sprintf("[%s]", row.Source)))
			}
			sb.WriteString("\n")
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func (p Palette) statusStyle(s Status) (string, lipgloss.Style) {
	switch s {
	case StatusOK:
		return p.Icons.Pass, p.Success
	case StatusWarn:
		return p.Icons.Warn, p.Warning
	case StatusFail:
		return p.Icons.Fail, p.Error
	default:
		return p.Icons.Info, p.Primary
	}
}
