// Package doctor reports how zshift resolves its inputs on this machine.
// It only observes: nothing it runs may change a preference list or profile.
package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/dkoosis/zshift/internal/banner"
	"github.com/dkoosis/zshift/internal/paths"
	"github.com/dkoosis/zshift/internal/profile"
	"github.com/dkoosis/zshift/internal/render"
)

// Environment flags echoed by the report.
const (
	EnvFastShell = "ZSHIFT_FAST_SHELL"
	EnvCI        = "CI"
)

// BinaryName is the installed program name.
const BinaryName = "zshift"

// Doctor gathers diagnostics. Overrides holds explicit path flags by kind;
// Banner is checked by rendering one of its fonts.
type Doctor struct {
	Resolver  paths.Resolver
	Overrides map[paths.Kind]string
	Template  profile.TemplateLookup
	Banner    banner.Renderer
	Probe     Probe
	Log       *zap.Logger
}

// Run builds the report. It never fails; problems become rows.
func (d Doctor) Run(ctx context.Context) render.Report {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	env := d.Resolver.Env

	var rep render.Report
	rep.Sections = append(rep.Sections,
		d.binarySection(env),
		d.pathsSection(),
		d.resourcesSection(),
		envSection(env),
	)

	log.Debug("probing output contract", zap.String("exe", d.Probe.Exe))
	rep.Sections = append(rep.Sections, contractSection(d.Probe.Run(ctx)))
	return rep
}

func (d Doctor) binarySection(env paths.Env) render.Section {
	s := render.Section{Title: "binary"}

	self := env.Get(EnvSelfPath)
	if self == "" {
		s.Rows = append(s.Rows, render.Row{Label: EnvSelfPath, Value: "(unset)"})
	} else {
		s.Rows = append(s.Rows, render.Row{Label: EnvSelfPath, Value: self, Status: statusFor(fileExists(self))})
	}

	dir, origin := InstallDir(env)
	if dir == "" {
		s.Rows = append(s.Rows, render.Row{Label: "install dir", Value: "(unknown)", Status: render.StatusWarn})
		return s
	}
	onPath := OnPath(dir, env)
	present := fileExists(filepath.Join(dir, BinaryName))
	s.Rows = append(s.Rows,
		render.Row{Label: "install dir", Value: dir, Source: origin},
		render.Row{Label: "install dir on PATH", Value: yesNo(onPath), Status: statusFor(onPath)},
		render.Row{Label: "binary present", Value: yesNo(present), Status: statusFor(present)},
	)
	return s
}

func (d Doctor) pathsSection() render.Section {
	s := render.Section{Title: "resolved paths"}
	for _, kind := range paths.Kinds() {
		rp := d.Resolver.Resolve(kind, d.Overrides[kind])
		row := render.Row{Label: kind.String(), Source: string(rp.Source)}
		switch {
		case !rp.Found() && kind == paths.ThemesDir:
			row.Value = "(not found) set --themes-dir or ZSH_THEMES_DIR"
			row.Status = render.StatusFail
		case !rp.Found():
			row.Value = "(not found)"
			row.Status = render.StatusWarn
		case exists(rp.Path):
			row.Value = rp.Path
			row.Status = render.StatusOK
		case kind == paths.ThemesDir:
			row.Value = rp.Path + " (missing)"
			row.Status = render.StatusFail
		default:
			row.Value = rp.Path + " (missing, defaults apply)"
		}
		if rp.Origin != "" && rp.Source != paths.SourceFlag {
			row.Source = fmt.Sprintf("%s %s", rp.Source, rp.Origin)
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}

func (d Doctor) resourcesSection() render.Section {
	s := render.Section{Title: "resources"}

	tpl, err := d.Template.Load()
	switch {
	case err != nil:
		s.Rows = append(s.Rows, render.Row{Label: "zshrc template", Value: err.Error(), Status: render.StatusFail})
	case tpl.Source == profile.TemplatePlaceholder:
		s.Rows = append(s.Rows, render.Row{Label: "zshrc template", Value: "(not found, placeholder)", Status: render.StatusWarn})
	default:
		s.Rows = append(s.Rows, render.Row{Label: "zshrc template", Value: tpl.Path, Source: string(tpl.Source), Status: render.StatusOK})
	}

	s.Rows = append(s.Rows, d.fontsRow())
	return s
}

// fontsRow counts the banner fonts and renders the first one, so a catalog
// the library cannot load shows up as a failure.
func (d Doctor) fontsRow() render.Row {
	row := render.Row{Label: "figlet fonts"}
	if d.Banner == nil {
		row.Value, row.Status = "(no banner renderer)", render.StatusWarn
		return row
	}
	fonts := d.Banner.Fonts()
	if len(fonts) == 0 {
		row.Value, row.Status = "0 font(s)", render.StatusWarn
		return row
	}
	if _, err := d.Banner.Render(BinaryName, fonts[0]); err != nil {
		row.Value = fmt.Sprintf("%d font(s) listed, %s failed: %v", len(fonts), fonts[0], err)
		row.Status = render.StatusFail
		return row
	}
	row.Value = fmt.Sprintf("%d font(s), %s renders", len(fonts), fonts[0])
	row.Status = render.StatusOK
	return row
}

func envSection(env paths.Env) render.Section {
	s := render.Section{Title: "environment"}
	for _, key := range []string{EnvFastShell, EnvCI} {
		v := env.Get(key)
		if v == "" {
			v = "(unset)"
		}
		s.Rows = append(s.Rows, render.Row{Label: key, Value: v})
	}
	return s
}

func contractSection(c Contract) render.Section {
	s := render.Section{Title: "output contract"}
	row := render.Row{Label: "format", Value: c.Format, Status: render.StatusOK}
	if c.Format == ContractUnknown {
		row.Status = render.StatusWarn
	}
	s.Rows = append(s.Rows, row)
	if c.Err != nil {
		s.Rows = append(s.Rows, render.Row{Label: "error", Value: c.Err.Error(), Status: render.StatusFail})
	}
	if c.LastLine != "" {
		s.Rows = append(s.Rows, render.Row{Label: "last line", Value: c.LastLine})
	}
	return s
}

func exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func statusFor(ok bool) render.Status {
	if ok {
		return render.StatusOK
	}
	return render.StatusWarn
}
