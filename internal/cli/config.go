package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dkoosis/zshift/internal/assets"
	"github.com/dkoosis/zshift/internal/config"
	"github.com/dkoosis/zshift/internal/domain"
	"github.com/dkoosis/zshift/internal/paths"
	"github.com/dkoosis/zshift/internal/render"
)

func (a *App) newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create or inspect zshift's configuration",
		Args:  usageArgs(cobra.NoArgs),
	}
	cmd.AddCommand(a.newConfigInitCommand(), a.newConfigShowCommand())
	return cmd
}

func (a *App) newConfigInitCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default lists and settings into the config directory",
		Long: `Write the bundled excluded and liked lists for themes and fonts, and a
default config.yaml, under <config-dir>/zshift. Existing files are kept unless
--force is given.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := a.resolver.Resolve(paths.ConfigDir, "")
			if !root.Found() {
				return &domain.OpError{
					Op:   "config init",
					Kind: domain.KindNotFound,
					Err:  errors.New("cannot determine config directory"),
					Hint: "Pass --config-dir or set HOME",
				}
			}
			files, err := assets.ConfigFiles()
			if err != nil {
				return err
			}
			results, err := config.Init(root.Path, a.Bundle, files, force)
			out := cmd.OutOrStdout()
			for _, r := range results {
				a.log.Debug("config init", zap.String("path", r.Path), zap.String("status", string(r.Status)))
				fmt.Fprintf(out, "%-11s %s\n", r.Status, r.Path)
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")
	return cmd
}

// configView is the JSON shape of `config show`.
type configView struct {
	Paths    []pathView    `json:"paths"`
	Settings []settingView `json:"settings"`
}

type pathView struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Source string `json:"source"`
	Origin string `json:"origin,omitempty"`
}

type settingView struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

func (a *App) newConfigShowCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show resolved paths and settings with where each came from",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			view := a.configView()
			out := cmd.OutOrStdout()
			if asJSON {
				return render.WriteJSONLine(out, view)
			}
			return view.report().Write(out, a.palette(), render.Width(out))
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func (a *App) configView() configView {
	var v configView
	for _, kind := range paths.Kinds() {
		rp := a.resolver.Resolve(kind, a.pathFlag(kind))
		v.Paths = append(v.Paths, pathView{
			Name:   kind.String(),
			Path:   rp.Path,
			Source: string(rp.Source),
			Origin: rp.Origin,
		})
	}

	s := a.settings
	tpl := s.ZshrcTemplate
	if tpl == "" {
		tpl = "(bundled)"
	}
	v.Settings = []settingView{
		{Name: "emit", Value: string(s.Emit), Source: s.EmitSource},
		{Name: "banner", Value: fmt.Sprint(s.Banner), Source: s.BannerSource},
		{Name: "palette", Value: s.Palette, Source: s.PaletteSource},
		{Name: "debug", Value: fmt.Sprint(s.Debug), Source: s.DebugSource},
		{Name: "zshrc_template", Value: tpl, Source: s.TemplateSource},
	}
	return v
}

func (v configView) report() render.Report {
	ps := render.Section{Title: "paths"}
	for _, p := range v.Paths {
		row := render.Row{Label: p.Name, Value: p.Path, Source: p.Source}
		if p.Path == "" {
			row.Value = "(not found)"
			row.Status = render.StatusWarn
		}
		if p.Origin != "" && p.Source != string(paths.SourceFlag) {
			row.Source = p.Source + " " + p.Origin
		}
		ps.Rows = append(ps.Rows, row)
	}
	ss := render.Section{Title: "settings"}
	for _, s := range v.Settings {
		ss.Rows = append(ss.Rows, render.Row{Label: s.Name, Value: s.Value, Source: s.Source})
	}
	return render.Report{Sections: []render.Section{ps, ss}}
}

// pathFlag returns the explicit override flag for kind, if any.
func (a *App) pathFlag(kind paths.Kind) string {
	switch kind {
	case paths.ExcludedThemes:
		return a.flags.excludedPath
	case paths.LikedThemes:
		return a.flags.likedPath
	case paths.ExcludedFonts:
		return a.flags.excludedFontsPath
	case paths.LikedFonts:
		return a.flags.likedFontsPath
	case paths.ThemesDir:
		return a.flags.themesDir
	case paths.Settings:
		return a.flags.settingsPath
	}
	return ""
}
