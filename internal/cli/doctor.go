package cli

import (
	"github.com/spf13/cobra"

	"github.com/dkoosis/zshift/internal/doctor"
	"github.com/dkoosis/zshift/internal/paths"
	"github.com/dkoosis/zshift/internal/render"
)

func (a *App) newDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Show how zshift finds its binary, lists, themes and template",
		Long: `Report the install location, every resolved path with its provenance, the
zshrc template, the FIGlet font count and the output format of 'zshift random'.

doctor reads only; it changes no files.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := doctor.Doctor{
				Resolver:  a.resolver,
				Overrides: a.pathOverrides(),
				Template:  a.templateLookup(""),
				Banner:    a.bannerRenderer(),
				Probe:     doctor.Probe{Exe: a.Self, Args: a.probeArgs()},
				Log:       a.log,
			}
			rep := d.Run(cmd.Context())
			out := cmd.OutOrStdout()
			return rep.Write(out, a.palette(), render.Width(out))
		},
	}
}

// probeArgs runs random with the same explicit locations doctor was given.
func (a *App) probeArgs() []string {
	args := []string{"random"}
	for _, f := range []struct{ name, value string }{
		{"--config-dir", a.flags.configDir},
		{"--settings", a.flags.settingsPath},
		{"--themes-dir", a.flags.themesDir},
		{"--excluded-path", a.flags.excludedPath},
		{"--liked-path", a.flags.likedPath},
		{"--excluded-fonts-path", a.flags.excludedFontsPath},
		{"--liked-fonts-path", a.flags.likedFontsPath},
	} {
		if f.value != "" {
			args = append(args, f.name, f.value)
		}
	}
	return args
}

func (a *App) pathOverrides() map[paths.Kind]string {
	m := make(map[paths.Kind]string)
	for _, kind := range paths.Kinds() {
		if v := a.pathFlag(kind); v != "" {
			m[kind] = v
		}
	}
	return m
}
