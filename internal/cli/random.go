package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/dkoosis/zshift/internal/config"
	"github.com/dkoosis/zshift/internal/prefs"
)

// fontFallback is printed as FIGLET_FONT when no font could be chosen.
const fontFallback = "random"

// bannerPrefix starts the banner text; the theme name follows.
const bannerPrefix = "ZShift x "

// addRandomFlags registers the output flags. They live on the root command too
// so a bare `zshift` accepts them.
func addRandomFlags(flags *pflag.FlagSet) {
	flags.String("emit", "", "theme line format: bare or prefixed (default bare)")
	flags.Bool("no-banner", false, "skip the FIGlet banner")
}

func (a *App) newRandomCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print a random theme with a FIGlet banner",
		Long: `Print a FIGlet banner, a FIGLET_FONT line and a randomly chosen theme.

Themes you have neither liked nor excluded come first. When none are left the
liked themes are used.`,
		Example: `  eval "$(zshift random --emit prefixed | tail -n 2)"`,
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runRandom(cmd)
		},
	}
	addRandomFlags(cmd.Flags())
	return cmd
}

func (a *App) runRandom(cmd *cobra.Command) error {
	sel := a.selector()

	theme, err := sel.SelectTheme(
		a.loadList(prefs.Theme, prefs.Excluded),
		a.loadList(prefs.Theme, prefs.Liked),
		a.themesDir(),
	)
	if err != nil {
		return err
	}

	renderer := a.bannerRenderer()
	font, ok := sel.SelectFont(
		a.loadList(prefs.Font, prefs.Excluded),
		a.loadList(prefs.Font, prefs.Liked),
		renderer.Fonts(),
	)
	fontLine := fontFallback
	if ok {
		fontLine = prefs.Canonical(prefs.Font, font)
	}
	a.log.Debug("selected", zap.String("theme", theme), zap.String("font", font))

	out := cmd.OutOrStdout()
	if a.settings.Banner {
		text, err := renderer.Render(bannerPrefix+theme, font)
		if err != nil {
			a.log.Warn("banner skipped", zap.Error(err))
		} else {
			fmt.Fprintln(out, text)
		}
	}
	fmt.Fprintf(out, "FIGLET_FONT=%s\n", fontLine)
	fmt.Fprintln(out, themeLine(a.settings.Emit, theme))
	return nil
}

func themeLine(emit config.Emit, theme string) string {
	if emit == config.EmitPrefixed {
		return config.ThemeKey + "=" + theme
	}
	return theme
}
