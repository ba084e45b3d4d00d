// Package cli wires zshift's commands together with cobra.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/dkoosis/zshift/internal/assets"
	"github.com/dkoosis/zshift/internal/banner"
	"github.com/dkoosis/zshift/internal/config"
	"github.com/dkoosis/zshift/internal/domain"
	"github.com/dkoosis/zshift/internal/logging"
	"github.com/dkoosis/zshift/internal/paths"
	"github.com/dkoosis/zshift/internal/prefs"
	"github.com/dkoosis/zshift/internal/render"
	"github.com/dkoosis/zshift/internal/selector"
	"github.com/dkoosis/zshift/internal/version"
)

// App holds everything a command needs. Fields left nil get production defaults.
type App struct {
	Env    paths.Env
	Stdout io.Writer
	Stderr io.Writer

	// Bundle holds the shipped defaults. Nil means the embedded assets.
	Bundle fs.FS
	// Banner renders the random banner. Nil means FIGlet fonts.
	Banner banner.Renderer
	// Pick overrides random index selection.
	Pick func(n int) int
	// Self is the executable probed by doctor. Empty skips the probe.
	Self string
	// Log overrides the logger built from --debug.
	Log *zap.Logger

	flags    globalFlags
	resolver paths.Resolver
	settings *config.Resolved
	log      *zap.Logger
}

// globalFlags are persistent on the root command.
type globalFlags struct {
	excludedPath      string
	likedPath         string
	excludedFontsPath string
	likedFontsPath    string
	themesDir         string
	configDir         string
	settingsPath      string
	palette           string
	debug             bool
}

// Execute runs the command line args (without the program name).
func (a *App) Execute(ctx context.Context, args []string) error {
	root := a.NewRootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. With no subcommand it runs random.
func (a *App) NewRootCommand() *cobra.Command {
	a.defaults()

	root := &cobra.Command{
		Use:   "zshift",
		Short: "Pick a random Oh My Zsh theme, biased by your liked and excluded lists",
		Long: `zshift picks a random zsh theme from your themes directory, skipping the
themes you excluded and holding back the ones you liked, and prints it with a
FIGlet banner in a form your .zshrc can eval.

Run without a subcommand to pick a theme.`,
		Version:           version.Version,
		Args:              usageArgs(cobra.NoArgs),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runRandom(cmd)
		},
	}
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)
	root.SetVersionTemplate(version.String())
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &domain.OpError{Op: "parse flags", Kind: domain.KindInvalid, Err: err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.excludedPath, "excluded-path", "", "path to excluded themes list")
	pf.StringVar(&a.flags.likedPath, "liked-path", "", "path to liked themes list")
	pf.StringVar(&a.flags.excludedFontsPath, "excluded-fonts-path", "", "path to excluded FIGlet fonts list")
	pf.StringVar(&a.flags.likedFontsPath, "liked-fonts-path", "", "path to liked FIGlet fonts list")
	pf.StringVar(&a.flags.themesDir, "themes-dir", "", "directory containing .zsh-theme files")
	pf.StringVar(&a.flags.configDir, "config-dir", "", "config root holding zshift/ (default $ZSHIFT_CONFIG_HOME, $XDG_CONFIG_HOME or ~/.config)")
	pf.StringVar(&a.flags.settingsPath, "settings", "", "path to settings file")
	pf.StringVar(&a.flags.palette, "palette", "", "report colours: default, orca or mono")
	pf.BoolVar(&a.flags.debug, "debug", false, "write debug logs to stderr")

	addRandomFlags(root.Flags())

	root.AddCommand(
		a.newRandomCommand(),
		a.newPreferenceCommand(prefs.Liked),
		a.newPreferenceCommand(prefs.Excluded),
		a.newListCommand(),
		a.newConfigCommand(),
		a.newLinkCommand(),
		a.newDoctorCommand(),
	)
	return root
}

func (a *App) defaults() {
	if a.Env == nil {
		a.Env = paths.EnvFromOS()
	}
	if a.Stdout == nil {
		a.Stdout = io.Discard
	}
	if a.Stderr == nil {
		a.Stderr = io.Discard
	}
	if a.Bundle == nil {
		a.Bundle = assets.FS()
	}
}

// setup resolves paths and settings once flags are parsed.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	a.resolver = paths.Resolver{Env: a.Env, ConfigDirFlag: a.flags.configDir}

	flags := config.CliFlags{
		Palette:    a.flags.palette,
		PaletteSet: changed(cmd.Flags(), "palette"),
		Debug:      a.flags.debug,
		DebugSet:   changed(cmd.Flags(), "debug"),
	}
	if changed(cmd.Flags(), "emit") {
		flags.Emit, _ = cmd.Flags().GetString("emit")
		flags.EmitSet = true
	}
	if changed(cmd.Flags(), "no-banner") {
		flags.NoBanner, _ = cmd.Flags().GetBool("no-banner")
		flags.NoBannerSet = true
	}

	settingsPath := a.resolver.Resolve(paths.Settings, a.flags.settingsPath)
	settings, err := config.Resolve(flags, a.Env, settingsPath)
	if err != nil {
		return err
	}
	a.settings = settings

	a.log = a.Log
	if a.log == nil {
		a.log = logging.New(a.Stderr, settings.Debug)
	}
	if settings.FileErr != nil {
		a.log.Warn("settings file ignored", zap.String("path", settingsPath.Path), zap.Error(settings.FileErr))
	}
	a.log.Debug("settings resolved",
		zap.String("emit", string(settings.Emit)),
		zap.String("emit_source", settings.EmitSource),
		zap.Bool("banner", settings.Banner),
		zap.String("palette", settings.Palette))
	return nil
}

func changed(flags *pflag.FlagSet, name string) bool {
	f := flags.Lookup(name)
	return f != nil && f.Changed
}

// usageArgs marks argument count errors as invalid input so they exit 2.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return &domain.OpError{Op: cmd.CommandPath(), Kind: domain.KindInvalid, Err: err}
		}
		return nil
	}
}

func (a *App) loader() *prefs.Loader {
	return &prefs.Loader{Resolver: a.resolver, Bundle: a.Bundle, Log: a.log}
}

func (a *App) selector() selector.Selector {
	return selector.Selector{Pick: a.Pick, Log: a.log}
}

func (a *App) listFlag(s prefs.Subject, p prefs.Polarity) string {
	switch prefs.PathKind(s, p) {
	case paths.LikedThemes:
		return a.flags.likedPath
	case paths.ExcludedThemes:
		return a.flags.excludedPath
	case paths.LikedFonts:
		return a.flags.likedFontsPath
	default:
		return a.flags.excludedFontsPath
	}
}

func (a *App) loadList(s prefs.Subject, p prefs.Polarity) prefs.NamedList {
	return a.loader().Load(s, p, a.listFlag(s, p)).Names
}

func (a *App) themesDir() paths.ResolvedPath {
	rp := a.resolver.Resolve(paths.ThemesDir, a.flags.themesDir)
	a.log.Debug("themes dir resolved", zap.String("path", rp.Path), zap.String("source", string(rp.Source)))
	return rp
}

func (a *App) bannerRenderer() banner.Renderer {
	if a.Banner != nil {
		return a.Banner
	}
	f := banner.Figlet{Pick: a.Pick}
	mono := a.settings != nil && a.settings.Palette == "mono"
	if !mono && render.IsTTY(a.Stdout) {
		f.Style = lipgloss.NewRenderer(a.Stdout)
	}
	return f
}

func (a *App) palette() render.Palette {
	name := ""
	if a.settings != nil {
		name = a.settings.Palette
	}
	return render.PaletteByName(name, lipgloss.NewRenderer(a.Stdout))
}

// warnf prints a one-line warning to stderr.
func (a *App) warnf(format string, args ...any) {
	fmt.Fprintf(a.Stderr, "zshift: warning: "+format+"\n", args...)
}

// ErrorLine formats err the way main prints it.
func ErrorLine(err error) string {
	var oe *domain.OpError
	if errors.As(err, &oe) && oe.Kind == domain.KindInvalid {
		return fmt.Sprintf("zshift: %v\nRun 'zshift --help' for usage.", err)
	}
	return fmt.Sprintf("zshift: %v", err)
}
