package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dkoosis/zshift/internal/domain"
	"github.com/dkoosis/zshift/internal/prefs"
	"github.com/dkoosis/zshift/internal/selector"
)

func (a *App) newPreferenceCommand(p prefs.Polarity) *cobra.Command {
	verb := "like"
	short := "Add a theme or font to your liked list"
	if p == prefs.Excluded {
		verb = "exclude"
		short = "Add a theme or font to your excluded list so it is never picked"
	}

	var kind string
	cmd := &cobra.Command{
		Use:     verb + " <name>",
		Short:   short,
		Example: fmt.Sprintf("  zshift %s agnoster\n  zshift %s --kind font slant", verb, verb),
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ok := prefs.ParseSubject(kind)
			if !ok {
				return &domain.OpError{
					Op:   verb,
					Kind: domain.KindInvalid,
					Err:  fmt.Errorf("unknown kind %q (must be: theme, font)", kind),
				}
			}
			return a.runPreference(cmd, s, p, args[0])
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "theme", "what the name refers to: theme or font")
	return cmd
}

func (a *App) runPreference(cmd *cobra.Command, s prefs.Subject, p prefs.Polarity, name string) error {
	a.warnIfUnknown(s, name)

	res, err := a.loader().Add(s, p, name, a.listFlag(s, p))
	if err != nil {
		return err
	}

	label := subjectLabel(s)
	listName := fmt.Sprintf("%s %ss", p, s)
	out := cmd.OutOrStdout()
	switch res.Outcome {
	case prefs.AlreadyPresent:
		fmt.Fprintf(out, "%s '%s' is already in your %s.\n", label, res.Name, listName)
	default:
		fmt.Fprintf(out, "%s '%s' has been added to your %s.\n", label, res.Name, listName)
	}
	return nil
}

func subjectLabel(s prefs.Subject) string {
	if s == prefs.Font {
		return "FIGlet font"
	}
	return "Theme"
}

// warnIfUnknown prints a hint when name matches nothing zshift knows about.
// It never blocks the write: a theme may be installed later.
func (a *App) warnIfUnknown(s prefs.Subject, name string) {
	canonical := prefs.Canonical(s, name)

	var known []string
	switch s {
	case prefs.Font:
		for _, f := range a.bannerRenderer().Fonts() {
			known = append(known, prefs.Canonical(prefs.Font, f))
		}
	default:
		dir := a.themesDir()
		if !dir.Found() {
			return
		}
		themes, err := selector.ListThemes(dir.Path)
		if err != nil {
			a.log.Debug("cannot list themes for name check", zap.Error(err))
			return
		}
		known = themes
	}
	if len(known) == 0 || slices.Contains(known, canonical) {
		return
	}

	msg := fmt.Sprintf("%s '%s' was not found", strings.ToLower(subjectLabel(s)), canonical)
	if suggestions := selector.Suggest(canonical, known); len(suggestions) > 0 {
		msg += fmt.Sprintf("; did you mean '%s'?", strings.Join(suggestions, "', '"))
	}
	a.warnf("%s", msg)
}
