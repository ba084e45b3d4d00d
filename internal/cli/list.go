package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dkoosis/zshift/internal/domain"
	"github.com/dkoosis/zshift/internal/prefs"
	"github.com/dkoosis/zshift/internal/render"
	"github.com/dkoosis/zshift/internal/selector"
)

// listCategories are the accepted `zshift list` arguments, in help order.
var listCategories = []string{
	"available", "liked", "excluded",
	"available-fonts", "liked-fonts", "excluded-fonts",
}

func (a *App) newListCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:       "list <" + strings.Join(listCategories, "|") + ">",
		Short:     "List fresh, liked or excluded themes and fonts",
		Long:      "List themes or FIGlet fonts, one per line. available shows the fresh pool: everything neither liked nor excluded.",
		ValidArgs: listCategories,
		Args:      usageArgs(cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs)),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := a.listCategory(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return render.WriteJSONLine(out, names)
			}
			for _, n := range names {
				fmt.Fprintln(out, n)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print a JSON array")
	return cmd
}

func (a *App) listCategory(category string) ([]string, error) {
	switch category {
	case "available":
		all, err := selector.LoadThemes(a.themesDir())
		if err != nil {
			return nil, err
		}
		return selector.FreshThemes(all,
			a.loadList(prefs.Theme, prefs.Excluded),
			a.loadList(prefs.Theme, prefs.Liked)), nil
	case "liked":
		return a.loadList(prefs.Theme, prefs.Liked), nil
	case "excluded":
		return a.loadList(prefs.Theme, prefs.Excluded), nil
	case "available-fonts":
		return selector.FreshFonts(a.bannerRenderer().Fonts(),
			a.loadList(prefs.Font, prefs.Excluded),
			a.loadList(prefs.Font, prefs.Liked)), nil
	case "liked-fonts":
		return a.loadList(prefs.Font, prefs.Liked), nil
	case "excluded-fonts":
		return a.loadList(prefs.Font, prefs.Excluded), nil
	}
	return nil, &domain.OpError{
		Op:   "list",
		Kind: domain.KindInvalid,
		Err:  fmt.Errorf("unknown category %q (must be: %s)", category, strings.Join(listCategories, ", ")),
	}
}
