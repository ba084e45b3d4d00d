package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dkoosis/zshift/internal/assets"
	"github.com/dkoosis/zshift/internal/domain"
	"github.com/dkoosis/zshift/internal/paths"
	"github.com/dkoosis/zshift/internal/profile"
)

type linkOptions struct {
	template string
	zshrc    string
	backup   bool
}

func (a *App) newLinkCommand() *cobra.Command {
	opts := &linkOptions{}
	cmd := &cobra.Command{
		Use:     "link-zshrc",
		Aliases: []string{"update-profile"},
		Short:   "Add or refresh the zshift block in ~/.zshrc",
		Long: `Insert the zshift block between its markers in your zsh profile, or refresh it
in place if it is already there. Running it twice leaves one block.

The block body comes from --custom-zshrc-path, ZSHIFT_ZSHRC_TEMPLATE, the
zshrc_template setting or the bundled template, in that order.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runLink(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.template, "custom-zshrc-path", "", "template file for the block body")
	cmd.Flags().StringVar(&opts.zshrc, "zshrc", "", "profile to update (default ~/.zshrc)")
	cmd.Flags().BoolVar(&opts.backup, "backup", false, "copy the profile to <profile>"+profile.BackupSuffix+" first")
	return cmd
}

func (a *App) templateLookup(flag string) profile.TemplateLookup {
	return profile.TemplateLookup{
		Flag:     flag,
		Env:      a.Env,
		Settings: a.settings.ZshrcTemplate,
		Bundle:   a.Bundle,
		Name:     assets.ZshrcTemplate,
	}
}

func (a *App) runLink(cmd *cobra.Command, opts *linkOptions) error {
	target := paths.ExpandTilde(opts.zshrc, a.Env.Home())
	if target == "" {
		if a.Env.Home() == "" {
			return &domain.OpError{
				Op:   "link-zshrc",
				Kind: domain.KindNotFound,
				Err:  errors.New("cannot determine home directory"),
				Hint: "Pass --zshrc",
			}
		}
		target = profile.DefaultPath(a.Env)
	}

	tpl, err := a.templateLookup(opts.template).Load()
	if err != nil {
		return err
	}
	a.log.Debug("zshrc template", zap.String("source", string(tpl.Source)), zap.String("path", tpl.Path))
	if tpl.Source == profile.TemplatePlaceholder {
		a.warnf("no zshrc template found; writing a placeholder block")
	}

	out := cmd.OutOrStdout()
	if opts.backup {
		dst, ok, err := profile.Backup(target)
		if err != nil {
			return err
		}
		if ok {
			fmt.Fprintf(out, "INFO: Backed up %s to %s.\n", target, dst)
		}
	}

	action, err := profile.Upsert(target, tpl.Body)
	if err != nil {
		return err
	}
	a.log.Debug("profile updated", zap.String("path", target), zap.Stringer("action", action))

	switch action {
	case profile.Appended:
		fmt.Fprintf(out, "SUCCESS: %s has been updated.\n", target)
	case profile.Refreshed:
		fmt.Fprintf(out, "INFO: Refreshed zshift config block in %s.\n", target)
	default:
		fmt.Fprintln(out, "INFO: zshift config block already up to date; no changes.")
	}
	return nil
}
