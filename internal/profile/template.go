package profile

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/dkoosis/zshift/internal/domain"
	"github.com/dkoosis/zshift/internal/paths"
)

// EnvTemplate overrides the bundled profile template.
const EnvTemplate = "ZSHIFT_ZSHRC_TEMPLATE"

// Placeholder is written when no template can be found.
const Placeholder = "# zshift: zshrc template not found; run 'zshift doctor' or provide --custom-zshrc-path\n"

// TemplateSource names where a template came from.
type TemplateSource string

const (
	TemplateFlag        TemplateSource = "flag"
	TemplateEnv         TemplateSource = "env"
	TemplateSettings    TemplateSource = "settings"
	TemplateBundle      TemplateSource = "bundle"
	TemplatePlaceholder TemplateSource = "placeholder"
)

// Template is the block body spliced into the profile.
type Template struct {
	Body   string
	Source TemplateSource
	Path   string // file or bundled resource name, empty for the placeholder
}

// TemplateLookup lists the places a template may come from, highest priority first.
type TemplateLookup struct {
	Flag     string
	Env      paths.Env
	Settings string // zshrc_template from the settings file
	Bundle   fs.FS
	Name     string // bundled resource name
}

// Load returns the first available template. An explicitly named template
// that cannot be read is an error; a missing bundle falls through to the
// placeholder.
func (l TemplateLookup) Load() (Template, error) {
	home := l.Env.Home()
	explicit := []struct {
		path   string
		source TemplateSource
	}{
		{l.Flag, TemplateFlag},
		{l.Env.Get(EnvTemplate), TemplateEnv},
		{l.Settings, TemplateSettings},
	}
	for _, c := range explicit {
		if c.path == "" {
			continue
		}
		p := paths.ExpandTilde(c.path, home)
		b, err := os.ReadFile(p)
		if err != nil {
			return Template{}, &domain.OpError{
				Op:   fmt.Sprintf("load zshrc template (%s)", c.source),
				Kind: domain.KindNotFound,
				Path: p,
				Err:  err,
			}
		}
		return Template{Body: string(b), Source: c.source, Path: p}, nil
	}

	if l.Bundle != nil && l.Name != "" {
		if b, err := fs.ReadFile(l.Bundle, l.Name); err == nil {
			return Template{Body: string(b), Source: TemplateBundle, Path: l.Name}, nil
		}
	}
	return Template{Body: Placeholder, Source: TemplatePlaceholder}, nil
}
