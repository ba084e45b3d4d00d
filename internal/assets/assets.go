// Package assets bundles the default preference lists, settings file and
// profile template shipped with the binary.
//
// The defaults/ tree mirrors the config directory layout, so a bundled list
// lives at the same relative path as the user's copy.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed defaults
var files embed.FS

// ZshrcTemplate is the bundled profile template name.
const ZshrcTemplate = "zshrc.txt"

// FS returns the bundled defaults rooted at the config dir layout.
func FS() fs.FS {
	sub, err := fs.Sub(files, "defaults")
	if err != nil {
		// "defaults" is embedded at build time.
		panic(err)
	}
	return sub
}

// ConfigFiles lists the bundled files that belong in the user's config dir,
// that is everything except the profile template.
func ConfigFiles() ([]string, error) {
	var out []string
	err := fs.WalkDir(FS(), ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || p == ZshrcTemplate {
			return nil
		}
		out = append(out, p)
		return nil
	})
	return out, err
}
