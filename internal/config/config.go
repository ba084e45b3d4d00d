package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Emit is the output format of the selected theme line.
type Emit string

const (
	EmitBare     Emit = "bare"
	EmitPrefixed Emit = "prefixed"
)

// ThemeKey prefixes the theme line in prefixed mode.
const ThemeKey = "ZSH_THEME"

// ParseEmit validates an emit format.
func ParseEmit(s string) (Emit, error) {
	switch e := Emit(strings.ToLower(strings.TrimSpace(s))); e {
	case EmitBare, EmitPrefixed:
		return e, nil
	}
	return "", fmt.Errorf("unknown emit format %q (must be: bare, prefixed)", s)
}

// Palettes accepted by the palette setting.
var Palettes = []string{"default", "orca", "mono"}

func validPalette(name string) bool {
	for _, p := range Palettes {
		if p == name {
			return true
		}
	}
	return false
}

// Constants for default values.
const (
	DefaultEmit    = EmitBare
	DefaultBanner  = true
	DefaultPalette = "default"
)

// File is the on-disk settings file.
type File struct {
	Emit          string `yaml:"emit,omitempty"`
	Banner        *bool  `yaml:"banner,omitempty"`
	Palette       string `yaml:"palette,omitempty"`
	ZshrcTemplate string `yaml:"zshrc_template,omitempty"`
}

// LoadFile reads the settings file at path. A missing file yields an empty
// File and no error.
func LoadFile(path string) (*File, error) {
	if path == "" {
		return &File{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &File{}, nil
		}
		return &File{}, fmt.Errorf("read settings %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return &File{}, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return &f, nil
}
