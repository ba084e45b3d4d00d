package config

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/zshift/internal/domain"
	"github.com/dkoosis/zshift/internal/paths"
)

func writeSettings(t *testing.T, content string) paths.ResolvedPath {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return paths.ResolvedPath{Kind: paths.Settings, Path: p, Source: paths.SourceXDG}
}

func TestParseEmit(t *testing.T) {
	t.Parallel()

	e, err := ParseEmit(" Prefixed ")
	require.NoError(t, err)
	assert.Equal(t, EmitPrefixed, e)

	_, err = ParseEmit("json")
	require.Error(t, err)
}

func TestLoadFile_ReturnsEmpty_When_Missing(t *testing.T) {
	t.Parallel()

	f, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &File{}, f)
}

func TestLoadFile_ParsesKeys(t *testing.T) {
	t.Parallel()

	rp := writeSettings(t, "emit: prefixed\nbanner: false\npalette: orca\nzshrc_template: ~/tpl.txt\n")
	f, err := LoadFile(rp.Path)
	require.NoError(t, err)
	assert.Equal(t, "prefixed", f.Emit)
	require.NotNil(t, f.Banner)
	assert.False(t, *f.Banner)
	assert.Equal(t, "orca", f.Palette)
	assert.Equal(t, "~/tpl.txt", f.ZshrcTemplate)
}

func TestResolve_PriorityOrder(t *testing.T) {
	t.Parallel()

	file := "emit: prefixed\nbanner: false\npalette: orca\n"

	tests := []struct {
		name              string
		flags             CliFlags
		env               paths.Env
		file              string
		wantEmit          Emit
		wantEmitSource    string
		wantBanner        bool
		wantBannerSource  string
		wantPalette       string
		wantPaletteSource string
	}{
		{
			name:              "defaults",
			env:               paths.Env{},
			wantEmit:          EmitBare,
			wantEmitSource:    SourceDefault,
			wantBanner:        true,
			wantBannerSource:  SourceDefault,
			wantPalette:       "default",
			wantPaletteSource: SourceDefault,
		},
		{
			name:              "file over default",
			env:               paths.Env{},
			file:              file,
			wantEmit:          EmitPrefixed,
			wantEmitSource:    SourceFile,
			wantBanner:        false,
			wantBannerSource:  SourceFile,
			wantPalette:       "orca",
			wantPaletteSource: SourceFile,
		},
		{
			name:              "env over file",
			env:               paths.Env{EnvEmit: "bare", EnvBanner: "1", EnvPalette: "mono"},
			file:              file,
			wantEmit:          EmitBare,
			wantEmitSource:    SourceEnv,
			wantBanner:        true,
			wantBannerSource:  SourceEnv,
			wantPalette:       "mono",
			wantPaletteSource: SourceEnv,
		},
		{
			name:              "cli over env",
			flags:             CliFlags{Emit: "prefixed", EmitSet: true, NoBanner: true, NoBannerSet: true, Palette: "default", PaletteSet: true},
			env:               paths.Env{EnvEmit: "bare", EnvBanner: "true", EnvNoColor: "1"},
			file:              file,
			wantEmit:          EmitPrefixed,
			wantEmitSource:    SourceCLI,
			wantBanner:        false,
			wantBannerSource:  SourceCLI,
			wantPalette:       "default",
			wantPaletteSource: SourceCLI,
		},
		{
			name:              "NO_COLOR forces mono",
			env:               paths.Env{EnvNoColor: "1", EnvPalette: "orca"},
			file:              file,
			wantEmit:          EmitPrefixed,
			wantEmitSource:    SourceFile,
			wantBanner:        false,
			wantBannerSource:  SourceFile,
			wantPalette:       "mono",
			wantPaletteSource: SourceEnv,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			settings := paths.ResolvedPath{Kind: paths.Settings, Source: paths.SourceNone}
			if tt.file != "" {
				settings = writeSettings(t, tt.file)
			}

			r, err := Resolve(tt.flags, tt.env, settings)
			require.NoError(t, err)
			assert.NoError(t, r.FileErr)
			assert.Equal(t, tt.wantEmit, r.Emit)
			assert.Equal(t, tt.wantEmitSource, r.EmitSource)
			assert.Equal(t, tt.wantBanner, r.Banner)
			assert.Equal(t, tt.wantBannerSource, r.BannerSource)
			assert.Equal(t, tt.wantPalette, r.Palette)
			assert.Equal(t, tt.wantPaletteSource, r.PaletteSource)
		})
	}
}

func TestResolve_RejectsInvalidCLIAndEnv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		flags CliFlags
		env   paths.Env
	}{
		{"bad emit flag", CliFlags{Emit: "json", EmitSet: true}, paths.Env{}},
		{"bad emit env", CliFlags{}, paths.Env{EnvEmit: "json"}},
		{"bad banner env", CliFlags{}, paths.Env{EnvBanner: "sometimes"}},
		{"bad palette flag", CliFlags{Palette: "neon", PaletteSet: true}, paths.Env{}},
		{"bad palette env", CliFlags{}, paths.Env{EnvPalette: "neon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Resolve(tt.flags, tt.env, paths.ResolvedPath{Source: paths.SourceNone})
			require.Error(t, err)
			assert.True(t, domain.IsKind(err, domain.KindInvalid))
		})
	}
}

func TestResolve_FallsBackToDefaults_When_FileInvalid(t *testing.T) {
	t.Parallel()

	r, err := Resolve(CliFlags{}, paths.Env{}, writeSettings(t, "emit: [not, a, string"))
	require.NoError(t, err)
	require.Error(t, r.FileErr)
	assert.Equal(t, EmitBare, r.Emit)
	assert.Equal(t, SourceDefault, r.EmitSource)

	r, err = Resolve(CliFlags{}, paths.Env{}, writeSettings(t, "emit: json\npalette: neon\n"))
	require.NoError(t, err)
	require.Error(t, r.FileErr)
	assert.Equal(t, EmitBare, r.Emit)
	assert.Equal(t, "default", r.Palette)
}

func TestResolve_DebugAndTemplate(t *testing.T) {
	t.Parallel()

	r, err := Resolve(CliFlags{}, paths.Env{EnvDebug: "1"}, writeSettings(t, "zshrc_template: /tpl\n"))
	require.NoError(t, err)
	assert.True(t, r.Debug)
	assert.Equal(t, SourceEnv, r.DebugSource)
	assert.Equal(t, "/tpl", r.ZshrcTemplate)
	assert.Equal(t, SourceFile, r.TemplateSource)

	r, err = Resolve(CliFlags{Debug: false, DebugSet: true}, paths.Env{EnvDebug: "1"}, paths.ResolvedPath{})
	require.NoError(t, err)
	assert.False(t, r.Debug)
	assert.Equal(t, SourceCLI, r.DebugSource)
}

func TestInit_WritesDefaults_And_SkipsExisting(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	bundle := fstest.MapFS{
		"zshift/liked.txt":          {Data: []byte("ys\n")},
		"zshift/fonts/excluded.txt": {Data: []byte("banner\n")},
	}
	files := []string{"zshift/liked.txt", "zshift/fonts/excluded.txt"}

	res, err := Init(root, bundle, files, false)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, InitWritten, res[0].Status)
	assert.Equal(t, filepath.Join(root, "zshift", "liked.txt"), res[0].Path)

	liked := filepath.Join(root, "zshift", "liked.txt")
	require.NoError(t, os.WriteFile(liked, []byte("mine\n"), 0o644))

	res, err = Init(root, bundle, files, false)
	require.NoError(t, err)
	assert.Equal(t, InitSkipped, res[0].Status)
	b, err := os.ReadFile(liked)
	require.NoError(t, err)
	assert.Equal(t, "mine\n", string(b))

	res, err = Init(root, bundle, files, true)
	require.NoError(t, err)
	assert.Equal(t, InitOverwritten, res[0].Status)
	b, err = os.ReadFile(liked)
	require.NoError(t, err)
	assert.Equal(t, "ys\n", string(b))
}
