package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dkoosis/zshift/internal/banner"
	"github.com/dkoosis/zshift/internal/config"
	"github.com/dkoosis/zshift/internal/domain"
	"github.com/dkoosis/zshift/internal/paths"
	"github.com/dkoosis/zshift/internal/profile"
)

// stubBanner renders "[font] text" over a fixed catalog.
type stubBanner struct{ fonts []string }

func (b stubBanner) Render(text, font string) (string, error) { return "[" + font + "] " + text, nil }
func (b stubBanner) Fonts() []string                          { return b.fonts }

type harness struct {
	home   string
	themes string
	env    paths.Env
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func newHarness(t *testing.T, themes ...string) *harness {
	t.Helper()
	home := t.TempDir()
	dir := filepath.Join(home, "themes")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, name := range themes {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".zsh-theme"), nil, 0o644))
	}
	return &harness{
		home:   home,
		themes: dir,
		env:    paths.Env{"HOME": home, "ZSH_THEMES_DIR": dir},
	}
}

func (h *harness) run(args ...string) error {
	h.stdout.Reset()
	h.stderr.Reset()
	app := &App{
		Env:    h.env,
		Stdout: &h.stdout,
		Stderr: &h.stderr,
		Banner: stubBanner{fonts: []string{"Big_Money"}},
		Pick:   func(int) int { return 0 },
		Log:    zap.NewNop(),
	}
	return app.Execute(context.Background(), args)
}

func (h *harness) write(t *testing.T, rel, content string) string {
	t.Helper()
	p := filepath.Join(h.home, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func (h *harness) lines() []string {
	return strings.Split(strings.TrimRight(h.stdout.String(), "\n"), "\n")
}

func TestRandom_PrintsBannerFontAndTheme(t *testing.T) {
	t.Parallel()
	h := newHarness(t, "a", "b")
	excluded := h.write(t, "lists/excluded.txt", "a\n")

	require.NoError(t, h.run("random", "--excluded-path", excluded))

	want := []string{
		"[Big_Money] ZShift x b",
		"FIGLET_FONT=big money",
		"b",
	}
	if diff := cmp.Diff(want, h.lines()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRoot_RunsRandom_When_NoSubcommand(t *testing.T) {
	t.Parallel()
	h := newHarness(t, "only")

	require.NoError(t, h.run("--no-banner", "--emit", "prefixed"))

	assert.Equal(t, []string{"FIGLET_FONT=big money", "ZSH_THEME=only"}, h.lines())
}

func TestRandom_UsesEmitFromEnvironment(t *testing.T) {
	t.Parallel()
	h := newHarness(t, "only")
	h.env["ZSHIFT_EMIT"] = "prefixed"
	h.env["ZSHIFT_BANNER"] = "false"

	require.NoError(t, h.run("random"))

	assert.Equal(t, "ZSH_THEME=only", h.lines()[len(h.lines())-1])
	assert.Len(t, h.lines(), 2)
}

func TestRandom_UsesSettingsFile(t *testing.T) {
	t.Parallel()
	h := newHarness(t, "only")
	h.write(t, ".config/zshift/config.yaml", "emit: prefixed\nbanner: false\n")

	require.NoError(t, h.run("random"))

	assert.Equal(t, []string{"FIGLET_FONT=big money", "ZSH_THEME=only"}, h.lines())
}

func TestRandom_Fails_When_EmitInvalid(t *testing.T) {
	t.Parallel()
	h := newHarness(t, "only")

	err := h.run("random", "--emit", "yaml")

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalid))
	assert.Equal(t, 2, domain.ExitCode(err))
	assert.Empty(t, h.stdout.String())
}

func TestRandom_Fails_When_ThemesDirMissing(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	delete(h.env, "ZSH_THEMES_DIR")

	err := h.run("random")

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
	assert.Contains(t, err.Error(), "ZSH_THEMES_DIR")
}

func TestRandom_PrintsRandomFont_When_CatalogEmpty(t *testing.T) {
	t.Parallel()
	h := newHarness(t, "only")
	var out bytes.Buffer
	app := &App{
		Env:    h.env,
		Stdout: &out,
		Banner: stubBanner{},
		Log:    zap.NewNop(),
	}

	require.NoError(t, app.Execute(context.Background(), []string{"random", "--no-banner"}))

	assert.Equal(t, "FIGLET_FONT=random\nonly\n", out.String())
}

func TestLike_AddsThenReportsPresent(t *testing.T) {
	t.Parallel()
	h := newHarness(t, "gnzh")
	liked := filepath.Join(h.home, "liked.txt")

	require.NoError(t, h.run("like", "gnzh", "--liked-path", liked))
	assert.Equal(t, "Theme 'gnzh' has been added to your liked themes.\n", h.stdout.String())

	require.NoError(t, h.run("like", "gnzh.zsh-theme", "--liked-path", liked))
	assert.Equal(t, "Theme 'gnzh' is already in your liked themes.\n", h.stdout.String())

	b, err := os.ReadFile(liked)
	require.NoError(t, err)
	assert.Equal(t, "gnzh\n", string(b))
}

func TestLike_ReportsPresent_When_NameIsBundledDefault(t *testing.T) {
	t.Parallel()
	h := newHarness(t, "agnoster")
	liked := filepath.Join(h.home, "liked.txt")

	require.NoError(t, h.run("like", "agnoster", "--liked-path", liked))

	assert.Equal(t, "Theme 'agnoster' is already in your liked themes.\n", h.stdout.String())
	_, err := os.Stat(liked)
	assert.True(t, os.IsNotExist(err))
}

func TestExclude_WarnsWithSuggestion_When_ThemeUnknown(t *testing.T) {
	t.Parallel()
	h := newHarness(t, "agnoster", "robbyrussell")
	excluded := filepath.Join(h.home, "excluded.txt")

	require.NoError(t, h.run("exclude", "agnostr", "--excluded-path", excluded))

	assert.Contains(t, h.stderr.String(), "theme 'agnostr' was not found; did you mean 'agnoster'?")
	assert.Equal(t, "Theme 'agnostr' has been added to your excluded themes.\n", h.stdout.String())
}

func TestLike_Font_UsesCanonicalName(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	fonts := filepath.Join(h.home, "fonts.txt")

	require.NoError(t, h.run("like", "--kind", "font", "Big_Money", "--liked-fonts-path", fonts))

	assert.Equal(t, "FIGlet font 'big money' has been added to your liked fonts.\n", h.stdout.String())
	assert.Empty(t, h.stderr.String())
}

func TestPreference_RejectsUnknownKind(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	err := h.run("exclude", "--kind", "colour", "x")

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalid))
}

func TestPreference_RequiresName(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	err := h.run("like")

	require.Error(t, err)
	assert.Equal(t, 2, domain.ExitCode(err))
}

func TestList_Available_IsFreshPool(t *testing.T) {
	t.Parallel()
	h := newHarness(t, "a", "b", "c")
	h.write(t, ".config/zshift/excluded.txt", "a\n")
	h.write(t, ".config/zshift/liked.txt", "c\n")

	require.NoError(t, h.run("list", "available", "--json"))

	var got []string
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &got))
	assert.Equal(t, []string{"b"}, got)
}

func TestList_LikedFonts_FallsBackToBundle(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	require.NoError(t, h.run("list", "liked-fonts"))

	assert.Equal(t, []string{"slant", "small", "standard"}, h.lines())
}

func TestList_EmptyJSONArray_When_ListEmpty(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.write(t, ".config/zshift/excluded.txt", "")

	require.NoError(t, h.run("list", "excluded", "--json"))

	assert.Equal(t, "[]\n", h.stdout.String())
}

func TestList_RejectsUnknownCategory(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	err := h.run("list", "favourites")

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalid))
}

func TestConfigInit_KeepsExistingFiles_When_NotForced(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	root := filepath.Join(h.home, "cfg")

	require.NoError(t, h.run("config", "init", "--config-dir", root))
	assert.Contains(t, h.stdout.String(), "written")
	b, err := os.ReadFile(filepath.Join(root, "zshift", "fonts", "liked.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "standard")

	require.NoError(t, h.run("config", "init", "--config-dir", root))
	assert.NotContains(t, h.stdout.String(), "written")
	assert.Contains(t, h.stdout.String(), "skipped")

	require.NoError(t, h.run("config", "init", "--config-dir", root, "--force"))
	assert.Contains(t, h.stdout.String(), "overwritten")
}

func TestConfigShow_ReportsProvenance(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.env["ZSHIFT_PALETTE"] = "orca"

	require.NoError(t, h.run("config", "show", "--json", "--liked-path", "~/mine.txt"))

	var view configView
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &view))

	byName := map[string]pathView{}
	for _, p := range view.Paths {
		byName[p.Name] = p
	}
	assert.Equal(t, filepath.Join(h.home, "mine.txt"), byName[paths.LikedThemes.String()].Path)
	assert.Equal(t, "flag", byName[paths.LikedThemes.String()].Source)
	assert.Equal(t, "env", byName[paths.ThemesDir.String()].Source)
	assert.Equal(t, "xdg", byName[paths.ExcludedThemes.String()].Source)

	assert.Contains(t, view.Settings, settingView{Name: "palette", Value: "orca", Source: "env"})
	assert.Contains(t, view.Settings, settingView{Name: "emit", Value: "bare", Source: "default"})
}

func TestConfigShow_PrintsReport(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	require.NoError(t, h.run("config", "show"))

	out := h.stdout.String()
	assert.Contains(t, out, "Paths")
	assert.Contains(t, out, "Settings")
	assert.Contains(t, out, h.themes)
}

func TestLinkZshrc_IsIdempotent(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	zshrc := h.write(t, ".zshrc", "export EDITOR=vim\n")

	require.NoError(t, h.run("link-zshrc"))
	assert.Equal(t, "SUCCESS: "+zshrc+" has been updated.\n", h.stdout.String())
	first, err := os.ReadFile(zshrc)
	require.NoError(t, err)

	require.NoError(t, h.run("update-profile"))
	assert.Equal(t, "INFO: zshift config block already up to date; no changes.\n", h.stdout.String())
	second, err := os.ReadFile(zshrc)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.Equal(t, 1, strings.Count(string(second), profile.BeginMarker))
	assert.True(t, strings.HasPrefix(string(second), "export EDITOR=vim\n"))
}

func TestLinkZshrc_RefreshesWithCustomTemplate_And_Backs_Up(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	zshrc := h.write(t, "profile/zshrc", "")
	require.NoError(t, h.run("link-zshrc", "--zshrc", zshrc))
	before, err := os.ReadFile(zshrc)
	require.NoError(t, err)

	tpl := h.write(t, "custom.txt", "echo custom\n")
	require.NoError(t, h.run("link-zshrc", "--zshrc", zshrc, "--custom-zshrc-path", tpl, "--backup"))

	assert.Contains(t, h.stdout.String(), "INFO: Refreshed zshift config block in "+zshrc+".")
	backup, err := os.ReadFile(zshrc + profile.BackupSuffix)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(backup))

	after, err := os.ReadFile(zshrc)
	require.NoError(t, err)
	assert.Equal(t, profile.RenderBlock("echo custom\n")+"\n", string(after))
}

func TestLinkZshrc_Fails_When_TemplateMissing(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	err := h.run("link-zshrc", "--custom-zshrc-path", filepath.Join(h.home, "nope"))

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
	_, statErr := os.Stat(filepath.Join(h.home, ".zshrc"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestDoctor_ReportsSections(t *testing.T) {
	t.Parallel()
	h := newHarness(t, "a")

	require.NoError(t, h.run("doctor"))

	out := h.stdout.String()
	for _, heading := range []string{"Binary", "Resolved Paths", "Resources", "Environment", "Output Contract"} {
		assert.Contains(t, out, heading)
	}
	assert.Contains(t, out, h.themes)
	assert.Contains(t, out, "unknown")
}

func TestRoot_RejectsPositionalArgs(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	err := h.run("bogus")

	require.Error(t, err)
	assert.Equal(t, 2, domain.ExitCode(err))
	assert.Contains(t, ErrorLine(err), "zshift --help")
}

func TestBannerRenderer_LeavesRowsUncoloured_When_StdoutNotTerminal(t *testing.T) {
	t.Parallel()

	for _, palette := range []string{"default", "mono"} {
		app := &App{Stdout: &bytes.Buffer{}, settings: &config.Resolved{Palette: palette}}

		f, ok := app.bannerRenderer().(banner.Figlet)
		require.True(t, ok)
		assert.Nil(t, f.Style, palette)
	}
}
