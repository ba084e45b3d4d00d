package magetasks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_CreatesBinDir(t *testing.T) {
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(originalDir) })

	tmpDir := t.TempDir()
	require.NoError(t, os.Chdir(tmpDir))

	require.NoError(t, Initialize())

	info, err := os.Stat(filepath.Join(tmpDir, "bin"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	expectedRoot, _ := filepath.EvalSymlinks(tmpDir)
	actualRoot, _ := filepath.EvalSymlinks(ProjectRoot)
	assert.Equal(t, expectedRoot, actualRoot)
}

func TestBuildTargets(t *testing.T) {
	assert.Equal(t, "github.com/dkoosis/zshift", ModulePath)
	assert.Equal(t, "./bin/zshift", BinPath)
	assert.Equal(t, "./cmd/zshift", MainPackage)
}

func TestLDFlags_StampsVersionPackage(t *testing.T) {
	flags := LDFlags("v1.2.3", "abc123", "2026-01-01T00:00:00Z")

	pkg := ModulePath + "/internal/version"
	assert.Contains(t, flags, "-X '"+pkg+".Version=v1.2.3'")
	assert.Contains(t, flags, "-X '"+pkg+".CommitHash=abc123'")
	assert.Contains(t, flags, "-X '"+pkg+".BuildDate=2026-01-01T00:00:00Z'")
	assert.True(t, strings.HasPrefix(flags, "-s -w "))
}
