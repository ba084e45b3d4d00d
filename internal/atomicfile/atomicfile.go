// Package atomicfile replaces whole files so readers never see a partial write.
package atomicfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// Write replaces path with data, creating parent directories as needed.
//
// A symlinked path is followed and its target replaced, so dotfiles managed
// through links stay links. An existing file keeps its permissions; new files
// get perm.
func Write(path string, data []byte, perm fs.FileMode) error {
	target, err := resolveLink(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	return renameio.WriteFile(target, data, perm, renameio.WithExistingPermissions())
}

// Append adds line plus a newline to the end of path. A file whose last line
// lacks a newline gets one first so the new entry starts on its own line.
func Append(path, line string) error {
	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	buf := make([]byte, 0, len(existing)+len(line)+2)
	buf = append(buf, existing...)
	if len(buf) > 0 && buf[len(buf)-1] != '\n' {
		buf = append(buf, '\n')
	}
	buf = append(buf, line...)
	buf = append(buf, '\n')
	return Write(path, buf, 0o644)
}

func resolveLink(path string) (string, error) {
	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return path, nil
		}
		return "", err
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return path, nil
	}
	return filepath.EvalSymlinks(path)
}
