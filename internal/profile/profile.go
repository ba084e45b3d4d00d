package profile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dkoosis/zshift/internal/atomicfile"
	"github.com/dkoosis/zshift/internal/domain"
	"github.com/dkoosis/zshift/internal/paths"
)

// BackupSuffix is appended to the profile path for --backup copies.
const BackupSuffix = ".backup"

// DefaultPath is ~/.zshrc for the user in env.
func DefaultPath(env paths.Env) string {
	return filepath.Join(env.Home(), ".zshrc")
}

// Upsert splices body into the profile at path, creating it if needed.
// The file is only rewritten when its content changes.
func Upsert(path, body string) (Action, error) {
	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Unchanged, &domain.OpError{Op: "read profile", Kind: domain.KindWrite, Path: path, Err: err}
	}

	updated, action := Splice(string(existing), body)
	if action == Unchanged {
		return action, nil
	}
	if err := atomicfile.Write(path, []byte(updated), 0o644); err != nil {
		return Unchanged, &domain.OpError{Op: "write profile", Kind: domain.KindWrite, Path: path, Err: err}
	}
	return action, nil
}

// Backup copies the profile to path+BackupSuffix. ok is false when there was
// no profile to copy.
func Backup(path string) (dst string, ok bool, err error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, &domain.OpError{Op: "read profile", Kind: domain.KindWrite, Path: path, Err: err}
	}
	dst = path + BackupSuffix
	if err := atomicfile.Write(dst, b, 0o600); err != nil {
		return "", false, &domain.OpError{Op: "write backup", Kind: domain.KindWrite, Path: dst, Err: err}
	}
	return dst, true, nil
}
