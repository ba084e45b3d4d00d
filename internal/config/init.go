package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dkoosis/zshift/internal/atomicfile"
	"github.com/dkoosis/zshift/internal/domain"
)

// InitStatus is what Init did with one default file.
type InitStatus string

const (
	InitWritten     InitStatus = "written"
	InitOverwritten InitStatus = "overwritten"
	InitSkipped     InitStatus = "skipped"
)

// InitResult reports one file handled by Init.
type InitResult struct {
	Path   string
	Status InitStatus
}

// Init copies the bundled defaults named by files from bundle into root,
// keeping their relative layout. Existing files are kept unless force is set.
func Init(root string, bundle fs.FS, files []string, force bool) ([]InitResult, error) {
	root = filepath.Clean(root)
	results := make([]InitResult, 0, len(files))

	for _, rel := range files {
		dst := filepath.Join(root, filepath.FromSlash(rel))

		status := InitWritten
		if _, err := os.Stat(dst); err == nil {
			if !force {
				results = append(results, InitResult{Path: dst, Status: InitSkipped})
				continue
			}
			status = InitOverwritten
		} else if !errors.Is(err, fs.ErrNotExist) {
			return results, &domain.OpError{Op: "init config", Kind: domain.KindWrite, Path: dst, Err: err}
		}

		b, err := fs.ReadFile(bundle, rel)
		if err != nil {
			return results, &domain.OpError{Op: "read bundled default", Kind: domain.KindNotFound, Path: rel, Err: err}
		}
		if err := atomicfile.Write(dst, b, 0o644); err != nil {
			return results, &domain.OpError{Op: "init config", Kind: domain.KindWrite, Path: dst, Err: err}
		}
		results = append(results, InitResult{Path: dst, Status: status})
	}
	return results, nil
}
