// Package prefs loads and edits the liked and excluded preference lists.
package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/dkoosis/zshift/internal/atomicfile"
	"github.com/dkoosis/zshift/internal/domain"
	"github.com/dkoosis/zshift/internal/paths"
)

// Origin says where list contents came from.
type Origin string

const (
	OriginFile   Origin = "file"
	OriginBundle Origin = "bundle"
	OriginEmpty  Origin = "empty"
)

// LoadWithFallback returns the contents of the file at primary, else the
// bundled resource name in fallback, else "". A missing file is not an error;
// a file that exists but cannot be read is reported through readErr so the
// caller can warn about it.
func LoadWithFallback(primary string, fallback fs.FS, name string) (text string, from Origin, readErr error) {
	if primary != "" {
		b, err := os.ReadFile(primary)
		if err == nil {
			return string(b), OriginFile, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			readErr = err
		}
	}
	if fallback != nil && name != "" {
		if b, err := fs.ReadFile(fallback, name); err == nil {
			return string(b), OriginBundle, readErr
		}
	}
	return "", OriginEmpty, readErr
}

// List is a loaded preference list with the location it was resolved to.
type List struct {
	Subject  Subject
	Polarity Polarity
	Names    NamedList
	Path     paths.ResolvedPath
	Origin   Origin
}

// Loader resolves, reads and appends to preference lists.
type Loader struct {
	Resolver paths.Resolver
	// Bundle holds the shipped defaults in config dir layout. Nil disables fallback.
	Bundle fs.FS
	Log    *zap.Logger
}

func (l *Loader) log() *zap.Logger {
	if l.Log == nil {
		return zap.NewNop()
	}
	return l.Log
}

// Load reads the list for subject and polarity. flag is the explicit path override.
// Load never fails: a missing or unreadable list is empty.
func (l *Loader) Load(s Subject, p Polarity, flag string) List {
	kind := PathKind(s, p)
	rp := l.Resolver.Resolve(kind, flag)

	text, origin, err := LoadWithFallback(rp.Path, l.Bundle, kind.RelPath())
	if err != nil {
		l.log().Warn("preference list unreadable, using fallback",
			zap.String("list", kind.String()), zap.String("path", rp.Path), zap.Error(err))
	}

	list := List{Subject: s, Polarity: p, Names: Parse(s, text), Path: rp, Origin: origin}
	l.log().Debug("loaded preference list",
		zap.String("list", kind.String()),
		zap.String("path", rp.Path),
		zap.String("source", string(rp.Source)),
		zap.String("origin", string(origin)),
		zap.Int("entries", len(list.Names)))
	return list
}

// Outcome is the result of adding a preference.
type Outcome int

const (
	Added Outcome = iota
	AlreadyPresent
)

// AddResult describes a completed Add.
type AddResult struct {
	Outcome Outcome
	Name    string // canonical form that was compared and written
	Path    paths.ResolvedPath
}

// Add appends name to the list unless its canonical form is already present.
// An existing entry leaves the file untouched. A name holding a line break is
// rejected so each entry stays one line.
func (l *Loader) Add(s Subject, p Polarity, name, flag string) (AddResult, error) {
	if strings.ContainsAny(name, "\r\n") {
		return AddResult{}, &domain.OpError{Op: "add " + s.String(), Kind: domain.KindInvalid, Err: errors.New("name spans more than one line")}
	}
	canonical := Canonical(s, name)
	if canonical == "" {
		return AddResult{}, &domain.OpError{Op: "add " + s.String(), Kind: domain.KindInvalid, Err: errors.New("name is empty")}
	}

	current := l.Load(s, p, flag)
	if current.Names.Contains(canonical) {
		return AddResult{Outcome: AlreadyPresent, Name: canonical, Path: current.Path}, nil
	}

	if !current.Path.Found() {
		return AddResult{}, &domain.OpError{
			Op:   fmt.Sprintf("add %s to %s list", s, p),
			Kind: domain.KindNotFound,
			Err:  errors.New("cannot determine list location"),
			Hint: "Pass an explicit path flag or set HOME",
		}
	}

	if err := atomicfile.Append(current.Path.Path, canonical); err != nil {
		return AddResult{}, &domain.OpError{Op: "append", Kind: domain.KindWrite, Path: current.Path.Path, Err: err}
	}
	l.log().Debug("appended preference",
		zap.String("list", current.Path.Kind.String()),
		zap.String("path", current.Path.Path),
		zap.String("name", canonical))

	return AddResult{Outcome: Added, Name: canonical, Path: current.Path}, nil
}
