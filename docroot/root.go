// Package docroot resolves request paths against a served
// directory without ever leaving it.
package docroot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrTraversal = errors.New("path escapes serving root")
	ErrNotText   = errors.New("file is not valid text")
)

// A Root is a canonical, absolute directory. Every path handed
// out by Resolve is inside it.
type Root struct {
	dir string
}

// New canonicalizes `dir` once. Symlinks in `dir` itself are
// resolved, so a root reached through a link still works.
func New(dir string) (*Root, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	canon, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, err
	}
	fi, err := os.Stat(canon)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("serving root %s is not a directory", canon)
	}
	return &Root{dir: canon}, nil
}

func (r *Root) Dir() string {
	return r.dir
}

// Resolve joins `rel` onto the root, canonicalizes the result and
// checks it is still under the root. A path that does not exist
// (or cannot be canonicalized) is ErrNotFound; one that lands
// outside the root is ErrTraversal.
func (r *Root) Resolve(rel string) (string, error) {
	joined := filepath.Join(r.dir, filepath.FromSlash(rel))
	canon, err := filepath.EvalSymlinks(joined)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrNotFound, rel, err)
	}
	if !r.contains(canon) {
		return "", fmt.Errorf("%w: %s -> %s", ErrTraversal, rel, canon)
	}
	return canon, nil
}

func (r *Root) contains(p string) bool {
	if p == r.dir {
		return true
	}
	prefix := r.dir
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(p, prefix)
}

// ReadText resolves `rel` and returns the whole file. Content
// that is not valid UTF-8 is rejected with ErrNotText.
func (r *Root) ReadText(rel string) ([]byte, error) {
	p, err := r.Resolve(rel)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s", ErrNotText, rel)
	}
	return data, nil
}
