package graphics

import (
	"os"
	"path/filepath"

	"github.com/chenryang/LaTeX-merge/internal/fileset"
)

// assetDirs are the conventional graphics locations tried under Root, in
// order, when a candidate does not resolve as given.
var assetDirs = []string{".", "figures", "images", "img", "graphics"}

// Resolver locates referenced PDF files on disk. Root is the directory
// relative candidates resolve against, normally the main document's
// directory; it is explicit so callers can point the scan at a sandboxed
// tree.
type Resolver struct {
	Root string
}

// Resolve returns the absolute path of the first existing file for name:
// the literal path first, then each conventional asset subdirectory. The
// second return is false when nothing exists.
func (r Resolver) Resolve(name string) (string, bool) {
	if filepath.IsAbs(name) {
		if exists(name) {
			return filepath.Clean(name), true
		}
		return "", false
	}

	if p := filepath.Join(r.Root, name); exists(p) {
		return absPath(p), true
	}
	for _, dir := range assetDirs {
		if p := filepath.Join(r.Root, dir, name); exists(p) {
			return absPath(p), true
		}
	}
	return "", false
}

// ResolveAll resolves every candidate, silently dropping the ones that do
// not exist, and returns the deduplicated set of absolute paths.
func (r Resolver) ResolveAll(names []string) fileset.Set {
	used := fileset.New()
	for _, name := range names {
		if path, ok := r.Resolve(name); ok {
			used.Add(path)
		}
	}
	return used
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
