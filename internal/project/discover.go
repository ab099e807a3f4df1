package project

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// FindFiles returns the absolute paths of every file under root (at any
// depth, root itself included) whose name ends with ext, e.g. ".tex".
func FindFiles(root, ext string) ([]string, error) {
	pattern := filepath.Join(root, "**", "*"+ext)
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		abs, err := filepath.Abs(m)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", m, err)
		}
		out = append(out, abs)
	}
	return out, nil
}
