package tex

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// includeDirective matches \input{file} and \include{file}. The filename
// may carry surrounding whitespace; callers trim it.
var includeDirective = regexp.MustCompile(`\\(?:input|include)\s*\{\s*([^}]+)\s*\}`)

// Expander recursively replaces \input and \include directives with the
// contents of the files they name. Included files have their comments
// stripped before their own directives are expanded, and nested directives
// resolve relative to the directory of the file that contains them.
type Expander struct {
	log *slog.Logger

	// stack holds the absolute paths currently being expanded, so that a
	// file including itself (directly or transitively) is reported as an
	// error instead of recursing forever.
	stack map[string]bool
}

// NewExpander returns an Expander that reports skipped files on log.
func NewExpander(log *slog.Logger) *Expander {
	return &Expander{
		log:   log,
		stack: make(map[string]bool),
	}
}

// Expand rewrites content, replacing every include directive with the fully
// expanded contents of its target. Relative targets resolve against baseDir.
// A missing target is logged and dropped; a cyclic inclusion fails the
// whole expansion.
func (e *Expander) Expand(content, baseDir string) (string, error) {
	matches := includeDirective.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content, nil
	}

	// Build the result left to right from the original match offsets, so
	// substitutions of differing length cannot shift later matches.
	var out strings.Builder
	last := 0
	for _, m := range matches {
		out.WriteString(content[last:m[0]])

		name := strings.TrimSpace(content[m[2]:m[3]])
		expanded, err := e.expandFile(name, baseDir)
		if err != nil {
			return "", err
		}
		out.WriteString(expanded)

		last = m[1]
	}
	out.WriteString(content[last:])

	return out.String(), nil
}

// expandFile reads and fully expands one include target. Read failures are
// recoverable: the directive is replaced with nothing and processing
// continues. Cycles are not.
func (e *Expander) expandFile(name, baseDir string) (string, error) {
	if filepath.Ext(name) == "" {
		name += ".tex"
	}

	path := filepath.Join(baseDir, name)
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	if e.stack[path] {
		return "", fmt.Errorf("cyclic inclusion of %q", path)
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		e.log.Warn("included file not found, skipping", "path", path)
		return "", nil
	}
	if err != nil {
		e.log.Error("cannot read included file", "path", path, "error", err)
		return "", nil
	}

	e.stack[path] = true
	defer delete(e.stack, path)

	// Comments inside the included file are stripped before recursing so
	// commented-out directives are never expanded.
	return e.Expand(StripComments(string(data)), filepath.Dir(path))
}
