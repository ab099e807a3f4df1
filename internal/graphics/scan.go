package graphics

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Commands that reference an external PDF asset. Matching is
// case-insensitive; filenames on disk are not. The caption pattern is a
// deliberately loose heuristic: any .pdf-suffixed token inside the caption
// braces counts as a reference.
var referencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\\includegraphics(?:\[.*?\])?\{([^}]+)\}`),
	regexp.MustCompile(`(?i)\\includepdf(?:\[.*?\])?\{([^}]+)\}`),
	regexp.MustCompile(`(?i)\\pdfximage\{([^}]+)\}`),
	regexp.MustCompile(`(?i)\\caption\{.*?([a-zA-Z0-9_\-]+\.pdf).*?\}`),
}

// Scan extracts PDF filename candidates from fully expanded document text.
// A candidate with no extension gains .pdf; one with a different extension
// (e.g. .png) is not a PDF reference and is dropped. Candidates are
// returned in order of appearance and may repeat.
func Scan(content string) []string {
	var out []string
	for _, pattern := range referencePatterns {
		for _, m := range pattern.FindAllStringSubmatch(content, -1) {
			if name, ok := normalizeCandidate(m[1]); ok {
				out = append(out, name)
			}
		}
	}
	return out
}

func normalizeCandidate(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		if !hasExtension(filepath.Base(name)) {
			name += ".pdf"
		}
	}
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		return "", false
	}
	return name, true
}

// hasExtension reports whether base carries a filename extension. Leading
// dots are part of the name, not extension separators: ".hidden" has no
// extension, ".hidden.txt" has one.
func hasExtension(base string) bool {
	dot := strings.LastIndexByte(base, '.')
	if dot < 0 {
		return false
	}
	return strings.Trim(base[:dot], ".") != ""
}
