package tex

import "regexp"

// A blank line is a line containing only spaces and tabs. Three or more of
// them in a row collapse to a single blank line; shorter runs are kept.
var blankRun = regexp.MustCompile(`\n([ \t]*\n){3,}`)

// CollapseBlankLines reduces every run of 3+ consecutive blank lines in
// content to exactly one blank line (two consecutive newlines).
func CollapseBlankLines(content string) string {
	return blankRun.ReplaceAllString(content, "\n\n")
}
