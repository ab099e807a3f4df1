package tex

import "regexp"

// Comment patterns. Go's regexp has no lookbehind, so the line-comment
// pattern matches the character before the % and restores it via ${1};
// a % preceded by a backslash is an escaped percent, not a comment.
var (
	lineComment  = regexp.MustCompile(`(?m)(^|[^\\])%[^\n]*`)
	commentEnv   = regexp.MustCompile(`(?s)\\begin\s*\{\s*comment\s*\}.*?\\end\s*\{\s*comment\s*\}`)
	iffalseBlock = regexp.MustCompile(`(?s)\\iffalse.*?\\fi`)
)

// StripComments removes LaTeX comments from content: % line comments
// (keeping the newline), then \begin{comment}...\end{comment} environments,
// then \iffalse...\fi blocks.
func StripComments(content string) string {
	content = lineComment.ReplaceAllString(content, "${1}")
	content = commentEnv.ReplaceAllString(content, "")
	content = iffalseBlock.ReplaceAllString(content, "")
	return content
}
