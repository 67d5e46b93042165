package markdown

import "regexp"

// The rewriter works on raw text, not the parsed document, so a
// `](....md)`-shaped substring inside a code fence is rewritten too.
// Matching the original site's behavior is preferred over guessing here.
var (
	mdLinkPattern     = regexp.MustCompile(`\]\(([^)]+)\.md\)`)
	readmeLinkPattern = regexp.MustCompile(`\]\(([^)]*)/README\.html\)`)
	bareReadmePattern = regexp.MustCompile(`\]\(README\.html\)`)
)

// RewriteLinks rewrites intra-documentation link targets for the rendered
// site: .md targets become .html, and README targets become the directory
// index the README is rendered as. Idempotent on already-rewritten text.
func RewriteLinks(content string) string {
	content = mdLinkPattern.ReplaceAllString(content, `]($1.html)`)
	content = readmeLinkPattern.ReplaceAllString(content, `]($1/index.html)`)
	content = bareReadmePattern.ReplaceAllString(content, `](index.html)`)
	return content
}
