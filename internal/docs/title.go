package docs

import (
	"path"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var headingPattern = regexp.MustCompile(`(?m)^#\s+(.+)$`)

var titleCaser = cases.Title(language.English)

// Title derives a page title from markdown content: the first level-1 heading
// anywhere in the text, or a humanized form of the filename when none exists.
// README and index stems take their parent directory's name instead.
func Title(content []byte, rel string) string {
	if m := headingPattern.FindSubmatch(content); m != nil {
		return strings.TrimSpace(string(m[1]))
	}

	name := strings.TrimSuffix(path.Base(rel), path.Ext(rel))
	if name == "README" || name == "index" {
		// Root-level README/index has no section directory to borrow a name
		// from; keep the stem so the result is still non-empty.
		if dir := path.Base(path.Dir(rel)); dir != "." && dir != "/" {
			name = dir
		}
	}
	return HumanizeName(name)
}

// Title extracts the page title for this file. Content must be loaded.
func (df *DocFile) Title() string {
	return Title(df.Content, df.RelativePath)
}

// HumanizeName turns a file or directory name into display text:
// hyphens and underscores become spaces, words are title-cased.
func HumanizeName(name string) string {
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")
	return titleCaser.String(name)
}
