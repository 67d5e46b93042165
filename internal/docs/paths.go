package docs

import (
	"path"
	"sort"
	"strings"
)

const readmeName = "README.md"

// OutputPath maps a slash-separated source path relative to the docs root to
// its destination path in the generated site. The markdown extension becomes
// .html; a file named exactly README.md becomes its directory's index.html.
func OutputPath(rel string) string {
	dir, base := path.Split(rel)
	if base == readmeName {
		return dir + "index.html"
	}
	return strings.TrimSuffix(rel, path.Ext(rel)) + ".html"
}

// OutputPath returns the destination path for this file in the generated site.
func (df *DocFile) OutputPath() string {
	return OutputPath(df.RelativePath)
}

// IsReadme reports whether the file is a directory README (section index).
func (df *DocFile) IsReadme() bool {
	return path.Base(df.RelativePath) == readmeName
}

// SectionFiles orders a section's markdown files for sidebar rendering:
// README.md first if present, the rest lexicographic by relative path.
func SectionFiles(files []DocFile) []DocFile {
	ordered := make([]DocFile, 0, len(files))
	var readme *DocFile
	for i := range files {
		if files[i].IsReadme() {
			readme = &files[i]
			break
		}
	}
	if readme != nil {
		ordered = append(ordered, *readme)
	}

	rest := make([]DocFile, 0, len(files))
	for _, f := range files {
		if !f.IsReadme() {
			rest = append(rest, f)
		}
	}
	sort.Slice(rest, func(i, j int) bool {
		return rest[i].RelativePath < rest[j].RelativePath
	})

	return append(ordered, rest...)
}
