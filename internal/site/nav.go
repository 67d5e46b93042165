package site

import (
	"html/template"
	"path"
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/docs"
)

// sectionChild is one per-file link inside an expanded sidebar section.
type sectionChild struct {
	URL   string
	Title string
}

// Navigation renders the sidebar and breadcrumb for pages. It is built once
// per run from the discovered files so per-page rendering never touches the
// filesystem again.
type Navigation struct {
	entries  []config.NavEntry
	children map[string][]sectionChild // section dir -> ordered non-README children
	nonEmpty map[string]bool           // section dir has any markdown files at all
	titles   map[string]string         // source relative path -> extracted title
}

// NewNavigation indexes discovered files for sidebar/breadcrumb rendering.
// filesBySection groups DocFiles by top-level section; titles maps each
// file's relative path to its extracted title.
func NewNavigation(entries []config.NavEntry, filesBySection map[string][]docs.DocFile, titles map[string]string) *Navigation {
	n := &Navigation{
		entries:  entries,
		children: make(map[string][]sectionChild),
		nonEmpty: make(map[string]bool),
		titles:   titles,
	}

	for _, entry := range entries {
		if entry.Section == "" {
			continue
		}
		// Only the section directory's own files appear in the sidebar;
		// nested subdirectory pages are built but not listed.
		direct := make([]docs.DocFile, 0, len(filesBySection[entry.Section]))
		for _, f := range filesBySection[entry.Section] {
			if path.Dir(f.RelativePath) == entry.Section {
				direct = append(direct, f)
			}
		}
		if len(direct) == 0 {
			// A configured section absent on disk yields an empty child
			// list, not an error.
			continue
		}
		n.nonEmpty[entry.Section] = true
		for _, f := range docs.SectionFiles(direct) {
			if f.IsReadme() {
				// The section's own link represents its README.
				continue
			}
			n.children[entry.Section] = append(n.children[entry.Section], sectionChild{
				URL:   f.OutputPath(),
				Title: titles[f.RelativePath],
			})
		}
	}

	return n
}

// Sidebar renders the sidebar list for the page with the given output URL.
// Entry order follows the configured navigation list.
func (n *Navigation) Sidebar(current string) string {
	var b []string
	b = append(b, "<ul>")

	for _, entry := range n.entries {
		title := template.HTMLEscapeString(entry.Title)
		url := template.HTMLEscapeString(entry.URL)

		if entry.Section != "" {
			b = append(b, `<li><span class="section-title"><a href="`+url+`">`+title+`</a></span>`)
			if n.nonEmpty[entry.Section] {
				b = append(b, "<ul>")
				for _, child := range n.children[entry.Section] {
					active := ""
					if current == child.URL {
						active = ` class="active"`
					}
					b = append(b, `<li><a href="`+template.HTMLEscapeString(child.URL)+`"`+active+`>`+template.HTMLEscapeString(child.Title)+`</a></li>`)
				}
				b = append(b, "</ul>")
			}
			b = append(b, "</li>")
			continue
		}

		active := ""
		if current == entry.URL {
			active = ` class="active"`
		}
		b = append(b, `<li><span class="section-title"><a href="`+url+`"`+active+`>`+title+`</a></span></li>`)
	}

	b = append(b, "</ul>")
	return strings.Join(b, "\n")
}

// Breadcrumb renders the breadcrumb items for a source file path relative to
// the docs root. Top-level pages get no breadcrumb; a section README is a
// single unlinked crumb; any other section page links back to the section
// index followed by the page's own title.
func (n *Navigation) Breadcrumb(rel string) string {
	if !strings.Contains(rel, "/") {
		return ""
	}

	section := rel[:strings.IndexByte(rel, '/')]
	sectionTitle := template.HTMLEscapeString(docs.HumanizeName(section))

	if path.Base(rel) == "README.md" {
		return "<li>" + sectionTitle + "</li>"
	}

	pageTitle := template.HTMLEscapeString(n.titles[rel])
	return `<li><a href="index.html">` + sectionTitle + `</a></li><li>` + pageTitle + `</li>`
}
