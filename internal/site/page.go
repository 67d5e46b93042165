package site

import (
	"bytes"
	"html/template"

	"git.home.luguber.info/inful/sitegen/internal/docs"
	"git.home.luguber.info/inful/sitegen/internal/markdown"
)

// PageData is the template contract for one rendered page. Sidebar,
// Breadcrumb, and Content are pre-rendered markup; Title is escaped by the
// template engine.
type PageData struct {
	Title      string
	Sidebar    template.HTML
	Breadcrumb template.HTML
	Content    template.HTML
}

// assembler builds the final HTML for single pages.
type assembler struct {
	tmpl     *template.Template
	renderer *markdown.Renderer
	nav      *Navigation
	titles   map[string]string
}

// assemble produces the complete HTML document for one source file.
// The file's content must already be loaded.
func (a *assembler) assemble(df *docs.DocFile) ([]byte, error) {
	rewritten := markdown.RewriteLinks(string(df.Content))

	content, err := a.renderer.Render([]byte(rewritten))
	if err != nil {
		return nil, err
	}

	out := df.OutputPath()
	data := PageData{
		Title:      a.titles[df.RelativePath],
		Sidebar:    template.HTML(a.nav.Sidebar(out)),
		Breadcrumb: template.HTML(a.nav.Breadcrumb(df.RelativePath)),
		Content:    template.HTML(content),
	}

	var buf bytes.Buffer
	if err := a.tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
