package site

import (
	"fmt"
	"html/template"
	"os"
)

// DefaultTemplate is the starter page template written by `sitegen init`.
// Real deployments replace it with the site's own chrome; the four fields
// are the contract between the template and the page assembler.
const DefaultTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link rel="stylesheet" href="/assets/docs.css">
</head>
<body>
<div class="layout">
<nav class="sidebar">
{{.Sidebar}}
</nav>
<main class="content">
<ol class="breadcrumb">{{.Breadcrumb}}</ol>
<article>
{{.Content}}
</article>
</main>
</div>
</body>
</html>
`

// LoadTemplate reads and parses the page template file.
func LoadTemplate(path string) (*template.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", path, err)
	}
	tmpl, err := template.New("page").Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", path, err)
	}
	return tmpl, nil
}
