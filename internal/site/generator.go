// Package site generates the static HTML site from discovered documentation
// files: one upfront title-index pass, then one template-driven page per
// source file, mirroring the source tree in the output directory.
package site

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/docs"
	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
	"git.home.luguber.info/inful/sitegen/internal/markdown"
)

// Generator drives a full site build.
type Generator struct {
	cfg       *config.Config
	outputDir string
	renderer  *markdown.Renderer
}

// NewGenerator creates a new site generator writing to outputDir.
func NewGenerator(cfg *config.Config, outputDir string) *Generator {
	return &Generator{
		cfg:       cfg,
		outputDir: filepath.Clean(outputDir),
		renderer:  markdown.NewRenderer(),
	}
}

// Build performs a full, non-incremental build. The output directory is
// destroyed and recreated; every page is regenerated. The first error aborts
// the build and may leave a partially populated output tree.
func (g *Generator) Build() error {
	start := time.Now()

	if g.cfg.Output.Clean {
		if err := os.RemoveAll(g.outputDir); err != nil {
			return sgerrors.FileSystemError("clean output directory", err)
		}
	}
	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return sgerrors.FileSystemError("create output directory", err)
	}

	tmpl, err := LoadTemplate(g.cfg.Template)
	if err != nil {
		return sgerrors.TemplateError(g.cfg.Template, err)
	}

	discovery := docs.NewDiscovery(g.cfg.DocsDir)
	files, err := discovery.Discover()
	if err != nil {
		return sgerrors.DiscoveryError(err)
	}

	// Single upfront pass: load every file once and index its title, so
	// sidebar and breadcrumb rendering never re-read section contents.
	titles := make(map[string]string, len(files))
	for i := range files {
		if err := files[i].LoadContent(); err != nil {
			return sgerrors.FileSystemError("read source file", err).
				WithContext("file", files[i].RelativePath)
		}
		titles[files[i].RelativePath] = files[i].Title()
	}

	nav := NewNavigation(g.cfg.Nav, discovery.GetDocFilesBySection(), titles)
	asm := &assembler{tmpl: tmpl, renderer: g.renderer, nav: nav, titles: titles}

	for i := range files {
		df := &files[i]
		outRel := df.OutputPath()
		outPath := filepath.Join(g.outputDir, filepath.FromSlash(outRel))

		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return sgerrors.FileSystemError("create page directory", err).
				WithContext("file", outRel)
		}

		html, err := asm.assemble(df)
		if err != nil {
			return sgerrors.RenderError(df.RelativePath, err)
		}

		if err := os.WriteFile(outPath, html, 0o644); err != nil {
			return sgerrors.FileSystemError("write page", err).
				WithContext("file", outRel)
		}

		slog.Info("Page written",
			logfields.File(df.RelativePath),
			logfields.Output(outRel),
			logfields.Title(titles[df.RelativePath]))
	}

	slog.Info("Site build complete",
		logfields.Pages(len(files)),
		logfields.Output(g.outputDir),
		slog.Duration("elapsed", time.Since(start)))
	fmt.Printf("Build complete! %d pages in %s\n", len(files), g.outputDir)

	return nil
}
