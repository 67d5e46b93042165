package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/sitegen/internal/site"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output string `short:"o" help:"Output directory for generated site" default:"./site"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := LoadConfig(root.Config)
	if err != nil {
		return err
	}

	outputDir := ResolveOutputDir(b.Output, cfg)

	fmt.Println("Building documentation...")
	slog.Info("Starting site build",
		"docs", cfg.DocsDir,
		"template", cfg.Template,
		"output", outputDir)

	return site.NewGenerator(cfg, outputDir).Build()
}
