package commands

import (
	"fmt"

	"git.home.luguber.info/inful/sitegen/internal/docs"
)

// DiscoverCmd implements the 'discover' command: list source files and their
// destinations without writing anything.
type DiscoverCmd struct{}

func (d *DiscoverCmd) Run(_ *Global, root *CLI) error {
	cfg, err := LoadConfig(root.Config)
	if err != nil {
		return err
	}

	discovery := docs.NewDiscovery(cfg.DocsDir)
	files, err := discovery.Discover()
	if err != nil {
		return err
	}

	for _, f := range files {
		section := f.Section
		if section == "" {
			section = "(root)"
		}
		fmt.Printf("  %-40s %-20s -> %s\n", f.RelativePath, section, f.OutputPath())
	}
	fmt.Printf("%d documentation files\n", len(files))
	return nil
}
