package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/site"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	if err := config.Init(root.Config, i.Force); err != nil {
		return err
	}
	fmt.Printf("Created %s\n", root.Config)

	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.Template); err == nil && !i.Force {
		fmt.Printf("Template %s already exists, leaving it alone\n", cfg.Template)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Template), 0o755); err != nil {
		return fmt.Errorf("failed to create template directory: %w", err)
	}
	if err := os.WriteFile(cfg.Template, []byte(site.DefaultTemplate), 0o644); err != nil {
		return fmt.Errorf("failed to write template file: %w", err)
	}
	fmt.Printf("Created %s\n", cfg.Template)
	return nil
}
