package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	exampleConfig := Config{
		DocsDir:  "docs",
		Template: "_templates/doc-page.html",
		Output: OutputConfig{
			Directory: "./site",
			Clean:     true,
		},
		Nav: []NavEntry{
			{Title: "Home", URL: "index.html"},
			{Title: "Getting Started", URL: "getting-started/index.html", Section: "getting-started"},
			{Title: "Reference", URL: "reference/index.html", Section: "reference"},
		},
	}

	data, err := yaml.Marshal(&exampleConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
