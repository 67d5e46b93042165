package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

// Config represents the application configuration
type Config struct {
	DocsDir  string       `yaml:"docs_dir,omitempty"`
	Template string       `yaml:"template,omitempty"`
	Output   OutputConfig `yaml:"output,omitempty"`
	Nav      []NavEntry   `yaml:"nav,omitempty"`
}

// OutputConfig represents output configuration
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Clean     bool   `yaml:"clean"` // Clean output directory before build
}

// NavEntry is one top-level sidebar entry. Order in the list is sidebar order.
// Section, when set, names a subdirectory of the docs root whose markdown
// files become the entry's children in the sidebar.
type NavEntry struct {
	Title   string `yaml:"title"`
	URL     string `yaml:"url"`
	Section string `yaml:"section,omitempty"`
}

// DefaultConfigFile is the config file probed when no explicit path is given.
const DefaultConfigFile = "sitegen.yaml"

// Default returns the built-in configuration, including the stock navigation
// structure used when no config file is present.
func Default() *Config {
	return &Config{
		DocsDir:  "docs",
		Template: "_templates/doc-page.html",
		Output:   OutputConfig{Directory: "./site", Clean: true},
		Nav: []NavEntry{
			{Title: "Home", URL: "index.html"},
			{Title: "Quickstart", URL: "quickstart.html"},
			{Title: "Quick Reference", URL: "quick-reference.html"},
			{Title: "Getting Started", URL: "getting-started/index.html", Section: "getting-started"},
			{Title: "Core Guides", URL: "core-guides/index.html", Section: "core-guides"},
			{Title: "Intermediate", URL: "intermediate/index.html", Section: "intermediate"},
			{Title: "Advanced", URL: "advanced/index.html", Section: "advanced"},
			{Title: "Key Concepts", URL: "key-concepts/index.html", Section: "key-concepts"},
			{Title: "Background", URL: "background/index.html", Section: "background"},
			{Title: "Reference", URL: "reference/index.html", Section: "reference"},
			{Title: "Troubleshooting", URL: "troubleshooting/index.html", Section: "troubleshooting"},
		},
	}
}

// Load loads configuration from the specified file
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	if err := loadEnvFile(); err != nil {
		// Don't fail if .env doesn't exist, just log it
		fmt.Fprintf(os.Stderr, "Note: .env file not found or couldn't be loaded: %v\n", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, sgerrors.ConfigNotFound(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// applyDefaults fills unset fields from the built-in configuration.
func applyDefaults(config *Config) {
	def := Default()
	if config.DocsDir == "" {
		config.DocsDir = def.DocsDir
	}
	if config.Template == "" {
		config.Template = def.Template
	}
	if config.Output.Directory == "" {
		config.Output.Directory = def.Output.Directory
	}
	// Builds are always full rebuilds: the output directory is destroyed and
	// recreated on every run regardless of what the config file says.
	config.Output.Clean = true
	if len(config.Nav) == 0 {
		config.Nav = def.Nav
	}
}

// Validate checks the navigation entries for required fields.
func (c *Config) Validate() error {
	for i, entry := range c.Nav {
		if entry.Title == "" {
			return sgerrors.ValidationFailed(fmt.Sprintf("nav[%d].title", i), "must not be empty")
		}
		if entry.URL == "" {
			return sgerrors.ValidationFailed(fmt.Sprintf("nav[%d].url", i), "must not be empty")
		}
	}
	return nil
}
