package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sitegen/internal/config"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags. Build is the default command so a bare
// invocation performs a full build.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"sitegen.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build    BuildCmd    `cmd:"" default:"1" help:"Build the documentation site"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file and page template"`
	Discover DiscoverCmd `cmd:"" help:"List discovered documentation files without building"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// LoadConfig resolves the effective configuration. An explicitly configured
// file must exist; the default file name falls back to the built-in
// configuration when absent.
func LoadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) && path == config.DefaultConfigFile {
		slog.Debug("No configuration file found, using built-in defaults")
		return config.Default(), nil
	}
	return config.Load(path)
}

// ResolveOutputDir determines the final output directory based on CLI flag and config.
// Priority: CLI flag > config directory.
func ResolveOutputDir(cliOutput string, cfg *config.Config) string {
	if cliOutput != "" && cliOutput != "./site" {
		return cliOutput
	}
	if cfg.Output.Directory != "" {
		return cfg.Output.Directory
	}
	return cliOutput
}
