package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitegen/internal/config"
)

// chdir stands in for t.Chdir, which needs Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func parseCLI(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()
	cli := &CLI{}
	parser, err := kong.New(cli, kong.Vars{"version": "test"})
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return cli, ctx
}

func TestBuildIsDefaultCommand(t *testing.T) {
	_, ctx := parseCLI(t)
	assert.Equal(t, "build", ctx.Command())
}

func TestParseGlobalFlags(t *testing.T) {
	cli, ctx := parseCLI(t, "--verbose", "--config", "custom.yaml", "build", "--output", "./public")
	assert.Equal(t, "build", ctx.Command())
	assert.True(t, cli.Verbose)
	assert.Equal(t, "custom.yaml", cli.Config)
	assert.Equal(t, "./public", cli.Build.Output)
}

func TestInitThenBuild(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	root := &CLI{Config: "sitegen.yaml"}
	require.NoError(t, (&InitCmd{}).Run(&Global{}, root))

	// Init must produce a loadable config and a parseable template.
	cfg, err := config.Load("sitegen.yaml")
	require.NoError(t, err)
	_, err = os.Stat(cfg.Template)
	require.NoError(t, err)

	// A minimal docs tree makes the scaffolded project buildable.
	require.NoError(t, os.MkdirAll("docs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("docs", "index.md"), []byte("# Welcome\n"), 0o644))

	require.NoError(t, (&BuildCmd{Output: "./site"}).Run(&Global{}, root))
	_, err = os.Stat(filepath.Join("site", "index.html"))
	assert.NoError(t, err)
}

func TestLoadConfigFallsBackToDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadConfig(config.DefaultConfigFile)
	require.NoError(t, err)
	assert.Equal(t, "docs", cfg.DocsDir)
	assert.NotEmpty(t, cfg.Nav)
}

func TestLoadConfigExplicitPathMustExist(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "explicit.yaml"))
	require.Error(t, err)
}

func TestResolveOutputDir(t *testing.T) {
	cfg := &config.Config{Output: config.OutputConfig{Directory: "./from-config"}}
	assert.Equal(t, "./from-config", ResolveOutputDir("./site", cfg))
	assert.Equal(t, "./flag", ResolveOutputDir("./flag", cfg))
}
