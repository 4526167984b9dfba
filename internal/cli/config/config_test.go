package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFlags mirrors the root command's persistent flags.
func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("catalog", "", "")
	fs.StringP("spread", "s", "", "")
	fs.StringP("output", "o", "", "")
	fs.BoolP("verbose", "v", false, "")
	fs.Int("workers", 0, "")
	fs.Int("min-year", 0, "")
	return fs
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "arcana.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	ResetConfig()

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultSpread, cfg.Spread)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
	assert.Equal(t, DefaultMinYear, cfg.MinYear)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, filepath.Join(cfg.ProjectRoot, DefaultCatalog), cfg.Catalog)
	assert.Empty(t, GetConfigFileUsed())
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfig_FileFoundUpward(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "catalog: data/cards.yaml\nspread: karma\nworkers: 2\n")
	nested := filepath.Join(root, "notes", "2024")
	require.NoError(t, os.MkdirAll(nested, 0750))
	t.Chdir(nested)
	ResetConfig()

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "karma", cfg.Spread)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, filepath.Join(cfg.ProjectRoot, "data", "cards.yaml"), cfg.Catalog)
	assert.Equal(t, "arcana.yaml", filepath.Base(GetConfigFileUsed()))
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "spread: shadow\nworkers: 2\nmin_year: 1920\n")
	t.Setenv("ARCANA_WORKERS", "6")
	t.Setenv("ARCANA_SPREAD", "karma")
	ResetConfig()

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--spread", "individual", "--min-year", "1950"}))

	cfg, err := LoadConfig(path, flags)
	require.NoError(t, err)

	assert.Equal(t, "individual", cfg.Spread, "flag beats env and file")
	assert.Equal(t, 6, cfg.Workers, "env beats file")
	assert.Equal(t, 1950, cfg.MinYear, "kebab-case flag maps to snake_case key")
	assert.Equal(t, dir, cfg.ProjectRoot)
}

func TestLoadConfig_CatalogFlagRelativeToCWD(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "catalog: far/away.json\n")
	cwd := t.TempDir()
	t.Chdir(cwd)
	ResetConfig()

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--catalog", "local.json"}))

	cfg, err := LoadConfig(path, flags)
	require.NoError(t, err)

	want, err := filepath.Abs("local.json")
	require.NoError(t, err)
	assert.Equal(t, want, cfg.Catalog)
}

func TestLoadConfig_CatalogEnvExpansion(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "catalog: ${ARCANA_TEST_DATA}/cards.json\n")
	t.Setenv("ARCANA_TEST_DATA", "/srv/arcana")
	ResetConfig()

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "/srv/arcana/cards.json", cfg.Catalog)
}

func TestLoadConfig_SpreadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "spreads:\n  shadow: [\"1\", \"4.1\"]\n")
	ResetConfig()

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	spreads, err := cfg.Project().SpreadConfig()
	require.NoError(t, err)
	assert.Len(t, spreads.Keys("shadow"), 2)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown spread", content: "spread: tarot\n"},
		{name: "bad spread key", content: "spreads:\n  karma: [\"x\"]\n"},
		{name: "unknown output", content: "output: html\n"},
		{name: "malformed yaml", content: "spread: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeConfig(t, dir, tt.content)
			ResetConfig()

			_, err := LoadConfig(path, nil)
			assert.Error(t, err)
		})
	}
}

func TestValidateCatalog(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{Catalog: filepath.Join(dir, "missing.json")}
	err := cfg.ValidateCatalog()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "arcana init")

	require.NoError(t, os.WriteFile(cfg.Catalog, []byte("{}"), 0600))
	assert.NoError(t, cfg.ValidateCatalog())
}

func TestGetLogger_Fallback(t *testing.T) {
	logger := GetLogger(context.Background())
	require.NotNil(t, logger)
	logger.Info("discarded")
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("ARCANA_TEST_ONE", "value_one")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "single variable", input: "${ARCANA_TEST_ONE}", expected: "value_one"},
		{name: "variable in path", input: "/data/${ARCANA_TEST_ONE}/arcana.json", expected: "/data/value_one/arcana.json"},
		{name: "unset variable stays as-is", input: "${ARCANA_UNSET_VARIABLE}", expected: "${ARCANA_UNSET_VARIABLE}"},
		{name: "no variables", input: "plain.json", expected: "plain.json"},
		{name: "empty string", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, expandEnvVars(tt.input))
		})
	}
}
