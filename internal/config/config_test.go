package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/arcana/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromDir(t *testing.T) {
	dir := t.TempDir()
	content := `catalog: data/arcana.yaml
spread: shadow
spreads:
  karma: ["1", "2", "2.1"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0600))

	cfg, err := LoadFromDir(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "data/arcana.yaml", cfg.Catalog)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
	assert.Equal(t, DefaultMinYear, cfg.MinYear)

	s, err := cfg.SpreadType()
	require.NoError(t, err)
	assert.Equal(t, core.SpreadShadow, s)

	spreads, err := cfg.SpreadConfig()
	require.NoError(t, err)
	assert.Equal(t, []core.PositionKey{"1", "2", "2.1"}, spreads.Keys(core.SpreadKarma))
}

func TestLoadFromDir_NoFile(t *testing.T) {
	cfg, err := LoadFromDir(t.TempDir())
	assert.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoadFromDir_AltName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileNameAlt), []byte("workers: 9\n"), 0600))

	cfg, err := LoadFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Workers)
	assert.Equal(t, DefaultCatalogFile, cfg.Catalog)
	assert.Equal(t, DefaultSpread, cfg.Spread)
}

func TestProjectConfig_Invalid(t *testing.T) {
	cfg := &ProjectConfig{Spread: "tarot", Spreads: map[string][]string{"shadow": {}}}

	_, err := cfg.SpreadType()
	assert.Error(t, err)

	_, err = cfg.SpreadConfig()
	assert.Error(t, err)
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName), []byte(""), 0600))

	assert.Equal(t, root, FindProjectRoot(nested, 10))
	assert.Equal(t, "", FindProjectRoot(nested, 2))
}
