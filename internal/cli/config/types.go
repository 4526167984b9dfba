// Package config provides configuration management for the arcana CLI.
//
// It layers defaults, arcana.yaml, ARCANA_* environment variables and
// command-line flags into a single Config. The project file shape itself
// lives in internal/config and is shared with the terminal UI.
package config

import (
	sharedcfg "github.com/leapstack-labs/arcana/internal/config"
)

// Config holds all CLI configuration options.
type Config struct {
	Catalog      string              `koanf:"catalog"`
	Spread       string              `koanf:"spread"`
	Spreads      map[string][]string `koanf:"spreads"`
	Workers      int                 `koanf:"workers"`
	MinYear      int                 `koanf:"min_year"`
	Verbose      bool                `koanf:"verbose"`
	OutputFormat string              `koanf:"output"`

	// ProjectRoot is the directory relative paths resolve against.
	ProjectRoot string `koanf:"-"`
}

// Project returns the project-level view of the configuration.
func (c *Config) Project() *sharedcfg.ProjectConfig {
	p := &sharedcfg.ProjectConfig{
		Catalog: c.Catalog,
		Spread:  c.Spread,
		Spreads: c.Spreads,
		Workers: c.Workers,
		MinYear: c.MinYear,
	}
	p.ApplyDefaults()
	return p
}

// Default configuration values - uses shared defaults from internal/config
const (
	DefaultCatalog = sharedcfg.DefaultCatalogFile
	DefaultSpread  = sharedcfg.DefaultSpread
	DefaultWorkers = sharedcfg.DefaultWorkers
	DefaultMinYear = sharedcfg.DefaultMinYear
	DefaultOutput  = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)
