// Package config provides the project configuration shared by the CLI and
// the terminal UI: where the catalog lives and how spreads are laid out.
package config

import (
	"fmt"

	"github.com/leapstack-labs/arcana/internal/spread"
	"github.com/leapstack-labs/arcana/pkg/core"
)

// ProjectConfig is the shape of arcana.yaml.
type ProjectConfig struct {
	// Catalog is the meaning catalog path (JSON or YAML).
	Catalog string `koanf:"catalog"`
	// Spread is the spread shown when none is requested.
	Spread string `koanf:"spread"`
	// Spreads overrides default position lists per spread name.
	Spreads map[string][]string `koanf:"spreads"`
	// Workers bounds concurrent calculations in batch mode.
	Workers int `koanf:"workers"`
	// MinYear is the earliest accepted birth year.
	MinYear int `koanf:"min_year"`
}

// SpreadType parses the configured default spread.
func (c *ProjectConfig) SpreadType() (core.SpreadType, error) {
	s, err := core.ParseSpreadType(c.Spread)
	if err != nil {
		return "", fmt.Errorf("config spread: %w", err)
	}
	return s, nil
}

// SpreadConfig builds the spread layout with any overrides applied.
func (c *ProjectConfig) SpreadConfig() (*spread.Config, error) {
	if len(c.Spreads) == 0 {
		return spread.Defaults(), nil
	}
	cfg, err := spread.FromMap(c.Spreads)
	if err != nil {
		return nil, fmt.Errorf("config spreads: %w", err)
	}
	return cfg, nil
}
