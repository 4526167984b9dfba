package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/leapstack-labs/arcana/internal/birthdate"
	"github.com/leapstack-labs/arcana/internal/cli/config"
	"github.com/leapstack-labs/arcana/internal/cli/output"
	"github.com/leapstack-labs/arcana/internal/meaning"
	"github.com/leapstack-labs/arcana/internal/portrait"
	"github.com/leapstack-labs/arcana/pkg/core"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with a renderer.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// Calculator loads the catalog and spread configuration and builds a
// portrait calculator.
func (c *CommandContext) Calculator() (*portrait.Calculator, error) {
	if err := c.Cfg.ValidateCatalog(); err != nil {
		return nil, err
	}

	catalog, err := meaning.Load(c.Cfg.Catalog)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("catalog loaded",
		slog.String("path", c.Cfg.Catalog),
		slog.Int("cards", catalog.Len()))

	spreads, err := c.Cfg.Project().SpreadConfig()
	if err != nil {
		return nil, fmt.Errorf("invalid spread configuration: %w", err)
	}

	return portrait.New(catalog,
		portrait.WithSpreads(spreads),
		portrait.WithLogger(c.Logger))
}

// Spread returns the configured spread.
func (c *CommandContext) Spread() (core.SpreadType, error) {
	return c.Cfg.Project().SpreadType()
}

// DateParser returns a birth-date parser honoring the configured year window.
func (c *CommandContext) DateParser() birthdate.Parser {
	return birthdate.Parser{MinYear: c.Cfg.Project().MinYear}
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	return &config.Config{
		Catalog:      getEnvOrDefault("ARCANA_CATALOG", config.DefaultCatalog),
		Spread:       getEnvOrDefault("ARCANA_SPREAD", config.DefaultSpread),
		Workers:      config.DefaultWorkers,
		MinYear:      config.DefaultMinYear,
		Verbose:      os.Getenv("ARCANA_VERBOSE") == "true",
		OutputFormat: os.Getenv("ARCANA_OUTPUT"),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
