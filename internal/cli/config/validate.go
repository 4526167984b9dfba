package config

import (
	"fmt"
	"os"

	"github.com/leapstack-labs/arcana/internal/cli/output"
)

// Validate checks field values that do not need the filesystem.
func (c *Config) Validate() error {
	p := c.Project()
	if _, err := p.SpreadType(); err != nil {
		return err
	}
	if _, err := p.SpreadConfig(); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.OutputFormat != "" && !output.Mode(c.OutputFormat).Valid() {
		return fmt.Errorf("unknown output format %q (want auto, text, markdown or json)", c.OutputFormat)
	}
	return nil
}

// ValidateCatalog checks the catalog file exists.
// Only commands that render meanings call it, so help and version keep working.
func (c *Config) ValidateCatalog() error {
	if _, err := os.Stat(c.Catalog); os.IsNotExist(err) {
		return fmt.Errorf("catalog file does not exist: %s\nHint: run 'arcana init' or use --catalog to point at a catalog", c.Catalog)
	}
	return nil
}
