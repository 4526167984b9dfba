package config

// Default configuration values.
const (
	DefaultCatalogFile = "arcana.json"
	DefaultSpread      = "individual"
	DefaultWorkers     = 4
	DefaultMinYear     = 1900
)

// ApplyDefaults fills unset fields of a ProjectConfig.
func (c *ProjectConfig) ApplyDefaults() {
	if c == nil {
		return
	}
	if c.Catalog == "" {
		c.Catalog = DefaultCatalogFile
	}
	if c.Spread == "" {
		c.Spread = DefaultSpread
	}
	if c.Workers <= 0 {
		c.Workers = DefaultWorkers
	}
	if c.MinYear == 0 {
		c.MinYear = DefaultMinYear
	}
}
