package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/arcana/internal/cli/output"
	sharedcfg "github.com/leapstack-labs/arcana/internal/config"
	"github.com/leapstack-labs/arcana/internal/meaning"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	starterCatalogJSON = "arcana.json"
	starterCatalogYAML = "catalog.yaml"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool
	var format string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new arcana project",
		Long: `Initialize a new arcana project with a configuration file and a
starter meaning catalog covering all 22 cards.

This creates:
  - arcana.yaml configuration file
  - arcana.json starter catalog (or catalog.yaml with --format yaml)

Edit the catalog to add position-specific meanings; any position without
its own text falls back to the card's default for the spread.`,
		Example: `  # Initialize in current directory
  arcana init

  # Initialize in a new directory with a YAML catalog
  arcana init my-readings --format yaml

  # Force overwrite existing files
  arcana init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			cfg := getConfig()
			r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))

			return runInit(r, dir, meaning.Format(format), force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	cmd.Flags().StringVar(&format, "format", string(meaning.FormatJSON), "Catalog format (json|yaml)")

	return cmd
}

func runInit(r *output.Renderer, dir string, format meaning.Format, force bool) error {
	if format != meaning.FormatJSON && format != meaning.FormatYAML {
		return fmt.Errorf("unsupported catalog format %q (want json or yaml)", format)
	}

	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, sharedcfg.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", sharedcfg.ConfigFileName)
	}

	files, err := readTemplate("starter")
	if err != nil {
		return fmt.Errorf("failed to read starter template: %w", err)
	}
	if format == meaning.FormatYAML {
		if files, err = convertStarterToYAML(files); err != nil {
			return fmt.Errorf("failed to convert starter catalog: %w", err)
		}
	}

	written, err := writeTemplateFiles(files, dir, force)
	if err != nil {
		return fmt.Errorf("failed to initialize project: %w", err)
	}

	for _, f := range written {
		r.StatusLine(f, "success", "")
	}
	r.Println("")
	r.Success("arcana project initialized!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  arcana calc 15.07.1990          Calculate a portrait")
	r.Println("  arcana spreads --check          Check spread layouts")
	r.Println("  arcana tui                      Open the interactive view")

	return nil
}

// convertStarterToYAML swaps the JSON catalog for a YAML one and points the
// config file at it.
func convertStarterToYAML(files []templateFile) ([]templateFile, error) {
	out := make([]templateFile, 0, len(files))
	for _, f := range files {
		switch f.Name {
		case starterCatalogJSON:
			catalog, err := meaning.Parse(f.Content, meaning.FormatJSON)
			if err != nil {
				return nil, err
			}
			data, err := yaml.Marshal(struct {
				Arcana []meaning.Card `yaml:"arcana"`
			}{catalog.Cards()})
			if err != nil {
				return nil, err
			}
			out = append(out, templateFile{Name: starterCatalogYAML, Content: data})
		case sharedcfg.ConfigFileName:
			content := bytes.Replace(f.Content,
				[]byte("catalog: "+starterCatalogJSON),
				[]byte("catalog: "+starterCatalogYAML), 1)
			out = append(out, templateFile{Name: f.Name, Content: content})
		default:
			out = append(out, f)
		}
	}
	return out, nil
}
