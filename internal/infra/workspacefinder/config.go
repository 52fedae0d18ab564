package workspacefinder

import (
	"os"
	"path/filepath"

	"github.com/aalvaropc/unitconv/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads unitconv.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Unitconv.Output.Precision != nil {
		cfg.Output.Precision = *y.Unitconv.Output.Precision
	}
	if y.Unitconv.Output.Locale != "" {
		cfg.Output.Locale = y.Unitconv.Output.Locale
	}
	if y.Unitconv.Output.Format != "" {
		cfg.Output.Format = y.Unitconv.Output.Format
	}
	if y.Unitconv.Defaults.Density != nil {
		cfg.Defaults.Density = *y.Unitconv.Defaults.Density
	}
	if y.Unitconv.Paths.MixturesDir != "" {
		cfg.Paths.MixturesDir = y.Unitconv.Paths.MixturesDir
	}
	if y.Unitconv.Paths.SubstancesFile != "" {
		cfg.Paths.SubstancesFile = y.Unitconv.Paths.SubstancesFile
	}

	return cfg, nil
}

type yamlConfig struct {
	Unitconv struct {
		Output struct {
			Precision *int   `yaml:"precision"`
			Locale    string `yaml:"locale"`
			Format    string `yaml:"format"`
		} `yaml:"output"`

		Defaults struct {
			Density *float64 `yaml:"density"`
		} `yaml:"defaults"`

		Paths struct {
			MixturesDir    string `yaml:"mixtures_dir"`
			SubstancesFile string `yaml:"substances_file"`
		} `yaml:"paths"`
	} `yaml:"unitconv"`
}
