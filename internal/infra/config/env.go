package config

import (
	"fmt"

	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/caarlos0/env/v11"
)

// envOverlay holds the UNITCONV_* variables. Fields start from the current
// config so unset variables leave it untouched.
type envOverlay struct {
	Precision      int     `env:"UNITCONV_PRECISION"`
	Locale         string  `env:"UNITCONV_LOCALE"`
	Format         string  `env:"UNITCONV_FORMAT"`
	MixturesDir    string  `env:"UNITCONV_MIXTURES_DIR"`
	SubstancesFile string  `env:"UNITCONV_SUBSTANCES_FILE"`
	DefaultDensity float64 `env:"UNITCONV_DEFAULT_DENSITY"`
}

// ApplyEnv overrides cfg with the environment.
func ApplyEnv(cfg domain.Config) (domain.Config, error) {
	o := envOverlay{
		Precision:      cfg.Output.Precision,
		Locale:         cfg.Output.Locale,
		Format:         cfg.Output.Format,
		MixturesDir:    cfg.Paths.MixturesDir,
		SubstancesFile: cfg.Paths.SubstancesFile,
		DefaultDensity: cfg.Defaults.Density,
	}
	if err := env.Parse(&o); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.env",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("parse env: %w", err),
		}
	}

	cfg.Output.Precision = o.Precision
	cfg.Output.Locale = o.Locale
	cfg.Output.Format = o.Format
	cfg.Paths.MixturesDir = o.MixturesDir
	cfg.Paths.SubstancesFile = o.SubstancesFile
	cfg.Defaults.Density = o.DefaultDensity

	return cfg, Validate(cfg)
}

// Validate rejects settings no command could honour.
func Validate(cfg domain.Config) error {
	switch {
	case cfg.Output.Precision < 0 || cfg.Output.Precision > 17:
		return invalidSetting("output.precision", fmt.Sprintf("must be within [0,17], got %d", cfg.Output.Precision))
	case cfg.Output.Format != "pretty" && cfg.Output.Format != "json":
		return invalidSetting("output.format", fmt.Sprintf("must be pretty or json, got %q", cfg.Output.Format))
	case cfg.Defaults.Density < 0:
		return invalidSetting("defaults.density", fmt.Sprintf("must be positive, got %g", cfg.Defaults.Density))
	}
	return nil
}

func invalidSetting(field, msg string) error {
	return &domain.OpError{
		Op:   "config.validate",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
