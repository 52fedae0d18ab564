package domain

// Config represents the unitconv configuration loaded from unitconv.yaml
// and the UNITCONV_* environment.
type Config struct {
	Output   OutputConfig
	Defaults DefaultsConfig
	Paths    PathsConfig
}

type OutputConfig struct {
	Precision int
	Locale    string
	Format    string
}

type DefaultsConfig struct {
	// Density in g/mL, used only when a conversion needs one and none was given.
	// Zero means unset.
	Density float64
}

type PathsConfig struct {
	MixturesDir    string
	SubstancesFile string
}

// DefaultConfig provides sane defaults if unitconv.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{
			Precision: 6,
			Locale:    "en",
			Format:    "pretty",
		},
		Paths: PathsConfig{
			MixturesDir:    "mixtures",
			SubstancesFile: "substances.yaml",
		},
	}
}
