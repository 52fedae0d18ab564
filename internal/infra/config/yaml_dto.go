package config

// YAMLMixture is the on-disk shape of mixtures/<name>.yaml.
type YAMLMixture struct {
	Name       string          `yaml:"name"`
	Components []YAMLComponent `yaml:"components"`
	// Interest is a component name or its 1-based position.
	Interest string `yaml:"interest"`
}

type YAMLComponent struct {
	Name      string  `yaml:"name"`
	MolarMass float64 `yaml:"molar_mass"`
}

// YAMLSubstances is the on-disk shape of substances.yaml.
type YAMLSubstances struct {
	Substances map[string]float64 `yaml:"substances"`
}
