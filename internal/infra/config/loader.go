package config

import (
	"os"

	"github.com/aalvaropc/unitconv/internal/domain"
	"gopkg.in/yaml.v3"
)

func LoadMixture(path string) (domain.Mixture, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Mixture{}, &domain.OpError{
			Op:   "config.load_mixture",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLMixture
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Mixture{}, &domain.OpError{
			Op:   "config.load_mixture",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapMixture(path, dto)
}

func LoadSubstances(path string) (map[string]float64, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "config.load_substances",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLSubstances
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return nil, &domain.OpError{
			Op:   "config.load_substances",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapSubstances(path, dto)
}
