package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/unitconv/internal/convert/unitname"
	"github.com/aalvaropc/unitconv/internal/domain"
)

// MapMixture validates a mixture DTO. A missing name falls back to the file name
// and a missing interest selects the first component.
func MapMixture(path string, ym YAMLMixture) (domain.Mixture, error) {
	name := strings.TrimSpace(ym.Name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	ctx := domain.MixtureContext{
		Components: make([]domain.MixtureComponent, 0, len(ym.Components)),
	}
	for i, c := range ym.Components {
		field := fmt.Sprintf("components[%d]", i)
		if strings.TrimSpace(c.Name) == "" {
			return domain.Mixture{}, invalidField(path, field+".name", "component name is required")
		}
		if !(c.MolarMass > 0) {
			return domain.Mixture{}, invalidField(path, field+".molar_mass", "molar mass must be positive")
		}
		ctx.Components = append(ctx.Components, domain.MixtureComponent{
			Name:      strings.TrimSpace(c.Name),
			MolarMass: c.MolarMass,
		})
	}
	if len(ctx.Components) < 2 {
		return domain.Mixture{}, invalidField(path, "components", "a mixture needs at least 2 components")
	}

	if in := strings.TrimSpace(ym.Interest); in != "" {
		idx, ok := ctx.IndexOf(in)
		if !ok {
			return domain.Mixture{}, invalidField(path, "interest", fmt.Sprintf("no component %q", in))
		}
		ctx.Interest = idx
	}

	return domain.Mixture{Name: name, Context: ctx}, nil
}

// MapSubstances normalizes catalog keys the same way unit names are
// normalized, so "Sodium Chloride" and "sodium_chloride" match.
func MapSubstances(path string, ys YAMLSubstances) (map[string]float64, error) {
	out := make(map[string]float64, len(ys.Substances))
	for name, mm := range ys.Substances {
		key := unitname.Key(name)
		if key == "" {
			return nil, invalidField(path, "substances", "empty substance name")
		}
		if !(mm > 0) {
			return nil, invalidField(path, "substances."+name, "molar mass must be positive")
		}
		out[key] = mm
	}
	return out, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
