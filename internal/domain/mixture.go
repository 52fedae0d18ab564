package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// MixtureComponent is one species of a mixture. MolarMass is in g/mol.
type MixtureComponent struct {
	Name      string
	MolarMass float64
}

// MixtureContext identifies the component whose fraction is converted; the
// rest of Components are "the others". Callers own the slice; converters
// only read it.
type MixtureContext struct {
	Components []MixtureComponent
	Interest   int
}

// Mixture is a named mixture definition, as read from a workspace file.
type Mixture struct {
	Name    string
	Context MixtureContext
}

// MixtureRef points at a mixture definition on disk.
type MixtureRef struct {
	Name string
	Path string
}

// Validate checks the structural invariants of the mixture.
func (m MixtureContext) Validate() error {
	if len(m.Components) < 2 {
		return rangeErr("mixture.components", fmt.Sprintf("a mixture needs at least 2 components, got %d", len(m.Components)))
	}
	for i, c := range m.Components {
		if strings.TrimSpace(c.Name) == "" {
			return rangeErr(fmt.Sprintf("mixture.components[%d].name", i), "component name is required")
		}
		if !(c.MolarMass > 0) {
			return rangeErr(fmt.Sprintf("mixture.components[%d].molar_mass", i), fmt.Sprintf("molar mass of %s must be positive, got %g", c.Name, c.MolarMass))
		}
	}
	if m.Interest < 0 || m.Interest >= len(m.Components) {
		return rangeErr("mixture.interest", fmt.Sprintf("component index %d outside [0,%d)", m.Interest, len(m.Components)))
	}
	return nil
}

// Selected returns the component of interest. It assumes Validate passed.
func (m MixtureContext) Selected() MixtureComponent {
	return m.Components[m.Interest]
}

// IndexOf finds a component by name (case-insensitive) or 1-based position.
func (m MixtureContext) IndexOf(nameOrPos string) (int, bool) {
	s := strings.TrimSpace(nameOrPos)
	for i, c := range m.Components {
		if strings.EqualFold(c.Name, s) {
			return i, true
		}
	}
	if pos, err := strconv.Atoi(s); err == nil && pos >= 1 && pos <= len(m.Components) {
		return pos - 1, true
	}
	return 0, false
}

// ParseComponents reads an inline component list, "name:molar_mass" pairs
// separated by commas (e.g. "water:18.015,nacl:58.44").
func ParseComponents(s string) ([]MixtureComponent, error) {
	var out []MixtureComponent
	for i, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, mm, ok := strings.Cut(part, ":")
		if !ok {
			return nil, rangeErr(fmt.Sprintf("mixture.components[%d]", i), fmt.Sprintf("expected name:molar_mass, got %q", part))
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(mm), 64)
		if err != nil {
			return nil, rangeErr(fmt.Sprintf("mixture.components[%d].molar_mass", i), fmt.Sprintf("invalid molar mass %q", mm))
		}
		out = append(out, MixtureComponent{Name: strings.TrimSpace(name), MolarMass: v})
	}
	return out, nil
}

// LooksInline reports whether a mixture argument is an inline component list
// rather than a name or path.
func LooksInline(s string) bool {
	return strings.Contains(s, ":") && !strings.ContainsAny(s, `/\`)
}

func rangeErr(param, msg string) error {
	return &ConversionError{
		Op:    "domain.mixture",
		Kind:  KindInvalidRange,
		Param: param,
		Msg:   msg,
	}
}
