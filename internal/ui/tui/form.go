package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aalvaropc/unitconv/internal/convert/concentration"
	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/usecase"
)

type fieldKey string

const (
	fieldQuantity  fieldKey = "quantity"
	fieldMolarMass fieldKey = "molar_mass"
	fieldDensity   fieldKey = "density"
	fieldMixture   fieldKey = "mixture"
	fieldComponent fieldKey = "component"
)

type field struct {
	key         fieldKey
	label       string
	placeholder string
	optional    bool
}

// form walks the prompts of one conversion. Only the auxiliary inputs the
// unit pair needs are asked for.
type form struct {
	fields []field
	step   int
	values map[fieldKey]string

	// mixture is the workspace mixture picked by name, kept for component hints.
	mixture *domain.Mixture
}

func newForm(family domain.Family, need concentration.Requirement, cfg domain.Config) form {
	fs := []field{{key: fieldQuantity, label: "Quantity", placeholder: "e.g. 2.5"}}

	if family == domain.FamilyConcentration {
		if need.MolarMass {
			fs = append(fs, field{key: fieldMolarMass, label: "Molar mass (g/mol) or substance name", placeholder: "e.g. 58.44 or nacl"})
		}
		if need.Density {
			f := field{key: fieldDensity, label: "Solution density (g/mL)", placeholder: "e.g. 1.05"}
			if cfg.Defaults.Density > 0 {
				f.optional = true
				f.placeholder = fmt.Sprintf("empty uses %g", cfg.Defaults.Density)
			}
			fs = append(fs, f)
		}
		if need.Mixture {
			fs = append(fs,
				field{key: fieldMixture, label: "Mixture (workspace name, or name:mm,name:mm)", placeholder: "e.g. brine or water:18.015,nacl:58.44"},
				field{key: fieldComponent, label: "Component of interest (name or position)", placeholder: "e.g. nacl or 2"},
			)
		}
	}

	return form{fields: fs, values: map[fieldKey]string{}}
}

func (f form) current() field {
	return f.fields[f.step]
}

func (f form) done() bool {
	return f.step >= len(f.fields)
}

// indexOf finds the prompt responsible for a parameter named in an error.
func (f form) indexOf(param string) (int, bool) {
	var key fieldKey
	switch {
	case param == "quantity":
		key = fieldQuantity
	case param == "molar_mass":
		key = fieldMolarMass
	case param == "density":
		key = fieldDensity
	case param == "mixture.interest":
		key = fieldComponent
	case strings.HasPrefix(param, "mixture"):
		key = fieldMixture
	default:
		return 0, false
	}
	for i, fd := range f.fields {
		if fd.key == key {
			return i, true
		}
	}
	return 0, false
}

// components returns the component names known so far, from the loaded
// mixture or from an inline list.
func (f form) components() []domain.MixtureComponent {
	if f.mixture != nil {
		return f.mixture.Context.Components
	}
	if v := f.values[fieldMixture]; domain.LooksInline(v) {
		comps, err := domain.ParseComponents(v)
		if err == nil {
			return comps
		}
	}
	return nil
}

// check validates one answer before moving on.
func (f form) check(key fieldKey, value string, optional bool) error {
	v := strings.TrimSpace(value)
	if v == "" {
		if optional {
			return nil
		}
		return &domain.ConversionError{Op: "tui.form", Kind: domain.KindMissingParameter, Param: string(key), Msg: "a value is required"}
	}

	switch key {
	case fieldQuantity:
		_, err := domain.ParseQuantity(v)
		return err
	case fieldDensity:
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return &domain.ConversionError{Op: "tui.form", Kind: domain.KindInvalidRange, Param: string(key), Msg: fmt.Sprintf("not a number: %q", v)}
		}
	case fieldMixture:
		if domain.LooksInline(v) {
			comps, err := domain.ParseComponents(v)
			if err != nil {
				return err
			}
			return domain.MixtureContext{Components: comps}.Validate()
		}
	case fieldComponent:
		comps := f.components()
		if len(comps) == 0 {
			return nil
		}
		if _, ok := (domain.MixtureContext{Components: comps}).IndexOf(v); !ok {
			return &domain.ConversionError{Op: "tui.form", Kind: domain.KindInvalidRange, Param: "mixture.interest", Msg: fmt.Sprintf("no component %q", v)}
		}
	}
	return nil
}

// request assembles the use-case request from the collected answers.
func (f form) request(family domain.Family, from, to string) (usecase.ConvertRequest, error) {
	q, err := domain.ParseQuantity(f.values[fieldQuantity])
	if err != nil {
		return usecase.ConvertRequest{}, err
	}

	req := usecase.ConvertRequest{
		ConversionRequest: domain.ConversionRequest{
			Family:   family,
			From:     from,
			To:       to,
			Quantity: q,
		},
		Component: strings.TrimSpace(f.values[fieldComponent]),
	}

	if v := strings.TrimSpace(f.values[fieldMolarMass]); v != "" {
		if mm, err := strconv.ParseFloat(v, 64); err == nil {
			req.MolarMass = &mm
		} else {
			req.Substance = v
		}
	}

	if v := strings.TrimSpace(f.values[fieldDensity]); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return usecase.ConvertRequest{}, errors.New("density is not a number")
		}
		req.Density = &d
	}

	if v := strings.TrimSpace(f.values[fieldMixture]); v != "" {
		switch {
		case f.mixture != nil:
			mix := f.mixture.Context
			req.Mixture = &mix
		case domain.LooksInline(v):
			comps, err := domain.ParseComponents(v)
			if err != nil {
				return usecase.ConvertRequest{}, err
			}
			req.Mixture = &domain.MixtureContext{Components: comps}
		default:
			req.MixtureRef = v
		}
	}

	return req, nil
}
