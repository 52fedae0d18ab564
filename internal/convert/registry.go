// Package convert wires the unit families behind ports.ConverterRegistry.
package convert

import (
	"github.com/aalvaropc/unitconv/internal/convert/concentration"
	"github.com/aalvaropc/unitconv/internal/convert/linear"
	"github.com/aalvaropc/unitconv/internal/convert/temperature"
	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/ports"
)

// Registry holds one converter per family.
type Registry struct {
	byFamily map[domain.Family]ports.Converter
}

// NewRegistry registers every family.
func NewRegistry() *Registry {
	r := &Registry{byFamily: make(map[domain.Family]ports.Converter, len(domain.Families))}
	for _, t := range linear.Tables() {
		r.Register(linearConverter{table: t})
	}
	r.Register(temperatureConverter{})
	r.Register(concentrationConverter{})
	return r
}

var _ ports.ConverterRegistry = (*Registry)(nil)

// Register adds or replaces the converter of c's family.
func (r *Registry) Register(c ports.Converter) {
	r.byFamily[c.Family()] = c
}

func (r *Registry) Converter(f domain.Family) (ports.Converter, bool) {
	c, ok := r.byFamily[f]
	return c, ok
}

type linearConverter struct {
	table *linear.Table
}

func (c linearConverter) Family() domain.Family     { return c.table.Family() }
func (c linearConverter) Units() []domain.UnitInfo { return c.table.Units() }

func (c linearConverter) Convert(req domain.ConversionRequest) (domain.ConversionResult, error) {
	v, err := c.table.Convert(req.From, req.To, req.Quantity)
	if err != nil {
		return domain.ConversionResult{}, err
	}
	src, _ := c.table.Lookup(req.From)
	dst, _ := c.table.Lookup(req.To)
	return domain.ConversionResult{
		Family:    c.table.Family(),
		From:      src.Key,
		To:        dst.Key,
		FromLabel: src.Label,
		ToLabel:   dst.Label,
		Quantity:  req.Quantity,
		Value:     v,
	}, nil
}

type temperatureConverter struct{}

func (temperatureConverter) Family() domain.Family     { return domain.FamilyTemperature }
func (temperatureConverter) Units() []domain.UnitInfo { return temperature.Units() }

func (temperatureConverter) Convert(req domain.ConversionRequest) (domain.ConversionResult, error) {
	v, err := temperature.Convert(req.From, req.To, req.Quantity)
	if err != nil {
		return domain.ConversionResult{}, err
	}
	src, _ := temperature.Parse(req.From)
	dst, _ := temperature.Parse(req.To)
	return domain.ConversionResult{
		Family:    domain.FamilyTemperature,
		From:      src.String(),
		To:        dst.String(),
		FromLabel: labelOf(temperature.Units(), int(src)),
		ToLabel:   labelOf(temperature.Units(), int(dst)),
		Quantity:  req.Quantity,
		Value:     v,
	}, nil
}

type concentrationConverter struct{}

func (concentrationConverter) Family() domain.Family     { return domain.FamilyConcentration }
func (concentrationConverter) Units() []domain.UnitInfo { return concentration.Units() }

func (concentrationConverter) Convert(req domain.ConversionRequest) (domain.ConversionResult, error) {
	out, err := concentration.Convert(req.From, req.To, req.Quantity, concentration.Params{
		MolarMass: req.MolarMass,
		Density:   req.Density,
		Mixture:   req.Mixture,
	})
	if err != nil {
		return domain.ConversionResult{}, err
	}
	src, _ := concentration.ParseUnit(req.From)
	dst, _ := concentration.ParseUnit(req.To)

	// Report only the inputs the conversion actually read.
	need := concentration.RequirementFor(src, dst)
	res := domain.ConversionResult{
		Family:      domain.FamilyConcentration,
		From:        src.String(),
		To:          dst.String(),
		FromLabel:   src.Label(),
		ToLabel:     dst.Label(),
		Quantity:    req.Quantity,
		Value:       out.Value,
		Fractions:   out.Binary,
		Approximate: out.Approximate,
	}
	if src != dst {
		if need.MolarMass {
			res.MolarMass = req.MolarMass
		}
		if need.Density {
			res.Density = req.Density
		}
		if need.Mixture {
			res.Mixture = req.Mixture
		}
	}
	return res, nil
}

func labelOf(units []domain.UnitInfo, code int) string {
	for _, u := range units {
		if u.Code == code {
			return u.Label
		}
	}
	return ""
}
