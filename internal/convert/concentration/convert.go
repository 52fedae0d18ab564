package concentration

import (
	"errors"
	"fmt"

	"github.com/aalvaropc/unitconv/internal/domain"
)

// Params are the optional auxiliary inputs of a conversion. MolarMass is in
// g/mol and Density (of the solution) in g/mL. Nil means "not supplied".
type Params struct {
	MolarMass *float64
	Density   *float64
	Mixture   *domain.MixtureContext
}

// BinaryBundle reports every fraction of a two-component mixture, oriented
// so that Component is the component of interest.
type BinaryBundle = domain.FractionBreakdown

// Outcome is the result of a conversion. Value is always the requested number.
// Binary is set for two-component fraction conversions. Approximate is set
// when Value comes from the even-split approximation for 3+ components.
type Outcome struct {
	Value       float64
	Binary      *BinaryBundle
	Approximate bool
}

// Convert converts quantity from source to target. Units may be given by
// canonical name, alias or numeric code.
func Convert(source, target string, quantity float64, p Params) (Outcome, error) {
	src, err := ParseUnit(source)
	if err != nil {
		return Outcome{}, withPair(err, source+"->"+target, "source")
	}
	dst, err := ParseUnit(target)
	if err != nil {
		return Outcome{}, withPair(err, source+"->"+target, "target")
	}
	return ConvertUnits(src, dst, quantity, p)
}

// ConvertUnits is Convert on resolved units.
func ConvertUnits(src, dst Unit, quantity float64, p Params) (Outcome, error) {
	pair := src.String() + "->" + dst.String()
	if !src.Valid() || !dst.Valid() {
		return Outcome{}, &domain.ConversionError{
			Op:   "concentration.convert",
			Kind: domain.KindInvalidUnit,
			Pair: pair,
			Msg:  "unit outside the supported set",
		}
	}

	if src == dst {
		return Outcome{Value: quantity}, nil
	}

	req := RequirementFor(src, dst)
	if err := checkParams(pair, req, p); err != nil {
		return Outcome{}, err
	}

	if req.Mixture {
		out, err := convertFractions(src, quantity, *p.Mixture)
		if err != nil {
			return Outcome{}, withPair(err, pair, "")
		}
		return out, nil
	}

	a := aux{molarMass: p.MolarMass, density: p.Density}
	gl, err := toGramsPerLiter(quantity, src, a)
	if err != nil {
		return Outcome{}, wrapConversion(pair, err)
	}
	v, err := fromGramsPerLiter(gl, dst, a)
	if err != nil {
		return Outcome{}, wrapConversion(pair, err)
	}
	return Outcome{Value: v}, nil
}

func checkParams(pair string, req Requirement, p Params) error {
	missing := func(param, msg string) error {
		return &domain.ConversionError{
			Op:    "concentration.convert",
			Kind:  domain.KindMissingParameter,
			Pair:  pair,
			Param: param,
			Msg:   msg,
		}
	}
	outOfRange := func(param, msg string) error {
		return &domain.ConversionError{
			Op:    "concentration.convert",
			Kind:  domain.KindInvalidRange,
			Pair:  pair,
			Param: param,
			Msg:   msg,
		}
	}

	if req.MolarMass && p.MolarMass == nil {
		return missing("molar_mass", "this conversion requires the solute molar mass")
	}
	if req.Density && p.Density == nil {
		return missing("density", "this conversion requires the solution density")
	}
	if req.Mixture && p.Mixture == nil {
		return missing("mixture", "this conversion requires the mixture composition")
	}

	if req.MolarMass && !(*p.MolarMass > 0) {
		return outOfRange("molar_mass", fmt.Sprintf("molar mass must be positive, got %g", *p.MolarMass))
	}
	if req.Density && !(*p.Density > 0) {
		return outOfRange("density", fmt.Sprintf("density must be positive, got %g", *p.Density))
	}
	if req.Mixture {
		if err := p.Mixture.Validate(); err != nil {
			return withPair(err, pair, "")
		}
	}
	return nil
}

func convertFractions(src Unit, q float64, mix domain.MixtureContext) (Outcome, error) {
	kind := MassBasis
	if src == MoleFraction {
		kind = MolarBasis
	}

	if len(mix.Components) == 2 {
		interest := mix.Components[mix.Interest]
		other := mix.Components[1-mix.Interest]

		r, err := BinaryFraction(q, interest.MolarMass, other.MolarMass, kind)
		if err != nil {
			return Outcome{}, err
		}

		b := &BinaryBundle{
			Component:         interest.Name,
			Other:             other.Name,
			MassFraction:      r.MassFraction1,
			OtherMassFraction: r.MassFraction2,
			MoleFraction:      r.MoleFraction1,
			OtherMoleFraction: r.MoleFraction2,
		}
		v := b.MoleFraction
		if kind == MolarBasis {
			v = b.MassFraction
		}
		return Outcome{Value: v, Binary: b}, nil
	}

	var (
		v   float64
		err error
	)
	if kind == MassBasis {
		v, err = MassToMole(q, mix.Components, mix.Interest)
	} else {
		v, err = MoleToMass(q, mix.Components, mix.Interest)
	}
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Value: v, Approximate: true}, nil
}

func wrapConversion(pair string, err error) error {
	ce := &domain.ConversionError{
		Op:    "concentration.convert",
		Kind:  domain.KindConversion,
		Pair:  pair,
		Cause: err,
	}
	var inner *domain.ConversionError
	if errors.As(err, &inner) {
		ce.Param = inner.Param
	}
	return ce
}

// withPair stamps the unit pair (and param, when empty) on an error created
// during this call.
func withPair(err error, pair, param string) error {
	var ce *domain.ConversionError
	if errors.As(err, &ce) {
		if ce.Pair == "" {
			ce.Pair = pair
		}
		if ce.Param == "" {
			ce.Param = param
		}
	}
	return err
}
