package concentration

import (
	"fmt"

	"github.com/aalvaropc/unitconv/internal/domain"
)

// FractionKind says whether a fraction is by mass or by moles.
type FractionKind int

const (
	MassBasis FractionKind = iota + 1
	MolarBasis
)

func (k FractionKind) String() string {
	switch k {
	case MassBasis:
		return "mass"
	case MolarBasis:
		return "molar"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// BinaryFractionResult holds both fraction bases for a two-component mixture.
// Each pair sums to 1.
type BinaryFractionResult struct {
	MassFraction1 float64
	MassFraction2 float64
	MoleFraction1 float64
	MoleFraction2 float64
}

// BinaryFraction computes every fraction of a two-component mixture from the
// fraction f of component 1. The relation is exact for two components.
func BinaryFraction(f, mm1, mm2 float64, kind FractionKind) (BinaryFractionResult, error) {
	if err := checkFraction("concentration.binary_fraction", f, kind); err != nil {
		return BinaryFractionResult{}, err
	}
	if !(mm1 > 0) || !(mm2 > 0) {
		return BinaryFractionResult{}, &domain.ConversionError{
			Op:    "concentration.binary_fraction",
			Kind:  domain.KindInvalidRange,
			Param: "molar_mass",
			Msg:   fmt.Sprintf("molar masses must be positive, got %g and %g", mm1, mm2),
		}
	}

	switch kind {
	case MassBasis:
		w1 := f
		w2 := 1 - w1
		n1 := w1 / mm1
		x1 := n1 / (n1 + w2/mm2)
		return BinaryFractionResult{
			MassFraction1: w1,
			MassFraction2: w2,
			MoleFraction1: x1,
			MoleFraction2: 1 - x1,
		}, nil

	case MolarBasis:
		x1 := f
		x2 := 1 - x1
		mean := x1*mm1 + x2*mm2
		w1 := x1 * mm1 / mean
		return BinaryFractionResult{
			MassFraction1: w1,
			MassFraction2: 1 - w1,
			MoleFraction1: x1,
			MoleFraction2: x2,
		}, nil

	default:
		return BinaryFractionResult{}, &domain.ConversionError{
			Op:   "concentration.binary_fraction",
			Kind: domain.KindConversion,
			Msg:  fmt.Sprintf("unsupported fraction kind %s", kind),
		}
	}
}

// MassToMole converts the mass fraction of components[index] into a mole
// fraction.
//
// One fraction does not determine the composition of a mixture with three or
// more components. This function assumes the remaining mass is split evenly
// across the other components. The result is a modeling approximation, not an
// exact value; present it as such.
func MassToMole(f float64, components []domain.MixtureComponent, index int) (float64, error) {
	if err := checkFraction("concentration.mass_to_mole", f, MassBasis); err != nil {
		return 0, err
	}
	if err := (domain.MixtureContext{Components: components, Interest: index}).Validate(); err != nil {
		return 0, err
	}

	rest := (1 - f) / float64(len(components)-1)
	var moles float64
	for i, c := range components {
		if i == index {
			moles += f / c.MolarMass
			continue
		}
		moles += rest / c.MolarMass
	}
	return (f / components[index].MolarMass) / moles, nil
}

// MoleToMass is the inverse of MassToMole under the same even-split
// assumption for the other components.
func MoleToMass(f float64, components []domain.MixtureComponent, index int) (float64, error) {
	if err := checkFraction("concentration.mole_to_mass", f, MolarBasis); err != nil {
		return 0, err
	}
	if err := (domain.MixtureContext{Components: components, Interest: index}).Validate(); err != nil {
		return 0, err
	}

	rest := (1 - f) / float64(len(components)-1)
	var mean float64
	for i, c := range components {
		if i == index {
			mean += f * c.MolarMass
			continue
		}
		mean += rest * c.MolarMass
	}
	return f * components[index].MolarMass / mean, nil
}

func checkFraction(op string, f float64, kind FractionKind) error {
	if f >= 0 && f <= 1 {
		return nil
	}
	return &domain.ConversionError{
		Op:    op,
		Kind:  domain.KindInvalidRange,
		Param: "quantity",
		Msg:   fmt.Sprintf("%s fraction must be within [0,1], got %g", kind, f),
	}
}
