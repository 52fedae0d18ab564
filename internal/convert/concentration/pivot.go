package concentration

import (
	"fmt"

	"github.com/aalvaropc/unitconv/internal/domain"
)

// aux carries the optional auxiliary inputs of a pivot conversion. A nil
// pointer means the value was not supplied.
type aux struct {
	molarMass *float64
	density   *float64
}

// toGramsPerLiter converts v in unit u into g/L. mm is in g/mol, dens in g/mL.
func toGramsPerLiter(v float64, u Unit, a aux) (float64, error) {
	switch u {
	case GramsPerLiter, KilogramsPerCubicMeter:
		return v, nil
	case PPM:
		return v / 1e3, nil
	case PPB:
		return v / 1e6, nil
	case PercentMassVolume:
		return v * 10, nil
	case PercentMassMass:
		dens, err := a.need("to_gl", u, "density")
		if err != nil {
			return 0, err
		}
		return v * dens * 10, nil
	case Molarity, Millimolar, Micromolar:
		mm, err := a.need("to_gl", u, "molar_mass")
		if err != nil {
			return 0, err
		}
		return v * mm / molarScale(u), nil
	case Molality:
		mm, err := a.need("to_gl", u, "molar_mass")
		if err != nil {
			return 0, err
		}
		dens, err := a.need("to_gl", u, "density")
		if err != nil {
			return 0, err
		}
		return v * mm * dens / (1 + v*mm/1000), nil
	case MoleFraction, MassFraction:
		return 0, needsMixture("to_gl", u)
	default:
		return 0, unsupported("to_gl", u)
	}
}

// fromGramsPerLiter converts a g/L value into unit u.
func fromGramsPerLiter(v float64, u Unit, a aux) (float64, error) {
	switch u {
	case GramsPerLiter, KilogramsPerCubicMeter:
		return v, nil
	case PPM:
		return v * 1e3, nil
	case PPB:
		return v * 1e6, nil
	case PercentMassVolume:
		return v / 10, nil
	case PercentMassMass:
		dens, err := a.need("from_gl", u, "density")
		if err != nil {
			return 0, err
		}
		return v / (dens * 10), nil
	case Molarity, Millimolar, Micromolar:
		mm, err := a.need("from_gl", u, "molar_mass")
		if err != nil {
			return 0, err
		}
		return v * molarScale(u) / mm, nil
	case Molality:
		mm, err := a.need("from_gl", u, "molar_mass")
		if err != nil {
			return 0, err
		}
		dens, err := a.need("from_gl", u, "density")
		if err != nil {
			return 0, err
		}
		denom := mm*dens - v*mm/1000
		if denom <= 0 {
			return 0, &domain.ConversionError{
				Op:   "concentration.from_gl",
				Kind: domain.KindDomain,
				Msg:  fmt.Sprintf("concentration too high for molality (%g g/L at density %g g/mL)", v, dens),
			}
		}
		return v * 1000 / denom, nil
	case MoleFraction, MassFraction:
		return 0, needsMixture("from_gl", u)
	default:
		return 0, unsupported("from_gl", u)
	}
}

// molarScale is the number of the unit's amount in one mole.
func molarScale(u Unit) float64 {
	switch u {
	case Millimolar:
		return 1e3
	case Micromolar:
		return 1e6
	default:
		return 1
	}
}

func (a aux) need(stage string, u Unit, param string) (float64, error) {
	var p *float64
	switch param {
	case "molar_mass":
		p = a.molarMass
	case "density":
		p = a.density
	}
	if p == nil {
		return 0, &domain.ConversionError{
			Op:    "concentration." + stage,
			Kind:  domain.KindMissingParameter,
			Param: param,
			Msg:   fmt.Sprintf("%s requires %s", u, param),
		}
	}
	return *p, nil
}

func needsMixture(stage string, u Unit) error {
	return &domain.ConversionError{
		Op:    "concentration." + stage,
		Kind:  domain.KindMissingParameter,
		Param: "mixture",
		Msg:   fmt.Sprintf("%s only converts to the other fraction basis, with mixture data", u),
	}
}

func unsupported(stage string, u Unit) error {
	return &domain.ConversionError{
		Op:   "concentration." + stage,
		Kind: domain.KindInvalidUnit,
		Msg:  fmt.Sprintf("no g/L formula for %s", u),
	}
}
