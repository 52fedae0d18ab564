package concentration

import (
	"fmt"
	"strconv"

	"github.com/aalvaropc/unitconv/internal/convert/unitname"
	"github.com/aalvaropc/unitconv/internal/domain"
)

// Unit is one of the twelve supported concentration units. The numeric value
// is the unit's menu code.
type Unit int

const (
	Molarity Unit = iota + 1
	Molality
	MoleFraction
	MassFraction
	Millimolar
	Micromolar
	PPM
	PPB
	GramsPerLiter
	KilogramsPerCubicMeter
	PercentMassVolume
	PercentMassMass
)

type unitDesc struct {
	key     string
	label   string
	aliases []string
}

var units = [...]unitDesc{
	Molarity:               {"molarity", "Molarity (mol/L)", []string{"molaridad", "mol/l"}},
	Molality:               {"molality", "Molality (mol/kg)", []string{"molalidad", "mol/kg"}},
	MoleFraction:           {"mole_fraction", "Mole fraction", []string{"fraccion_molar", "molar_fraction", "x"}},
	MassFraction:           {"mass_fraction", "Mass fraction", []string{"fraccion_masa", "weight_fraction", "w"}},
	Millimolar:             {"millimolar", "Millimolar (mmol/L)", []string{"milimolar", "mmol/l"}},
	Micromolar:             {"micromolar", "Micromolar (µmol/L)", []string{"µmol/l", "umol/l"}},
	PPM:                    {"ppm", "ppm (mg/L)", []string{"mg/l"}},
	PPB:                    {"ppb", "ppb (µg/L)", []string{"µg/l", "ug/l"}},
	GramsPerLiter:          {"g_l", "g/L", []string{"g/l", "grams_per_liter"}},
	KilogramsPerCubicMeter: {"kg_m3", "kg/m³", []string{"kg/m3", "kg/m³"}},
	PercentMassVolume:      {"percent_mv", "% m/v", []string{"porcentaje_mv", "%m/v", "%w/v"}},
	PercentMassMass:        {"percent_mm", "% m/m", []string{"porcentaje_mm", "%m/m", "%w/w"}},
}

var lookup = buildLookup()

func buildLookup() map[string]Unit {
	m := make(map[string]Unit, len(units)*4)
	for u := Molarity; u <= PercentMassMass; u++ {
		d := units[u]
		m[strconv.Itoa(int(u))] = u
		m[d.key] = u
		for _, a := range d.aliases {
			m[unitname.Key(a)] = u
		}
	}
	return m
}

// Valid reports whether u is one of the twelve units.
func (u Unit) Valid() bool {
	return u >= Molarity && u <= PercentMassMass
}

// String returns the canonical name.
func (u Unit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("unit(%d)", int(u))
	}
	return units[u].key
}

// Label returns a display name with the unit symbol.
func (u Unit) Label() string {
	if !u.Valid() {
		return u.String()
	}
	return units[u].label
}

// ParseUnit resolves a canonical name, an alias or a numeric code "1".."12".
func ParseUnit(s string) (Unit, error) {
	if u, ok := lookup[unitname.Key(s)]; ok {
		return u, nil
	}
	return 0, &domain.ConversionError{
		Op:   "concentration.parse_unit",
		Kind: domain.KindInvalidUnit,
		Msg:  fmt.Sprintf("unknown concentration unit %q", s),
	}
}

// Units lists the concentration units in menu order.
func Units() []domain.UnitInfo {
	out := make([]domain.UnitInfo, 0, len(units)-1)
	for u := Molarity; u <= PercentMassMass; u++ {
		out = append(out, domain.UnitInfo{Code: int(u), Key: units[u].key, Label: units[u].label})
	}
	return out
}
