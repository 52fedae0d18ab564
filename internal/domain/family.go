package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Family is a physical quantity whose units convert into each other.
type Family string

const (
	FamilyVolume        Family = "volume"
	FamilyTemperature   Family = "temperature"
	FamilyConcentration Family = "concentration"
	FamilyDensity       Family = "density"
	FamilyVelocity      Family = "velocity"
	FamilyMass          Family = "mass"
	FamilyEnergy        Family = "energy"
	FamilyPressure      Family = "pressure"
	FamilyLength        Family = "length"
	FamilyArea          Family = "area"
)

// Families lists every family in menu order; the 1-based position is the
// family's numeric code.
var Families = []Family{
	FamilyVolume,
	FamilyTemperature,
	FamilyConcentration,
	FamilyDensity,
	FamilyVelocity,
	FamilyMass,
	FamilyEnergy,
	FamilyPressure,
	FamilyLength,
	FamilyArea,
}

var familyLabels = map[Family]string{
	FamilyVolume:        "Volume",
	FamilyTemperature:   "Temperature",
	FamilyConcentration: "Concentration",
	FamilyDensity:       "Density",
	FamilyVelocity:      "Velocity",
	FamilyMass:          "Mass",
	FamilyEnergy:        "Energy",
	FamilyPressure:      "Pressure",
	FamilyLength:        "Length",
	FamilyArea:          "Area",
}

// Label is the human readable name of the family.
func (f Family) Label() string {
	if l, ok := familyLabels[f]; ok {
		return l
	}
	return string(f)
}

// ParseFamily accepts a family name or its numeric code ("1".."10").
func ParseFamily(s string) (Family, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(in); err == nil {
		if n >= 1 && n <= len(Families) {
			return Families[n-1], nil
		}
	}
	for _, f := range Families {
		if string(f) == in {
			return f, nil
		}
	}
	return "", &ConversionError{
		Op:   "domain.parse_family",
		Kind: KindInvalidUnit,
		Msg:  fmt.Sprintf("unknown family %q", s),
	}
}

// UnitInfo describes one selectable unit of a family.
type UnitInfo struct {
	Code  int    // 1-based menu code
	Key   string // canonical name
	Label string // display name
}
