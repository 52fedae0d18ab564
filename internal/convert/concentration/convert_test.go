package concentration

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/aalvaropc/unitconv/internal/domain"
)

func ptr(v float64) *float64 { return &v }

func approxEqual(a, b, rel float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= rel*math.Max(math.Abs(a), math.Abs(b))
}

func mustConvert(t *testing.T, src, dst string, q float64, p Params) Outcome {
	t.Helper()
	out, err := Convert(src, dst, q, p)
	if err != nil {
		t.Fatalf("Convert(%s,%s,%g) error: %v", src, dst, q, err)
	}
	return out
}

func TestConvertScenarios(t *testing.T) {
	cases := []struct {
		name     string
		src, dst string
		q        float64
		p        Params
		want     float64
	}{
		{"molarity to g/L", "molarity", "g_l", 2.0, Params{MolarMass: ptr(58.44)}, 116.88},
		{"ppm to g/L", "ppm", "g_l", 5000, Params{}, 5.0},
		{"percent m/m to g/L", "percent_mm", "g_l", 10, Params{Density: ptr(1.0)}, 100.0},
		{"molality to g/L", "molality", "g_l", 1.0, Params{MolarMass: ptr(58.44), Density: ptr(1.2)}, 66.25599939533653},
		{"g/L to ppb", "g_l", "ppb", 0.25, Params{}, 250000},
		{"kg/m3 equals g/L", "kg_m3", "g_l", 3.5, Params{}, 3.5},
		{"percent m/v to ppm", "percent_mv", "ppm", 1.5, Params{}, 15000},
		{"millimolar to micromolar", "millimolar", "micromolar", 2.0, Params{MolarMass: ptr(180.16)}, 2000},
		{"g/L to molality", "g_l", "molality", 66, Params{MolarMass: ptr(58.44), Density: ptr(1.2)}, 995.9113312980527},
		{"molarity to molality", "molarity", "molality", 1.0, Params{MolarMass: ptr(58.44), Density: ptr(1.2)}, 58440.0 / (70.128 - 58.44*58.44/1000)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := mustConvert(t, c.src, c.dst, c.q, c.p)
			if !approxEqual(out.Value, c.want, 1e-9) {
				t.Fatalf("got %.12g, want %.12g", out.Value, c.want)
			}
			if out.Binary != nil || out.Approximate {
				t.Fatalf("unexpected fraction outcome: %+v", out)
			}
		})
	}
}

func TestConvertIdentity(t *testing.T) {
	for _, u := range allUnits() {
		for _, q := range []float64{0, 1, -3.25, 1e-12, 7e9} {
			out, err := ConvertUnits(u, u, q, Params{})
			if err != nil {
				t.Fatalf("%s identity error: %v", u, err)
			}
			if out.Value != q {
				t.Fatalf("%s identity: got %g, want %g", u, out.Value, q)
			}
		}
	}
}

func TestConvertAliasEquivalence(t *testing.T) {
	p := Params{MolarMass: ptr(58.44), Density: ptr(1.1)}
	for _, a := range pivotUnits() {
		for _, b := range pivotUnits() {
			byCode := mustConvert(t, strconv.Itoa(int(a)), strconv.Itoa(int(b)), 0.75, p)
			byName := mustConvert(t, a.String(), b.String(), 0.75, p)
			if byCode.Value != byName.Value {
				t.Fatalf("%s->%s: code %g != name %g", a, b, byCode.Value, byName.Value)
			}
		}
	}

	spanish := mustConvert(t, "Molaridad", "g/L", 2, Params{MolarMass: ptr(58.44)})
	if !approxEqual(spanish.Value, 116.88, 1e-12) {
		t.Fatalf("spanish alias: got %g", spanish.Value)
	}
}

func pivotUnits() []Unit {
	var out []Unit
	for _, u := range allUnits() {
		if u != MoleFraction && u != MassFraction {
			out = append(out, u)
		}
	}
	return out
}

// Molality is left out: its g/L formulas are not inverses of each other.
func TestConvertRoundTrip(t *testing.T) {
	p := Params{MolarMass: ptr(58.44), Density: ptr(1.2)}
	var units []Unit
	for _, u := range pivotUnits() {
		if u != Molality {
			units = append(units, u)
		}
	}
	for _, a := range units {
		for _, b := range units {
			for _, q := range []float64{0.5, 0.01} {
				there := mustConvert(t, a.String(), b.String(), q, p)
				back := mustConvert(t, b.String(), a.String(), there.Value, p)
				if !approxEqual(back.Value, q, 1e-9) {
					t.Fatalf("%s->%s->%s: got %.15g, want %g", a, b, a, back.Value, q)
				}
			}
		}
	}
}

func TestConvertMissingParameter(t *testing.T) {
	cases := []struct {
		src, dst string
		p        Params
		param    string
	}{
		{"molarity", "g_l", Params{}, "molar_mass"},
		{"molality", "ppm", Params{MolarMass: ptr(58.44)}, "density"},
		{"molality", "ppm", Params{}, "molar_mass"},
		{"percent_mm", "g_l", Params{MolarMass: ptr(1)}, "density"},
		{"mass_fraction", "mole_fraction", Params{MolarMass: ptr(18)}, "mixture"},
	}
	for _, c := range cases {
		_, err := Convert(c.src, c.dst, 1.0, c.p)
		if !errors.Is(err, domain.ErrMissingParameter) {
			t.Fatalf("%s->%s: expected ErrMissingParameter, got %v", c.src, c.dst, err)
		}
		var ce *domain.ConversionError
		if !errors.As(err, &ce) {
			t.Fatalf("expected ConversionError, got %T", err)
		}
		if ce.Param != c.param {
			t.Fatalf("%s->%s: expected param %q, got %q", c.src, c.dst, c.param, ce.Param)
		}
		if ce.Pair == "" {
			t.Fatalf("expected pair in error")
		}
	}
}

func TestConvertInvalidUnit(t *testing.T) {
	for _, c := range [][2]string{{"13", "g_l"}, {"g_l", "0"}, {"furlongs", "ppm"}, {"", "ppm"}} {
		_, err := Convert(c[0], c[1], 1, Params{})
		if !domain.IsKind(err, domain.KindInvalidUnit) {
			t.Fatalf("%v: expected KindInvalidUnit, got %v", c, err)
		}
	}

	if _, err := ConvertUnits(Unit(42), Molarity, 1, Params{}); !domain.IsKind(err, domain.KindInvalidUnit) {
		t.Fatalf("expected KindInvalidUnit for out-of-range enum, got %v", err)
	}
}

func TestConvertInvalidRange(t *testing.T) {
	mix := &domain.MixtureContext{Components: []domain.MixtureComponent{
		{Name: "water", MolarMass: 18.015},
		{Name: "ethanol", MolarMass: 46.07},
	}}

	cases := []struct {
		name     string
		src, dst string
		q        float64
		p        Params
	}{
		{"zero molar mass", "molarity", "g_l", 1, Params{MolarMass: ptr(0)}},
		{"negative density", "percent_mm", "g_l", 1, Params{Density: ptr(-1)}},
		{"fraction above one", "mass_fraction", "mole_fraction", 1.2, Params{Mixture: mix}},
		{"negative fraction", "mole_fraction", "mass_fraction", -0.1, Params{Mixture: mix}},
		{"single component", "mass_fraction", "mole_fraction", 0.5, Params{Mixture: &domain.MixtureContext{
			Components: mix.Components[:1],
		}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Convert(c.src, c.dst, c.q, c.p)
			if !errors.Is(err, domain.ErrInvalidRange) {
				t.Fatalf("expected ErrInvalidRange, got %v", err)
			}
		})
	}
}

func TestConvertMolalityDomainError(t *testing.T) {
	_, err := Convert("g_l", "molality", 2000, Params{MolarMass: ptr(58.44), Density: ptr(1.2)})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, domain.ErrDomain) {
		t.Fatalf("expected ErrDomain in chain, got %v", err)
	}
	if domain.KindOf(err) != domain.KindConversion {
		t.Fatalf("expected outer conversion error, got %s", domain.KindOf(err))
	}
	var ce *domain.ConversionError
	if errors.As(err, &ce); ce.Pair != "g_l->molality" {
		t.Fatalf("expected pair g_l->molality, got %q", ce.Pair)
	}
}

func TestConvertFractionThroughPivotFails(t *testing.T) {
	_, err := Convert("mole_fraction", "molarity", 0.2, Params{MolarMass: ptr(58.44)})
	if domain.KindOf(err) != domain.KindConversion {
		t.Fatalf("expected KindConversion, got %v", err)
	}
}

func TestConvertBinaryMixture(t *testing.T) {
	mix := &domain.MixtureContext{
		Components: []domain.MixtureComponent{
			{Name: "water", MolarMass: 18.0},
			{Name: "NaCl", MolarMass: 58.44},
		},
		Interest: 0,
	}

	out := mustConvert(t, "4", "3", 0.5, Params{Mixture: mix})
	if out.Binary == nil {
		t.Fatalf("expected binary bundle")
	}
	if out.Approximate {
		t.Fatalf("binary result must not be approximate")
	}
	b := out.Binary
	if b.Component != "water" || b.Other != "NaCl" {
		t.Fatalf("unexpected orientation: %+v", b)
	}
	if !approxEqual(b.MoleFraction, 0.7645211930926217, 1e-12) {
		t.Fatalf("mole fraction: got %.12g", b.MoleFraction)
	}
	if out.Value != b.MoleFraction {
		t.Fatalf("value should be the mole fraction of interest")
	}
	if !approxEqual(b.MoleFraction+b.OtherMoleFraction, 1, 1e-15) || !approxEqual(b.MassFraction+b.OtherMassFraction, 1, 1e-15) {
		t.Fatalf("fraction pairs must sum to 1: %+v", b)
	}

	// Same mixture, other component of interest.
	mix.Interest = 1
	out = mustConvert(t, "mass_fraction", "mole_fraction", 0.5, Params{Mixture: mix})
	if out.Binary.Component != "NaCl" || out.Binary.Other != "water" {
		t.Fatalf("unexpected orientation: %+v", out.Binary)
	}
	if !approxEqual(out.Value, 1-0.7645211930926217, 1e-12) {
		t.Fatalf("mole fraction of NaCl: got %.12g", out.Value)
	}

	// Mole fraction back to mass fraction.
	back := mustConvert(t, "mole_fraction", "mass_fraction", out.Value, Params{Mixture: mix})
	if !approxEqual(back.Value, 0.5, 1e-12) {
		t.Fatalf("mass fraction round trip: got %.12g", back.Value)
	}
}

func TestConvertMultiComponentApproximation(t *testing.T) {
	mix := &domain.MixtureContext{
		Components: []domain.MixtureComponent{
			{Name: "water", MolarMass: 18.0},
			{Name: "ethanol", MolarMass: 46.07},
			{Name: "NaCl", MolarMass: 58.44},
		},
	}

	out := mustConvert(t, "mass_fraction", "mole_fraction", 0.3, Params{Mixture: mix})
	if !out.Approximate || out.Binary != nil {
		t.Fatalf("expected approximate scalar outcome, got %+v", out)
	}
	if !approxEqual(out.Value, 0.5509122821319601, 1e-12) {
		t.Fatalf("got %.15g", out.Value)
	}

	out = mustConvert(t, "mole_fraction", "mass_fraction", 0.3, Params{Mixture: mix})
	if !approxEqual(out.Value, 0.12863727860690594, 1e-12) {
		t.Fatalf("got %.15g", out.Value)
	}
}
