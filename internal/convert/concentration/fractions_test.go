package concentration

import (
	"errors"
	"math"
	"testing"

	"github.com/aalvaropc/unitconv/internal/domain"
)

func TestBinaryFractionMass(t *testing.T) {
	r, err := BinaryFraction(0.5, 18.0, 58.44, MassBasis)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.MassFraction1 != 0.5 || r.MassFraction2 != 0.5 {
		t.Fatalf("mass fractions: %+v", r)
	}
	if !approxEqual(r.MoleFraction1, 0.7645211930926217, 1e-12) {
		t.Fatalf("mole fraction: got %.12g", r.MoleFraction1)
	}
}

func TestBinaryFractionClosure(t *testing.T) {
	masses := [][2]float64{{18.0, 58.44}, {46.07, 18.015}, {2.016, 222.0}, {100, 100}}
	for _, mm := range masses {
		for i := 0; i <= 20; i++ {
			f := float64(i) / 20

			byMass, err := BinaryFraction(f, mm[0], mm[1], MassBasis)
			if err != nil {
				t.Fatalf("mass basis: %v", err)
			}
			if byMass.MassFraction1 != f {
				t.Fatalf("mass fraction must be preserved exactly: %g != %g", byMass.MassFraction1, f)
			}

			byMole, err := BinaryFraction(byMass.MoleFraction1, mm[0], mm[1], MolarBasis)
			if err != nil {
				t.Fatalf("molar basis: %v", err)
			}
			if !approxEqual(byMole.MassFraction1, f, 1e-12) && !(f == 0 && byMole.MassFraction1 < 1e-15) {
				t.Fatalf("closure for f=%g mm=%v: got %.15g", f, mm, byMole.MassFraction1)
			}
		}
	}
}

func TestBinaryFractionRejectsOutOfRange(t *testing.T) {
	for _, f := range []float64{-0.01, 1.0001, 2} {
		if _, err := BinaryFraction(f, 18, 58.44, MolarBasis); !errors.Is(err, domain.ErrInvalidRange) {
			t.Fatalf("f=%g: expected ErrInvalidRange, got %v", f, err)
		}
	}
}

func TestBinaryFractionRejectsNonPositiveMolarMass(t *testing.T) {
	cases := []struct {
		mm1, mm2 float64
	}{
		{0, 58.44},
		{18, 0},
		{-18, 58.44},
		{18, math.NaN()},
	}
	for _, c := range cases {
		for _, kind := range []FractionKind{MassBasis, MolarBasis} {
			_, err := BinaryFraction(0.5, c.mm1, c.mm2, kind)
			if !errors.Is(err, domain.ErrInvalidRange) {
				t.Fatalf("mm=(%g,%g) %s: expected ErrInvalidRange, got %v", c.mm1, c.mm2, kind, err)
			}
			var ce *domain.ConversionError
			if !errors.As(err, &ce) || ce.Param != "molar_mass" {
				t.Fatalf("expected param molar_mass, got %v", err)
			}
		}
	}
}

func TestMultiComponentBounds(t *testing.T) {
	comps := []domain.MixtureComponent{
		{Name: "a", MolarMass: 10},
		{Name: "b", MolarMass: 20},
		{Name: "c", MolarMass: 30},
	}

	for _, f := range []float64{0, 1} {
		x, err := MassToMole(f, comps, 1)
		if err != nil {
			t.Fatalf("MassToMole(%g): %v", f, err)
		}
		if x != f {
			t.Fatalf("MassToMole(%g) = %g", f, x)
		}
		w, err := MoleToMass(f, comps, 1)
		if err != nil {
			t.Fatalf("MoleToMass(%g): %v", f, err)
		}
		if w != f {
			t.Fatalf("MoleToMass(%g) = %g", f, w)
		}
	}

	if _, err := MassToMole(1.5, comps, 0); !errors.Is(err, domain.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	if _, err := MoleToMass(0.5, comps, 3); !errors.Is(err, domain.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange for bad index, got %v", err)
	}
}

func TestMultiComponentEqualMassesIsIdentity(t *testing.T) {
	comps := []domain.MixtureComponent{
		{Name: "a", MolarMass: 30},
		{Name: "b", MolarMass: 30},
		{Name: "c", MolarMass: 30},
		{Name: "d", MolarMass: 30},
	}
	x, err := MassToMole(0.37, comps, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approxEqual(x, 0.37, 1e-12) {
		t.Fatalf("got %g", x)
	}
}
