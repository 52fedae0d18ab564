package usecase

import (
	"testing"

	"github.com/aalvaropc/unitconv/internal/convert"
	"github.com/aalvaropc/unitconv/internal/domain"
)

func TestAnalyzeRequirements(t *testing.T) {
	uc := NewAnalyzeRequirements()

	r := uc.Execute("molality", "ppm")
	if !r.MolarMass || !r.Density || r.Mixture {
		t.Fatalf("unexpected requirement %+v", r)
	}
	if r := uc.Execute("nope", "ppm"); r.Any() {
		t.Fatalf("expected nothing for unknown units, got %+v", r)
	}
}

func TestListUnits(t *testing.T) {
	uc := NewListUnits(convert.NewRegistry())

	units, err := uc.Execute(domain.FamilyConcentration)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(units) != 12 {
		t.Fatalf("expected 12 concentration units, got %d", len(units))
	}
	if units[0].Code != 1 || units[0].Key != "molarity" {
		t.Fatalf("unexpected first unit %+v", units[0])
	}

	if _, err := uc.Execute("luminosity"); !domain.IsKind(err, domain.KindInvalidUnit) {
		t.Fatalf("expected KindInvalidUnit, got %v", err)
	}
}

func TestLoadMixtureRevalidates(t *testing.T) {
	bad := brine()
	bad.Context.Components = bad.Context.Components[:1]
	loader := &fakeMixtures{byName: map[string]domain.Mixture{"brine": brine(), "bad": bad}}
	uc := NewLoadMixture(loader)

	if _, err := uc.Execute("brine"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Execute("bad"); !domain.IsKind(err, domain.KindInvalidRange) {
		t.Fatalf("expected KindInvalidRange, got %v", err)
	}
	if _, err := uc.Execute("other"); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}

	refs, err := NewListMixtures(loader).Execute(".")
	if err != nil || len(refs) != 2 {
		t.Fatalf("expected two refs, got %v, %v", refs, err)
	}
}
