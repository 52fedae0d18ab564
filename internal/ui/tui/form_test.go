package tui

import (
	"testing"

	"github.com/aalvaropc/unitconv/internal/convert/concentration"
	"github.com/aalvaropc/unitconv/internal/domain"
)

func keys(f form) []fieldKey {
	out := make([]fieldKey, 0, len(f.fields))
	for _, fd := range f.fields {
		out = append(out, fd.key)
	}
	return out
}

func TestNewForm_FieldsFollowRequirement(t *testing.T) {
	cfg := domain.DefaultConfig()
	cases := []struct {
		name   string
		family domain.Family
		need   concentration.Requirement
		want   []fieldKey
	}{
		{"linear", domain.FamilyLength, concentration.Requirement{}, []fieldKey{fieldQuantity}},
		{"no params", domain.FamilyConcentration, concentration.Requirement{}, []fieldKey{fieldQuantity}},
		{"molar mass", domain.FamilyConcentration, concentration.Requirement{MolarMass: true}, []fieldKey{fieldQuantity, fieldMolarMass}},
		{"molar mass and density", domain.FamilyConcentration, concentration.Requirement{MolarMass: true, Density: true}, []fieldKey{fieldQuantity, fieldMolarMass, fieldDensity}},
		{"mixture", domain.FamilyConcentration, concentration.Requirement{Mixture: true}, []fieldKey{fieldQuantity, fieldMixture, fieldComponent}},
		// requirements are ignored outside concentration
		{"temperature", domain.FamilyTemperature, concentration.Requirement{MolarMass: true}, []fieldKey{fieldQuantity}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := keys(newForm(c.family, c.need, cfg))
			if len(got) != len(c.want) {
				t.Fatalf("fields=%v want %v", got, c.want)
			}
			for i := range got {
				if got[i] != c.want[i] {
					t.Fatalf("fields=%v want %v", got, c.want)
				}
			}
		})
	}
}

func TestNewForm_DensityOptionalWithDefault(t *testing.T) {
	need := concentration.Requirement{Density: true}

	f := newForm(domain.FamilyConcentration, need, domain.DefaultConfig())
	if f.fields[1].optional {
		t.Fatalf("density should be required without a configured default")
	}

	cfg := domain.DefaultConfig()
	cfg.Defaults.Density = 1.0
	f = newForm(domain.FamilyConcentration, need, cfg)
	if !f.fields[1].optional {
		t.Fatalf("density should be optional with a configured default")
	}
}

func TestForm_IndexOf(t *testing.T) {
	f := newForm(domain.FamilyConcentration, concentration.Requirement{Mixture: true}, domain.DefaultConfig())

	cases := []struct {
		param string
		want  int
		ok    bool
	}{
		{"quantity", 0, true},
		{"mixture", 1, true},
		{"mixture.components[1].molar_mass", 1, true},
		{"mixture.interest", 2, true},
		{"molar_mass", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := f.indexOf(c.param)
		if ok != c.ok || got != c.want {
			t.Fatalf("indexOf(%q)=(%d,%v) want (%d,%v)", c.param, got, ok, c.want, c.ok)
		}
	}
}

func TestForm_Check(t *testing.T) {
	f := newForm(domain.FamilyConcentration, concentration.Requirement{Mixture: true}, domain.DefaultConfig())
	f.values[fieldMixture] = "water:18.015,nacl:58.44"

	cases := []struct {
		name     string
		key      fieldKey
		value    string
		optional bool
		kind     domain.ErrorKind
	}{
		{"quantity ok", fieldQuantity, "2,5", false, ""},
		{"quantity bad", fieldQuantity, "abc", false, domain.KindInvalidRange},
		{"empty required", fieldQuantity, "  ", false, domain.KindMissingParameter},
		{"empty optional", fieldDensity, "", true, ""},
		{"density bad", fieldDensity, "heavy", false, domain.KindInvalidRange},
		{"inline mixture ok", fieldMixture, "water:18.015,nacl:58.44", false, ""},
		{"inline mixture single", fieldMixture, "water:18.015", false, domain.KindInvalidRange},
		{"mixture name", fieldMixture, "brine", false, ""},
		{"component by name", fieldComponent, "NaCl", false, ""},
		{"component by position", fieldComponent, "1", false, ""},
		{"component unknown", fieldComponent, "kcl", false, domain.KindInvalidRange},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := f.check(c.key, c.value, c.optional)
			if c.kind == "" {
				if err != nil {
					t.Fatalf("unexpected err: %v", err)
				}
				return
			}
			if !domain.IsKind(err, c.kind) {
				t.Fatalf("expected kind %s, got %v", c.kind, err)
			}
		})
	}
}

func TestForm_Request_MolarMassOrSubstance(t *testing.T) {
	f := newForm(domain.FamilyConcentration, concentration.Requirement{MolarMass: true}, domain.DefaultConfig())
	f.values[fieldQuantity] = "2"
	f.values[fieldMolarMass] = "58.44"

	req, err := f.request(domain.FamilyConcentration, "molarity", "g_l")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if req.Quantity != 2 || req.MolarMass == nil || *req.MolarMass != 58.44 || req.Substance != "" {
		t.Fatalf("unexpected request: %+v", req)
	}

	f.values[fieldMolarMass] = "nacl"
	req, err = f.request(domain.FamilyConcentration, "molarity", "g_l")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if req.MolarMass != nil || req.Substance != "nacl" {
		t.Fatalf("expected substance lookup, got %+v", req)
	}
}

func TestForm_Request_Mixture(t *testing.T) {
	f := newForm(domain.FamilyConcentration, concentration.Requirement{Mixture: true}, domain.DefaultConfig())
	f.values[fieldQuantity] = "0.1"
	f.values[fieldComponent] = "nacl"

	f.values[fieldMixture] = "water:18.015,nacl:58.44"
	req, err := f.request(domain.FamilyConcentration, "mass_fraction", "mole_fraction")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if req.Mixture == nil || len(req.Mixture.Components) != 2 || req.Component != "nacl" {
		t.Fatalf("expected inline mixture, got %+v", req)
	}

	f.values[fieldMixture] = "brine"
	req, err = f.request(domain.FamilyConcentration, "mass_fraction", "mole_fraction")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if req.Mixture != nil || req.MixtureRef != "brine" {
		t.Fatalf("expected mixture ref, got %+v", req)
	}

	loaded := brine()
	f.mixture = &loaded
	req, err = f.request(domain.FamilyConcentration, "mass_fraction", "mole_fraction")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if req.Mixture == nil || req.MixtureRef != "" || req.Mixture.Components[1].Name != "nacl" {
		t.Fatalf("expected loaded mixture, got %+v", req)
	}
}

func TestForm_Request_BadQuantity(t *testing.T) {
	f := newForm(domain.FamilyLength, concentration.Requirement{}, domain.DefaultConfig())
	f.values[fieldQuantity] = "NaN"
	if _, err := f.request(domain.FamilyLength, "m", "cm"); !domain.IsKind(err, domain.KindInvalidRange) {
		t.Fatalf("expected invalid range, got %v", err)
	}
}
