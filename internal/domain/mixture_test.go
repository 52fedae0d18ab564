package domain

import "testing"

func TestMixtureContextValidate(t *testing.T) {
	water := MixtureComponent{Name: "water", MolarMass: 18.015}
	salt := MixtureComponent{Name: "NaCl", MolarMass: 58.44}

	cases := []struct {
		name  string
		mix   MixtureContext
		param string
	}{
		{"ok", MixtureContext{Components: []MixtureComponent{water, salt}, Interest: 1}, ""},
		{"single component", MixtureContext{Components: []MixtureComponent{water}}, "mixture.components"},
		{"empty name", MixtureContext{Components: []MixtureComponent{water, {Name: " ", MolarMass: 3}}}, "mixture.components[1].name"},
		{"zero molar mass", MixtureContext{Components: []MixtureComponent{{Name: "x", MolarMass: 0}, salt}}, "mixture.components[0].molar_mass"},
		{"index too high", MixtureContext{Components: []MixtureComponent{water, salt}, Interest: 2}, "mixture.interest"},
		{"negative index", MixtureContext{Components: []MixtureComponent{water, salt}, Interest: -1}, "mixture.interest"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.mix.Validate()
			if c.param == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !IsKind(err, KindInvalidRange) {
				t.Fatalf("expected KindInvalidRange, got %v", err)
			}
			ce := err.(*ConversionError)
			if ce.Param != c.param {
				t.Fatalf("expected param %q, got %q", c.param, ce.Param)
			}
		})
	}
}

func TestMixtureContextIndexOf(t *testing.T) {
	m := MixtureContext{Components: []MixtureComponent{
		{Name: "Water", MolarMass: 18.015},
		{Name: "Ethanol", MolarMass: 46.07},
		{Name: "NaCl", MolarMass: 58.44},
	}}

	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"ethanol", 1, true},
		{"NACL", 2, true},
		{"1", 0, true},
		{"3", 2, true},
		{"4", 0, false},
		{"0", 0, false},
		{"glucose", 0, false},
	}
	for _, c := range cases {
		got, ok := m.IndexOf(c.in)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("IndexOf(%q) = %d,%v want %d,%v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestParseFamily(t *testing.T) {
	cases := []struct {
		in   string
		want Family
	}{
		{"3", FamilyConcentration},
		{"concentration", FamilyConcentration},
		{" Length ", FamilyLength},
		{"10", FamilyArea},
		{"1", FamilyVolume},
	}
	for _, c := range cases {
		got, err := ParseFamily(c.in)
		if err != nil {
			t.Fatalf("ParseFamily(%q) error: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseFamily(%q) = %s, want %s", c.in, got, c.want)
		}
	}

	for _, bad := range []string{"0", "11", "luminosity", ""} {
		if _, err := ParseFamily(bad); !IsKind(err, KindInvalidUnit) {
			t.Errorf("ParseFamily(%q): expected KindInvalidUnit, got %v", bad, err)
		}
	}
}

func TestParseComponents(t *testing.T) {
	got, err := ParseComponents(" water:18.015 , nacl:58.44,")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "water" || got[1].MolarMass != 58.44 {
		t.Fatalf("unexpected components %+v", got)
	}

	for _, in := range []string{"water", "water:abc"} {
		if _, err := ParseComponents(in); !IsKind(err, KindInvalidRange) {
			t.Fatalf("%q: expected KindInvalidRange, got %v", in, err)
		}
	}
}

func TestLooksInline(t *testing.T) {
	cases := map[string]bool{
		"water:18,nacl:58.44": true,
		"brine":               false,
		"mixtures/brine.yaml": false,
		`C:\mix\brine.yaml`:   false,
	}
	for in, want := range cases {
		if got := LooksInline(in); got != want {
			t.Errorf("LooksInline(%q) = %v, want %v", in, got, want)
		}
	}
}
