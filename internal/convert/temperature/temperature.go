// Package temperature converts between temperature scales through Celsius.
package temperature

import (
	"fmt"
	"strconv"

	"github.com/aalvaropc/unitconv/internal/convert/unitname"
	"github.com/aalvaropc/unitconv/internal/domain"
)

type Scale int

const (
	Celsius Scale = iota + 1
	Fahrenheit
	Kelvin
	Rankine
	Reaumur
	Delisle
	Newton
	Romer
)

type scaleDesc struct {
	key     string
	label   string
	aliases []string
	toC     func(float64) float64
	fromC   func(float64) float64
}

var scales = [...]scaleDesc{
	Celsius: {"celsius", "Celsius (°C)", []string{"c", "°c"},
		func(t float64) float64 { return t },
		func(c float64) float64 { return c }},
	Fahrenheit: {"fahrenheit", "Fahrenheit (°F)", []string{"f", "°f"},
		func(t float64) float64 { return (t - 32) * 5 / 9 },
		func(c float64) float64 { return c*9/5 + 32 }},
	Kelvin: {"kelvin", "Kelvin (K)", []string{"k"},
		func(t float64) float64 { return t - 273.15 },
		func(c float64) float64 { return c + 273.15 }},
	Rankine: {"rankine", "Rankine (°R)", []string{"r", "°r"},
		func(t float64) float64 { return (t - 491.67) * 5 / 9 },
		func(c float64) float64 { return c*9/5 + 491.67 }},
	Reaumur: {"reaumur", "Réaumur (°Ré)", []string{"re", "°re"},
		func(t float64) float64 { return t * 5 / 4 },
		func(c float64) float64 { return c * 4 / 5 }},
	Delisle: {"delisle", "Delisle (°De)", []string{"de", "°de"},
		func(t float64) float64 { return 100 - t*2/3 },
		func(c float64) float64 { return (100 - c) * 3 / 2 }},
	Newton: {"newton", "Newton (°N)", []string{"n", "°n"},
		func(t float64) float64 { return t * 100 / 33 },
		func(c float64) float64 { return c * 33 / 100 }},
	Romer: {"romer", "Rømer (°Rø)", []string{"rømer", "ro", "°rø"},
		func(t float64) float64 { return (t - 7.5) * 40 / 21 },
		func(c float64) float64 { return c*21/40 + 7.5 }},
}

var lookup = func() map[string]Scale {
	m := make(map[string]Scale)
	for s := Celsius; s <= Romer; s++ {
		m[strconv.Itoa(int(s))] = s
		m[scales[s].key] = s
		for _, a := range scales[s].aliases {
			m[unitname.Key(a)] = s
		}
	}
	return m
}()

func (s Scale) String() string {
	if s < Celsius || s > Romer {
		return fmt.Sprintf("scale(%d)", int(s))
	}
	return scales[s].key
}

// Parse resolves a scale name, symbol or numeric code "1".."8".
func Parse(name string) (Scale, error) {
	if s, ok := lookup[unitname.Key(name)]; ok {
		return s, nil
	}
	return 0, &domain.ConversionError{
		Op:   "temperature.parse",
		Kind: domain.KindInvalidUnit,
		Msg:  fmt.Sprintf("unknown temperature scale %q", name),
	}
}

// Convert converts t from source to target.
func Convert(source, target string, t float64) (float64, error) {
	src, err := Parse(source)
	if err != nil {
		return 0, pair(err, source, target)
	}
	dst, err := Parse(target)
	if err != nil {
		return 0, pair(err, source, target)
	}
	if src == dst {
		return t, nil
	}
	return scales[dst].fromC(scales[src].toC(t)), nil
}

// Units lists the scales in menu order.
func Units() []domain.UnitInfo {
	out := make([]domain.UnitInfo, 0, int(Romer))
	for s := Celsius; s <= Romer; s++ {
		out = append(out, domain.UnitInfo{Code: int(s), Key: scales[s].key, Label: scales[s].label})
	}
	return out
}

func pair(err error, source, target string) error {
	if ce, ok := err.(*domain.ConversionError); ok {
		ce.Pair = source + "->" + target
	}
	return err
}
