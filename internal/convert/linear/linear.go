// Package linear converts units that differ by a constant factor.
package linear

import (
	"fmt"
	"strconv"

	"github.com/aalvaropc/unitconv/internal/convert/unitname"
	"github.com/aalvaropc/unitconv/internal/domain"
)

// Unit is one row of a Table. PerBase is how many of this unit make one base
// unit (e.g. 100 for centimeters when the base is meters).
type Unit struct {
	Key     string
	Label   string
	PerBase float64
	Aliases []string
}

// Table converts between the units of one family. The 1-based position of a
// unit is its numeric code.
type Table struct {
	family domain.Family
	units  []Unit
	index  map[string]int
}

func NewTable(family domain.Family, units ...Unit) *Table {
	t := &Table{
		family: family,
		units:  units,
		index:  make(map[string]int, len(units)*3),
	}
	for i, u := range units {
		t.index[strconv.Itoa(i+1)] = i
		t.index[u.Key] = i
		for _, a := range u.Aliases {
			t.index[unitname.Key(a)] = i
		}
	}
	return t
}

func (t *Table) Family() domain.Family { return t.family }

// Units lists the table in menu order.
func (t *Table) Units() []domain.UnitInfo {
	out := make([]domain.UnitInfo, 0, len(t.units))
	for i, u := range t.units {
		out = append(out, domain.UnitInfo{Code: i + 1, Key: u.Key, Label: u.Label})
	}
	return out
}

// Lookup resolves a name, alias or numeric code.
func (t *Table) Lookup(s string) (Unit, error) {
	i, ok := t.index[unitname.Key(s)]
	if !ok {
		return Unit{}, &domain.ConversionError{
			Op:   "linear.lookup",
			Kind: domain.KindInvalidUnit,
			Msg:  fmt.Sprintf("unknown %s unit %q", t.family, s),
		}
	}
	return t.units[i], nil
}

// Convert rescales q from source to target.
func (t *Table) Convert(source, target string, q float64) (float64, error) {
	src, err := t.Lookup(source)
	if err != nil {
		return 0, withPair(err, source, target)
	}
	dst, err := t.Lookup(target)
	if err != nil {
		return 0, withPair(err, source, target)
	}
	if src.Key == dst.Key {
		return q, nil
	}
	return q * (dst.PerBase / src.PerBase), nil
}

func withPair(err error, source, target string) error {
	if ce, ok := err.(*domain.ConversionError); ok {
		ce.Pair = source + "->" + target
	}
	return err
}
