// Package numfmt prints conversion results for people: locale-aware digits
// and scientific notation for magnitudes that would not read well as decimals.
package numfmt

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	sciBelow = 0.001
	sciAbove = 1e6
)

// NewPrinter falls back to English for tags that do not parse.
func NewPrinter(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

// Value prints v with precision decimals, or in two-decimal scientific
// notation when v is non-zero and |v| < 0.001 or |v| > 1e6.
func Value(p *message.Printer, v float64, precision int) string {
	if UseScientific(v) {
		return p.Sprintf("%.2e", v)
	}
	if precision < 0 {
		precision = 0
	}
	return p.Sprintf(fmt.Sprintf("%%.%df", precision), v)
}

func UseScientific(v float64) bool {
	a := math.Abs(v)
	return v != 0 && (a < sciBelow || a > sciAbove)
}
