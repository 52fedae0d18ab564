package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseQuantity reads a finite number. A decimal comma is accepted when the
// input has no dot ("2,5").
func ParseQuantity(s string) (float64, error) {
	in := strings.TrimSpace(s)
	if !strings.Contains(in, ".") {
		in = strings.Replace(in, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(in, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ConversionError{
			Op:    "domain.parse_quantity",
			Kind:  KindInvalidRange,
			Param: "quantity",
			Msg:   fmt.Sprintf("not a number: %q", s),
		}
	}
	return v, nil
}
