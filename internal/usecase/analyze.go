package usecase

import (
	"fmt"

	"github.com/aalvaropc/unitconv/internal/convert/concentration"
	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/ports"
)

// AnalyzeRequirements reports which auxiliary inputs a concentration pair needs.
type AnalyzeRequirements struct{}

func NewAnalyzeRequirements() *AnalyzeRequirements {
	return &AnalyzeRequirements{}
}

// Execute never fails; unknown units simply need nothing.
func (uc *AnalyzeRequirements) Execute(source, target string) concentration.Requirement {
	return concentration.Analyze(source, target)
}

type ListUnits struct {
	converters ports.ConverterRegistry
}

func NewListUnits(reg ports.ConverterRegistry) *ListUnits {
	return &ListUnits{converters: reg}
}

func (uc *ListUnits) Execute(f domain.Family) ([]domain.UnitInfo, error) {
	c, ok := uc.converters.Converter(f)
	if !ok {
		return nil, &domain.ConversionError{
			Op:   "usecase.list_units",
			Kind: domain.KindInvalidUnit,
			Msg:  fmt.Sprintf("unknown family %q", f),
		}
	}
	return c.Units(), nil
}
