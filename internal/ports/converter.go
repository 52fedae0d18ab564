package ports

import "github.com/aalvaropc/unitconv/internal/domain"

// Converter converts quantities within one family of units.
type Converter interface {
	Family() domain.Family
	Units() []domain.UnitInfo
	Convert(req domain.ConversionRequest) (domain.ConversionResult, error)
}

// ConverterRegistry hands out the converter of a family.
type ConverterRegistry interface {
	Converter(f domain.Family) (Converter, bool)
}
