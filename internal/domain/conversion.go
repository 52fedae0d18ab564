package domain

// ConversionRequest is one conversion asked for by a user. MolarMass (g/mol),
// Density (g/mL) and Mixture are only read by the concentration family.
type ConversionRequest struct {
	Family   Family
	From     string
	To       string
	Quantity float64

	MolarMass *float64
	Density   *float64
	Mixture   *MixtureContext
}

// ConversionResult is the answer to a ConversionRequest. From and To are the
// canonical unit keys; the labels are for display.
type ConversionResult struct {
	Family    Family
	From      string
	To        string
	FromLabel string
	ToLabel   string
	Quantity  float64
	Value     float64

	// Fractions is set for two-component mass/mole fraction conversions.
	Fractions *FractionBreakdown
	// Approximate marks results that rely on the even-split assumption for
	// mixtures of three or more components.
	Approximate bool

	MolarMass *float64
	Density   *float64
	Mixture   *MixtureContext
}

// FractionBreakdown lists every fraction of a binary mixture, oriented so
// that Component is the component of interest.
type FractionBreakdown struct {
	Component string
	Other     string

	MassFraction      float64
	OtherMassFraction float64
	MoleFraction      float64
	OtherMoleFraction float64
}
