package concentration

// Requirement lists the auxiliary inputs a conversion needs.
type Requirement struct {
	MolarMass bool
	Density   bool
	Mixture   bool
}

// Any reports whether at least one auxiliary input is needed.
func (r Requirement) Any() bool {
	return r.MolarMass || r.Density || r.Mixture
}

func needsMolarMass(u Unit) bool {
	switch u {
	case Molarity, Molality, MoleFraction, Millimolar, Micromolar:
		return true
	}
	return false
}

func needsDensity(u Unit) bool {
	return u == Molality || u == PercentMassMass
}

// isFractionPair reports the mass-fraction/mole-fraction special case.
func isFractionPair(src, dst Unit) bool {
	return (src == MassFraction && dst == MoleFraction) ||
		(src == MoleFraction && dst == MassFraction)
}

// RequirementFor derives the requirement for a resolved unit pair. It is
// symmetric in src and dst. Mixture data supersedes a single molar mass.
func RequirementFor(src, dst Unit) Requirement {
	mixture := isFractionPair(src, dst)
	return Requirement{
		MolarMass: (needsMolarMass(src) || needsMolarMass(dst)) && !mixture,
		Density:   needsDensity(src) || needsDensity(dst),
		Mixture:   mixture,
	}
}

// Analyze is RequirementFor on raw names or codes. It never fails: a name that
// does not resolve contributes no requirement, and Convert reports it.
func Analyze(source, target string) Requirement {
	src, _ := ParseUnit(source)
	dst, _ := ParseUnit(target)
	return RequirementFor(src, dst)
}
