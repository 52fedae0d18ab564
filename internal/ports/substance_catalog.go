package ports

// SubstanceCatalog resolves a substance name to its molar mass in g/mol.
type SubstanceCatalog interface {
	MolarMass(name string) (float64, error)
}
