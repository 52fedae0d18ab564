// Package concentration converts chemical concentrations between twelve units.
//
// A conversion may need auxiliary inputs: the solute molar mass, the solution
// density, or, for mass fraction <-> mole fraction, the composition of the
// whole mixture. Analyze reports which ones a unit pair needs; Convert checks
// that they were supplied and performs the conversion.
//
// Most pairs are converted in two stages through grams per liter. Molality is
// non-linear in that representation because the solvent mass changes with the
// concentration, and very high g/L values have no molality at all.
//
// Mass/mole fraction conversions never use g/L. With two components the
// relation is exact and every fraction of the mixture is reported. With three
// or more components the result relies on an even split of the remainder
// across the other components and is flagged Approximate.
//
// Every function in this package is pure and safe for concurrent use.
package concentration
