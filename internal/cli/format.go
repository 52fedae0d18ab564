package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/text/message"

	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/ui/numfmt"
)

type outputOptions struct {
	Format    string
	Locale    string
	Precision int
}

func printResult(w io.Writer, res domain.ConversionResult, opts outputOptions) error {
	switch opts.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toJSONResult(res))
	case "pretty", "":
		printPrettyResult(w, res, numfmt.NewPrinter(opts.Locale), opts.Precision)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", opts.Format)
	}
}

func printPrettyResult(w io.Writer, res domain.ConversionResult, p *message.Printer, precision int) {
	fmt.Fprintf(w, "%s: %s -> %s\n", res.Family.Label(), res.FromLabel, res.ToLabel)
	fmt.Fprintf(w, "  %s %s = %s %s\n",
		numfmt.Value(p, res.Quantity, precision), res.From,
		numfmt.Value(p, res.Value, precision), res.To)

	if res.MolarMass != nil {
		fmt.Fprintf(w, "  molar mass: %s g/mol\n", numfmt.Value(p, *res.MolarMass, precision))
	}
	if res.Density != nil {
		fmt.Fprintf(w, "  density:    %s g/mL\n", numfmt.Value(p, *res.Density, precision))
	}
	if res.Mixture != nil && len(res.Mixture.Components) > 0 && res.Fractions == nil {
		fmt.Fprintf(w, "  component:  %s (of %d)\n", res.Mixture.Selected().Name, len(res.Mixture.Components))
	}

	if b := res.Fractions; b != nil {
		fmt.Fprintf(w, "\n  %-16s %-14s %s\n", "", b.Component, b.Other)
		fmt.Fprintf(w, "  %-16s %-14s %s\n", "mass fraction",
			numfmt.Value(p, b.MassFraction, precision), numfmt.Value(p, b.OtherMassFraction, precision))
		fmt.Fprintf(w, "  %-16s %-14s %s\n", "mole fraction",
			numfmt.Value(p, b.MoleFraction, precision), numfmt.Value(p, b.OtherMoleFraction, precision))
	}

	if res.Approximate {
		fmt.Fprintln(w, "\n  note: approximate, assumes the remaining fraction is split evenly across the other components")
	}
}

type jsonResult struct {
	Family      string          `json:"family"`
	From        string          `json:"from"`
	To          string          `json:"to"`
	Quantity    float64         `json:"quantity"`
	Value       float64         `json:"value"`
	Approximate bool            `json:"approximate,omitempty"`
	MolarMass   *float64        `json:"molar_mass,omitempty"`
	Density     *float64        `json:"density,omitempty"`
	Component   string          `json:"component,omitempty"`
	Fractions   *jsonFractions  `json:"fractions,omitempty"`
	Components  []jsonComponent `json:"components,omitempty"`
}

type jsonFractions struct {
	Component         string  `json:"component"`
	Other             string  `json:"other"`
	MassFraction      float64 `json:"mass_fraction"`
	OtherMassFraction float64 `json:"other_mass_fraction"`
	MoleFraction      float64 `json:"mole_fraction"`
	OtherMoleFraction float64 `json:"other_mole_fraction"`
}

type jsonComponent struct {
	Name      string  `json:"name"`
	MolarMass float64 `json:"molar_mass"`
}

func toJSONResult(res domain.ConversionResult) jsonResult {
	out := jsonResult{
		Family:      string(res.Family),
		From:        res.From,
		To:          res.To,
		Quantity:    res.Quantity,
		Value:       res.Value,
		Approximate: res.Approximate,
		MolarMass:   res.MolarMass,
		Density:     res.Density,
	}
	if res.Mixture != nil && len(res.Mixture.Components) > 0 {
		out.Component = res.Mixture.Selected().Name
		for _, c := range res.Mixture.Components {
			out.Components = append(out.Components, jsonComponent{Name: c.Name, MolarMass: c.MolarMass})
		}
	}
	if b := res.Fractions; b != nil {
		out.Fractions = &jsonFractions{
			Component:         b.Component,
			Other:             b.Other,
			MassFraction:      b.MassFraction,
			OtherMassFraction: b.OtherMassFraction,
			MoleFraction:      b.MoleFraction,
			OtherMoleFraction: b.OtherMoleFraction,
		}
	}
	return out
}
