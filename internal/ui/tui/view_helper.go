package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/ui/numfmt"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderResult(t Theme, res domain.ConversionResult, out domain.OutputConfig) string {
	p := numfmt.NewPrinter(out.Locale)
	val := func(v float64) string { return numfmt.Value(p, v, out.Precision) }

	var b strings.Builder
	b.WriteString(t.Title.Render(res.Family.Label()))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", val(res.Quantity), res.FromLabel))
	b.WriteString("= ")
	b.WriteString(t.Value.Render(val(res.Value)))
	b.WriteString(" ")
	b.WriteString(res.ToLabel)
	b.WriteString("\n")

	if res.MolarMass != nil || res.Density != nil || res.Mixture != nil {
		b.WriteString("\n")
	}
	if res.MolarMass != nil {
		b.WriteString(t.Help.Render(fmt.Sprintf("molar mass %s g/mol", val(*res.MolarMass))))
		b.WriteString("\n")
	}
	if res.Density != nil {
		b.WriteString(t.Help.Render(fmt.Sprintf("density %s g/mL", val(*res.Density))))
		b.WriteString("\n")
	}
	if res.Mixture != nil && len(res.Mixture.Components) > 0 && res.Fractions == nil {
		b.WriteString(t.Help.Render(fmt.Sprintf("component %s of %d", res.Mixture.Selected().Name, len(res.Mixture.Components))))
		b.WriteString("\n")
	}

	if f := res.Fractions; f != nil {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%-15s %-14s %s\n", "", clampString(f.Component, 14), clampString(f.Other, 14)))
		b.WriteString(fmt.Sprintf("%-15s %-14s %s\n", "mass fraction", val(f.MassFraction), val(f.OtherMassFraction)))
		b.WriteString(fmt.Sprintf("%-15s %-14s %s\n", "mole fraction", val(f.MoleFraction), val(f.OtherMoleFraction)))
	}

	if res.Approximate {
		b.WriteString("\n")
		b.WriteString(t.Note.Render("Approximate: the remaining fraction is split evenly across the other components."))
		b.WriteString("\n")
	}
	return b.String()
}

func helpText() string {
	var b strings.Builder
	b.WriteString("Families\n")
	for i, f := range domain.Families {
		b.WriteString(fmt.Sprintf("  %2d. %s\n", i+1, f.Label()))
	}
	b.WriteString("\nConcentration parameters\n")
	b.WriteString("  molar mass   g/mol, or a substance from substances.yaml\n")
	b.WriteString("  density      g/mL of the solution\n")
	b.WriteString("  mixture      a workspace mixture, or water:18.015,nacl:58.44\n")
	b.WriteString("\nOnly the parameters a unit pair needs are asked for.\n")
	b.WriteString("Quantities accept a decimal comma (2,5).\n")
	b.WriteString("\nKeys\n")
	b.WriteString("  enter  select / next\n")
	b.WriteString("  /      search lists\n")
	b.WriteString("  esc    back\n")
	b.WriteString("  ctrl+c quit\n")
	return b.String()
}
