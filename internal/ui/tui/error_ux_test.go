package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aalvaropc/unitconv/internal/domain"
)

func TestUserMessage(t *testing.T) {
	domainErr := &domain.ConversionError{Op: "concentration.convert", Kind: domain.KindDomain, Msg: "mass fraction must be below 1"}

	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"cancelled", fmt.Errorf("convert: %w", context.Canceled), "Cancelled"},
		{
			"invalid unit",
			&domain.ConversionError{Op: "linear.lookup", Kind: domain.KindInvalidUnit, Msg: "unknown length unit"},
			"Unknown unit for this family",
		},
		{
			"missing molar mass",
			&domain.ConversionError{Op: "concentration.convert", Kind: domain.KindMissingParameter, Param: "molar_mass"},
			"Missing molar mass",
		},
		{
			"invalid density",
			&domain.ConversionError{Op: "concentration.convert", Kind: domain.KindInvalidRange, Param: "density", Msg: "must be positive"},
			"Invalid density: must be positive",
		},
		{
			"domain under conversion",
			&domain.ConversionError{Op: "concentration.convert", Kind: domain.KindConversion, Pair: "mass_fraction->molarity", Cause: domainErr},
			"Not defined for this input: mass fraction must be below 1",
		},
		{
			"missing mixture under conversion",
			&domain.ConversionError{
				Op: "concentration.convert", Kind: domain.KindConversion,
				Cause: &domain.ConversionError{Op: "concentration.fraction", Kind: domain.KindMissingParameter, Param: "mixture"},
			},
			"Missing mixture",
		},
		{
			"mixture not found",
			&domain.OpError{Op: "yamlmixture.load", Kind: domain.KindNotFound, Err: domain.ErrNotFound},
			"Mixture not found",
		},
		{
			"substance not found",
			&domain.OpError{Op: "yamlsubstance.lookup", Kind: domain.KindNotFound, Err: domain.ErrNotFound},
			"Substance not found",
		},
		{
			"yaml with line",
			&domain.OpError{Op: "config.load_mixture", Kind: domain.KindInvalidConfig, Path: "/ws/mixtures/brine.yaml", Err: errors.New("yaml: line 4: did not find expected key")},
			"Invalid YAML at brine.yaml line 4",
		},
		{
			"invalid config without yaml problem",
			&domain.OpError{Op: "config.map", Kind: domain.KindInvalidConfig, Path: "/ws/mixtures/brine.yaml", Err: domain.ErrInvalidConfig},
			"Invalid brine.yaml",
		},
		{"unknown", errors.New("boom"), "Unexpected error (see logs)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := userMessage(c.err); got != c.want {
				t.Fatalf("userMessage()=%q want %q", got, c.want)
			}
		})
	}
}

func TestClampString(t *testing.T) {
	if got := clampString("sodium chloride", 6); got != "sodium…" {
		t.Fatalf("got %q", got)
	}
	if got := clampString("µm", 2); got != "µm" {
		t.Fatalf("got %q", got)
	}
	if got := clampString("x", 0); got != "" {
		t.Fatalf("got %q", got)
	}
}
