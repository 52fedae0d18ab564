package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/aalvaropc/unitconv/internal/convert/concentration"
	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/ports"
)

// ConvertRequest is a conversion plus the workspace references that can fill
// in its concentration parameters. Explicit values on the embedded request
// always win over references.
type ConvertRequest struct {
	domain.ConversionRequest

	// Substance names a catalog entry used as molar mass.
	Substance string
	// MixtureRef is a mixture name or file path.
	MixtureRef string
	// Component selects the component of interest by name or 1-based position.
	Component string
}

type ConvertQuantity struct {
	converters ports.ConverterRegistry
	substances ports.SubstanceCatalog
	mixtures   ports.MixtureLoader
	log        *slog.Logger

	defaultDensity float64
}

type ConvertOption func(*ConvertQuantity)

func WithLogger(l *slog.Logger) ConvertOption {
	return func(uc *ConvertQuantity) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithDefaultDensity sets the density (g/mL) used when a conversion needs one
// and the request has none. Non-positive values disable it.
func WithDefaultDensity(d float64) ConvertOption {
	return func(uc *ConvertQuantity) { uc.defaultDensity = d }
}

func WithSubstanceCatalog(c ports.SubstanceCatalog) ConvertOption {
	return func(uc *ConvertQuantity) { uc.substances = c }
}

func WithMixtureLoader(l ports.MixtureLoader) ConvertOption {
	return func(uc *ConvertQuantity) { uc.mixtures = l }
}

func NewConvertQuantity(reg ports.ConverterRegistry, opts ...ConvertOption) *ConvertQuantity {
	uc := &ConvertQuantity{
		converters: reg,
		log:        slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *ConvertQuantity) Execute(ctx context.Context, req ConvertRequest) (domain.ConversionResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.ConversionResult{}, err
	}

	attrs := []any{"family", req.Family, "from", req.From, "to", req.To}
	uc.log.Info("convert.start", attrs...)

	res, err := uc.convert(req)
	if err != nil {
		uc.log.Warn("convert.failed", append(attrs, "kind", domain.KindOf(err), "err", err.Error())...)
		return domain.ConversionResult{}, err
	}

	uc.log.Info("convert.ok", append(attrs, "value", res.Value, "approximate", res.Approximate)...)
	return res, nil
}

func (uc *ConvertQuantity) convert(req ConvertRequest) (domain.ConversionResult, error) {
	c, ok := uc.converters.Converter(req.Family)
	if !ok {
		return domain.ConversionResult{}, &domain.ConversionError{
			Op:   "usecase.convert",
			Kind: domain.KindInvalidUnit,
			Msg:  fmt.Sprintf("unknown family %q", req.Family),
		}
	}

	r := req.ConversionRequest
	if req.Family == domain.FamilyConcentration {
		if err := uc.fillConcentration(&r, req); err != nil {
			return domain.ConversionResult{}, err
		}
	}
	res, err := c.Convert(r)
	if err != nil {
		return domain.ConversionResult{}, err
	}
	if math.IsInf(res.Value, 0) || math.IsNaN(res.Value) {
		return domain.ConversionResult{}, &domain.ConversionError{
			Op:   "usecase.convert",
			Kind: domain.KindDomain,
			Pair: res.From + "->" + res.To,
			Msg:  fmt.Sprintf("result of converting %g is not a finite number", req.Quantity),
		}
	}
	return res, nil
}

// fillConcentration resolves only what the unit pair needs, so an unused
// reference never fails the conversion.
func (uc *ConvertQuantity) fillConcentration(r *domain.ConversionRequest, req ConvertRequest) error {
	need := concentration.Analyze(req.From, req.To)

	if need.MolarMass && r.MolarMass == nil && req.Substance != "" && uc.substances != nil {
		mm, err := uc.substances.MolarMass(req.Substance)
		if err != nil {
			return err
		}
		uc.log.Debug("convert.substance", "substance", req.Substance, "molar_mass", mm)
		r.MolarMass = &mm
	}

	if need.Density && r.Density == nil && uc.defaultDensity > 0 {
		d := uc.defaultDensity
		uc.log.Debug("convert.default_density", "density", d)
		r.Density = &d
	}

	if !need.Mixture {
		return nil
	}
	if r.Mixture == nil && req.MixtureRef != "" && uc.mixtures != nil {
		m, err := uc.mixtures.LoadMixture(req.MixtureRef)
		if err != nil {
			return err
		}
		mix := m.Context
		r.Mixture = &mix
	}
	if r.Mixture != nil && req.Component != "" {
		idx, ok := r.Mixture.IndexOf(req.Component)
		if !ok {
			return &domain.ConversionError{
				Op:    "usecase.convert",
				Kind:  domain.KindInvalidRange,
				Param: "mixture.interest",
				Msg:   fmt.Sprintf("no component %q in mixture", req.Component),
			}
		}
		// Copy before re-pointing so a loaded or caller-owned context is not mutated.
		mix := *r.Mixture
		mix.Interest = idx
		r.Mixture = &mix
	}
	return nil
}
