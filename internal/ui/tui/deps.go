package tui

import (
	"context"
	"log/slog"

	"github.com/aalvaropc/unitconv/internal/convert/concentration"
	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/usecase"
)

type Converter interface {
	Execute(ctx context.Context, req usecase.ConvertRequest) (domain.ConversionResult, error)
}

type UnitLister interface {
	Execute(f domain.Family) ([]domain.UnitInfo, error)
}

type RequirementAnalyzer interface {
	Execute(source, target string) concentration.Requirement
}

type MixtureLoader interface {
	Execute(nameOrPath string) (domain.Mixture, error)
}

type Deps struct {
	Convert  Converter
	Units    UnitLister
	Analyze  RequirementAnalyzer
	Mixtures MixtureLoader

	Config         domain.Config
	WorkspaceRoot  string
	WorkspaceFound bool

	Logger *slog.Logger
	Debug  bool
}
