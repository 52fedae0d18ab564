package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/unitconv/internal/usecase"
)

func cmdConvert(ctx context.Context, deps Deps, req usecase.ConvertRequest) tea.Cmd {
	return func() tea.Msg {
		if deps.Convert == nil {
			return convertDoneMsg{err: errors.New("converter is nil")}
		}
		res, err := deps.Convert.Execute(ctx, req)
		return convertDoneMsg{res: res, err: err}
	}
}

func cmdLoadMixture(deps Deps, ref string) tea.Cmd {
	return func() tea.Msg {
		if deps.Mixtures == nil {
			return mixtureLoadedMsg{ref: ref, err: errors.New("mixture loader is nil")}
		}
		m, err := deps.Mixtures.Execute(ref)
		return mixtureLoadedMsg{ref: ref, mixture: m, err: err}
	}
}
