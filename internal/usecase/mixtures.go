package usecase

import (
	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/ports"
)

type LoadMixture struct {
	loader ports.MixtureLoader
}

func NewLoadMixture(l ports.MixtureLoader) *LoadMixture {
	return &LoadMixture{loader: l}
}

// Execute loads a mixture and re-checks it, so definitions that bypassed the
// file mapper are held to the same rules.
func (uc *LoadMixture) Execute(nameOrPath string) (domain.Mixture, error) {
	m, err := uc.loader.LoadMixture(nameOrPath)
	if err != nil {
		return domain.Mixture{}, err
	}
	if err := m.Context.Validate(); err != nil {
		return domain.Mixture{}, err
	}
	return m, nil
}

type ListMixtures struct {
	loader ports.MixtureLoader
}

func NewListMixtures(l ports.MixtureLoader) *ListMixtures {
	return &ListMixtures{loader: l}
}

func (uc *ListMixtures) Execute(root string) ([]domain.MixtureRef, error) {
	return uc.loader.ListMixtures(root)
}
