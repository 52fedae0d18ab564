package ports

import "github.com/aalvaropc/unitconv/internal/domain"

// MixtureLoader loads mixture definitions from a source (e.g., filesystem).
type MixtureLoader interface {
	LoadMixture(nameOrPath string) (domain.Mixture, error)
	ListMixtures(root string) ([]domain.MixtureRef, error)
}
