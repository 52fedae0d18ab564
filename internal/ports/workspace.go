package ports

import "github.com/aalvaropc/unitconv/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
