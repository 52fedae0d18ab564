package yamlsubstance

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/aalvaropc/unitconv/internal/convert/unitname"
	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/infra/config"
	"github.com/aalvaropc/unitconv/internal/ports"
)

// Catalog reads molar masses from the workspace substances file. The file is
// read once, on first use.
type Catalog struct {
	rootDir string
	file    string

	once    sync.Once
	entries map[string]float64
	err     error
}

type Option func(*Catalog)

func WithSubstancesFile(name string) Option {
	return func(c *Catalog) { c.file = name }
}

func NewCatalog(root string, opts ...Option) *Catalog {
	c := &Catalog{
		rootDir: root,
		file:    "substances.yaml",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ ports.SubstanceCatalog = (*Catalog)(nil)

func (c *Catalog) Path() string {
	if filepath.IsAbs(c.file) {
		return c.file
	}
	return filepath.Join(c.rootDir, c.file)
}

// MolarMass looks a substance up by name; names are compared after unit-name
// normalization.
func (c *Catalog) MolarMass(name string) (float64, error) {
	c.once.Do(func() {
		c.entries, c.err = config.LoadSubstances(c.Path())
	})
	if c.err != nil {
		return 0, c.err
	}

	mm, ok := c.entries[unitname.Key(name)]
	if !ok {
		return 0, &domain.OpError{
			Op:   "yamlsubstance.lookup",
			Kind: domain.KindNotFound,
			Path: c.Path(),
			Err:  fmt.Errorf("substance %q: %w", name, domain.ErrNotFound),
		}
	}
	return mm, nil
}

// Names lists the catalog keys, for completion and help output.
func (c *Catalog) Names() ([]string, error) {
	c.once.Do(func() {
		c.entries, c.err = config.LoadSubstances(c.Path())
	})
	if c.err != nil {
		return nil, c.err
	}
	out := make([]string, 0, len(c.entries))
	for k := range c.entries {
		out = append(out, k)
	}
	return out, nil
}
