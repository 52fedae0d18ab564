package yamlmixture

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/infra/config"
	"github.com/aalvaropc/unitconv/internal/ports"
	"gopkg.in/yaml.v3"
)

type Loader struct {
	rootDir     string
	mixturesDir string
}

type Option func(*Loader)

func WithMixturesDir(dir string) Option {
	return func(l *Loader) { l.mixturesDir = dir }
}

func NewLoader(root string, opts ...Option) *Loader {
	l := &Loader{rootDir: root, mixturesDir: "mixtures"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.MixtureLoader = (*Loader)(nil)

// LoadMixture accepts either a mixture name (e.g., "brine") or a path to a YAML file.
func (l *Loader) LoadMixture(nameOrPath string) (domain.Mixture, error) {
	if isPath(nameOrPath) {
		return config.LoadMixture(filepath.Clean(nameOrPath))
	}

	name := strings.TrimSpace(nameOrPath)
	dir := l.dir(l.rootDir)
	for _, ext := range []string{".yaml", ".yml"} {
		p := filepath.Join(dir, name+ext)
		if _, err := os.Stat(p); err == nil {
			return config.LoadMixture(p)
		}
	}

	// Fall back to the name declared inside the files.
	refs, err := l.ListMixtures(l.rootDir)
	if err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, name) {
				return config.LoadMixture(r.Path)
			}
		}
	}

	return domain.Mixture{}, &domain.OpError{
		Op:   "yamlmixture.load",
		Kind: domain.KindNotFound,
		Path: filepath.Join(dir, name+".yaml"),
		Err:  domain.ErrNotFound,
	}
}

func (l *Loader) ListMixtures(root string) ([]domain.MixtureRef, error) {
	dir := l.dir(root)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlmixture.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.MixtureRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		p := filepath.Join(dir, name)
		n, _ := readMixtureName(p)
		if strings.TrimSpace(n) == "" {
			n = strings.TrimSuffix(name, filepath.Ext(name))
		}

		refs = append(refs, domain.MixtureRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func (l *Loader) dir(root string) string {
	if filepath.IsAbs(l.mixturesDir) {
		return l.mixturesDir
	}
	return filepath.Join(root, l.mixturesDir)
}

func isPath(s string) bool {
	return strings.HasSuffix(s, ".yaml") || strings.HasSuffix(s, ".yml") || strings.Contains(s, string(filepath.Separator))
}

func readMixtureName(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return "", err
	}
	return v.Name, nil
}
