package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/unitconv/internal/convert"
	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/infra/config"
	"github.com/aalvaropc/unitconv/internal/infra/logger"
	"github.com/aalvaropc/unitconv/internal/infra/workspacefinder"
	"github.com/aalvaropc/unitconv/internal/infra/yamlmixture"
	"github.com/aalvaropc/unitconv/internal/infra/yamlsubstance"
	"github.com/aalvaropc/unitconv/internal/ports"
	"github.com/aalvaropc/unitconv/internal/usecase"
)

var locator ports.WorkspaceLocator = workspacefinder.NewFinder()

type workspaceCtx struct {
	root  string
	found bool
	cfg   domain.Config

	registry   *convert.Registry
	mixtures   *yamlmixture.Loader
	substances *yamlsubstance.Catalog
}

// loadWorkspace resolves the workspace and its config. Conversions work
// without one (required=false); the root then falls back to the working
// directory and the config to defaults plus environment.
func loadWorkspace(workspaceFlag string, required bool) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	found := err == nil
	if err != nil {
		if required {
			return nil, err
		}
		root, _ = os.Getwd()
	}

	cfg := domain.DefaultConfig()
	if found {
		cfg, err = workspacefinder.LoadConfig(root)
		if err != nil && !domain.IsKind(err, domain.KindNotFound) {
			return nil, err
		}
		logger.L().Debug("config.loaded", "root", root, "from_file", err == nil)
	}

	cfg, err = config.ApplyEnv(cfg)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root:     root,
		found:    found,
		cfg:      cfg,
		registry: convert.NewRegistry(),
		mixtures: yamlmixture.NewLoader(
			root,
			yamlmixture.WithMixturesDir(cfg.Paths.MixturesDir),
		),
		substances: yamlsubstance.NewCatalog(
			root,
			yamlsubstance.WithSubstancesFile(cfg.Paths.SubstancesFile),
		),
	}, nil
}

func (ws *workspaceCtx) convertUseCase() *usecase.ConvertQuantity {
	return usecase.NewConvertQuantity(
		ws.registry,
		usecase.WithLogger(logger.L()),
		usecase.WithDefaultDensity(ws.cfg.Defaults.Density),
		usecase.WithSubstanceCatalog(ws.substances),
		usecase.WithMixtureLoader(ws.mixtures),
	)
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `unitconv init`): %w", wd, err)
	}
	return root, nil
}

// findWorkspaceRoot is resolveWorkspaceRoot for logging: "" when there is no
// workspace, so logs go to the user cache dir.
func findWorkspaceRoot(workspaceFlag string) string {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return ""
	}
	return root
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

// resolveMixtureArg makes path-like mixture arguments relative to the
// workspace root; names are left to the loader.
func resolveMixtureArg(ws *workspaceCtx, arg string) string {
	in := strings.TrimSpace(arg)
	if !looksLikePath(in) && !hasYAMLExt(in) {
		return in
	}
	if !looksLikePath(in) {
		return filepath.Join(ws.root, ws.cfg.Paths.MixturesDir, in)
	}
	if !filepath.IsAbs(in) {
		in = filepath.Join(ws.root, in)
	}
	return filepath.Clean(in)
}
