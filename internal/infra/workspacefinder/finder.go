package workspacefinder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aalvaropc/unitconv/internal/domain"
)

// ConfigFile marks the root of a workspace.
const ConfigFile = "unitconv.yaml"

// Finder walks up from a directory (or from a mixture or substances file) to
// the nearest directory holding a unitconv.yaml file. Mixture directories,
// .unitconv/logs and any other subdirectory resolve to the same root.
type Finder struct {
	ConfigFile string // defaults to "unitconv.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFile}
}

func (f *Finder) configFile() string {
	if f.ConfigFile == "" {
		return ConfigFile
	}
	return f.ConfigFile
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	start, err := startPoint(startDir)
	if err != nil {
		return "", err
	}

	for cur := start; ; {
		if isConfigFile(filepath.Join(cur, f.configFile())) {
			return cur, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Path: start,
				Err:  fmt.Errorf("no %s in %s or any parent: %w", f.configFile(), start, domain.ErrNotFound),
			}
		}
		cur = parent
	}
}

// startPoint makes startDir absolute; a file path starts at its directory.
func startPoint(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Path: startDir,
			Err:  err,
		}
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}
	return filepath.Clean(abs), nil
}

// isConfigFile ignores a directory that happens to be named unitconv.yaml.
func isConfigFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
