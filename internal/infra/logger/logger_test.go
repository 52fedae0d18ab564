package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupWritesUnderWorkspace(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root, Debug: true})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}

	want := filepath.Join(root, ".unitconv", "logs", "unitconv.log")
	if Path() != want {
		t.Fatalf("expected path %s, got %s", want, Path())
	}
	if err := IsReady(); err != nil {
		t.Fatalf("expected logger ready: %v", err)
	}

	L().Info("convert.ok", "family", "length")
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	for _, s := range []string{"logger.initialized", "convert.ok", `"family":"length"`} {
		if !strings.Contains(string(b), s) {
			t.Fatalf("expected %q in log, got %s", s, b)
		}
	}
	if IsReady() == nil {
		t.Fatalf("expected logger reset after cleanup")
	}
}

func TestSetupFallsBackToCacheDir(t *testing.T) {
	cache := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cache)
	t.Setenv("HOME", cache)

	cleanup, err := Setup(Config{})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	defer func() { _ = cleanup() }()

	if !strings.Contains(Path(), filepath.Join("unitconv", "logs", "unitconv.log")) {
		t.Fatalf("unexpected log path %s", Path())
	}
}
