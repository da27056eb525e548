package testsupport

import (
	"path/filepath"
	"testing"

	"thumbwarm/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Preload.LockDir = filepath.Join(base, "state")
	cfg.Logging.LogDir = ""

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// WithLogDir enables file-mirrored logging into the given directory.
func WithLogDir(dir string) ConfigOption {
	return func(c *config.Config) {
		c.Logging.LogDir = dir
	}
}
