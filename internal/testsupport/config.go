package testsupport

import (
	"path/filepath"
	"testing"

	"sagelink/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// Page delays are zeroed so paginated tests run at full speed.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LibraryDir = filepath.Join(base, "library")
	cfg.Paths.StateDir = filepath.Join(base, "state")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.SageTV.PageDelayMs = 0

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithFlatMovies switches movie output to the flat single-directory layout.
func WithFlatMovies() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Library.FlatMovies = true
	}
}

// WithMaxFiles caps how many records a sync run will process.
func WithMaxFiles(n int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.SageTV.MaxFiles = n
	}
}
