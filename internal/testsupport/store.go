package testsupport

import (
	"testing"

	"sagelink/internal/config"
	"sagelink/internal/logging"
	"sagelink/internal/state"
)

// MustOpenStore opens a state store for the test configuration and closes it
// when the test ends.
func MustOpenStore(t testing.TB, cfg *config.Config) *state.Store {
	t.Helper()

	store, err := state.Open(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("open state store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
