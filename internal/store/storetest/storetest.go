// Package storetest opens throwaway stores for tests in other packages.
package storetest

import (
	"path/filepath"
	"testing"

	"github.com/abhisek/sparklearn/internal/store"
)

// Open returns a store backed by a fresh SQLite file that is closed
// when the test ends.
func Open(t testing.TB) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "sparklearn.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}
