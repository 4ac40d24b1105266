package service

import (
	"path/filepath"
	"testing"

	"github.com/mmynk/khata/internal/storage"
	"github.com/mmynk/khata/internal/storage/sqlite"
)

// newTestStore creates a throwaway SQLite store for a test.
func newTestStore(t *testing.T) storage.Store {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}
