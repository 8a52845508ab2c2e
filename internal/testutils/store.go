package testutils

import (
	"testing"

	"concessionaria-server/internal/storage"
)

// SetupDiskStore creates a disk-backed storage gateway rooted at a temp dir.
func SetupDiskStore(t *testing.T) *storage.DiskStore {
	t.Helper()

	store, err := storage.NewDiskStore(t.TempDir(), "/media/")
	if err != nil {
		t.Fatalf("new disk store: %v", err)
	}
	return store
}
