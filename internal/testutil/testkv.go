package testutil

import (
	"testing"

	"github.com/dmarchuk/tasksphere/internal/kv"
)

// NewTestKV creates an in-memory key-value store, closed when the test ends.
func NewTestKV(t *testing.T) *kv.Store {
	t.Helper()
	kvs, err := kv.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to create test kv store: %v", err)
	}
	t.Cleanup(func() {
		kvs.Close()
	})
	return kvs
}
