// ABOUTME: Test utilities for creating isolated stores
// ABOUTME: Uses temporary directories so tests never touch real data
package store

import (
	"testing"
)

// NewTestStore creates a store backed by a temp directory. Cleanup is
// registered with the test; callers only use the returned store.
func NewTestStore(t *testing.T) *Store {
	t.Helper()

	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Logf("warning: failed to close test store: %v", err)
		}
	})
	return s
}
