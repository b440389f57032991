package store

import (
	"context"
	"path/filepath"
	"testing"
)

// createTestStore creates a new file-backed store with deterministic IDs.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path, WithIDGenerator(NewSequenceGenerator("t")))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestList creates a top-level list holding the given titles.
func createTestList(t *testing.T, s *Store, titles ...string) List {
	t.Helper()
	ctx := context.Background()
	l, err := s.CreateList(ctx, "", "test")
	if err != nil {
		t.Fatalf("CreateList() failed: %v", err)
	}
	for _, title := range titles {
		if _, err := s.AddItem(ctx, l.ID, title); err != nil {
			t.Fatalf("AddItem(%q) failed: %v", title, err)
		}
	}
	return l
}

// titles returns the titles of a list in stored order.
func titles(t *testing.T, s *Store, listID string) []string {
	t.Helper()
	items, err := s.Items(context.Background(), listID)
	if err != nil {
		t.Fatalf("Items() failed: %v", err)
	}
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}
