package kv_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	apperrors "flowstreak/internal/platform/errors"
	"flowstreak/internal/platform/kv"
)

func newStore(t *testing.T) *kv.SQLiteStore {
	t.Helper()
	store, err := kv.NewSQLiteStore(filepath.Join(t.TempDir(), "nested", "flowstreak.db"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestGetSetDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newStore(t)

	if _, err := store.Get(ctx, "sessions"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := store.Set(ctx, "sessions", "3"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(ctx, "sessions", "4"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := store.Get(ctx, "sessions")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "4" {
		t.Fatalf("expected 4, got %q", got)
	}
	if err := store.Delete(ctx, "sessions"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "sessions"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestUpdateSeesCurrentValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newStore(t)

	err := store.Update(ctx, "k", func(current string, found bool) (string, error) {
		if found || current != "" {
			t.Fatalf("expected absent key, got %q found=%t", current, found)
		}
		return "a", nil
	})
	if err != nil {
		t.Fatalf("first update: %v", err)
	}
	err = store.Update(ctx, "k", func(current string, found bool) (string, error) {
		if !found || current != "a" {
			t.Fatalf("expected a, got %q found=%t", current, found)
		}
		return current + "b", nil
	})
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	got, _ := store.Get(ctx, "k")
	if got != "ab" {
		t.Fatalf("expected ab, got %q", got)
	}
}

func TestUpdateAbortsOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newStore(t)
	if err := store.Set(ctx, "k", "keep"); err != nil {
		t.Fatalf("set: %v", err)
	}
	boom := errors.New("boom")
	err := store.Update(ctx, "k", func(string, bool) (string, error) { return "lost", boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	got, _ := store.Get(ctx, "k")
	if got != "keep" {
		t.Fatalf("value must be untouched, got %q", got)
	}
}
