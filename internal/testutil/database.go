// Package testutil provides shared test helpers for flowbook.
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"flowbook/internal/model"
	"flowbook/internal/storage"
)

// SetupTestDB creates a migrated temp-file SQLite store and registers its
// cleanup with the test.
func SetupTestDB(t *testing.T) *storage.SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		_ = store.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

// MustInsert inserts an expense or fails the test, returning the stored
// record with its assigned id.
func MustInsert(t *testing.T, store *storage.SQLiteStore, e model.Expense) model.Expense {
	t.Helper()

	if _, err := store.Insert(context.Background(), &e); err != nil {
		t.Fatalf("failed to insert expense %q: %v", e.Title, err)
	}
	return e
}

// Expense builds a valid expense with sensible defaults for tests.
func Expense(title string, amount float64, category model.Category, createdAt time.Time) model.Expense {
	return model.Expense{
		Title:     title,
		Amount:    amount,
		Category:  category,
		CreatedAt: createdAt,
	}
}
