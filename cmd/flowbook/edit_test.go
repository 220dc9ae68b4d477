package main

import (
	"context"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowbook/internal/model"
	"flowbook/internal/storage"
)

// seedExpense creates a store at a temp path, points the config at it, and
// inserts one expense to edit.
func seedExpense(t *testing.T) (string, int64) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "edit.db")
	viper.Set("database.path", dbPath)
	t.Cleanup(func() { viper.Set("database.path", "") })

	store, err := storage.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))

	e := model.Expense{
		Title:     "Lunch",
		Amount:    250,
		Category:  model.CategoryFood,
		Notes:     "team outing",
		CreatedAt: time.Now(),
	}
	id, err := store.Insert(context.Background(), &e)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	return dbPath, id
}

func readExpense(t *testing.T, dbPath string, id int64) model.Expense {
	t.Helper()

	store, err := storage.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	e, err := store.GetByID(context.Background(), id)
	require.NoError(t, err)
	return *e
}

func runEdit(args ...string) error {
	cmd := editCmd()
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestEditCmd_PartialEditKeepsUnsetFields(t *testing.T) {
	dbPath, id := seedExpense(t)

	require.NoError(t, runEdit(strconv.FormatInt(id, 10), "--amount", "300"))

	e := readExpense(t, dbPath, id)
	assert.Equal(t, "Lunch", e.Title)
	assert.Equal(t, 300.0, e.Amount)
	assert.Equal(t, model.CategoryFood, e.Category)
	assert.Equal(t, "team outing", e.Notes)
}

func TestEditCmd_ExplicitEmptyValueIsValidated(t *testing.T) {
	dbPath, id := seedExpense(t)

	err := runEdit(strconv.FormatInt(id, 10), "--title", "")
	require.Error(t, err)
	assert.ErrorContains(t, err, "Title is required")

	// The record is untouched after the failed edit.
	e := readExpense(t, dbPath, id)
	assert.Equal(t, "Lunch", e.Title)
	assert.Equal(t, 250.0, e.Amount)
}

func TestEditCmd_ExplicitEmptyNotesClearsThem(t *testing.T) {
	dbPath, id := seedExpense(t)

	require.NoError(t, runEdit(strconv.FormatInt(id, 10), "--notes", ""))

	e := readExpense(t, dbPath, id)
	assert.Empty(t, e.Notes)
	assert.Equal(t, "Lunch", e.Title)
}
