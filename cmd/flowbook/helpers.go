package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"flowbook/internal/config"
	"flowbook/internal/repository"
	"flowbook/internal/service"
	"flowbook/internal/storage"
)

// initStore opens the expense store at the configured path and brings its
// schema up to date.
func initStore(ctx context.Context) (service.ExpenseStore, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDBPath
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initRepository opens the store and wraps it in the expense repository. The
// caller must Close the returned store.
func initRepository(ctx context.Context) (*repository.ExpenseRepository, service.ExpenseStore, error) {
	store, err := initStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	return repository.New(store), store, nil
}
