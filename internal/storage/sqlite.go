package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore implements the expense store using SQLite.
type SQLiteStore struct {
	db       *sql.DB
	notifier *changeNotifier
	dbPath   string
}

// NewSQLiteStore creates a new SQLite store instance.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	// Ensure directory exists (skip for in-memory databases)
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections, and a single writer
	// keeps mutations serialized.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStore{
		db:       db,
		dbPath:   dbPath,
		notifier: newChangeNotifier(),
	}, nil
}

// Close closes the database connection and releases all subscriptions.
func (s *SQLiteStore) Close() error {
	s.notifier.close()
	return s.db.Close()
}

// Subscribe registers for change notifications. The returned channel receives
// a signal after every successful mutation; signals are coalesced, so one
// receive may cover several mutations. The cancel function releases the
// subscription.
func (s *SQLiteStore) Subscribe() (<-chan struct{}, func()) {
	return s.notifier.subscribe()
}
