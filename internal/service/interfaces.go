// Package service defines the interfaces between flowbook's components.
package service

import (
	"context"
	"time"

	"flowbook/internal/model"
)

// ExpenseStore is the durable store contract the repository is built on.
// Implementations must keep mutations serialized and signal subscribers after
// every successful mutation.
type ExpenseStore interface {
	// Mutations.
	Insert(ctx context.Context, e *model.Expense) (int64, error)
	Update(ctx context.Context, e model.Expense) error
	Delete(ctx context.Context, e model.Expense) error
	DeleteByID(ctx context.Context, id int64) error

	// Read queries, all ordered by creation time descending.
	GetByID(ctx context.Context, id int64) (*model.Expense, error)
	All(ctx context.Context) ([]model.Expense, error)
	Today(ctx context.Context) ([]model.Expense, error)
	ByDate(ctx context.Context, day string) ([]model.Expense, error)
	ByCategory(ctx context.Context, category model.Category) ([]model.Expense, error)
	ByDateRange(ctx context.Context, start, end time.Time) ([]model.Expense, error)

	// Scalar aggregates computed at the store layer. "No rows" is 0, never an
	// error.
	TotalForDay(ctx context.Context, day string) (float64, error)
	CountForDay(ctx context.Context, day string) (int, error)
	TodayTotal(ctx context.Context) (float64, error)
	TodayCount(ctx context.Context) (int, error)

	// Subscribe registers for coalesced change signals; the cancel function
	// releases the subscription.
	Subscribe() (<-chan struct{}, func())

	Migrate(ctx context.Context) error
	Close() error
}
