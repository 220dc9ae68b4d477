// Package repository wraps the expense store and derives the daily and
// category summaries used by the reporting surfaces.
package repository

import (
	"context"
	"time"

	"flowbook/internal/model"
	"flowbook/internal/service"
)

// ExpenseRepository is the aggregation layer over the expense store. Query
// and command operations pass through 1:1; the summary operations are pure
// derivations over the full expense set and are recomputed from scratch on
// every read. Dataset sizes are small enough that incremental maintenance
// isn't worth the bookkeeping.
type ExpenseRepository struct {
	store service.ExpenseStore
}

// New creates an expense repository over the given store.
func New(store service.ExpenseStore) *ExpenseRepository {
	return &ExpenseRepository{store: store}
}

// Insert persists a validated expense and returns its assigned id.
func (r *ExpenseRepository) Insert(ctx context.Context, e *model.Expense) (int64, error) {
	return r.store.Insert(ctx, e)
}

// Update replaces the mutable fields of a stored expense.
func (r *ExpenseRepository) Update(ctx context.Context, e model.Expense) error {
	return r.store.Update(ctx, e)
}

// Delete removes an expense record.
func (r *ExpenseRepository) Delete(ctx context.Context, e model.Expense) error {
	return r.store.Delete(ctx, e)
}

// DeleteByID removes the expense with the given id; deleting a missing id is
// a no-op.
func (r *ExpenseRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.store.DeleteByID(ctx, id)
}

// GetByID retrieves a single expense by id.
func (r *ExpenseRepository) GetByID(ctx context.Context, id int64) (*model.Expense, error) {
	return r.store.GetByID(ctx, id)
}

// All returns every expense, newest first.
func (r *ExpenseRepository) All(ctx context.Context) ([]model.Expense, error) {
	return r.store.All(ctx)
}

// Today returns the current local day's expenses, newest first.
func (r *ExpenseRepository) Today(ctx context.Context) ([]model.Expense, error) {
	return r.store.Today(ctx)
}

// ByDate returns the expenses for a local calendar day (yyyy-MM-dd).
func (r *ExpenseRepository) ByDate(ctx context.Context, day string) ([]model.Expense, error) {
	return r.store.ByDate(ctx, day)
}

// ByCategory returns the expenses in a category, newest first.
func (r *ExpenseRepository) ByCategory(ctx context.Context, category model.Category) ([]model.Expense, error) {
	return r.store.ByCategory(ctx, category)
}

// ByDateRange returns the expenses created within [start, end] inclusive.
func (r *ExpenseRepository) ByDateRange(ctx context.Context, start, end time.Time) ([]model.Expense, error) {
	return r.store.ByDateRange(ctx, start, end)
}

// TodayTotal returns the summed amount for the current local day, 0 when the
// day is empty.
func (r *ExpenseRepository) TodayTotal(ctx context.Context) (float64, error) {
	return r.store.TodayTotal(ctx)
}

// TodayCount returns the number of expenses on the current local day.
func (r *ExpenseRepository) TodayCount(ctx context.Context) (int, error) {
	return r.store.TodayCount(ctx)
}

// TotalForDay returns the summed amount for a local calendar day.
func (r *ExpenseRepository) TotalForDay(ctx context.Context, day string) (float64, error) {
	return r.store.TotalForDay(ctx, day)
}

// CountForDay returns the number of expenses on a local calendar day.
func (r *ExpenseRepository) CountForDay(ctx context.Context, day string) (int, error) {
	return r.store.CountForDay(ctx, day)
}

// Last7DaysSummaries returns one summary per calendar day over the trailing
// 7-day window, oldest first. Days without expenses are dropped.
func (r *ExpenseRepository) Last7DaysSummaries(ctx context.Context) ([]model.DailyExpenseSummary, error) {
	expenses, err := r.store.All(ctx)
	if err != nil {
		return nil, err
	}
	return dailySummaries(expenses, time.Now()), nil
}

// CategorySummary returns one summary per category that has at least one
// expense, in enumeration order, with each category's percentage share of the
// grand total.
func (r *ExpenseRepository) CategorySummary(ctx context.Context) ([]model.CategoryExpenseSummary, error) {
	expenses, err := r.store.All(ctx)
	if err != nil {
		return nil, err
	}
	return categorySummaries(expenses), nil
}
