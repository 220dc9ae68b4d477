package repository

import (
	"context"
	"log/slog"
	"time"

	"flowbook/internal/model"
)

// WatchAll streams snapshots of the full expense set: one immediately, then a
// fresh one after every store change. The channel always carries the latest
// snapshot; a pending stale snapshot is replaced, never queued. Cancelling
// the context releases the subscription and closes the channel.
func (r *ExpenseRepository) WatchAll(ctx context.Context) <-chan []model.Expense {
	return watch(ctx, r, r.store.All)
}

// WatchToday streams snapshots of the current local day's expenses.
func (r *ExpenseRepository) WatchToday(ctx context.Context) <-chan []model.Expense {
	return watch(ctx, r, r.store.Today)
}

// WatchByDate streams snapshots of one calendar day's expenses.
func (r *ExpenseRepository) WatchByDate(ctx context.Context, day string) <-chan []model.Expense {
	return watch(ctx, r, func(ctx context.Context) ([]model.Expense, error) {
		return r.store.ByDate(ctx, day)
	})
}

// WatchByCategory streams snapshots of one category's expenses.
func (r *ExpenseRepository) WatchByCategory(ctx context.Context, category model.Category) <-chan []model.Expense {
	return watch(ctx, r, func(ctx context.Context) ([]model.Expense, error) {
		return r.store.ByCategory(ctx, category)
	})
}

// WatchByDateRange streams snapshots of the expenses within [start, end].
func (r *ExpenseRepository) WatchByDateRange(ctx context.Context, start, end time.Time) <-chan []model.Expense {
	return watch(ctx, r, func(ctx context.Context) ([]model.Expense, error) {
		return r.store.ByDateRange(ctx, start, end)
	})
}

// WatchDailySummaries streams the trailing 7-day summaries, recomputed after
// every store change.
func (r *ExpenseRepository) WatchDailySummaries(ctx context.Context) <-chan []model.DailyExpenseSummary {
	return watch(ctx, r, r.Last7DaysSummaries)
}

// WatchCategorySummaries streams the category percentage breakdown,
// recomputed after every store change.
func (r *ExpenseRepository) WatchCategorySummaries(ctx context.Context) <-chan []model.CategoryExpenseSummary {
	return watch(ctx, r, r.CategorySummary)
}

// watch runs fetch once up front and again after each store change signal,
// delivering results on a latest-value channel. A fetch failure is logged and
// the previous snapshot stays current; the subscription itself survives until
// the context is cancelled or the store closes.
func watch[T any](ctx context.Context, r *ExpenseRepository, fetch func(context.Context) (T, error)) <-chan T {
	out := make(chan T, 1)
	signals, cancel := r.store.Subscribe()

	go func() {
		defer close(out)
		defer cancel()

		for {
			snapshot, err := fetch(ctx)
			if err != nil {
				if ctx.Err() == nil {
					slog.Warn("Failed to refresh query snapshot", "error", err)
				}
			} else {
				push(out, snapshot)
			}

			select {
			case <-ctx.Done():
				return
			case _, ok := <-signals:
				if !ok {
					return
				}
			}
		}
	}()

	return out
}

// push delivers the latest snapshot without blocking, dropping a pending
// stale one if the subscriber hasn't caught up.
func push[T any](out chan T, v T) {
	for {
		select {
		case out <- v:
			return
		default:
		}
		select {
		case <-out:
		default:
		}
	}
}
