package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowbook/internal/common"
	"flowbook/internal/model"
	"flowbook/internal/testutil"
)

func setupRepo(t *testing.T) *ExpenseRepository {
	t.Helper()
	return New(testutil.SetupTestDB(t))
}

func TestExpenseRepository_InsertReadDeleteRoundTrip(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	e := testutil.Expense("Lunch", 250, model.CategoryFood, time.Now())
	id, err := repo.Insert(ctx, &e)
	require.NoError(t, err)

	today, err := repo.ByDate(ctx, model.DayKey(time.Now()))
	require.NoError(t, err)
	require.Len(t, today, 1)
	assert.Equal(t, id, today[0].ID)
	assert.Equal(t, "Lunch", today[0].Title)

	require.NoError(t, repo.DeleteByID(ctx, id))

	today, err = repo.ByDate(ctx, model.DayKey(time.Now()))
	require.NoError(t, err)
	assert.Empty(t, today)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestExpenseRepository_DeleteMissingIDIsNoOp(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	e := testutil.Expense("Keeper", 50, model.CategoryStaff, time.Now())
	_, err := repo.Insert(ctx, &e)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByID(ctx, 987654))

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestExpenseRepository_UpdatePropagatesNotFound(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	e := testutil.Expense("Ghost", 10, model.CategoryFood, time.Now())
	e.ID = 4242
	err := repo.Update(ctx, e)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestExpenseRepository_TodayAggregates(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	// Empty store reports zero, never an error.
	total, err := repo.TodayTotal(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)

	lunch := testutil.Expense("Lunch", 250, model.CategoryFood, time.Now())
	taxi := testutil.Expense("Taxi", 150, model.CategoryTravel, time.Now())
	_, err = repo.Insert(ctx, &lunch)
	require.NoError(t, err)
	_, err = repo.Insert(ctx, &taxi)
	require.NoError(t, err)

	total, err = repo.TodayTotal(ctx)
	require.NoError(t, err)
	assert.Equal(t, 400.0, total)

	count, err := repo.TodayCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	summaries, err := repo.CategorySummary(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, model.CategoryTravel, summaries[0].Category)
	assert.InDelta(t, 37.5, summaries[0].Percentage, 1e-9)
	assert.Equal(t, model.CategoryFood, summaries[1].Category)
	assert.InDelta(t, 62.5, summaries[1].Percentage, 1e-9)
}

func TestExpenseRepository_Last7DaysSummaries(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	now := time.Now()
	today := testutil.Expense("Today", 100, model.CategoryFood, now)
	twoDaysAgo := testutil.Expense("Earlier", 60, model.CategoryTravel, now.AddDate(0, 0, -2))
	ancient := testutil.Expense("Ancient", 500, model.CategoryUtility, now.AddDate(0, 0, -30))
	for _, e := range []*model.Expense{&today, &twoDaysAgo, &ancient} {
		_, err := repo.Insert(ctx, e)
		require.NoError(t, err)
	}

	summaries, err := repo.Last7DaysSummaries(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, model.DayKey(now.AddDate(0, 0, -2)), summaries[0].Date)
	assert.Equal(t, 60.0, summaries[0].TotalAmount)
	assert.Equal(t, model.DayKey(now), summaries[1].Date)
	assert.Equal(t, 100.0, summaries[1].TotalAmount)
}

func TestExpenseRepository_ByCategoryAndRange(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	base := time.Date(2024, 5, 10, 9, 0, 0, 0, time.Local)
	expenses := []model.Expense{
		testutil.Expense("Flight", 4000, model.CategoryTravel, base),
		testutil.Expense("Hotel", 2500, model.CategoryTravel, base.AddDate(0, 0, 1)),
		testutil.Expense("Dinner", 300, model.CategoryFood, base.AddDate(0, 0, 1)),
	}
	for i := range expenses {
		_, err := repo.Insert(ctx, &expenses[i])
		require.NoError(t, err)
	}

	travel, err := repo.ByCategory(ctx, model.CategoryTravel)
	require.NoError(t, err)
	require.Len(t, travel, 2)
	assert.Equal(t, "Hotel", travel[0].Title, "newest first")

	ranged, err := repo.ByDateRange(ctx, base, base.Add(12*time.Hour))
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, "Flight", ranged[0].Title)
}
