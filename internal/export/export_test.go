package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowbook/internal/model"
)

func TestCSV(t *testing.T) {
	t.Run("single expense", func(t *testing.T) {
		expenses := []model.Expense{{
			Title:     "Tea",
			Amount:    20,
			Category:  model.CategoryStaff,
			CreatedAt: time.Date(2024, 1, 5, 9, 30, 0, 0, time.Local),
		}}

		got, err := CSV(expenses)
		require.NoError(t, err)

		want := "Title,Category,Amount,Notes,Date\n" +
			`"Tea","Staff",20,"","2024-01-05 09:30"` + "\n"
		assert.Equal(t, want, got)
	})

	t.Run("rows are ordered newest first", func(t *testing.T) {
		expenses := []model.Expense{
			{Title: "Older", Amount: 10, Category: model.CategoryFood,
				CreatedAt: time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local)},
			{Title: "Newer", Amount: 15, Category: model.CategoryFood,
				CreatedAt: time.Date(2024, 1, 2, 8, 0, 0, 0, time.Local)},
		}

		got, err := CSV(expenses)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[1], `"Newer"`)
		assert.Contains(t, lines[2], `"Older"`)
	})

	t.Run("embedded quotes are doubled", func(t *testing.T) {
		expenses := []model.Expense{{
			Title:     `Lunch "special"`,
			Amount:    99.5,
			Category:  model.CategoryFood,
			Notes:     "with client",
			CreatedAt: time.Date(2024, 3, 10, 13, 15, 0, 0, time.Local),
		}}

		got, err := CSV(expenses)
		require.NoError(t, err)
		assert.Contains(t, got, `"Lunch ""special""","Food",99.5,"with client","2024-03-10 13:15"`)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := CSV(nil)
		assert.ErrorIs(t, err, ErrNoData)
	})
}

func TestPlainText(t *testing.T) {
	generatedAt := time.Date(2024, 6, 15, 18, 30, 45, 0, time.Local)
	snapshot := Snapshot{
		GeneratedAt: generatedAt,
		Expenses: []model.Expense{
			{Title: "Taxi", Amount: 150, Category: model.CategoryTravel,
				CreatedAt: time.Date(2024, 6, 14, 9, 0, 0, 0, time.Local)},
			{Title: "Lunch", Amount: 250, Category: model.CategoryFood,
				CreatedAt: time.Date(2024, 6, 15, 13, 0, 0, 0, time.Local)},
		},
		DailySummaries: []model.DailyExpenseSummary{
			{Date: "2024-06-14", TotalAmount: 150, ExpenseCount: 1},
			{Date: "2024-06-15", TotalAmount: 250, ExpenseCount: 1},
		},
		CategorySummaries: []model.CategoryExpenseSummary{
			{Category: model.CategoryTravel, TotalAmount: 150, Percentage: 37.5, ExpenseCount: 1},
			{Category: model.CategoryFood, TotalAmount: 250, Percentage: 62.5, ExpenseCount: 1},
		},
	}

	got, err := PlainText(snapshot)
	require.NoError(t, err)

	t.Run("header", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(got, "EXPENSE REPORT\n"))
		assert.Contains(t, got, "Generated on: 2024-06-15 18:30:45\n")
		assert.Contains(t, got, strings.Repeat("=", 50)+"\n")
	})

	t.Run("sections in order", func(t *testing.T) {
		daily := strings.Index(got, "DAILY SUMMARY (Recent Days with Expenses)")
		category := strings.Index(got, "CATEGORY SUMMARY")
		detailed := strings.Index(got, "DETAILED EXPENSES")
		require.NotEqual(t, -1, daily)
		require.NotEqual(t, -1, category)
		require.NotEqual(t, -1, detailed)
		assert.Less(t, daily, category)
		assert.Less(t, category, detailed)
	})

	t.Run("summary lines", func(t *testing.T) {
		assert.Contains(t, got, "2024-06-14: ₹150.00 (1 expenses)\n")
		assert.Contains(t, got, "2024-06-15: ₹250.00 (1 expenses)\n")
		// Percentages are whole numbers, truncated.
		assert.Contains(t, got, "Travel: ₹150.00 (37%)\n")
		assert.Contains(t, got, "Food: ₹250.00 (62%)\n")
	})

	t.Run("detail lines newest first", func(t *testing.T) {
		lunch := strings.Index(got, "Lunch | Food | ₹250.00 | 2024-06-15 13:00\n")
		taxi := strings.Index(got, "Taxi | Travel | ₹150.00 | 2024-06-14 09:00\n")
		require.NotEqual(t, -1, lunch)
		require.NotEqual(t, -1, taxi)
		assert.Less(t, lunch, taxi)
	})

	t.Run("empty snapshot", func(t *testing.T) {
		_, err := PlainText(Snapshot{GeneratedAt: generatedAt})
		assert.ErrorIs(t, err, ErrNoData)
	})
}

func TestSortNewestFirst_DoesNotMutateInput(t *testing.T) {
	expenses := []model.Expense{
		{Title: "First", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)},
		{Title: "Second", CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local)},
	}

	sorted := sortNewestFirst(expenses)
	assert.Equal(t, "Second", sorted[0].Title)
	assert.Equal(t, "First", expenses[0].Title, "input order must be preserved")
}
