package repository

import (
	"time"

	"flowbook/internal/model"
)

// summaryWindowDays is the size of the trailing daily-summary window.
const summaryWindowDays = 7

// dailySummaries groups expenses into per-day summaries for the trailing
// window ending at now, oldest day first. Days with no expenses are dropped.
// Day membership uses the local calendar-day rule from model.DayKey, the same
// rule the store's day queries apply.
func dailySummaries(expenses []model.Expense, now time.Time) []model.DailyExpenseSummary {
	summaries := make([]model.DailyExpenseSummary, 0, summaryWindowDays)

	for i := summaryWindowDays - 1; i >= 0; i-- {
		day := model.DayKey(now.AddDate(0, 0, -i))

		var dayExpenses []model.Expense
		var total float64
		for _, e := range expenses {
			if e.DayKey() == day {
				dayExpenses = append(dayExpenses, e)
				total += e.Amount
			}
		}
		if len(dayExpenses) == 0 {
			continue
		}

		summaries = append(summaries, model.DailyExpenseSummary{
			Date:         day,
			TotalAmount:  total,
			ExpenseCount: len(dayExpenses),
			Expenses:     dayExpenses,
		})
	}

	return summaries
}

// categorySummaries computes per-category totals and percentage shares of the
// grand total across all given expenses. Categories with a zero total are
// dropped; the rest keep enumeration order.
func categorySummaries(expenses []model.Expense) []model.CategoryExpenseSummary {
	var grandTotal float64
	for _, e := range expenses {
		grandTotal += e.Amount
	}

	summaries := make([]model.CategoryExpenseSummary, 0, len(model.Categories()))
	for _, category := range model.Categories() {
		var total float64
		count := 0
		for _, e := range expenses {
			if e.Category == category {
				total += e.Amount
				count++
			}
		}
		if total == 0 {
			continue
		}

		percentage := 0.0
		if grandTotal > 0 {
			percentage = total / grandTotal * 100
		}

		summaries = append(summaries, model.CategoryExpenseSummary{
			Category:     category,
			TotalAmount:  total,
			ExpenseCount: count,
			Percentage:   percentage,
		})
	}

	return summaries
}
