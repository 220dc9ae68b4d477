// Package model defines the core domain types for flowbook.
package model

import "time"

// DayKeyLayout is the calendar-day grouping key format. Day keys are always
// derived in local time; the storage layer and the summary computations must
// agree on this rule or day boundaries drift between the two.
const DayKeyLayout = "2006-01-02"

// Expense is the sole persisted entity: a single recorded expense.
type Expense struct {
	CreatedAt time.Time
	Title     string
	Notes     string
	Category  Category
	Amount    float64
	ID        int64
}

// HasNotes reports whether the optional notes field is set.
func (e Expense) HasNotes() bool {
	return e.Notes != ""
}

// DayKey returns the local calendar day the expense was created on.
func (e Expense) DayKey() string {
	return e.CreatedAt.Local().Format(DayKeyLayout)
}

// DayKey formats a point in time as a local calendar-day key.
func DayKey(t time.Time) string {
	return t.Local().Format(DayKeyLayout)
}

// DailyExpenseSummary aggregates the expenses of one calendar day. It is
// derived on demand and never stored.
type DailyExpenseSummary struct {
	Date         string
	Expenses     []Expense
	TotalAmount  float64
	ExpenseCount int
}

// CategoryExpenseSummary aggregates the expenses of one category across the
// whole expense set. Percentage is the category's share of the grand total,
// 0-100, unrounded.
type CategoryExpenseSummary struct {
	Category     Category
	TotalAmount  float64
	Percentage   float64
	ExpenseCount int
}
