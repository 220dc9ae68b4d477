// Package export formats expense snapshots into textual report payloads.
// Both exporters operate on already-fetched data and never touch the store.
package export

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"flowbook/internal/model"
)

// ErrNoData is returned when an export is requested over an empty snapshot.
var ErrNoData = errors.New("no data to export")

// timestampLayout formats expense timestamps in both export formats.
const timestampLayout = "2006-01-02 15:04"

// Snapshot is the in-memory input to the plain-text report: the full expense
// list plus the derived summaries, all materialized at one point in time.
type Snapshot struct {
	GeneratedAt       time.Time
	Expenses          []model.Expense
	DailySummaries    []model.DailyExpenseSummary
	CategorySummaries []model.CategoryExpenseSummary
}

// PlainText renders the fixed-layout expense report: daily summary, category
// summary, then the detailed expense list sorted newest first. Amounts carry
// two decimals; percentages are truncated to whole numbers.
func PlainText(s Snapshot) (string, error) {
	if len(s.Expenses) == 0 {
		return "", ErrNoData
	}

	var b strings.Builder
	b.WriteString("EXPENSE REPORT\n")
	fmt.Fprintf(&b, "Generated on: %s\n", s.GeneratedAt.Format("2006-01-02 15:04:05"))
	b.WriteString(strings.Repeat("=", 50) + "\n")

	b.WriteString("\nDAILY SUMMARY (Recent Days with Expenses)\n")
	b.WriteString(strings.Repeat("-", 30) + "\n")
	for _, summary := range s.DailySummaries {
		fmt.Fprintf(&b, "%s: ₹%.2f (%d expenses)\n",
			summary.Date, summary.TotalAmount, summary.ExpenseCount)
	}

	b.WriteString("\nCATEGORY SUMMARY\n")
	b.WriteString(strings.Repeat("-", 30) + "\n")
	for _, summary := range s.CategorySummaries {
		fmt.Fprintf(&b, "%s: ₹%.2f (%d%%)\n",
			summary.Category.DisplayName(), summary.TotalAmount, int(summary.Percentage))
	}

	b.WriteString("\nDETAILED EXPENSES\n")
	b.WriteString(strings.Repeat("-", 30) + "\n")
	for _, e := range sortNewestFirst(s.Expenses) {
		fmt.Fprintf(&b, "%s | %s | ₹%.2f | %s\n",
			e.Title, e.Category.DisplayName(), e.Amount, e.CreatedAt.Format(timestampLayout))
	}

	return b.String(), nil
}

// CSV renders expenses as comma-separated rows, newest first, under a
// Title,Category,Amount,Notes,Date header. Text fields are quoted; the
// amount keeps its shortest decimal representation.
func CSV(expenses []model.Expense) (string, error) {
	if len(expenses) == 0 {
		return "", ErrNoData
	}

	var b strings.Builder
	b.WriteString("Title,Category,Amount,Notes,Date\n")
	for _, e := range sortNewestFirst(expenses) {
		fmt.Fprintf(&b, "%s,%s,%s,%s,%s\n",
			quote(e.Title),
			quote(e.Category.DisplayName()),
			strconv.FormatFloat(e.Amount, 'f', -1, 64),
			quote(e.Notes),
			quote(e.CreatedAt.Format(timestampLayout)))
	}

	return b.String(), nil
}

// sortNewestFirst returns a copy of expenses ordered by creation time
// descending. The input snapshot is never mutated.
func sortNewestFirst(expenses []model.Expense) []model.Expense {
	sorted := slices.Clone(expenses)
	slices.SortStableFunc(sorted, func(a, b model.Expense) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return sorted
}

// quote wraps a text field in double quotes, doubling any embedded quotes.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
