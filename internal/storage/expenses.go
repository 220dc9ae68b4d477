package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"flowbook/internal/common"
	"flowbook/internal/model"
)

const expenseColumns = "id, title, amount, category, notes, created_at"

// Insert persists a new expense and returns its assigned id. CreatedAt
// defaults to the current time when unset. The expense's ID and CreatedAt
// fields are updated in place.
func (s *SQLiteStore) Insert(ctx context.Context, e *model.Expense) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateExpense(e); err != nil {
		return 0, err
	}

	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (title, amount, category, notes, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, e.Title, e.Amount, string(e.Category), notesValue(e.Notes), e.CreatedAt.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to insert expense: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted expense id: %w", err)
	}
	e.ID = id

	s.notifier.broadcast()
	return id, nil
}

// Update replaces the mutable fields of the stored record matching the
// expense's id. CreatedAt is immutable and never touched. Returns
// common.ErrNotFound when no such record exists.
func (s *SQLiteStore) Update(ctx context.Context, e model.Expense) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateExpense(&e); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE expenses
		SET title = ?, amount = ?, category = ?, notes = ?
		WHERE id = ?
	`, e.Title, e.Amount, string(e.Category), notesValue(e.Notes), e.ID)
	if err != nil {
		return fmt.Errorf("failed to update expense %d: %w", e.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("expense %d: %w", e.ID, common.ErrNotFound)
	}

	s.notifier.broadcast()
	return nil
}

// DeleteByID removes the record with the given id. Deleting a nonexistent id
// is a no-op: no error, and no change signal to subscribers.
func (s *SQLiteStore) DeleteByID(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected > 0 {
		s.notifier.broadcast()
	}
	return nil
}

// Delete removes the given expense record by id.
func (s *SQLiteStore) Delete(ctx context.Context, e model.Expense) error {
	return s.DeleteByID(ctx, e.ID)
}

// GetByID retrieves a single expense. Returns common.ErrNotFound when the id
// does not exist.
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (*model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses
		WHERE id = ?
	`, id)

	e, err := scanExpense(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("expense %d: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense %d: %w", id, err)
	}
	return e, nil
}

// All returns every expense, newest first.
func (s *SQLiteStore) All(ctx context.Context) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanExpenses(rows)
}

// ByDate returns the expenses created on the given local calendar day
// (yyyy-MM-dd), newest first.
func (s *SQLiteStore) ByDate(ctx context.Context, day string) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	start, end, err := dayBounds(day)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses
		WHERE created_at >= ? AND created_at < ?
		ORDER BY created_at DESC
	`, start.UnixMilli(), end.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses for %s: %w", day, err)
	}
	defer func() { _ = rows.Close() }()

	return scanExpenses(rows)
}

// ByCategory returns the expenses in the given category, newest first.
func (s *SQLiteStore) ByCategory(ctx context.Context, category model.Category) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidExpense, category)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses
		WHERE category = ?
		ORDER BY created_at DESC
	`, string(category))
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses for category %s: %w", category, err)
	}
	defer func() { _ = rows.Close() }()

	return scanExpenses(rows)
}

// ByDateRange returns the expenses created within [start, end] inclusive,
// newest first.
func (s *SQLiteStore) ByDateRange(ctx context.Context, start, end time.Time) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end %v is before start %v", ErrInvalidDateRange, end, start)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses
		WHERE created_at >= ? AND created_at <= ?
		ORDER BY created_at DESC
	`, start.UnixMilli(), end.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses by date range: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanExpenses(rows)
}

// Today returns the expenses created on the current local day, newest first.
func (s *SQLiteStore) Today(ctx context.Context) ([]model.Expense, error) {
	return s.ByDate(ctx, model.DayKey(time.Now()))
}

// TotalForDay returns the summed amount for a local calendar day, 0 when the
// day has no expenses.
func (s *SQLiteStore) TotalForDay(ctx context.Context, day string) (float64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	start, end, err := dayBounds(day)
	if err != nil {
		return 0, err
	}

	var total float64
	err = s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE created_at >= ? AND created_at < ?
	`, start.UnixMilli(), end.UnixMilli()).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to get total for %s: %w", day, err)
	}
	return total, nil
}

// CountForDay returns the number of expenses on a local calendar day.
func (s *SQLiteStore) CountForDay(ctx context.Context, day string) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	start, end, err := dayBounds(day)
	if err != nil {
		return 0, err
	}

	var count int
	err = s.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM expenses
		WHERE created_at >= ? AND created_at < ?
	`, start.UnixMilli(), end.UnixMilli()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get count for %s: %w", day, err)
	}
	return count, nil
}

// TodayTotal returns the summed amount for the current local day.
func (s *SQLiteStore) TodayTotal(ctx context.Context) (float64, error) {
	return s.TotalForDay(ctx, model.DayKey(time.Now()))
}

// TodayCount returns the number of expenses on the current local day.
func (s *SQLiteStore) TodayCount(ctx context.Context) (int, error) {
	return s.CountForDay(ctx, model.DayKey(time.Now()))
}

// dayBounds converts a yyyy-MM-dd day key into its local-time [start, end)
// instant pair. This is the single day-boundary rule shared with the
// repository's summary grouping.
func dayBounds(day string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(model.DayKeyLayout, day, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDayKey, day)
	}
	return start, start.AddDate(0, 0, 1), nil
}

// notesValue maps an empty notes string to NULL so the absent case stays
// distinguishable in the schema.
func notesValue(notes string) sql.NullString {
	return sql.NullString{String: notes, Valid: notes != ""}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanExpense(row scanner) (*model.Expense, error) {
	var e model.Expense
	var category string
	var notes sql.NullString
	var createdAt int64

	if err := row.Scan(&e.ID, &e.Title, &e.Amount, &category, &notes, &createdAt); err != nil {
		return nil, err
	}

	e.Category = model.Category(category)
	if notes.Valid {
		e.Notes = notes.String
	}
	e.CreatedAt = time.UnixMilli(createdAt).Local()
	return &e, nil
}

func scanExpenses(rows *sql.Rows) ([]model.Expense, error) {
	var expenses []model.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, *e)
	}
	return expenses, rows.Err()
}
