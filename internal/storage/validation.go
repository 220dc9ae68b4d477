// Package storage provides the data persistence layer for flowbook.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"flowbook/internal/model"
)

// MaxNotesLength is the longest notes value the store accepts.
const MaxNotesLength = 100

// Validation errors.
var (
	ErrNilContext       = errors.New("context cannot be nil")
	ErrEmptyString      = errors.New("string parameter cannot be empty")
	ErrInvalidExpense   = errors.New("invalid expense")
	ErrInvalidDayKey    = errors.New("invalid day key")
	ErrInvalidDateRange = errors.New("start date must be before end date")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateDayKey ensures a calendar-day key is a well-formed yyyy-MM-dd value.
func validateDayKey(day string) error {
	if _, err := time.ParseInLocation(model.DayKeyLayout, day, time.Local); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDayKey, day)
	}
	return nil
}

// validateExpense enforces the record invariants before anything is written.
func validateExpense(e *model.Expense) error {
	if e == nil {
		return fmt.Errorf("%w: expense is nil", ErrInvalidExpense)
	}
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("%w: missing title", ErrInvalidExpense)
	}
	if e.Amount <= 0 {
		return fmt.Errorf("%w: amount must be greater than 0", ErrInvalidExpense)
	}
	if !e.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidExpense, e.Category)
	}
	if utf8.RuneCountInString(e.Notes) > MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidExpense, MaxNotesLength)
	}
	return nil
}
