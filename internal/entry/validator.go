// Package entry validates candidate expenses before they reach the store.
package entry

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"flowbook/internal/model"
)

// MaxNotesLength mirrors the store's limit on the optional notes field.
const MaxNotesLength = 100

// Candidate is a raw expense as entered by the user: all fields are text and
// nothing has been normalized yet.
type Candidate struct {
	Title    string
	Amount   string
	Category string
	Notes    string
}

// ValidationError carries every rule violation found in a candidate. Rules
// are evaluated independently; nothing short-circuits.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// Validate checks all rules and returns a *ValidationError listing every
// violation, or nil when the candidate is well-formed.
func (c Candidate) Validate() error {
	var messages []string

	if strings.TrimSpace(c.Title) == "" {
		messages = append(messages, "Title is required")
	}

	if strings.TrimSpace(c.Amount) == "" {
		messages = append(messages, "Amount is required")
	} else if amount, err := strconv.ParseFloat(strings.TrimSpace(c.Amount), 64); err != nil {
		messages = append(messages, "Invalid amount format")
	} else if amount <= 0 {
		messages = append(messages, "Amount must be greater than 0")
	}

	if strings.TrimSpace(c.Category) == "" {
		messages = append(messages, "Category is required")
	} else if _, err := model.ParseCategory(strings.TrimSpace(c.Category)); err != nil {
		messages = append(messages, "Invalid category")
	}

	if utf8.RuneCountInString(c.Notes) > MaxNotesLength {
		messages = append(messages, "Notes must be 100 characters or less")
	}

	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}
	return nil
}

// Expense validates the candidate and returns the normalized record: title
// trimmed, amount parsed, category resolved, blank notes dropped. CreatedAt
// is left zero for the store to stamp.
func (c Candidate) Expense() (model.Expense, error) {
	if err := c.Validate(); err != nil {
		return model.Expense{}, err
	}

	amount, _ := strconv.ParseFloat(strings.TrimSpace(c.Amount), 64)
	category, _ := model.ParseCategory(strings.TrimSpace(c.Category))

	return model.Expense{
		Title:    strings.TrimSpace(c.Title),
		Amount:   amount,
		Category: category,
		Notes:    strings.TrimSpace(c.Notes),
	}, nil
}
