package model

import (
	"fmt"
	"strings"
)

// Category is one of the fixed expense categories. Values are stored in the
// database by enum name, not display name.
type Category string

const (
	// CategoryStaff covers salaries, wages and other personnel spending.
	CategoryStaff Category = "STAFF"
	// CategoryTravel covers transport and trip expenses.
	CategoryTravel Category = "TRAVEL"
	// CategoryFood covers meals and groceries.
	CategoryFood Category = "FOOD"
	// CategoryUtility covers bills and recurring services.
	CategoryUtility Category = "UTILITY"
)

type categoryInfo struct {
	displayName string
	icon        string
}

var categoryTable = map[Category]categoryInfo{
	CategoryStaff:   {displayName: "Staff", icon: "👥"},
	CategoryTravel:  {displayName: "Travel", icon: "✈️"},
	CategoryFood:    {displayName: "Food", icon: "🍽️"},
	CategoryUtility: {displayName: "Utility", icon: "⚡"},
}

// Categories returns all categories in enumeration order. Aggregations that
// iterate categories must use this order.
func Categories() []Category {
	return []Category{CategoryStaff, CategoryTravel, CategoryFood, CategoryUtility}
}

// DisplayName returns the human-readable name for the category.
func (c Category) DisplayName() string {
	return categoryTable[c].displayName
}

// Icon returns the icon glyph for the category.
func (c Category) Icon() string {
	return categoryTable[c].icon
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	_, ok := categoryTable[c]
	return ok
}

// ParseCategory resolves a category from its enum name or display name,
// ignoring case; "FOOD", "Food" and "food" all resolve to CategoryFood.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(string(c), s) || strings.EqualFold(c.DisplayName(), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}
