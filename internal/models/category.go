package models

import "regexp"

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category is a named income/expense tag used to classify transactions and
// budget goals. Icon and Color are optional display hints; Color, when set,
// is an HSL triple like "hsl(30, 80%, 60%)".
type Category struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Type  CategoryType `json:"type"`
	Icon  string       `json:"icon,omitempty"`
	Color string       `json:"color,omitempty"`
}

var hslColorRegex = regexp.MustCompile(`^hsl\(\s*\d{1,3},\s*\d{1,3}%,\s*\d{1,3}%\s*\)$`)

// ValidHSLColor reports whether s is a textual HSL triple.
func ValidHSLColor(s string) bool {
	return hslColorRegex.MatchString(s)
}
