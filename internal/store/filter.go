package store

import (
	"strings"

	"moneyflow/internal/core"
)

// FilterAll is accepted in place of an empty type or status.
const FilterAll = "all"

// TransactionFilter narrows a transaction query. Zero values match everything.
type TransactionFilter struct {
	Type       string
	Status     string
	Search     string
	CategoryID *int64
}

// Normalize folds "all" into the empty value and trims the search term.
func (f TransactionFilter) Normalize() TransactionFilter {
	if strings.EqualFold(f.Type, FilterAll) {
		f.Type = ""
	}
	if strings.EqualFold(f.Status, FilterAll) {
		f.Status = ""
	}
	f.Search = strings.TrimSpace(f.Search)
	return f
}

// Matches evaluates the filter in memory. Search is a case-insensitive
// substring match over category name, notes and client/vendor name.
func (f TransactionFilter) Matches(t core.Transaction) bool {
	f = f.Normalize()
	if f.Type != "" && string(t.Type) != f.Type {
		return false
	}
	if f.Status != "" && string(t.Status) != f.Status {
		return false
	}
	if f.CategoryID != nil && t.CategoryID != *f.CategoryID {
		return false
	}
	if f.Search == "" {
		return true
	}
	needle := strings.ToLower(f.Search)
	for _, hay := range []string{t.CategoryName, t.Notes, t.ClientVendorName} {
		if strings.Contains(strings.ToLower(hay), needle) {
			return true
		}
	}
	return false
}

// Expenses is the filter for completed expenses, optionally of one category.
func Expenses(categoryID *int64) TransactionFilter {
	return TransactionFilter{Type: string(core.Expense), Status: string(core.Completed), CategoryID: categoryID}
}

// Incomes is the filter for completed income.
func Incomes() TransactionFilter {
	return TransactionFilter{Type: string(core.Income), Status: string(core.Completed)}
}
