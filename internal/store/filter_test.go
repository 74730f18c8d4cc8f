package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"moneyflow/internal/core"
)

func TestFilterMatches(t *testing.T) {
	tx := core.Transaction{
		Type:             core.Expense,
		Status:           core.Completed,
		CategoryID:       6,
		CategoryName:     "Rent",
		Notes:            "Monthly office rent",
		ClientVendorName: "Office Supplies Co",
	}
	six, seven := int64(6), int64(7)

	cases := []struct {
		name string
		f    TransactionFilter
		want bool
	}{
		{"empty", TransactionFilter{}, true},
		{"all keyword", TransactionFilter{Type: "all", Status: "ALL"}, true},
		{"type match", TransactionFilter{Type: "expense"}, true},
		{"type mismatch", TransactionFilter{Type: "income"}, false},
		{"status mismatch", TransactionFilter{Status: "pending"}, false},
		{"category match", TransactionFilter{CategoryID: &six}, true},
		{"category mismatch", TransactionFilter{CategoryID: &seven}, false},
		{"search category name", TransactionFilter{Search: "rEnT"}, true},
		{"search notes", TransactionFilter{Search: "office"}, true},
		{"search vendor", TransactionFilter{Search: "supplies"}, true},
		{"search miss", TransactionFilter{Search: "salary"}, false},
		{"search regex chars are literal", TransactionFilter{Search: "r.nt"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.f.Matches(tx))
		})
	}
}
