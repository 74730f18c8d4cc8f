package sqlite

import (
	"database/sql"

	"moneyflow/internal/core"
)

func categoriesTable(db *sql.DB) *table[core.Category] {
	return &table[core.Category]{
		db:      db,
		kind:    core.KindCategory,
		name:    "categories",
		columns: []string{"id", "name", "type", "color"},
		scan: func(s scanner) (core.Category, error) {
			var c core.Category
			err := s.Scan(&c.ID, &c.Name, &c.Type, &c.Color)
			return c, err
		},
		values: func(c core.Category) []any {
			return []any{c.ID, c.Name, string(c.Type), c.Color}
		},
	}
}

func accountsTable(db *sql.DB) *table[core.Account] {
	return &table[core.Account]{
		db:      db,
		kind:    core.KindAccount,
		name:    "accounts",
		columns: []string{"id", "name", "type", "balance", "low_balance_threshold"},
		scan: func(s scanner) (core.Account, error) {
			var a core.Account
			err := s.Scan(&a.ID, &a.Name, &a.Type, &a.Balance, &a.LowBalanceThreshold)
			return a, err
		},
		values: func(a core.Account) []any {
			return []any{a.ID, a.Name, string(a.Type), a.Balance, a.LowBalanceThreshold}
		},
	}
}

func clientsTable(db *sql.DB) *table[core.Client] {
	return &table[core.Client]{
		db:      db,
		kind:    core.KindClient,
		name:    "clients",
		columns: []string{"id", "name", "email", "payment_terms"},
		scan: func(s scanner) (core.Client, error) {
			var c core.Client
			err := s.Scan(&c.ID, &c.Name, &c.Email, &c.PaymentTerms)
			return c, err
		},
		values: func(c core.Client) []any {
			return []any{c.ID, c.Name, c.Email, c.PaymentTerms}
		},
	}
}

func vendorsTable(db *sql.DB) *table[core.Vendor] {
	return &table[core.Vendor]{
		db:      db,
		kind:    core.KindVendor,
		name:    "vendors",
		columns: []string{"id", "name", "email", "default_category"},
		scan: func(s scanner) (core.Vendor, error) {
			var v core.Vendor
			err := s.Scan(&v.ID, &v.Name, &v.Email, &v.DefaultCategory)
			return v, err
		},
		values: func(v core.Vendor) []any {
			return []any{v.ID, v.Name, v.Email, v.DefaultCategory}
		},
	}
}

// Spent is derived on read, so it has no column.
func budgetsTable(db *sql.DB) *table[core.Budget] {
	return &table[core.Budget]{
		db:      db,
		kind:    core.KindBudget,
		name:    "budgets",
		columns: []string{"category_id", "category_name", "monthly_budget"},
		scan: func(s scanner) (core.Budget, error) {
			var b core.Budget
			err := s.Scan(&b.CategoryID, &b.CategoryName, &b.MonthlyBudget)
			return b, err
		},
		values: func(b core.Budget) []any {
			return []any{b.CategoryID, b.CategoryName, b.MonthlyBudget}
		},
	}
}

var transactionColumns = []string{
	"id", "date", "type", "amount",
	"category_id", "category_name", "account_id", "account_name",
	"client_vendor_id", "client_vendor_name", "status", "notes", "recurring",
}

func transactionsTable(db *sql.DB) *table[core.Transaction] {
	return &table[core.Transaction]{
		db:      db,
		kind:    core.KindTransaction,
		name:    "transactions",
		columns: transactionColumns,
		scan: func(s scanner) (core.Transaction, error) {
			var (
				t  core.Transaction
				cv sql.NullInt64
			)
			err := s.Scan(&t.ID, &t.Date, &t.Type, &t.Amount,
				&t.CategoryID, &t.CategoryName, &t.AccountID, &t.AccountName,
				&cv, &t.ClientVendorName, &t.Status, &t.Notes, &t.Recurring)
			if cv.Valid {
				id := cv.Int64
				t.ClientVendorID = &id
			}
			return t, err
		},
		values: func(t core.Transaction) []any {
			var cv sql.NullInt64
			if t.ClientVendorID != nil {
				cv = sql.NullInt64{Int64: *t.ClientVendorID, Valid: true}
			}
			return []any{t.ID, t.Date, string(t.Type), t.Amount,
				t.CategoryID, t.CategoryName, t.AccountID, t.AccountName,
				cv, t.ClientVendorName, string(t.Status), t.Notes, t.Recurring}
		},
	}
}
