package core

import (
	"math"
	"strings"
	"time"
)

// DateLayout is the wire format of Transaction.Date.
const DateLayout = "2006-01-02"

const (
	Income  TxType = "income"
	Expense TxType = "expense"

	Completed TxStatus = "completed"
	Pending   TxStatus = "pending"
	Overdue   TxStatus = "overdue"

	Checking AccountType = "checking"
	Savings  AccountType = "savings"
	Credit   AccountType = "credit"
)

type (
	TxType      string
	TxStatus    string
	AccountType string

	Category struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Type  TxType `json:"type"`
		Color string `json:"color"`
	}

	Account struct {
		ID                  int64       `json:"id"`
		Name                string      `json:"name"`
		Type                AccountType `json:"type"`
		Balance             float64     `json:"balance"`
		LowBalanceThreshold float64     `json:"lowBalanceThreshold"`
	}

	Client struct {
		ID           int64  `json:"id"`
		Name         string `json:"name"`
		Email        string `json:"email"`
		PaymentTerms string `json:"paymentTerms"`
	}

	Vendor struct {
		ID              int64  `json:"id"`
		Name            string `json:"name"`
		Email           string `json:"email"`
		DefaultCategory string `json:"defaultCategory"`
	}

	// Transaction carries snapshots of the referenced names taken at its
	// last write. Renaming a category later does not touch old records.
	Transaction struct {
		ID               int64    `json:"id"`
		Date             string   `json:"date"`
		Type             TxType   `json:"type"`
		Amount           float64  `json:"amount"`
		CategoryID       int64    `json:"categoryId"`
		CategoryName     string   `json:"categoryName"`
		AccountID        int64    `json:"accountId"`
		AccountName      string   `json:"accountName"`
		ClientVendorID   *int64   `json:"clientVendorId"`
		ClientVendorName string   `json:"clientVendorName"`
		Status           TxStatus `json:"status"`
		Notes            string   `json:"notes"`
		Recurring        bool     `json:"recurring"`
	}

	// Budget is keyed by CategoryID. Spent is derived on read and never stored.
	Budget struct {
		CategoryID    int64   `json:"categoryId"`
		CategoryName  string  `json:"categoryName"`
		MonthlyBudget float64 `json:"monthlyBudget"`
		Spent         float64 `json:"spent"`
	}
)

func (t TxType) Valid() bool {
	return t == Income || t == Expense
}

func (s TxStatus) Valid() bool {
	switch s {
	case Completed, Pending, Overdue:
		return true
	}
	return false
}

func (a AccountType) Valid() bool {
	switch a {
	case Checking, Savings, Credit:
		return true
	}
	return false
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return Invalid("name", "is required")
	}
	if !c.Type.Valid() {
		return Invalid("type", "must be income or expense")
	}
	return nil
}

func (a Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return Invalid("name", "is required")
	}
	if !a.Type.Valid() {
		return Invalid("type", "must be checking, savings or credit")
	}
	if !finite(a.Balance) {
		return Invalid("balance", "must be a finite number")
	}
	if !finite(a.LowBalanceThreshold) {
		return Invalid("lowBalanceThreshold", "must be a finite number")
	}
	return nil
}

func (c Client) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return Invalid("name", "is required")
	}
	return nil
}

func (v Vendor) Validate() error {
	if strings.TrimSpace(v.Name) == "" {
		return Invalid("name", "is required")
	}
	return nil
}

// Validate checks the caller-supplied fields. The denormalized names are
// filled in by the services layer and are not checked here.
func (t Transaction) Validate() error {
	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return Invalid("date", "must be an ISO date (YYYY-MM-DD)")
	}
	if !t.Type.Valid() {
		return Invalid("type", "must be income or expense")
	}
	if !finite(t.Amount) || t.Amount <= 0 {
		return Invalid("amount", "must be a positive number")
	}
	if t.CategoryID <= 0 {
		return Invalid("categoryId", "is required")
	}
	if t.AccountID <= 0 {
		return Invalid("accountId", "is required")
	}
	if !t.Status.Valid() {
		return Invalid("status", "must be completed, pending or overdue")
	}
	return nil
}

// HasClientVendor reports whether the transaction references a client or
// vendor. A zero id counts as no reference.
func (t Transaction) HasClientVendor() bool {
	return t.ClientVendorID != nil && *t.ClientVendorID != 0
}

// Month returns the YYYY-MM prefix of the transaction date.
func (t Transaction) Month() string {
	if len(t.Date) < 7 {
		return t.Date
	}
	return t.Date[:7]
}

func (b Budget) Validate() error {
	if b.CategoryID <= 0 {
		return Invalid("categoryId", "is required")
	}
	if !finite(b.MonthlyBudget) || b.MonthlyBudget < 0 {
		return Invalid("monthlyBudget", "must be a non-negative number")
	}
	return nil
}

// IsLowBalance reports whether the account sits at or below its threshold.
func (a Account) IsLowBalance() bool {
	return a.Balance <= a.LowBalanceThreshold
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
