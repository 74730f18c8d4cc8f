// Package store defines the persistence ports used by the services layer.
package store

import (
	"context"

	"moneyflow/internal/core"
)

// MaxListSize bounds every list and find result.
const MaxListSize = 1000

// Ports for outbound adapters.
type (
	// Collection is a keyed set of records of one kind.
	Collection[T any] interface {
		// List returns records ordered by key ascending.
		List(ctx context.Context) ([]T, error)
		Get(ctx context.Context, key int64) (T, error)
		// Insert fails with core.ErrConflict when the key is taken.
		Insert(ctx context.Context, v T) error
		// Replace overwrites every field of an existing record.
		Replace(ctx context.Context, key int64, v T) error
		Delete(ctx context.Context, key int64) error
		// MaxKey returns the largest key in use, or 0 when empty.
		MaxKey(ctx context.Context) (int64, error)
	}

	TransactionCollection interface {
		Collection[core.Transaction]
		// Find returns matching transactions, newest date first.
		Find(ctx context.Context, f TransactionFilter) ([]core.Transaction, error)
		Sum(ctx context.Context, f TransactionFilter) (float64, error)
		Count(ctx context.Context, f TransactionFilter) (int64, error)
		// Each calls fn for every matching transaction in no particular
		// order. Unlike Find it is not capped at MaxListSize.
		Each(ctx context.Context, f TransactionFilter, fn func(core.Transaction) error) error
	}

	Store interface {
		Categories() Collection[core.Category]
		Accounts() Collection[core.Account]
		Clients() Collection[core.Client]
		Vendors() Collection[core.Vendor]
		// Budgets are keyed by category id.
		Budgets() Collection[core.Budget]
		Transactions() TransactionCollection
		Ping(ctx context.Context) error
		Close() error
	}
)
