// Package seed loads the demo dataset into a store.
package seed

import (
	"context"
	"errors"
	"fmt"

	"moneyflow/internal/core"
	"moneyflow/internal/log"
	"moneyflow/internal/store"
)

// ErrNotEmpty is returned when seeding a store that already holds data
// without force.
var ErrNotEmpty = errors.New("store is not empty")

// Result counts inserted records per collection.
type Result struct {
	Categories   int
	Accounts     int
	Clients      int
	Vendors      int
	Budgets      int
	Transactions int
}

func (r Result) Total() int {
	return r.Categories + r.Accounts + r.Clients + r.Vendors + r.Budgets + r.Transactions
}

type Loader struct {
	store  store.Store
	logger *log.Logger
}

func NewLoader(st store.Store, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Discard()
	}
	return &Loader{store: st, logger: logger.WithComponent(log.ComponentSeed)}
}

// Load inserts the demo dataset. Without force it refuses to touch a store
// that already has records; with force every collection is emptied first.
// Records keep their fixed ids so the snapshot names stay consistent.
func (l *Loader) Load(ctx context.Context, force bool) (Result, error) {
	empty, err := l.isEmpty(ctx)
	if err != nil {
		return Result{}, err
	}
	if !empty {
		if !force {
			return Result{}, ErrNotEmpty
		}
		l.logger.WarnContext(ctx, "Clearing existing data before seeding", log.FieldOperation, log.OpSeed)
		if err := l.clear(ctx); err != nil {
			return Result{}, err
		}
	}

	var res Result
	steps := []struct {
		name string
		run  func() (int, error)
	}{
		{"categories", func() (int, error) { return insertAll(ctx, l.store.Categories(), categories) }},
		{"accounts", func() (int, error) { return insertAll(ctx, l.store.Accounts(), accounts) }},
		{"clients", func() (int, error) { return insertAll(ctx, l.store.Clients(), clients) }},
		{"vendors", func() (int, error) { return insertAll(ctx, l.store.Vendors(), vendors) }},
		{"budgets", func() (int, error) { return insertAll(ctx, l.store.Budgets(), budgets) }},
		{"transactions", func() (int, error) { return insertAll[core.Transaction](ctx, l.store.Transactions(), transactions) }},
	}
	counts := []*int{&res.Categories, &res.Accounts, &res.Clients, &res.Vendors, &res.Budgets, &res.Transactions}
	for i, step := range steps {
		n, err := step.run()
		if err != nil {
			return res, fmt.Errorf("seed %s: %w", step.name, err)
		}
		*counts[i] = n
		l.logger.InfoContext(ctx, "Seeded collection", log.FieldKind, step.name, log.FieldCount, n)
	}

	l.logger.InfoContext(ctx, "Seeding complete", log.FieldOperation, log.OpSeed, log.FieldCount, res.Total())
	return res, nil
}

func insertAll[T any](ctx context.Context, coll store.Collection[T], items []T) (int, error) {
	for i, item := range items {
		if err := coll.Insert(ctx, item); err != nil {
			return i, err
		}
	}
	return len(items), nil
}

func (l *Loader) isEmpty(ctx context.Context) (bool, error) {
	for _, maxKey := range []func(context.Context) (int64, error){
		l.store.Categories().MaxKey,
		l.store.Accounts().MaxKey,
		l.store.Clients().MaxKey,
		l.store.Vendors().MaxKey,
		l.store.Budgets().MaxKey,
		l.store.Transactions().MaxKey,
	} {
		k, err := maxKey(ctx)
		if err != nil {
			return false, fmt.Errorf("check store contents: %w", err)
		}
		if k != 0 {
			return false, nil
		}
	}
	return true, nil
}

func (l *Loader) clear(ctx context.Context) error {
	return errors.Join(
		clearAll[core.Transaction](ctx, l.store.Transactions(), func(t core.Transaction) int64 { return t.ID }),
		clearAll(ctx, l.store.Budgets(), func(b core.Budget) int64 { return b.CategoryID }),
		clearAll(ctx, l.store.Vendors(), func(v core.Vendor) int64 { return v.ID }),
		clearAll(ctx, l.store.Clients(), func(c core.Client) int64 { return c.ID }),
		clearAll(ctx, l.store.Accounts(), func(a core.Account) int64 { return a.ID }),
		clearAll(ctx, l.store.Categories(), func(c core.Category) int64 { return c.ID }),
	)
}

// clearAll deletes page by page since List is capped.
func clearAll[T any](ctx context.Context, coll store.Collection[T], key func(T) int64) error {
	for {
		items, err := coll.List(ctx)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for _, item := range items {
			if err := coll.Delete(ctx, key(item)); err != nil && !errors.Is(err, core.ErrNotFound) {
				return err
			}
		}
	}
}
