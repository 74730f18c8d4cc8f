// Package memory is an in-process store used by tests and DATA_BACKEND=memory.
package memory

import (
	"context"
	"sort"
	"sync"

	"moneyflow/internal/core"
	"moneyflow/internal/store"
)

type Store struct {
	categories   *collection[core.Category]
	accounts     *collection[core.Account]
	clients      *collection[core.Client]
	vendors      *collection[core.Vendor]
	budgets      *collection[core.Budget]
	transactions *transactions
}

func New() *Store {
	return &Store{
		categories:   newCollection(core.KindCategory, func(v core.Category) int64 { return v.ID }),
		accounts:     newCollection(core.KindAccount, func(v core.Account) int64 { return v.ID }),
		clients:      newCollection(core.KindClient, func(v core.Client) int64 { return v.ID }),
		vendors:      newCollection(core.KindVendor, func(v core.Vendor) int64 { return v.ID }),
		budgets:      newCollection(core.KindBudget, func(v core.Budget) int64 { return v.CategoryID }),
		transactions: &transactions{newCollection(core.KindTransaction, func(v core.Transaction) int64 { return v.ID })},
	}
}

func (s *Store) Categories() store.Collection[core.Category] { return s.categories }
func (s *Store) Accounts() store.Collection[core.Account] { return s.accounts }
func (s *Store) Clients() store.Collection[core.Client] { return s.clients }
func (s *Store) Vendors() store.Collection[core.Vendor] { return s.vendors }
func (s *Store) Budgets() store.Collection[core.Budget] { return s.budgets }
func (s *Store) Transactions() store.TransactionCollection { return s.transactions }
func (s *Store) Ping(context.Context) error { return nil }
func (s *Store) Close() error { return nil }

type collection[T any] struct {
	mu    sync.RWMutex
	kind  core.Kind
	key   func(T) int64
	items map[int64]T
}

func newCollection[T any](kind core.Kind, key func(T) int64) *collection[T] {
	return &collection[T]{kind: kind, key: key, items: map[int64]T{}}
}

func (c *collection[T]) List(_ context.Context) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]int64, 0, len(c.items))
	for k := range c.items {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	if len(keys) > store.MaxListSize {
		keys = keys[:store.MaxListSize]
	}
	out := make([]T, len(keys))
	for i, k := range keys {
		out[i] = c.items[k]
	}
	return out, nil
}

func (c *collection[T]) Get(_ context.Context, key int64) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[key]
	if !ok {
		return v, core.NotFound(c.kind, key)
	}
	return v, nil
}

func (c *collection[T]) Insert(_ context.Context, v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := c.key(v)
	if _, ok := c.items[k]; ok {
		return core.Conflict(c.kind, k)
	}
	c.items[k] = v
	return nil
}

func (c *collection[T]) Replace(_ context.Context, key int64, v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[key]; !ok {
		return core.NotFound(c.kind, key)
	}
	c.items[key] = v
	return nil
}

func (c *collection[T]) Delete(_ context.Context, key int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[key]; !ok {
		return core.NotFound(c.kind, key)
	}
	delete(c.items, key)
	return nil
}

func (c *collection[T]) MaxKey(_ context.Context) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var max int64
	for k := range c.items {
		if k > max {
			max = k
		}
	}
	return max, nil
}

type transactions struct {
	*collection[core.Transaction]
}

func (t *transactions) Find(_ context.Context, f store.TransactionFilter) ([]core.Transaction, error) {
	out := t.matching(f)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].ID > out[j].ID
	})
	if len(out) > store.MaxListSize {
		out = out[:store.MaxListSize]
	}
	return out, nil
}

func (t *transactions) Sum(_ context.Context, f store.TransactionFilter) (float64, error) {
	var acc core.Accumulator
	for _, tx := range t.matching(f) {
		acc.Add(tx.Amount)
	}
	return acc.Float(), nil
}

func (t *transactions) Count(_ context.Context, f store.TransactionFilter) (int64, error) {
	return int64(len(t.matching(f))), nil
}

func (t *transactions) Each(_ context.Context, f store.TransactionFilter, fn func(core.Transaction) error) error {
	for _, tx := range t.matching(f) {
		if err := fn(tx); err != nil {
			return err
		}
	}
	return nil
}

func (t *transactions) matching(f store.TransactionFilter) []core.Transaction {
	f = f.Normalize()
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := []core.Transaction{}
	for _, tx := range t.items {
		if f.Matches(tx) {
			out = append(out, tx)
		}
	}
	return out
}
