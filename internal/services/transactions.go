package services

import (
	"context"
	"fmt"
	"strings"

	"moneyflow/internal/core"
	"moneyflow/internal/events"
	"moneyflow/internal/store"
)

type TransactionService struct {
	base
	resolver *Resolver
}

func (s *TransactionService) List(ctx context.Context, f store.TransactionFilter) ([]core.Transaction, error) {
	txs, err := s.store.Transactions().Find(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

func (s *TransactionService) Get(ctx context.Context, id int64) (core.Transaction, error) {
	return s.store.Transactions().Get(ctx, id)
}

// Create validates t, stamps the referenced names and stores it under the
// next free id.
func (s *TransactionService) Create(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	t, err := s.prepare(ctx, t)
	if err != nil {
		return core.Transaction{}, err
	}
	id, err := NextID(ctx, s.store.Transactions())
	if err != nil {
		return core.Transaction{}, err
	}
	t.ID = id
	if err := s.store.Transactions().Insert(ctx, t); err != nil {
		return core.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}
	s.announce(ctx, core.KindTransaction, events.OpCreated, id)
	return t, nil
}

// Update re-resolves names before replacing, so a missing category or
// account is reported ahead of a missing transaction.
func (s *TransactionService) Update(ctx context.Context, id int64, t core.Transaction) (core.Transaction, error) {
	t, err := s.prepare(ctx, t)
	if err != nil {
		return core.Transaction{}, err
	}
	t.ID = id
	if err := s.store.Transactions().Replace(ctx, id, t); err != nil {
		return core.Transaction{}, fmt.Errorf("update transaction: %w", err)
	}
	s.announce(ctx, core.KindTransaction, events.OpUpdated, id)
	return t, nil
}

func (s *TransactionService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Transactions().Delete(ctx, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	s.announce(ctx, core.KindTransaction, events.OpDeleted, id)
	return nil
}

func (s *TransactionService) prepare(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	t.Date = strings.TrimSpace(t.Date)
	if t.Status == "" {
		t.Status = core.Completed
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	if !t.HasClientVendor() {
		t.ClientVendorID = nil
	}
	names, err := s.resolver.Resolve(ctx, t.CategoryID, t.AccountID, t.ClientVendorID)
	if err != nil {
		return t, err
	}
	t.CategoryName = names.Category
	t.AccountName = names.Account
	t.ClientVendorName = names.ClientVendor
	return t, nil
}
