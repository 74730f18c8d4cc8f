package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"moneyflow/internal/core"
	"moneyflow/internal/events"
	"moneyflow/internal/store"
)

// budgetFanOut bounds concurrent store reads while listing budgets.
const budgetFanOut = 8

// BudgetService manages per-category monthly budgets. Spent is derived from
// completed expense transactions on every read and never written back.
type BudgetService struct {
	base
}

// List returns all budgets in category id order with live spent and
// category name. A deleted category yields an empty name.
func (s *BudgetService) List(ctx context.Context) ([]core.Budget, error) {
	budgets, err := s.store.Budgets().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(budgetFanOut)
	for i := range budgets {
		i := i
		g.Go(func() error {
			b, err := s.enrich(gctx, budgets[i])
			if err != nil {
				return err
			}
			budgets[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return budgets, nil
}

func (s *BudgetService) Get(ctx context.Context, categoryID int64) (core.Budget, error) {
	b, err := s.store.Budgets().Get(ctx, categoryID)
	if err != nil {
		return core.Budget{}, err
	}
	return s.enrich(ctx, b)
}

// Create adds a budget for an existing category. A second budget for the
// same category is a conflict.
func (s *BudgetService) Create(ctx context.Context, b core.Budget) (core.Budget, error) {
	if err := b.Validate(); err != nil {
		return core.Budget{}, err
	}
	cat, err := s.store.Categories().Get(ctx, b.CategoryID)
	if err != nil {
		return core.Budget{}, err
	}
	b.CategoryName = cat.Name
	b.Spent = 0
	if err := s.store.Budgets().Insert(ctx, b); err != nil {
		return core.Budget{}, fmt.Errorf("create budget: %w", err)
	}
	s.announce(ctx, core.KindBudget, events.OpCreated, b.CategoryID)
	return s.enrich(ctx, b)
}

// Update changes only the monthly amount. Both the category and its budget
// must exist.
func (s *BudgetService) Update(ctx context.Context, categoryID int64, monthlyBudget float64) (core.Budget, error) {
	if err := (core.Budget{CategoryID: categoryID, MonthlyBudget: monthlyBudget}).Validate(); err != nil {
		return core.Budget{}, err
	}
	cat, err := s.store.Categories().Get(ctx, categoryID)
	if err != nil {
		return core.Budget{}, err
	}
	b, err := s.store.Budgets().Get(ctx, categoryID)
	if err != nil {
		return core.Budget{}, err
	}
	b.MonthlyBudget = monthlyBudget
	b.CategoryName = cat.Name
	if err := s.store.Budgets().Replace(ctx, categoryID, b); err != nil {
		return core.Budget{}, fmt.Errorf("update budget: %w", err)
	}
	s.announce(ctx, core.KindBudget, events.OpUpdated, categoryID)
	return s.enrich(ctx, b)
}

func (s *BudgetService) Delete(ctx context.Context, categoryID int64) error {
	if err := s.store.Budgets().Delete(ctx, categoryID); err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	s.announce(ctx, core.KindBudget, events.OpDeleted, categoryID)
	return nil
}

// Spent sums completed expenses recorded against categoryID.
func (s *BudgetService) Spent(ctx context.Context, categoryID int64) (float64, error) {
	spent, err := s.store.Transactions().Sum(ctx, store.Expenses(&categoryID))
	if err != nil {
		return 0, fmt.Errorf("sum spent for category %d: %w", categoryID, err)
	}
	return spent, nil
}

func (s *BudgetService) enrich(ctx context.Context, b core.Budget) (core.Budget, error) {
	spent, err := s.Spent(ctx, b.CategoryID)
	if err != nil {
		return b, err
	}
	b.Spent = spent

	cat, err := s.store.Categories().Get(ctx, b.CategoryID)
	switch {
	case err == nil:
		b.CategoryName = cat.Name
	case errors.Is(err, core.ErrNotFound):
		b.CategoryName = ""
	default:
		return b, fmt.Errorf("resolve budget category: %w", err)
	}
	return b, nil
}
