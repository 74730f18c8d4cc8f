package services

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"moneyflow/internal/core"
	"moneyflow/internal/store"
)

// DashboardService computes headline figures over all transactions. Nothing
// is cached; every call reads the store.
type DashboardService struct {
	base
}

// KPIs sums completed income and expenses and counts pending and overdue
// transactions. NetProfit floors the balance at zero.
func (s *DashboardService) KPIs(ctx context.Context) (core.KPIs, error) {
	var (
		k   core.KPIs
		txs = s.store.Transactions()
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		k.TotalIncome, err = txs.Sum(gctx, store.Incomes())
		return wrap("sum income", err)
	})
	g.Go(func() (err error) {
		k.TotalExpenses, err = txs.Sum(gctx, store.Expenses(nil))
		return wrap("sum expenses", err)
	})
	g.Go(func() (err error) {
		k.PendingTransactions, err = txs.Count(gctx, store.TransactionFilter{Status: string(core.Pending)})
		return wrap("count pending", err)
	})
	g.Go(func() (err error) {
		k.OverdueTransactions, err = txs.Count(gctx, store.TransactionFilter{Status: string(core.Overdue)})
		return wrap("count overdue", err)
	})
	if err := g.Wait(); err != nil {
		return core.KPIs{}, err
	}

	k.Balance = core.Sub(k.TotalIncome, k.TotalExpenses)
	k.NetProfit = max(k.Balance, 0)
	return k, nil
}

// Charts builds the monthly series, the expense breakdown by category and
// the accounts at or below their low-balance threshold. The series cover
// every completed transaction, so they agree with KPIs.
func (s *DashboardService) Charts(ctx context.Context) (core.Charts, error) {
	var (
		tally    = newChartTally()
		accounts []core.Account
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := s.store.Transactions().Each(gctx, store.TransactionFilter{Status: string(core.Completed)}, tally.add)
		return wrap("scan completed", err)
	})
	g.Go(func() (err error) {
		accounts, err = s.store.Accounts().List(gctx)
		return wrap("list accounts", err)
	})
	if err := g.Wait(); err != nil {
		return core.Charts{}, err
	}

	return core.Charts{
		Monthly:            tally.monthly(),
		ExpensesByCategory: tally.byCategory(),
		LowBalanceAccounts: lowBalance(accounts),
	}, nil
}

type (
	monthTally struct{ income, expenses core.Accumulator }

	categoryTally struct {
		name string
		acc  core.Accumulator
	}

	chartTally struct {
		months     map[string]*monthTally
		categories map[int64]*categoryTally
	}
)

func newChartTally() *chartTally {
	return &chartTally{months: map[string]*monthTally{}, categories: map[int64]*categoryTally{}}
}

func (c *chartTally) add(t core.Transaction) error {
	m, ok := c.months[t.Month()]
	if !ok {
		m = &monthTally{}
		c.months[t.Month()] = m
	}
	if t.Type == core.Income {
		m.income.Add(t.Amount)
		return nil
	}
	m.expenses.Add(t.Amount)

	b, ok := c.categories[t.CategoryID]
	if !ok {
		b = &categoryTally{name: t.CategoryName}
		c.categories[t.CategoryID] = b
	}
	b.acc.Add(t.Amount)
	return nil
}

func (c *chartTally) monthly() []core.MonthTotals {
	out := make([]core.MonthTotals, 0, len(c.months))
	for month, m := range c.months {
		in, ex := m.income.Float(), m.expenses.Float()
		out = append(out, core.MonthTotals{Month: month, Income: in, Expenses: ex, Net: core.Sub(in, ex)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

func (c *chartTally) byCategory() []core.CategoryAmount {
	out := make([]core.CategoryAmount, 0, len(c.categories))
	for id, b := range c.categories {
		out = append(out, core.CategoryAmount{CategoryID: id, CategoryName: b.name, Amount: b.acc.Float()})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].CategoryID < out[j].CategoryID
	})
	return out
}

func lowBalance(accounts []core.Account) []core.Account {
	out := []core.Account{}
	for _, a := range accounts {
		if a.IsLowBalance() {
			out = append(out, a)
		}
	}
	return out
}

func wrap(what string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", what, err)
}
