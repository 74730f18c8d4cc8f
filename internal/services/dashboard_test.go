package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneyflow/internal/core"
	"moneyflow/internal/log"
	"moneyflow/internal/store"
	"moneyflow/internal/store/memory"
)

func seedDashboard(t *testing.T, svc *Services, txs ...core.Transaction) {
	t.Helper()
	ctx := context.Background()
	seedRentChecking(t, svc)
	_, err := svc.Categories.Create(ctx, core.Category{Name: "Salary", Type: core.Income})
	require.NoError(t, err)
	for _, tx := range txs {
		_, err := svc.Transactions.Create(ctx, tx)
		require.NoError(t, err)
	}
}

func income(date string, amount float64, status core.TxStatus) core.Transaction {
	return core.Transaction{Date: date, Type: core.Income, Amount: amount, CategoryID: 2, AccountID: 1, Status: status}
}

func expense(date string, amount float64, status core.TxStatus) core.Transaction {
	return core.Transaction{Date: date, Type: core.Expense, Amount: amount, CategoryID: 1, AccountID: 1, Status: status}
}

func TestKPIs(t *testing.T) {
	svc, _ := newTestServices(t)
	seedDashboard(t, svc,
		income("2024-12-01", 5000, core.Completed),
		income("2024-12-02", 800, core.Pending),
		expense("2024-12-03", 1200.1, core.Completed),
		expense("2024-12-04", 0.2, core.Completed),
		expense("2024-12-05", 99, core.Overdue),
		expense("2024-12-06", 15, core.Overdue),
	)

	k, err := svc.Dashboard.KPIs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, core.KPIs{
		TotalIncome:         5000,
		TotalExpenses:       1200.3,
		Balance:             3799.7,
		NetProfit:           3799.7,
		PendingTransactions: 1,
		OverdueTransactions: 2,
	}, k)
}

func TestKPIsNegativeBalanceFloorsNetProfit(t *testing.T) {
	svc, _ := newTestServices(t)
	seedDashboard(t, svc,
		income("2024-12-01", 100, core.Completed),
		expense("2024-12-02", 250, core.Completed),
	)

	k, err := svc.Dashboard.KPIs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, -150.0, k.Balance)
	assert.Equal(t, 0.0, k.NetProfit)
}

func TestKPIsEmptyStore(t *testing.T) {
	svc, _ := newTestServices(t)
	k, err := svc.Dashboard.KPIs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, core.KPIs{}, k)
}

func TestCharts(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	seedDashboard(t, svc,
		income("2024-11-01", 4000, core.Completed),
		expense("2024-11-03", 1500, core.Completed),
		income("2024-12-01", 5000, core.Completed),
		expense("2024-12-03", 1500, core.Completed),
		expense("2024-12-09", 999, core.Pending),
	)
	_, err := svc.Categories.Create(ctx, core.Category{Name: "Food", Type: core.Expense})
	require.NoError(t, err)
	food := expense("2024-12-10", 2000, core.Completed)
	food.CategoryID = 3
	_, err = svc.Transactions.Create(ctx, food)
	require.NoError(t, err)
	_, err = svc.Accounts.Create(ctx, core.Account{Name: "Credit Card", Type: core.Credit, Balance: -1250.3, LowBalanceThreshold: -1000})
	require.NoError(t, err)

	c, err := svc.Dashboard.Charts(ctx)
	require.NoError(t, err)

	assert.Equal(t, []core.MonthTotals{
		{Month: "2024-11", Income: 4000, Expenses: 1500, Net: 2500},
		{Month: "2024-12", Income: 5000, Expenses: 3500, Net: 1500},
	}, c.Monthly)

	require.Len(t, c.ExpensesByCategory, 2)
	assert.Equal(t, core.CategoryAmount{CategoryID: 1, CategoryName: "Rent", Amount: 3000}, c.ExpensesByCategory[0])
	assert.Equal(t, "Food", c.ExpensesByCategory[1].CategoryName)

	require.Len(t, c.LowBalanceAccounts, 1)
	assert.Equal(t, "Credit Card", c.LowBalanceAccounts[0].Name)
}

func TestChartsCoverEveryCompletedTransaction(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	svc := New(st, &recordingPublisher{}, log.Discard())

	n := store.MaxListSize + 5
	for i := 1; i <= n; i++ {
		require.NoError(t, st.Transactions().Insert(ctx, core.Transaction{
			ID: int64(i), Date: "2024-12-01", Type: core.Expense, Amount: 1,
			CategoryID: 1, CategoryName: "Rent", AccountID: 1, Status: core.Completed,
		}))
	}

	k, err := svc.Dashboard.KPIs(ctx)
	require.NoError(t, err)
	c, err := svc.Dashboard.Charts(ctx)
	require.NoError(t, err)

	require.Len(t, c.Monthly, 1)
	assert.Equal(t, float64(n), k.TotalExpenses)
	assert.Equal(t, k.TotalExpenses, c.Monthly[0].Expenses)
	require.Len(t, c.ExpensesByCategory, 1)
	assert.Equal(t, float64(n), c.ExpensesByCategory[0].Amount)
}
