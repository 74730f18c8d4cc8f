package core

// KPIs are the dashboard headline figures.
type KPIs struct {
	TotalIncome         float64 `json:"totalIncome"`
	TotalExpenses       float64 `json:"totalExpenses"`
	Balance             float64 `json:"balance"`
	NetProfit           float64 `json:"netProfit"`
	PendingTransactions int64   `json:"pendingTransactions"`
	OverdueTransactions int64   `json:"overdueTransactions"`
}

// MonthTotals aggregates completed transactions for one YYYY-MM month.
type MonthTotals struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
}

// CategoryAmount is a completed-expense total for one category.
type CategoryAmount struct {
	CategoryID   int64   `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	Amount       float64 `json:"amount"`
}

// Charts holds the series rendered by the dashboard graphs.
type Charts struct {
	Monthly            []MonthTotals    `json:"monthly"`
	ExpensesByCategory []CategoryAmount `json:"expensesByCategory"`
	LowBalanceAccounts []Account        `json:"lowBalanceAccounts"`
}
