package seed

import "moneyflow/internal/core"

// Demo dataset. Transaction name fields are stored as given, the same way
// a snapshot taken at write time would be.

func cvID(id int64) *int64 { return &id }

var categories = []core.Category{
	{ID: 1, Name: "Salary", Type: core.Income, Color: "#10b981"},
	{ID: 2, Name: "Freelance", Type: core.Income, Color: "#059669"},
	{ID: 3, Name: "Investments", Type: core.Income, Color: "#047857"},
	{ID: 4, Name: "Business", Type: core.Income, Color: "#065f46"},
	{ID: 5, Name: "Other Income", Type: core.Income, Color: "#064e3b"},
	{ID: 6, Name: "Rent", Type: core.Expense, Color: "#ef4444"},
	{ID: 7, Name: "Food", Type: core.Expense, Color: "#dc2626"},
	{ID: 8, Name: "Utilities", Type: core.Expense, Color: "#b91c1c"},
	{ID: 9, Name: "Travel", Type: core.Expense, Color: "#991b1b"},
	{ID: 10, Name: "Subscriptions", Type: core.Expense, Color: "#7f1d1d"},
	{ID: 11, Name: "Healthcare", Type: core.Expense, Color: "#f97316"},
	{ID: 12, Name: "Entertainment", Type: core.Expense, Color: "#ea580c"},
	{ID: 13, Name: "Shopping", Type: core.Expense, Color: "#c2410c"},
}

var accounts = []core.Account{
	{ID: 1, Name: "Main Checking", Type: core.Checking, Balance: 5420.5, LowBalanceThreshold: 500},
	{ID: 2, Name: "Savings Account", Type: core.Savings, Balance: 12800.75, LowBalanceThreshold: 1000},
	{ID: 3, Name: "Credit Card", Type: core.Credit, Balance: -1250.3, LowBalanceThreshold: -5000},
	{ID: 4, Name: "Business Account", Type: core.Checking, Balance: 8960.25, LowBalanceThreshold: 1000},
}

var clients = []core.Client{
	{ID: 1, Name: "ABC Corporation", Email: "billing@abc.com", PaymentTerms: "NET 30"},
	{ID: 2, Name: "XYZ Industries", Email: "payments@xyz.com", PaymentTerms: "NET 15"},
	{ID: 3, Name: "Tech Solutions Ltd", Email: "finance@techsol.com", PaymentTerms: "Immediate"},
	{ID: 4, Name: "Global Ventures", Email: "accounts@global.com", PaymentTerms: "NET 45"},
	{ID: 5, Name: "StartUp Inc", Email: "billing@startup.com", PaymentTerms: "NET 30"},
}

var vendors = []core.Vendor{
	{ID: 1, Name: "Office Supplies Co", Email: "sales@office.com", DefaultCategory: "Business Expenses"},
	{ID: 2, Name: "Internet Provider", Email: "billing@internet.com", DefaultCategory: "Utilities"},
	{ID: 3, Name: "Software Subscriptions", Email: "support@software.com", DefaultCategory: "Subscriptions"},
	{ID: 4, Name: "Local Restaurant", Email: "orders@restaurant.com", DefaultCategory: "Food"},
	{ID: 5, Name: "Gas Station", Email: "info@gasstation.com", DefaultCategory: "Travel"},
}

var budgets = []core.Budget{
	{CategoryID: 6, CategoryName: "Rent", MonthlyBudget: 1000},
	{CategoryID: 7, CategoryName: "Food", MonthlyBudget: 500},
	{CategoryID: 8, CategoryName: "Utilities", MonthlyBudget: 200},
	{CategoryID: 9, CategoryName: "Travel", MonthlyBudget: 300},
	{CategoryID: 10, CategoryName: "Subscriptions", MonthlyBudget: 150},
	{CategoryID: 11, CategoryName: "Healthcare", MonthlyBudget: 400},
	{CategoryID: 12, CategoryName: "Entertainment", MonthlyBudget: 250},
	{CategoryID: 13, CategoryName: "Shopping", MonthlyBudget: 200},
}

var transactions = []core.Transaction{
	{ID: 1, Date: "2024-12-15", Type: core.Income, Amount: 5000, CategoryID: 1, CategoryName: "Salary", AccountID: 1, AccountName: "Main Checking", ClientVendorID: cvID(1), ClientVendorName: "ABC Corporation", Status: core.Completed, Notes: "Monthly salary", Recurring: true},
	{ID: 2, Date: "2024-12-10", Type: core.Income, Amount: 1500, CategoryID: 2, CategoryName: "Freelance", AccountID: 1, AccountName: "Main Checking", ClientVendorID: cvID(2), ClientVendorName: "XYZ Industries", Status: core.Completed, Notes: "Web development project", Recurring: false},
	{ID: 3, Date: "2024-12-05", Type: core.Income, Amount: 200, CategoryID: 3, CategoryName: "Investments", AccountID: 2, AccountName: "Savings Account", ClientVendorID: nil, ClientVendorName: "", Status: core.Completed, Notes: "Dividend payment", Recurring: true},
	{ID: 4, Date: "2024-11-15", Type: core.Income, Amount: 5000, CategoryID: 1, CategoryName: "Salary", AccountID: 1, AccountName: "Main Checking", ClientVendorID: cvID(1), ClientVendorName: "ABC Corporation", Status: core.Completed, Notes: "Monthly salary", Recurring: true},
	{ID: 5, Date: "2024-11-20", Type: core.Income, Amount: 800, CategoryID: 2, CategoryName: "Freelance", AccountID: 4, AccountName: "Business Account", ClientVendorID: cvID(3), ClientVendorName: "Tech Solutions Ltd", Status: core.Completed, Notes: "Consulting work", Recurring: false},
	{ID: 6, Date: "2024-12-01", Type: core.Expense, Amount: 1000, CategoryID: 6, CategoryName: "Rent", AccountID: 1, AccountName: "Main Checking", ClientVendorID: nil, ClientVendorName: "", Status: core.Completed, Notes: "Monthly rent payment", Recurring: true},
	{ID: 7, Date: "2024-12-14", Type: core.Expense, Amount: 85.5, CategoryID: 7, CategoryName: "Food", AccountID: 3, AccountName: "Credit Card", ClientVendorID: cvID(4), ClientVendorName: "Local Restaurant", Status: core.Completed, Notes: "Grocery shopping", Recurring: false},
	{ID: 8, Date: "2024-12-12", Type: core.Expense, Amount: 120, CategoryID: 8, CategoryName: "Utilities", AccountID: 1, AccountName: "Main Checking", ClientVendorID: cvID(2), ClientVendorName: "Internet Provider", Status: core.Completed, Notes: "Internet bill", Recurring: true},
	{ID: 9, Date: "2024-12-08", Type: core.Expense, Amount: 65, CategoryID: 9, CategoryName: "Travel", AccountID: 3, AccountName: "Credit Card", ClientVendorID: cvID(5), ClientVendorName: "Gas Station", Status: core.Completed, Notes: "Gas fill-up", Recurring: false},
	{ID: 10, Date: "2024-12-07", Type: core.Expense, Amount: 29.99, CategoryID: 10, CategoryName: "Subscriptions", AccountID: 3, AccountName: "Credit Card", ClientVendorID: cvID(3), ClientVendorName: "Software Subscriptions", Status: core.Completed, Notes: "Netflix subscription", Recurring: true},
	{ID: 11, Date: "2024-11-28", Type: core.Expense, Amount: 450, CategoryID: 11, CategoryName: "Healthcare", AccountID: 1, AccountName: "Main Checking", ClientVendorID: nil, ClientVendorName: "", Status: core.Completed, Notes: "Doctor visit", Recurring: false},
	{ID: 12, Date: "2024-11-25", Type: core.Expense, Amount: 180, CategoryID: 12, CategoryName: "Entertainment", AccountID: 3, AccountName: "Credit Card", ClientVendorID: nil, ClientVendorName: "", Status: core.Completed, Notes: "Movie tickets", Recurring: false},
	{ID: 13, Date: "2024-11-22", Type: core.Expense, Amount: 299.99, CategoryID: 13, CategoryName: "Shopping", AccountID: 3, AccountName: "Credit Card", ClientVendorID: nil, ClientVendorName: "", Status: core.Completed, Notes: "Clothing purchase", Recurring: false},
	{ID: 14, Date: "2024-11-20", Type: core.Income, Amount: 300, CategoryID: 4, CategoryName: "Business", AccountID: 4, AccountName: "Business Account", ClientVendorID: cvID(4), ClientVendorName: "Global Ventures", Status: core.Pending, Notes: "Consultation fee", Recurring: false},
	{ID: 15, Date: "2024-11-18", Type: core.Expense, Amount: 75, CategoryID: 7, CategoryName: "Food", AccountID: 1, AccountName: "Main Checking", ClientVendorID: nil, ClientVendorName: "", Status: core.Completed, Notes: "Restaurant dinner", Recurring: false},
	{ID: 16, Date: "2024-12-20", Type: core.Income, Amount: 2000, CategoryID: 2, CategoryName: "Freelance", AccountID: 4, AccountName: "Business Account", ClientVendorID: cvID(5), ClientVendorName: "StartUp Inc", Status: core.Completed, Notes: "Project completion bonus", Recurring: false},
	{ID: 17, Date: "2024-12-18", Type: core.Expense, Amount: 150, CategoryID: 7, CategoryName: "Food", AccountID: 3, AccountName: "Credit Card", ClientVendorID: nil, ClientVendorName: "", Status: core.Completed, Notes: "Weekly groceries", Recurring: false},
	{ID: 18, Date: "2024-12-16", Type: core.Expense, Amount: 89.99, CategoryID: 10, CategoryName: "Subscriptions", AccountID: 3, AccountName: "Credit Card", ClientVendorID: nil, ClientVendorName: "", Status: core.Completed, Notes: "Software license", Recurring: true},
	{ID: 19, Date: "2024-12-13", Type: core.Expense, Amount: 45, CategoryID: 9, CategoryName: "Travel", AccountID: 1, AccountName: "Main Checking", ClientVendorID: nil, ClientVendorName: "", Status: core.Completed, Notes: "Taxi fare", Recurring: false},
	{ID: 20, Date: "2024-12-11", Type: core.Income, Amount: 150, CategoryID: 3, CategoryName: "Investments", AccountID: 2, AccountName: "Savings Account", ClientVendorID: nil, ClientVendorName: "", Status: core.Completed, Notes: "Stock dividends", Recurring: false},
}
