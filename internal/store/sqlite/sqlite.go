// Package sqlite implements the store ports on a single SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"moneyflow/internal/core"
	"moneyflow/internal/store"

	_ "modernc.org/sqlite"
)

type Store struct {
	db           *sql.DB
	categories   *table[core.Category]
	accounts     *table[core.Account]
	clients      *table[core.Client]
	vendors      *table[core.Vendor]
	budgets      *table[core.Budget]
	transactions *transactions
}

// Open creates the database directory if needed, applies migrations and
// returns a ready store.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{
		db:           db,
		categories:   categoriesTable(db),
		accounts:     accountsTable(db),
		clients:      clientsTable(db),
		vendors:      vendorsTable(db),
		budgets:      budgetsTable(db),
		transactions: &transactions{transactionsTable(db)},
	}, nil
}

func (s *Store) Categories() store.Collection[core.Category] { return s.categories }
func (s *Store) Accounts() store.Collection[core.Account] { return s.accounts }
func (s *Store) Clients() store.Collection[core.Client] { return s.clients }
func (s *Store) Vendors() store.Collection[core.Vendor] { return s.vendors }
func (s *Store) Budgets() store.Collection[core.Budget] { return s.budgets }
func (s *Store) Transactions() store.TransactionCollection { return s.transactions }

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
