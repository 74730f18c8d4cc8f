package sqlite

import (
	"context"
	"fmt"
	"strings"

	"moneyflow/internal/core"
	"moneyflow/internal/store"
)

type transactions struct {
	*table[core.Transaction]
}

func (t *transactions) Find(ctx context.Context, f store.TransactionFilter) ([]core.Transaction, error) {
	where, args := whereClause(f)
	q := fmt.Sprintf("%s%s ORDER BY date DESC, id DESC LIMIT %d", t.selectList(), where, store.MaxListSize)
	return t.query(ctx, q, args...)
}

// Sum accumulates in decimal; SQL SUM over REAL columns drifts.
func (t *transactions) Sum(ctx context.Context, f store.TransactionFilter) (float64, error) {
	where, args := whereClause(f)
	rows, err := t.db.QueryContext(ctx, "SELECT amount FROM transactions"+where, args...)
	if err != nil {
		return 0, fmt.Errorf("sum transactions: %w", err)
	}
	defer rows.Close()

	var acc core.Accumulator
	for rows.Next() {
		var amount float64
		if err := rows.Scan(&amount); err != nil {
			return 0, fmt.Errorf("scan amount: %w", err)
		}
		acc.Add(amount)
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("sum transactions: %w", err)
	}
	return acc.Float(), nil
}

func (t *transactions) Count(ctx context.Context, f store.TransactionFilter) (int64, error) {
	where, args := whereClause(f)
	var n int64
	if err := t.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM transactions"+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return n, nil
}

func (t *transactions) Each(ctx context.Context, f store.TransactionFilter, fn func(core.Transaction) error) error {
	where, args := whereClause(f)
	rows, err := t.db.QueryContext(ctx, t.selectList()+where, args...)
	if err != nil {
		return fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		tx, err := t.scan(rows)
		if err != nil {
			return fmt.Errorf("scan transactions: %w", err)
		}
		if err := fn(tx); err != nil {
			return err
		}
	}
	return rows.Err()
}

func whereClause(f store.TransactionFilter) (string, []any) {
	f = f.Normalize()
	var (
		conds []string
		args  []any
	)
	if f.Type != "" {
		conds = append(conds, "type = ?")
		args = append(args, f.Type)
	}
	if f.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, f.Status)
	}
	if f.CategoryID != nil {
		conds = append(conds, "category_id = ?")
		args = append(args, *f.CategoryID)
	}
	if f.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(f.Search)) + "%"
		cols := []string{"category_name", "notes", "client_vendor_name"}
		likes := make([]string, len(cols))
		for i, c := range cols {
			likes[i] = foldFunc + "(" + c + `) LIKE ? ESCAPE '\'`
		}
		conds = append(conds, "("+strings.Join(likes, " OR ")+")")
		args = append(args, pattern, pattern, pattern)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
