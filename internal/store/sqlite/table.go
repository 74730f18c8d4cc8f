package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"moneyflow/internal/core"
	"moneyflow/internal/store"
)

type scanner interface {
	Scan(dest ...any) error
}

// table maps one entity kind onto one SQL table. columns[0] is the key and
// values must return arguments in column order.
type table[T any] struct {
	db      *sql.DB
	kind    core.Kind
	name    string
	columns []string
	scan    func(scanner) (T, error)
	values  func(T) []any
}

func (t *table[T]) key() string { return t.columns[0] }

func (t *table[T]) selectList() string {
	return "SELECT " + strings.Join(t.columns, ", ") + " FROM " + t.name
}

func (t *table[T]) List(ctx context.Context) ([]T, error) {
	q := fmt.Sprintf("%s ORDER BY %s LIMIT %d", t.selectList(), t.key(), store.MaxListSize)
	return t.query(ctx, q)
}

func (t *table[T]) Get(ctx context.Context, key int64) (T, error) {
	row := t.db.QueryRowContext(ctx, t.selectList()+" WHERE "+t.key()+" = ?", key)
	v, err := t.scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return v, core.NotFound(t.kind, key)
	}
	if err != nil {
		return v, fmt.Errorf("get %s %d: %w", t.kind, key, err)
	}
	return v, nil
}

func (t *table[T]) Insert(ctx context.Context, v T) error {
	args := t.values(v)
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.name, strings.Join(t.columns, ", "), placeholders(len(t.columns)))
	if _, err := t.db.ExecContext(ctx, q, args...); err != nil {
		if isPrimaryKeyViolation(err) {
			key, _ := args[0].(int64)
			return core.Conflict(t.kind, key)
		}
		return fmt.Errorf("insert %s: %w", t.kind, err)
	}
	return nil
}

func (t *table[T]) Replace(ctx context.Context, key int64, v T) error {
	args := t.values(v)[1:]
	sets := make([]string, 0, len(t.columns)-1)
	for _, c := range t.columns[1:] {
		sets = append(sets, c+" = ?")
	}
	q := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?", t.name, strings.Join(sets, ", "), t.key())
	res, err := t.db.ExecContext(ctx, q, append(args, key)...)
	if err != nil {
		return fmt.Errorf("update %s %d: %w", t.kind, key, err)
	}
	return t.affected(res, key)
}

func (t *table[T]) Delete(ctx context.Context, key int64) error {
	res, err := t.db.ExecContext(ctx, "DELETE FROM "+t.name+" WHERE "+t.key()+" = ?", key)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", t.kind, key, err)
	}
	return t.affected(res, key)
}

func (t *table[T]) MaxKey(ctx context.Context) (int64, error) {
	var max int64
	err := t.db.QueryRowContext(ctx, "SELECT COALESCE(MAX("+t.key()+"), 0) FROM "+t.name).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max %s key: %w", t.kind, err)
	}
	return max, nil
}

func (t *table[T]) query(ctx context.Context, q string, args ...any) ([]T, error) {
	rows, err := t.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", t.name, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := t.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.name, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (t *table[T]) affected(res sql.Result, key int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return core.NotFound(t.kind, key)
	}
	return nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func isPrimaryKeyViolation(err error) bool {
	var se *sqlitedrv.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
