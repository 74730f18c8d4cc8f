package sqlite

import (
	"database/sql/driver"
	"strings"

	sqlitedrv "modernc.org/sqlite"
)

// foldFunc is the SQL name of a Unicode-aware LOWER. The builtin only folds
// ASCII, so "CAFÉ" would not match a search for "café".
const foldFunc = "mf_fold"

func init() {
	sqlitedrv.MustRegisterDeterministicScalarFunction(foldFunc, 1, fold)
}

func fold(_ *sqlitedrv.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}
