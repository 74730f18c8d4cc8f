package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"moneyflow/internal/core"
	"moneyflow/internal/log"
	"moneyflow/internal/store"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"

	exportSheet = "Transactions"
	// maxImportRows bounds a single upload to one list's worth of rows.
	maxImportRows = store.MaxListSize
)

var exportHeader = []string{
	"id", "date", "type", "amount",
	"categoryId", "categoryName", "accountId", "accountName",
	"clientVendorId", "clientVendorName", "status", "notes", "recurring",
}

// ErrUnsupportedFormat is returned for export formats other than csv and xlsx.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// ExchangeService moves transactions in and out as spreadsheet files.
type ExchangeService struct {
	base
	transactions *TransactionService
}

// RowError describes one rejected import row. Row counts from 1 after the header.
type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

type ImportResult struct {
	Imported int        `json:"imported"`
	Failed   int        `json:"failed"`
	Errors   []RowError `json:"errors"`
}

// ContentType returns the MIME type and file extension for format.
func ContentType(format string) (mime, ext string, err error) {
	switch strings.ToLower(format) {
	case "", FormatCSV:
		return "text/csv; charset=utf-8", FormatCSV, nil
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", FormatXLSX, nil
	}
	return "", "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Export writes the transactions matching f to w in the given format.
func (s *ExchangeService) Export(ctx context.Context, w io.Writer, format string, f store.TransactionFilter) error {
	_, ext, err := ContentType(format)
	if err != nil {
		return err
	}
	txs, err := s.transactions.List(ctx, f)
	if err != nil {
		return err
	}

	if ext == FormatXLSX {
		err = writeXLSX(w, txs)
	} else {
		err = writeCSV(w, txs)
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", ext, err)
	}
	s.logger.InfoContext(ctx, "Exported transactions", log.FieldFormat, ext, log.FieldCount, len(txs))
	return nil
}

func exportRow(t core.Transaction) []string {
	cv := ""
	if t.ClientVendorID != nil {
		cv = strconv.FormatInt(*t.ClientVendorID, 10)
	}
	return []string{
		strconv.FormatInt(t.ID, 10),
		t.Date,
		string(t.Type),
		strconv.FormatFloat(t.Amount, 'f', -1, 64),
		strconv.FormatInt(t.CategoryID, 10),
		t.CategoryName,
		strconv.FormatInt(t.AccountID, 10),
		t.AccountName,
		cv,
		t.ClientVendorName,
		string(t.Status),
		t.Notes,
		strconv.FormatBool(t.Recurring),
	}
}

func writeCSV(w io.Writer, txs []core.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, t := range txs {
		if err := cw.Write(exportRow(t)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeXLSX(w io.Writer, txs []core.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}

	header := make([]any, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E7FF"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(exportHeader))
	if err := f.SetCellStyle(exportSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	for i, t := range txs {
		var cv any = ""
		if t.ClientVendorID != nil {
			cv = *t.ClientVendorID
		}
		row := []any{
			t.ID, t.Date, string(t.Type), t.Amount,
			t.CategoryID, t.CategoryName, t.AccountID, t.AccountName,
			cv, t.ClientVendorName, string(t.Status), t.Notes, t.Recurring,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return err
		}
	}

	_ = f.SetColWidth(exportSheet, "B", "B", 12)
	_ = f.SetColWidth(exportSheet, "F", "F", 18)
	_ = f.SetColWidth(exportSheet, "H", "H", 18)
	_ = f.SetColWidth(exportSheet, "J", "J", 22)
	_ = f.SetColWidth(exportSheet, "L", "L", 30)

	return f.Write(w)
}

// ImportCSV creates one transaction per data row of r. Columns are matched
// by header name; id and the name columns are ignored because ids are
// allocated and names resolved on insert. Bad rows are reported and skipped.
func (s *ExchangeService) ImportCSV(ctx context.Context, r io.Reader) (ImportResult, error) {
	res := ImportResult{Errors: []RowError{}}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return res, core.Invalid("file", "is empty")
	}
	if err != nil {
		return res, core.Invalid("file", "is not valid CSV: "+err.Error())
	}
	cols := indexHeader(header)
	for _, required := range []string{"date", "type", "amount", "categoryid", "accountid"} {
		if _, ok := cols[required]; !ok {
			return res, core.Invalid("file", "missing column "+required)
		}
	}

	// The whole file is read before the first insert so an oversized upload
	// leaves the store untouched.
	type record struct {
		fields []string
		err    error
	}
	var records []record
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if len(records) == maxImportRows {
			return res, core.Invalid("file", fmt.Sprintf("has more than %d rows", maxImportRows))
		}
		records = append(records, record{fields: rec, err: err})
	}

	for i, rec := range records {
		row := i + 1
		if rec.err != nil {
			res.fail(row, rec.err)
			continue
		}

		t, err := parseImportRow(cols, rec.fields)
		if err != nil {
			res.fail(row, err)
			continue
		}
		created, err := s.transactions.Create(ctx, t)
		if err != nil {
			var nf *core.NotFoundError
			var ve *core.ValidationError
			if errors.As(err, &nf) || errors.As(err, &ve) {
				res.fail(row, err)
				continue
			}
			return res, fmt.Errorf("import row %d: %w", row, err)
		}
		res.Imported++
		s.logger.DebugContext(ctx, "Imported transaction", log.FieldKey, created.ID)
	}

	s.logger.InfoContext(ctx, "Imported transactions",
		log.FieldOperation, log.OpImport, log.FieldCount, res.Imported, "failed", res.Failed)
	return res, nil
}

func (r *ImportResult) fail(row int, err error) {
	r.Failed++
	r.Errors = append(r.Errors, RowError{Row: row, Error: err.Error()})
}

func indexHeader(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		cols[h] = i
	}
	return cols
}

func parseImportRow(cols map[string]int, rec []string) (core.Transaction, error) {
	get := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	t := core.Transaction{
		Date:   get("date"),
		Type:   core.TxType(strings.ToLower(get("type"))),
		Status: core.TxStatus(strings.ToLower(get("status"))),
		Notes:  get("notes"),
	}
	var err error
	if t.Amount, err = strconv.ParseFloat(get("amount"), 64); err != nil {
		return t, core.Invalid("amount", "must be a number")
	}
	if t.CategoryID, err = strconv.ParseInt(get("categoryid"), 10, 64); err != nil {
		return t, core.Invalid("categoryId", "must be an integer")
	}
	if t.AccountID, err = strconv.ParseInt(get("accountid"), 10, 64); err != nil {
		return t, core.Invalid("accountId", "must be an integer")
	}
	if v := get("clientvendorid"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return t, core.Invalid("clientVendorId", "must be an integer")
		}
		t.ClientVendorID = &id
	}
	if v := get("recurring"); v != "" {
		if t.Recurring, err = strconv.ParseBool(v); err != nil {
			return t, core.Invalid("recurring", "must be true or false")
		}
	}
	return t, nil
}
