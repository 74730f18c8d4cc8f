package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneyflow/internal/core"
	"moneyflow/internal/events"
	"moneyflow/internal/log"
	"moneyflow/internal/store"
	"moneyflow/internal/store/memory"
)

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestHandleChangeEventDescribesRecord(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	require.NoError(t, st.Categories().Insert(ctx, core.Category{ID: 1, Name: "Rent", Type: core.Expense}))

	var buf bytes.Buffer
	w := NewAuditWorker(st, log.New(log.Config{Format: "json", Output: &buf}))

	require.NoError(t, w.HandleChangeEvent(ctx, events.NewChangeEvent(core.KindCategory, events.OpCreated, 1)))
	require.NoError(t, w.HandleChangeEvent(ctx, events.NewChangeEvent(core.KindCategory, events.OpUpdated, 7)))
	require.NoError(t, w.HandleChangeEvent(ctx, events.NewChangeEvent(core.KindCategory, events.OpDeleted, 1)))

	lines := logLines(t, &buf)
	require.Len(t, lines, 3)
	assert.Equal(t, "Rent (expense)", lines[0]["summary"])
	assert.Equal(t, "record no longer exists", lines[1]["summary"])
	assert.NotContains(t, lines[2], "summary")
	assert.Equal(t, "worker", lines[0][log.FieldComponent])

	assert.Equal(t, map[string]int64{"category.created": 1, "category.updated": 1, "category.deleted": 1}, w.Counts())
}

func TestHandleChangeEventUnknownKind(t *testing.T) {
	w := NewAuditWorker(memory.New(), nil)
	err := w.HandleChangeEvent(context.Background(), events.ChangeEvent{Kind: "invoice", Op: events.OpCreated, Key: 1})
	assert.NoError(t, err)
	assert.Empty(t, w.Counts())
}

type failingStore struct {
	store.Store
}

type failingTransactions struct {
	store.TransactionCollection
}

func (failingStore) Transactions() store.TransactionCollection { return failingTransactions{} }

func (failingTransactions) Get(context.Context, int64) (core.Transaction, error) {
	return core.Transaction{}, errors.New("database is locked")
}

func TestHandleChangeEventStoreFailureRequeues(t *testing.T) {
	w := NewAuditWorker(failingStore{}, nil)
	err := w.HandleChangeEvent(context.Background(), events.NewChangeEvent(core.KindTransaction, events.OpUpdated, 3))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")
	assert.Empty(t, w.Counts())
}

func TestLogSummary(t *testing.T) {
	var buf bytes.Buffer
	w := NewAuditWorker(nil, log.New(log.Config{Format: "json", Output: &buf}))
	ctx := context.Background()
	require.NoError(t, w.HandleChangeEvent(ctx, events.NewChangeEvent(core.KindVendor, events.OpCreated, 1)))
	require.NoError(t, w.HandleChangeEvent(ctx, events.NewChangeEvent(core.KindVendor, events.OpCreated, 2)))
	buf.Reset()

	w.LogSummary(ctx)
	lines := logLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, float64(2), lines[0]["vendor.created"])
}
