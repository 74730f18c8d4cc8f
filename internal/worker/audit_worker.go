// Package worker consumes entity change events and keeps an audit trail.
package worker

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"moneyflow/internal/core"
	"moneyflow/internal/events"
	"moneyflow/internal/log"
	"moneyflow/internal/store"
)

var errUnknownKind = errors.New("unknown entity kind")

// AuditWorker logs every change event, describing the affected record when
// it can still be read from the store.
type AuditWorker struct {
	store  store.Store
	logger *log.Logger

	mu     sync.Mutex
	counts map[string]int64
}

func NewAuditWorker(st store.Store, logger *log.Logger) *AuditWorker {
	if logger == nil {
		logger = log.Discard()
	}
	return &AuditWorker{
		store:  st,
		logger: logger.WithComponent(log.ComponentWorker),
		counts: map[string]int64{},
	}
}

// HandleChangeEvent never fails for a missing record: the row may have been
// deleted before the event was consumed. Only store failures are returned,
// which makes the broker redeliver the event.
func (w *AuditWorker) HandleChangeEvent(ctx context.Context, e events.ChangeEvent) error {
	fields := []any{
		log.FieldOperation, log.OpConsume,
		log.FieldKind, e.Kind,
		log.FieldKey, e.Key,
		"op", e.Op,
		"event_time", e.Timestamp,
	}

	if e.Op != events.OpDeleted && w.store != nil {
		summary, err := w.describe(ctx, e.Kind, e.Key)
		switch {
		case err == nil:
			fields = append(fields, "summary", summary)
		case errors.Is(err, core.ErrNotFound):
			fields = append(fields, "summary", "record no longer exists")
		case errors.Is(err, errUnknownKind):
			w.logger.WarnContext(ctx, "Dropping event for unknown entity kind", fields...)
			return nil
		default:
			return fmt.Errorf("describe %s %d: %w", e.Kind, e.Key, err)
		}
	}

	w.record(e)
	w.logger.InfoContext(ctx, "Entity change", fields...)
	return nil
}

func (w *AuditWorker) describe(ctx context.Context, kind core.Kind, key int64) (string, error) {
	switch kind {
	case core.KindCategory:
		c, err := w.store.Categories().Get(ctx, key)
		return fmt.Sprintf("%s (%s)", c.Name, c.Type), err
	case core.KindAccount:
		a, err := w.store.Accounts().Get(ctx, key)
		return fmt.Sprintf("%s (%s) balance %.2f", a.Name, a.Type, a.Balance), err
	case core.KindClient:
		c, err := w.store.Clients().Get(ctx, key)
		return c.Name, err
	case core.KindVendor:
		v, err := w.store.Vendors().Get(ctx, key)
		return v.Name, err
	case core.KindBudget:
		b, err := w.store.Budgets().Get(ctx, key)
		return fmt.Sprintf("category %d monthly %.2f", b.CategoryID, b.MonthlyBudget), err
	case core.KindTransaction:
		t, err := w.store.Transactions().Get(ctx, key)
		return fmt.Sprintf("%s %s %.2f %s (%s)", t.Date, t.Type, t.Amount, t.CategoryName, t.Status), err
	}
	return "", fmt.Errorf("%w %q", errUnknownKind, kind)
}

func (w *AuditWorker) record(e events.ChangeEvent) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.counts[string(e.Kind)+"."+string(e.Op)]++
}

// Counts returns how many events were handled per "kind.op".
func (w *AuditWorker) Counts() map[string]int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make(map[string]int64, len(w.counts))
	for k, v := range w.counts {
		out[k] = v
	}
	return out
}

// LogSummary writes the per-kind totals, typically once on shutdown.
func (w *AuditWorker) LogSummary(ctx context.Context) {
	counts := w.Counts()
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]any, 0, 2*len(keys))
	for _, k := range keys {
		fields = append(fields, k, counts[k])
	}
	w.logger.InfoContext(ctx, "Audit summary", fields...)
}
