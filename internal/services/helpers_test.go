package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"moneyflow/internal/core"
	"moneyflow/internal/events"
	"moneyflow/internal/log"
	"moneyflow/internal/store/memory"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.ChangeEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e events.ChangeEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) ops() []events.Op {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Op, len(p.events))
	for i, e := range p.events {
		out[i] = e.Op
	}
	return out
}

func newTestServices(t *testing.T) (*Services, *recordingPublisher) {
	t.Helper()
	pub := &recordingPublisher{}
	return New(memory.New(), pub, log.Discard()), pub
}

// seedRentChecking creates category 1 "Rent" (expense) and account 1 "Checking".
func seedRentChecking(t *testing.T, svc *Services) {
	t.Helper()
	ctx := context.Background()
	_, err := svc.Categories.Create(ctx, core.Category{Name: "Rent", Type: core.Expense, Color: "#EF4444"})
	require.NoError(t, err)
	_, err = svc.Accounts.Create(ctx, core.Account{Name: "Checking", Type: core.Checking, Balance: 5000, LowBalanceThreshold: 500})
	require.NoError(t, err)
}

func rentExpense(amount float64) core.Transaction {
	return core.Transaction{
		Date:       "2024-12-15",
		Type:       core.Expense,
		Amount:     amount,
		CategoryID: 1,
		AccountID:  1,
		Status:     core.Completed,
	}
}

func isNotFound(err error, kind core.Kind) bool {
	var nf *core.NotFoundError
	return errors.As(err, &nf) && nf.Kind == kind
}
