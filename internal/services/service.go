// Package services holds the business operations behind the HTTP API.
// Every mutation is written to the store first and then announced as a
// change event; a failed announcement is logged and never fails the call.
package services

import (
	"context"

	"moneyflow/internal/core"
	"moneyflow/internal/events"
	"moneyflow/internal/log"
	"moneyflow/internal/store"
)

// Services is the set of domain services sharing one store and publisher.
type Services struct {
	Categories   *CatalogService[core.Category]
	Accounts     *CatalogService[core.Account]
	Clients      *CatalogService[core.Client]
	Vendors      *CatalogService[core.Vendor]
	Transactions *TransactionService
	Budgets      *BudgetService
	Dashboard    *DashboardService
	Exchange     *ExchangeService

	store store.Store
}

func New(st store.Store, pub events.Publisher, logger *log.Logger) *Services {
	if pub == nil {
		pub = events.Noop{}
	}
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	b := base{
		store:  st,
		pub:    pub,
		logger: logger.WithComponent(log.ComponentService),
	}
	b.structured = log.NewStructuredLogger(b.logger)

	resolver := NewResolver(st)
	txs := &TransactionService{base: b, resolver: resolver}
	return &Services{
		Categories: NewCatalogService(b, core.KindCategory, st.Categories(),
			func(c *core.Category, id int64) { c.ID = id }),
		Accounts: NewCatalogService(b, core.KindAccount, st.Accounts(),
			func(a *core.Account, id int64) { a.ID = id }),
		Clients: NewCatalogService(b, core.KindClient, st.Clients(),
			func(c *core.Client, id int64) { c.ID = id }),
		Vendors: NewCatalogService(b, core.KindVendor, st.Vendors(),
			func(v *core.Vendor, id int64) { v.ID = id }),
		Transactions: txs,
		Budgets:      &BudgetService{base: b},
		Dashboard:    &DashboardService{base: b},
		Exchange:     &ExchangeService{base: b, transactions: txs},
		store:        st,
	}
}

// Ping reports whether the underlying store is reachable.
func (s *Services) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

type base struct {
	store      store.Store
	pub        events.Publisher
	logger     *log.Logger
	structured *log.StructuredLogger
}

func (b base) announce(ctx context.Context, kind core.Kind, op events.Op, key int64) {
	b.structured.LogMutation(ctx, opName(op), string(kind), key)
	if err := b.pub.Publish(ctx, events.NewChangeEvent(kind, op, key)); err != nil {
		b.logger.ErrorContext(ctx, "Failed to publish change event",
			log.FieldKind, kind, log.FieldKey, key, log.FieldError, err)
	}
}

func opName(op events.Op) string {
	switch op {
	case events.OpCreated:
		return log.OpCreate
	case events.OpUpdated:
		return log.OpUpdate
	case events.OpDeleted:
		return log.OpDelete
	}
	return string(op)
}
