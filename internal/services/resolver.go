package services

import (
	"context"
	"errors"
	"fmt"

	"moneyflow/internal/core"
	"moneyflow/internal/store"
)

// Names are the display names stamped onto a transaction.
type Names struct {
	Category     string
	Account      string
	ClientVendor string
}

// Resolver looks up the names a transaction denormalizes.
type Resolver struct {
	store store.Store
}

func NewResolver(st store.Store) *Resolver {
	return &Resolver{store: st}
}

// Resolve fails with a category or account NotFoundError. A client/vendor id
// is tried against clients first, then vendors; a miss yields "".
func (r *Resolver) Resolve(ctx context.Context, categoryID, accountID int64, clientVendorID *int64) (Names, error) {
	var n Names

	cat, err := r.store.Categories().Get(ctx, categoryID)
	if err != nil {
		return n, fmt.Errorf("resolve category: %w", err)
	}
	n.Category = cat.Name

	acct, err := r.store.Accounts().Get(ctx, accountID)
	if err != nil {
		return n, fmt.Errorf("resolve account: %w", err)
	}
	n.Account = acct.Name

	if clientVendorID == nil || *clientVendorID == 0 {
		return n, nil
	}
	id := *clientVendorID

	client, err := r.store.Clients().Get(ctx, id)
	switch {
	case err == nil:
		n.ClientVendor = client.Name
		return n, nil
	case !errors.Is(err, core.ErrNotFound):
		return n, fmt.Errorf("resolve client: %w", err)
	}

	vendor, err := r.store.Vendors().Get(ctx, id)
	switch {
	case err == nil:
		n.ClientVendor = vendor.Name
	case !errors.Is(err, core.ErrNotFound):
		return n, fmt.Errorf("resolve vendor: %w", err)
	}
	return n, nil
}
