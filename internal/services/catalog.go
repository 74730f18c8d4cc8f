package services

import (
	"context"
	"fmt"

	"moneyflow/internal/core"
	"moneyflow/internal/events"
	"moneyflow/internal/store"
)

type validator interface {
	Validate() error
}

// CatalogService is the CRUD service for the flat reference collections:
// categories, accounts, clients and vendors.
type CatalogService[T validator] struct {
	base
	kind  core.Kind
	coll  store.Collection[T]
	setID func(*T, int64)
}

func NewCatalogService[T validator](b base, kind core.Kind, coll store.Collection[T], setID func(*T, int64)) *CatalogService[T] {
	return &CatalogService[T]{base: b, kind: kind, coll: coll, setID: setID}
}

func (s *CatalogService[T]) Kind() core.Kind { return s.kind }

func (s *CatalogService[T]) List(ctx context.Context) ([]T, error) {
	items, err := s.coll.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.kind, err)
	}
	return items, nil
}

func (s *CatalogService[T]) Get(ctx context.Context, id int64) (T, error) {
	return s.coll.Get(ctx, id)
}

// Create assigns the next id, ignoring any id in v.
func (s *CatalogService[T]) Create(ctx context.Context, v T) (T, error) {
	var zero T
	if err := v.Validate(); err != nil {
		return zero, err
	}
	id, err := NextID(ctx, s.coll)
	if err != nil {
		return zero, err
	}
	s.setID(&v, id)
	if err := s.coll.Insert(ctx, v); err != nil {
		return zero, fmt.Errorf("create %s: %w", s.kind, err)
	}
	s.announce(ctx, s.kind, events.OpCreated, id)
	return v, nil
}

// Update replaces every field of record id with v.
func (s *CatalogService[T]) Update(ctx context.Context, id int64, v T) (T, error) {
	var zero T
	if err := v.Validate(); err != nil {
		return zero, err
	}
	s.setID(&v, id)
	if err := s.coll.Replace(ctx, id, v); err != nil {
		return zero, fmt.Errorf("update %s: %w", s.kind, err)
	}
	s.announce(ctx, s.kind, events.OpUpdated, id)
	return v, nil
}

// Delete removes record id. References held elsewhere are left dangling.
func (s *CatalogService[T]) Delete(ctx context.Context, id int64) error {
	if err := s.coll.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s: %w", s.kind, err)
	}
	s.announce(ctx, s.kind, events.OpDeleted, id)
	return nil
}
