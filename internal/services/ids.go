package services

import (
	"context"
	"fmt"
)

type keyed interface {
	MaxKey(ctx context.Context) (int64, error)
}

// NextID returns one past the largest key in use, or 1 for an empty
// collection. Two concurrent callers may get the same id; the store's unique
// key then rejects the second insert with core.ErrConflict.
func NextID(ctx context.Context, c keyed) (int64, error) {
	max, err := c.MaxKey(ctx)
	if err != nil {
		return 0, fmt.Errorf("allocate id: %w", err)
	}
	return max + 1, nil
}
