// Package events publishes entity change notifications to RabbitMQ.
package events

import "context"

// Publisher sends change events. Implementations must be safe for
// concurrent use.
type Publisher interface {
	Publish(ctx context.Context, e ChangeEvent) error
	Close() error
}

// Noop drops every event. Used when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, ChangeEvent) error { return nil }
func (Noop) Close() error { return nil }
