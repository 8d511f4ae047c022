package outbox

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, e *Event) error
	// Oldest unpublished first
	ListPending(ctx context.Context, limit int) ([]Event, error)
	MarkPublished(ctx context.Context, id uint64, at time.Time) error
	MarkFailed(ctx context.Context, id uint64, reason string) error
}

// Publisher delivers one event to the broker (or wherever the relay points).
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}
