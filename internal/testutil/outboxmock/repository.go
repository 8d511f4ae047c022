package outboxmock

import (
	"context"
	"time"

	domain "bankloan-backend/internal/domain/outbox"
)

var (
	_ domain.Repository = (*Repo)(nil)
	_ domain.Publisher  = (*Publisher)(nil)
)

type Repo struct {
	CreateFn        func(ctx context.Context, e *domain.Event) error
	ListPendingFn   func(ctx context.Context, limit int) ([]domain.Event, error)
	MarkPublishedFn func(ctx context.Context, id uint64, at time.Time) error
	MarkFailedFn    func(ctx context.Context, id uint64, reason string) error
}

func (m *Repo) Create(ctx context.Context, e *domain.Event) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) ListPending(ctx context.Context, limit int) ([]domain.Event, error) {
	if m.ListPendingFn != nil {
		return m.ListPendingFn(ctx, limit)
	}
	return nil, context.Canceled
}

func (m *Repo) MarkPublished(ctx context.Context, id uint64, at time.Time) error {
	if m.MarkPublishedFn != nil {
		return m.MarkPublishedFn(ctx, id, at)
	}
	return nil
}

func (m *Repo) MarkFailed(ctx context.Context, id uint64, reason string) error {
	if m.MarkFailedFn != nil {
		return m.MarkFailedFn(ctx, id, reason)
	}
	return nil
}

type Publisher struct {
	PublishFn func(ctx context.Context, e domain.Event) error
}

func (p *Publisher) Publish(ctx context.Context, e domain.Event) error {
	if p.PublishFn != nil {
		return p.PublishFn(ctx, e)
	}
	return nil
}
