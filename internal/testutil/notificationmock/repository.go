package notificationmock

import (
	"context"

	domain "bankloan-backend/internal/domain/notification"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	CreateFn       func(ctx context.Context, n *domain.Notification) error
	ListByUserIDFn func(ctx context.Context, userID string, limit int) ([]domain.Notification, error)
	MarkReadFn     func(ctx context.Context, notificationID string) error
}

func (m *Repo) Create(ctx context.Context, n *domain.Notification) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, n)
	}
	return nil
}

func (m *Repo) ListByUserID(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID, limit)
	}
	return nil, context.Canceled
}

func (m *Repo) MarkRead(ctx context.Context, notificationID string) error {
	if m.MarkReadFn != nil {
		return m.MarkReadFn(ctx, notificationID)
	}
	return nil
}
