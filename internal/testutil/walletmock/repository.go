package walletmock

import (
	"context"

	domain "bankloan-backend/internal/domain/wallet"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	CreateFn       func(ctx context.Context, t *domain.Transaction) error
	ListByUserIDFn func(ctx context.Context, userID string, limit int) ([]domain.Transaction, error)
}

func (m *Repo) Create(ctx context.Context, t *domain.Transaction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *Repo) ListByUserID(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID, limit)
	}
	return nil, context.Canceled
}
