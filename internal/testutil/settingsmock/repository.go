package settingsmock

import (
	"context"

	domain "bankloan-backend/internal/domain/settings"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	GetFn  func(ctx context.Context) (*domain.Settings, error)
	SaveFn func(ctx context.Context, s *domain.Settings) error
}

func (m *Repo) Get(ctx context.Context) (*domain.Settings, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, s *domain.Settings) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}
