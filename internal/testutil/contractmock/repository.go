package contractmock

import (
	"context"

	domain "bankloan-backend/internal/domain/contract"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	CreateFn                   func(ctx context.Context, c *domain.Contract) error
	SaveFn                     func(ctx context.Context, c *domain.Contract) error
	ExistsByContractIDFn       func(ctx context.Context, contractID string) (bool, error)
	GetByContractIDFn          func(ctx context.Context, contractID string) (*domain.Contract, error)
	GetByContractIDForUpdateFn func(ctx context.Context, contractID string) (*domain.Contract, error)
	ListByUserIDFn             func(ctx context.Context, userID string) ([]domain.Contract, error)
	ListFn                     func(ctx context.Context, page, pageSize int, search string) (*domain.Page, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Contract) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, c *domain.Contract) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) ExistsByContractID(ctx context.Context, contractID string) (bool, error) {
	if m.ExistsByContractIDFn != nil {
		return m.ExistsByContractIDFn(ctx, contractID)
	}
	return false, context.Canceled
}

func (m *Repo) GetByContractID(ctx context.Context, contractID string) (*domain.Contract, error) {
	if m.GetByContractIDFn != nil {
		return m.GetByContractIDFn(ctx, contractID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByContractIDForUpdate(ctx context.Context, contractID string) (*domain.Contract, error) {
	if m.GetByContractIDForUpdateFn != nil {
		return m.GetByContractIDForUpdateFn(ctx, contractID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByUserID(ctx context.Context, userID string) ([]domain.Contract, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, page, pageSize int, search string) (*domain.Page, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page, pageSize, search)
	}
	return nil, context.Canceled
}
