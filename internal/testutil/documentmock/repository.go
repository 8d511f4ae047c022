package documentmock

import (
	"context"

	domain "bankloan-backend/internal/domain/document"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	UpsertFn       func(ctx context.Context, userID string, t domain.Type, filePath string) (*domain.Document, error)
	ListByUserIDFn func(ctx context.Context, userID string) ([]domain.Document, error)
}

func (m *Repo) Upsert(ctx context.Context, userID string, t domain.Type, filePath string) (*domain.Document, error) {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, userID, t, filePath)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByUserID(ctx context.Context, userID string) ([]domain.Document, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}

// Memory is a tiny in-memory Repository keyed by (userID, type), handy for
// multi-step workflow tests.
type Memory struct {
	docs map[string]map[domain.Type]domain.Document
}

func NewMemory() *Memory { return &Memory{docs: map[string]map[domain.Type]domain.Document{}} }

func (m *Memory) Upsert(_ context.Context, userID string, t domain.Type, filePath string) (*domain.Document, error) {
	if m.docs[userID] == nil {
		m.docs[userID] = map[domain.Type]domain.Document{}
	}
	d := m.docs[userID][t]
	d.UserID, d.DocumentType, d.FilePath = userID, t, filePath
	m.docs[userID][t] = d
	return &d, nil
}

func (m *Memory) ListByUserID(_ context.Context, userID string) ([]domain.Document, error) {
	out := make([]domain.Document, 0, 3)
	for _, t := range domain.RequiredTypes {
		if d, ok := m.docs[userID][t]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}
