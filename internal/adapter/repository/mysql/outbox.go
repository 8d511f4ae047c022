package mysql

import (
	"context"
	"time"

	"bankloan-backend/internal/domain/outbox"

	"gorm.io/gorm"
)

type OutboxRepository struct{ db *gorm.DB }

func NewOutboxRepository(db *gorm.DB) *OutboxRepository { return &OutboxRepository{db: db} }

func (r *OutboxRepository) Create(ctx context.Context, e *outbox.Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *OutboxRepository) ListPending(ctx context.Context, limit int) ([]outbox.Event, error) {
	var out []outbox.Event
	err := r.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("id ASC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, id uint64, at time.Time) error {
	return r.db.WithContext(ctx).Model(&outbox.Event{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"published_at": at,
			"attempts":     gorm.Expr("attempts + 1"),
			"last_error":   "",
		}).Error
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, id uint64, reason string) error {
	return r.db.WithContext(ctx).Model(&outbox.Event{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": reason,
		}).Error
}
