package mysql

import (
	"context"

	"bankloan-backend/internal/domain/notification"

	"gorm.io/gorm"
)

type NotificationRepository struct{ db *gorm.DB }

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) ListByUserID(ctx context.Context, userID string, limit int) ([]notification.Notification, error) {
	var out []notification.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *NotificationRepository) MarkRead(ctx context.Context, notificationID string) error {
	db := r.db.WithContext(ctx)
	// look up first: MySQL reports 0 affected rows when is_read is already true
	var n notification.Notification
	if err := db.Where("notification_id = ?", notificationID).First(&n).Error; err != nil {
		return err
	}
	return db.Model(&n).Update("is_read", true).Error
}
