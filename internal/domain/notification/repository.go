package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	ListByUserID(ctx context.Context, userID string, limit int) ([]Notification, error)
	MarkRead(ctx context.Context, notificationID string) error
}
