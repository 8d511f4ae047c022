package wallet

import "context"

type Repository interface {
	Create(ctx context.Context, t *Transaction) error
	ListByUserID(ctx context.Context, userID string, limit int) ([]Transaction, error)
}
