package document

import "context"

type Repository interface {
	// Find-then-update-or-insert on (userID, type); returns the stored row
	Upsert(ctx context.Context, userID string, t Type, filePath string) (*Document, error)

	ListByUserID(ctx context.Context, userID string) ([]Document, error)
}
