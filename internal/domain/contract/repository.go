package contract

import "context"

type Repository interface {
	// Create relies on the unique index; a collision surfaces as gorm.ErrDuplicatedKey
	Create(ctx context.Context, c *Contract) error
	Save(ctx context.Context, c *Contract) error
	ExistsByContractID(ctx context.Context, contractID string) (bool, error)
	GetByContractID(ctx context.Context, contractID string) (*Contract, error)
	GetByContractIDForUpdate(ctx context.Context, contractID string) (*Contract, error)

	// Newest first
	ListByUserID(ctx context.Context, userID string) ([]Contract, error)

	// Admin listing: substring search over contract id / borrower name
	List(ctx context.Context, page, pageSize int, search string) (*Page, error)
}
