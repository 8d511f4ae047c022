package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	Save(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (*User, error)
	GetByPhone(ctx context.Context, phone string) (*User, error)

	// Lock the user row for the rest of the surrounding tx
	GetByUserIDForUpdate(ctx context.Context, userID string) (*User, error)

	// Admin listing: substring search over phone / full name, newest first
	List(ctx context.Context, page, pageSize int, search string) (*Page, error)
	Delete(ctx context.Context, userID string) error
}
