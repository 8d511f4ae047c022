package uow

import (
	"context"

	"bankloan-backend/internal/domain/contract"
	"bankloan-backend/internal/domain/document"
	"bankloan-backend/internal/domain/notification"
	"bankloan-backend/internal/domain/outbox"
	"bankloan-backend/internal/domain/user"
	"bankloan-backend/internal/domain/wallet"
)

// Repos bound to one transaction.
type Repos struct {
	Users         user.Repository
	Documents     document.Repository
	Contracts     contract.Repository
	Notifications notification.Repository
	Transactions  wallet.Repository
	Outbox        outbox.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// lock the user row first, then pass it in
	WithinUserTx(ctx context.Context, userID string, fn func(r Repos, u *user.User) error) error
	// lock the contract row first, then pass it in
	WithinContractTx(ctx context.Context, contractID string, fn func(r Repos, c *contract.Contract) error) error
}
