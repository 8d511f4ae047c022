package wallet

import (
	"context"
	"errors"

	"bankloan-backend/internal/domain/notification"
	"bankloan-backend/internal/domain/user"
	"bankloan-backend/internal/domain/wallet"

	"gorm.io/gorm"
)

const historyLimit = 50

type Usecase struct {
	users         user.Repository
	transactions  wallet.Repository
	notifications notification.Repository
}

func NewUsecase(users user.Repository, txs wallet.Repository, notes notification.Repository) *Usecase {
	return &Usecase{users: users, transactions: txs, notifications: notes}
}

// Wallet returns the balance and the most recent transactions, newest first.
func (u *Usecase) Wallet(ctx context.Context, userID string) (*WalletDTO, error) {
	usr, err := u.users.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	txs, err := u.transactions.ListByUserID(ctx, userID, historyLimit)
	if err != nil {
		return nil, err
	}
	out := &WalletDTO{UserID: usr.UserID, Balance: usr.Balance, Transactions: make([]TransactionDTO, 0, len(txs))}
	for _, t := range txs {
		out.Transactions = append(out.Transactions, TransactionDTO{
			TransactionID: t.TransactionID,
			ContractID:    t.ContractID,
			Type:          t.Type,
			Amount:        t.Amount,
			BalanceAfter:  t.BalanceAfter,
			Description:   t.Description,
			CreatedAt:     t.CreatedAt,
		})
	}
	return out, nil
}

func (u *Usecase) Notifications(ctx context.Context, userID string) ([]NotificationDTO, error) {
	list, err := u.notifications.ListByUserID(ctx, userID, historyLimit)
	if err != nil {
		return nil, err
	}
	out := make([]NotificationDTO, 0, len(list))
	for _, n := range list {
		out = append(out, NotificationDTO{
			NotificationID: n.NotificationID,
			ContractID:     n.ContractID,
			Kind:           n.Kind,
			Title:          n.Title,
			Message:        n.Message,
			IsRead:         n.IsRead,
			CreatedAt:      n.CreatedAt,
		})
	}
	return out, nil
}

func (u *Usecase) MarkRead(ctx context.Context, notificationID string) error {
	err := u.notifications.MarkRead(ctx, notificationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notification.ErrNotFound
	}
	return err
}
