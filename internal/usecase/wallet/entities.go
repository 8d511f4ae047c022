package wallet

import (
	"time"

	"bankloan-backend/internal/domain/notification"
	"bankloan-backend/internal/domain/wallet"

	"github.com/shopspring/decimal"
)

type TransactionDTO struct {
	TransactionID string          `json:"transactionId"`
	ContractID    string          `json:"contractId,omitempty"`
	Type          wallet.TxType   `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	BalanceAfter  decimal.Decimal `json:"balanceAfter"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type WalletDTO struct {
	UserID       string           `json:"userId"`
	Balance      decimal.Decimal  `json:"balance"`
	Transactions []TransactionDTO `json:"transactions"`
}

type NotificationDTO struct {
	NotificationID string            `json:"notificationId"`
	ContractID     string            `json:"contractId,omitempty"`
	Kind           notification.Kind `json:"type"`
	Title          string            `json:"title"`
	Message        string            `json:"message"`
	IsRead         bool              `json:"isRead"`
	CreatedAt      time.Time         `json:"createdAt"`
}
