package wallet

import (
	"time"

	"github.com/shopspring/decimal"
)

type TxType string

const (
	// Balance zeroed after a loan is rejected
	TxBalanceReset TxType = "balance_reset"
	// Manual admin adjustment
	TxAdjustment TxType = "adjustment"
)

// Table: wallet_transactions
type Transaction struct {
	ID            uint64          `gorm:"column:id;primaryKey;autoIncrement"`
	TransactionID string          `gorm:"column:transaction_id;type:char(26);not null;uniqueIndex:ux_wallet_tx_transaction_id"`
	UserID        string          `gorm:"column:user_id;type:char(32);not null;index"`
	ContractID    string          `gorm:"column:contract_id;size:8"`
	Type          TxType          `gorm:"column:type;size:32;not null"`
	Amount        decimal.Decimal `gorm:"column:amount;type:decimal(18,2);not null"`
	BalanceAfter  decimal.Decimal `gorm:"column:balance_after;type:decimal(18,2);not null"`
	Description   string          `gorm:"column:description;size:255"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (Transaction) TableName() string { return "wallet_transactions" }
