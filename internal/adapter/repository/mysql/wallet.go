package mysql

import (
	"context"

	"bankloan-backend/internal/domain/wallet"

	"gorm.io/gorm"
)

type WalletRepository struct{ db *gorm.DB }

func NewWalletRepository(db *gorm.DB) *WalletRepository { return &WalletRepository{db: db} }

func (r *WalletRepository) Create(ctx context.Context, t *wallet.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *WalletRepository) ListByUserID(ctx context.Context, userID string, limit int) ([]wallet.Transaction, error) {
	var out []wallet.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}
