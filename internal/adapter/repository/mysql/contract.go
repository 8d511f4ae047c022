package mysql

import (
	"context"

	"bankloan-backend/internal/domain/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContractRepository struct{ db *gorm.DB }

func NewContractRepository(db *gorm.DB) *ContractRepository { return &ContractRepository{db: db} }

func (r *ContractRepository) Create(ctx context.Context, c *contract.Contract) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ContractRepository) Save(ctx context.Context, c *contract.Contract) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ContractRepository) ExistsByContractID(ctx context.Context, contractID string) (bool, error) {
	var n int64
	// Unscoped: a soft-deleted contract still owns its id
	err := r.db.WithContext(ctx).Unscoped().Model(&contract.Contract{}).
		Where("contract_id = ?", contractID).
		Count(&n).Error
	return n > 0, err
}

func (r *ContractRepository) GetByContractID(ctx context.Context, contractID string) (*contract.Contract, error) {
	var out contract.Contract
	res := r.db.WithContext(ctx).Where("contract_id = ?", contractID).First(&out)
	return &out, res.Error
}

func (r *ContractRepository) GetByContractIDForUpdate(ctx context.Context, contractID string) (*contract.Contract, error) {
	var out contract.Contract
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("contract_id = ?", contractID).
		First(&out)
	return &out, res.Error
}

func (r *ContractRepository) ListByUserID(ctx context.Context, userID string) ([]contract.Contract, error) {
	var out []contract.Contract
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *ContractRepository) List(ctx context.Context, page, pageSize int, search string) (*contract.Page, error) {
	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).Table("contracts AS c").
			Joins("LEFT JOIN users AS u ON u.user_id = c.user_id").
			Where("c.deleted_at IS NULL")
		if search != "" {
			like := containsPattern(search)
			q = q.Where("c.contract_id LIKE ? ESCAPE '!' OR u.full_name LIKE ? ESCAPE '!'", like, like)
		}
		return q
	}

	out := &contract.Page{}
	if err := base().Count(&out.Total).Error; err != nil {
		return nil, err
	}
	err := base().
		Select("c.*, COALESCE(u.full_name, '') AS borrower_name, COALESCE(u.phone, '') AS borrower_phone").
		Order("c.created_at DESC, c.id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Scan(&out.Items).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
