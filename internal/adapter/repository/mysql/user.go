package mysql

import (
	"context"
	"strings"

	"bankloan-backend/internal/domain/user"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*user.User, error) {
	var out user.User
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*user.User, error) {
	var out user.User
	res := r.db.WithContext(ctx).Where("phone = ?", phone).First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetByUserIDForUpdate(ctx context.Context, userID string) (*user.User, error) {
	var out user.User
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&out)
	return &out, res.Error
}

func (r *UserRepository) List(ctx context.Context, page, pageSize int, search string) (*user.Page, error) {
	q := r.db.WithContext(ctx).Model(&user.User{})
	if search != "" {
		like := containsPattern(search)
		q = q.Where("phone LIKE ? ESCAPE '!' OR full_name LIKE ? ESCAPE '!'", like, like)
	}

	out := &user.Page{}
	if err := q.Session(&gorm.Session{}).Count(&out.Total).Error; err != nil {
		return nil, err
	}
	err := q.Order("created_at DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&out.Items).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete is a soft delete; the row keeps its phone reserved.
func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&user.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// containsPattern matches search literally anywhere in the column. Use with ESCAPE '!'.
func containsPattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}
