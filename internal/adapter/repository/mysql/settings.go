package mysql

import (
	"context"

	"bankloan-backend/internal/domain/settings"

	"gorm.io/gorm"
)

type SettingsRepository struct{ db *gorm.DB }

func NewSettingsRepository(db *gorm.DB) *SettingsRepository { return &SettingsRepository{db: db} }

func (r *SettingsRepository) Get(ctx context.Context) (*settings.Settings, error) {
	var out settings.Settings
	res := r.db.WithContext(ctx).First(&out, settings.SingletonID)
	return &out, res.Error
}

// Save upserts the singleton row.
func (r *SettingsRepository) Save(ctx context.Context, s *settings.Settings) error {
	s.ID = settings.SingletonID
	return r.db.WithContext(ctx).Save(s).Error
}
