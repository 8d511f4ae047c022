package mysql

import (
	"context"
	"errors"
	"time"

	"bankloan-backend/internal/domain/document"

	"gorm.io/gorm"
)

type DocumentRepository struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) *DocumentRepository { return &DocumentRepository{db: db} }

func (r *DocumentRepository) Upsert(ctx context.Context, userID string, t document.Type, filePath string) (*document.Document, error) {
	db := r.db.WithContext(ctx)
	now := time.Now().UTC()

	var d document.Document
	err := db.Where("user_id = ? AND document_type = ?", userID, t).First(&d).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		d = document.Document{UserID: userID, DocumentType: t, FilePath: filePath, UploadedAt: now}
		if err := db.Create(&d).Error; err != nil {
			return nil, err
		}
		return &d, nil
	case err != nil:
		return nil, err
	}

	d.FilePath = filePath
	d.UploadedAt = now
	if err := db.Save(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DocumentRepository) ListByUserID(ctx context.Context, userID string) ([]document.Document, error) {
	var out []document.Document
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&out).Error
	return out, err
}
