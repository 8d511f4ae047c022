package document

import (
	"time"

	"bankloan-backend/internal/domain/errs"
)

type Type string

const (
	TypeFrontID  Type = "frontId"
	TypeBackID   Type = "backId"
	TypePortrait Type = "portrait"
)

// RequiredTypes are the slots a user must fill to become verified.
var RequiredTypes = []Type{TypeFrontID, TypeBackID, TypePortrait}

var ErrInvalidType = errs.New(errs.KindInvalidInput, "Loại giấy tờ không hợp lệ")

func (t Type) Valid() bool {
	switch t {
	case TypeFrontID, TypeBackID, TypePortrait:
		return true
	}
	return false
}

// Table: documents. One current row per (user_id, document_type).
type Document struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	UserID       string    `gorm:"column:user_id;type:char(32);not null;uniqueIndex:ux_documents_user_type,priority:1"`
	DocumentType Type      `gorm:"column:document_type;size:16;not null;uniqueIndex:ux_documents_user_type,priority:2"`
	FilePath     string    `gorm:"column:file_path;type:text;not null"`
	UploadedAt   time.Time `gorm:"column:uploaded_at;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Document) TableName() string { return "documents" }

// HasAll reports whether docs covers every required type.
func HasAll(docs []Document) bool {
	seen := make(map[Type]bool, len(RequiredTypes))
	for _, d := range docs {
		seen[d.DocumentType] = true
	}
	for _, t := range RequiredTypes {
		if !seen[t] {
			return false
		}
	}
	return true
}
