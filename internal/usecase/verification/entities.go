package verification

import (
	"time"

	"bankloan-backend/internal/domain/document"
	"bankloan-backend/pkg/rawimage"
)

type UploadInput struct {
	UserID string
	Type   document.Type
	Image  *rawimage.Image
}

type UploadResult struct {
	FilePath             string        `json:"filePath"`
	DocumentType         document.Type `json:"documentType"`
	HasVerifiedDocuments bool          `json:"hasVerifiedDocuments"`
	UploadedDocuments    int           `json:"uploadedDocuments"`
}

type DocumentDTO struct {
	FilePath   string    `json:"filePath"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// StatusDTO lists only the slots that have a stored document.
type StatusDTO struct {
	HasVerifiedDocuments bool                          `json:"hasVerifiedDocuments"`
	Documents            map[document.Type]DocumentDTO `json:"documents"`
}
