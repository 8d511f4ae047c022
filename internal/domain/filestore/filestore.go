package filestore

import (
	"context"

	"bankloan-backend/internal/domain/errs"
)

type Category string

const (
	CategoryAvatars   Category = "avatars"
	CategoryDocuments Category = "documents"
)

var ErrWrite = errs.New(errs.KindStorage, "Lỗi lưu trữ tệp")

// Store persists bytes and returns the public path (e.g. /uploads/documents/x.png).
type Store interface {
	Save(ctx context.Context, cat Category, name string, data []byte) (string, error)
	// Delete removes a file by the public path Save returned. A missing file is not an error.
	Delete(ctx context.Context, publicPath string) error
}
