package verification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bankloan-backend/internal/domain/document"
	"bankloan-backend/internal/domain/errs"
	"bankloan-backend/internal/domain/filestore"
	"bankloan-backend/internal/domain/uow"
	"bankloan-backend/internal/domain/user"
	"bankloan-backend/internal/infrastructure/metrics"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrNoImage = errs.InvalidInput("Không tìm thấy ảnh tải lên")

type Usecase struct {
	users user.Repository
	docs  document.Repository
	uow   uow.UnitOfWork
	store filestore.Store
	log   *zap.Logger
	now   func() time.Time
}

func NewUsecase(users user.Repository, docs document.Repository, tx uow.UnitOfWork, store filestore.Store, log *zap.Logger) *Usecase {
	return &Usecase{users: users, docs: docs, uow: tx, store: store, log: log, now: time.Now}
}

// Upload stores the image, upserts the (user, type) slot and recomputes the
// verified flag under the user's row lock. The flag is only ever raised here.
func (u *Usecase) Upload(ctx context.Context, in UploadInput) (*UploadResult, error) {
	if !in.Type.Valid() {
		return nil, document.ErrInvalidType
	}
	if in.Image == nil || len(in.Image.Bytes) == 0 {
		return nil, ErrNoImage
	}
	if _, err := u.users.GetByUserID(ctx, in.UserID); err != nil {
		return nil, notFound(err)
	}

	name := fmt.Sprintf("%s_%s_%d.%s", in.UserID, in.Type, u.now().UnixMilli(), in.Image.Ext)
	path, err := u.store.Save(ctx, filestore.CategoryDocuments, name, in.Image.Bytes)
	if err != nil {
		u.log.Error("document write failed",
			zap.String("user_id", in.UserID), zap.String("type", string(in.Type)), zap.Error(err))
		return nil, err
	}

	out := &UploadResult{FilePath: path, DocumentType: in.Type}
	becameVerified := false
	err = u.uow.WithinUserTx(ctx, in.UserID, func(r uow.Repos, usr *user.User) error {
		if _, err := r.Documents.Upsert(ctx, in.UserID, in.Type, path); err != nil {
			return err
		}
		dirty := false
		if in.Type == document.TypePortrait {
			usr.AvatarURL = &path
			dirty = true
		}

		docs, err := r.Documents.ListByUserID(ctx, in.UserID)
		if err != nil {
			return err
		}
		if !usr.HasVerifiedDocuments && document.HasAll(docs) {
			usr.HasVerifiedDocuments = true
			becameVerified = true
			dirty = true
		}
		if dirty {
			if err := r.Users.Save(ctx, usr); err != nil {
				return err
			}
		}
		out.HasVerifiedDocuments = usr.HasVerifiedDocuments
		out.UploadedDocuments = len(docs)
		return nil
	})
	if err != nil {
		if derr := u.store.Delete(ctx, path); derr != nil {
			u.log.Warn("orphaned document not removed", zap.String("path", path), zap.Error(derr))
		}
		return nil, notFound(err)
	}

	metrics.DocumentsUploaded.WithLabelValues(string(in.Type)).Inc()
	if becameVerified {
		metrics.UsersVerified.Inc()
		u.log.Info("user verified", zap.String("user_id", in.UserID))
	}
	return out, nil
}

func (u *Usecase) Status(ctx context.Context, userID string) (*StatusDTO, error) {
	usr, err := u.users.GetByUserID(ctx, userID)
	if err != nil {
		return nil, notFound(err)
	}
	docs, err := u.docs.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := &StatusDTO{
		HasVerifiedDocuments: usr.HasVerifiedDocuments,
		Documents:            make(map[document.Type]DocumentDTO, len(docs)),
	}
	for _, d := range docs {
		out.Documents[d.DocumentType] = DocumentDTO{FilePath: d.FilePath, UploadedAt: d.UploadedAt}
	}
	return out, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user.ErrNotFound
	}
	return err
}
