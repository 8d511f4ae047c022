package account

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"bankloan-backend/internal/domain/errs"
	"bankloan-backend/internal/domain/filestore"
	"bankloan-backend/internal/domain/uow"
	"bankloan-backend/internal/domain/user"
	"bankloan-backend/pkg/id"
	"bankloan-backend/pkg/rawimage"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	minPasswordLen = 6
	// bcrypt only accepts 72 bytes
	maxPasswordLen = 72
	avatarMaxSide  = 512
)

var rePhone = regexp.MustCompile(`^\d{10}$`)

type Usecase struct {
	users user.Repository
	uow   uow.UnitOfWork
	store filestore.Store
	log   *zap.Logger

	bcryptCost int
	now        func() time.Time
}

func NewUsecase(users user.Repository, tx uow.UnitOfWork, store filestore.Store, log *zap.Logger) *Usecase {
	return &Usecase{
		users:      users,
		uow:        tx,
		store:      store,
		log:        log,
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*ProfileDTO, error) {
	phone := strings.TrimSpace(in.Phone)
	if !rePhone.MatchString(phone) {
		return nil, errs.InvalidInput("Số điện thoại phải gồm đúng 10 chữ số")
	}
	if len(in.Password) < minPasswordLen {
		return nil, errs.InvalidInput(fmt.Sprintf("Mật khẩu phải có ít nhất %d ký tự", minPasswordLen))
	}
	if len(in.Password) > maxPasswordLen {
		return nil, errs.InvalidInput(fmt.Sprintf("Mật khẩu không được vượt quá %d ký tự", maxPasswordLen))
	}

	_, err := u.users.GetByPhone(ctx, phone)
	switch {
	case err == nil:
		return nil, user.ErrPhoneTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.bcryptCost)
	if err != nil {
		return nil, err
	}
	usr := &user.User{
		UserID:       id.NewID32(),
		Phone:        phone,
		PasswordHash: string(hash),
		Balance:      decimal.Zero,
	}
	if err := u.users.Create(ctx, usr); err != nil {
		// lost the race against another signup with the same phone
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, user.ErrPhoneTaken
		}
		return nil, err
	}
	u.log.Info("user registered", zap.String("user_id", usr.UserID))
	return ToProfile(usr), nil
}

func (u *Usecase) Login(ctx context.Context, in LoginInput) (*ProfileDTO, error) {
	usr, err := u.users.GetByPhone(ctx, strings.TrimSpace(in.Phone))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)) != nil {
		return nil, user.ErrInvalidCredentials
	}
	return ToProfile(usr), nil
}

func (u *Usecase) Get(ctx context.Context, userID string) (*ProfileDTO, error) {
	usr, err := u.users.GetByUserID(ctx, userID)
	if err != nil {
		return nil, notFound(err)
	}
	return ToProfile(usr), nil
}

func (u *Usecase) UpdatePersonalInfo(ctx context.Context, userID string, in PersonalInfoInput) (*ProfileDTO, error) {
	var out *ProfileDTO
	err := u.uow.WithinUserTx(ctx, userID, func(r uow.Repos, usr *user.User) error {
		if name := strings.TrimSpace(in.FullName); name != "" {
			usr.FullName = name
		}
		usr.PersonalInfo = in.PersonalInfo
		if err := r.Users.Save(ctx, usr); err != nil {
			return err
		}
		out = ToProfile(usr)
		return nil
	})
	if err != nil {
		return nil, notFound(err)
	}
	return out, nil
}

func (u *Usecase) UpdateBankInfo(ctx context.Context, userID string, in user.BankInfo) (*ProfileDTO, error) {
	if strings.TrimSpace(in.AccountNumber) == "" || strings.TrimSpace(in.BankName) == "" {
		return nil, errs.InvalidInput("Vui lòng nhập số tài khoản và tên ngân hàng")
	}
	var out *ProfileDTO
	err := u.uow.WithinUserTx(ctx, userID, func(r uow.Repos, usr *user.User) error {
		usr.BankInfo = in
		if err := r.Users.Save(ctx, usr); err != nil {
			return err
		}
		out = ToProfile(usr)
		return nil
	})
	if err != nil {
		return nil, notFound(err)
	}
	return out, nil
}

// UploadAvatar downscales img to fit avatarMaxSide and points the user's avatar at it.
func (u *Usecase) UploadAvatar(ctx context.Context, userID string, img *rawimage.Image) (*AvatarDTO, error) {
	if img == nil || len(img.Bytes) == 0 {
		return nil, errs.InvalidInput("Không có ảnh được tải lên")
	}
	if _, err := u.users.GetByUserID(ctx, userID); err != nil {
		return nil, notFound(err)
	}

	fitted, err := rawimage.Fit(img, avatarMaxSide, avatarMaxSide)
	if err != nil {
		return nil, errs.InvalidInput("Ảnh không hợp lệ")
	}
	name := fmt.Sprintf("%s_avatar_%d.%s", userID, u.now().UnixMilli(), fitted.Ext)
	path, err := u.store.Save(ctx, filestore.CategoryAvatars, name, fitted.Bytes)
	if err != nil {
		u.log.Error("avatar write failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	err = u.uow.WithinUserTx(ctx, userID, func(r uow.Repos, usr *user.User) error {
		usr.AvatarURL = &path
		return r.Users.Save(ctx, usr)
	})
	if err != nil {
		if derr := u.store.Delete(ctx, path); derr != nil {
			u.log.Warn("orphaned avatar not removed", zap.String("path", path), zap.Error(derr))
		}
		return nil, notFound(err)
	}
	return &AvatarDTO{FilePath: path}, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user.ErrNotFound
	}
	return err
}
