package admin

import (
	"context"
	"crypto/subtle"
	"errors"
	"regexp"
	"strings"
	"time"

	"bankloan-backend/internal/domain/errs"
	"bankloan-backend/internal/domain/uow"
	"bankloan-backend/internal/domain/user"
	"bankloan-backend/internal/domain/wallet"
	"bankloan-backend/internal/usecase/account"
	"bankloan-backend/pkg/id"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errs.New(errs.KindUnauthorized, "Tên đăng nhập hoặc mật khẩu không đúng")

var rePhone = regexp.MustCompile(`^\d{10}$`)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type TokenIssuer interface {
	IssueAdmin(subject string) (string, time.Time, error)
}

// Credentials are the single back-office account, from config.
type Credentials struct {
	Username     string
	PasswordHash string
}

type Usecase struct {
	creds  Credentials
	tokens TokenIssuer
	users  user.Repository
	uow    uow.UnitOfWork
	log    *zap.Logger
}

func NewUsecase(creds Credentials, tokens TokenIssuer, users user.Repository, tx uow.UnitOfWork, log *zap.Logger) *Usecase {
	return &Usecase{creds: creds, tokens: tokens, users: users, uow: tx, log: log}
}

// Login checks the configured credentials. With no password hash configured
// every attempt fails.
func (u *Usecase) Login(_ context.Context, in LoginInput) (*TokenDTO, error) {
	if u.creds.PasswordHash == "" {
		u.log.Warn("admin login attempted but ADMIN_PASSWORD_HASH is not set")
		return nil, ErrInvalidCredentials
	}
	nameOK := subtle.ConstantTimeCompare([]byte(in.Username), []byte(u.creds.Username)) == 1
	passOK := bcrypt.CompareHashAndPassword([]byte(u.creds.PasswordHash), []byte(in.Password)) == nil
	if !nameOK || !passOK {
		return nil, ErrInvalidCredentials
	}
	tok, exp, err := u.tokens.IssueAdmin(u.creds.Username)
	if err != nil {
		return nil, err
	}
	return &TokenDTO{Token: tok, ExpiresAt: exp}, nil
}

func (u *Usecase) ListUsers(ctx context.Context, page, limit int, search string) (*UsersPageDTO, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	p, err := u.users.List(ctx, page, limit, strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}
	out := &UsersPageDTO{
		Users:      make([]account.ProfileDTO, 0, len(p.Items)),
		Total:      p.Total,
		Page:       page,
		Limit:      limit,
		TotalPages: int((p.Total + int64(limit) - 1) / int64(limit)),
	}
	for i := range p.Items {
		out.Users = append(out.Users, *account.ToProfile(&p.Items[i]))
	}
	return out, nil
}

func (u *Usecase) GetUser(ctx context.Context, userID string) (*account.ProfileDTO, error) {
	usr, err := u.users.GetByUserID(ctx, userID)
	if err != nil {
		return nil, notFound(err)
	}
	return account.ToProfile(usr), nil
}

// UpdateUser applies p under the user's row lock. A balance change is logged
// as an adjustment transaction in the same tx.
func (u *Usecase) UpdateUser(ctx context.Context, userID string, p UserPatch) (*account.ProfileDTO, error) {
	if p.Phone != nil && !rePhone.MatchString(strings.TrimSpace(*p.Phone)) {
		return nil, errs.InvalidInput("Số điện thoại phải gồm đúng 10 chữ số")
	}
	if p.Balance != nil && p.Balance.IsNegative() {
		return nil, errs.InvalidInput("Số dư không được âm")
	}

	var out *account.ProfileDTO
	err := u.uow.WithinUserTx(ctx, userID, func(r uow.Repos, usr *user.User) error {
		if p.Phone != nil {
			phone := strings.TrimSpace(*p.Phone)
			if phone != usr.Phone {
				other, err := r.Users.GetByPhone(ctx, phone)
				switch {
				case err == nil && other.UserID != usr.UserID:
					return user.ErrPhoneTaken
				case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
					return err
				}
				usr.Phone = phone
			}
		}
		if p.FullName != nil {
			usr.FullName = strings.TrimSpace(*p.FullName)
		}
		if p.PersonalInfo != nil {
			usr.PersonalInfo = *p.PersonalInfo
		}
		if p.BankInfo != nil {
			usr.BankInfo = *p.BankInfo
		}

		var adj *wallet.Transaction
		if p.Balance != nil && !p.Balance.Equal(usr.Balance) {
			adj = &wallet.Transaction{
				TransactionID: id.NewULID(),
				UserID:        usr.UserID,
				Type:          wallet.TxAdjustment,
				Amount:        p.Balance.Sub(usr.Balance),
				BalanceAfter:  *p.Balance,
				Description:   "Điều chỉnh số dư bởi quản trị viên",
			}
			usr.Balance = *p.Balance
		}

		if err := r.Users.Save(ctx, usr); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return user.ErrPhoneTaken
			}
			return err
		}
		if adj != nil {
			if err := r.Transactions.Create(ctx, adj); err != nil {
				return err
			}
		}
		out = account.ToProfile(usr)
		return nil
	})
	if err != nil {
		return nil, notFound(err)
	}
	return out, nil
}

func (u *Usecase) DeleteUser(ctx context.Context, userID string) error {
	if err := u.users.Delete(ctx, userID); err != nil {
		return notFound(err)
	}
	u.log.Info("user deleted", zap.String("user_id", userID))
	return nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user.ErrNotFound
	}
	return err
}
