package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"bankloan-backend/internal/domain/errs"
	"bankloan-backend/internal/domain/uow"
	"bankloan-backend/internal/domain/user"
	"bankloan-backend/internal/domain/wallet"
	"bankloan-backend/internal/infrastructure/jwtauth"
	"bankloan-backend/internal/testutil/uowmock"
	"bankloan-backend/internal/testutil/usermock"
	"bankloan-backend/internal/testutil/walletmock"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret!"), bcrypt.MinCost)
	mgr := jwtauth.NewManager("test-secret", time.Hour)
	uc := NewUsecase(Credentials{Username: "admin", PasswordHash: string(hash)}, mgr, &usermock.Repo{}, uowmock.New(), zap.NewNop())

	tok, err := uc.Login(context.Background(), LoginInput{Username: "admin", Password: "s3cret!"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sub, err := mgr.VerifyAdmin(tok.Token); err != nil || sub != "admin" {
		t.Fatalf("issued token does not verify: %q %v", sub, err)
	}

	for _, in := range []LoginInput{{"admin", "wrong"}, {"root", "s3cret!"}, {"", ""}} {
		if _, err := uc.Login(context.Background(), in); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("%+v: want ErrInvalidCredentials, got %v", in, err)
		}
	}
}

func TestLogin_NoHashConfigured(t *testing.T) {
	uc := NewUsecase(Credentials{Username: "admin"}, jwtauth.NewManager("x", time.Hour), &usermock.Repo{}, uowmock.New(), zap.NewNop())
	if _, err := uc.Login(context.Background(), LoginInput{Username: "admin", Password: ""}); errs.KindOf(err) != errs.KindUnauthorized {
		t.Fatalf("want unauthorized, got %v", err)
	}
}

func TestListUsers(t *testing.T) {
	var gotPage, gotSize int
	users := &usermock.Repo{ListFn: func(_ context.Context, page, size int, _ string) (*user.Page, error) {
		gotPage, gotSize = page, size
		return &user.Page{Items: []user.User{{UserID: "u1"}, {UserID: "u2"}}, Total: 21}, nil
	}}
	uc := NewUsecase(Credentials{}, nil, users, uowmock.New(), zap.NewNop())

	p, err := uc.ListUsers(context.Background(), -1, 0, " an ")
	if err != nil {
		t.Fatal(err)
	}
	if gotPage != 1 || gotSize != defaultPageSize || p.TotalPages != 3 || len(p.Users) != 2 {
		t.Fatalf("page=%d size=%d dto=%+v", gotPage, gotSize, p)
	}
}

func newUserFixture(u *user.User, phones map[string]string) (*Usecase, *[]wallet.Transaction) {
	var logged []wallet.Transaction
	users := &usermock.Repo{
		GetByUserIDForUpdateFn: func(_ context.Context, id string) (*user.User, error) {
			if id != u.UserID {
				return nil, gorm.ErrRecordNotFound
			}
			return u, nil
		},
		GetByPhoneFn: func(_ context.Context, phone string) (*user.User, error) {
			if owner, ok := phones[phone]; ok {
				return &user.User{UserID: owner, Phone: phone}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	txs := &walletmock.Repo{CreateFn: func(_ context.Context, t *wallet.Transaction) error {
		logged = append(logged, *t)
		return nil
	}}
	uc := NewUsecase(Credentials{}, nil, users, uowmock.Passthrough(uow.Repos{Users: users, Transactions: txs}), zap.NewNop())
	return uc, &logged
}

func TestUpdateUser_BalanceAdjustment(t *testing.T) {
	u := &user.User{UserID: "u1", Phone: "0911111111", Balance: decimal.NewFromInt(100)}
	uc, logged := newUserFixture(u, nil)

	bal := decimal.NewFromInt(350)
	name := " Le Van C "
	dto, err := uc.UpdateUser(context.Background(), "u1", UserPatch{Balance: &bal, FullName: &name})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if !dto.Balance.Equal(bal) || dto.FullName != "Le Van C" {
		t.Fatalf("dto = %+v", dto)
	}
	if len(*logged) != 1 || !(*logged)[0].Amount.Equal(decimal.NewFromInt(250)) || (*logged)[0].Type != wallet.TxAdjustment {
		t.Fatalf("adjustments = %+v", *logged)
	}

	// same balance again: nothing logged
	if _, err := uc.UpdateUser(context.Background(), "u1", UserPatch{Balance: &bal}); err != nil {
		t.Fatal(err)
	}
	if len(*logged) != 1 {
		t.Fatalf("unchanged balance must not log, got %d rows", len(*logged))
	}
}

func TestUpdateUser_Phone(t *testing.T) {
	u := &user.User{UserID: "u1", Phone: "0911111111"}
	uc, _ := newUserFixture(u, map[string]string{"0922222222": "u2", "0911111111": "u1"})

	taken := "0922222222"
	if _, err := uc.UpdateUser(context.Background(), "u1", UserPatch{Phone: &taken}); !errors.Is(err, user.ErrPhoneTaken) {
		t.Fatalf("taken phone: %v", err)
	}
	bad := "12"
	if _, err := uc.UpdateUser(context.Background(), "u1", UserPatch{Phone: &bad}); errs.KindOf(err) != errs.KindInvalidInput {
		t.Fatalf("bad phone: %v", err)
	}
	free := "0933333333"
	dto, err := uc.UpdateUser(context.Background(), "u1", UserPatch{Phone: &free})
	if err != nil || dto.Phone != free {
		t.Fatalf("free phone: %+v %v", dto, err)
	}
	if _, err := uc.UpdateUser(context.Background(), "ghost", UserPatch{}); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("unknown user: %v", err)
	}
}

func TestDeleteUser(t *testing.T) {
	users := &usermock.Repo{DeleteFn: func(_ context.Context, id string) error {
		if id == "u1" {
			return nil
		}
		return gorm.ErrRecordNotFound
	}}
	uc := NewUsecase(Credentials{}, nil, users, uowmock.New(), zap.NewNop())
	if err := uc.DeleteUser(context.Background(), "u1"); err != nil {
		t.Fatal(err)
	}
	if err := uc.DeleteUser(context.Background(), "u2"); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
