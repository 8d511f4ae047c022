package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"bankloan-backend/internal/domain/contract"
	"bankloan-backend/internal/domain/notification"
	"bankloan-backend/internal/domain/outbox"
	"bankloan-backend/internal/domain/uow"
	"bankloan-backend/internal/domain/user"
	"bankloan-backend/pkg/id"

	"gorm.io/gorm"
)

func TestGormUoW_WithinTx_CommitAndRollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	guow := NewGormUoW(db)
	contracts := NewContractRepository(db)

	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		return r.Contracts.Create(ctx, makeContract("40000001", "u1", time.Now()))
	})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if _, err := contracts.GetByContractID(ctx, "40000001"); err != nil {
		t.Fatalf("not visible after commit: %v", err)
	}

	sentinel := errors.New("boom")
	err = guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Contracts.Create(ctx, makeContract("40000002", "u1", time.Now())); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("want sentinel, got %v", err)
	}
	if _, err := contracts.GetByContractID(ctx, "40000002"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected rollback, got %v", err)
	}
}

func TestGormUoW_WithinUserTx(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	guow := NewGormUoW(db)
	u := seedUser(t, db, "0933333333", "C")

	err := guow.WithinUserTx(ctx, u.UserID, func(r uow.Repos, locked *user.User) error {
		if locked.UserID != u.UserID {
			t.Fatalf("wrong user passed: %s", locked.UserID)
		}
		locked.HasVerifiedDocuments = true
		return r.Users.Save(ctx, locked)
	})
	if err != nil {
		t.Fatalf("WithinUserTx: %v", err)
	}
	got, _ := NewUserRepository(db).GetByUserID(ctx, u.UserID)
	if !got.HasVerifiedDocuments {
		t.Fatal("flag not persisted")
	}

	err = guow.WithinUserTx(ctx, "ffffffffffffffffffffffffffffffff", func(uow.Repos, *user.User) error {
		t.Fatal("fn must not run for a missing user")
		return nil
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("missing user: %v", err)
	}
}

func TestGormUoW_WithinContractTx_AllOrNothing(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	guow := NewGormUoW(db)
	u := seedUser(t, db, "0944444444", "D")
	if err := NewContractRepository(db).Create(ctx, makeContract("50000001", u.UserID, time.Now())); err != nil {
		t.Fatalf("seed: %v", err)
	}

	sentinel := errors.New("outbox write failed")
	err := guow.WithinContractTx(ctx, "50000001", func(r uow.Repos, c *contract.Contract) error {
		c.Status = contract.StatusRejected
		if err := r.Contracts.Save(ctx, c); err != nil {
			return err
		}
		n := &notification.Notification{NotificationID: id.NewULID(), UserID: u.UserID, Kind: notification.KindLoanRejected, Title: "x"}
		if err := r.Notifications.Create(ctx, n); err != nil {
			return err
		}
		if err := r.Outbox.Create(ctx, &outbox.Event{EventID: id.NewULID(), Topic: outbox.TopicLoanStatusChanged, AggregateID: c.ContractID, Payload: []byte("{}")}); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("want sentinel, got %v", err)
	}

	got, _ := NewContractRepository(db).GetByContractID(ctx, "50000001")
	if got.Status != contract.StatusPending {
		t.Fatalf("status should roll back, got %s", got.Status)
	}
	list, _ := NewNotificationRepository(db).ListByUserID(ctx, u.UserID, 10)
	pending, _ := NewOutboxRepository(db).ListPending(ctx, 10)
	if len(list) != 0 || len(pending) != 0 {
		t.Fatalf("side effects leaked: notifications=%d outbox=%d", len(list), len(pending))
	}

	if err := guow.WithinContractTx(ctx, "99999999", func(uow.Repos, *contract.Contract) error { return nil }); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("missing contract: %v", err)
	}
}
