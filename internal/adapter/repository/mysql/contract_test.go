package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"bankloan-backend/internal/domain/contract"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func makeContract(contractID, userID string, created time.Time) *contract.Contract {
	return &contract.Contract{
		ContractID:      contractID,
		UserID:          userID,
		LoanAmount:      decimal.NewFromInt(20_000_000),
		LoanTerm:        6,
		BankName:        "ACB",
		SignatureImage:  "/uploads/documents/sig.png",
		Status:          contract.StatusPending,
		StatusUpdatedAt: created,
		CreatedAt:       created,
	}
}

func TestContract_CreateGetExists(t *testing.T) {
	db := openTestDB(t)
	repo := NewContractRepository(db)
	ctx := context.Background()
	u := seedUser(t, db, "0911111111", "A")

	c := makeContract("12345678", u.UserID, time.Now().UTC())
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}

	ok, err := repo.ExistsByContractID(ctx, "12345678")
	if err != nil || !ok {
		t.Fatalf("Exists: ok=%v err=%v", ok, err)
	}
	ok, _ = repo.ExistsByContractID(ctx, "87654321")
	if ok {
		t.Fatal("unexpected existence")
	}

	got, err := repo.GetByContractIDForUpdate(ctx, "12345678")
	if err != nil {
		t.Fatalf("GetByContractIDForUpdate: %v", err)
	}
	if !got.LoanAmount.Equal(decimal.NewFromInt(20_000_000)) || got.LoanTerm != 6 {
		t.Fatalf("unexpected contract: %+v", got)
	}

	if _, err := repo.GetByContractID(ctx, "00000000"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestContract_DuplicateIDIsDuplicatedKey(t *testing.T) {
	db := openTestDB(t)
	repo := NewContractRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, makeContract("11112222", "u1", time.Now())); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := repo.Create(ctx, makeContract("11112222", "u2", time.Now()))
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("want ErrDuplicatedKey, got %v", err)
	}
}

func TestContract_ListByUserNewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewContractRepository(db)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)

	_ = repo.Create(ctx, makeContract("10000001", "u1", base))
	_ = repo.Create(ctx, makeContract("10000003", "u1", base.Add(2*time.Hour)))
	_ = repo.Create(ctx, makeContract("10000002", "u1", base.Add(time.Hour)))
	_ = repo.Create(ctx, makeContract("10000009", "u2", base.Add(3*time.Hour)))

	got, err := repo.ListByUserID(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByUserID: %v", err)
	}
	want := []string{"10000003", "10000002", "10000001"}
	if len(got) != len(want) {
		t.Fatalf("len = %d", len(got))
	}
	for i, c := range got {
		if c.ContractID != want[i] {
			t.Fatalf("order[%d] = %s, want %s", i, c.ContractID, want[i])
		}
	}
}

func TestContract_ListWithBorrowerSearch(t *testing.T) {
	db := openTestDB(t)
	repo := NewContractRepository(db)
	ctx := context.Background()
	alice := seedUser(t, db, "0900000001", "Alice Nguyen")
	bob := seedUser(t, db, "0900000002", "Bob Tran")
	base := time.Now().UTC().Add(-time.Hour)

	_ = repo.Create(ctx, makeContract("20000001", alice.UserID, base))
	_ = repo.Create(ctx, makeContract("20000002", bob.UserID, base.Add(time.Minute)))
	_ = repo.Create(ctx, makeContract("30000003", bob.UserID, base.Add(2*time.Minute)))

	page, err := repo.List(ctx, 1, 10, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Total != 3 || page.Items[0].ContractID != "30000003" {
		t.Fatalf("unexpected page: total=%d first=%s", page.Total, page.Items[0].ContractID)
	}
	if page.Items[0].BorrowerName != "Bob Tran" || page.Items[0].BorrowerPhone != "0900000002" {
		t.Fatalf("borrower not joined: %+v", page.Items[0])
	}

	page, _ = repo.List(ctx, 1, 10, "Alice")
	if page.Total != 1 || page.Items[0].ContractID != "20000001" {
		t.Fatalf("search by name: %+v", page)
	}
	page, _ = repo.List(ctx, 1, 10, "2000000")
	if page.Total != 2 {
		t.Fatalf("search by id total = %d, want 2", page.Total)
	}
	page, _ = repo.List(ctx, 1, 10, "_")
	if page.Total != 0 {
		t.Fatalf("underscore matched %d contracts, want 0", page.Total)
	}
	page, _ = repo.List(ctx, 1, 10, "%")
	if page.Total != 0 {
		t.Fatalf("percent matched %d contracts, want 0", page.Total)
	}
	page, _ = repo.List(ctx, 2, 2, "")
	if page.Total != 3 || len(page.Items) != 1 || page.Items[0].ContractID != "20000001" {
		t.Fatalf("page 2: %+v", page)
	}
}
