package contract

import (
	"time"

	"bankloan-backend/internal/domain/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

var (
	ErrNotFound      = errs.New(errs.KindNotFound, "Không tìm thấy hợp đồng")
	ErrDuplicateID   = errs.New(errs.KindConflict, "Mã hợp đồng đã tồn tại, vui lòng thử lại")
	ErrIDExhausted   = errs.New(errs.KindConflict, "Không thể tạo mã hợp đồng, vui lòng thử lại")
	ErrInvalidStatus = errs.New(errs.KindInvalidInput, "Trạng thái khoản vay không hợp lệ")
)

// Table: contracts
type Contract struct {
	ID              uint64          `gorm:"column:id;primaryKey;autoIncrement"`
	ContractID      string          `gorm:"column:contract_id;type:char(8);not null;uniqueIndex:ux_contracts_contract_id"`
	UserID          string          `gorm:"column:user_id;type:char(32);not null;index:idx_contracts_user_created,priority:1"`
	LoanAmount      decimal.Decimal `gorm:"column:loan_amount;type:decimal(18,2);not null"`
	LoanTerm        int             `gorm:"column:loan_term;not null"`
	BankName        string          `gorm:"column:bank_name;size:100"`
	ContractContent string          `gorm:"column:contract_content;type:text"`
	SignatureImage  string          `gorm:"column:signature_image;type:text;not null"`
	Status          Status          `gorm:"column:status;size:16;not null;default:pending;index"`
	StatusUpdatedAt time.Time       `gorm:"column:status_updated_at"`
	// Display strings captured once at insert (vi-VN), never recomputed
	CreatedTime string         `gorm:"column:created_time;size:16"`
	CreatedDate string         `gorm:"column:created_date;size:16"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime;index:idx_contracts_user_created,priority:2"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Contract) TableName() string { return "contracts" }

// WithBorrower is an admin listing row: the contract plus the owner's name/phone.
type WithBorrower struct {
	Contract
	BorrowerName  string `gorm:"column:borrower_name"`
	BorrowerPhone string `gorm:"column:borrower_phone"`
}

type Page struct {
	Items []WithBorrower
	Total int64
}
