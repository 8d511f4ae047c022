package settings

import (
	"time"

	"bankloan-backend/internal/domain/errs"

	"github.com/shopspring/decimal"
)

// SingletonID is the primary key of the only settings row.
const SingletonID uint64 = 1

var ErrInvalidRange = errs.New(errs.KindInvalidInput, "Giá trị tối thiểu phải nhỏ hơn hoặc bằng giá trị tối đa")

// Table: settings
type Settings struct {
	ID            uint64          `gorm:"column:id;primaryKey"`
	InterestRate  decimal.Decimal `gorm:"column:interest_rate;type:decimal(6,4);not null"`
	MinLoanAmount decimal.Decimal `gorm:"column:min_loan_amount;type:decimal(18,2);not null"`
	MaxLoanAmount decimal.Decimal `gorm:"column:max_loan_amount;type:decimal(18,2);not null"`
	MinLoanTerm   int             `gorm:"column:min_loan_term;not null"`
	MaxLoanTerm   int             `gorm:"column:max_loan_term;not null"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Settings) TableName() string { return "settings" }

// Defaults is what a fresh install serves before an admin edits anything.
func Defaults() Settings {
	return Settings{
		ID:            SingletonID,
		InterestRate:  decimal.RequireFromString("0.0100"),
		MinLoanAmount: decimal.NewFromInt(10_000_000),
		MaxLoanAmount: decimal.NewFromInt(500_000_000),
		MinLoanTerm:   6,
		MaxLoanTerm:   60,
	}
}

func (s Settings) Validate() error {
	if s.MinLoanAmount.GreaterThan(s.MaxLoanAmount) || s.MinLoanTerm > s.MaxLoanTerm {
		return ErrInvalidRange
	}
	if s.InterestRate.IsNegative() || s.MinLoanAmount.IsNegative() || s.MinLoanTerm < 1 {
		return errs.InvalidInput("Giá trị cấu hình không hợp lệ")
	}
	return nil
}
