package settings

import (
	"time"

	"bankloan-backend/internal/domain/settings"

	"github.com/shopspring/decimal"
)

type SettingsDTO struct {
	InterestRate  decimal.Decimal `json:"interestRate"`
	MinLoanAmount decimal.Decimal `json:"minLoanAmount"`
	MaxLoanAmount decimal.Decimal `json:"maxLoanAmount"`
	MinLoanTerm   int             `json:"minLoanTerm"`
	MaxLoanTerm   int             `json:"maxLoanTerm"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// Patch holds the admin edit; nil fields keep their current value.
type Patch struct {
	InterestRate  *decimal.Decimal `json:"interestRate"`
	MinLoanAmount *decimal.Decimal `json:"minLoanAmount"`
	MaxLoanAmount *decimal.Decimal `json:"maxLoanAmount"`
	MinLoanTerm   *int             `json:"minLoanTerm"`
	MaxLoanTerm   *int             `json:"maxLoanTerm"`
}

func toDTO(s *settings.Settings) *SettingsDTO {
	return &SettingsDTO{
		InterestRate:  s.InterestRate,
		MinLoanAmount: s.MinLoanAmount,
		MaxLoanAmount: s.MaxLoanAmount,
		MinLoanTerm:   s.MinLoanTerm,
		MaxLoanTerm:   s.MaxLoanTerm,
		UpdatedAt:     s.UpdatedAt,
	}
}
