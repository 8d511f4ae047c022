package loan

import (
	"time"

	"bankloan-backend/internal/domain/contract"
	"bankloan-backend/pkg/rawimage"

	"github.com/shopspring/decimal"
)

type CreateInput struct {
	UserID          string
	ContractID      string
	LoanAmount      decimal.Decimal
	LoanTerm        int
	BankName        string
	ContractContent string
	Signature       *rawimage.Image
}

type ContractDTO struct {
	ContractID      string          `json:"contractId"`
	UserID          string          `json:"userId"`
	LoanAmount      decimal.Decimal `json:"loanAmount"`
	LoanTerm        int             `json:"loanTerm"`
	BankName        string          `json:"bankName"`
	ContractContent string          `json:"contractContent"`
	SignatureImage  string          `json:"signatureImage"`
	Status          contract.Status `json:"status"`
	CreatedTime     string          `json:"createdTime"`
	CreatedDate     string          `json:"createdDate"`
	CreatedAt       time.Time       `json:"createdAt"`
	StatusUpdatedAt time.Time       `json:"statusUpdatedAt"`
}

// AdminContractDTO is a listing row for the back office.
type AdminContractDTO struct {
	ContractDTO
	BorrowerName  string `json:"borrowerName"`
	BorrowerPhone string `json:"borrowerPhone"`
}

type PageDTO struct {
	Items      []AdminContractDTO `json:"loans"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"totalPages"`
}

// UpdateInput carries the editable fields; nil means unchanged.
type UpdateInput struct {
	LoanAmount      *decimal.Decimal
	LoanTerm        *int
	BankName        *string
	ContractContent *string
}

type StatusResult struct {
	Contract *ContractDTO `json:"loan"`
	// false when the contract already had the requested status
	Changed bool `json:"changed"`
}

func ToDTO(c *contract.Contract) *ContractDTO {
	return &ContractDTO{
		ContractID:      c.ContractID,
		UserID:          c.UserID,
		LoanAmount:      c.LoanAmount,
		LoanTerm:        c.LoanTerm,
		BankName:        c.BankName,
		ContractContent: c.ContractContent,
		SignatureImage:  c.SignatureImage,
		Status:          c.Status,
		CreatedTime:     c.CreatedTime,
		CreatedDate:     c.CreatedDate,
		CreatedAt:       c.CreatedAt,
		StatusUpdatedAt: c.StatusUpdatedAt,
	}
}

// event payloads written to the outbox
type contractCreatedEvent struct {
	ContractID string          `json:"contractId"`
	UserID     string          `json:"userId"`
	LoanAmount decimal.Decimal `json:"loanAmount"`
	LoanTerm   int             `json:"loanTerm"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type statusChangedEvent struct {
	ContractID   string           `json:"contractId"`
	UserID       string           `json:"userId"`
	From         contract.Status  `json:"from"`
	To           contract.Status  `json:"to"`
	BalanceReset *decimal.Decimal `json:"balanceReset,omitempty"`
	ChangedAt    time.Time        `json:"changedAt"`
}
