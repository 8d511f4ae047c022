package account

import (
	"time"

	"bankloan-backend/internal/domain/user"

	"github.com/shopspring/decimal"
)

type RegisterInput struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type LoginInput struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type PersonalInfoInput struct {
	FullName     string            `json:"fullName"`
	PersonalInfo user.PersonalInfo `json:"personalInfo"`
}

// ProfileDTO is the public projection of a user; the password hash never leaves the usecase.
type ProfileDTO struct {
	UserID               string            `json:"userId"`
	Phone                string            `json:"phone"`
	FullName             string            `json:"fullName"`
	AvatarURL            *string           `json:"avatarUrl"`
	HasVerifiedDocuments bool              `json:"hasVerifiedDocuments"`
	Balance              decimal.Decimal   `json:"balance"`
	PersonalInfo         user.PersonalInfo `json:"personalInfo"`
	BankInfo             user.BankInfo     `json:"bankInfo"`
	CreatedAt            time.Time         `json:"createdAt"`
}

type AvatarDTO struct {
	FilePath string `json:"filePath"`
}

func ToProfile(u *user.User) *ProfileDTO {
	return &ProfileDTO{
		UserID:               u.UserID,
		Phone:                u.Phone,
		FullName:             u.FullName,
		AvatarURL:            u.AvatarURL,
		HasVerifiedDocuments: u.HasVerifiedDocuments,
		Balance:              u.Balance,
		PersonalInfo:         u.PersonalInfo,
		BankInfo:             u.BankInfo,
		CreatedAt:            u.CreatedAt,
	}
}
