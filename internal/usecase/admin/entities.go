package admin

import (
	"time"

	"bankloan-backend/internal/domain/user"
	"bankloan-backend/internal/usecase/account"

	"github.com/shopspring/decimal"
)

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenDTO struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type UsersPageDTO struct {
	Users      []account.ProfileDTO `json:"users"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	TotalPages int                  `json:"totalPages"`
}

// UserPatch is an admin edit; nil fields are left alone.
type UserPatch struct {
	FullName     *string
	Phone        *string
	PersonalInfo *user.PersonalInfo
	BankInfo     *user.BankInfo
	Balance      *decimal.Decimal
}
