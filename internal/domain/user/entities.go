package user

import (
	"time"

	"bankloan-backend/internal/domain/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound           = errs.New(errs.KindNotFound, "Không tìm thấy người dùng")
	ErrPhoneTaken         = errs.New(errs.KindConflict, "Số điện thoại đã được đăng ký")
	ErrInvalidCredentials = errs.New(errs.KindUnauthorized, "Số điện thoại hoặc mật khẩu không đúng")
)

// PersonalInfo is the free-form profile block filled in during the loan flow.
type PersonalInfo struct {
	IDNumber              string `gorm:"column:id_number;size:20" json:"idNumber"`
	Gender                string `gorm:"column:gender;size:10" json:"gender"`
	BirthDate             string `gorm:"column:birth_date;size:10" json:"birthDate"`
	Occupation            string `gorm:"column:occupation;size:100" json:"occupation"`
	Income                string `gorm:"column:income;size:50" json:"income"`
	LoanPurpose           string `gorm:"column:loan_purpose;size:255" json:"loanPurpose"`
	Address               string `gorm:"column:address;type:text" json:"address"`
	EmergencyName         string `gorm:"column:emergency_name;size:100" json:"emergencyContactName"`
	EmergencyPhone        string `gorm:"column:emergency_phone;size:15" json:"emergencyContactPhone"`
	EmergencyRelationship string `gorm:"column:emergency_relationship;size:50" json:"emergencyContactRelationship"`
}

type BankInfo struct {
	AccountNumber string `gorm:"column:account_number;size:30" json:"accountNumber"`
	AccountName   string `gorm:"column:account_name;size:100" json:"accountName"`
	BankName      string `gorm:"column:bank_name;size:100" json:"bankName"`
	BankID        string `gorm:"column:bank_id;size:20" json:"bankId"`
	BankLogo      string `gorm:"column:bank_logo;type:text" json:"bankLogo"`
}

// Table: users
type User struct {
	ID                   uint64          `gorm:"column:id;primaryKey;autoIncrement"`
	UserID               string          `gorm:"column:user_id;type:char(32);not null;uniqueIndex:ux_users_user_id"`
	Phone                string          `gorm:"column:phone;size:10;not null;uniqueIndex:ux_users_phone"`
	PasswordHash         string          `gorm:"column:password_hash;size:72;not null"`
	FullName             string          `gorm:"column:full_name;size:100;index:idx_users_full_name"`
	AvatarURL            *string         `gorm:"column:avatar_url;type:text"`
	HasVerifiedDocuments bool            `gorm:"column:has_verified_documents;not null;default:false"`
	Balance              decimal.Decimal `gorm:"column:balance;type:decimal(18,2);not null;default:0"`
	PersonalInfo         PersonalInfo    `gorm:"embedded;embeddedPrefix:personal_"`
	BankInfo             BankInfo        `gorm:"embedded;embeddedPrefix:bank_"`
	CreatedAt            time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time       `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt            gorm.DeletedAt  `gorm:"column:deleted_at;index"`
}

func (User) TableName() string { return "users" }

// Page is a slice of users plus the unpaged total.
type Page struct {
	Items []User
	Total int64
}
