package notification

import (
	"time"

	"bankloan-backend/internal/domain/errs"
)

type Kind string

const (
	KindLoanApproved Kind = "loan_approved"
	KindLoanRejected Kind = "loan_rejected"
)

var ErrNotFound = errs.New(errs.KindNotFound, "Không tìm thấy thông báo")

// Table: notifications
type Notification struct {
	ID             uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	NotificationID string    `gorm:"column:notification_id;type:char(26);not null;uniqueIndex:ux_notifications_notification_id"`
	UserID         string    `gorm:"column:user_id;type:char(32);not null;index"`
	ContractID     string    `gorm:"column:contract_id;size:8"`
	Kind           Kind      `gorm:"column:kind;size:32;not null"`
	Title          string    `gorm:"column:title;size:255;not null"`
	Message        string    `gorm:"column:message;type:text"`
	IsRead         bool      `gorm:"column:is_read;not null;default:false"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Notification) TableName() string { return "notifications" }
