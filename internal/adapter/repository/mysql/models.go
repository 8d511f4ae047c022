package mysql

import (
	"bankloan-backend/internal/domain/contract"
	"bankloan-backend/internal/domain/document"
	"bankloan-backend/internal/domain/notification"
	"bankloan-backend/internal/domain/outbox"
	"bankloan-backend/internal/domain/settings"
	"bankloan-backend/internal/domain/user"
	"bankloan-backend/internal/domain/wallet"

	"gorm.io/gorm"
)

// Models lists every persisted entity, in dependency order.
func Models() []any {
	return []any{
		&user.User{},
		&document.Document{},
		&contract.Contract{},
		&notification.Notification{},
		&wallet.Transaction{},
		&outbox.Event{},
		&settings.Settings{},
	}
}

// AutoMigrate is used for the sqlite driver; MySQL goes through the SQL migrations.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
