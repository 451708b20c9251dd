package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel mirrors the optional 'notifications' table. The table
// may be absent entirely; repositories translate the undefined-table error
// into the degraded-mode signal instead of failing.
type NotificationModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RecipientUserID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Type            string         `gorm:"type:varchar(100);not null"`
	Title           string         `gorm:"type:varchar(255);not null"`
	Message         string         `gorm:"type:text;not null"`
	Payload         map[string]any `gorm:"type:jsonb;serializer:json"`
	ReadAt          *time.Time
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
