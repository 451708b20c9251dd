package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. The primary key equals the
// owning account's ID rather than an independently generated UUID.
type ProfileModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	DisplayName string    `gorm:"type:varchar(100)"`
	Email       string    `gorm:"type:varchar(255)"`
	Phone       string    `gorm:"type:varchar(50)"`
	Role        string    `gorm:"type:varchar(20);not null;default:user;index"`
	CenterID    *uuid.UUID
	IsActive    bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// AccountModel mirrors the 'accounts' table.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time

	Profile *ProfileModel `gorm:"foreignKey:ID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
