package model

import (
	"time"

	"github.com/google/uuid"
)

// FieldModel mirrors the 'center_fields' table.
type FieldModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CenterID     uuid.UUID `gorm:"type:uuid;not null;index"`
	SportID      uuid.UUID `gorm:"type:uuid;not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Area         string    `gorm:"type:varchar(20);not null;default:Outdoor"`
	Status       string    `gorm:"type:varchar(20);not null;default:active"`
	LocationNote *string   `gorm:"type:text"`
	ImageURL     *string   `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Sport *SportModel `gorm:"foreignKey:SportID"`
}

// TableName explicitly sets the table name for GORM.
func (FieldModel) TableName() string {
	return "center_fields"
}

// SportModel mirrors the read-only 'sports' catalog table.
type SportModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name string    `gorm:"type:varchar(100);not null"`
	Slug string    `gorm:"type:varchar(100);unique;not null"`
}

// TableName explicitly sets the table name for GORM.
func (SportModel) TableName() string {
	return "sports"
}

// AmenityModel mirrors the 'center_amenities' table.
type AmenityModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CenterID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Slug      string    `gorm:"type:varchar(100);not null"`
	Icon      *string   `gorm:"type:varchar(100)"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AmenityModel) TableName() string {
	return "center_amenities"
}
