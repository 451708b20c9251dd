// Package model contains the GORM persistence models mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// CenterModel mirrors the 'centers' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type CenterModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name               string    `gorm:"type:varchar(255);not null"`
	Email              string    `gorm:"type:varchar(255);not null"`
	Phone              string    `gorm:"type:varchar(50)"`
	Address            string    `gorm:"type:varchar(255)"`
	City               string    `gorm:"type:varchar(100)"`
	State              string    `gorm:"type:varchar(100)"`
	Country            string    `gorm:"type:varchar(100)"`
	CountryCode        string    `gorm:"type:varchar(8)"`
	PostalCode         string    `gorm:"type:varchar(20)"`
	BusinessID         string    `gorm:"type:varchar(100)"`
	ContactPerson      string    `gorm:"type:varchar(100)"`
	ContactPersonPhone string    `gorm:"type:varchar(50)"`
	Status             string    `gorm:"type:varchar(20);not null;default:pending;index"`
	CreatedBy          uuid.UUID `gorm:"type:uuid;not null;index"`
	CoordinatesID      *uuid.UUID
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Coordinates *CoordinatesModel `gorm:"foreignKey:CoordinatesID"`
}

// TableName explicitly sets the table name for GORM.
func (CenterModel) TableName() string {
	return "centers"
}

// CoordinatesModel mirrors the 'center_coordinates' table. Geometry columns
// hold EWKT strings so the schema works with or without PostGIS installed.
type CoordinatesModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Latitude    float64   `gorm:"not null"`
	Longitude   float64   `gorm:"not null"`
	Source      string    `gorm:"type:varchar(50);not null"`
	Geom        string    `gorm:"type:text"`
	ServiceArea *string   `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CoordinatesModel) TableName() string {
	return "center_coordinates"
}
