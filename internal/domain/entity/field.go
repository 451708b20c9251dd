package entity

import (
	"time"

	"github.com/google/uuid"
)

// FieldArea describes whether a playing field is covered.
type FieldArea string

const (
	// FieldAreaIndoor marks a covered field.
	FieldAreaIndoor FieldArea = "Indoor"
	// FieldAreaOutdoor marks an open-air field; the default for new fields.
	FieldAreaOutdoor FieldArea = "Outdoor"
)

// IsValid checks if the FieldArea is a valid value.
func (a FieldArea) IsValid() bool {
	return a == FieldAreaIndoor || a == FieldAreaOutdoor
}

// FieldStatus describes whether a field is currently bookable.
type FieldStatus string

const (
	// FieldStatusActive marks a bookable field; the default for new fields.
	FieldStatusActive FieldStatus = "active"
	// FieldStatusMaintenance marks a field temporarily out of service.
	FieldStatusMaintenance FieldStatus = "maintenance"
)

// IsValid checks if the FieldStatus is a valid value.
func (s FieldStatus) IsValid() bool {
	return s == FieldStatusActive || s == FieldStatusMaintenance
}

// Field is a bookable playing surface belonging to one Center.
type Field struct {
	ID           uuid.UUID   // The Global Unique Identifier (GUID) for the field.
	CenterID     uuid.UUID   // The owning center; every query is fenced by this.
	SportID      uuid.UUID   // The sport played on this field.
	Sport        *Sport      // Resolved sport record, when preloaded.
	Name         string      // Display name, e.g. "Court 1".
	Area         FieldArea   // Indoor or Outdoor.
	Status       FieldStatus // active or maintenance.
	LocationNote string      // Free-text hint for finding the field on site.
	ImageURL     string      // Optional photo of the field.
	CreatedAt    time.Time   // Timestamp of when the field was created.
	UpdatedAt    time.Time   // Timestamp of the last modification.
}

// Sport is a read-only catalog entry fields reference.
type Sport struct {
	ID   uuid.UUID // The Global Unique Identifier (GUID) for the sport.
	Name string    // Display name, e.g. "Padel".
	Slug string    // URL-safe identifier, e.g. "padel".
}
