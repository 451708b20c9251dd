// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CenterStatus represents the lifecycle state of a Center registration.
type CenterStatus string

const (
	// CenterStatusPending indicates a freshly submitted registration awaiting review.
	CenterStatusPending CenterStatus = "pending"
	// CenterStatusActive indicates a registration approved by an admin.
	CenterStatusActive CenterStatus = "active"
	// CenterStatusRejected indicates a registration turned down by an admin.
	CenterStatusRejected CenterStatus = "rejected"
)

// String returns the string representation of the status.
func (s CenterStatus) String() string {
	return string(s)
}

// IsValid checks if the CenterStatus is a valid value.
func (s CenterStatus) IsValid() bool {
	switch s {
	case CenterStatusPending, CenterStatusActive, CenterStatusRejected:
		return true
	default:
		return false
	}
}

// ReviewAction is the verb an admin applies to a pending registration.
type ReviewAction string

const (
	// ReviewActionApprove transitions a center to the active status.
	ReviewActionApprove ReviewAction = "approve"
	// ReviewActionReject transitions a center to the rejected status.
	ReviewActionReject ReviewAction = "reject"
)

// Status maps the review action onto the resulting center status.
// The bool is false when the action is not a recognized verb.
func (a ReviewAction) Status() (CenterStatus, bool) {
	switch a {
	case ReviewActionApprove:
		return CenterStatusActive, true
	case ReviewActionReject:
		return CenterStatusRejected, true
	default:
		return "", false
	}
}

// Center is a tenant business entity: a sports facility registered on the
// platform. It is created in the pending status by the registration intake
// and only the approval workflow mutates its status afterwards.
type Center struct {
	ID                 uuid.UUID    // The Global Unique Identifier (GUID) for the center.
	Name               string       // The official business name shown to players.
	Email              string       // Contact email for the business.
	Phone              string       // Contact phone for the business.
	Address            string       // Street address line.
	City               string       // City of the facility.
	State              string       // State or province, where applicable.
	Country            string       // Country name.
	CountryCode        string       // ISO country code supplied by the registrant.
	PostalCode         string       // Postal/ZIP code.
	BusinessID         string       // Business registration identifier.
	ContactPerson      string       // Name of the person handling the registration.
	ContactPersonPhone string       // Direct phone of the contact person.
	Status             CenterStatus // Lifecycle status: pending, active or rejected.
	CreatedBy          uuid.UUID    // The account that submitted the registration.
	CoordinatesID      *uuid.UUID   // Optional link to the geocoded Coordinates record.
	Coordinates        *Coordinates // The geocoded location, when enrichment succeeded.
	CreatedAt          time.Time    // Timestamp of when the registration was submitted.
	UpdatedAt          time.Time    // Timestamp of the last modification.
}

// GeocodeQuery builds the free-text query handed to the geocoder from the
// center's address components. Empty components are skipped; an entirely
// empty address yields "" and the enrichment stage is skipped.
func (c *Center) GeocodeQuery() string {
	parts := []string{c.Address, c.City, c.PostalCode, c.Country}
	query := ""
	for _, part := range parts {
		if part == "" {
			continue
		}
		if query != "" {
			query += ", "
		}
		query += part
	}

	return query
}
