package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is an authenticated account's application-level identity.
// Its ID equals the account ID. The role column is a sync copy of the
// token claim; when the two disagree the claim wins, with the row used
// as the fallback during the stale-claim window.
type Profile struct {
	ID          uuid.UUID  // Equals the owning account's ID.
	DisplayName string     // Name shown in the dashboards.
	Email       string     // Contact email, mirrored from the account at signup.
	Phone       string     // Optional contact phone.
	Role        Role       // Application role; see Role for the claim/row relationship.
	CenterID    *uuid.UUID // Set when Role is "center": the operated Center.
	IsActive    bool       // Inactive profiles are locked out of the dashboards.
	CreatedAt   time.Time  // Timestamp of when the profile was created.
	UpdatedAt   time.Time  // Timestamp of the last modification.
}

// EffectiveRole resolves the role recorded on the profile row, applying
// the same inference the identity resolver uses: an explicit role wins,
// a linked center implies the center role, anything else is a plain user.
func (p *Profile) EffectiveRole() Role {
	if p.Role.IsValid() {
		return p.Role
	}
	if p.CenterID != nil {
		return RoleCenter
	}

	return RoleUser
}

// Account is a credential record: the thing that signs in. Application
// identity (role, center link) lives on the Profile keyed by the same ID.
type Account struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the account.
	Email        string    // Unique login identifier.
	PasswordHash string    // bcrypt hash of the password.
	CreatedAt    time.Time // Timestamp of when the account was created.
}
