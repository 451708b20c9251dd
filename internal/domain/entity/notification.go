package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification type tags used by the registration lifecycle.
const (
	// NotificationTypeCenterSubmitted is broadcast to admins on a new registration.
	NotificationTypeCenterSubmitted = "center_registration_submitted"
	// NotificationTypeCenterApproved is sent to the submitter on approval.
	NotificationTypeCenterApproved = "center_registration_approved"
	// NotificationTypeCenterRejected is sent to the submitter on rejection.
	NotificationTypeCenterRejected = "center_registration_rejected"
)

// Notification is a fire-and-forget message addressed to one account.
// Rows are insert-only from the server side; the only mutation is the
// recipient setting ReadAt. The backing table is an optional feature:
// when it is not provisioned, reads degrade to empty lists and writes
// to no-ops.
type Notification struct {
	ID              uuid.UUID      // The Global Unique Identifier (GUID) for the notification.
	RecipientUserID uuid.UUID      // The account this message is addressed to.
	Type            string         // Type tag, e.g. "center_registration_approved".
	Title           string         // Short headline rendered in the notification list.
	Message         string         // Human-readable body.
	Payload         map[string]any // Free-form payload; may include a client route hint under "route".
	ReadAt          *time.Time     // Nil while unread; set once by the recipient.
	CreatedAt       time.Time      // Timestamp of when the notification was created.
}

// IsRead reports whether the recipient has marked the notification read.
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}
