package entity

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// Amenity is a facility feature a center advertises, e.g. "Showers".
// Amenities are scoped to their owning center and soft-toggled through
// the IsActive flag rather than deleted when temporarily unavailable.
type Amenity struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the amenity.
	CenterID  uuid.UUID // The owning center.
	Name      string    // Display name as entered by the operator.
	Slug      string    // URL-safe identifier derived from the name.
	Icon      string    // Optional icon identifier chosen by the client.
	IsActive  bool      // Whether the amenity is currently advertised.
	CreatedAt time.Time // Timestamp of when the amenity was created.
}

// Slugify derives the URL-safe slug used for amenities: lower-cased,
// punctuation stripped, whitespace runs collapsed to single hyphens.
// An empty result means the name carried no usable characters.
func Slugify(value string) string {
	lowered := strings.ToLower(strings.TrimSpace(value))

	var b strings.Builder
	lastHyphen := false
	for _, r := range lowered {
		switch {
		case unicode.IsLetter(r) && r <= unicode.MaxASCII, unicode.IsDigit(r) && r <= unicode.MaxASCII:
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r) || r == '-':
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
