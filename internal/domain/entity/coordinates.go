package entity

import (
	"time"

	"github.com/google/uuid"
)

// GeocodeSourceNominatim tags coordinates resolved through the public
// Nominatim geocoding service.
const GeocodeSourceNominatim = "nominatim"

// Coordinates is the geocoded location of a Center. At most one record
// exists per center; re-geocoding after an address edit updates the row
// in place rather than inserting a second one. Absence of this record is
// tolerated everywhere it is read.
type Coordinates struct {
	ID             uuid.UUID // The Global Unique Identifier (GUID) for the coordinates record.
	Latitude       float64   // The geographic latitude (WGS 84).
	Longitude      float64   // The geographic longitude (WGS 84).
	Source         string    // The geocoding provider that produced this record, e.g. "nominatim".
	Geom           string    // EWKT point geometry (SRID 4326) for spatial queries.
	ServiceAreaWKT string    // EWKT polygon for the facility's service area; empty when unknown.
	CreatedAt      time.Time // Timestamp of when this record was created.
	UpdatedAt      time.Time // Timestamp of the last re-geocode.
}
