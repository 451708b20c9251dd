package service

import "context"

// GeocodeResult is the outcome of a successful forward-geocode lookup.
type GeocodeResult struct {
	Latitude       float64
	Longitude      float64
	ServiceAreaWKT string // POLYGON/MULTIPOLYGON WKT for the matched area; "" when unavailable.
}

// Geocoder resolves a free-text address query to coordinates.
// Implementations return (nil, nil) when the query produced no usable
// match: geocoding is strictly a best-effort enrichment and callers
// must not fail their enclosing operation on either a nil result or an
// error from this interface.
type Geocoder interface {
	// Geocode looks up the query and returns the best match, or nil.
	Geocode(ctx context.Context, query string) (*GeocodeResult, error)
}
