// Package geocode implements the forward-geocoding domain service against
// the public Nominatim HTTP API.
package geocode

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"arenago/config"
	"arenago/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

const (
	defaultBaseURL = "https://nominatim.openstreetmap.org"
	defaultTimeout = 10 * time.Second

	// Nominatim caps response bodies well below this; the limit guards
	// against a misbehaving proxy, not the service itself.
	maxResponseBytes = 4 << 20
)

// nominatimResult mirrors the subset of a Nominatim search hit we consume.
type nominatimResult struct {
	Lat         string          `json:"lat"`
	Lon         string          `json:"lon"`
	GeoJSON     json.RawMessage `json:"geojson,omitempty"`
	BoundingBox []string        `json:"boundingbox,omitempty"`
}

// nominatimGeocoder implements service.Geocoder over the Nominatim search API.
type nominatimGeocoder struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewNominatimGeocoder is the constructor for nominatimGeocoder.
func NewNominatimGeocoder(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	baseURL := defaultBaseURL
	userAgent := cfg.Env.ServiceName
	timeout := defaultTimeout
	if cfg.Geocoding != nil {
		if cfg.Geocoding.BaseURL != "" {
			baseURL = cfg.Geocoding.BaseURL
		}
		if cfg.Geocoding.UserAgent != "" {
			userAgent = cfg.Geocoding.UserAgent
		}
		if cfg.Geocoding.Timeout > 0 {
			timeout = cfg.Geocoding.Timeout
		}
	}

	return &nominatimGeocoder{
		baseURL:   baseURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Geocode resolves a free-text address query to its best Nominatim match.
// A query with no usable match returns (nil, nil); callers treat both nil
// results and errors as "no enrichment available".
func (g *nominatimGeocoder) Geocode(ctx context.Context, query string) (*service.GeocodeResult, error) {
	reqURL, err := url.Parse(g.baseURL + "/search")
	if err != nil {
		return nil, errors.Wrap(err, "invalid geocoding base url")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("polygon_geojson", "1")
	params.Set("addressdetails", "1")
	params.Set("limit", "1")
	reqURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "geocoding request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		g.logger.Warn("geocoding lookup returned non-200",
			slog.Int("status", resp.StatusCode),
		)

		return nil, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read geocoding response")
	}

	var results []nominatimResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, errors.Wrap(err, "failed to decode geocoding response")
	}
	if len(results) == 0 {
		return nil, nil
	}

	match := results[0]
	if match.Lat == "" || match.Lon == "" {
		return nil, nil
	}

	latitude, err := strconv.ParseFloat(match.Lat, 64)
	if err != nil {
		return nil, errors.Wrap(err, "invalid latitude in geocoding response")
	}
	longitude, err := strconv.ParseFloat(match.Lon, 64)
	if err != nil {
		return nil, errors.Wrap(err, "invalid longitude in geocoding response")
	}

	return &service.GeocodeResult{
		Latitude:       latitude,
		Longitude:      longitude,
		ServiceAreaWKT: g.serviceAreaWKT(match),
	}, nil
}

// serviceAreaWKT derives the service-area polygon for a match: the
// polygonal GeoJSON outline when Nominatim returned one, otherwise a
// rectangle built from the bounding box. Non-areal outlines (points,
// ways) fall through to the bounding box too.
func (g *nominatimGeocoder) serviceAreaWKT(match nominatimResult) string {
	if len(match.GeoJSON) > 0 {
		geom, err := geojson.UnmarshalGeometry(match.GeoJSON)
		if err == nil {
			switch shape := geom.Geometry().(type) {
			case orb.Polygon, orb.MultiPolygon:
				return wkt.MarshalString(shape)
			}
		} else {
			g.logger.Debug("ignoring malformed geojson outline", slog.Any("error", err))
		}
	}

	if len(match.BoundingBox) == 4 {
		if polygon, ok := bboxToPolygon(match.BoundingBox); ok {
			return wkt.MarshalString(polygon)
		}
	}

	return ""
}

// bboxToPolygon converts Nominatim's [south, north, west, east] bounding
// box into a closed rectangle.
func bboxToPolygon(bbox []string) (orb.Polygon, bool) {
	coords := make([]float64, 4)
	for i, raw := range bbox {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, false
		}
		coords[i] = value
	}

	south, north, west, east := coords[0], coords[1], coords[2], coords[3]
	bound := orb.Bound{
		Min: orb.Point{west, south},
		Max: orb.Point{east, north},
	}

	return bound.ToPolygon(), true
}
