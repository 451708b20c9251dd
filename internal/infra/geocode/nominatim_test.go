package geocode

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"arenago/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeocoder(t *testing.T, handler http.HandlerFunc) *nominatimGeocoder {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Geocoding: &config.GeocodingConfig{
			BaseURL:   server.URL,
			UserAgent: "arenago-test/1.0",
			Timeout:   2 * time.Second,
		},
	}

	geocoder, ok := NewNominatimGeocoder(cfg, slog.New(slog.DiscardHandler)).(*nominatimGeocoder)
	require.True(t, ok)

	return geocoder
}

func TestNominatimGeocoder_PolygonOutline(t *testing.T) {
	var gotQuery, gotUserAgent string
	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotUserAgent = r.Header.Get("User-Agent")
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("polygon_geojson"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
			"lat": "48.8588897",
			"lon": "2.3200410",
			"geojson": {"type": "Polygon", "coordinates": [[[2.2,48.8],[2.4,48.8],[2.4,48.9],[2.2,48.9],[2.2,48.8]]]}
		}]`))
	})

	result, err := geocoder.Geocode(context.Background(), "10 Rue de Rivoli, Paris, 75001, France")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "10 Rue de Rivoli, Paris, 75001, France", gotQuery)
	assert.Equal(t, "arenago-test/1.0", gotUserAgent)
	assert.InDelta(t, 48.8588897, result.Latitude, 1e-9)
	assert.InDelta(t, 2.3200410, result.Longitude, 1e-9)
	assert.Contains(t, result.ServiceAreaWKT, "POLYGON")
}

func TestNominatimGeocoder_BoundingBoxFallback(t *testing.T) {
	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
			"lat": "51.5074",
			"lon": "-0.1278",
			"geojson": {"type": "Point", "coordinates": [-0.1278, 51.5074]},
			"boundingbox": ["51.50", "51.52", "-0.13", "-0.12"]
		}]`))
	})

	result, err := geocoder.Geocode(context.Background(), "London")
	require.NoError(t, err)
	require.NotNil(t, result)

	// A non-areal outline falls back to the bounding-box rectangle.
	assert.Contains(t, result.ServiceAreaWKT, "POLYGON")
	assert.Contains(t, result.ServiceAreaWKT, "-0.13 51.5")
}

func TestNominatimGeocoder_NoMatch(t *testing.T) {
	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	result, err := geocoder.Geocode(context.Background(), "nowhere at all")
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestNominatimGeocoder_Non200IsNotAnError(t *testing.T) {
	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	result, err := geocoder.Geocode(context.Background(), "anywhere")
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestNominatimGeocoder_MissingCoordinates(t *testing.T) {
	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat": "", "lon": ""}]`))
	})

	result, err := geocoder.Geocode(context.Background(), "anywhere")
	assert.NoError(t, err)
	assert.Nil(t, result)
}
