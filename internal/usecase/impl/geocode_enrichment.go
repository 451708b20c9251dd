package impl

import (
	"context"
	"log/slog"

	"arenago/internal/domain/entity"
	"arenago/internal/domain/repository"
	"arenago/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// enrichCenterCoordinates geocodes a center's address and stores the
// result. Every failure mode (empty address, lookup error, no match,
// write error) is swallowed; enrichment must never change the outcome of
// the operation that triggered it.
func enrichCenterCoordinates(
	ctx context.Context,
	geocoder service.Geocoder,
	centerRepo repository.CenterRepository,
	logger *slog.Logger,
	center *entity.Center,
) {
	query := center.GeocodeQuery()
	if query == "" {
		return
	}

	result, err := geocoder.Geocode(ctx, query)
	if err != nil {
		logger.Warn("Geocoding lookup failed, continuing without coordinates",
			slog.String("centerID", center.ID.String()),
			slog.Any("error", err),
		)

		return
	}
	if result == nil {
		return
	}

	coords := &entity.Coordinates{
		Latitude:       result.Latitude,
		Longitude:      result.Longitude,
		Source:         entity.GeocodeSourceNominatim,
		Geom:           pointEWKT(result.Longitude, result.Latitude),
		ServiceAreaWKT: result.ServiceAreaWKT,
	}
	if err := centerRepo.UpsertCoordinates(ctx, center.ID, coords); err != nil {
		logger.Warn("Storing coordinates failed, continuing without coordinates",
			slog.String("centerID", center.ID.String()),
			slog.Any("error", err),
		)
	}
}

// pointEWKT encodes the geocoded location as an EWKT point in SRID 4326,
// the form the spatial queries expect.
func pointEWKT(longitude, latitude float64) string {
	return "SRID=4326;" + wkt.MarshalString(orb.Point{longitude, latitude})
}
