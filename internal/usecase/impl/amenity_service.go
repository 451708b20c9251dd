package impl

import (
	"context"
	"log/slog"

	deliverycontext "arenago/internal/delivery/context"
	"arenago/internal/domain/entity"
	domainerrors "arenago/internal/domain/errors"
	"arenago/internal/domain/repository"
	"arenago/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// amenityService implements the AmenityUsecase interface.
type amenityService struct {
	amenityRepo repository.AmenityRepository
	logger      *slog.Logger
}

// NewAmenityService is the constructor for amenityService.
func NewAmenityService(amenityRepo repository.AmenityRepository, logger *slog.Logger) usecase.AmenityUsecase {
	return &amenityService{
		amenityRepo: amenityRepo,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *amenityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAmenity adds an amenity to the caller's center. The slug is
// derived from the name; a name yielding an empty slug is rejected.
func (srv *amenityService) CreateAmenity(ctx context.Context, centerID uuid.UUID, input *usecase.CreateAmenityInput) (*entity.Amenity, error) {
	slug := entity.Slugify(input.Name)
	if slug == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	amenity := &entity.Amenity{
		CenterID: centerID,
		Name:     input.Name,
		Slug:     slug,
		Icon:     input.Icon,
		IsActive: true,
	}
	if err := srv.amenityRepo.Create(ctx, amenity); err != nil {
		return nil, domainerrors.NewPersistenceError(err, "amenity")
	}

	srv.log(ctx).Info("Amenity created",
		slog.String("centerID", centerID.String()),
		slog.String("slug", slug),
	)

	return amenity, nil
}

// ListAmenities returns the caller's amenities ordered by name.
func (srv *amenityService) ListAmenities(ctx context.Context, centerID uuid.UUID) ([]*entity.Amenity, error) {
	amenities, err := srv.amenityRepo.ListByCenter(ctx, centerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list amenities")
	}

	return amenities, nil
}

// SetAmenityActive toggles whether an amenity is advertised.
func (srv *amenityService) SetAmenityActive(ctx context.Context, centerID, amenityID uuid.UUID, active bool) (*entity.Amenity, error) {
	amenity, err := srv.amenityRepo.SetActive(ctx, amenityID, centerID, active)
	if err != nil {
		if errors.Is(err, repository.ErrAmenityNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, domainerrors.NewPersistenceError(err, "amenity")
	}

	return amenity, nil
}

// DeleteAmenity removes an amenity.
func (srv *amenityService) DeleteAmenity(ctx context.Context, centerID, amenityID uuid.UUID) error {
	if err := srv.amenityRepo.Delete(ctx, amenityID, centerID); err != nil {
		if errors.Is(err, repository.ErrAmenityNotFound) {
			return domainerrors.ErrNotFound
		}

		return domainerrors.NewPersistenceError(err, "amenity")
	}

	return nil
}
