package impl

import (
	"context"
	"log/slog"

	deliverycontext "arenago/internal/delivery/context"
	"arenago/internal/domain/entity"
	domainerrors "arenago/internal/domain/errors"
	"arenago/internal/domain/repository"
	"arenago/internal/domain/service"
	"arenago/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	centerRepo  repository.CenterRepository
	geocoder    service.Geocoder
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	centerRepo repository.CenterRepository,
	geocoder service.Geocoder,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		centerRepo:  centerRepo,
		geocoder:    geocoder,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the caller's profile joined with its center and the
// center's coordinates. A dangling center link degrades to a nil Center
// rather than an error.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	profile, err := srv.profileRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	output := &usecase.ProfileOutput{Profile: profile}
	if profile.CenterID == nil {
		return output, nil
	}

	center, err := srv.centerRepo.FindByID(ctx, *profile.CenterID)
	if err != nil {
		if errors.Is(err, repository.ErrCenterNotFound) {
			srv.log(ctx).Warn("Profile references a missing center",
				slog.String("userID", userID.String()),
				slog.String("centerID", profile.CenterID.String()),
			)

			return output, nil
		}

		return nil, errors.Wrap(err, "failed to load center")
	}
	output.Center = center

	return output, nil
}

// PatchAddress applies the partial address update to the caller's own
// center, then re-geocodes best-effort.
func (srv *profileService) PatchAddress(ctx context.Context, userID uuid.UUID, input *usecase.PatchAddressInput) (*entity.Center, error) {
	if input.IsEmpty() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no valid fields to update")
	}

	profile, err := srv.profileRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}
	if profile.CenterID == nil {
		return nil, domainerrors.ErrCenterNotFound
	}

	center, err := srv.centerRepo.FindByID(ctx, *profile.CenterID)
	if err != nil {
		if errors.Is(err, repository.ErrCenterNotFound) {
			return nil, domainerrors.ErrCenterNotFound
		}

		return nil, errors.Wrap(err, "failed to load center")
	}

	applyAddressPatch(center, input)

	if err := srv.centerRepo.UpdateAddress(ctx, center.ID, center); err != nil {
		return nil, domainerrors.NewPersistenceError(err, "address")
	}

	// Re-geocode with the new address. Never fails the update.
	enrichCenterCoordinates(ctx, srv.geocoder, srv.centerRepo, srv.log(ctx), center)

	updated, err := srv.centerRepo.FindByID(ctx, center.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload center")
	}

	return updated, nil
}

// applyAddressPatch merges the non-nil patch members onto the center.
func applyAddressPatch(center *entity.Center, input *usecase.PatchAddressInput) {
	if input.Address != nil {
		center.Address = *input.Address
	}
	if input.City != nil {
		center.City = *input.City
	}
	if input.State != nil {
		center.State = *input.State
	}
	if input.Country != nil {
		center.Country = *input.Country
	}
	if input.PostalCode != nil {
		center.PostalCode = *input.PostalCode
	}
}
