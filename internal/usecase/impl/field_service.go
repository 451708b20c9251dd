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

// fieldService implements the FieldUsecase interface. Every write is
// fenced by the caller's own center ID.
type fieldService struct {
	fieldRepo repository.FieldRepository
	sportRepo repository.SportRepository
	logger    *slog.Logger
}

// NewFieldService is the constructor for fieldService.
func NewFieldService(
	fieldRepo repository.FieldRepository,
	sportRepo repository.SportRepository,
	logger *slog.Logger,
) usecase.FieldUsecase {
	return &fieldService{
		fieldRepo: fieldRepo,
		sportRepo: sportRepo,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *fieldService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateField adds a field to the caller's center. Name and sport are
// required; area and status default to Outdoor/active.
func (srv *fieldService) CreateField(ctx context.Context, centerID uuid.UUID, input *usecase.CreateFieldInput) (*entity.Field, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if input.SportID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("sportId is required")
	}

	area := input.Area
	if area == "" {
		area = entity.FieldAreaOutdoor
	}
	if !area.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("area must be Indoor or Outdoor")
	}

	status := input.Status
	if status == "" {
		status = entity.FieldStatusActive
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be active or maintenance")
	}

	field := &entity.Field{
		CenterID:     centerID,
		SportID:      input.SportID,
		Name:         input.Name,
		Area:         area,
		Status:       status,
		LocationNote: input.LocationNote,
		ImageURL:     input.ImageURL,
	}
	if err := srv.fieldRepo.Create(ctx, field); err != nil {
		return nil, domainerrors.NewPersistenceError(err, "field")
	}

	srv.log(ctx).Info("Field created",
		slog.String("centerID", centerID.String()),
		slog.String("fieldID", field.ID.String()),
	)

	return field, nil
}

// ListFields returns the caller's fields, newest first.
func (srv *fieldService) ListFields(ctx context.Context, centerID uuid.UUID) ([]*entity.Field, error) {
	fields, err := srv.fieldRepo.ListByCenter(ctx, centerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list fields")
	}

	return fields, nil
}

// UpdateField applies a partial update to one of the caller's fields.
func (srv *fieldService) UpdateField(ctx context.Context, centerID, fieldID uuid.UUID, updates *repository.FieldUpdates) (*entity.Field, error) {
	if updates == nil || updates.IsEmpty() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no valid fields to update")
	}
	if updates.Area != nil && !updates.Area.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("area must be Indoor or Outdoor")
	}
	if updates.Status != nil && !updates.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be active or maintenance")
	}

	field, err := srv.fieldRepo.Update(ctx, fieldID, centerID, updates)
	if err != nil {
		if errors.Is(err, repository.ErrFieldNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, domainerrors.NewPersistenceError(err, "field")
	}

	return field, nil
}

// ListSports returns the public sports catalog.
func (srv *fieldService) ListSports(ctx context.Context) ([]*entity.Sport, error) {
	sports, err := srv.sportRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sports")
	}

	return sports, nil
}
