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
)

const stageStatusWrite = "status"

// reviewService implements the ReviewUsecase interface. The status write
// is unconditional: concurrent reviews of the same center race at the
// storage layer with last write wins, and a rejected center may still be
// approved afterwards.
type reviewService struct {
	centerRepo     repository.CenterRepository
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	centerRepo repository.CenterRepository,
	notificationUC usecase.NotificationUsecase,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		centerRepo:     centerRepo,
		notificationUC: notificationUC,
		logger:         logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Review applies an approve or reject decision to a center. Authorization
// is checked before validation, validation before the write, and the
// write commits before the best-effort notification.
func (srv *reviewService) Review(ctx context.Context, input *usecase.ReviewInput) (*usecase.ReviewOutput, error) {
	if input.Reviewer == nil || !input.Reviewer.Role.CanReview() {
		return nil, domainerrors.ErrUnauthorized
	}

	if input.CenterID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("centerId is required")
	}
	status, ok := input.Action.Status()
	if !ok {
		return nil, domainerrors.ErrInvalidAction
	}

	center, err := srv.centerRepo.UpdateStatus(ctx, input.CenterID, status)
	if err != nil {
		srv.log(ctx).Error("Center status write failed",
			slog.String("centerID", input.CenterID.String()),
			slog.String("status", status.String()),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewPersistenceError(err, stageStatusWrite)
	}

	srv.log(ctx).Info("Center reviewed",
		slog.String("centerID", center.ID.String()),
		slog.String("status", status.String()),
		slog.String("reviewerID", input.Reviewer.UserID.String()),
	)

	srv.notifySubmitter(ctx, center, status)

	return &usecase.ReviewOutput{
		CenterID: center.ID,
		Status:   status,
	}, nil
}

// notifySubmitter tells the submitting account about the outcome. A
// failure here is logged, not surfaced; the review already committed.
func (srv *reviewService) notifySubmitter(ctx context.Context, center *entity.Center, status entity.CenterStatus) {
	if center.CreatedBy == uuid.Nil {
		return
	}

	approved := status == entity.CenterStatusActive

	input := &usecase.NotifyInput{
		RecipientUserID: center.CreatedBy,
		Payload: map[string]any{
			"centerId": center.ID.String(),
		},
	}
	if approved {
		input.Type = entity.NotificationTypeCenterApproved
		input.Title = "Center approved"
		input.Message = center.Name + " has been approved by admin."
		input.Payload["route"] = "/center/dashboard"
	} else {
		input.Type = entity.NotificationTypeCenterRejected
		input.Title = "Center registration rejected"
		input.Message = center.Name + " has been rejected by admin."
		input.Payload["route"] = "/center/pending"
	}

	if err := srv.notificationUC.Notify(ctx, input); err != nil {
		srv.log(ctx).Warn("Review notification failed",
			slog.String("centerID", center.ID.String()),
			slog.Any("error", err),
		)
	}
}
