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
	"go.uber.org/fx"
)

// Stage tags carried on persistence errors so the intake's sequential
// stages stay distinguishable for the caller.
const (
	stageCenterInsert = "center"
	stageProfileLink  = "profile"
	stageRoleStamp    = "role"
)

// registrationService implements the RegistrationUsecase interface. The
// intake runs as discrete sequential stages rather than one transaction:
// the center insert commits before enrichment and profile linking are
// attempted, and a later-stage failure leaves the earlier writes in place.
type registrationService struct {
	centerRepo     repository.CenterRepository
	profileRepo    repository.ProfileRepository
	geocoder       service.Geocoder
	tokenService   service.TokenService
	identity       usecase.IdentityUsecase
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// RegistrationServiceParams holds dependencies for RegistrationService, injected by Fx.
type RegistrationServiceParams struct {
	fx.In

	CenterRepo     repository.CenterRepository
	ProfileRepo    repository.ProfileRepository
	Geocoder       service.Geocoder
	TokenService   service.TokenService
	Identity       usecase.IdentityUsecase
	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NewRegistrationService is the constructor for registrationService.
func NewRegistrationService(params RegistrationServiceParams) usecase.RegistrationUsecase {
	return &registrationService{
		centerRepo:     params.CenterRepo,
		profileRepo:    params.ProfileRepo,
		geocoder:       params.Geocoder,
		tokenService:   params.TokenService,
		identity:       params.Identity,
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *registrationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register runs the staged registration intake.
func (srv *registrationService) Register(ctx context.Context, input *usecase.RegisterCenterInput) (*usecase.RegisterCenterOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("userId is required")
	}
	if input.CenterName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("centerName is required")
	}
	if input.Email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	srv.log(ctx).Info("Starting center registration",
		slog.String("userID", input.UserID.String()),
		slog.String("centerName", input.CenterName),
	)

	// Stage 1: the center insert. Fatal on failure, nothing written yet.
	center := &entity.Center{
		Name:               input.CenterName,
		Email:              input.Email,
		Phone:              input.Phone,
		Address:            input.Address,
		City:               input.City,
		State:              input.State,
		Country:            input.Country,
		CountryCode:        input.CountryCode,
		PostalCode:         input.PostalCode,
		BusinessID:         input.BusinessID,
		ContactPerson:      input.ContactPerson,
		ContactPersonPhone: input.ContactPersonPhone,
		Status:             entity.CenterStatusPending,
		CreatedBy:          input.UserID,
	}
	if err := srv.centerRepo.Create(ctx, center); err != nil {
		srv.log(ctx).Error("Center insert failed", slog.Any("error", err))

		return nil, domainerrors.NewPersistenceError(err, stageCenterInsert)
	}

	// Stage 2: best-effort geocode enrichment. Never fatal.
	enrichCenterCoordinates(ctx, srv.geocoder, srv.centerRepo, srv.log(ctx), center)

	// Stage 3: link the submitting profile to the center. Fatal even though
	// the center already committed; the orphaned pending center is an
	// accepted inconsistency window, not rolled back.
	profile := &entity.Profile{
		ID:       input.UserID,
		Email:    input.Email,
		Role:     entity.RoleCenter,
		CenterID: &center.ID,
		IsActive: true,
	}
	if err := srv.profileRepo.Upsert(ctx, profile); err != nil {
		srv.log(ctx).Error("Profile link failed after center insert",
			slog.String("centerID", center.ID.String()),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewPersistenceError(err, stageProfileLink)
	}

	// Stage 4: stamp the role onto the session. The profile row is the
	// claim source; dropping the cached fallback and issuing a new pair
	// makes the center role visible without waiting for a client refresh.
	srv.identity.InvalidateRole(input.UserID)

	tokens, err := srv.tokenService.GenerateTokens(input.UserID, entity.RoleCenter)
	if err != nil {
		srv.log(ctx).Error("Role stamping failed", slog.Any("error", err))

		return nil, domainerrors.NewPersistenceError(err, stageRoleStamp)
	}

	// Best-effort broadcast to the active reviewers.
	srv.notifyReviewers(ctx, center)

	srv.log(ctx).Debug("Center registration completed",
		slog.String("centerID", center.ID.String()),
	)

	return &usecase.RegisterCenterOutput{
		CenterID: center.ID,
		Tokens:   tokens,
	}, nil
}

// notifyReviewers broadcasts the new submission to every active reviewer.
// Failures are logged only; the registration already succeeded.
func (srv *registrationService) notifyReviewers(ctx context.Context, center *entity.Center) {
	reviewerIDs, err := srv.profileRepo.FindActiveReviewerIDs(ctx)
	if err != nil {
		srv.log(ctx).Warn("Reviewer lookup for broadcast failed",
			slog.Any("error", err),
		)

		return
	}
	if len(reviewerIDs) == 0 {
		return
	}

	err = srv.notificationUC.NotifyMany(ctx, reviewerIDs, &usecase.NotifyInput{
		Type:    entity.NotificationTypeCenterSubmitted,
		Title:   "New center registration",
		Message: center.Name + " submitted a registration request.",
		Payload: map[string]any{
			"centerId":          center.ID.String(),
			"submittedByUserId": center.CreatedBy.String(),
			"route":             "/admin/centers",
		},
	})
	if err != nil {
		srv.log(ctx).Warn("Reviewer broadcast failed",
			slog.String("centerID", center.ID.String()),
			slog.Any("error", err),
		)
	}
}
