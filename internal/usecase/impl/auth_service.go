package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "arenago/internal/delivery/context"
	"arenago/internal/domain/entity"
	domainerrors "arenago/internal/domain/errors"
	"arenago/internal/domain/repository"
	"arenago/internal/domain/service"
	"arenago/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	profileRepo  repository.ProfileRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	identity     usecase.IdentityUsecase
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	ProfileRepo  repository.ProfileRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Identity     usecase.IdentityUsecase
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		profileRepo:  params.ProfileRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		identity:     params.Identity,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp creates the account and its profile in one transaction, then
// issues a token pair carrying the default user role.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SessionOutput, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and password are required")
	}

	srv.log(ctx).Info("Starting signup", slog.String("email", email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	var account *entity.Account
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()
		profileRepo := repoFactory.NewProfileRepository()

		account = &entity.Account{
			Email:        email,
			PasswordHash: hash,
		}
		if err := accountRepo.Create(ctx, account); err != nil {
			return err
		}

		profile := &entity.Profile{
			ID:          account.ID,
			DisplayName: input.DisplayName,
			Email:       email,
			Role:        entity.RoleUser,
			IsActive:    true,
		}

		return profileRepo.Create(ctx, profile)
	})
	if err != nil {
		srv.log(ctx).Error("Signup transaction failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	return srv.issueSession(ctx, account.ID, entity.RoleUser)
}

// Login verifies the credentials and issues a pair carrying the profile's
// current role. A missing account and a wrong password are deliberately
// indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and password are required")
	}

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up account")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issueSession(ctx, account.ID, srv.currentRole(ctx, account.ID))
}

// Refresh validates a refresh token and issues a new pair. The role is
// re-read from the profile row, which is what makes a role stamped since
// the last issue visible to the client.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.SessionOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	return srv.issueSession(ctx, claims.UserID, srv.currentRole(ctx, claims.UserID))
}

// Promote updates the profile role directly and drops the cached fallback
// so the change is visible on the next resolve. Reachable only through
// the configuration-gated development routes.
func (srv *authService) Promote(ctx context.Context, userID uuid.UUID, role entity.Role) error {
	if !role.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown role")
	}

	if err := srv.profileRepo.UpdateRole(ctx, userID, role); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domainerrors.ErrProfileNotFound
		}

		return errors.Wrap(err, "failed to update role")
	}

	srv.identity.InvalidateRole(userID)

	srv.log(ctx).Info("Role promoted",
		slog.String("userID", userID.String()),
		slog.String("role", role.String()),
	)

	return nil
}

// currentRole reads the profile's effective role, defaulting to user when
// the row is missing or unreadable.
func (srv *authService) currentRole(ctx context.Context, userID uuid.UUID) entity.Role {
	profile, err := srv.profileRepo.FindByID(ctx, userID)
	if err != nil {
		srv.log(ctx).Warn("Role lookup failed, defaulting to user",
			slog.String("userID", userID.String()),
			slog.Any("error", err),
		)

		return entity.RoleUser
	}

	return profile.EffectiveRole()
}

func (srv *authService) issueSession(_ context.Context, userID uuid.UUID, role entity.Role) (*usecase.SessionOutput, error) {
	tokens, err := srv.tokenService.GenerateTokens(userID, role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.SessionOutput{
		UserID: userID,
		Role:   role,
		Tokens: tokens,
	}, nil
}
