package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"arenago/internal/domain/entity"
	domainerrors "arenago/internal/domain/errors"
	"arenago/internal/domain/repository"
	"arenago/internal/domain/service"
	mockRepo "arenago/internal/mocks/repository"
	mockService "arenago/internal/mocks/service"
	mockUsecase "arenago/internal/mocks/usecase"
	"arenago/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	accountRepo  *mockRepo.MockAccountRepository
	profileRepo  *mockRepo.MockProfileRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
	identity     *mockUsecase.MockIdentityUsecase
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	identity := mockUsecase.NewMockIdentityUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		AccountRepo:  accountRepo,
		ProfileRepo:  profileRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Identity:     identity,
		Logger:       logger,
	})

	return authServiceFixtures{
		service:      svc,
		txManager:    txManager,
		accountRepo:  accountRepo,
		profileRepo:  profileRepo,
		hasher:       hasher,
		tokenService: tokenService,
		identity:     identity,
	}
}

func TestAuthService_SignUp_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	accountID := uuid.New()
	tokens := &service.TokenPair{AccessToken: "access", RefreshToken: "refresh"}

	fx.hasher.EXPECT().Hash("hunter2secret").Return("$2a$10$hash", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)
			mockFactory.EXPECT().NewProfileRepository().Return(mockProfileRepo)
			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					account.ID = accountID
					assert.Equal(t, "player@example.com", account.Email)
					assert.Equal(t, "$2a$10$hash", account.PasswordHash)
				}).
				Return(nil)
			mockProfileRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Profile")).
				Run(func(ctx context.Context, profile *entity.Profile) {
					assert.Equal(t, accountID, profile.ID)
					assert.Equal(t, entity.RoleUser, profile.Role)
					assert.True(t, profile.IsActive)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)
	fx.tokenService.EXPECT().
		GenerateTokens(accountID, entity.RoleUser).
		Return(tokens, nil)

	output, err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		Email:    "  Player@Example.com ",
		Password: "hunter2secret",
	})

	require.NoError(t, err)
	assert.Equal(t, accountID, output.UserID)
	assert.Equal(t, entity.RoleUser, output.Role)
	assert.Equal(t, tokens, output.Tokens)
}

func TestAuthService_SignUp_MissingCredentials(t *testing.T) {
	fx := createTestAuthService(t)

	output, err := fx.service.SignUp(context.Background(), &usecase.SignUpInput{Email: "a@b.c"})

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("hunter2secret").Return("$2a$10$hash", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(domainerrors.ErrAccountAlreadyExists)

	output, err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		Email:    "taken@example.com",
		Password: "hunter2secret",
	})

	require.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
	assert.Nil(t, output)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	accountID := uuid.New()
	centerID := uuid.New()
	tokens := &service.TokenPair{AccessToken: "access", RefreshToken: "refresh"}

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "owner@example.com").
		Return(&entity.Account{ID: accountID, Email: "owner@example.com", PasswordHash: "$2a$10$hash"}, nil)
	fx.hasher.EXPECT().Check("hunter2secret", "$2a$10$hash").Return(true)
	fx.profileRepo.EXPECT().
		FindByID(ctx, accountID).
		Return(&entity.Profile{ID: accountID, Role: entity.RoleCenter, CenterID: &centerID}, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(accountID, entity.RoleCenter).
		Return(tokens, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "Owner@Example.com",
		Password: "hunter2secret",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleCenter, output.Role)
	assert.Equal(t, tokens, output.Tokens)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "owner@example.com").
		Return(&entity.Account{ID: accountID, PasswordHash: "$2a$10$hash"}, nil)
	fx.hasher.EXPECT().Check("wrong", "$2a$10$hash").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "owner@example.com",
		Password: "wrong",
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestAuthService_Login_MissingProfileDefaultsToUserRole(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "owner@example.com").
		Return(&entity.Account{ID: accountID, PasswordHash: "$2a$10$hash"}, nil)
	fx.hasher.EXPECT().Check("hunter2secret", "$2a$10$hash").Return(true)
	fx.profileRepo.EXPECT().
		FindByID(ctx, accountID).
		Return(nil, repository.ErrProfileNotFound)
	fx.tokenService.EXPECT().
		GenerateTokens(accountID, entity.RoleUser).
		Return(&service.TokenPair{}, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "owner@example.com",
		Password: "hunter2secret",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, output.Role)
}

// A role stamped after the last token issue becomes visible through
// refresh because the role is re-read from the profile row.
func TestAuthService_Refresh_ReReadsRole(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	accountID := uuid.New()
	tokens := &service.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("old-refresh").
		Return(&service.Claims{UserID: accountID, Type: "refresh"}, nil)
	fx.profileRepo.EXPECT().
		FindByID(ctx, accountID).
		Return(&entity.Profile{ID: accountID, Role: entity.RoleCenter}, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(accountID, entity.RoleCenter).
		Return(tokens, nil)

	output, err := fx.service.Refresh(ctx, "old-refresh")

	require.NoError(t, err)
	assert.Equal(t, entity.RoleCenter, output.Role)
	assert.Equal(t, tokens, output.Tokens)
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, errors.New("token is malformed"))

	output, err := fx.service.Refresh(context.Background(), "garbage")

	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	assert.Nil(t, output)
}

func TestAuthService_Promote_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		UpdateRole(ctx, userID, entity.RoleAdmin).
		Return(nil)
	fx.identity.EXPECT().InvalidateRole(userID)

	err := fx.service.Promote(ctx, userID, entity.RoleAdmin)

	require.NoError(t, err)
}

func TestAuthService_Promote_UnknownRole(t *testing.T) {
	fx := createTestAuthService(t)

	err := fx.service.Promote(context.Background(), uuid.New(), entity.Role("root"))

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestAuthService_Promote_MissingProfile(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		UpdateRole(ctx, userID, entity.RoleCenter).
		Return(repository.ErrProfileNotFound)

	err := fx.service.Promote(ctx, userID, entity.RoleCenter)

	require.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}
