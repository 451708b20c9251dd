package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"arenago/config"
	"arenago/internal/delivery/http/middleware"
	"arenago/internal/delivery/http/router/handler"
	"arenago/internal/domain/entity"
	"arenago/internal/domain/service"
	mocksservice "arenago/internal/mocks/service"
	mocksusecase "arenago/internal/mocks/usecase"
	"arenago/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// routerFixtures wires the real route table with mock-backed middleware
// so gate behavior can be asserted end to end. Handlers are never
// reached in these tests.
type routerFixtures struct {
	e        *echo.Echo
	tokenSvc *mocksservice.MockTokenService
	identity *mocksusecase.MockIdentityUsecase
}

func createTestRouter(t *testing.T) routerFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokenSvc := mocksservice.NewMockTokenService(t)
	identity := mocksusecase.NewMockIdentityUsecase(t)
	profileUC := mocksusecase.NewMockProfileUsecase(t)

	r := NewRouter(RouterParams{
		Config:              &config.Config{},
		AuthHandler:         handler.NewAuthHandler(nil, logger),
		CenterHandler:       handler.NewCenterHandler(nil, logger),
		AdminHandler:        handler.NewAdminHandler(nil, logger),
		ProfileHandler:      handler.NewProfileHandler(nil, logger),
		FieldHandler:        handler.NewFieldHandler(nil, logger),
		AmenityHandler:      handler.NewAmenityHandler(nil, logger),
		NotificationHandler: handler.NewNotificationHandler(nil, logger),
		DevHandler:          handler.NewDevHandler(nil, logger),
		AuthMiddleware:      middleware.NewAuthMiddleware(tokenSvc, identity, profileUC),
	})

	e := echo.New()
	r.RegisterRoutes(e)

	return routerFixtures{e: e, tokenSvc: tokenSvc, identity: identity}
}

func serve(fx routerFixtures, method, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, req)

	return rec
}

func TestApproveCenter_NoSessionAnswersUnauthorized(t *testing.T) {
	fx := createTestRouter(t)

	rec := serve(fx, http.MethodPost, "/admin/approve-center", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestApproveCenter_NonReviewerAnswersUnauthorized(t *testing.T) {
	fx := createTestRouter(t)
	userID := uuid.New()
	claims := &service.Claims{UserID: userID, Role: entity.RoleCenter, Type: "access"}

	fx.tokenSvc.EXPECT().ValidateAccessToken("center-token").Return(claims, nil).Once()
	fx.identity.EXPECT().Resolve(mock.Anything, mock.Anything).
		Return(&usecase.ResolvedIdentity{UserID: userID, Role: entity.RoleCenter}).Times(2)

	rec := serve(fx, http.MethodPost, "/admin/approve-center", "center-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminPages_NoSessionRedirectsToLogin(t *testing.T) {
	fx := createTestRouter(t)

	rec := serve(fx, http.MethodGet, "/admin/centers", "")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get(echo.HeaderLocation))
}

func TestSuperadminPages_NoSessionRedirectsToLogin(t *testing.T) {
	fx := createTestRouter(t)

	rec := serve(fx, http.MethodGet, "/superadmin/metrics", "")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get(echo.HeaderLocation))
}

func TestSuperadminPages_AdminRoleReadsAsNotFound(t *testing.T) {
	fx := createTestRouter(t)
	userID := uuid.New()
	claims := &service.Claims{UserID: userID, Role: entity.RoleAdmin, Type: "access"}

	fx.tokenSvc.EXPECT().ValidateAccessToken("admin-token").Return(claims, nil).Once()
	fx.identity.EXPECT().Resolve(mock.Anything, mock.Anything).
		Return(&usecase.ResolvedIdentity{UserID: userID, Role: entity.RoleAdmin}).Times(2)

	rec := serve(fx, http.MethodGet, "/superadmin/metrics", "admin-token")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCenterPages_NoSessionRedirectsToLogin(t *testing.T) {
	fx := createTestRouter(t)

	rec := serve(fx, http.MethodGet, "/center/fields", "")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get(echo.HeaderLocation))
}
