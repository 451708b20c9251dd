package middleware

import (
	"net/http"
	"strings"

	"arenago/internal/domain/entity"
	"arenago/internal/domain/service"
	"arenago/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by the access gate for handlers to read.
const (
	keyIdentity = "identity"
	keyCenterID = "centerID"
)

// Redirect targets for gated page groups.
const (
	loginPath         = "/auth/login"
	centerPendingPath = "/center/pending"
)

// AuthMiddleware is the access gate in front of the role-scoped route
// groups. An absent or unusable session redirects to the login page;
// a valid session with the wrong role reads as not found, so gated
// routes do not reveal their existence.
type AuthMiddleware struct {
	tokenSvc  service.TokenService
	identity  usecase.IdentityUsecase
	profileUC usecase.ProfileUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, identity usecase.IdentityUsecase, profileUC usecase.ProfileUsecase) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, identity: identity, profileUC: profileUC}
}

// Authenticate validates the bearer token and resolves the caller's
// identity onto the request. No session means a redirect, not a 401:
// the gated groups are pages first, API second.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := m.claimsFromHeader(c)
		if claims == nil {
			return c.Redirect(http.StatusFound, loginPath)
		}

		identity := m.identity.Resolve(c.Request().Context(), claims)
		if identity == nil {
			return c.Redirect(http.StatusFound, loginPath)
		}

		c.Set(keyIdentity, identity)

		return next(c)
	}
}

// RequireRole gates a group on the resolved role. When the claim-carried
// role fails the check the identity is re-resolved from the profile row
// before denying, so a stale claim issued before a role stamp still
// passes. Denial is a 404.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := IdentityFromContext(c)
			if identity == nil {
				return c.Redirect(http.StatusFound, loginPath)
			}

			if entity.Roles(roles).Contains(identity.Role) {
				return next(c)
			}

			// Stale-claim fallback: force a row lookup by resolving
			// without the claim role.
			resolved := m.identity.Resolve(c.Request().Context(), &service.Claims{UserID: identity.UserID})
			if resolved != nil && entity.Roles(roles).Contains(resolved.Role) {
				c.Set(keyIdentity, resolved)

				return next(c)
			}

			return echo.NewHTTPError(http.StatusNotFound, "Not Found")
		}
	}
}

// RequireReviewer gates the approval API. Unlike the page groups this
// is an API-only route: a missing session or an insufficient role
// answers 401, never a redirect or a 404. The stale-claim fallback
// still applies before denying.
func (m *AuthMiddleware) RequireReviewer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := m.claimsFromHeader(c)
		if claims == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		}

		identity := m.identity.Resolve(c.Request().Context(), claims)
		if identity == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		}
		if identity.Role.CanReview() {
			c.Set(keyIdentity, identity)

			return next(c)
		}

		resolved := m.identity.Resolve(c.Request().Context(), &service.Claims{UserID: identity.UserID})
		if resolved != nil && resolved.Role.CanReview() {
			c.Set(keyIdentity, resolved)

			return next(c)
		}

		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
}

// RequireActiveCenter redirects center accounts whose registration is
// still pending (or rejected, or whose profile is inactive) to the
// pending page. On success the caller's center ID is stashed on the
// context for the fenced handlers.
func (m *AuthMiddleware) RequireActiveCenter(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := IdentityFromContext(c)
		if identity == nil {
			return c.Redirect(http.StatusFound, loginPath)
		}

		output, err := m.profileUC.GetProfile(c.Request().Context(), identity.UserID)
		if err != nil {
			return c.Redirect(http.StatusFound, centerPendingPath)
		}
		if !output.Profile.IsActive || output.Center == nil || output.Center.Status != entity.CenterStatusActive {
			return c.Redirect(http.StatusFound, centerPendingPath)
		}

		c.Set(keyCenterID, output.Center.ID)

		return next(c)
	}
}

// claimsFromHeader extracts and validates the bearer access token.
// Returns nil on any failure; the gate treats all of them as no session.
func (m *AuthMiddleware) claimsFromHeader(c echo.Context) *service.Claims {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil
	}

	claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
	if err != nil {
		return nil
	}

	return claims
}

// IdentityFromContext returns the identity the access gate resolved for
// this request, or nil when the route is not gated.
func IdentityFromContext(c echo.Context) *usecase.ResolvedIdentity {
	identity, ok := c.Get(keyIdentity).(*usecase.ResolvedIdentity)
	if !ok {
		return nil
	}

	return identity
}

// CenterIDFromContext returns the caller's center ID stashed by
// RequireActiveCenter, or uuid.Nil outside that group.
func CenterIDFromContext(c echo.Context) uuid.UUID {
	centerID, ok := c.Get(keyCenterID).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}

	return centerID
}
