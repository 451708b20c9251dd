// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"arenago/config"
	deliverycontext "arenago/internal/delivery/context"
	"arenago/internal/domain/entity"
	"arenago/internal/domain/repository"
	"arenago/internal/domain/service"
	"arenago/internal/usecase"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const (
	defaultRoleCacheTTL      = 30 * time.Second
	roleCacheSweepMultiplier = 4
)

// identityService implements the IdentityUsecase interface. Fallback role
// lookups are cached briefly so a burst of requests from one stale-claim
// client does not hammer the profiles table.
type identityService struct {
	profileRepo repository.ProfileRepository
	roleCache   *gocache.Cache
	logger      *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(profileRepo repository.ProfileRepository, cfg *config.Config, logger *slog.Logger) usecase.IdentityUsecase {
	ttl := defaultRoleCacheTTL
	if cfg != nil && cfg.Auth != nil && cfg.Auth.RoleCacheTTL > 0 {
		ttl = cfg.Auth.RoleCacheTTL
	}

	return &identityService{
		profileRepo: profileRepo,
		roleCache:   gocache.New(ttl, ttl*roleCacheSweepMultiplier),
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve returns the caller's identity. The token's role claim wins when
// present and valid; otherwise the profile row decides, with a lookup
// failure degrading to the empty role so callers can still render a
// redirect or not-found.
func (srv *identityService) Resolve(ctx context.Context, claims *service.Claims) *usecase.ResolvedIdentity {
	if claims == nil {
		return nil
	}

	identity := &usecase.ResolvedIdentity{UserID: claims.UserID}

	if claims.Role.IsValid() {
		identity.Role = claims.Role

		return identity
	}

	identity.Role = srv.fallbackRole(ctx, claims.UserID)

	return identity
}

// InvalidateRole drops the cached fallback role for one account.
func (srv *identityService) InvalidateRole(userID uuid.UUID) {
	srv.roleCache.Delete(userID.String())
}

// fallbackRole resolves the role from the profile row, consulting the
// cache first. Errors resolve to the empty role.
func (srv *identityService) fallbackRole(ctx context.Context, userID uuid.UUID) entity.Role {
	key := userID.String()
	if cached, found := srv.roleCache.Get(key); found {
		if role, ok := cached.(entity.Role); ok {
			return role
		}
	}

	profile, err := srv.profileRepo.FindByID(ctx, userID)
	if err != nil {
		srv.log(ctx).Warn("role fallback lookup failed, treating as no role",
			slog.String("userID", key),
			slog.Any("error", err),
		)

		return ""
	}

	role := profile.EffectiveRole()
	srv.roleCache.SetDefault(key, role)

	return role
}
