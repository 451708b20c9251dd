// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"arenago/config"
	"arenago/internal/delivery/http/middleware"
	"arenago/internal/delivery/http/router/handler"
	"arenago/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config              *config.Config
	AuthHandler         *handler.AuthHandler
	CenterHandler       *handler.CenterHandler
	AdminHandler        *handler.AdminHandler
	ProfileHandler      *handler.ProfileHandler
	FieldHandler        *handler.FieldHandler
	AmenityHandler      *handler.AmenityHandler
	NotificationHandler *handler.NotificationHandler
	DevHandler          *handler.DevHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg                 *config.Config
	authHandler         *handler.AuthHandler
	centerHandler       *handler.CenterHandler
	adminHandler        *handler.AdminHandler
	profileHandler      *handler.ProfileHandler
	fieldHandler        *handler.FieldHandler
	amenityHandler      *handler.AmenityHandler
	notificationHandler *handler.NotificationHandler
	devHandler          *handler.DevHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:                 params.Config,
		authHandler:         params.AuthHandler,
		centerHandler:       params.CenterHandler,
		adminHandler:        params.AdminHandler,
		profileHandler:      params.ProfileHandler,
		fieldHandler:        params.FieldHandler,
		amenityHandler:      params.AmenityHandler,
		notificationHandler: params.NotificationHandler,
		devHandler:          params.DevHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public sports catalog
	e.GET("/sports", r.fieldHandler.ListSports)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
	}

	// Center routes. Registration itself carries no bearer token; the
	// submitted userId is trusted as-is. The profile endpoints stay outside
	// the active-center fence so a pending center can render its waiting
	// page, while the management endpoints require an approved center.
	centerGroup := e.Group("/center")
	centerGroup.POST("/register", r.centerHandler.RegisterCenter)

	centerProfileGroup := e.Group("/center/profile")
	centerProfileGroup.Use(r.authMiddleware.Authenticate)
	{
		centerProfileGroup.GET("", r.profileHandler.GetProfile)
		centerProfileGroup.PATCH("", r.profileHandler.PatchAddress)
	}

	centerManageGroup := e.Group("/center")
	centerManageGroup.Use(r.authMiddleware.Authenticate)
	centerManageGroup.Use(r.authMiddleware.RequireRole(entity.RoleCenter))
	centerManageGroup.Use(r.authMiddleware.RequireActiveCenter)
	{
		centerManageGroup.GET("/fields", r.fieldHandler.ListFields)
		centerManageGroup.POST("/fields", r.fieldHandler.CreateField)
		centerManageGroup.PATCH("/fields/:id", r.fieldHandler.UpdateField)

		centerManageGroup.GET("/amenities", r.amenityHandler.ListAmenities)
		centerManageGroup.POST("/amenities", r.amenityHandler.CreateAmenity)
		centerManageGroup.PATCH("/amenities/:id", r.amenityHandler.SetAmenityActive)
		centerManageGroup.DELETE("/amenities/:id", r.amenityHandler.DeleteAmenity)
	}

	// The approval endpoint is API-only and answers 401 to any caller
	// without a reviewer role, unlike the page groups below.
	e.POST("/admin/approve-center", r.adminHandler.ApproveCenter, r.authMiddleware.RequireReviewer)

	// Admin dashboard pages keep the page-group gate: redirect without
	// a session, 404 on the wrong role.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleSuperadmin))

	// Superadmin pages carry only the group-level gate for now.
	superadminGroup := e.Group("/superadmin")
	superadminGroup.Use(r.authMiddleware.Authenticate)
	superadminGroup.Use(r.authMiddleware.RequireRole(entity.RoleSuperadmin))

	// Notification routes for any authenticated account
	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationGroup.GET("", r.notificationHandler.List)
		notificationGroup.PATCH("", r.notificationHandler.MarkRead)
	}

	// Development-only routes, gated by configuration
	if r.cfg.DevRoutes != nil && r.cfg.DevRoutes.Enabled {
		devGroup := e.Group("/dev")
		devGroup.POST("/promote", r.devHandler.Promote)
	}
}
