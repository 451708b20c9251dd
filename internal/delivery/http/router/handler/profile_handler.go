package handler

import (
	"log/slog"
	"net/http"

	"arenago/internal/delivery/http/middleware"
	"arenago/internal/delivery/http/response"
	"arenago/internal/domain/entity"
	"arenago/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile and center-profile handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// PatchAddressRequest is the request body for the address update. Absent
// members leave the corresponding column untouched.
type PatchAddressRequest struct {
	Address    *string `json:"address"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	Country    *string `json:"country"`
	PostalCode *string `json:"postalCode"`
}

// CenterResponse is the center view embedded in the profile payload.
type CenterResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	Phone       string               `json:"phone"`
	Address     string               `json:"address"`
	City        string               `json:"city"`
	State       string               `json:"state"`
	Country     string               `json:"country"`
	PostalCode  string               `json:"postalCode"`
	Status      string               `json:"status"`
	Coordinates *CoordinatesResponse `json:"coordinates,omitempty"`
}

// CoordinatesResponse is the geocoded location embedded in the center view.
type CoordinatesResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Source    string  `json:"source"`
}

// ProfileResponse is the payload returned by the profile endpoint.
type ProfileResponse struct {
	UserID      string          `json:"userId"`
	DisplayName string          `json:"displayName"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Role        string          `json:"role"`
	IsActive    bool            `json:"isActive"`
	Center      *CenterResponse `json:"center,omitempty"`
}

func centerResponse(center *entity.Center) *CenterResponse {
	if center == nil {
		return nil
	}

	out := &CenterResponse{
		ID:         center.ID.String(),
		Name:       center.Name,
		Email:      center.Email,
		Phone:      center.Phone,
		Address:    center.Address,
		City:       center.City,
		State:      center.State,
		Country:    center.Country,
		PostalCode: center.PostalCode,
		Status:     string(center.Status),
	}
	if center.Coordinates != nil {
		out.Coordinates = &CoordinatesResponse{
			Latitude:  center.Coordinates.Latitude,
			Longitude: center.Coordinates.Longitude,
			Source:    center.Coordinates.Source,
		}
	}

	return out
}

// GetProfile returns the caller's profile joined with its center, when one
// is linked. This endpoint stays reachable for pending centers so the
// waiting page can render.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	identity := middleware.IdentityFromContext(c)

	output, err := h.uc.GetProfile(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ProfileResponse{
		UserID:      output.Profile.ID.String(),
		DisplayName: output.Profile.DisplayName,
		Email:       output.Profile.Email,
		Phone:       output.Profile.Phone,
		Role:        output.Profile.Role.String(),
		IsActive:    output.Profile.IsActive,
		Center:      centerResponse(output.Center),
	}, "Profile retrieved")
}

// PatchAddress applies a partial address update to the caller's center.
func (h *ProfileHandler) PatchAddress(c echo.Context) error {
	var req PatchAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	identity := middleware.IdentityFromContext(c)

	center, err := h.uc.PatchAddress(c.Request().Context(), identity.UserID, &usecase.PatchAddressInput{
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, centerResponse(center), "Address updated")
}
