package handler

import (
	"log/slog"
	"net/http"

	"arenago/internal/delivery/http/middleware"
	"arenago/internal/delivery/http/response"
	"arenago/internal/domain/entity"
	"arenago/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AmenityHandler holds dependencies for amenity handlers.
type AmenityHandler struct {
	uc     usecase.AmenityUsecase
	logger *slog.Logger
}

// NewAmenityHandler is the constructor for AmenityHandler, injected by Fx.
func NewAmenityHandler(uc usecase.AmenityUsecase, logger *slog.Logger) *AmenityHandler {
	return &AmenityHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateAmenityRequest is the request body for adding an amenity.
type CreateAmenityRequest struct {
	Name string `json:"name" validate:"required"`
	Icon string `json:"icon"`
}

// SetAmenityActiveRequest is the request body for the toggle endpoint.
type SetAmenityActiveRequest struct {
	IsActive bool `json:"isActive"`
}

// AmenityResponse is the amenity view returned by the amenity endpoints.
type AmenityResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Icon     string `json:"icon,omitempty"`
	IsActive bool   `json:"isActive"`
}

func amenityResponse(amenity *entity.Amenity) AmenityResponse {
	return AmenityResponse{
		ID:       amenity.ID.String(),
		Name:     amenity.Name,
		Slug:     amenity.Slug,
		Icon:     amenity.Icon,
		IsActive: amenity.IsActive,
	}
}

// ListAmenities returns the caller's amenities ordered by name.
func (h *AmenityHandler) ListAmenities(c echo.Context) error {
	centerID := middleware.CenterIDFromContext(c)

	amenities, err := h.uc.ListAmenities(c.Request().Context(), centerID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]AmenityResponse, 0, len(amenities))
	for _, amenity := range amenities {
		out = append(out, amenityResponse(amenity))
	}

	return response.Success(c, http.StatusOK, out, "Amenities retrieved")
}

// CreateAmenity adds an amenity to the caller's center.
func (h *AmenityHandler) CreateAmenity(c echo.Context) error {
	var req CreateAmenityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid amenity input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	centerID := middleware.CenterIDFromContext(c)

	amenity, err := h.uc.CreateAmenity(c.Request().Context(), centerID, &usecase.CreateAmenityInput{
		Name: req.Name,
		Icon: req.Icon,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, amenityResponse(amenity), "Amenity created")
}

// SetAmenityActive toggles whether an amenity is advertised.
func (h *AmenityHandler) SetAmenityActive(c echo.Context) error {
	amenityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid amenity ID")
	}

	var req SetAmenityActiveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid amenity input")
	}

	centerID := middleware.CenterIDFromContext(c)

	amenity, err := h.uc.SetAmenityActive(c.Request().Context(), centerID, amenityID, req.IsActive)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, amenityResponse(amenity), "Amenity updated")
}

// DeleteAmenity removes one of the caller's amenities.
func (h *AmenityHandler) DeleteAmenity(c echo.Context) error {
	amenityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid amenity ID")
	}

	centerID := middleware.CenterIDFromContext(c)

	if err := h.uc.DeleteAmenity(c.Request().Context(), centerID, amenityID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Amenity deleted")
}
