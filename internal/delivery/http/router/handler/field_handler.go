package handler

import (
	"log/slog"
	"net/http"
	"time"

	"arenago/internal/delivery/http/middleware"
	"arenago/internal/delivery/http/response"
	"arenago/internal/domain/entity"
	"arenago/internal/domain/repository"
	"arenago/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FieldHandler holds dependencies for playing-field handlers.
type FieldHandler struct {
	uc     usecase.FieldUsecase
	logger *slog.Logger
}

// NewFieldHandler is the constructor for FieldHandler, injected by Fx.
func NewFieldHandler(uc usecase.FieldUsecase, logger *slog.Logger) *FieldHandler {
	return &FieldHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateFieldRequest is the request body for adding a field.
type CreateFieldRequest struct {
	Name         string    `json:"name" validate:"required"`
	SportID      uuid.UUID `json:"sportId" validate:"required"`
	Area         string    `json:"area" validate:"omitempty,oneof=Indoor Outdoor"`
	Status       string    `json:"status" validate:"omitempty,oneof=active maintenance"`
	LocationNote string    `json:"locationNote"`
	ImageURL     string    `json:"imageUrl"`
}

// UpdateFieldRequest is the request body for the partial field update.
type UpdateFieldRequest struct {
	Name         *string    `json:"name"`
	SportID      *uuid.UUID `json:"sportId"`
	Area         *string    `json:"area"`
	Status       *string    `json:"status"`
	LocationNote *string    `json:"locationNote"`
	ImageURL     *string    `json:"imageUrl"`
}

// FieldResponse is the field view returned by the field endpoints.
type FieldResponse struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	SportID      string         `json:"sportId"`
	Sport        *SportResponse `json:"sport,omitempty"`
	Area         string         `json:"area"`
	Status       string         `json:"status"`
	LocationNote string         `json:"locationNote,omitempty"`
	ImageURL     string         `json:"imageUrl,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// SportResponse is a sports catalog entry.
type SportResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func fieldResponse(field *entity.Field) FieldResponse {
	out := FieldResponse{
		ID:           field.ID.String(),
		Name:         field.Name,
		SportID:      field.SportID.String(),
		Area:         string(field.Area),
		Status:       string(field.Status),
		LocationNote: field.LocationNote,
		ImageURL:     field.ImageURL,
		CreatedAt:    field.CreatedAt,
	}
	if field.Sport != nil {
		out.Sport = &SportResponse{
			ID:   field.Sport.ID.String(),
			Name: field.Sport.Name,
			Slug: field.Sport.Slug,
		}
	}

	return out
}

// ListFields returns the caller's fields, newest first.
func (h *FieldHandler) ListFields(c echo.Context) error {
	centerID := middleware.CenterIDFromContext(c)

	fields, err := h.uc.ListFields(c.Request().Context(), centerID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]FieldResponse, 0, len(fields))
	for _, field := range fields {
		out = append(out, fieldResponse(field))
	}

	return response.Success(c, http.StatusOK, out, "Fields retrieved")
}

// CreateField adds a field to the caller's center.
func (h *FieldHandler) CreateField(c echo.Context) error {
	var req CreateFieldRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid field input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	centerID := middleware.CenterIDFromContext(c)

	field, err := h.uc.CreateField(c.Request().Context(), centerID, &usecase.CreateFieldInput{
		Name:         req.Name,
		SportID:      req.SportID,
		Area:         entity.FieldArea(req.Area),
		Status:       entity.FieldStatus(req.Status),
		LocationNote: req.LocationNote,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, fieldResponse(field), "Field created")
}

// UpdateField applies a partial update to one of the caller's fields.
func (h *FieldHandler) UpdateField(c echo.Context) error {
	fieldID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid field ID")
	}

	var req UpdateFieldRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid field input")
	}

	updates := &repository.FieldUpdates{
		Name:         req.Name,
		SportID:      req.SportID,
		LocationNote: req.LocationNote,
		ImageURL:     req.ImageURL,
	}
	if req.Area != nil {
		area := entity.FieldArea(*req.Area)
		updates.Area = &area
	}
	if req.Status != nil {
		status := entity.FieldStatus(*req.Status)
		updates.Status = &status
	}

	centerID := middleware.CenterIDFromContext(c)

	field, err := h.uc.UpdateField(c.Request().Context(), centerID, fieldID, updates)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, fieldResponse(field), "Field updated")
}

// ListSports returns the public sports catalog.
func (h *FieldHandler) ListSports(c echo.Context) error {
	sports, err := h.uc.ListSports(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]SportResponse, 0, len(sports))
	for _, sport := range sports {
		out = append(out, SportResponse{
			ID:   sport.ID.String(),
			Name: sport.Name,
			Slug: sport.Slug,
		})
	}

	return response.Success(c, http.StatusOK, out, "Sports retrieved")
}
