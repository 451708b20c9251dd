package handler

import (
	"log/slog"
	"net/http"

	"arenago/internal/delivery/http/response"
	"arenago/internal/domain/entity"
	"arenago/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DevHandler holds the development-only handlers. The routes are only
// registered when the config enables them.
type DevHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewDevHandler is the constructor for DevHandler, injected by Fx.
func NewDevHandler(uc usecase.AuthUsecase, logger *slog.Logger) *DevHandler {
	return &DevHandler{
		uc:     uc,
		logger: logger,
	}
}

// PromoteRequest is the request body for the role promotion endpoint.
type PromoteRequest struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
	Role   string    `json:"role" validate:"required"`
}

// Promote stamps a role directly onto a profile, bypassing the review
// workflow. Development environments only.
func (h *DevHandler) Promote(c echo.Context) error {
	var req PromoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid promote input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.uc.Promote(c.Request().Context(), req.UserID, entity.Role(req.Role)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Role updated")
}
