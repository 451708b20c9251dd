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

// AdminHandler holds dependencies for the registration review workflow.
type AdminHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// ApproveCenterRequest is the request body for the review endpoint.
type ApproveCenterRequest struct {
	CenterID uuid.UUID `json:"centerId" validate:"required"`
	Action   string    `json:"action" validate:"required,oneof=approve reject"`
}

// ApproveCenterResponse returns the reviewed center and its new status.
type ApproveCenterResponse struct {
	CenterID string `json:"centerId"`
	Status   string `json:"status"`
}

// ApproveCenter handles an approve or reject decision on a pending center.
func (h *AdminHandler) ApproveCenter(c echo.Context) error {
	var req ApproveCenterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.uc.Review(c.Request().Context(), &usecase.ReviewInput{
		Reviewer: middleware.IdentityFromContext(c),
		CenterID: req.CenterID,
		Action:   entity.ReviewAction(req.Action),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ApproveCenterResponse{
		CenterID: output.CenterID.String(),
		Status:   string(output.Status),
	}, "Review recorded")
}
