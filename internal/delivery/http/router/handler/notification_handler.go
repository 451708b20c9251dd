package handler

import (
	"log/slog"
	"net/http"
	"time"

	"arenago/internal/delivery/http/middleware"
	"arenago/internal/delivery/http/response"
	"arenago/internal/domain/entity"
	"arenago/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for the recipient-side
// notification endpoints.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// MarkReadRequest is the request body for the mark-read endpoint. Either a
// single notification ID or the all flag must be set.
type MarkReadRequest struct {
	NotificationID *uuid.UUID `json:"notificationId"`
	All            bool       `json:"all"`
}

// NotificationResponse is the list item returned by the list endpoint.
type NotificationResponse struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Payload   map[string]any `json:"payload,omitempty"`
	Read      bool           `json:"read"`
	CreatedAt time.Time      `json:"createdAt"`
}

func notificationResponses(notifications []*entity.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, NotificationResponse{
			ID:        n.ID.String(),
			Type:      n.Type,
			Title:     n.Title,
			Message:   n.Message,
			Payload:   n.Payload,
			Read:      n.IsRead(),
			CreatedAt: n.CreatedAt,
		})
	}

	return out
}

// List returns the caller's newest notifications.
func (h *NotificationHandler) List(c echo.Context) error {
	identity := middleware.IdentityFromContext(c)

	notifications, err := h.uc.List(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notificationResponses(notifications), "Notifications retrieved")
}

// MarkRead marks one notification read, or all of them when the all flag
// is set.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	var req MarkReadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid mark-read input")
	}

	identity := middleware.IdentityFromContext(c)
	ctx := c.Request().Context()

	switch {
	case req.All:
		if err := h.uc.MarkAllRead(ctx, identity.UserID); err != nil {
			return errors.WithStack(err)
		}
	case req.NotificationID != nil:
		if err := h.uc.MarkRead(ctx, identity.UserID, *req.NotificationID); err != nil {
			return errors.WithStack(err)
		}
	default:
		return response.BadRequest(c, "INVALID_INPUT", "Either notificationId or all must be provided")
	}

	return response.Success(c, http.StatusOK, nil, "Notifications updated")
}
