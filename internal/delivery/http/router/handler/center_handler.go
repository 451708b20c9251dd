package handler

import (
	"log/slog"
	"net/http"

	"arenago/internal/delivery/http/response"
	"arenago/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CenterHandler holds dependencies for the center registration intake.
type CenterHandler struct {
	uc     usecase.RegistrationUsecase
	logger *slog.Logger
}

// NewCenterHandler is the constructor for CenterHandler, injected by Fx.
func NewCenterHandler(uc usecase.RegistrationUsecase, logger *slog.Logger) *CenterHandler {
	return &CenterHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterCenterRequest is the request body for the registration intake.
// The endpoint does not require a bearer token; the supplied userId is
// trusted as the submitting account.
type RegisterCenterRequest struct {
	UserID             uuid.UUID `json:"userId" validate:"required"`
	CenterName         string    `json:"centerName" validate:"required"`
	Email              string    `json:"email" validate:"required,email"`
	Phone              string    `json:"phone"`
	Address            string    `json:"address"`
	PostalCode         string    `json:"postalCode"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Country            string    `json:"country"`
	CountryCode        string    `json:"countryCode"`
	BusinessID         string    `json:"businessId"`
	ContactPerson      string    `json:"contactPerson"`
	ContactPersonPhone string    `json:"contactPersonPhone"`
}

// RegisterCenterResponse returns the new center's ID together with a
// token pair carrying the freshly stamped center role.
type RegisterCenterResponse struct {
	CenterID     string `json:"centerId"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RegisterCenter handles the center registration submission.
func (h *CenterHandler) RegisterCenter(c echo.Context) error {
	var req RegisterCenterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterCenterInput{
		UserID:             req.UserID,
		CenterName:         req.CenterName,
		Email:              req.Email,
		Phone:              req.Phone,
		Address:            req.Address,
		PostalCode:         req.PostalCode,
		City:               req.City,
		State:              req.State,
		Country:            req.Country,
		CountryCode:        req.CountryCode,
		BusinessID:         req.BusinessID,
		ContactPerson:      req.ContactPerson,
		ContactPersonPhone: req.ContactPersonPhone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, RegisterCenterResponse{
		CenterID:     output.CenterID.String(),
		AccessToken:  output.Tokens.AccessToken,
		RefreshToken: output.Tokens.RefreshToken,
	}, "Center registration submitted")
}
