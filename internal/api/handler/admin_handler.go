package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zottaemp/timeclock-api/internal/core/domain"
	"github.com/zottaemp/timeclock-api/internal/core/ports"
)

// AdminHandler handles the two-phase admin credential change. The admin ID
// is always taken from the token claims, never from the request body.
type AdminHandler struct {
	service ports.AdminCredentialService
}

func NewAdminHandler(service ports.AdminCredentialService) *AdminHandler {
	return &AdminHandler{service: service}
}

// Initiate handles POST /v1/admin/credentials/initiate.
//
// The verification token is returned in the response body. The original
// system surfaced it the same way instead of delivering it out of band.
//
// @Summary      Stage an admin credential change
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      initiateCredentialsRequest  true  "New email and/or new password"
// @Success      200   {object}  initiateCredentialsResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/admin/credentials/initiate [post]
func (h *AdminHandler) Initiate(c echo.Context) error {
	adminID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req initiateCredentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	result, err := h.service.Initiate(c.Request().Context(), adminID, req.NewEmail, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoChangesRequested):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "no changes requested"})
		case errors.Is(err, domain.ErrForbidden):
			return c.JSON(http.StatusForbidden, errorResponse{Error: "access forbidden"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, initiateCredentialsResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
	})
}

// Confirm handles POST /v1/admin/credentials/confirm.
//
// @Summary      Confirm a staged admin credential change
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      confirmCredentialsRequest  true  "Verification token"
// @Success      200   {object}  confirmCredentialsResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      410   {object}  errorResponse
// @Router       /v1/admin/credentials/confirm [post]
func (h *AdminHandler) Confirm(c echo.Context) error {
	adminID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req confirmCredentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.service.Confirm(c.Request().Context(), adminID, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoPendingUpdate):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "no pending credential update"})
		case errors.Is(err, domain.ErrTokenMismatch):
			return c.JSON(http.StatusForbidden, errorResponse{Error: "verification token mismatch"})
		case errors.Is(err, domain.ErrTokenExpired):
			return c.JSON(http.StatusGone, errorResponse{Error: "verification token expired"})
		}
		return err
	}

	return c.JSON(http.StatusOK, confirmCredentialsResponse{User: user})
}
