package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zottaemp/timeclock-api/internal/api/metrics"
	"github.com/zottaemp/timeclock-api/internal/core/domain"
	"github.com/zottaemp/timeclock-api/internal/core/ports"
)

// SessionHandler handles HTTP requests for the work-session state machine.
type SessionHandler struct {
	service ports.SessionService
}

func NewSessionHandler(service ports.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// Start handles POST /v1/work/start.
//
// @Summary      Clock in
// @Tags         work
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      startWorkRequest  true  "Activity and optional clock-in photo"
// @Success      201   {object}  entryResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/work/start [post]
func (h *SessionHandler) Start(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req startWorkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	entry, err := h.service.StartWork(c.Request().Context(), ports.StartWorkInput{
		UserID:       userID,
		Activity:     req.Activity,
		PhotoDataURI: req.PhotoDataURI,
	})
	if err != nil {
		if errors.Is(err, domain.ErrSessionOpen) {
			metrics.SessionErrorsTotal.WithLabelValues("already_open").Inc()
			return c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
		}
		return err
	}

	metrics.SessionsStartedTotal.Inc()
	return c.JSON(http.StatusCreated, toEntryResponse(entry))
}

// End handles POST /v1/work/:entry_id/end.
//
// @Summary      Clock out
// @Tags         work
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        entry_id  path      string          true  "Work entry ID"
// @Param        body      body      endWorkRequest  true  "Activity and optional clock-out photo"
// @Success      200       {object}  entryResponse
// @Failure      400       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /v1/work/{entry_id}/end [post]
func (h *SessionHandler) End(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req endWorkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	entry, err := h.service.EndWork(c.Request().Context(), ports.EndWorkInput{
		EntryID:      c.Param("entry_id"),
		UserID:       userID,
		Activity:     req.Activity,
		PhotoDataURI: req.PhotoDataURI,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			metrics.SessionErrorsTotal.WithLabelValues("entry_not_found").Inc()
			return c.JSON(http.StatusNotFound, errorResponse{Error: "work entry not found"})
		}
		return err
	}

	metrics.SessionsEndedTotal.Inc()
	metrics.SessionDurationMinutes.Observe(float64(entry.Minutes()))
	return c.JSON(http.StatusOK, toEntryResponse(entry))
}

// History handles GET /v1/work/history — the caller's own entries.
//
// @Summary      Own work history
// @Tags         work
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entryListResponse
// @Router       /v1/work/history [get]
func (h *SessionHandler) History(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	entries, err := h.service.HistoryForUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entryListResponse{Data: toEntryResponses(entries)})
}

// ListAll handles GET /v1/work/entries — every entry, admin only.
//
// @Summary      All work entries
// @Tags         work
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entryListResponse
// @Router       /v1/work/entries [get]
func (h *SessionHandler) ListAll(c echo.Context) error {
	entries, err := h.service.AllEntries(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entryListResponse{Data: toEntryResponses(entries)})
}

// Get handles GET /v1/work/entries/:entry_id — single entry, admin only.
//
// @Summary      Get a work entry by ID
// @Tags         work
// @Produce      json
// @Security     BearerAuth
// @Param        entry_id  path      string  true  "Work entry ID"
// @Success      200       {object}  entryResponse
// @Failure      404       {object}  errorResponse
// @Router       /v1/work/entries/{entry_id} [get]
func (h *SessionHandler) Get(c echo.Context) error {
	entry, err := h.service.EntryByID(c.Request().Context(), c.Param("entry_id"))
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "work entry not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, toEntryResponse(entry))
}
