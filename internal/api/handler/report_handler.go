package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zottaemp/timeclock-api/internal/api/metrics"
	"github.com/zottaemp/timeclock-api/internal/core/domain"
	"github.com/zottaemp/timeclock-api/internal/core/ports"
)

// ReportHandler handles the aggregation and wage reporting endpoint.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Wages handles POST /v1/reports/wages.
//
// Rate parts arrive as raw strings and go through the clamping parser, so a
// half-typed rate degrades to zero instead of failing the whole report.
//
// @Summary      Build a wage report
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      wageReportRequest  true  "Employee selector, rates, optional month and locale"
// @Success      200   {object}  wageReportResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/reports/wages [post]
func (h *ReportHandler) Wages(c echo.Context) error {
	var req wageReportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	rates := make(map[string]domain.HourlyRate, len(req.Rates))
	for employeeID, rate := range req.Rates {
		rates[employeeID] = domain.ParseHourlyRate(rate.Euros, rate.Cents)
	}

	result, err := h.service.BuildReport(c.Request().Context(), ports.WageReportInput{
		EmployeeID: req.EmployeeID,
		Month:      req.Month,
		Locale:     req.Locale,
		Rates:      rates,
	})
	if err != nil {
		return err
	}

	selector := "single"
	if req.EmployeeID == ports.EmployeeSelectorAll {
		selector = "all"
	}
	scope := "all_time"
	if req.Month != "" {
		scope = "month"
	}
	metrics.ReportsBuiltTotal.WithLabelValues(selector, scope).Inc()

	return c.JSON(http.StatusOK, toReportResponse(result))
}
