package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/zottaemp/timeclock-api/internal/core/ports"
)

type stubReportService struct {
	buildFn func(ctx context.Context, input ports.WageReportInput) (*ports.WageReportResult, error)
}

func (s *stubReportService) BuildReport(ctx context.Context, input ports.WageReportInput) (*ports.WageReportResult, error) {
	return s.buildFn(ctx, input)
}

func TestReportHandler_Wages_ParsesAndClampsRates(t *testing.T) {
	e := newTestEcho()
	stub := &stubReportService{
		buildFn: func(ctx context.Context, input ports.WageReportInput) (*ports.WageReportResult, error) {
			if input.EmployeeID != "all" || input.Month != "2024-01" || input.Locale != "it" {
				t.Fatalf("unexpected input: %+v", input)
			}
			rate, ok := input.Rates["emp_1"]
			if !ok || rate.Euros != 10 || rate.Cents != 50 {
				t.Fatalf("rate not parsed: %+v", input.Rates)
			}
			clamped, ok := input.Rates["emp_2"]
			if !ok || clamped.Euros != 0 || clamped.Cents != 99 {
				t.Fatalf("rate not clamped: %+v", input.Rates)
			}
			return &ports.WageReportResult{
				Rows: []ports.EmployeeReportRow{
					{EmployeeID: "emp_1", EmployeeName: "John Doe", TotalMinutes: 90, DisplayTotal: "1h 30m", Wage: 15.75, WageDisplay: "€ 15,75"},
				},
				AvailableMonths: []string{"2024-01"},
			}, nil
		},
	}
	handler := NewReportHandler(stub)

	body := strings.NewReader(`{
		"employee_id": "all",
		"month": "2024-01",
		"locale": "it",
		"rates": {
			"emp_1": {"euros": "10", "cents": "50"},
			"emp_2": {"euros": "abc", "cents": "150"}
		}
	}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/reports/wages", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Wages(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Rows            []map[string]any `json:"rows"`
		AvailableMonths []string         `json:"available_months"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Rows) != 1 || resp.Rows[0]["wage"] != 15.75 {
		t.Fatalf("unexpected rows: %+v", resp.Rows)
	}
	if len(resp.AvailableMonths) != 1 || resp.AvailableMonths[0] != "2024-01" {
		t.Fatalf("unexpected months: %+v", resp.AvailableMonths)
	}
}

func TestReportHandler_Wages_RejectsBadMonth(t *testing.T) {
	e := newTestEcho()
	stub := &stubReportService{
		buildFn: func(ctx context.Context, input ports.WageReportInput) (*ports.WageReportResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewReportHandler(stub)

	body := strings.NewReader(`{"employee_id":"all","month":"January"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/reports/wages", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Wages(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestReportHandler_Wages_RejectsMissingSelector(t *testing.T) {
	e := newTestEcho()
	stub := &stubReportService{
		buildFn: func(ctx context.Context, input ports.WageReportInput) (*ports.WageReportResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewReportHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/reports/wages", strings.NewReader(`{"rates":{}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Wages(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestReportHandler_Wages_EmptyMonthsSerializeAsArray(t *testing.T) {
	e := newTestEcho()
	stub := &stubReportService{
		buildFn: func(ctx context.Context, input ports.WageReportInput) (*ports.WageReportResult, error) {
			return &ports.WageReportResult{}, nil
		},
	}
	handler := NewReportHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/reports/wages", strings.NewReader(`{"employee_id":"emp_1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Wages(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if !strings.Contains(rec.Body.String(), `"available_months":[]`) {
		t.Fatalf("months must serialize as [], got %s", rec.Body.String())
	}
}
