package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zottaemp/timeclock-api/internal/core/domain"
	"github.com/zottaemp/timeclock-api/internal/core/ports"
)

type stubAdminService struct {
	initiateFn func(ctx context.Context, adminID, newEmail, newPassword string) (*ports.InitiateResult, error)
	confirmFn  func(ctx context.Context, adminID, token string) (*domain.User, error)
}

func (s *stubAdminService) Initiate(ctx context.Context, adminID, newEmail, newPassword string) (*ports.InitiateResult, error) {
	return s.initiateFn(ctx, adminID, newEmail, newPassword)
}

func (s *stubAdminService) Confirm(ctx context.Context, adminID, token string) (*domain.User, error) {
	return s.confirmFn(ctx, adminID, token)
}

func TestAdminHandler_Initiate_ReturnsToken(t *testing.T) {
	e := newTestEcho()
	expires := time.Date(2024, 5, 10, 9, 15, 0, 0, time.UTC)
	stub := &stubAdminService{
		initiateFn: func(ctx context.Context, adminID, newEmail, newPassword string) (*ports.InitiateResult, error) {
			if adminID != "admin001" || newEmail != "new@example.com" {
				t.Fatalf("unexpected args: %s %s", adminID, newEmail)
			}
			return &ports.InitiateResult{Token: "TOK-AB12CD34EF56", ExpiresAt: expires}, nil
		},
	}
	handler := NewAdminHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/credentials/initiate", strings.NewReader(`{"new_email":"new@example.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "admin001", "admin")

	if err := handler.Initiate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "TOK-AB12CD34EF56" {
		t.Fatalf("unexpected token: %v", resp["token"])
	}
}

func TestAdminHandler_Initiate_RequiresAChange(t *testing.T) {
	e := newTestEcho()
	stub := &stubAdminService{
		initiateFn: func(ctx context.Context, adminID, newEmail, newPassword string) (*ports.InitiateResult, error) {
			return nil, domain.ErrNoChangesRequested
		},
	}
	handler := NewAdminHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/credentials/initiate", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "admin001", "admin")

	_ = handler.Initiate(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAdminHandler_Initiate_ForbiddenForNonAdmin(t *testing.T) {
	e := newTestEcho()
	stub := &stubAdminService{
		initiateFn: func(ctx context.Context, adminID, newEmail, newPassword string) (*ports.InitiateResult, error) {
			return nil, domain.ErrForbidden
		},
	}
	handler := NewAdminHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/credentials/initiate", strings.NewReader(`{"new_email":"x@example.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "emp_1", "employee")

	_ = handler.Initiate(c)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAdminHandler_Confirm_AppliesChange(t *testing.T) {
	e := newTestEcho()
	stub := &stubAdminService{
		confirmFn: func(ctx context.Context, adminID, token string) (*domain.User, error) {
			if adminID != "admin001" || token != "TOK-AB12CD34EF56" {
				t.Fatalf("unexpected args: %s %s", adminID, token)
			}
			return &domain.User{ID: adminID, Email: "new@example.com", Role: domain.RoleAdmin}, nil
		},
	}
	handler := NewAdminHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/credentials/confirm", strings.NewReader(`{"token":"TOK-AB12CD34EF56"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "admin001", "admin")

	if err := handler.Confirm(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "new@example.com" {
		t.Fatalf("unexpected user payload: %+v", resp)
	}
}

func TestAdminHandler_Confirm_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"no pending update", domain.ErrNoPendingUpdate, http.StatusNotFound},
		{"token mismatch", domain.ErrTokenMismatch, http.StatusForbidden},
		{"token expired", domain.ErrTokenExpired, http.StatusGone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEcho()
			stub := &stubAdminService{
				confirmFn: func(ctx context.Context, adminID, token string) (*domain.User, error) {
					return nil, tc.err
				},
			}
			handler := NewAdminHandler(stub)

			req := httptest.NewRequest(http.MethodPost, "/v1/admin/credentials/confirm", strings.NewReader(`{"token":"TOK-WRONG"}`))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := authedContext(e, req, rec, "admin001", "admin")

			_ = handler.Confirm(c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
		})
	}
}

func TestAdminHandler_Confirm_RequiresToken(t *testing.T) {
	e := newTestEcho()
	stub := &stubAdminService{
		confirmFn: func(ctx context.Context, adminID, token string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAdminHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/credentials/confirm", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "admin001", "admin")

	_ = handler.Confirm(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
