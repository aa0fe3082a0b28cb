package handler

import (
	"time"

	"github.com/zottaemp/timeclock-api/internal/core/domain"
	"github.com/zottaemp/timeclock-api/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// --- Work sessions ---

type startWorkRequest struct {
	Activity     string `json:"activity"                 validate:"required"`
	PhotoDataURI string `json:"photo_data_uri,omitempty"`
}

type endWorkRequest struct {
	Activity     string `json:"activity"                 validate:"required"`
	PhotoDataURI string `json:"photo_data_uri,omitempty"`
}

// Response-only types owned by the transport layer.
// These are intentionally separate from ports/domain types so the JSON
// contract is not coupled to internal service changes.

type entryResponse struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time,omitempty"`
	DurationMinutes *int   `json:"duration_minutes,omitempty"`
	Activity        string `json:"activity"`
	StartPhotoURL   string `json:"start_photo_url,omitempty"`
	EndPhotoURL     string `json:"end_photo_url,omitempty"`
}

func toEntryResponse(e *domain.WorkEntry) entryResponse {
	return entryResponse{
		ID:              e.ID,
		UserID:          e.UserID,
		Date:            e.Date,
		StartTime:       e.StartTime,
		EndTime:         e.EndTime,
		DurationMinutes: e.DurationMinutes,
		Activity:        e.Activity,
		StartPhotoURL:   e.StartPhotoURL,
		EndPhotoURL:     e.EndPhotoURL,
	}
}

func toEntryResponses(entries []domain.WorkEntry) []entryResponse {
	out := make([]entryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, toEntryResponse(&entries[i]))
	}
	return out
}

type entryListResponse struct {
	Data []entryResponse `json:"data"`
}

// --- Wage reports ---

type rateRequest struct {
	Euros string `json:"euros"`
	Cents string `json:"cents"`
}

type wageReportRequest struct {
	EmployeeID string                 `json:"employee_id" validate:"required"`
	Month      string                 `json:"month,omitempty"  validate:"omitempty,datetime=2006-01"`
	Locale     string                 `json:"locale,omitempty" validate:"omitempty,oneof=en it"`
	Rates      map[string]rateRequest `json:"rates"`
}

type monthlySummaryResponse struct {
	Month        string  `json:"month"`
	MonthDisplay string  `json:"month_display"`
	TotalMinutes int     `json:"total_minutes"`
	DisplayTotal string  `json:"display_total"`
	Wage         float64 `json:"wage"`
	WageDisplay  string  `json:"wage_display"`
}

type dayGroupResponse struct {
	Date    string          `json:"date"`
	Entries []entryResponse `json:"entries"`
}

type reportRowResponse struct {
	EmployeeID   string                  `json:"employee_id"`
	EmployeeName string                  `json:"employee_name"`
	TotalMinutes int                     `json:"total_minutes"`
	DisplayTotal string                  `json:"display_total"`
	Wage         float64                 `json:"wage"`
	WageDisplay  string                  `json:"wage_display"`
	Monthly      *monthlySummaryResponse `json:"monthly,omitempty"`
	Days         []dayGroupResponse      `json:"days"`
}

type wageReportResponse struct {
	Rows            []reportRowResponse `json:"rows"`
	AvailableMonths []string            `json:"available_months"`
}

func toReportResponse(result *ports.WageReportResult) wageReportResponse {
	rows := make([]reportRowResponse, 0, len(result.Rows))
	for _, row := range result.Rows {
		days := make([]dayGroupResponse, 0, len(row.Days))
		for _, day := range row.Days {
			days = append(days, dayGroupResponse{
				Date:    day.Date,
				Entries: toEntryResponses(day.Entries),
			})
		}

		var monthly *monthlySummaryResponse
		if row.Monthly != nil {
			monthly = &monthlySummaryResponse{
				Month:        row.Monthly.Month,
				MonthDisplay: row.Monthly.MonthDisplay,
				TotalMinutes: row.Monthly.TotalMinutes,
				DisplayTotal: row.Monthly.DisplayTotal,
				Wage:         row.Monthly.Wage,
				WageDisplay:  row.Monthly.WageDisplay,
			}
		}

		rows = append(rows, reportRowResponse{
			EmployeeID:   row.EmployeeID,
			EmployeeName: row.EmployeeName,
			TotalMinutes: row.TotalMinutes,
			DisplayTotal: row.DisplayTotal,
			Wage:         row.Wage,
			WageDisplay:  row.WageDisplay,
			Monthly:      monthly,
			Days:         days,
		})
	}

	months := result.AvailableMonths
	if months == nil {
		months = []string{}
	}
	return wageReportResponse{Rows: rows, AvailableMonths: months}
}

// --- Employee directory ---

type addEmployeeRequest struct {
	Email       string `json:"email"        validate:"required,email"`
	Name        string `json:"name"         validate:"required"`
	Age         int    `json:"age,omitempty"          validate:"omitempty,gte=0"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Address     string `json:"address,omitempty"`
	JoinDate    string `json:"join_date,omitempty"    validate:"omitempty,datetime=2006-01-02"`
	Password    string `json:"password,omitempty"`
}

type updateEmployeeRequest struct {
	Email       *string `json:"email,omitempty"        validate:"omitempty,email"`
	Name        *string `json:"name,omitempty"`
	Age         *int    `json:"age,omitempty"          validate:"omitempty,gte=0"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Address     *string `json:"address,omitempty"`
	JoinDate    *string `json:"join_date,omitempty"    validate:"omitempty,datetime=2006-01-02"`
	Password    *string `json:"password,omitempty"`
}

type employeeListResponse struct {
	Data []domain.User `json:"data"`
}

type deleteEmployeeResponse struct {
	Deleted bool `json:"deleted"`
}

type employeeRefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type employeeFilterResponse struct {
	Data []employeeRefResponse `json:"data"`
}

// --- Admin credentials ---

type initiateCredentialsRequest struct {
	NewEmail    string `json:"new_email,omitempty"    validate:"omitempty,email"`
	NewPassword string `json:"new_password,omitempty"`
}

type initiateCredentialsResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type confirmCredentialsRequest struct {
	Token string `json:"token" validate:"required"`
}

type confirmCredentialsResponse struct {
	User *domain.User `json:"user"`
}
