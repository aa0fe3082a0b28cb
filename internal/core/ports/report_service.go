package ports

import (
	"context"

	"github.com/zottaemp/timeclock-api/internal/core/domain"
)

// EmployeeSelectorAll selects every employee in a report request.
const EmployeeSelectorAll = "all"

// WageReportInput carries all parameters for the aggregation and wage engine.
// Rates maps employee ID to that employee's hourly rate; employees missing
// from the map are billed at the zero rate. Month is an optional YYYY-MM
// restriction producing a parallel monthly figure; empty means all-time only.
// Locale ("en" or "it") affects currency display strings, never the numbers.
type WageReportInput struct {
	EmployeeID string
	Month      string
	Locale     string
	Rates      map[string]domain.HourlyRate
}

// DayGroup is the entries of one calendar date, newest start time first.
type DayGroup struct {
	Date    string
	Entries []domain.WorkEntry
}

// MonthlySummary is the month-restricted figure reported alongside the
// all-time totals when a month is selected.
type MonthlySummary struct {
	Month         string // YYYY-MM
	MonthDisplay  string // e.g. "January 2024"
	TotalMinutes  int
	DisplayTotal  string // "{h}h {m}m"
	Wage          float64
	WageDisplay   string
}

// EmployeeReportRow aggregates one employee's entries: total minutes and
// wage across the filtered set, entries grouped by date (dates descending),
// and optionally the monthly summary.
type EmployeeReportRow struct {
	EmployeeID   string
	EmployeeName string
	TotalMinutes int
	DisplayTotal string
	Wage         float64
	WageDisplay  string
	Monthly      *MonthlySummary
	Days         []DayGroup
}

// WageReportResult is returned by BuildReport. AvailableMonths lists the
// distinct YYYY-MM months present in the filtered entry set, descending,
// for the month selector.
type WageReportResult struct {
	Rows            []EmployeeReportRow
	AvailableMonths []string
}

// ReportService groups, totals, and prices work entries.
type ReportService interface {
	BuildReport(ctx context.Context, input WageReportInput) (*WageReportResult, error)
}
