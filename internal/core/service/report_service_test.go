package service

import (
	"context"
	"testing"

	"github.com/zottaemp/timeclock-api/internal/core/domain"
	"github.com/zottaemp/timeclock-api/internal/core/ports"
)

func reportFixture() (*stubEntryRepo, *stubUserRepo) {
	entries := newStubEntryRepo()
	users := newStubUserRepo()
	users.users["emp_1"] = &domain.User{ID: "emp_1", Name: "John Doe", Role: domain.RoleEmployee}
	users.users["emp_2"] = &domain.User{ID: "emp_2", Name: "Alice Rossi", Role: domain.RoleEmployee}
	return entries, users
}

func TestReportService_TotalsAndWage(t *testing.T) {
	entries, users := reportFixture()
	seedEntry(entries, "e1", "emp_1", "2024-01-02", "09:00", 60)
	seedEntry(entries, "e2", "emp_1", "2024-01-02", "14:00", 30)

	svc := NewReportService(entries, users, discardLogger)
	result, err := svc.BuildReport(context.Background(), ports.WageReportInput{
		EmployeeID: ports.EmployeeSelectorAll,
		Locale:     "en",
		Rates:      map[string]domain.HourlyRate{"emp_1": {Euros: 10, Cents: 50}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(result.Rows))
	}
	row := result.Rows[0]
	if row.TotalMinutes != 90 {
		t.Errorf("expected 90 minutes, got %d", row.TotalMinutes)
	}
	if row.DisplayTotal != "1h 30m" {
		t.Errorf("expected display 1h 30m, got %s", row.DisplayTotal)
	}
	if row.Wage != 15.75 {
		t.Errorf("expected wage 15.75, got %v", row.Wage)
	}
	if row.WageDisplay == "" {
		t.Error("wage display must be rendered")
	}
	if row.EmployeeName != "John Doe" {
		t.Errorf("unexpected name %s", row.EmployeeName)
	}
}

func TestReportService_ZeroRateYieldsZeroWage(t *testing.T) {
	entries, users := reportFixture()
	seedEntry(entries, "e1", "emp_1", "2024-01-02", "09:00", 480)

	svc := NewReportService(entries, users, discardLogger)
	result, err := svc.BuildReport(context.Background(), ports.WageReportInput{
		EmployeeID: "emp_1",
		Locale:     "en",
		Rates:      map[string]domain.HourlyRate{"emp_1": {}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Rows[0].Wage != 0 {
		t.Errorf("zero rate must yield zero wage, got %v", result.Rows[0].Wage)
	}
}

func TestReportService_OpenEntriesContributeNothing(t *testing.T) {
	entries, users := reportFixture()
	seedEntry(entries, "e1", "emp_1", "2024-01-02", "09:00", 60)
	entries.entries["e2"] = &domain.WorkEntry{ID: "e2", UserID: "emp_1", Date: "2024-01-03", StartTime: "09:00", Activity: "open"}

	svc := NewReportService(entries, users, discardLogger)
	result, _ := svc.BuildReport(context.Background(), ports.WageReportInput{EmployeeID: "emp_1", Locale: "en"})

	if result.Rows[0].TotalMinutes != 60 {
		t.Errorf("open entry must contribute 0, total %d", result.Rows[0].TotalMinutes)
	}
}

func TestReportService_MonthlyFigures(t *testing.T) {
	entries, users := reportFixture()
	seedEntry(entries, "e1", "emp_1", "2024-01-02", "09:00", 60)
	seedEntry(entries, "e2", "emp_1", "2024-02-05", "09:00", 120)

	svc := NewReportService(entries, users, discardLogger)
	result, err := svc.BuildReport(context.Background(), ports.WageReportInput{
		EmployeeID: "emp_1",
		Month:      "2024-01",
		Locale:     "en",
		Rates:      map[string]domain.HourlyRate{"emp_1": {Euros: 10}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	row := result.Rows[0]
	if row.TotalMinutes != 180 {
		t.Errorf("all-time total must stay 180, got %d", row.TotalMinutes)
	}
	if row.Monthly == nil {
		t.Fatal("monthly summary expected when a month is selected")
	}
	if row.Monthly.TotalMinutes != 60 {
		t.Errorf("expected 60 monthly minutes, got %d", row.Monthly.TotalMinutes)
	}
	if row.Monthly.Wage != 10 {
		t.Errorf("expected monthly wage 10, got %v", row.Monthly.Wage)
	}
	if row.Monthly.MonthDisplay != "January 2024" {
		t.Errorf("unexpected month display %s", row.Monthly.MonthDisplay)
	}

	if len(result.AvailableMonths) != 2 || result.AvailableMonths[0] != "2024-02" || result.AvailableMonths[1] != "2024-01" {
		t.Errorf("unexpected available months: %v", result.AvailableMonths)
	}
}

func TestReportService_EmptyMonthReportsZeroTotals(t *testing.T) {
	entries, users := reportFixture()
	seedEntry(entries, "e1", "emp_1", "2024-01-02", "09:00", 60)

	svc := NewReportService(entries, users, discardLogger)
	result, _ := svc.BuildReport(context.Background(), ports.WageReportInput{
		EmployeeID: "emp_1",
		Month:      "2024-06",
		Locale:     "en",
		Rates:      map[string]domain.HourlyRate{"emp_1": {Euros: 10}},
	})

	row := result.Rows[0]
	if row.Monthly == nil {
		t.Fatal("monthly summary expected even for an empty month")
	}
	if row.Monthly.TotalMinutes != 0 || row.Monthly.Wage != 0 {
		t.Errorf("empty month must report zero totals, got %d minutes, wage %v", row.Monthly.TotalMinutes, row.Monthly.Wage)
	}
}

func TestReportService_NoMonthSelectedOmitsMonthly(t *testing.T) {
	entries, users := reportFixture()
	seedEntry(entries, "e1", "emp_1", "2024-01-02", "09:00", 60)

	svc := NewReportService(entries, users, discardLogger)
	result, _ := svc.BuildReport(context.Background(), ports.WageReportInput{EmployeeID: "emp_1", Locale: "en"})

	if result.Rows[0].Monthly != nil {
		t.Error("no month selected must be distinct from an empty month")
	}
}

func TestReportService_UnknownEmployeeGetsPlaceholderName(t *testing.T) {
	entries, users := reportFixture()
	seedEntry(entries, "e1", "ghost", "2024-01-02", "09:00", 60)

	svc := NewReportService(entries, users, discardLogger)
	result, _ := svc.BuildReport(context.Background(), ports.WageReportInput{EmployeeID: ports.EmployeeSelectorAll, Locale: "en"})

	if result.Rows[0].EmployeeName != "Unknown User" {
		t.Errorf("expected Unknown User, got %s", result.Rows[0].EmployeeName)
	}
}

func TestReportService_RowsSortedByName(t *testing.T) {
	entries, users := reportFixture()
	seedEntry(entries, "e1", "emp_1", "2024-01-02", "09:00", 60) // John Doe
	seedEntry(entries, "e2", "emp_2", "2024-01-02", "09:00", 60) // Alice Rossi

	svc := NewReportService(entries, users, discardLogger)
	result, _ := svc.BuildReport(context.Background(), ports.WageReportInput{EmployeeID: ports.EmployeeSelectorAll, Locale: "en"})

	if len(result.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(result.Rows))
	}
	if result.Rows[0].EmployeeName != "Alice Rossi" || result.Rows[1].EmployeeName != "John Doe" {
		t.Errorf("rows not sorted by name: %s, %s", result.Rows[0].EmployeeName, result.Rows[1].EmployeeName)
	}
}

func TestReportService_DayGroupsSortedDescending(t *testing.T) {
	entries, users := reportFixture()
	seedEntry(entries, "e1", "emp_1", "2024-01-02", "09:00", 60)
	seedEntry(entries, "e2", "emp_1", "2024-01-03", "08:00", 60)
	seedEntry(entries, "e3", "emp_1", "2024-01-03", "15:00", 60)

	svc := NewReportService(entries, users, discardLogger)
	result, _ := svc.BuildReport(context.Background(), ports.WageReportInput{EmployeeID: "emp_1", Locale: "en"})

	days := result.Rows[0].Days
	if len(days) != 2 {
		t.Fatalf("expected 2 day groups, got %d", len(days))
	}
	if days[0].Date != "2024-01-03" || days[1].Date != "2024-01-02" {
		t.Errorf("dates not descending: %s, %s", days[0].Date, days[1].Date)
	}
	if days[0].Entries[0].ID != "e3" {
		t.Errorf("entries within a date must be newest first, got %s", days[0].Entries[0].ID)
	}
}

func TestReportService_EmployeeFilter(t *testing.T) {
	entries, users := reportFixture()
	seedEntry(entries, "e1", "emp_1", "2024-01-02", "09:00", 60)
	seedEntry(entries, "e2", "emp_2", "2024-01-02", "09:00", 60)

	svc := NewReportService(entries, users, discardLogger)
	result, _ := svc.BuildReport(context.Background(), ports.WageReportInput{EmployeeID: "emp_2", Locale: "en"})

	if len(result.Rows) != 1 || result.Rows[0].EmployeeID != "emp_2" {
		t.Errorf("expected only emp_2, got %+v", result.Rows)
	}
}

func TestReportService_ItalianCurrencyDisplay(t *testing.T) {
	entries, users := reportFixture()
	seedEntry(entries, "e1", "emp_1", "2024-01-02", "09:00", 60)

	svc := NewReportService(entries, users, discardLogger)
	result, err := svc.BuildReport(context.Background(), ports.WageReportInput{
		EmployeeID: "emp_1",
		Locale:     "it",
		Rates:      map[string]domain.HourlyRate{"emp_1": {Euros: 10, Cents: 50}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Rows[0].Wage != 10.50 {
		t.Errorf("locale must not change the numeric wage, got %v", result.Rows[0].Wage)
	}
	if result.Rows[0].WageDisplay == "" {
		t.Error("wage display must be rendered for the it locale")
	}
}
