package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/zottaemp/timeclock-api/internal/core/domain"
	"github.com/zottaemp/timeclock-api/internal/core/ports"
)

const unknownUserName = "Unknown User"

// ReportService implements the aggregation and wage engine.
type ReportService struct {
	entries   ports.WorkEntryRepository
	directory ports.UserRepository
	logger    zerolog.Logger
}

func NewReportService(entries ports.WorkEntryRepository, directory ports.UserRepository, logger zerolog.Logger) *ReportService {
	return &ReportService{entries: entries, directory: directory, logger: logger}
}

// BuildReport filters, groups, totals, and prices work entries per the
// requested selector, month, and per-employee rates.
func (s *ReportService) BuildReport(ctx context.Context, input ports.WageReportInput) (*ports.WageReportResult, error) {
	var (
		entries []domain.WorkEntry
		err     error
	)
	if input.EmployeeID == "" || input.EmployeeID == ports.EmployeeSelectorAll {
		entries, err = s.entries.ListAll(ctx)
	} else {
		entries, err = s.entries.ListByUser(ctx, input.EmployeeID)
	}
	if err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}

	names, err := s.employeeNames(ctx)
	if err != nil {
		// Name resolution is cosmetic; fall back to placeholders.
		s.logger.Warn().Err(err).Msg("employee name lookup failed, using placeholders")
		names = map[string]string{}
	}

	byEmployee := make(map[string][]domain.WorkEntry)
	monthSet := make(map[string]struct{})
	for _, e := range entries {
		byEmployee[e.UserID] = append(byEmployee[e.UserID], e)
		monthSet[e.Month()] = struct{}{}
	}

	rows := make([]ports.EmployeeReportRow, 0, len(byEmployee))
	for userID, group := range byEmployee {
		rate := input.Rates[userID]
		name, ok := names[userID]
		if !ok {
			name = unknownUserName
		}

		total := totalMinutes(group)
		row := ports.EmployeeReportRow{
			EmployeeID:   userID,
			EmployeeName: name,
			TotalMinutes: total,
			DisplayTotal: domain.FormatDuration(total),
			Wage:         wage(total, rate),
			Days:         groupByDate(group),
		}
		row.WageDisplay = formatCurrency(row.Wage, input.Locale)

		if input.Month != "" {
			row.Monthly = s.monthlySummary(group, input.Month, rate, input.Locale)
		}

		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].EmployeeName < rows[j].EmployeeName
	})

	return &ports.WageReportResult{
		Rows:            rows,
		AvailableMonths: sortedMonths(monthSet),
	}, nil
}

func (s *ReportService) employeeNames(ctx context.Context) (map[string]string, error) {
	employees, err := s.directory.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.Name
	}
	return names, nil
}

func (s *ReportService) monthlySummary(group []domain.WorkEntry, month string, rate domain.HourlyRate, locale string) *ports.MonthlySummary {
	var monthEntries []domain.WorkEntry
	for _, e := range group {
		if e.Month() == month {
			monthEntries = append(monthEntries, e)
		}
	}

	total := totalMinutes(monthEntries)
	m := &ports.MonthlySummary{
		Month:        month,
		MonthDisplay: displayMonth(month),
		TotalMinutes: total,
		DisplayTotal: domain.FormatDuration(total),
		Wage:         wage(total, rate),
	}
	m.WageDisplay = formatCurrency(m.Wage, locale)
	return m
}

// groupByDate splits one employee's entries into per-date groups, dates
// descending, entries within a date descending by start time.
func groupByDate(group []domain.WorkEntry) []ports.DayGroup {
	byDate := make(map[string][]domain.WorkEntry)
	for _, e := range group {
		byDate[e.Date] = append(byDate[e.Date], e)
	}

	days := make([]ports.DayGroup, 0, len(byDate))
	for date, dayEntries := range byDate {
		sortMostRecentFirst(dayEntries)
		days = append(days, ports.DayGroup{Date: date, Entries: dayEntries})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date > days[j].Date })
	return days
}

func totalMinutes(entries []domain.WorkEntry) int {
	total := 0
	for _, e := range entries {
		total += e.Minutes()
	}
	return total
}

// wage prices total minutes at the effective hourly rate. A zero rate yields
// a zero wage, never an error.
func wage(totalMinutes int, rate domain.HourlyRate) float64 {
	return float64(totalMinutes) / 60 * rate.Effective()
}

func sortedMonths(set map[string]struct{}) []string {
	months := make([]string, 0, len(set))
	for m := range set {
		months = append(months, m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}

// displayMonth renders "2024-01" as "January 2024". Month names are not
// localised; only currency display follows the request locale.
func displayMonth(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return t.Format("January 2006")
}

// formatCurrency renders a euro amount for display in the given locale.
// The numeric wage is never affected by locale.
func formatCurrency(amount float64, locale string) string {
	tag := language.English
	if locale == "it" {
		tag = language.Italian
	}
	p := message.NewPrinter(tag)
	return p.Sprintf("%v", currency.Symbol(currency.EUR.Amount(amount)))
}
