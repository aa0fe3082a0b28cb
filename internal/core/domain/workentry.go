package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrEntryNotFound = errors.New("work entry not found")
var ErrSessionOpen = errors.New("an open work entry already exists for this employee")
var ErrForbidden = errors.New("access forbidden")

// WorkEntry is one clock-in/clock-out record for an employee on a given
// calendar date. Date and times are stored as locale-independent strings:
// the date never changes after creation, even when the session crosses
// midnight before clock-out.
type WorkEntry struct {
	ID              string `json:"id" bson:"_id"`
	UserID          string `json:"user_id" bson:"user_id"`
	Date            string `json:"date" bson:"date"`             // YYYY-MM-DD
	StartTime       string `json:"start_time" bson:"start_time"` // HH:MM, 24-hour
	EndTime         string `json:"end_time,omitempty" bson:"end_time,omitempty"`
	DurationMinutes *int   `json:"duration_minutes,omitempty" bson:"duration_minutes,omitempty"`
	Activity        string `json:"activity" bson:"activity"`
	StartPhotoURL   string `json:"start_photo_url,omitempty" bson:"start_photo_url,omitempty"`
	EndPhotoURL     string `json:"end_photo_url,omitempty" bson:"end_photo_url,omitempty"`
}

// Open reports whether the entry has been started but not yet ended.
func (e *WorkEntry) Open() bool {
	return e.EndTime == ""
}

// Minutes returns the stored duration, treating an open entry as zero.
func (e *WorkEntry) Minutes() int {
	if e.DurationMinutes == nil {
		return 0
	}
	return *e.DurationMinutes
}

// Month returns the YYYY-MM prefix of the entry date.
func (e *WorkEntry) Month() string {
	if len(e.Date) < 7 {
		return e.Date
	}
	return e.Date[:7]
}

const minutesPerDay = 24 * 60

// DurationBetween computes the whole minutes between two HH:MM wall-clock
// times on an arbitrary common day. When end reads earlier than start the
// session is treated as having crossed midnight and a full day is added.
// Sessions longer than 24 hours are not representable in this scheme.
func DurationBetween(startTime, endTime string) (int, error) {
	start, err := parseClock(startTime)
	if err != nil {
		return 0, err
	}
	end, err := parseClock(endTime)
	if err != nil {
		return 0, err
	}
	if end < start {
		end += minutesPerDay
	}
	return end - start, nil
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("malformed clock time %q", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("malformed clock time %q", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("malformed clock time %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return h*60 + m, nil
}

// FormatDuration renders total minutes as "{hours}h {minutes}m".
func FormatDuration(totalMinutes int) string {
	return fmt.Sprintf("%dh %dm", totalMinutes/60, totalMinutes%60)
}
