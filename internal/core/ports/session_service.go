package ports

import (
	"context"

	"github.com/zottaemp/timeclock-api/internal/core/domain"
)

// StartWorkInput carries the data needed to open a work session.
// Activity is required; the photo is a data-URI captured at clock-in and is
// absent when no camera was available.
type StartWorkInput struct {
	UserID       string
	Activity     string
	PhotoDataURI string
}

// EndWorkInput carries the data needed to close a work session. The
// activity text supplied here overwrites the one recorded at start.
type EndWorkInput struct {
	EntryID      string
	UserID       string
	Activity     string
	PhotoDataURI string
}

// SessionService is the work-session state machine: closed -> open -> closed.
type SessionService interface {
	// StartWork opens a new entry dated and timed at the current wall
	// clock. Returns domain.ErrSessionOpen when the employee already has
	// an open entry.
	StartWork(ctx context.Context, input StartWorkInput) (*domain.WorkEntry, error)
	// EndWork closes the open entry matching (EntryID, UserID), computing
	// its duration. Returns domain.ErrEntryNotFound when no such open
	// entry exists.
	EndWork(ctx context.Context, input EndWorkInput) (*domain.WorkEntry, error)
	// HistoryForUser returns the employee's entries, most recent first
	// (descending date, then descending start time).
	HistoryForUser(ctx context.Context, userID string) ([]domain.WorkEntry, error)
	// AllEntries returns every entry with the same ordering, for reporting.
	AllEntries(ctx context.Context) ([]domain.WorkEntry, error)
	// EntryByID fetches one entry regardless of owner or state.
	EntryByID(ctx context.Context, entryID string) (*domain.WorkEntry, error)
}
