package ports

import (
	"context"

	"github.com/zottaemp/timeclock-api/internal/core/domain"
)

// WorkEntryRepository defines persistence operations for work entries.
// The work-entry collection is exclusively owned by implementations of this
// port; every other component reads through it and never mutates directly.
// Implementations must serve reads from the latest persisted state so that
// independent requests observe each other's writes.
type WorkEntryRepository interface {
	// Insert appends a new entry.
	Insert(ctx context.Context, e *domain.WorkEntry) error
	// Update replaces the entry with the same ID in place.
	// Returns domain.ErrEntryNotFound when no such entry exists.
	Update(ctx context.Context, e *domain.WorkEntry) error
	// FindOpen retrieves the entry with the given ID when it belongs to
	// userID and has no end time yet. Returns domain.ErrEntryNotFound
	// otherwise (wrong owner and already-closed look identical to callers).
	FindOpen(ctx context.Context, entryID, userID string) (*domain.WorkEntry, error)
	// FindOpenByUser retrieves the first open entry for userID, or
	// domain.ErrEntryNotFound when the employee has no open session.
	FindOpenByUser(ctx context.Context, userID string) (*domain.WorkEntry, error)
	// FindByID retrieves a single entry regardless of state.
	FindByID(ctx context.Context, entryID string) (*domain.WorkEntry, error)
	// ListByUser returns all entries for userID, in no particular order.
	ListByUser(ctx context.Context, userID string) ([]domain.WorkEntry, error)
	// ListAll returns every entry, in no particular order.
	ListAll(ctx context.Context) ([]domain.WorkEntry, error)
}
