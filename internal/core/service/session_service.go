package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/zottaemp/timeclock-api/internal/core/domain"
	"github.com/zottaemp/timeclock-api/internal/core/ports"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// SessionService implements the work-session state machine.
type SessionService struct {
	repo   ports.WorkEntryRepository
	logger zerolog.Logger
	now    func() time.Time // replaced in tests
}

func NewSessionService(repo ports.WorkEntryRepository, logger zerolog.Logger) *SessionService {
	return &SessionService{repo: repo, logger: logger, now: time.Now}
}

// StartWork opens a new entry at the current wall clock. An employee with an
// open entry is rejected rather than given a second one.
func (s *SessionService) StartWork(ctx context.Context, input ports.StartWorkInput) (*domain.WorkEntry, error) {
	if open, err := s.repo.FindOpenByUser(ctx, input.UserID); err == nil {
		s.logger.Info().Str("user_id", input.UserID).Str("entry_id", open.ID).Msg("start rejected, session already open")
		return nil, domain.ErrSessionOpen
	} else if !errors.Is(err, domain.ErrEntryNotFound) {
		s.logger.Warn().Err(err).Str("user_id", input.UserID).Msg("open-session check failed, starting anyway")
	}

	now := s.now()
	entry := &domain.WorkEntry{
		ID:            "entry_" + uuid.NewString(),
		UserID:        input.UserID,
		Date:          now.Format(dateLayout),
		StartTime:     now.Format(clockLayout),
		Activity:      input.Activity,
		StartPhotoURL: input.PhotoDataURI,
	}

	// Availability over durability: a failed write is logged as a warning
	// and the in-memory entry is still returned to the caller.
	if err := s.repo.Insert(ctx, entry); err != nil {
		s.logger.Warn().Err(err).Str("entry_id", entry.ID).Msg("failed to persist work entry")
	}

	s.logger.Info().
		Str("entry_id", entry.ID).
		Str("user_id", entry.UserID).
		Bool("photo", entry.StartPhotoURL != "").
		Msg("work started")

	return entry, nil
}

// EndWork closes the open entry matching (EntryID, UserID), overwriting the
// activity text and computing the duration.
func (s *SessionService) EndWork(ctx context.Context, input ports.EndWorkInput) (*domain.WorkEntry, error) {
	entry, err := s.repo.FindOpen(ctx, input.EntryID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("end work: %w", err)
	}

	entry.EndTime = s.now().Format(clockLayout)
	entry.Activity = input.Activity
	if input.PhotoDataURI != "" {
		entry.EndPhotoURL = input.PhotoDataURI
	}

	minutes, err := domain.DurationBetween(entry.StartTime, entry.EndTime)
	if err != nil {
		// Stored start time is malformed; close the entry with a zero
		// duration instead of leaving the session stuck open.
		s.logger.Warn().Err(err).Str("entry_id", entry.ID).Msg("duration computation failed")
		minutes = 0
	}
	entry.DurationMinutes = &minutes

	if err := s.repo.Update(ctx, entry); err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			return nil, fmt.Errorf("end work: %w", err)
		}
		s.logger.Warn().Err(err).Str("entry_id", entry.ID).Msg("failed to persist work entry update")
	}

	s.logger.Info().
		Str("entry_id", entry.ID).
		Str("user_id", entry.UserID).
		Int("duration_minutes", minutes).
		Msg("work ended")

	return entry, nil
}

// HistoryForUser returns the employee's entries, most recent first.
func (s *SessionService) HistoryForUser(ctx context.Context, userID string) ([]domain.WorkEntry, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("work history: %w", err)
	}
	sortMostRecentFirst(entries)
	return entries, nil
}

// AllEntries returns every entry, most recent first.
func (s *SessionService) AllEntries(ctx context.Context) ([]domain.WorkEntry, error) {
	entries, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("all entries: %w", err)
	}
	sortMostRecentFirst(entries)
	return entries, nil
}

// EntryByID fetches one entry regardless of owner or state.
func (s *SessionService) EntryByID(ctx context.Context, entryID string) (*domain.WorkEntry, error) {
	entry, err := s.repo.FindByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("entry by id: %w", err)
	}
	return entry, nil
}

// sortMostRecentFirst orders entries by descending date, then descending
// start time. Entries missing a start time compare equal within their date,
// so the stable sort leaves them where they were.
func sortMostRecentFirst(entries []domain.WorkEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date > entries[j].Date
		}
		if entries[i].StartTime != "" && entries[j].StartTime != "" {
			return entries[i].StartTime > entries[j].StartTime
		}
		return false
	})
}
