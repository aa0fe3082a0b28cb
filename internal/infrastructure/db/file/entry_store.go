// Package file implements the work-entry port on a single JSON document.
// The whole collection is reloaded before every read and rewritten on every
// write, which makes the file the source of truth across independent
// requests; a mutex serialises access so two clock-outs cannot overwrite
// each other's snapshot.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/zottaemp/timeclock-api/internal/core/domain"
)

// EntryStore is the flat-file work-entry repository.
type EntryStore struct {
	path   string
	mu     sync.Mutex
	logger zerolog.Logger
}

func NewEntryStore(path string, logger zerolog.Logger) *EntryStore {
	return &EntryStore{path: path, logger: logger}
}

// load reads the collection from disk. Missing, empty, or malformed data
// yields an empty collection with a logged warning, never an error.
func (s *EntryStore) load() []domain.WorkEntry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn().Err(err).Str("path", s.path).Msg("failed to read work entries, starting empty")
		}
		return []domain.WorkEntry{}
	}
	if strings.TrimSpace(string(data)) == "" {
		return []domain.WorkEntry{}
	}

	var entries []domain.WorkEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("malformed work entry data discarded")
		return []domain.WorkEntry{}
	}
	return entries
}

// save rewrites the whole collection.
func (s *EntryStore) save(entries []domain.WorkEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode work entries: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write work entries: %w", err)
	}
	return nil
}

func (s *EntryStore) Insert(_ context.Context, e *domain.WorkEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := append(s.load(), *e)
	return s.save(entries)
}

func (s *EntryStore) Update(_ context.Context, e *domain.WorkEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.load()
	for i := range entries {
		if entries[i].ID == e.ID {
			entries[i] = *e
			return s.save(entries)
		}
	}
	return domain.ErrEntryNotFound
}

func (s *EntryStore) FindOpen(_ context.Context, entryID, userID string) (*domain.WorkEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.load() {
		if e.ID == entryID && e.UserID == userID && e.Open() {
			entry := e
			return &entry, nil
		}
	}
	return nil, domain.ErrEntryNotFound
}

func (s *EntryStore) FindOpenByUser(_ context.Context, userID string) (*domain.WorkEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.load() {
		if e.UserID == userID && e.Open() {
			entry := e
			return &entry, nil
		}
	}
	return nil, domain.ErrEntryNotFound
}

func (s *EntryStore) FindByID(_ context.Context, entryID string) (*domain.WorkEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.load() {
		if e.ID == entryID {
			entry := e
			return &entry, nil
		}
	}
	return nil, domain.ErrEntryNotFound
}

func (s *EntryStore) ListByUser(_ context.Context, userID string) ([]domain.WorkEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.WorkEntry
	for _, e := range s.load() {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *EntryStore) ListAll(_ context.Context) ([]domain.WorkEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(), nil
}
