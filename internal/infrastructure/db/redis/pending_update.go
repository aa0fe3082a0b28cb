package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zottaemp/timeclock-api/internal/core/domain"
)

// pendingUpdateKey is the single slot for the staged admin credential
// change. One key, not one per admin: a later initiate overwrites.
const pendingUpdateKey = "admin:pending_update"

// PendingUpdateStore holds the staged admin credential change in Redis.
// The key TTL matches the confirmation window, so an abandoned update
// evicts itself; expiry is additionally checked at confirmation time.
type PendingUpdateStore struct {
	client *redis.Client
}

// NewPendingUpdateStore creates a PendingUpdateStore wrapping the given client.
func NewPendingUpdateStore(client *redis.Client) *PendingUpdateStore {
	return &PendingUpdateStore{client: client}
}

// Put stages an update, overwriting any previous one.
func (s *PendingUpdateStore) Put(ctx context.Context, p *domain.PendingAdminUpdate) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("pending update encode: %w", err)
	}

	ttl := time.Until(p.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Minute
	}
	if err := s.client.Set(ctx, pendingUpdateKey, data, ttl).Err(); err != nil {
		return fmt.Errorf("pending update store: %w", err)
	}
	return nil
}

// Get returns the staged update, or domain.ErrNoPendingUpdate when nothing
// is staged or the key already expired.
func (s *PendingUpdateStore) Get(ctx context.Context) (*domain.PendingAdminUpdate, error) {
	data, err := s.client.Get(ctx, pendingUpdateKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNoPendingUpdate
		}
		return nil, fmt.Errorf("pending update fetch: %w", err)
	}

	var p domain.PendingAdminUpdate
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("pending update decode: %w", err)
	}
	return &p, nil
}

// Clear removes the staged update.
func (s *PendingUpdateStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, pendingUpdateKey).Err(); err != nil {
		return fmt.Errorf("pending update clear: %w", err)
	}
	return nil
}
