package ports

import (
	"context"

	"github.com/zottaemp/timeclock-api/internal/core/domain"
)

// PendingUpdateStore holds the single process-wide pending admin credential
// change. Put overwrites any previous pending update; Get returns
// domain.ErrNoPendingUpdate when nothing is staged or the record has been
// evicted by its TTL.
type PendingUpdateStore interface {
	Put(ctx context.Context, p *domain.PendingAdminUpdate) error
	Get(ctx context.Context) (*domain.PendingAdminUpdate, error)
	Clear(ctx context.Context) error
}
