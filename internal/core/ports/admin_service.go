package ports

import (
	"context"
	"time"

	"github.com/zottaemp/timeclock-api/internal/core/domain"
)

// InitiateResult is returned by Initiate. The token is handed straight back
// to the caller: this mirrors the mock verification flow of the original
// system rather than an out-of-band delivery channel.
type InitiateResult struct {
	Token     string
	ExpiresAt time.Time
}

// AdminCredentialService is the two-phase admin credential change:
// initiate stages a token-guarded update, confirm applies it.
type AdminCredentialService interface {
	// Initiate requires at least one of newEmail / newPassword and
	// overwrites any previously staged update.
	Initiate(ctx context.Context, adminID, newEmail, newPassword string) (*InitiateResult, error)
	// Confirm validates id+token+expiry, applies the change, and clears
	// the pending record. Mismatch or expiry fails without mutating the
	// user; expiry additionally clears the stale pending record.
	Confirm(ctx context.Context, adminID, token string) (*domain.User, error)
}
