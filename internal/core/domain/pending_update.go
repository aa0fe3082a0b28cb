package domain

import (
	"errors"
	"time"
)

var ErrNoPendingUpdate = errors.New("no pending credential update")
var ErrTokenMismatch = errors.New("verification token mismatch")
var ErrTokenExpired = errors.New("verification token expired")
var ErrNoChangesRequested = errors.New("no changes requested")

// PendingAdminUpdate is a staged, token-guarded admin credential change
// awaiting confirmation. At most one exists process-wide: a later initiate
// overwrites any earlier one.
type PendingAdminUpdate struct {
	AdminUserID string    `json:"admin_user_id"`
	NewEmail    string    `json:"new_email,omitempty"`
	NewPassword string    `json:"new_password,omitempty"`
	Token       string    `json:"token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Expired reports whether the confirmation window has closed.
func (p *PendingAdminUpdate) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}
