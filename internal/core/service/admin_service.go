package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/zottaemp/timeclock-api/internal/core/domain"
	"github.com/zottaemp/timeclock-api/internal/core/ports"
)

// pendingTTL is the confirmation window for a staged credential change.
const pendingTTL = 15 * time.Minute

// AdminCredentialService implements the two-phase admin credential change.
// A single pending update exists process-wide; a later initiate overwrites
// an earlier one, and expiry is checked lazily at confirmation time.
type AdminCredentialService struct {
	users   ports.UserRepository
	pending ports.PendingUpdateStore
	logger  zerolog.Logger
	now     func() time.Time // replaced in tests
}

func NewAdminCredentialService(users ports.UserRepository, pending ports.PendingUpdateStore, logger zerolog.Logger) *AdminCredentialService {
	return &AdminCredentialService{users: users, pending: pending, logger: logger, now: time.Now}
}

// Initiate stages a credential change and returns the verification token
// directly to the caller (mock verification, not out-of-band delivery).
func (s *AdminCredentialService) Initiate(ctx context.Context, adminID, newEmail, newPassword string) (*ports.InitiateResult, error) {
	if newEmail == "" && newPassword == "" {
		return nil, domain.ErrNoChangesRequested
	}

	admin, err := s.users.FindByID(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("initiate credential change: %w", err)
	}
	if admin.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("initiate credential change: %w", domain.ErrForbidden)
	}

	update := &domain.PendingAdminUpdate{
		AdminUserID: adminID,
		NewEmail:    newEmail,
		NewPassword: newPassword,
		Token:       newVerificationToken(),
		ExpiresAt:   s.now().Add(pendingTTL),
	}

	if err := s.pending.Put(ctx, update); err != nil {
		return nil, fmt.Errorf("initiate credential change: %w", err)
	}

	s.logger.Info().Str("admin_id", adminID).Time("expires_at", update.ExpiresAt).Msg("credential change initiated")
	return &ports.InitiateResult{Token: update.Token, ExpiresAt: update.ExpiresAt}, nil
}

// Confirm validates id+token+expiry, applies the staged change, and clears
// the pending record. Mismatch leaves the pending record intact; expiry
// clears it.
func (s *AdminCredentialService) Confirm(ctx context.Context, adminID, token string) (*domain.User, error) {
	update, err := s.pending.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("confirm credential change: %w", err)
	}

	if update.AdminUserID != adminID || update.Token != token {
		return nil, fmt.Errorf("confirm credential change: %w", domain.ErrTokenMismatch)
	}

	if update.Expired(s.now()) {
		if err := s.pending.Clear(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("failed to clear expired pending update")
		}
		return nil, fmt.Errorf("confirm credential change: %w", domain.ErrTokenExpired)
	}

	admin, err := s.users.FindByID(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("confirm credential change: %w", err)
	}

	if update.NewEmail != "" {
		admin.Email = update.NewEmail
	}
	if update.NewPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(update.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("confirm credential change: %w", err)
		}
		admin.PasswordHash = string(hash)
	}

	if err := s.users.Update(ctx, admin); err != nil {
		return nil, fmt.Errorf("confirm credential change: %w", err)
	}

	if err := s.pending.Clear(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to clear pending update after confirmation")
	}

	s.logger.Info().Str("admin_id", adminID).Msg("admin credentials updated")
	return admin, nil
}

// newVerificationToken returns a random token in the format TOK-XXXXXXXXXXXX.
func newVerificationToken() string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("TOK-%012X", time.Now().UnixNano()&0xFFFFFFFFFFFF)
	}
	return fmt.Sprintf("TOK-%X", b)
}
