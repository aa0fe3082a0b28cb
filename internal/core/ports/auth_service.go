package ports

import (
	"context"

	"github.com/zottaemp/timeclock-api/internal/core/domain"
)

// AuthService checks credentials and issues session tokens. Accounts are
// created through the employee directory (or the admin seed), so there is
// no self-service registration.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
