package ports

import (
	"context"

	"github.com/zottaemp/timeclock-api/internal/core/domain"
)

// UserRepository defines persistence for the user directory (employees and
// the seeded admin). Employee-scoped methods never see or touch admin rows.
type UserRepository interface {
	Insert(ctx context.Context, u *domain.User) error
	// FindByEmail is the credential-check lookup used by login.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID retrieves any user by ID (used by the admin workflow).
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindEmployeeByID retrieves a user only when role is employee.
	// Returns domain.ErrEmployeeNotFound otherwise.
	FindEmployeeByID(ctx context.Context, id string) (*domain.User, error)
	ListEmployees(ctx context.Context) ([]domain.User, error)
	// Update replaces the stored user with the same ID.
	Update(ctx context.Context, u *domain.User) error
	// DeleteEmployee removes an employee by ID and reports whether a
	// record was actually removed. Admin rows are never matched.
	DeleteEmployee(ctx context.Context, id string) (bool, error)
}
