package ports

import (
	"context"

	"github.com/zottaemp/timeclock-api/internal/core/domain"
)

// AddEmployeeInput carries the fields for a new employee record. When
// NewPassword is empty a random default is generated.
type AddEmployeeInput struct {
	Email       string
	Name        string
	Age         int
	PhoneNumber string
	Address     string
	JoinDate    string
	NewPassword string
}

// UpdateEmployeeInput is a partial update: nil fields are left untouched.
// A non-nil NewPassword replaces the stored password hash.
type UpdateEmployeeInput struct {
	Email       *string
	Name        *string
	Age         *int
	PhoneNumber *string
	Address     *string
	JoinDate    *string
	NewPassword *string
}

// EmployeeRef is the id+name pair used to populate selection UI.
type EmployeeRef struct {
	ID   string
	Name string
}

// EmployeeService is CRUD over the directory, restricted to role=employee.
type EmployeeService interface {
	Add(ctx context.Context, input AddEmployeeInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateEmployeeInput) (*domain.User, error)
	// Delete reports whether a record was actually removed.
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ListForFilter(ctx context.Context) ([]EmployeeRef, error)
}
