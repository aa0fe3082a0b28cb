package service

import (
	"context"
	"crypto/rand"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/zottaemp/timeclock-api/internal/core/domain"
	"github.com/zottaemp/timeclock-api/internal/core/ports"
)

// EmployeeService is CRUD over the user directory, restricted to employees.
// Admin accounts are invisible to every method here.
type EmployeeService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewEmployeeService(repo ports.UserRepository, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, logger: logger}
}

// Add creates an employee with a fresh ID. When no password is supplied a
// random default is generated so the record is never passwordless.
func (s *EmployeeService) Add(ctx context.Context, input ports.AddEmployeeInput) (*domain.User, error) {
	password := input.NewPassword
	if password == "" {
		password = defaultPassword()
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("add employee: %w", err)
	}

	user := &domain.User{
		ID:           "emp_" + uuid.NewString(),
		Email:        input.Email,
		Name:         input.Name,
		Role:         domain.RoleEmployee,
		Age:          input.Age,
		PhoneNumber:  input.PhoneNumber,
		Address:      input.Address,
		JoinDate:     input.JoinDate,
		PasswordHash: string(hash),
	}

	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, fmt.Errorf("add employee: %w", err)
	}

	s.logger.Info().Str("employee_id", user.ID).Str("email", user.Email).Msg("employee added")
	return user, nil
}

// Update merges the supplied fields into the stored record; nil fields are
// left untouched. A new password replaces the stored hash.
func (s *EmployeeService) Update(ctx context.Context, id string, input ports.UpdateEmployeeInput) (*domain.User, error) {
	user, err := s.repo.FindEmployeeByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Age != nil {
		user.Age = *input.Age
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = *input.PhoneNumber
	}
	if input.Address != nil {
		user.Address = *input.Address
	}
	if input.JoinDate != nil {
		user.JoinDate = *input.JoinDate
	}
	if input.NewPassword != nil && *input.NewPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("update employee: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}

	s.logger.Info().Str("employee_id", user.ID).Msg("employee updated")
	return user, nil
}

// Delete removes an employee and reports whether a record was removed.
func (s *EmployeeService) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := s.repo.DeleteEmployee(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete employee: %w", err)
	}
	if removed {
		s.logger.Info().Str("employee_id", id).Msg("employee deleted")
	}
	return removed, nil
}

func (s *EmployeeService) List(ctx context.Context) ([]domain.User, error) {
	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

func (s *EmployeeService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindEmployeeByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return user, nil
}

// ListForFilter returns id+name pairs for populating selection UI. An
// employee with zero work entries still appears here.
func (s *EmployeeService) ListForFilter(ctx context.Context) ([]ports.EmployeeRef, error) {
	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees for filter: %w", err)
	}
	refs := make([]ports.EmployeeRef, 0, len(employees))
	for _, e := range employees {
		refs = append(refs, ports.EmployeeRef{ID: e.ID, Name: e.Name})
	}
	return refs, nil
}

// defaultPassword returns a random throwaway password for records created
// without one.
func defaultPassword() string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("default-%d", len(b))
	}
	return fmt.Sprintf("default-%X", b)
}
