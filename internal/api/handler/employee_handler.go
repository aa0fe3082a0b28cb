package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zottaemp/timeclock-api/internal/api/metrics"
	"github.com/zottaemp/timeclock-api/internal/core/domain"
	"github.com/zottaemp/timeclock-api/internal/core/ports"
)

// EmployeeHandler handles the employee directory CRUD surface.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// Add handles POST /v1/employees.
//
// @Summary      Add an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addEmployeeRequest  true  "Employee details; password optional"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/employees [post]
func (h *EmployeeHandler) Add(c echo.Context) error {
	var req addEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	employee, err := h.service.Add(c.Request().Context(), ports.AddEmployeeInput{
		Email:       req.Email,
		Name:        req.Name,
		Age:         req.Age,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		JoinDate:    req.JoinDate,
		NewPassword: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return c.JSON(http.StatusConflict, errorResponse{Error: "user already exists"})
		}
		return err
	}

	metrics.EmployeeChangesTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusCreated, employee)
}

// Update handles PUT /v1/employees/:id. Absent fields are left untouched.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Employee ID"
// @Param        body  body      updateEmployeeRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	employee, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateEmployeeInput{
		Email:       req.Email,
		Name:        req.Name,
		Age:         req.Age,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		JoinDate:    req.JoinDate,
		NewPassword: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "employee not found"})
		}
		return err
	}

	metrics.EmployeeChangesTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, employee)
}

// Delete handles DELETE /v1/employees/:id. The response reports whether a
// record was actually removed; deleting a missing employee is not an error.
//
// @Summary      Delete an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Employee ID"
// @Success      200  {object}  deleteEmployeeResponse
// @Router       /v1/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	deleted, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	if deleted {
		metrics.EmployeeChangesTotal.WithLabelValues("delete").Inc()
	}
	return c.JSON(http.StatusOK, deleteEmployeeResponse{Deleted: deleted})
}

// List handles GET /v1/employees.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  employeeListResponse
// @Router       /v1/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if employees == nil {
		employees = []domain.User{}
	}
	return c.JSON(http.StatusOK, employeeListResponse{Data: employees})
}

// Get handles GET /v1/employees/:id.
//
// @Summary      Get an employee by ID
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Employee ID"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  errorResponse
// @Router       /v1/employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	employee, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "employee not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Filter handles GET /v1/employees/filter — id+name pairs for selection UI.
//
// @Summary      Employee references for filtering
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  employeeFilterResponse
// @Router       /v1/employees/filter [get]
func (h *EmployeeHandler) Filter(c echo.Context) error {
	refs, err := h.service.ListForFilter(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]employeeRefResponse, 0, len(refs))
	for _, ref := range refs {
		out = append(out, employeeRefResponse{ID: ref.ID, Name: ref.Name})
	}
	return c.JSON(http.StatusOK, employeeFilterResponse{Data: out})
}
