package ports

import (
	"context"

	"github.com/quickserve/ordering-system/internal/core/domain"
)

// CreateEmployeeInput carries the data needed to create an employee account.
// OperatorID is the acting principal established by the auth middleware and is
// passed explicitly on every write.
type CreateEmployeeInput struct {
	Username   string
	Name       string
	Phone      string
	Sex        string
	IDNumber   string
	OperatorID int64
}

// UpdateEmployeeInput carries the mutable profile fields. Username is
// immutable after creation and deliberately absent.
type UpdateEmployeeInput struct {
	ID         int64
	Name       string
	Phone      string
	Sex        string
	IDNumber   string
	OperatorID int64
}

// ListEmployeesInput carries the parameters for the paginated listing.
type ListEmployeesInput struct {
	Name     string
	Page     int
	PageSize int
}

// ListEmployeesResult is returned by ListEmployees.
type ListEmployeesResult struct {
	Items      []*domain.Employee
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// EmployeeService defines the administrative use-cases for employee accounts.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, input CreateEmployeeInput) (*domain.Employee, error)
	ListEmployees(ctx context.Context, input ListEmployeesInput) (*ListEmployeesResult, error)
	SetStatus(ctx context.Context, id int64, status domain.EmployeeStatus, operatorID int64) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, input UpdateEmployeeInput) error
}
