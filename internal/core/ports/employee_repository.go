package ports

import (
	"context"

	"github.com/quickserve/ordering-system/internal/core/domain"
)

// ListEmployeesFilter carries the query parameters for the paginated listing.
type ListEmployeesFilter struct {
	Name     string // optional: substring match on display name
	Page     int    // 1-based
	PageSize int    // rows per page (capped by the service)
}

// EmployeeRepository defines persistence operations for employee accounts.
// Absence of a match is reported as domain.ErrAccountNotFound, not a fault.
type EmployeeRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Employee, error)
	FindByID(ctx context.Context, id int64) (*domain.Employee, error)
	// Create persists a new employee and returns it with the assigned id.
	// A username collision is reported as domain.ErrEmployeeExists.
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) error
	// List returns a page of employees matching filter and the total count.
	List(ctx context.Context, filter ListEmployeesFilter) ([]*domain.Employee, int64, error)
}
