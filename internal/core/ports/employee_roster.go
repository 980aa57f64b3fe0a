package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/employee"
	"fulfillment/internal/core/domain/model/kernel"
)

// EmployeeRoster defines the read-only contract for the external delivery
// employee list. The core never owns employee records; it only looks them up
// to validate and display delivery assignments.
type EmployeeRoster interface {
	// Get retrieves an employee by id.
	// Returns an error wrapping errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*employee.Employee, error)

	// GetAll retrieves the full roster for display.
	GetAll(ctx context.Context) ([]*employee.Employee, error)
}
