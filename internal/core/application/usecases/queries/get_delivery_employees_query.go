package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetDeliveryEmployeesQueryIsNotConstructed = errors.New(
	"GetDeliveryEmployeesQuery must be created via NewGetDeliveryEmployeesQuery constructor",
)

// GetDeliveryEmployeesQuery retrieves all delivery employees in the system.
// Returns employee identities and contact data for assignment screens.
//
// Example:
//
//	query := NewGetDeliveryEmployeesQuery()
//	handler := NewGetDeliveryEmployeesQueryHandler(db)
//
//	employees, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve employees: %w", err)
//	}
//
//	for _, employee := range employees {
//	    fmt.Printf("Employee %s (%s)\n", employee.Name, employee.Phone)
//	}
type GetDeliveryEmployeesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDeliveryEmployeesQuery creates a query to retrieve all delivery employees.
// This is a parameterless query that fetches the complete employee list.
func NewGetDeliveryEmployeesQuery() GetDeliveryEmployeesQuery {
	return GetDeliveryEmployeesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryEmployeesQueryIsNotConstructed if validation fails.
func (q GetDeliveryEmployeesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryEmployeesQueryIsNotConstructed)
}

// GetDeliveryEmployeesQueryResponse represents employee information in the read model.
type GetDeliveryEmployeesQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Phone string
	Email string
}
