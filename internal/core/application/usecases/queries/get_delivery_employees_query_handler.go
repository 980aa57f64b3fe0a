package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryEmployeesQueryHandler retrieves all delivery employees from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetDeliveryEmployeesQueryHandler(db)
//	query := NewGetDeliveryEmployeesQuery()
//
//	employees, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get employees: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d employees\n", len(employees))
type GetDeliveryEmployeesQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryEmployeesQueryHandler creates a handler for employee retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetDeliveryEmployeesQueryHandler(db *gorm.DB) GetDeliveryEmployeesQueryHandler {
	return GetDeliveryEmployeesQueryHandler{db: db}
}

// Handle executes the query to retrieve all delivery employees.
// Returns a slice of employee read models sorted by name.
func (h GetDeliveryEmployeesQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryEmployeesQuery,
) ([]GetDeliveryEmployeesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	employees := make([]GetDeliveryEmployeesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			email
		FROM delivery_employees
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var employee GetDeliveryEmployeesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&employee.Name,
			&employee.Phone,
			&employee.Email,
		)
		if err != nil {
			return nil, err
		}

		employeeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		employee.ID = employeeID

		employees = append(employees, employee)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
