// Package employeerepo provides read-only persistence access to the delivery
// employee roster. The roster is owned by an external system; this package only
// maps its rows to the employee read model.
package employeerepo

import (
	"fulfillment/internal/core/domain/model/employee"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EmployeeDTO represents a delivery employee row.
type EmployeeDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Phone string
	Email string
}

// TableName specifies the database table name for employee entities.
func (EmployeeDTO) TableName() string {
	return "delivery_employees"
}

// toDomain converts a database DTO to an employee read model entry.
func toDomain(dto EmployeeDTO) (*employee.Employee, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return employee.NewEmployee(id, dto.Name, dto.Phone, dto.Email)
}
