// Package employee provides the read model for delivery employees. Employee
// records are owned by an external roster; the fulfillment core only reads
// them to validate and display delivery assignments.
package employee

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrEmployeeIsNotConstructed is returned when an Employee instance was not
// created through the NewEmployee constructor.
var ErrEmployeeIsNotConstructed = errors.New("Employee must be created via NewEmployee constructor")

// Employee is a delivery employee from the external roster.
// Phone and email are display payload and may be empty.
type Employee struct {
	id            kernel.UUID
	name          string
	phone         string
	email         string
	isConstructed bool
}

// NewEmployee creates an Employee read model entry. The id must be valid and
// the name must not be empty.
func NewEmployee(id kernel.UUID, name, phone, email string) (*Employee, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Employee{
		id:            id,
		name:          name,
		phone:         phone,
		email:         email,
		isConstructed: true,
	}, nil
}

// Validate ensures the Employee was created through NewEmployee.
func (e *Employee) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEmployeeIsNotConstructed
	}
	return nil
}

// ID returns the employee's unique identifier.
func (e *Employee) ID() kernel.UUID {
	return e.id
}

// Name returns the employee's display name.
func (e *Employee) Name() string {
	return e.name
}

// Phone returns the employee's contact phone.
func (e *Employee) Phone() string {
	return e.phone
}

// Email returns the employee's contact email.
func (e *Employee) Email() string {
	return e.email
}
