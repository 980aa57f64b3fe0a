package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignDeliveryEmployeeCommandIsNotConstructed = errors.New(
	"AssignDeliveryEmployeeCommand must be created via NewAssignDeliveryEmployeeCommand constructor",
)

// AssignDeliveryEmployeeCommand associates an order with a delivery employee
// from the external roster. Assignment is legal at any time before delivery
// completion and overwrites any prior assignment.
type AssignDeliveryEmployeeCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	employeeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDeliveryEmployeeCommand creates a command to assign a delivery
// employee to an order. Validates both identifiers.
func NewAssignDeliveryEmployeeCommand(orderID, employeeID kernel.UUID) (AssignDeliveryEmployeeCommand, error) {
	command := AssignDeliveryEmployeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setEmployeeID(employeeID),
	); err != nil {
		return AssignDeliveryEmployeeCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignDeliveryEmployeeCommandIsNotConstructed if validation fails.
func (c AssignDeliveryEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryEmployeeCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being assigned.
func (c AssignDeliveryEmployeeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// EmployeeID returns the identifier of the delivery employee.
func (c AssignDeliveryEmployeeCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

func (c *AssignDeliveryEmployeeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignDeliveryEmployeeCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	c.employeeID = employeeID
	return nil
}
