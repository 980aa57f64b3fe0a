package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkShippedCommandIsNotConstructed = errors.New(
	"MarkShippedCommand must be created via NewMarkShippedCommand constructor",
)

// MarkShippedCommand represents a warehouse confirming physical dispatch of an
// order. The warehouse identity is an explicit parameter; the acting warehouse
// must hold a MainWarehouse allocation on the order.
type MarkShippedCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	warehouseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkShippedCommand creates a command to mark an order as shipped by the
// given warehouse. Validates both identifiers.
func NewMarkShippedCommand(orderID, warehouseID kernel.UUID) (MarkShippedCommand, error) {
	command := MarkShippedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setWarehouseID(warehouseID),
	); err != nil {
		return MarkShippedCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkShippedCommandIsNotConstructed if validation fails.
func (c MarkShippedCommand) Validate() error {
	return c.guard.Validate(ErrMarkShippedCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being shipped.
func (c MarkShippedCommand) OrderID() kernel.UUID {
	return c.orderID
}

// WarehouseID returns the identity of the dispatching warehouse.
func (c MarkShippedCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

func (c *MarkShippedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkShippedCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.warehouseID = warehouseID
	return nil
}
