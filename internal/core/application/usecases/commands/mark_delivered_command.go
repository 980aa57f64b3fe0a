package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand represents the terminal confirmation that an order
// reached its customer. Delivery is gated on prior shipping and on an
// assigned delivery employee.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	warehouseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to confirm final delivery of an
// order on behalf of the given warehouse. Validates both identifiers.
func NewMarkDeliveredCommand(orderID, warehouseID kernel.UUID) (MarkDeliveredCommand, error) {
	command := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setWarehouseID(warehouseID),
	); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkDeliveredCommandIsNotConstructed if validation fails.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being delivered.
func (c MarkDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}

// WarehouseID returns the identity of the confirming warehouse.
func (c MarkDeliveredCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

func (c *MarkDeliveredCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkDeliveredCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.warehouseID = warehouseID
	return nil
}
