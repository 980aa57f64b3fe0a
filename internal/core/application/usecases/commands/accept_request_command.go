package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAcceptRequestCommandIsNotConstructed = errors.New(
	"AcceptRequestCommand must be created via NewAcceptRequestCommand constructor",
)

// AcceptRequestCommand represents a warehouse accepting a cross-warehouse
// request for one of its RemainingWarehouse allocations. The allocation id is
// the correlation key carried by the notification entry the operator acted on.
//
// Accepting is idempotent: accepting an already-accepted allocation succeeds
// without changing anything.
//
// Example:
//
//	cmd, err := NewAcceptRequestCommand(orderID, allocationID)
//	if err != nil {
//	    return fmt.Errorf("invalid accept request: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to accept request: %w", err)
//	}
type AcceptRequestCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	allocationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptRequestCommand creates a command to accept a cross-warehouse request.
// Validates that both the order id and the allocation id are valid.
func NewAcceptRequestCommand(orderID, allocationID kernel.UUID) (AcceptRequestCommand, error) {
	command := AcceptRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setAllocationID(allocationID),
	); err != nil {
		return AcceptRequestCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptRequestCommandIsNotConstructed if validation fails.
func (c AcceptRequestCommand) Validate() error {
	return c.guard.Validate(ErrAcceptRequestCommandIsNotConstructed)
}

// OrderID returns the identifier of the order carrying the allocation.
func (c AcceptRequestCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AllocationID returns the correlation key of the allocation being accepted.
func (c AcceptRequestCommand) AllocationID() kernel.UUID {
	return c.allocationID
}

func (c *AcceptRequestCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptRequestCommand) setAllocationID(allocationID kernel.UUID) error {
	if err := allocationID.Validate(); err != nil {
		return err
	}

	c.allocationID = allocationID
	return nil
}
