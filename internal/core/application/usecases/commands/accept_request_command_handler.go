package commands

import (
	"context"
)

// AcceptRequestCommandHandler applies the acceptRequest transition to a
// RemainingWarehouse allocation and persists the result.
//
// Example:
//
//	handler := NewAcceptRequestCommandHandler(uowFactory)
//	cmd, _ := NewAcceptRequestCommand(orderID, allocationID)
//	switch err := handler.Handle(ctx, cmd); {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("order or allocation is gone from the snapshot")
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    log.Println("allocation was never requested")
//	case err != nil:
//	    log.Printf("accept failed: %v", err)
//	}
type AcceptRequestCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcceptRequestCommandHandler creates a handler for accept-request operations.
// Requires an OrderUoWFactory for coordinating transactional updates.
func NewAcceptRequestCommandHandler(uowFactory OrderUoWFactory) AcceptRequestCommandHandler {
	return AcceptRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the accept-request command.
// Loads the order, applies the idempotent accept transition to the referenced
// allocation, and persists the aggregate within a single transaction.
func (h AcceptRequestCommandHandler) Handle(ctx context.Context, command AcceptRequestCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()

	aggregate, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AcceptAllocation(command.AllocationID()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
