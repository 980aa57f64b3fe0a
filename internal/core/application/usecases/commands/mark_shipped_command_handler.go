package commands

import (
	"context"
)

// MarkShippedCommandHandler processes shipping confirmations.
// Fails with an InvalidTransitionError when the order is already shipped and
// with a PreconditionFailedError when the acting warehouse holds no
// MainWarehouse allocation on the order.
type MarkShippedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkShippedCommandHandler creates a handler for shipping confirmations.
func NewMarkShippedCommandHandler(uowFactory OrderUoWFactory) MarkShippedCommandHandler {
	return MarkShippedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark-shipped command.
// Loads the order, applies the shipping transition for the acting warehouse,
// and persists the aggregate within a single transaction.
func (h MarkShippedCommandHandler) Handle(ctx context.Context, command MarkShippedCommand) error {
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

	if err = aggregate.MarkShipped(command.WarehouseID()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
