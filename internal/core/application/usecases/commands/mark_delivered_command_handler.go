package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// MarkDeliveredCommandHandler processes terminal delivery confirmations.
//
// The command fails with a PreconditionFailedError naming the unmet
// requirement when the order has not shipped, is already delivered, has no
// assigned delivery employee, or does not reference the confirming warehouse.
//
// Example:
//
//	handler := NewMarkDeliveredCommandHandler(uowFactory)
//	cmd, _ := NewMarkDeliveredCommand(orderID, warehouseID)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrPreconditionFailed) {
//	    log.Printf("delivery not allowed yet: %v", err)
//	}
type MarkDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkDeliveredCommandHandler creates a handler for delivery confirmations.
func NewMarkDeliveredCommandHandler(uowFactory OrderUoWFactory) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark-delivered command.
// Verifies the confirming warehouse is a party to the order, applies the
// gated delivery transition, and persists the aggregate.
func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, command MarkDeliveredCommand) error {
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

	if !aggregate.ReferencesWarehouse(command.WarehouseID()) {
		return errs.NewPreconditionFailedError(
			"markDelivered",
			fmt.Sprintf("an allocation for warehouse %s", command.WarehouseID()),
			command.OrderID().String(),
		)
	}

	if err = aggregate.MarkDelivered(); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
