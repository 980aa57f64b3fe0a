package commands

import (
	"context"
)

// AssignDeliveryEmployeeCommandHandler associates orders with delivery
// employees. The employee is validated against the external roster before the
// association is persisted, so a dangling employee id can never gate a
// delivery.
//
// Example:
//
//	handler := NewAssignDeliveryEmployeeCommandHandler(uowFactory)
//	cmd, _ := NewAssignDeliveryEmployeeCommand(orderID, employeeID)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrObjectNotFound) {
//	    log.Println("order or employee does not exist")
//	}
type AssignDeliveryEmployeeCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignDeliveryEmployeeCommandHandler creates a handler for delivery
// employee assignments. Requires a UoWFactory that also exposes the roster.
func NewAssignDeliveryEmployeeCommandHandler(uowFactory UoWFactory) AssignDeliveryEmployeeCommandHandler {
	return AssignDeliveryEmployeeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
// Verifies the employee exists in the roster, loads the order, applies the
// assignment (reassignment allowed), and persists the aggregate.
func (h AssignDeliveryEmployeeCommandHandler) Handle(
	ctx context.Context,
	command AssignDeliveryEmployeeCommand,
) error {
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

	if _, err := uow.EmployeeRoster().Get(ctx, command.EmployeeID()); err != nil {
		return err
	}

	ordersRepo := uow.OrderRepository()

	aggregate, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AssignDeliveryEmployee(command.EmployeeID()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
