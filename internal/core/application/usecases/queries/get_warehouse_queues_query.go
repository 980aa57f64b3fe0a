// Package queries contains read operations in the CQRS architecture.
// Query handlers never modify state; the warehouse queues query in particular
// is a pure projection that must be re-run after every successful command.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetWarehouseQueuesQueryIsNotConstructed = errors.New(
	"GetWarehouseQueuesQuery must be created via NewGetWarehouseQueuesQuery constructor",
)

// GetWarehouseQueuesQuery retrieves the classified work queues for one
// warehouse identity: orders pending dispatch, cross-warehouse notifications,
// orders ready for delivery, and completed orders.
//
// The warehouse identity is an explicit parameter of the query; there is no
// ambient session state.
//
// Example:
//
//	query, err := NewGetWarehouseQueuesQuery(warehouseID)
//	if err != nil {
//	    return fmt.Errorf("invalid warehouse id: %w", err)
//	}
//
//	queues, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to classify orders: %w", err)
//	}
//	fmt.Printf("%d orders pending dispatch\n", len(queues.PendingMainWarehouse))
type GetWarehouseQueuesQuery struct { //nolint:recvcheck //using for validation
	warehouseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWarehouseQueuesQuery creates a query for the given warehouse identity.
// Validates the warehouse id.
func NewGetWarehouseQueuesQuery(warehouseID kernel.UUID) (GetWarehouseQueuesQuery, error) {
	if err := warehouseID.Validate(); err != nil {
		return GetWarehouseQueuesQuery{}, err
	}

	return GetWarehouseQueuesQuery{
		warehouseID: warehouseID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetWarehouseQueuesQueryIsNotConstructed if validation fails.
func (q GetWarehouseQueuesQuery) Validate() error {
	return q.guard.Validate(ErrGetWarehouseQueuesQueryIsNotConstructed)
}

// WarehouseID returns the warehouse identity to classify for.
func (q GetWarehouseQueuesQuery) WarehouseID() kernel.UUID {
	return q.warehouseID
}
