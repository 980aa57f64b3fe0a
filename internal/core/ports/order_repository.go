// Package ports defines repository interfaces for the fulfillment core.
// These interfaces establish contracts between the domain layer and the
// external store that owns all mutable order state, enabling dependency
// inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The external store owns all mutation; the core reads snapshots for
// classification and writes back only the results of validated transitions.
type OrderRepository interface {
	// Add persists a new order aggregate to storage. Orders are created
	// upstream at order-placement time; this is the ingestion boundary,
	// not a core operation.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with all line items and allocations.
	// Returns an error wrapping errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves the full order snapshot in stable insertion order.
	// Classification is a pure function over this snapshot and must be
	// re-run after every successful command.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
