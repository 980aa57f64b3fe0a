// Package order provides domain entities and business logic for warehouse
// fulfillment of customer orders. It implements the Order aggregate root with
// its line items, per-line-item warehouse allocations, and the fulfillment
// lifecycle transitions.
//
// The package includes:
//   - Order: The aggregate root managing shipping/delivery flags and employee assignment
//   - LineItem: One product line owning a set of warehouse allocations
//   - Allocation: The binding of a warehouse, a quantity, and a status to a line item
//   - NotificationStatus: A state machine for the cross-warehouse request/accept handshake
//   - WarehouseType: The MainWarehouse/RemainingWarehouse distinction
//
// Key business rules:
//   - Notification status follows a monotonic workflow: Allocated -> Requested -> Accepted
//   - Accepting an already-accepted allocation is an idempotent no-op
//   - deliveryCompleted implies shippingCompleted
//   - An order can only be delivered after a delivery employee is assigned
//   - A RemainingWarehouse allocation always refers back to a MainWarehouse
//     allocation on the same line item
//
// Orders, line items, and allocations are created upstream; this package never
// creates or deletes them on its own. It only reads them for classification
// and applies the small set of exposed transitions.
package order
