package services

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// AllocationClassifier is a domain service that partitions a flat collection
// of orders, for a given warehouse identity, into the four disjoint work
// queues a warehouse operator works from.
//
// Classification rules, per order:
//   - The warehouse holds a MainWarehouse allocation and the order is not yet
//     shipped: the order is pending for the main warehouse. Its projection
//     flags other warehouses' allocations as hidden instead of removing them.
//   - The order is shipped but not delivered and references the warehouse:
//     ready for delivery.
//   - The order is delivered and references the warehouse: completed.
//   - The warehouse is a party to a cross-warehouse request on any line item
//     and the order is not yet delivered: the order contributes exactly one
//     NotificationOrder, built by NotificationResolver.
//
// Classification is a pure function of its inputs: the same orders and
// warehouse id always produce the same partition. Queues preserve the
// relative order of the input sequence, and each order id appears at most
// once per queue: the notification map is keyed by order id so the
// at-most-once property is structural, not incidental.
//
// A malformed allocation (missing warehouse id) is skipped for classification
// but its line item is not dropped from projections; the anomaly is reported
// in the result so callers can log it.
//
// Example usage:
//
//	classifier := NewAllocationClassifier()
//	queues, err := classifier.Classify(orders, warehouseID)
//	if err != nil {
//	    // invalid input, not a per-order failure
//	    return
//	}
//	render(queues.PendingMainWarehouse, queues.Notifications)
type AllocationClassifier struct {
	resolver NotificationResolver
}

// NewAllocationClassifier creates a new AllocationClassifier instance.
func NewAllocationClassifier() AllocationClassifier {
	return AllocationClassifier{resolver: NewNotificationResolver()}
}

// Classify partitions the orders into the warehouse's work queues.
//
// Parameters:
//   - orders: the full order snapshot, in upstream order
//   - warehouseID: the warehouse identity to classify for (always explicit,
//     never ambient state)
//
// Returns:
//   - WarehouseQueues: the four queues plus any malformed-allocation anomalies
//   - error: if the warehouse id is invalid or an order was not constructed
//     through its factory
func (c AllocationClassifier) Classify(orders []*order.Order, warehouseID kernel.UUID) (WarehouseQueues, error) {
	if err := warehouseID.Validate(); err != nil {
		return WarehouseQueues{}, errs.NewValueIsRequiredErrorWithCause("warehouseId", err)
	}

	queues := WarehouseQueues{
		PendingMainWarehouse: make([]OrderView, 0),
		Notifications:        make([]NotificationOrder, 0),
		ReadyForDelivery:     make([]OrderView, 0),
		Completed:            make([]OrderView, 0),
	}

	// Keyed by order id so an order can never be inserted twice regardless
	// of how many line items contribute.
	notificationIndex := make(map[kernel.UUID]*NotificationOrder)
	notificationIDs := make([]kernel.UUID, 0)

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return WarehouseQueues{}, err
		}

		queues.Anomalies = append(queues.Anomalies, collectAnomalies(o)...)

		switch {
		case !o.ShippingCompleted() && o.HasMainAllocationFor(warehouseID):
			queues.PendingMainWarehouse = append(queues.PendingMainWarehouse, projectOrder(o, warehouseID, true))
		case o.ShippingCompleted() && !o.DeliveryCompleted() && o.ReferencesWarehouse(warehouseID):
			queues.ReadyForDelivery = append(queues.ReadyForDelivery, projectOrder(o, warehouseID, false))
		case o.DeliveryCompleted() && o.ReferencesWarehouse(warehouseID):
			queues.Completed = append(queues.Completed, projectOrder(o, warehouseID, false))
		}

		if o.DeliveryCompleted() {
			continue
		}

		if notification := c.resolver.BuildNotification(o, warehouseID); notification != nil {
			if existing, ok := notificationIndex[o.ID()]; ok {
				notificationIndex[o.ID()] = c.resolver.Merge(existing, notification)
				continue
			}
			notificationIndex[o.ID()] = notification
			notificationIDs = append(notificationIDs, o.ID())
		}
	}

	for _, id := range notificationIDs {
		queues.Notifications = append(queues.Notifications, *notificationIndex[id])
	}

	return queues, nil
}

// collectAnomalies reports every malformed allocation on the order.
func collectAnomalies(o *order.Order) []*errs.MalformedAllocationError {
	var anomalies []*errs.MalformedAllocationError
	for _, lineItem := range o.LineItems() {
		for _, allocation := range lineItem.Allocations() {
			if allocation.IsMalformed() {
				anomalies = append(anomalies, errs.NewMalformedAllocationError("warehouseId", lineItem.ID().String()))
			}
		}
	}
	return anomalies
}
