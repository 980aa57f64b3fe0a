package services

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DisplayStatus tells the presentation layer whether an allocation belongs to
// the warehouse a projection was built for. Allocations of other warehouses
// are flagged Hidden rather than removed so downstream views can distinguish
// "not mine" without losing allocation data they may still want for audit
// context.
type DisplayStatus int

const (
	// DisplayVisible marks an allocation owned by the classifying warehouse.
	DisplayVisible DisplayStatus = iota

	// DisplayHidden marks an allocation owned by another warehouse.
	DisplayHidden
)

// String returns "visible" or "hidden".
func (s DisplayStatus) String() string {
	if s == DisplayHidden {
		return "hidden"
	}
	return "visible"
}

// AllocationView is the projection of one warehouse allocation.
type AllocationView struct {
	AllocationID  kernel.UUID
	WarehouseID   kernel.UUID
	WarehouseName string
	Type          order.WarehouseType
	Qty           int
	Status        order.NotificationStatus
	DisplayStatus DisplayStatus
}

// LineItemView is the projection of one product line with its allocations.
// Allocation order is preserved as received from upstream, malformed
// allocations included (they stay visible in the raw product list even though
// classification skips them).
type LineItemView struct {
	LineItemID  kernel.UUID
	Name        string
	Qty         int
	UnitPrice   decimal.Decimal
	Allocations []AllocationView
}

// OrderView is the projection of one order for a warehouse operator. The
// monetary and customer fields are upstream payload passed through unchanged.
type OrderView struct {
	OrderID            kernel.UUID
	LineItems          []LineItemView
	TotalAmount        decimal.Decimal
	Currency           string
	PaymentStatus      string
	Customer           string
	ShippingCompleted  bool
	DeliveryCompleted  bool
	DeliveryEmployeeID *kernel.UUID
}

// NotificationLineItem is one line item's contribution to a NotificationOrder.
// AllocationID is the correlation key of the tracked request: for a
// remaining-side entry it is the warehouse's own RemainingWarehouse
// allocation (the id acceptRequest takes); for a main-side entry with a
// counterpart it is the counterpart's id so the requesting side can observe
// the request's state.
type NotificationLineItem struct {
	LineItemID           kernel.UUID
	Name                 string
	Qty                  int
	AllocationID         kernel.UUID
	NotificationMsg      string
	Status               order.NotificationStatus
	IsMainWarehouse      bool
	IsRemainingWarehouse bool
}

// NotificationOrder is a derived, non-persisted record summarizing
// cross-warehouse requests and acceptances for one order. At most one
// NotificationOrder exists per order id in a classification result.
type NotificationOrder struct {
	OrderID   kernel.UUID
	Customer  string
	LineItems []NotificationLineItem
}

// WarehouseQueues is the output of one classification run: the four disjoint
// work queues for a warehouse identity, plus the malformed-allocation
// anomalies encountered while building them. Queue entries preserve the
// relative order of the input orders sequence.
type WarehouseQueues struct {
	PendingMainWarehouse []OrderView
	Notifications        []NotificationOrder
	ReadyForDelivery     []OrderView
	Completed            []OrderView

	// Anomalies lists allocations skipped because required fields were
	// missing. The offending line items remain visible in the projections.
	Anomalies []*errs.MalformedAllocationError
}

// projectOrder builds an OrderView for the given warehouse. Allocations not
// belonging to that warehouse are flagged hidden when hideForeign is set.
func projectOrder(o *order.Order, warehouseID kernel.UUID, hideForeign bool) OrderView {
	lineItems := make([]LineItemView, 0, len(o.LineItems()))
	for _, lineItem := range o.LineItems() {
		allocations := make([]AllocationView, 0, len(lineItem.Allocations()))
		for _, allocation := range lineItem.Allocations() {
			displayStatus := DisplayVisible
			if hideForeign && !allocation.BelongsTo(warehouseID) {
				displayStatus = DisplayHidden
			}

			allocations = append(allocations, AllocationView{
				AllocationID:  allocation.ID(),
				WarehouseID:   allocation.WarehouseID(),
				WarehouseName: allocation.WarehouseName(),
				Type:          allocation.Type(),
				Qty:           allocation.Qty(),
				Status:        allocation.Status(),
				DisplayStatus: displayStatus,
			})
		}

		lineItems = append(lineItems, LineItemView{
			LineItemID:  lineItem.ID(),
			Name:        lineItem.Name(),
			Qty:         lineItem.Qty(),
			UnitPrice:   lineItem.UnitPrice(),
			Allocations: allocations,
		})
	}

	return OrderView{
		OrderID:            o.ID(),
		LineItems:          lineItems,
		TotalAmount:        o.TotalAmount(),
		Currency:           o.Currency(),
		PaymentStatus:      o.PaymentStatus(),
		Customer:           o.Customer(),
		ShippingCompleted:  o.ShippingCompleted(),
		DeliveryCompleted:  o.DeliveryCompleted(),
		DeliveryEmployeeID: o.DeliveryEmployee(),
	}
}
