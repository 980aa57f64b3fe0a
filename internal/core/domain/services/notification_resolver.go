package services

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// NotificationResolver builds the cross-warehouse notification record for one
// order and one warehouse identity.
//
// An order may contribute from two independent directions: once because the
// warehouse holds a MainWarehouse allocation whose line item also has a
// RemainingWarehouse counterpart elsewhere (the warehouse is requesting help),
// and once because the warehouse holds a RemainingWarehouse allocation (the
// warehouse is being asked for help). Both directions can fire for the same
// order on different line items. The resolver folds both into a single
// NotificationOrder so an order never appears twice in the notifications
// queue, and Merge makes re-merging an already-merged result a no-op.
//
// Example usage:
//
//	resolver := NewNotificationResolver()
//	notification := resolver.BuildNotification(o, warehouseID)
//	if notification != nil {
//	    // surface to the warehouse operator
//	}
type NotificationResolver struct{}

// NewNotificationResolver creates a new NotificationResolver instance.
func NewNotificationResolver() NotificationResolver {
	return NotificationResolver{}
}

// BuildNotification returns the single NotificationOrder the given order
// produces for the given warehouse, or nil if the order carries no
// cross-warehouse allocation involving that warehouse.
//
// Per contributing line item the entry carries a human-readable message:
//   - Main side, counterpart Remaining allocation exists:
//     "Request from <remainingWarehouseName> for <mainQty> of <lineItemName>"
//   - Main side, no counterpart: "Product allocation for <mainQty> of <lineItemName>"
//   - Remaining side, counterpart Main allocation exists:
//     "<mainWarehouseName> requested <remainingQty> of <lineItemName>"
//   - Remaining side, no counterpart: "Main warehouse requested <remainingQty> of <lineItemName>"
//
// A main-side entry with a counterpart reports the counterpart's notification
// status: that is the state of the request being tracked, so after the remote
// warehouse accepts, the requesting side observes Accepted.
func (r NotificationResolver) BuildNotification(o *order.Order, warehouseID kernel.UUID) *NotificationOrder {
	mainSideFired := false
	for _, lineItem := range o.LineItems() {
		if lineItem.MainAllocationFor(warehouseID) != nil && len(lineItem.RemainingCounterparts(warehouseID)) > 0 {
			mainSideFired = true
			break
		}
	}

	var entries []NotificationLineItem
	for _, lineItem := range o.LineItems() {
		if mainSideFired {
			entries = append(entries, r.mainSideEntries(lineItem, warehouseID)...)
		}
		if remaining := lineItem.RemainingAllocationFor(warehouseID); remaining != nil {
			entries = append(entries, r.remainingSideEntry(lineItem, remaining, warehouseID))
		}
	}

	if len(entries) == 0 {
		return nil
	}

	return &NotificationOrder{
		OrderID:   o.ID(),
		Customer:  o.Customer(),
		LineItems: entries,
	}
}

// Merge folds the incoming notification's line items into an existing
// notification for the same order. Entries already present (same line item,
// allocation, and direction) are not duplicated, making the merge idempotent:
// merging a notification into itself returns an equal notification.
func (r NotificationResolver) Merge(existing, incoming *NotificationOrder) *NotificationOrder {
	if existing == nil {
		return incoming
	}
	if incoming == nil || !existing.OrderID.IsEqual(incoming.OrderID) {
		return existing
	}

	seen := make(map[string]struct{}, len(existing.LineItems))
	for _, entry := range existing.LineItems {
		seen[entryKey(entry)] = struct{}{}
	}

	for _, entry := range incoming.LineItems {
		if _, ok := seen[entryKey(entry)]; ok {
			continue
		}
		seen[entryKey(entry)] = struct{}{}
		existing.LineItems = append(existing.LineItems, entry)
	}

	return existing
}

// mainSideEntries builds the requesting-side entries for one line item. A
// line item whose main allocation has remaining counterparts yields one entry
// per counterpart; a line item the warehouse covers alone yields a plain
// allocation entry for audit context.
func (r NotificationResolver) mainSideEntries(lineItem *order.LineItem, warehouseID kernel.UUID) []NotificationLineItem {
	main := lineItem.MainAllocationFor(warehouseID)
	if main == nil {
		return nil
	}

	counterparts := lineItem.RemainingCounterparts(warehouseID)
	if len(counterparts) == 0 {
		return []NotificationLineItem{{
			LineItemID:      lineItem.ID(),
			Name:            lineItem.Name(),
			Qty:             lineItem.Qty(),
			AllocationID:    main.ID(),
			NotificationMsg: fmt.Sprintf("Product allocation for %d of %s", main.Qty(), lineItem.Name()),
			Status:          main.Status(),
			IsMainWarehouse: true,
		}}
	}

	entries := make([]NotificationLineItem, 0, len(counterparts))
	for _, counterpart := range counterparts {
		entries = append(entries, NotificationLineItem{
			LineItemID:   lineItem.ID(),
			Name:         lineItem.Name(),
			Qty:          lineItem.Qty(),
			AllocationID: counterpart.ID(),
			NotificationMsg: fmt.Sprintf(
				"Request from %s for %d of %s",
				counterpart.WarehouseName(), main.Qty(), lineItem.Name(),
			),
			Status:          counterpart.Status(),
			IsMainWarehouse: true,
		})
	}
	return entries
}

// remainingSideEntry builds the being-asked-side entry for one line item.
func (r NotificationResolver) remainingSideEntry(
	lineItem *order.LineItem,
	remaining *order.Allocation,
	warehouseID kernel.UUID,
) NotificationLineItem {
	msg := fmt.Sprintf("Main warehouse requested %d of %s", remaining.Qty(), lineItem.Name())
	if counterpart := mainCounterpart(lineItem, warehouseID); counterpart != nil {
		msg = fmt.Sprintf(
			"%s requested %d of %s",
			counterpart.WarehouseName(), remaining.Qty(), lineItem.Name(),
		)
	}

	return NotificationLineItem{
		LineItemID:           lineItem.ID(),
		Name:                 lineItem.Name(),
		Qty:                  lineItem.Qty(),
		AllocationID:         remaining.ID(),
		NotificationMsg:      msg,
		Status:               remaining.Status(),
		IsRemainingWarehouse: true,
	}
}

// mainCounterpart returns the line item's first well-formed MainWarehouse
// allocation held by a warehouse other than the given one.
func mainCounterpart(lineItem *order.LineItem, warehouseID kernel.UUID) *order.Allocation {
	for _, allocation := range lineItem.Allocations() {
		if allocation.Type() == order.MainWarehouse &&
			!allocation.IsMalformed() &&
			!allocation.BelongsTo(warehouseID) {
			return allocation
		}
	}
	return nil
}

func entryKey(entry NotificationLineItem) string {
	side := "r"
	if entry.IsMainWarehouse {
		side = "m"
	}
	return entry.LineItemID.String() + "/" + entry.AllocationID.String() + "/" + side
}
