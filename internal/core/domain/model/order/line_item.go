package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
// created through the NewLineItem constructor.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// ErrRemainingWithoutMain is returned when a line item carries a
// RemainingWarehouse allocation without any MainWarehouse allocation.
// The remainder always refers back to a primary fulfiller.
var ErrRemainingWithoutMain = errors.New(
	"line item has a RemainingWarehouse allocation without a MainWarehouse allocation",
)

// LineItem is one product line within an order. It carries the upstream
// pricing payload untouched and owns the set of warehouse allocations that
// split its quantity across warehouses.
//
// LineItem follows these invariants:
//   - Quantity must be positive
//   - At most one allocation per (warehouseId, warehouseType) pair
//   - A RemainingWarehouse allocation requires a MainWarehouse allocation
//     on the same line item
//
// Allocation order is preserved as received from upstream.
type LineItem struct {
	id            kernel.UUID
	name          string
	qty           int
	unitPrice     decimal.Decimal
	allocations   []*Allocation
	isConstructed bool
}

// NewLineItem creates a new LineItem with validation.
//
// The allocations slice may be empty; when present, each allocation must have
// been created via an Allocation constructor and the set must honor the
// per-pair uniqueness and remaining-implies-main invariants. Malformed
// allocations (missing warehouse id) are accepted here; classification is
// where they get skipped.
func NewLineItem(
	id kernel.UUID,
	name string,
	qty int,
	unitPrice decimal.Decimal,
	allocations []*Allocation,
) (*LineItem, error) {
	lineItem := &LineItem{
		unitPrice:     unitPrice,
		isConstructed: true,
	}

	if err := errors.Join(
		lineItem.setID(id),
		lineItem.setName(name),
		lineItem.setQty(qty),
		lineItem.setAllocations(allocations),
	); err != nil {
		return nil, err
	}

	return lineItem, nil
}

// Validate ensures the LineItem was created through NewLineItem.
func (li *LineItem) Validate() error {
	if li == nil || !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ID returns the line item's unique identifier.
func (li *LineItem) ID() kernel.UUID {
	return li.id
}

// Name returns the product name.
func (li *LineItem) Name() string {
	return li.name
}

// Qty returns the ordered quantity.
func (li *LineItem) Qty() int {
	return li.qty
}

// UnitPrice returns the upstream pricing payload. The core never inspects it.
func (li *LineItem) UnitPrice() decimal.Decimal {
	return li.unitPrice
}

// Allocations returns the warehouse allocations in upstream order.
func (li *LineItem) Allocations() []*Allocation {
	return li.allocations
}

// MainAllocationFor returns this line item's MainWarehouse allocation for the
// given warehouse, or nil if the warehouse holds none.
func (li *LineItem) MainAllocationFor(warehouseID kernel.UUID) *Allocation {
	for _, allocation := range li.allocations {
		if allocation.Type() == MainWarehouse && allocation.BelongsTo(warehouseID) {
			return allocation
		}
	}
	return nil
}

// RemainingAllocationFor returns this line item's RemainingWarehouse allocation
// for the given warehouse, or nil if the warehouse holds none.
func (li *LineItem) RemainingAllocationFor(warehouseID kernel.UUID) *Allocation {
	for _, allocation := range li.allocations {
		if allocation.Type() == RemainingWarehouse && allocation.BelongsTo(warehouseID) {
			return allocation
		}
	}
	return nil
}

// MainAllocation returns the line item's primary fulfiller allocation, or nil
// if the line item has no well-formed MainWarehouse allocation.
func (li *LineItem) MainAllocation() *Allocation {
	for _, allocation := range li.allocations {
		if allocation.Type() == MainWarehouse && !allocation.IsMalformed() {
			return allocation
		}
	}
	return nil
}

// RemainingCounterparts returns the well-formed RemainingWarehouse allocations
// held by warehouses other than the given one, in upstream order.
func (li *LineItem) RemainingCounterparts(warehouseID kernel.UUID) []*Allocation {
	var counterparts []*Allocation
	for _, allocation := range li.allocations {
		if allocation.Type() == RemainingWarehouse &&
			!allocation.IsMalformed() &&
			!allocation.BelongsTo(warehouseID) {
			counterparts = append(counterparts, allocation)
		}
	}
	return counterparts
}

// FindAllocation returns the allocation with the given correlation key,
// or nil if this line item does not carry it.
func (li *LineItem) FindAllocation(allocationID kernel.UUID) *Allocation {
	for _, allocation := range li.allocations {
		if allocation.ID().IsEqual(allocationID) {
			return allocation
		}
	}
	return nil
}

func (li *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.id = id
	return nil
}

func (li *LineItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	li.name = name
	return nil
}

func (li *LineItem) setQty(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"qty is invalid",
			fmt.Errorf("%d is not greater than 0", qty),
		)
	}
	li.qty = qty
	return nil
}

func (li *LineItem) setAllocations(allocations []*Allocation) error {
	hasMain := false
	hasRemaining := false
	seen := make(map[string]struct{}, len(allocations))

	for _, allocation := range allocations {
		if err := allocation.Validate(); err != nil {
			return err
		}

		switch allocation.Type() {
		case MainWarehouse:
			hasMain = true
		case RemainingWarehouse:
			hasRemaining = true
		}

		if allocation.IsMalformed() {
			continue
		}

		key := allocation.WarehouseID().String() + "/" + allocation.Type().String()
		if _, dup := seen[key]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"allocations are invalid",
				fmt.Errorf("duplicate allocation for %s", key),
			)
		}
		seen[key] = struct{}{}
	}

	if hasRemaining && !hasMain {
		return ErrRemainingWithoutMain
	}

	li.allocations = allocations
	return nil
}
