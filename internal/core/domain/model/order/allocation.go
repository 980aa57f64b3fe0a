package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrAllocationIsNotConstructed is returned when an Allocation instance was not
// created through one of the constructor functions.
var ErrAllocationIsNotConstructed = errors.New(
	"Allocation must be created via NewAllocation or RestoreAllocation constructor",
)

// Allocation binds a warehouse, a quantity, and a notification status to one
// line item. Allocations are created upstream at order-placement time; this
// model only reads them and applies the single exposed transition (Accept).
//
// The allocation id is the correlation key for accept commands. The warehouse
// id identifies the responsible warehouse; upstream records occasionally arrive
// without one, and such allocations are kept (for display and audit) but
// reported as malformed and skipped during classification.
type Allocation struct {
	// id is the correlation key used by accept/assign commands
	id kernel.UUID

	// warehouseID identifies the warehouse; may be absent in malformed upstream records
	warehouseID kernel.UUID

	// warehouseName is upstream display payload used for notification messages
	warehouseName string

	// warehouseType is MainWarehouse or RemainingWarehouse
	warehouseType WarehouseType

	// qty is the number of units covered by this allocation (must be positive)
	qty int

	// status tracks the cross-warehouse request/accept handshake
	status NotificationStatus

	// isConstructed ensures the allocation was created via a constructor
	isConstructed bool
}

// NewAllocation creates a fully validated Allocation. Every field, including
// the warehouse id, must be valid.
func NewAllocation(
	id kernel.UUID,
	warehouseID kernel.UUID,
	warehouseName string,
	warehouseType WarehouseType,
	qty int,
	status NotificationStatus,
) (*Allocation, error) {
	if err := warehouseID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("warehouseId", err)
	}

	return RestoreAllocation(id, warehouseID, warehouseName, warehouseType, qty, status)
}

// RestoreAllocation reconstructs an Allocation from persistence. Unlike
// NewAllocation it tolerates a missing warehouse id: upstream allocation
// records own that field and a malformed record must survive restoration so
// the owning line item stays visible. All other fields are validated.
func RestoreAllocation(
	id kernel.UUID,
	warehouseID kernel.UUID,
	warehouseName string,
	warehouseType WarehouseType,
	qty int,
	status NotificationStatus,
) (*Allocation, error) {
	allocation := &Allocation{
		warehouseID:   warehouseID,
		warehouseName: warehouseName,
		isConstructed: true,
	}

	if err := errors.Join(
		allocation.setID(id),
		allocation.setType(warehouseType),
		allocation.setQty(qty),
		allocation.setStatus(status),
	); err != nil {
		return nil, err
	}

	return allocation, nil
}

// Validate ensures the Allocation was created through a constructor.
func (a *Allocation) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAllocationIsNotConstructed
	}
	return nil
}

// ID returns the allocation's correlation key.
func (a *Allocation) ID() kernel.UUID {
	return a.id
}

// WarehouseID returns the identifier of the responsible warehouse.
// The returned UUID may be invalid for malformed upstream records; use
// IsMalformed to check.
func (a *Allocation) WarehouseID() kernel.UUID {
	return a.warehouseID
}

// WarehouseName returns the upstream-supplied display name of the warehouse.
func (a *Allocation) WarehouseName() string {
	return a.warehouseName
}

// Type returns the allocation's warehouse type.
func (a *Allocation) Type() WarehouseType {
	return a.warehouseType
}

// Qty returns the number of units covered by this allocation.
func (a *Allocation) Qty() int {
	return a.qty
}

// Status returns the current notification status of the allocation.
func (a *Allocation) Status() NotificationStatus {
	return a.status
}

// IsMalformed reports whether the allocation is missing its warehouse id.
// Malformed allocations are skipped for classification purposes but remain
// attached to their line item.
func (a *Allocation) IsMalformed() bool {
	return a.warehouseID.Validate() != nil
}

// BelongsTo reports whether this allocation references the given warehouse.
// Always false for malformed allocations.
func (a *Allocation) BelongsTo(warehouseID kernel.UUID) bool {
	return !a.IsMalformed() && a.warehouseID.IsEqual(warehouseID)
}

// Accept transitions the allocation's status to Accepted.
//
// Accepting is idempotent: accepting an already-Accepted allocation is a no-op
// success. Accepting an Allocated allocation (nothing was requested) fails.
func (a *Allocation) Accept() error {
	newStatus, err := a.status.Accept()
	if err != nil {
		return errs.NewInvalidTransitionErrorWithCause("acceptRequest", a.id.String(), err)
	}

	a.status = newStatus
	return nil
}

func (a *Allocation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Allocation) setType(warehouseType WarehouseType) error {
	if err := warehouseType.Validate(); err != nil {
		return err
	}
	a.warehouseType = warehouseType
	return nil
}

func (a *Allocation) setQty(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"qty is invalid",
			fmt.Errorf("%d is not greater than 0", qty),
		)
	}
	a.qty = qty
	return nil
}

func (a *Allocation) setStatus(status NotificationStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	return nil
}
