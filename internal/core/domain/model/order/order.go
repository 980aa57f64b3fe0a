package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a customer order flowing through warehouse fulfillment.
// It is the aggregate root that manages the fulfillment lifecycle from
// allocation through shipping to final delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Line item insertion order is preserved; the core never reorders them
//   - deliveryCompleted implies shippingCompleted
//   - A delivery employee must be assigned before the order can be delivered
//   - Can only be created through NewOrder or RestoreOrder
//
// Orders and their allocations are created upstream at order-placement time.
// This aggregate only exposes the fulfillment transitions: accepting a
// cross-warehouse request, marking shipped, assigning a delivery employee,
// and marking delivered. The monetary and customer fields are opaque payload
// passed through unchanged.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// lineItems are the product lines in upstream insertion order
	lineItems []*LineItem

	// shippingCompleted is true once the fulfilling warehouse dispatched the order
	shippingCompleted bool

	// deliveryCompleted is true once final delivery is confirmed
	deliveryCompleted bool

	// deliveryEmployeeID is the assigned delivery employee (nil if unassigned)
	deliveryEmployeeID *kernel.UUID

	// opaque upstream payload, never inspected by the core
	totalAmount   decimal.Decimal
	currency      string
	paymentStatus string
	customer      string

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in its initial state: not shipped, not
// delivered, no delivery employee assigned.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid)
//   - lineItems: Product lines in upstream order (at least one required)
//   - totalAmount, currency, paymentStatus, customer: opaque upstream payload
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(
	id kernel.UUID,
	lineItems []*LineItem,
	totalAmount decimal.Decimal,
	currency string,
	paymentStatus string,
	customer string,
) (*Order, error) {
	return RestoreOrder(id, lineItems, totalAmount, currency, paymentStatus, customer, false, false, nil)
}

// RestoreOrder reconstructs an Order from persistence, including its shipping
// and delivery flags and any assigned delivery employee. It enforces the same
// invariants as NewOrder plus the flag consistency rules.
func RestoreOrder(
	id kernel.UUID,
	lineItems []*LineItem,
	totalAmount decimal.Decimal,
	currency string,
	paymentStatus string,
	customer string,
	shippingCompleted bool,
	deliveryCompleted bool,
	deliveryEmployeeID *kernel.UUID,
) (*Order, error) {
	order := &Order{
		totalAmount:   totalAmount,
		currency:      currency,
		paymentStatus: paymentStatus,
		customer:      customer,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setLineItems(lineItems),
		order.setFlags(shippingCompleted, deliveryCompleted),
		order.setDeliveryEmployee(deliveryEmployeeID),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// LineItems returns the product lines in upstream insertion order.
func (o *Order) LineItems() []*LineItem {
	return o.lineItems
}

// ShippingCompleted reports whether the fulfilling warehouse has dispatched the order.
func (o *Order) ShippingCompleted() bool {
	return o.shippingCompleted
}

// DeliveryCompleted reports whether final delivery is confirmed.
func (o *Order) DeliveryCompleted() bool {
	return o.deliveryCompleted
}

// DeliveryEmployee returns the assigned delivery employee's ID.
// Returns nil if no employee is assigned.
func (o *Order) DeliveryEmployee() *kernel.UUID {
	return o.deliveryEmployeeID
}

// TotalAmount returns the upstream order total. Opaque payload.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// Currency returns the upstream currency code. Opaque payload.
func (o *Order) Currency() string {
	return o.currency
}

// PaymentStatus returns the upstream payment status. Opaque payload.
func (o *Order) PaymentStatus() string {
	return o.paymentStatus
}

// Customer returns the upstream customer reference. Opaque payload.
func (o *Order) Customer() string {
	return o.customer
}

// ReferencesWarehouse reports whether any line item carries a well-formed
// allocation for the given warehouse.
func (o *Order) ReferencesWarehouse(warehouseID kernel.UUID) bool {
	for _, lineItem := range o.lineItems {
		for _, allocation := range lineItem.Allocations() {
			if allocation.BelongsTo(warehouseID) {
				return true
			}
		}
	}
	return false
}

// HasMainAllocationFor reports whether the given warehouse holds a
// MainWarehouse allocation on any line item of this order.
func (o *Order) HasMainAllocationFor(warehouseID kernel.UUID) bool {
	for _, lineItem := range o.lineItems {
		if lineItem.MainAllocationFor(warehouseID) != nil {
			return true
		}
	}
	return false
}

// AcceptAllocation applies the acceptRequest transition to the allocation with
// the given correlation key.
//
// Accepting is idempotent: a second accept on an already-Accepted allocation
// is a no-op success. Returns an ObjectNotFoundError if no line item carries
// the allocation, or an InvalidTransitionError if the allocation was never
// requested.
func (o *Order) AcceptAllocation(allocationID kernel.UUID) error {
	if err := allocationID.Validate(); err != nil {
		return err
	}

	for _, lineItem := range o.lineItems {
		if allocation := lineItem.FindAllocation(allocationID); allocation != nil {
			return allocation.Accept()
		}
	}

	return errs.NewObjectNotFoundError("allocationId", allocationID.String())
}

// MarkShipped marks the order as dispatched by the given warehouse.
//
// This method enforces the following business rules:
//   - The acting warehouse must hold a MainWarehouse allocation on the order
//   - The order must not already be shipped
//
// Returns a PreconditionFailedError if the warehouse holds no main
// allocation, or an InvalidTransitionError if the order is already shipped.
func (o *Order) MarkShipped(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	if !o.HasMainAllocationFor(warehouseID) {
		return errs.NewPreconditionFailedError(
			"markShipped",
			fmt.Sprintf("a MainWarehouse allocation for warehouse %s", warehouseID),
			o.id.String(),
		)
	}

	if o.shippingCompleted {
		return errs.NewInvalidTransitionError("markShipped", o.id.String())
	}

	o.shippingCompleted = true
	return nil
}

// AssignDeliveryEmployee associates the order with a delivery employee.
//
// Assignment is legal at any time before delivery completion and overwrites
// any prior assignment (reassignment is allowed). Returns an
// InvalidTransitionError once the order is delivered.
func (o *Order) AssignDeliveryEmployee(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	if o.deliveryCompleted {
		return errs.NewInvalidTransitionError("assignDeliveryEmployee", o.id.String())
	}

	o.deliveryEmployeeID = &employeeID
	return nil
}

// MarkDelivered confirms final delivery of the order.
//
// This method enforces the following preconditions, each reported with a
// PreconditionFailedError naming the unmet requirement:
//   - shippingCompleted must be true
//   - deliveryCompleted must still be false
//   - a delivery employee must be assigned
func (o *Order) MarkDelivered() error {
	if !o.shippingCompleted {
		return errs.NewPreconditionFailedError("markDelivered", "shippingCompleted", o.id.String())
	}

	if o.deliveryCompleted {
		return errs.NewPreconditionFailedError("markDelivered", "deliveryCompleted to be false", o.id.String())
	}

	if o.deliveryEmployeeID == nil {
		return errs.NewPreconditionFailedError("markDelivered", "an assigned delivery employee", o.id.String())
	}

	o.deliveryCompleted = true
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setLineItems(lineItems []*LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}

	for _, lineItem := range lineItems {
		if err := lineItem.Validate(); err != nil {
			return err
		}
	}

	o.lineItems = lineItems
	return nil
}

func (o *Order) setFlags(shippingCompleted, deliveryCompleted bool) error {
	if deliveryCompleted && !shippingCompleted {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery flags are invalid",
			errors.New("deliveryCompleted requires shippingCompleted"),
		)
	}

	o.shippingCompleted = shippingCompleted
	o.deliveryCompleted = deliveryCompleted
	return nil
}

func (o *Order) setDeliveryEmployee(employeeID *kernel.UUID) error {
	if employeeID == nil {
		if o.deliveryCompleted {
			return errs.NewValueIsInvalidErrorWithCause(
				"delivery employee is invalid",
				errors.New("a delivered order requires an assigned delivery employee"),
			)
		}
		return nil
	}

	if err := employeeID.Validate(); err != nil {
		return err
	}

	o.deliveryEmployeeID = employeeID
	return nil
}
