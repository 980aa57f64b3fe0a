package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// WarehouseType distinguishes the two parties of a split allocation.
//
// MainWarehouse is the allocation that owns shipping responsibility for its
// quantity. RemainingWarehouse is a second warehouse holding the remainder of
// the required quantity that the main warehouse could not supply. A
// RemainingWarehouse allocation always refers back to a MainWarehouse
// allocation on the same line item; the reverse is not required.
type WarehouseType int

const (
	// UnknownWarehouseType represents an invalid or undefined warehouse type.
	UnknownWarehouseType WarehouseType = iota

	// MainWarehouse owns shipping responsibility for its covered quantity.
	MainWarehouse

	// RemainingWarehouse holds the remainder the main warehouse could not supply.
	RemainingWarehouse
)

// getWarehouseTypeStrings returns a map of WarehouseType values to their
// string representations.
func getWarehouseTypeStrings() map[WarehouseType]string {
	return map[WarehouseType]string{
		UnknownWarehouseType: "Unknown",
		MainWarehouse:        "MainWarehouse",
		RemainingWarehouse:   "RemainingWarehouse",
	}
}

// Validate checks if the WarehouseType value is valid.
// Valid types are MainWarehouse and RemainingWarehouse.
func (t WarehouseType) Validate() error {
	if t != MainWarehouse && t != RemainingWarehouse {
		return errs.NewValueIsInvalidErrorWithCause(
			"warehouse type is invalid",
			fmt.Errorf("%d is not a valid warehouse type", t),
		)
	}
	return nil
}

// String returns the human-readable name of the warehouse type.
// Implements the fmt.Stringer interface.
func (t WarehouseType) String() string {
	if str, ok := getWarehouseTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
