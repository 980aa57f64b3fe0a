package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// NotificationStatus represents the lifecycle state of a warehouse allocation's
// cross-warehouse handshake. It implements a state machine with defined
// transitions to ensure allocations follow the correct request/accept workflow.
//
// State transitions:
//
//	Allocated ──> Requested ──> Accepted
//
// The progression is monotonic; no backward transition is exposed. A
// MainWarehouse allocation with no Remaining counterpart starts and stays
// Allocated until the order ships. A RemainingWarehouse allocation starts
// Requested and moves to Accepted when the remote warehouse accepts the
// request.
//
// NotificationStatus is a value object that validates state transitions
// and provides string representations for persistence and display.
type NotificationStatus int

const (
	// UnknownNotificationStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized NotificationStatus values.
	UnknownNotificationStatus NotificationStatus = iota

	// Allocated is the initial status of a MainWarehouse allocation that
	// fully covers its line item quantity. No cross-warehouse request exists.
	Allocated

	// Requested indicates that a quantity has been requested from another
	// warehouse. RemainingWarehouse allocations start in this status.
	Requested

	// Accepted indicates the remote warehouse has accepted the request.
	// This is a final state with no further transitions allowed.
	Accepted
)

// getNotificationStatusStrings returns a map of NotificationStatus values to
// their string representations. All statuses are included for string conversion.
func getNotificationStatusStrings() map[NotificationStatus]string {
	return map[NotificationStatus]string{
		UnknownNotificationStatus: "Unknown",
		Allocated:                 "Allocated",
		Requested:                 "Requested",
		Accepted:                  "Accepted",
	}
}

// getValidNotificationStatusStrings returns a map of only valid NotificationStatus
// values. Only valid statuses are included to support validation.
func getValidNotificationStatusStrings() map[NotificationStatus]string {
	//nolint:exhaustive // UnknownNotificationStatus is intentionally excluded as it's invalid
	return map[NotificationStatus]string{
		Allocated: "Allocated",
		Requested: "Requested",
		Accepted:  "Accepted",
	}
}

// Validate checks if the NotificationStatus value is valid.
//
// Valid statuses are: Allocated, Requested, Accepted.
// UnknownNotificationStatus (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure NotificationStatus values from external
// sources (e.g., database, API) are valid before use.
func (s NotificationStatus) Validate() error {
	if _, ok := getValidNotificationStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"notification status is invalid",
			fmt.Errorf("%d is not a valid notification status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns:
//   - "Allocated", "Requested", or "Accepted" for valid statuses
//   - "Unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any NotificationStatus value, including invalid ones.
func (s NotificationStatus) String() string {
	if str, ok := getNotificationStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Requested -> Accepted (remote warehouse accepts the request)
//   - Accepted -> Accepted (idempotent no-op, not an error)
//
// Invalid transitions:
//   - Allocated -> Accepted (nothing was requested)
//   - Unknown -> Accepted (invalid initial state)
//
// Returns:
//   - (Accepted, nil) on valid transition, including the idempotent repeat
//   - (0, error) if the transition is not allowed from the current status
func (s NotificationStatus) Accept() (NotificationStatus, error) {
	if s != Requested && s != Accepted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"notification status is invalid",
			fmt.Errorf("%s is not a valid notification status to accept", s.String()),
		)
	}

	return Accepted, nil
}
