// Package services provides domain services that operate across the order
// aggregate in the fulfillment system. It implements the classification logic
// that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - AllocationClassifier: partitions an order snapshot into per-warehouse work queues
//   - NotificationResolver: merges an order's cross-warehouse contributions into
//     a single notification record
//
// Both services are pure: they hold no mutable state between invocations and
// always produce the same partition for the same inputs, so callers re-run
// them after every successful command to observe the authoritative state.
package services
