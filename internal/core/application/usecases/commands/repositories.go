// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
//
// The four commands here are the only mutators the core exposes: accepting a
// cross-warehouse request, marking an order shipped, assigning a delivery
// employee, and marking an order delivered. Each is fire-and-confirm against
// the external store; no retries are performed and a failed command is
// surfaced to the caller, who re-runs classification to observe the
// authoritative post-failure state.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RosterFactory provides access to the read-only employee roster.
	RosterFactory interface {
		EmployeeRoster() ports.EmployeeRoster
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions for commands that also consult the roster.
	UoW interface {
		TxManager
		OrderRepoFactory
		RosterFactory
	}

	// UoWFactory creates new unit of work instances for roster-consulting operations.
	UoWFactory interface {
		Create() UoW
	}
)
