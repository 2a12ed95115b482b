// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"freight/internal/core/ports"
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

	// WaybillRepoFactory provides access to the waybill repository within a transaction.
	WaybillRepoFactory interface {
		WaybillRepository() ports.WaybillRepository
	}

	// ManifestRepoFactory provides access to the manifest repository within a transaction.
	ManifestRepoFactory interface {
		ManifestRepository() ports.ManifestRepository
	}

	// InventoryRepoFactory provides access to the inventory repository within a transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// RoutingRepoFactory provides access to the routing repository within a transaction.
	RoutingRepoFactory interface {
		RoutingRepository() ports.RoutingRepository
	}

	// WaybillUoW manages transactions for waybill-only operations.
	// Used when commands only modify waybill aggregates.
	WaybillUoW interface {
		TxManager
		WaybillRepoFactory
	}

	// WaybillUoWFactory creates new waybill unit of work instances.
	WaybillUoWFactory interface {
		Create() WaybillUoW
	}

	// ManifestUoW manages transactions for manifest-only operations.
	// Used when commands only modify manifest aggregates.
	ManifestUoW interface {
		TxManager
		ManifestRepoFactory
	}

	// ManifestUoWFactory creates new manifest unit of work instances.
	ManifestUoWFactory interface {
		Create() ManifestUoW
	}

	// InventoryUoW manages transactions for inventory-only operations.
	InventoryUoW interface {
		TxManager
		InventoryRepoFactory
	}

	// InventoryUoWFactory creates new inventory unit of work instances.
	InventoryUoWFactory interface {
		Create() InventoryUoW
	}

	// RoutingUoW manages transactions for routing association writes.
	RoutingUoW interface {
		TxManager
		RoutingRepoFactory
	}

	// RoutingUoWFactory creates new routing unit of work instances.
	RoutingUoWFactory interface {
		Create() RoutingUoW
	}

	// UoW manages transactions across all freight aggregates.
	// Used for commands that coordinate changes between multiple aggregate
	// types, such as the manifest dispatch cascade.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   manifestRepo := uow.ManifestRepository()
	//   waybillRepo := uow.WaybillRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		WaybillRepoFactory
		ManifestRepoFactory
		InventoryRepoFactory
		RoutingRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
