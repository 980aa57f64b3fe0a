// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items and allocations are stored in child tables with a position column
// so the upstream insertion order survives the round trip.
type OrderDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DeliveryEmployeeID *uuid.UUID `gorm:"type:uuid;index"`
	ShippingCompleted  bool
	DeliveryCompleted  bool
	TotalAmount        decimal.Decimal `gorm:"type:numeric"`
	Currency           string
	PaymentStatus      string
	Customer           string
	LineItems          []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one product line of an order in the database.
type LineItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	Position    int
	Name        string
	Qty         int
	UnitPrice   decimal.Decimal `gorm:"type:numeric"`
	Allocations []AllocationDTO `gorm:"foreignKey:LineItemID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for line item entities.
func (LineItemDTO) TableName() string {
	return "line_items"
}

// AllocationDTO represents one warehouse allocation of a line item in the database.
// WarehouseID is nullable: upstream records occasionally arrive without one and
// such rows must survive persistence for display and audit.
type AllocationDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineItemID    uuid.UUID `gorm:"type:uuid;index"`
	Position      int
	WarehouseID   *uuid.UUID `gorm:"type:uuid;index"`
	WarehouseName string
	WarehouseType int
	Qty           int
	Status        int
}

// TableName specifies the database table name for allocation entities.
func (AllocationDTO) TableName() string {
	return "allocations"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the nested line items and allocations.
func fromDomain(aggregate *order.Order) OrderDTO {
	var employeeID *uuid.UUID
	if id := aggregate.DeliveryEmployee(); id != nil {
		raw := id.Bytes()
		employeeID = &raw
	}

	lineItems := make([]LineItemDTO, 0, len(aggregate.LineItems()))
	for liPos, lineItem := range aggregate.LineItems() {
		allocations := make([]AllocationDTO, 0, len(lineItem.Allocations()))
		for aPos, allocation := range lineItem.Allocations() {
			var warehouseID *uuid.UUID
			if !allocation.IsMalformed() {
				raw := allocation.WarehouseID().Bytes()
				warehouseID = &raw
			}

			allocations = append(allocations, AllocationDTO{
				ID:            allocation.ID().Bytes(),
				LineItemID:    lineItem.ID().Bytes(),
				Position:      aPos,
				WarehouseID:   warehouseID,
				WarehouseName: allocation.WarehouseName(),
				WarehouseType: int(allocation.Type()),
				Qty:           allocation.Qty(),
				Status:        int(allocation.Status()),
			})
		}

		lineItems = append(lineItems, LineItemDTO{
			ID:          lineItem.ID().Bytes(),
			OrderID:     aggregate.ID().Bytes(),
			Position:    liPos,
			Name:        lineItem.Name(),
			Qty:         lineItem.Qty(),
			UnitPrice:   lineItem.UnitPrice(),
			Allocations: allocations,
		})
	}

	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		DeliveryEmployeeID: employeeID,
		ShippingCompleted:  aggregate.ShippingCompleted(),
		DeliveryCompleted:  aggregate.DeliveryCompleted(),
		TotalAmount:        aggregate.TotalAmount(),
		Currency:           aggregate.Currency(),
		PaymentStatus:      aggregate.PaymentStatus(),
		Customer:           aggregate.Customer(),
		LineItems:          lineItems,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder; allocations missing a
// warehouse id are restored via RestoreAllocation, which tolerates them.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var employeeID *kernel.UUID
	if dto.DeliveryEmployeeID != nil {
		eID, employeeErr := kernel.UUIDFromBytes((*dto.DeliveryEmployeeID)[:])
		if employeeErr != nil {
			return nil, employeeErr
		}

		employeeID = &eID
	}

	lineItems := make([]*order.LineItem, 0, len(dto.LineItems))
	for _, liDTO := range dto.LineItems {
		lineItem, liErr := lineItemToDomain(liDTO)
		if liErr != nil {
			return nil, liErr
		}
		lineItems = append(lineItems, lineItem)
	}

	return order.RestoreOrder(
		id,
		lineItems,
		dto.TotalAmount,
		dto.Currency,
		dto.PaymentStatus,
		dto.Customer,
		dto.ShippingCompleted,
		dto.DeliveryCompleted,
		employeeID,
	)
}

func lineItemToDomain(dto LineItemDTO) (*order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	allocations := make([]*order.Allocation, 0, len(dto.Allocations))
	for _, aDTO := range dto.Allocations {
		allocation, aErr := allocationToDomain(aDTO)
		if aErr != nil {
			return nil, aErr
		}
		allocations = append(allocations, allocation)
	}

	return order.NewLineItem(id, dto.Name, dto.Qty, dto.UnitPrice, allocations)
}

func allocationToDomain(dto AllocationDTO) (*order.Allocation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var warehouseID kernel.UUID
	if dto.WarehouseID != nil {
		warehouseID, err = kernel.UUIDFromBytes((*dto.WarehouseID)[:])
		if err != nil {
			return nil, err
		}
	}

	return order.RestoreAllocation(
		id,
		warehouseID,
		dto.WarehouseName,
		order.WarehouseType(dto.WarehouseType),
		dto.Qty,
		order.NotificationStatus(dto.Status),
	)
}
