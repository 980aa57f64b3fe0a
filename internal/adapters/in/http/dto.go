package http

import (
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"

	"github.com/google/uuid"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AcceptRequestRequest is the body of POST .../accept-request.
type AcceptRequestRequest struct {
	AllocationID string `json:"allocationId"`
}

// MarkShippedRequest is the body of POST .../mark-shipped.
type MarkShippedRequest struct {
	WarehouseID string `json:"warehouseId"`
}

// AssignDeliveryEmployeeRequest is the body of POST .../assign-delivery-employee.
type AssignDeliveryEmployeeRequest struct {
	EmployeeID string `json:"employeeId"`
}

// MarkDeliveredRequest is the body of POST .../mark-delivered.
type MarkDeliveredRequest struct {
	WarehouseID string `json:"warehouseId"`
}

// Allocation is the JSON shape of one warehouse allocation inside a queue entry.
type Allocation struct {
	ID            uuid.UUID  `json:"id"`
	WarehouseID   *uuid.UUID `json:"warehouseId,omitempty"`
	WarehouseName string     `json:"warehouseName"`
	WarehouseType string     `json:"warehouseType"`
	Qty           int        `json:"qty"`
	Status        string     `json:"status"`
	DisplayStatus string     `json:"displayStatus"`
}

// LineItem is the JSON shape of one product line inside a queue entry.
type LineItem struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Qty         int          `json:"qty"`
	UnitPrice   string       `json:"unitPrice"`
	Allocations []Allocation `json:"allocations"`
}

// Order is the JSON shape of one order in the pending, ready and completed queues.
type Order struct {
	ID                 uuid.UUID  `json:"id"`
	Customer           string     `json:"customer"`
	TotalAmount        string     `json:"totalAmount"`
	Currency           string     `json:"currency"`
	PaymentStatus      string     `json:"paymentStatus"`
	ShippingCompleted  bool       `json:"shippingCompleted"`
	DeliveryCompleted  bool       `json:"deliveryCompleted"`
	DeliveryEmployeeID *uuid.UUID `json:"deliveryEmployeeId,omitempty"`
	LineItems          []LineItem `json:"lineItems"`
}

// NotificationLineItem is one line of a cross-warehouse notification.
type NotificationLineItem struct {
	LineItemID           uuid.UUID `json:"lineItemId"`
	Name                 string    `json:"name"`
	Qty                  int       `json:"qty"`
	AllocationID         uuid.UUID `json:"allocationId"`
	NotificationMsg      string    `json:"notificationMsg"`
	Status               string    `json:"status"`
	IsMainWarehouse      bool      `json:"isMainWarehouse"`
	IsRemainingWarehouse bool      `json:"isRemainingWarehouse"`
}

// Notification is one merged cross-warehouse notification for an order.
type Notification struct {
	OrderID   uuid.UUID              `json:"orderId"`
	Customer  string                 `json:"customer"`
	LineItems []NotificationLineItem `json:"lineItems"`
}

// WarehouseQueues is the response of GET /warehouses/:warehouseId/queues.
type WarehouseQueues struct {
	PendingMainWarehouse []Order        `json:"pendingMainWarehouse"`
	Notifications        []Notification `json:"notifications"`
	ReadyForDelivery     []Order        `json:"readyForDelivery"`
	Completed            []Order        `json:"completed"`
}

// DeliveryEmployee is the JSON shape of one roster entry.
type DeliveryEmployee struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
	Email string    `json:"email"`
}

func fromOrderView(view services.OrderView) Order {
	lineItems := make([]LineItem, 0, len(view.LineItems))
	for _, li := range view.LineItems {
		allocations := make([]Allocation, 0, len(li.Allocations))
		for _, a := range li.Allocations {
			var warehouseID *uuid.UUID
			if a.WarehouseID.Validate() == nil {
				raw := a.WarehouseID.Bytes()
				warehouseID = &raw
			}

			allocations = append(allocations, Allocation{
				ID:            a.AllocationID.Bytes(),
				WarehouseID:   warehouseID,
				WarehouseName: a.WarehouseName,
				WarehouseType: a.Type.String(),
				Qty:           a.Qty,
				Status:        a.Status.String(),
				DisplayStatus: a.DisplayStatus.String(),
			})
		}

		lineItems = append(lineItems, LineItem{
			ID:          li.LineItemID.Bytes(),
			Name:        li.Name,
			Qty:         li.Qty,
			UnitPrice:   li.UnitPrice.String(),
			Allocations: allocations,
		})
	}

	var employeeID *uuid.UUID
	if view.DeliveryEmployeeID != nil {
		raw := view.DeliveryEmployeeID.Bytes()
		employeeID = &raw
	}

	return Order{
		ID:                 view.OrderID.Bytes(),
		Customer:           view.Customer,
		TotalAmount:        view.TotalAmount.String(),
		Currency:           view.Currency,
		PaymentStatus:      view.PaymentStatus,
		ShippingCompleted:  view.ShippingCompleted,
		DeliveryCompleted:  view.DeliveryCompleted,
		DeliveryEmployeeID: employeeID,
		LineItems:          lineItems,
	}
}

func fromOrderViews(views []services.OrderView) []Order {
	orders := make([]Order, 0, len(views))
	for _, view := range views {
		orders = append(orders, fromOrderView(view))
	}
	return orders
}

func fromNotifications(notifications []services.NotificationOrder) []Notification {
	result := make([]Notification, 0, len(notifications))
	for _, n := range notifications {
		lineItems := make([]NotificationLineItem, 0, len(n.LineItems))
		for _, li := range n.LineItems {
			lineItems = append(lineItems, NotificationLineItem{
				LineItemID:           li.LineItemID.Bytes(),
				Name:                 li.Name,
				Qty:                  li.Qty,
				AllocationID:         li.AllocationID.Bytes(),
				NotificationMsg:      li.NotificationMsg,
				Status:               li.Status.String(),
				IsMainWarehouse:      li.IsMainWarehouse,
				IsRemainingWarehouse: li.IsRemainingWarehouse,
			})
		}

		result = append(result, Notification{
			OrderID:   n.OrderID.Bytes(),
			Customer:  n.Customer,
			LineItems: lineItems,
		})
	}
	return result
}

func fromQueues(queues services.WarehouseQueues) WarehouseQueues {
	return WarehouseQueues{
		PendingMainWarehouse: fromOrderViews(queues.PendingMainWarehouse),
		Notifications:        fromNotifications(queues.Notifications),
		ReadyForDelivery:     fromOrderViews(queues.ReadyForDelivery),
		Completed:            fromOrderViews(queues.Completed),
	}
}

func fromEmployees(employees []queries.GetDeliveryEmployeesQueryResponse) []DeliveryEmployee {
	result := make([]DeliveryEmployee, 0, len(employees))
	for _, e := range employees {
		result = append(result, DeliveryEmployee{
			ID:    e.ID.Bytes(),
			Name:  e.Name,
			Phone: e.Phone,
			Email: e.Email,
		})
	}
	return result
}
