package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes the order lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusPreparing OrderStatus = "Preparing"
	OrderStatusReady     OrderStatus = "Ready"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// OrderStatuses lists every valid status label.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusPreparing,
		OrderStatusReady,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

// Valid reports whether the status is one of the known labels.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// statusTransitions is the order state machine. Every transition is currently
// legal; narrowing to a real kitchen workflow is a data change here, not a
// code change.
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusPending, OrderStatusPreparing, OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusPending, OrderStatusPreparing, OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusPending, OrderStatusPreparing, OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered: {OrderStatusPending, OrderStatusPreparing, OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusCancelled: {OrderStatusPending, OrderStatusPreparing, OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled},
}

// CanTransition reports whether the state machine allows moving from one
// status to another.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Order is a customer order with its total frozen at creation time.
type Order struct {
	ID           int64
	Number       string
	TotalAmount  decimal.Decimal
	Status       OrderStatus
	CustomerName *string
	TableNumber  *int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrderItem links an order to a menu item with the price snapshotted at
// creation. Later catalog price edits never touch it.
type OrderItem struct {
	ID         int64
	OrderID    int64
	MenuItemID int64
	Quantity   int
	Price      decimal.Decimal
}

// OrderItemDetail is a line item resolved against current catalog metadata
// for display. The price is always the line's own snapshot. Display fields
// stay empty when the referenced menu item has been deleted.
type OrderItemDetail struct {
	OrderItem
	MenuItemName string
	Category     MenuCategory
	ImageURL     string
}

// OrderDetail bundles an order with its resolved line items.
type OrderDetail struct {
	Order
	Items []OrderItemDetail
}

// OrderPage is one page of enriched orders plus pagination totals.
type OrderPage struct {
	Orders     []OrderDetail
	Page       int
	PageSize   int
	Total      int64
	TotalPages int64
}
