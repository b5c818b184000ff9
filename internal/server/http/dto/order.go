package dto

import "time"

// OrderItemRequest is one requested line. A nil quantity defaults to 1.
type OrderItemRequest struct {
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   *int  `json:"quantity"`
}

// CreateOrderRequest describes the order-creation payload.
type CreateOrderRequest struct {
	CustomerName *string            `json:"customer_name"`
	TableNumber  *int               `json:"table_number"`
	Items        []OrderItemRequest `json:"items"`
}

// UpdateOrderStatusRequest carries the requested status label.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse is a line item resolved against current catalog metadata.
// Price is always the snapshot taken at order creation.
type OrderItemResponse struct {
	ID           int64  `json:"id"`
	OrderID      int64  `json:"order_id"`
	MenuItemID   int64  `json:"menu_item_id"`
	Quantity     int    `json:"quantity"`
	Price        string `json:"price"`
	MenuItemName string `json:"menu_item_name"`
	Category     string `json:"category"`
	ImageURL     string `json:"image_url"`
}

// OrderResponse is one order with its resolved line items.
type OrderResponse struct {
	ID           int64               `json:"id"`
	OrderNumber  string              `json:"order_number"`
	TotalAmount  string              `json:"total_amount"`
	Status       string              `json:"status"`
	CustomerName *string             `json:"customer_name"`
	TableNumber  *int                `json:"table_number"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
	Items        []OrderItemResponse `json:"items"`
}

// PaginationResponse describes one page of a listing.
type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// OrderListResponse is the paged orders envelope.
type OrderListResponse struct {
	Orders     []OrderResponse    `json:"orders"`
	Pagination PaginationResponse `json:"pagination"`
}
