package repository

import (
	"context"

	"github.com/venkateswarareddychalla/eatoes/internal/domain/model"
)

// OrderRepository describes persistence operations for orders.
type OrderRepository interface {
	// Create writes the order and all its line items in one transaction,
	// filling generated identifiers and timestamps.
	Create(ctx context.Context, order *model.Order, items []model.OrderItem) error
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	// ListPage returns one page of orders newest first plus the total count
	// matching the same filter.
	ListPage(ctx context.Context, status *model.OrderStatus, limit, offset int) ([]model.Order, int64, error)
	ItemsByOrder(ctx context.Context, orderID int64) ([]model.OrderItemDetail, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error
}
