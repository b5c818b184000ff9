package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	domainErrors "github.com/venkateswarareddychalla/eatoes/internal/domain/errors"
	"github.com/venkateswarareddychalla/eatoes/internal/domain/model"
	"github.com/venkateswarareddychalla/eatoes/internal/domain/repository"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100

	// orderNumberAttempts bounds regeneration when a generated token collides
	// with an existing order_number.
	orderNumberAttempts = 3
)

// OrderUseCase owns the order lifecycle: atomic creation with price
// snapshotting, enriched reads, and the status state machine.
type OrderUseCase struct {
	orders repository.OrderRepository
	menu   repository.MenuRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, menu repository.MenuRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, menu: menu}
}

// OrderLineInput is one requested line. A nil Quantity defaults to 1.
type OrderLineInput struct {
	MenuItemID int64
	Quantity   *int
}

// CreateOrderInput carries a validated order-creation request.
type CreateOrderInput struct {
	CustomerName *string
	TableNumber  *int
	Lines        []OrderLineInput
}

// Create validates every line against the catalog, freezes current prices
// into the line items, and commits the order atomically. A missing menu item
// fails the whole request with no rows written.
func (u *OrderUseCase) Create(ctx context.Context, in CreateOrderInput) (*model.OrderDetail, error) {
	if len(in.Lines) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", domainErrors.ErrValidation)
	}

	total := decimal.Zero
	items := make([]model.OrderItem, 0, len(in.Lines))
	for _, line := range in.Lines {
		quantity := 1
		if line.Quantity != nil {
			quantity = *line.Quantity
		}
		if quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", domainErrors.ErrValidation)
		}

		menuItem, err := u.menu.GetByID(ctx, line.MenuItemID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: menu item with id %d not found", domainErrors.ErrValidation, line.MenuItemID)
			}
			return nil, err
		}

		total = total.Add(menuItem.Price.Mul(decimal.NewFromInt(int64(quantity))))
		items = append(items, model.OrderItem{
			MenuItemID: menuItem.ID,
			Quantity:   quantity,
			Price:      menuItem.Price,
		})
	}

	order := &model.Order{
		TotalAmount:  total,
		Status:       model.OrderStatusPending,
		CustomerName: in.CustomerName,
		TableNumber:  in.TableNumber,
	}

	var err error
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		order.Number = generateOrderNumber()
		err = u.orders.Create(ctx, order, items)
		if err == nil {
			return u.detail(ctx, order)
		}
		if !errors.Is(err, domainErrors.ErrOrderNumberTaken) {
			return nil, err
		}
	}
	return nil, err
}

// Get fetches one order with its resolved line items.
func (u *OrderUseCase) Get(ctx context.Context, id int64) (*model.OrderDetail, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.detail(ctx, order)
}

// List returns one page of enriched orders, newest first. Out-of-range page
// parameters fall back to the defaults; statusLabel empty means no filter.
func (u *OrderUseCase) List(ctx context.Context, statusLabel string, page, pageSize int) (*model.OrderPage, error) {
	var status *model.OrderStatus
	if statusLabel != "" {
		s := model.OrderStatus(statusLabel)
		if !s.Valid() {
			return nil, fmt.Errorf("%w: invalid status %q", domainErrors.ErrValidation, statusLabel)
		}
		status = &s
	}

	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	orders, total, err := u.orders.ListPage(ctx, status, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	result := &model.OrderPage{
		Orders:     make([]model.OrderDetail, 0, len(orders)),
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	for i := range orders {
		items, err := u.orders.ItemsByOrder(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		result.Orders = append(result.Orders, model.OrderDetail{Order: orders[i], Items: items})
	}
	return result, nil
}

// SetStatus moves an order to a new status. The label must belong to the
// closed status set and the transition table must allow the move; today the
// table permits every transition, including away from Delivered.
func (u *OrderUseCase) SetStatus(ctx context.Context, id int64, statusLabel string) (*model.OrderDetail, error) {
	status := model.OrderStatus(statusLabel)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", domainErrors.ErrValidation, statusLabel)
	}

	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !model.CanTransition(order.Status, status) {
		return nil, fmt.Errorf("%w: transition from %s to %s is not allowed", domainErrors.ErrValidation, order.Status, status)
	}

	if err := u.orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return u.Get(ctx, id)
}

func (u *OrderUseCase) detail(ctx context.Context, order *model.Order) (*model.OrderDetail, error) {
	items, err := u.orders.ItemsByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	return &model.OrderDetail{Order: *order, Items: items}, nil
}
