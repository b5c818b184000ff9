package test

import (
	"context"

	"github.com/venkateswarareddychalla/eatoes/internal/domain/model"
	"github.com/venkateswarareddychalla/eatoes/internal/server/http/handlers"
	"github.com/venkateswarareddychalla/eatoes/internal/usecase"
)

// MenuFacadeStub provides controllable behaviour for catalog endpoints.
type MenuFacadeStub struct {
	MenuItemsFn  func(context.Context, model.MenuFilter) ([]model.MenuItem, error)
	SearchMenuFn func(context.Context, string) ([]model.MenuItem, error)
	MenuItemFn   func(context.Context, int64) (*model.MenuItem, error)
	CreateFn     func(context.Context, usecase.CreateMenuItemInput) (*model.MenuItem, error)
	UpdateFn     func(context.Context, int64, model.MenuItemPatch) (*model.MenuItem, error)
	DeleteFn     func(context.Context, int64) error
	ToggleFn     func(context.Context, int64) (*model.MenuItem, error)
}

// MenuItems delegates to the override or returns an empty catalog.
func (s MenuFacadeStub) MenuItems(ctx context.Context, filter model.MenuFilter) ([]model.MenuItem, error) {
	if s.MenuItemsFn != nil {
		return s.MenuItemsFn(ctx, filter)
	}
	return []model.MenuItem{}, nil
}

// SearchMenu delegates to the override or returns an empty result.
func (s MenuFacadeStub) SearchMenu(ctx context.Context, term string) ([]model.MenuItem, error) {
	if s.SearchMenuFn != nil {
		return s.SearchMenuFn(ctx, term)
	}
	return []model.MenuItem{}, nil
}

// MenuItem delegates to the override or returns a minimal item.
func (s MenuFacadeStub) MenuItem(ctx context.Context, id int64) (*model.MenuItem, error) {
	if s.MenuItemFn != nil {
		return s.MenuItemFn(ctx, id)
	}
	return &model.MenuItem{ID: id, Name: "stub", Category: model.CategoryMainCourse}, nil
}

// CreateMenuItem delegates to the override or echoes the input back.
func (s MenuFacadeStub) CreateMenuItem(ctx context.Context, in usecase.CreateMenuItemInput) (*model.MenuItem, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, in)
	}
	return &model.MenuItem{ID: 1, Name: in.Name, Category: in.Category, Price: in.Price, IsAvailable: true}, nil
}

// UpdateMenuItem delegates to the override or returns a minimal item.
func (s MenuFacadeStub) UpdateMenuItem(ctx context.Context, id int64, patch model.MenuItemPatch) (*model.MenuItem, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, patch)
	}
	return &model.MenuItem{ID: id, Name: "stub", Category: model.CategoryMainCourse}, nil
}

// DeleteMenuItem delegates to the override.
func (s MenuFacadeStub) DeleteMenuItem(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// ToggleMenuItemAvailability delegates to the override or returns a minimal item.
func (s MenuFacadeStub) ToggleMenuItemAvailability(ctx context.Context, id int64) (*model.MenuItem, error) {
	if s.ToggleFn != nil {
		return s.ToggleFn(ctx, id)
	}
	return &model.MenuItem{ID: id, Name: "stub", Category: model.CategoryMainCourse, IsAvailable: true}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceOrderFn func(context.Context, usecase.CreateOrderInput) (*model.OrderDetail, error)
	OrderFn      func(context.Context, int64) (*model.OrderDetail, error)
	OrdersFn     func(context.Context, string, int, int) (*model.OrderPage, error)
	SetStatusFn  func(context.Context, int64, string) (*model.OrderDetail, error)
}

// PlaceOrder delegates to the override or returns a minimal order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, in usecase.CreateOrderInput) (*model.OrderDetail, error) {
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, in)
	}
	return &model.OrderDetail{Order: model.Order{ID: 1, Number: "ORD-STUB", Status: model.OrderStatusPending}}, nil
}

// Order delegates to the override or returns a minimal order.
func (s OrderFacadeStub) Order(ctx context.Context, id int64) (*model.OrderDetail, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.OrderDetail{Order: model.Order{ID: id, Number: "ORD-STUB", Status: model.OrderStatusPending}}, nil
}

// Orders delegates to the override or returns an empty page.
func (s OrderFacadeStub) Orders(ctx context.Context, status string, page, pageSize int) (*model.OrderPage, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, status, page, pageSize)
	}
	return &model.OrderPage{Orders: []model.OrderDetail{}, Page: page, PageSize: pageSize}, nil
}

// SetOrderStatus delegates to the override or returns a minimal order.
func (s OrderFacadeStub) SetOrderStatus(ctx context.Context, id int64, status string) (*model.OrderDetail, error) {
	if s.SetStatusFn != nil {
		return s.SetStatusFn(ctx, id, status)
	}
	return &model.OrderDetail{Order: model.Order{ID: id, Number: "ORD-STUB", Status: model.OrderStatus(status)}}, nil
}

// AnalyticsFacadeStub simulates dashboard aggregates.
type AnalyticsFacadeStub struct {
	TopSellersFn func(context.Context) ([]model.TopSeller, error)
	StatsFn      func(context.Context) (*model.DashboardStats, error)
}

// TopSellers delegates to the override or returns an empty leaderboard.
func (s AnalyticsFacadeStub) TopSellers(ctx context.Context) ([]model.TopSeller, error) {
	if s.TopSellersFn != nil {
		return s.TopSellersFn(ctx)
	}
	return []model.TopSeller{}, nil
}

// Stats delegates to the override or returns zero counters.
func (s AnalyticsFacadeStub) Stats(ctx context.Context) (*model.DashboardStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx)
	}
	return &model.DashboardStats{}, nil
}

// RestaurantFacadeStub aggregates facade dependencies for HTTP layer tests.
type RestaurantFacadeStub struct {
	MenuFacadeStub
	OrderFacadeStub
	AnalyticsFacadeStub
}

var _ handlers.RestaurantFacade = RestaurantFacadeStub{}
