package handlers

import (
	"context"

	"github.com/venkateswarareddychalla/eatoes/internal/domain/model"
	"github.com/venkateswarareddychalla/eatoes/internal/usecase"
)

// MenuFacade describes catalog capabilities required by handlers.
type MenuFacade interface {
	MenuItems(ctx context.Context, filter model.MenuFilter) ([]model.MenuItem, error)
	SearchMenu(ctx context.Context, term string) ([]model.MenuItem, error)
	MenuItem(ctx context.Context, id int64) (*model.MenuItem, error)
	CreateMenuItem(ctx context.Context, in usecase.CreateMenuItemInput) (*model.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id int64, patch model.MenuItemPatch) (*model.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int64) error
	ToggleMenuItemAvailability(ctx context.Context, id int64) (*model.MenuItem, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, in usecase.CreateOrderInput) (*model.OrderDetail, error)
	Order(ctx context.Context, id int64) (*model.OrderDetail, error)
	Orders(ctx context.Context, status string, page, pageSize int) (*model.OrderPage, error)
	SetOrderStatus(ctx context.Context, id int64, status string) (*model.OrderDetail, error)
}

// AnalyticsFacade provides dashboard aggregates.
type AnalyticsFacade interface {
	TopSellers(ctx context.Context) ([]model.TopSeller, error)
	Stats(ctx context.Context) (*model.DashboardStats, error)
}

// RestaurantFacade aggregates the full set of operations used across handlers.
type RestaurantFacade interface {
	MenuFacade
	OrderFacade
	AnalyticsFacade
}
