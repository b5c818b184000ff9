package app

import (
	"context"

	"github.com/venkateswarareddychalla/eatoes/internal/domain/model"
	"github.com/venkateswarareddychalla/eatoes/internal/usecase"
)

// RestaurantFacade aggregates the use cases behind the HTTP surface.
type RestaurantFacade struct {
	menu      *usecase.MenuUseCase
	orders    *usecase.OrderUseCase
	analytics *usecase.AnalyticsUseCase
}

// NewRestaurantFacade constructs RestaurantFacade.
func NewRestaurantFacade(menu *usecase.MenuUseCase, orders *usecase.OrderUseCase, analytics *usecase.AnalyticsUseCase) *RestaurantFacade {
	return &RestaurantFacade{menu: menu, orders: orders, analytics: analytics}
}

func (f *RestaurantFacade) MenuItems(ctx context.Context, filter model.MenuFilter) ([]model.MenuItem, error) {
	return f.menu.List(ctx, filter)
}

func (f *RestaurantFacade) SearchMenu(ctx context.Context, term string) ([]model.MenuItem, error) {
	return f.menu.Search(ctx, term)
}

func (f *RestaurantFacade) MenuItem(ctx context.Context, id int64) (*model.MenuItem, error) {
	return f.menu.Get(ctx, id)
}

func (f *RestaurantFacade) CreateMenuItem(ctx context.Context, in usecase.CreateMenuItemInput) (*model.MenuItem, error) {
	return f.menu.Create(ctx, in)
}

func (f *RestaurantFacade) UpdateMenuItem(ctx context.Context, id int64, patch model.MenuItemPatch) (*model.MenuItem, error) {
	return f.menu.Update(ctx, id, patch)
}

func (f *RestaurantFacade) DeleteMenuItem(ctx context.Context, id int64) error {
	return f.menu.Delete(ctx, id)
}

func (f *RestaurantFacade) ToggleMenuItemAvailability(ctx context.Context, id int64) (*model.MenuItem, error) {
	return f.menu.ToggleAvailability(ctx, id)
}

func (f *RestaurantFacade) PlaceOrder(ctx context.Context, in usecase.CreateOrderInput) (*model.OrderDetail, error) {
	return f.orders.Create(ctx, in)
}

func (f *RestaurantFacade) Order(ctx context.Context, id int64) (*model.OrderDetail, error) {
	return f.orders.Get(ctx, id)
}

func (f *RestaurantFacade) Orders(ctx context.Context, status string, page, pageSize int) (*model.OrderPage, error) {
	return f.orders.List(ctx, status, page, pageSize)
}

func (f *RestaurantFacade) SetOrderStatus(ctx context.Context, id int64, status string) (*model.OrderDetail, error) {
	return f.orders.SetStatus(ctx, id, status)
}

func (f *RestaurantFacade) TopSellers(ctx context.Context) ([]model.TopSeller, error) {
	return f.analytics.TopSellers(ctx)
}

func (f *RestaurantFacade) Stats(ctx context.Context) (*model.DashboardStats, error) {
	return f.analytics.Stats(ctx)
}
