package app

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/venkateswarareddychalla/eatoes/internal/domain/model"
	testhelpers "github.com/venkateswarareddychalla/eatoes/internal/test"
	"github.com/venkateswarareddychalla/eatoes/internal/usecase"
)

func newTestFacade() (*RestaurantFacade, *testhelpers.MenuRepositoryStub, *testhelpers.OrderRepositoryStub, *testhelpers.AnalyticsRepositoryStub) {
	menuRepo := testhelpers.NewMenuRepositoryStub()
	orderRepo := &testhelpers.OrderRepositoryStub{}
	analyticsRepo := &testhelpers.AnalyticsRepositoryStub{}

	facade := NewRestaurantFacade(
		usecase.NewMenuUseCase(menuRepo),
		usecase.NewOrderUseCase(orderRepo, menuRepo),
		usecase.NewAnalyticsUseCase(analyticsRepo),
	)
	return facade, menuRepo, orderRepo, analyticsRepo
}

func TestFacadeMenuLifecycle(t *testing.T) {
	facade, menuRepo, _, _ := newTestFacade()
	ctx := context.Background()

	item, err := facade.CreateMenuItem(ctx, usecase.CreateMenuItemInput{
		Name:     "Margherita",
		Category: model.CategoryMainCourse,
		Price:    decimal.RequireFromString("8.50"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := facade.MenuItem(ctx, item.ID)
	if err != nil || got.Name != "Margherita" {
		t.Fatalf("unexpected item %+v err=%v", got, err)
	}

	items, err := facade.MenuItems(ctx, model.MenuFilter{})
	if err != nil || len(items) != 1 {
		t.Fatalf("unexpected listing %v err=%v", items, err)
	}

	toggled, err := facade.ToggleMenuItemAvailability(ctx, item.ID)
	if err != nil || toggled.IsAvailable {
		t.Fatalf("unexpected toggle result %+v err=%v", toggled, err)
	}

	if err := facade.DeleteMenuItem(ctx, item.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(menuRepo.Items) != 0 {
		t.Fatal("expected item removed")
	}
}

func TestFacadePlaceOrderAndStatus(t *testing.T) {
	facade, menuRepo, orderRepo, _ := newTestFacade()
	ctx := context.Background()

	seeded := menuRepo.Seed(model.MenuItem{Name: "Lemonade", Category: model.CategoryBeverage, Price: decimal.RequireFromString("4.25")})

	detail, err := facade.PlaceOrder(ctx, usecase.CreateOrderInput{
		Lines: []usecase.OrderLineInput{{MenuItemID: seeded.ID}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !detail.TotalAmount.Equal(decimal.RequireFromString("4.25")) {
		t.Fatalf("unexpected total %s", detail.TotalAmount)
	}

	updated, err := facade.SetOrderStatus(ctx, detail.ID, "Ready")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != model.OrderStatusReady {
		t.Fatalf("unexpected status %s", updated.Status)
	}
	if len(orderRepo.StatusCalls) != 1 {
		t.Fatalf("unexpected update calls %+v", orderRepo.StatusCalls)
	}

	page, err := facade.Orders(ctx, "", 1, 10)
	if err != nil || page.Total != 1 {
		t.Fatalf("unexpected page %+v err=%v", page, err)
	}
}

func TestFacadeAnalytics(t *testing.T) {
	facade, _, _, analyticsRepo := newTestFacade()
	analyticsRepo.Sellers = []model.TopSeller{{MenuItemID: 1, Name: "Margherita"}}
	analyticsRepo.StatsVal = &model.DashboardStats{TotalOrders: 3}

	sellers, err := facade.TopSellers(context.Background())
	if err != nil || len(sellers) != 1 {
		t.Fatalf("unexpected sellers %v err=%v", sellers, err)
	}
	stats, err := facade.Stats(context.Background())
	if err != nil || stats.TotalOrders != 3 {
		t.Fatalf("unexpected stats %+v err=%v", stats, err)
	}
}
