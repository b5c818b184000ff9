package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/venkateswarareddychalla/eatoes/internal/domain/errors"
	"github.com/venkateswarareddychalla/eatoes/internal/domain/model"
	"github.com/venkateswarareddychalla/eatoes/internal/test"
	"github.com/venkateswarareddychalla/eatoes/internal/usecase"
)

func seededMenu(t *testing.T) *test.MenuRepositoryStub {
	t.Helper()
	repo := test.NewMenuRepositoryStub()
	repo.Seed(model.MenuItem{ID: 1, Name: "Margherita", Category: model.CategoryMainCourse, Price: decimal.RequireFromString("8.50")})
	repo.Seed(model.MenuItem{ID: 2, Name: "Lemonade", Category: model.CategoryBeverage, Price: decimal.RequireFromString("4.25")})
	return repo
}

func TestOrderUseCaseCreateSnapshotsPricesAndTotal(t *testing.T) {
	orders := &test.OrderRepositoryStub{}
	uc := usecase.NewOrderUseCase(orders, seededMenu(t))

	two := 2
	detail, err := uc.Create(context.Background(), usecase.CreateOrderInput{
		Lines: []usecase.OrderLineInput{
			{MenuItemID: 1, Quantity: &two},
			{MenuItemID: 2},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := decimal.RequireFromString("21.25"); !detail.TotalAmount.Equal(want) {
		t.Fatalf("expected total %s, got %s", want, detail.TotalAmount)
	}
	if detail.Status != model.OrderStatusPending {
		t.Fatalf("expected pending status, got %s", detail.Status)
	}
	if !strings.HasPrefix(detail.Number, "ORD-") {
		t.Fatalf("unexpected order number %q", detail.Number)
	}

	if len(orders.CreatedItems) != 1 {
		t.Fatalf("expected one create call, got %d", len(orders.CreatedItems))
	}
	items := orders.CreatedItems[0]
	if len(items) != 2 {
		t.Fatalf("expected two line items, got %d", len(items))
	}
	if items[0].Quantity != 2 || !items[0].Price.Equal(decimal.RequireFromString("8.50")) {
		t.Fatalf("unexpected first line snapshot: %+v", items[0])
	}
	if items[1].Quantity != 1 {
		t.Fatalf("expected omitted quantity to default to 1, got %d", items[1].Quantity)
	}
}

func TestOrderUseCaseCreateRejectsEmptyOrder(t *testing.T) {
	uc := usecase.NewOrderUseCase(&test.OrderRepositoryStub{}, seededMenu(t))

	if _, err := uc.Create(context.Background(), usecase.CreateOrderInput{}); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestOrderUseCaseCreateRejectsNonPositiveQuantity(t *testing.T) {
	orders := &test.OrderRepositoryStub{}
	uc := usecase.NewOrderUseCase(orders, seededMenu(t))

	zero := 0
	_, err := uc.Create(context.Background(), usecase.CreateOrderInput{
		Lines: []usecase.OrderLineInput{{MenuItemID: 1, Quantity: &zero}},
	})
	if !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(orders.Created) != 0 {
		t.Fatal("expected no order to be written")
	}
}

func TestOrderUseCaseCreateRejectsUnknownMenuItem(t *testing.T) {
	orders := &test.OrderRepositoryStub{}
	uc := usecase.NewOrderUseCase(orders, seededMenu(t))

	_, err := uc.Create(context.Background(), usecase.CreateOrderInput{
		Lines: []usecase.OrderLineInput{{MenuItemID: 1}, {MenuItemID: 99}},
	})
	if !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "99") {
		t.Fatalf("expected missing identifier in message, got %q", err.Error())
	}
	if len(orders.Created) != 0 {
		t.Fatal("expected the whole order to be rejected")
	}
}

func TestOrderUseCaseCreateRetriesOnNumberCollision(t *testing.T) {
	attempts := 0
	orders := &test.OrderRepositoryStub{
		CreateFn: func(context.Context, *model.Order, []model.OrderItem) error {
			attempts++
			if attempts < 3 {
				return domainErrors.ErrOrderNumberTaken
			}
			return nil
		},
	}
	uc := usecase.NewOrderUseCase(orders, seededMenu(t))

	detail, err := uc.Create(context.Background(), usecase.CreateOrderInput{
		Lines: []usecase.OrderLineInput{{MenuItemID: 1}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected three attempts, got %d", attempts)
	}
	if detail.Number == "" {
		t.Fatal("expected a generated order number")
	}
}

func TestOrderUseCaseCreateGivesUpAfterRepeatedCollisions(t *testing.T) {
	attempts := 0
	orders := &test.OrderRepositoryStub{
		CreateFn: func(context.Context, *model.Order, []model.OrderItem) error {
			attempts++
			return domainErrors.ErrOrderNumberTaken
		},
	}
	uc := usecase.NewOrderUseCase(orders, seededMenu(t))

	_, err := uc.Create(context.Background(), usecase.CreateOrderInput{
		Lines: []usecase.OrderLineInput{{MenuItemID: 1}},
	})
	if !errors.Is(err, domainErrors.ErrOrderNumberTaken) {
		t.Fatalf("expected collision error, got %v", err)
	}
	if attempts != usecase.OrderNumberAttempts {
		t.Fatalf("expected %d attempts, got %d", usecase.OrderNumberAttempts, attempts)
	}
}

func TestOrderUseCaseCreatePropagatesRepositoryError(t *testing.T) {
	boom := fmt.Errorf("connection reset")
	orders := &test.OrderRepositoryStub{
		CreateFn: func(context.Context, *model.Order, []model.OrderItem) error { return boom },
	}
	uc := usecase.NewOrderUseCase(orders, seededMenu(t))

	if _, err := uc.Create(context.Background(), usecase.CreateOrderInput{
		Lines: []usecase.OrderLineInput{{MenuItemID: 1}},
	}); !errors.Is(err, boom) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestOrderUseCaseListAppliesPaginationDefaults(t *testing.T) {
	var gotLimit, gotOffset int
	orders := &test.OrderRepositoryStub{
		ListPageFn: func(_ context.Context, _ *model.OrderStatus, limit, offset int) ([]model.Order, int64, error) {
			gotLimit, gotOffset = limit, offset
			return nil, 0, nil
		},
	}
	uc := usecase.NewOrderUseCase(orders, seededMenu(t))

	page, err := uc.List(context.Background(), "", 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != 10 || gotOffset != 0 {
		t.Fatalf("expected default limit 10 offset 0, got %d %d", gotLimit, gotOffset)
	}
	if page.Page != 1 || page.PageSize != 10 {
		t.Fatalf("unexpected page metadata: %+v", page)
	}
}

func TestOrderUseCaseListComputesTotalPages(t *testing.T) {
	orders := &test.OrderRepositoryStub{
		ListPageFn: func(_ context.Context, _ *model.OrderStatus, limit, offset int) ([]model.Order, int64, error) {
			if limit != 5 || offset != 5 {
				t.Fatalf("expected limit 5 offset 5, got %d %d", limit, offset)
			}
			return []model.Order{{ID: 6}, {ID: 7}}, 12, nil
		},
	}
	uc := usecase.NewOrderUseCase(orders, seededMenu(t))

	page, err := uc.List(context.Background(), "", 2, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 12 {
		t.Fatalf("expected total 12, got %d", page.Total)
	}
	if page.TotalPages != 3 {
		t.Fatalf("expected 3 total pages, got %d", page.TotalPages)
	}
	if len(page.Orders) != 2 {
		t.Fatalf("expected two orders on the page, got %d", len(page.Orders))
	}
}

func TestOrderUseCaseListCapsPageSize(t *testing.T) {
	var gotLimit int
	orders := &test.OrderRepositoryStub{
		ListPageFn: func(_ context.Context, _ *model.OrderStatus, limit, _ int) ([]model.Order, int64, error) {
			gotLimit = limit
			return nil, 0, nil
		},
	}
	uc := usecase.NewOrderUseCase(orders, seededMenu(t))

	if _, err := uc.List(context.Background(), "", 1, 1000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != usecase.MaxPageSize {
		t.Fatalf("expected page size capped at %d, got %d", usecase.MaxPageSize, gotLimit)
	}
}

func TestOrderUseCaseListRejectsInvalidStatus(t *testing.T) {
	uc := usecase.NewOrderUseCase(&test.OrderRepositoryStub{}, seededMenu(t))

	if _, err := uc.List(context.Background(), "Eaten", 1, 10); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestOrderUseCaseListPassesStatusFilter(t *testing.T) {
	var gotStatus *model.OrderStatus
	orders := &test.OrderRepositoryStub{
		ListPageFn: func(_ context.Context, status *model.OrderStatus, _, _ int) ([]model.Order, int64, error) {
			gotStatus = status
			return nil, 0, nil
		},
	}
	uc := usecase.NewOrderUseCase(orders, seededMenu(t))

	if _, err := uc.List(context.Background(), "Preparing", 1, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotStatus == nil || *gotStatus != model.OrderStatusPreparing {
		t.Fatalf("expected preparing filter, got %v", gotStatus)
	}
}

func TestOrderUseCaseSetStatusRejectsUnknownLabel(t *testing.T) {
	orders := &test.OrderRepositoryStub{Orders: []model.Order{{ID: 1, Status: model.OrderStatusPending}}}
	uc := usecase.NewOrderUseCase(orders, seededMenu(t))

	if _, err := uc.SetStatus(context.Background(), 1, "Eaten"); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(orders.StatusCalls) != 0 {
		t.Fatal("expected no status update")
	}
}

func TestOrderUseCaseSetStatusAllowsEveryTransition(t *testing.T) {
	orders := &test.OrderRepositoryStub{Orders: []model.Order{{ID: 1, Number: "ORD-A", Status: model.OrderStatusDelivered}}}
	uc := usecase.NewOrderUseCase(orders, seededMenu(t))

	detail, err := uc.SetStatus(context.Background(), 1, "Pending")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Status != model.OrderStatusPending {
		t.Fatalf("expected pending status, got %s", detail.Status)
	}
	if len(orders.StatusCalls) != 1 || orders.StatusCalls[0].Status != model.OrderStatusPending {
		t.Fatalf("unexpected update calls: %+v", orders.StatusCalls)
	}
}

func TestOrderUseCaseSetStatusMissingOrder(t *testing.T) {
	uc := usecase.NewOrderUseCase(&test.OrderRepositoryStub{}, seededMenu(t))

	if _, err := uc.SetStatus(context.Background(), 42, "Ready"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOrderUseCaseGetEnrichesItems(t *testing.T) {
	orders := &test.OrderRepositoryStub{
		Orders: []model.Order{{ID: 1, Number: "ORD-A", Status: model.OrderStatusPending}},
		Items: map[int64][]model.OrderItemDetail{
			1: {{OrderItem: model.OrderItem{ID: 10, OrderID: 1, MenuItemID: 2, Quantity: 1}, MenuItemName: "Lemonade"}},
		},
	}
	uc := usecase.NewOrderUseCase(orders, seededMenu(t))

	detail, err := uc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(detail.Items) != 1 || detail.Items[0].MenuItemName != "Lemonade" {
		t.Fatalf("unexpected items: %+v", detail.Items)
	}
}

func TestOrderUseCaseGetMissingOrder(t *testing.T) {
	uc := usecase.NewOrderUseCase(&test.OrderRepositoryStub{}, seededMenu(t))

	if _, err := uc.Get(context.Background(), 42); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
