package test

import (
	"context"
	"time"

	domainErrors "github.com/venkateswarareddychalla/eatoes/internal/domain/errors"
	"github.com/venkateswarareddychalla/eatoes/internal/domain/model"
	"github.com/venkateswarareddychalla/eatoes/internal/domain/repository"
)

// MenuRepositoryStub keeps catalog items in-memory for tests.
type MenuRepositoryStub struct {
	Items map[int64]*model.MenuItem
	Next  int64
	Err   error

	ListFn   func(context.Context, model.MenuFilter) ([]model.MenuItem, error)
	SearchFn func(context.Context, string) ([]model.MenuItem, error)

	SearchCalls []string
}

// NewMenuRepositoryStub constructs stub repository with initialized state.
func NewMenuRepositoryStub() *MenuRepositoryStub {
	return &MenuRepositoryStub{Items: make(map[int64]*model.MenuItem), Next: 1}
}

// Seed stores the item under its ID, assigning the next free one when unset.
func (s *MenuRepositoryStub) Seed(item model.MenuItem) *model.MenuItem {
	if s.Items == nil {
		s.Items = make(map[int64]*model.MenuItem)
	}
	if item.ID == 0 {
		if s.Next == 0 {
			s.Next = 1
		}
		item.ID = s.Next
		s.Next++
	} else if item.ID >= s.Next {
		s.Next = item.ID + 1
	}
	stored := item
	s.Items[stored.ID] = &stored
	return &stored
}

// List returns every stored item unless an override is configured.
func (s *MenuRepositoryStub) List(ctx context.Context, filter model.MenuFilter) ([]model.MenuItem, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	items := make([]model.MenuItem, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, *item)
	}
	return items, nil
}

// Search records the term and returns every stored item.
func (s *MenuRepositoryStub) Search(ctx context.Context, term string) ([]model.MenuItem, error) {
	s.SearchCalls = append(s.SearchCalls, term)
	if s.SearchFn != nil {
		return s.SearchFn(ctx, term)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	items := make([]model.MenuItem, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, *item)
	}
	return items, nil
}

// GetByID fetches an item by identifier or returns not found.
func (s *MenuRepositoryStub) GetByID(ctx context.Context, id int64) (*model.MenuItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if item, ok := s.Items[id]; ok {
		copied := *item
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Create stores the item and fills generated fields.
func (s *MenuRepositoryStub) Create(ctx context.Context, item *model.MenuItem) error {
	if s.Err != nil {
		return s.Err
	}
	if s.Items == nil {
		s.Items = make(map[int64]*model.MenuItem)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	item.ID = s.Next
	s.Next++
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	stored := *item
	s.Items[stored.ID] = &stored
	return nil
}

// Update applies the patch to a stored item or returns not found.
func (s *MenuRepositoryStub) Update(ctx context.Context, id int64, patch model.MenuItemPatch) (*model.MenuItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	item, ok := s.Items[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.Ingredients != nil {
		item.Ingredients = patch.Ingredients
	}
	if patch.IsAvailable != nil {
		item.IsAvailable = *patch.IsAvailable
	}
	if patch.PreparationTime != nil {
		item.PreparationTime = patch.PreparationTime
	}
	if patch.ImageURL != nil {
		item.ImageURL = *patch.ImageURL
	}
	item.UpdatedAt = time.Now()
	copied := *item
	return &copied, nil
}

// Delete removes a stored item or returns not found.
func (s *MenuRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Items[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Items, id)
	return nil
}

// ToggleAvailability flips the stored flag or returns not found.
func (s *MenuRepositoryStub) ToggleAvailability(ctx context.Context, id int64) (*model.MenuItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	item, ok := s.Items[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	item.IsAvailable = !item.IsAvailable
	item.UpdatedAt = time.Now()
	copied := *item
	return &copied, nil
}

// OrderStatusCall stores information about UpdateStatus invocations.
type OrderStatusCall struct {
	OrderID int64
	Status  model.OrderStatus
}

// OrderRepositoryStub allows tests to customize order persistence behaviour.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, *model.Order, []model.OrderItem) error
	GetByIDFn      func(context.Context, int64) (*model.Order, error)
	ListPageFn     func(context.Context, *model.OrderStatus, int, int) ([]model.Order, int64, error)
	ItemsByOrderFn func(context.Context, int64) ([]model.OrderItemDetail, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus) error

	Created      []model.Order
	CreatedItems [][]model.OrderItem
	Orders       []model.Order
	Total        int64
	Items        map[int64][]model.OrderItemDetail
	StatusCalls  []OrderStatusCall
}

// Create tracks invocations, fills generated fields, and stores the order.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order, items []model.OrderItem) error {
	if s.CreateFn != nil {
		if err := s.CreateFn(ctx, order, items); err != nil {
			return err
		}
	}
	if order.ID == 0 {
		order.ID = int64(len(s.Created) + 1)
	}
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	s.Created = append(s.Created, *order)
	s.CreatedItems = append(s.CreatedItems, items)
	s.Orders = append(s.Orders, *order)
	return nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListPage returns the configured page of orders.
func (s *OrderRepositoryStub) ListPage(ctx context.Context, status *model.OrderStatus, limit, offset int) ([]model.Order, int64, error) {
	if s.ListPageFn != nil {
		return s.ListPageFn(ctx, status, limit, offset)
	}
	total := s.Total
	if total == 0 {
		total = int64(len(s.Orders))
	}
	return s.Orders, total, nil
}

// ItemsByOrder returns configured line item details.
func (s *OrderRepositoryStub) ItemsByOrder(ctx context.Context, orderID int64) ([]model.OrderItemDetail, error) {
	if s.ItemsByOrderFn != nil {
		return s.ItemsByOrderFn(ctx, orderID)
	}
	return s.Items[orderID], nil
}

// UpdateStatus records update invocations and mutates the stored order.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	s.StatusCalls = append(s.StatusCalls, OrderStatusCall{OrderID: id, Status: status})
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			s.Orders[i].Status = status
		}
	}
	return nil
}

// AnalyticsRepositoryStub lets tests control aggregate data.
type AnalyticsRepositoryStub struct {
	TopSellersFn func(context.Context, int) ([]model.TopSeller, error)
	StatsFn      func(context.Context) (*model.DashboardStats, error)

	Sellers  []model.TopSeller
	StatsVal *model.DashboardStats
	Limits   []int
	StatsErr error
}

// TopSellers records the limit and returns configured sellers.
func (s *AnalyticsRepositoryStub) TopSellers(ctx context.Context, limit int) ([]model.TopSeller, error) {
	s.Limits = append(s.Limits, limit)
	if s.TopSellersFn != nil {
		return s.TopSellersFn(ctx, limit)
	}
	return s.Sellers, nil
}

// Stats returns configured dashboard counters.
func (s *AnalyticsRepositoryStub) Stats(ctx context.Context) (*model.DashboardStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx)
	}
	if s.StatsErr != nil {
		return nil, s.StatsErr
	}
	if s.StatsVal == nil {
		return &model.DashboardStats{}, nil
	}
	return s.StatsVal, nil
}

var _ repository.MenuRepository = (*MenuRepositoryStub)(nil)
var _ repository.OrderRepository = (*OrderRepositoryStub)(nil)
var _ repository.AnalyticsRepository = (*AnalyticsRepositoryStub)(nil)
