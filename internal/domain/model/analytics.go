package model

import "github.com/shopspring/decimal"

// TopSeller aggregates sales for one menu item.
type TopSeller struct {
	MenuItemID    int64
	Name          string
	Category      MenuCategory
	Price         decimal.Decimal
	ImageURL      string
	TotalQuantity int64
	TotalRevenue  decimal.Decimal
}

// DashboardStats holds the derived counters shown on the dashboard. Computed
// on demand, never persisted.
type DashboardStats struct {
	TotalItems     int64
	AvailableItems int64
	TotalOrders    int64
	PendingOrders  int64
	TotalRevenue   decimal.Decimal
}
