package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/venkateswarareddychalla/eatoes/internal/domain/model"
)

func (r *analyticsRepository) TopSellers(ctx context.Context, limit int) ([]model.TopSeller, error) {
	const query = `SELECT mi.id, mi.name, mi.category, mi.price::text, mi.image_url,
                          SUM(oi.quantity)::bigint, SUM(oi.quantity * oi.price)::text
                   FROM order_items oi
                   JOIN menu_items mi ON mi.id = oi.menu_item_id
                   GROUP BY mi.id, mi.name, mi.category, mi.price, mi.image_url
                   ORDER BY SUM(oi.quantity) DESC
                   LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.TopSeller
	for rows.Next() {
		var (
			s        model.TopSeller
			category string
			price    string
			revenue  string
		)
		if err := rows.Scan(&s.MenuItemID, &s.Name, &category, &price, &s.ImageURL,
			&s.TotalQuantity, &revenue); err != nil {
			return nil, err
		}
		s.Category = model.MenuCategory(category)
		if s.Price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("parse price: %w", err)
		}
		if s.TotalRevenue, err = decimal.NewFromString(revenue); err != nil {
			return nil, fmt.Errorf("parse revenue: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Stats computes all dashboard counters in one round trip. Revenue excludes
// cancelled orders and COALESCEs to exactly zero when no order matches.
func (r *analyticsRepository) Stats(ctx context.Context) (*model.DashboardStats, error) {
	const query = `SELECT
                      (SELECT COUNT(*) FROM menu_items),
                      (SELECT COUNT(*) FROM menu_items WHERE is_available),
                      (SELECT COUNT(*) FROM orders),
                      (SELECT COUNT(*) FROM orders WHERE status = 'Pending'),
                      (SELECT COALESCE(SUM(total_amount), 0)::text FROM orders WHERE status <> 'Cancelled')`

	var (
		stats   model.DashboardStats
		revenue string
	)
	err := r.storage.pool.QueryRow(ctx, query).Scan(
		&stats.TotalItems, &stats.AvailableItems, &stats.TotalOrders, &stats.PendingOrders, &revenue)
	if err != nil {
		return nil, err
	}
	if stats.TotalRevenue, err = decimal.NewFromString(revenue); err != nil {
		return nil, fmt.Errorf("parse revenue: %w", err)
	}
	return &stats, nil
}
