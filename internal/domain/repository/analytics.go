package repository

import (
	"context"

	"github.com/venkateswarareddychalla/eatoes/internal/domain/model"
)

// AnalyticsRepository computes read-only aggregates over accumulated data.
type AnalyticsRepository interface {
	TopSellers(ctx context.Context, limit int) ([]model.TopSeller, error)
	Stats(ctx context.Context) (*model.DashboardStats, error)
}
