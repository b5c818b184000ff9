package usecase

import (
	"context"

	"github.com/venkateswarareddychalla/eatoes/internal/domain/model"
	"github.com/venkateswarareddychalla/eatoes/internal/domain/repository"
)

// topSellersLimit is how many items the dashboard leaderboard shows.
const topSellersLimit = 5

// AnalyticsUseCase exposes read-only aggregates; it never mutates data.
type AnalyticsUseCase struct {
	analytics repository.AnalyticsRepository
}

// NewAnalyticsUseCase constructs AnalyticsUseCase.
func NewAnalyticsUseCase(analytics repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{analytics: analytics}
}

// TopSellers returns the five best-selling items by summed quantity.
func (u *AnalyticsUseCase) TopSellers(ctx context.Context) ([]model.TopSeller, error) {
	return u.analytics.TopSellers(ctx, topSellersLimit)
}

// Stats computes current dashboard totals.
func (u *AnalyticsUseCase) Stats(ctx context.Context) (*model.DashboardStats, error) {
	return u.analytics.Stats(ctx)
}
