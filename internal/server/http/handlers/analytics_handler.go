package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venkateswarareddychalla/eatoes/internal/server/http/dto"
)

// AnalyticsHandler serves dashboard aggregates.
type AnalyticsHandler struct {
	facade AnalyticsFacade
}

// NewAnalyticsHandler constructs AnalyticsHandler.
func NewAnalyticsHandler(facade AnalyticsFacade) *AnalyticsHandler {
	return &AnalyticsHandler{facade: facade}
}

// TopSellers handles GET /api/analytics/top-sellers.
func (h *AnalyticsHandler) TopSellers(c *gin.Context) {
	sellers, err := h.facade.TopSellers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.TopSellerResponse, 0, len(sellers))
	for _, s := range sellers {
		response = append(response, dto.TopSellerResponse{
			ID:            s.MenuItemID,
			Name:          s.Name,
			Category:      string(s.Category),
			Price:         s.Price.String(),
			ImageURL:      s.ImageURL,
			TotalQuantity: s.TotalQuantity,
			TotalRevenue:  s.TotalRevenue.String(),
		})
	}
	c.JSON(http.StatusOK, response)
}

// Stats handles GET /api/analytics/stats.
func (h *AnalyticsHandler) Stats(c *gin.Context) {
	stats, err := h.facade.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatsResponse{
		TotalItems:     stats.TotalItems,
		AvailableItems: stats.AvailableItems,
		TotalOrders:    stats.TotalOrders,
		PendingOrders:  stats.PendingOrders,
		TotalRevenue:   stats.TotalRevenue.String(),
	})
}
