package dto

// TopSellerResponse is one leaderboard entry.
type TopSellerResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Price         string `json:"price"`
	ImageURL      string `json:"image_url"`
	TotalQuantity int64  `json:"total_quantity"`
	TotalRevenue  string `json:"total_revenue"`
}

// StatsResponse carries the dashboard counters.
type StatsResponse struct {
	TotalItems     int64  `json:"totalItems"`
	AvailableItems int64  `json:"availableItems"`
	TotalOrders    int64  `json:"totalOrders"`
	PendingOrders  int64  `json:"pendingOrders"`
	TotalRevenue   string `json:"totalRevenue"`
}
