package dto

import "github.com/quickbasket/quickbasket-api/internal/domain"

type OrderUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type OrderResponse struct {
	domain.Order
	User *OrderUser `json:"user,omitempty"`
}

type OrderStatsResponse struct {
	TotalOrders     int64           `json:"totalOrders"`
	PendingOrders   int64           `json:"pendingOrders"`
	CompletedOrders int64           `json:"completedOrders"`
	TotalSales      float64         `json:"totalSales"`
	RecentPending   []OrderResponse `json:"recentPending"`
}
