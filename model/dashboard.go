package model

import "github.com/decomizer/storefront/constant"

// DashboardData is the aggregation snapshot served to the admin dashboard.
type DashboardData struct {
	TotalOrders         int64            `json:"totalOrders"`
	TotalRevenue        float64          `json:"totalRevenue"`
	RecentRevenue       float64          `json:"recentRevenue"`
	RevenueGrowth       float64          `json:"revenueGrowth"`
	ActiveBanners       int64            `json:"activeBanners"`
	TotalUsers          int64            `json:"totalUsers"`
	RecentUsers         int64            `json:"recentUsers"`
	OrderStatusCounts   map[string]int64 `json:"orderStatusCounts"`
	ActiveAnnouncements int64            `json:"activeAnnouncements"`
	ActiveProducts      int64            `json:"activeProducts"`
	ActiveCoupons       int64            `json:"activeCoupons"`
	ActiveFeatureVideos int64            `json:"activeFeatureVideos"`
	StateWiseData       []StateMetric    `json:"stateWiseData"`
	DailyVisits         []DailyVisits    `json:"dailyVisits"`
	DailyRevenue        []DailyRevenue   `json:"dailyRevenue"`
	UserGrowth          []DailyUsers     `json:"userGrowth"`
	TopProducts         []TopProduct     `json:"topProducts"`
}

type StateMetric struct {
	Name      string  `db:"name" json:"name"`
	Value     int64   `db:"value" json:"value"`
	Orders    int64   `db:"orders" json:"orders"`
	Revenue   float64 `db:"revenue" json:"revenue"`
	Customers int64   `db:"customers" json:"customers"`
}

type DailyVisits struct {
	Date   string `json:"date"`
	Visits int64  `json:"visits"`
}

type DailyRevenue struct {
	Date    string  `db:"date" json:"date"`
	Revenue float64 `db:"revenue" json:"revenue"`
}

type DailyUsers struct {
	Date  string `db:"date" json:"date"`
	Users int64  `db:"users" json:"users"`
}

type TopProduct struct {
	Name          string                 `db:"name" json:"name"`
	OrderCount    int64                  `db:"order_count" json:"orderCount"`
	PaymentStatus constant.PaymentStatus `db:"payment_status" json:"paymentStatus"`
}

// StatusCount is one row of the order status breakdown.
type StatusCount struct {
	Status string `db:"status"`
	Count  int64  `db:"count"`
}

// EntityCounts holds the plain counters of the snapshot.
type EntityCounts struct {
	TotalOrders         int64 `db:"total_orders"`
	TotalUsers          int64 `db:"total_users"`
	ActiveBanners       int64 `db:"active_banners"`
	ActiveAnnouncements int64 `db:"active_announcements"`
	ActiveProducts      int64 `db:"active_products"`
	ActiveCoupons       int64 `db:"active_coupons"`
	ActiveFeatureVideos int64 `db:"active_feature_videos"`
}

// DashboardResponse is the wire envelope of GET /api/admin/dashboard.
type DashboardResponse struct {
	Success bool           `json:"success"`
	Data    *DashboardData `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
}
