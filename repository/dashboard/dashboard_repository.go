package dashboard

import (
	"context"
	"time"

	"github.com/decomizer/storefront/constant"
	"github.com/decomizer/storefront/model"
	"github.com/jmoiron/sqlx"
)

// DashboardRepository runs the read-only aggregation queries of the admin dashboard.
type DashboardRepository interface {
	GetEntityCounts(ctx context.Context) (*model.EntityCounts, error)
	GetTotalRevenue(ctx context.Context) (float64, error)
	GetRevenueBetween(ctx context.Context, from, to time.Time) (float64, error)
	CountUsersSince(ctx context.Context, since time.Time) (int64, error)
	GetOrderStatusCounts(ctx context.Context) ([]model.StatusCount, error)
	GetDailyRevenue(ctx context.Context, since time.Time) ([]model.DailyRevenue, error)
	GetUserGrowth(ctx context.Context, since time.Time) ([]model.DailyUsers, error)
	GetStateMetrics(ctx context.Context) ([]model.StateMetric, error)
	GetTopProducts(ctx context.Context, since time.Time, limit int) ([]model.TopProduct, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewDashboardRepository(conn *sqlx.DB) DashboardRepository {
	return &SQL{conn: conn}
}

const (
	entityCountsQuery = `SELECT
	(SELECT COUNT(*) FROM orders) AS total_orders,
	(SELECT COUNT(*) FROM users) AS total_users,
	(SELECT COUNT(*) FROM banners WHERE is_active = TRUE) AS active_banners,
	(SELECT COUNT(*) FROM announcements WHERE is_active = TRUE) AS active_announcements,
	(SELECT COUNT(*) FROM products WHERE is_active = TRUE) AS active_products,
	(SELECT COUNT(*) FROM coupons WHERE is_active = TRUE) AS active_coupons,
	(SELECT COUNT(*) FROM feature_videos WHERE is_active = TRUE) AS active_feature_videos`

	totalRevenueQuery   = `SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE payment_status = ?`
	revenueBetweenQuery = `SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE payment_status = ? AND created_at >= ? AND created_at < ?`
	usersSinceQuery     = `SELECT COUNT(*) FROM users WHERE created_at >= ?`
	statusCountsQuery   = `SELECT status, COUNT(*) AS count FROM orders GROUP BY status ORDER BY status`

	dailyRevenueQuery = `SELECT DATE_FORMAT(created_at, '%Y-%m-%d') AS date, COALESCE(SUM(total_amount), 0) AS revenue
FROM orders
WHERE payment_status = ? AND created_at >= ?
GROUP BY date
ORDER BY date`

	userGrowthQuery = `SELECT DATE_FORMAT(created_at, '%Y-%m-%d') AS date, COUNT(*) AS users
FROM users
WHERE created_at >= ?
GROUP BY date
ORDER BY date`

	stateMetricsQuery = `SELECT shipping_state AS name, COUNT(*) AS value, COUNT(*) AS orders,
COALESCE(SUM(CASE WHEN payment_status = ? THEN total_amount ELSE 0 END), 0) AS revenue,
COUNT(DISTINCT user_id) AS customers
FROM orders
GROUP BY shipping_state
ORDER BY orders DESC, name`

	topProductsQuery = `SELECT p.name, COUNT(DISTINCT o.id) AS order_count, o.payment_status
FROM order_items oi
JOIN orders o ON oi.order_id = o.id
JOIN products p ON oi.product_id = p.id
WHERE o.created_at >= ?
GROUP BY p.id, p.name, o.payment_status
ORDER BY order_count DESC, p.name
LIMIT ?`
)

func (r *SQL) GetEntityCounts(ctx context.Context) (*model.EntityCounts, error) {
	var counts model.EntityCounts
	if err := r.conn.GetContext(ctx, &counts, entityCountsQuery); err != nil {
		return nil, err
	}
	return &counts, nil
}

func (r *SQL) GetTotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	if err := r.conn.GetContext(ctx, &total, totalRevenueQuery, constant.PaymentStatusCompleted); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *SQL) GetRevenueBetween(ctx context.Context, from, to time.Time) (float64, error) {
	var total float64
	if err := r.conn.GetContext(ctx, &total, revenueBetweenQuery, constant.PaymentStatusCompleted, from, to); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *SQL) CountUsersSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	if err := r.conn.GetContext(ctx, &n, usersSinceQuery, since); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *SQL) GetOrderStatusCounts(ctx context.Context) ([]model.StatusCount, error) {
	res := make([]model.StatusCount, 0)
	if err := r.conn.SelectContext(ctx, &res, statusCountsQuery); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *SQL) GetDailyRevenue(ctx context.Context, since time.Time) ([]model.DailyRevenue, error) {
	res := make([]model.DailyRevenue, 0)
	if err := r.conn.SelectContext(ctx, &res, dailyRevenueQuery, constant.PaymentStatusCompleted, since); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *SQL) GetUserGrowth(ctx context.Context, since time.Time) ([]model.DailyUsers, error) {
	res := make([]model.DailyUsers, 0)
	if err := r.conn.SelectContext(ctx, &res, userGrowthQuery, since); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *SQL) GetStateMetrics(ctx context.Context) ([]model.StateMetric, error) {
	res := make([]model.StateMetric, 0)
	if err := r.conn.SelectContext(ctx, &res, stateMetricsQuery, constant.PaymentStatusCompleted); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *SQL) GetTopProducts(ctx context.Context, since time.Time, limit int) ([]model.TopProduct, error) {
	res := make([]model.TopProduct, 0)
	if err := r.conn.SelectContext(ctx, &res, topProductsQuery, since, limit); err != nil {
		return nil, err
	}
	return res, nil
}
