package dashboard

import (
	"context"
	"time"

	"github.com/decomizer/storefront/cmd/config"
	"github.com/decomizer/storefront/constant"
	"github.com/decomizer/storefront/model"
	dashboardrepo "github.com/decomizer/storefront/repository/dashboard"
	redisrepo "github.com/decomizer/storefront/repository/redis"
	"github.com/decomizer/storefront/utils/errors"
	"github.com/decomizer/storefront/utils/logger"
	"go.uber.org/zap"
)

const dayLayout = "2006-01-02"

type DashboardApp interface {
	// GetDashboard computes a fresh snapshot on every call.
	GetDashboard(ctx context.Context) (*model.DashboardData, error)
}

type dashboardAppImpl struct {
	config        *config.Config
	dashboardRepo dashboardrepo.DashboardRepository
	redisRepo     redisrepo.RedisRepository
	now           func() time.Time
}

func NewDashboardApp(config *config.Config, dashboardRepo dashboardrepo.DashboardRepository, redisRepo redisrepo.RedisRepository, now func() time.Time) DashboardApp {
	if now == nil {
		now = time.Now
	}
	return &dashboardAppImpl{config: config, dashboardRepo: dashboardRepo, redisRepo: redisRepo, now: now}
}

// reportingDays lists the window's days oldest first, the last one is today.
func reportingDays(today time.Time, n int) []string {
	days := make([]string, n)
	for i := 0; i < n; i++ {
		days[i] = today.AddDate(0, 0, i-n+1).Format(dayLayout)
	}
	return days
}

// RevenueGrowth is the relative change of recent against previous revenue, in percent.
func RevenueGrowth(recent, previous float64) float64 {
	if previous == 0 {
		if recent > 0 {
			return 100
		}
		return 0
	}
	return (recent - previous) / previous * 100
}

func (s *dashboardAppImpl) window() int {
	if s.config.Dashboard.ReportingDays <= 0 {
		return 30
	}
	return s.config.Dashboard.ReportingDays
}

func (s *dashboardAppImpl) topLimit() int {
	if s.config.Dashboard.TopProductsLimit <= 0 {
		return 10
	}
	return s.config.Dashboard.TopProductsLimit
}

func (s *dashboardAppImpl) GetDashboard(ctx context.Context) (*model.DashboardData, error) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	n := s.window()
	windowStart := today.AddDate(0, 0, -n+1)
	previousStart := windowStart.AddDate(0, 0, -n)
	days := reportingDays(today, n)

	fail := func(op string, err error) (*model.DashboardData, error) {
		logger.Error("[GetDashboard] err "+op, zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrDashboardUnavailable)
	}

	counts, err := s.dashboardRepo.GetEntityCounts(ctx)
	if err != nil {
		return fail("GetEntityCounts", err)
	}
	totalRevenue, err := s.dashboardRepo.GetTotalRevenue(ctx)
	if err != nil {
		return fail("GetTotalRevenue", err)
	}
	recentRevenue, err := s.dashboardRepo.GetRevenueBetween(ctx, windowStart, now)
	if err != nil {
		return fail("GetRevenueBetween recent", err)
	}
	previousRevenue, err := s.dashboardRepo.GetRevenueBetween(ctx, previousStart, windowStart)
	if err != nil {
		return fail("GetRevenueBetween previous", err)
	}
	recentUsers, err := s.dashboardRepo.CountUsersSince(ctx, windowStart)
	if err != nil {
		return fail("CountUsersSince", err)
	}
	statusCounts, err := s.dashboardRepo.GetOrderStatusCounts(ctx)
	if err != nil {
		return fail("GetOrderStatusCounts", err)
	}
	dailyRevenue, err := s.dashboardRepo.GetDailyRevenue(ctx, windowStart)
	if err != nil {
		return fail("GetDailyRevenue", err)
	}
	userGrowth, err := s.dashboardRepo.GetUserGrowth(ctx, windowStart)
	if err != nil {
		return fail("GetUserGrowth", err)
	}
	stateMetrics, err := s.dashboardRepo.GetStateMetrics(ctx)
	if err != nil {
		return fail("GetStateMetrics", err)
	}
	topProducts, err := s.dashboardRepo.GetTopProducts(ctx, windowStart, s.topLimit())
	if err != nil {
		return fail("GetTopProducts", err)
	}
	visits, err := s.redisRepo.GetVisits(ctx, days)
	if err != nil {
		return fail("GetVisits", err)
	}

	orderStatusCounts := make(map[string]int64, len(statusCounts))
	for _, sc := range statusCounts {
		orderStatusCounts[sc.Status] = sc.Count
	}

	return &model.DashboardData{
		TotalOrders:         counts.TotalOrders,
		TotalRevenue:        totalRevenue,
		RecentRevenue:       recentRevenue,
		RevenueGrowth:       RevenueGrowth(recentRevenue, previousRevenue),
		ActiveBanners:       counts.ActiveBanners,
		TotalUsers:          counts.TotalUsers,
		RecentUsers:         recentUsers,
		OrderStatusCounts:   orderStatusCounts,
		ActiveAnnouncements: counts.ActiveAnnouncements,
		ActiveProducts:      counts.ActiveProducts,
		ActiveCoupons:       counts.ActiveCoupons,
		ActiveFeatureVideos: counts.ActiveFeatureVideos,
		StateWiseData:       stateMetrics,
		DailyVisits:         fillVisits(days, visits),
		DailyRevenue:        fillRevenue(days, dailyRevenue),
		UserGrowth:          fillUsers(days, userGrowth),
		TopProducts:         topProducts,
	}, nil
}

func fillVisits(days []string, counts []int64) []model.DailyVisits {
	res := make([]model.DailyVisits, len(days))
	for i, d := range days {
		res[i] = model.DailyVisits{Date: d}
		if i < len(counts) {
			res[i].Visits = counts[i]
		}
	}
	return res
}

func fillRevenue(days []string, rows []model.DailyRevenue) []model.DailyRevenue {
	byDay := make(map[string]float64, len(rows))
	for _, r := range rows {
		byDay[r.Date] += r.Revenue
	}
	res := make([]model.DailyRevenue, len(days))
	for i, d := range days {
		res[i] = model.DailyRevenue{Date: d, Revenue: byDay[d]}
	}
	return res
}

func fillUsers(days []string, rows []model.DailyUsers) []model.DailyUsers {
	byDay := make(map[string]int64, len(rows))
	for _, r := range rows {
		byDay[r.Date] += r.Users
	}
	res := make([]model.DailyUsers, len(days))
	for i, d := range days {
		res[i] = model.DailyUsers{Date: d, Users: byDay[d]}
	}
	return res
}
