package dashboard_test

import (
	"testing"
	"time"

	"github.com/decomizer/storefront/constant"
	"github.com/decomizer/storefront/model"
	"github.com/decomizer/storefront/view/dashboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeVisitStats(t *testing.T) {
	today := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		visits []model.DailyVisits
		want   dashboard.VisitStats
	}{
		{
			name: "three days",
			visits: []model.DailyVisits{
				{Date: "2026-03-08", Visits: 5},
				{Date: "2026-03-09", Visits: 9},
				{Date: "2026-03-10", Visits: 2},
			},
			want: dashboard.VisitStats{Peak: 9, Average: 5, Total: 16, Today: 2},
		},
		{
			name:   "empty series",
			visits: nil,
			want:   dashboard.VisitStats{},
		},
		{
			name: "today missing",
			visits: []model.DailyVisits{
				{Date: "2026-03-08", Visits: 3},
				{Date: "2026-03-09", Visits: 4},
			},
			want: dashboard.VisitStats{Peak: 4, Average: 4, Total: 7, Today: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dashboard.ComputeVisitStats(tt.visits, today))
		})
	}
}

func TestComputeVisitStatsMatchesUTCDay(t *testing.T) {
	// 01:00 in UTC+7 is still the previous day in UTC
	local := time.Date(2026, 3, 11, 1, 0, 0, 0, time.FixedZone("WIB", 7*3600))
	visits := []model.DailyVisits{
		{Date: "2026-03-10", Visits: 6},
		{Date: "2026-03-11", Visits: 1},
	}

	assert.Equal(t, int64(6), dashboard.ComputeVisitStats(visits, local).Today)
}

func TestCompletedTopProducts(t *testing.T) {
	products := []model.TopProduct{
		{Name: "Silk Duvet", OrderCount: 30, PaymentStatus: constant.PaymentStatusCompleted},
		{Name: "Linen Sheet", OrderCount: 50, PaymentStatus: constant.PaymentStatusPending},
		{Name: "Cotton Pillow", OrderCount: 10, PaymentStatus: constant.PaymentStatusCompleted},
	}

	res := dashboard.CompletedTopProducts(products)

	require.Len(t, res, 2)
	assert.Equal(t, "Silk Duvet", res[0].Name)
	assert.InDelta(t, 75.0, res[0].Share, 0.001)
	assert.Equal(t, "Cotton Pillow", res[1].Name)
	assert.InDelta(t, 25.0, res[1].Share, 0.001)
}

func TestCompletedTopProductsNoneCompleted(t *testing.T) {
	res := dashboard.CompletedTopProducts([]model.TopProduct{
		{Name: "Linen Sheet", OrderCount: 5, PaymentStatus: constant.PaymentStatusFailed},
	})

	assert.Empty(t, res)
}

func TestSortedStatusCounts(t *testing.T) {
	res := dashboard.SortedStatusCounts(map[string]int64{"shipping": 2, "cancelled": 1, "pending": 4})

	assert.Equal(t, []dashboard.StatusCount{
		{Status: "cancelled", Count: 1},
		{Status: "pending", Count: 4},
		{Status: "shipping", Count: 2},
	}, res)
}
