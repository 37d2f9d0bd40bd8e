package dashboard_test

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/decomizer/storefront/constant"
	"github.com/decomizer/storefront/model"
	"github.com/decomizer/storefront/view/dashboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingFetcher struct {
	calls int32
}

func (f *countingFetcher) Fetch(ctx context.Context) (*model.DashboardData, error) {
	atomic.AddInt32(&f.calls, 1)
	return &model.DashboardData{}, nil
}

func TestRender(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("loading", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, dashboard.Render(&buf, dashboard.Snapshot{}, now))
		assert.Equal(t, "Loading dashboard...\n", buf.String())
	})

	t.Run("error", func(t *testing.T) {
		var buf bytes.Buffer
		snap := dashboard.Snapshot{State: dashboard.StateError, Err: errors.New("Failed to fetch dashboard data")}
		require.NoError(t, dashboard.Render(&buf, snap, now))
		assert.Equal(t, "Error: Failed to fetch dashboard data\n", buf.String())
	})

	t.Run("ready", func(t *testing.T) {
		var buf bytes.Buffer
		snap := dashboard.Snapshot{
			State:     dashboard.StateReady,
			FetchedAt: now,
			Data: &model.DashboardData{
				TotalOrders:       12,
				OrderStatusCounts: map[string]int64{"pending": 3},
				DailyVisits: []model.DailyVisits{
					{Date: "2026-03-09", Visits: 9},
					{Date: "2026-03-10", Visits: 2},
				},
				TopProducts: []model.TopProduct{
					{Name: "Silk Duvet", OrderCount: 4, PaymentStatus: constant.PaymentStatusCompleted},
					{Name: "Linen Sheet", OrderCount: 8, PaymentStatus: constant.PaymentStatusPending},
				},
			},
		}
		require.NoError(t, dashboard.Render(&buf, snap, now))

		out := buf.String()
		assert.Contains(t, out, "Total orders")
		assert.Contains(t, out, "peak 9")
		assert.Contains(t, out, "today 2")
		assert.Contains(t, out, "pending")
		assert.Contains(t, out, "Silk Duvet")
		assert.NotContains(t, out, "Linen Sheet")
	})
}
