package dashboard

import (
	"math"
	"sort"
	"time"

	"github.com/decomizer/storefront/constant"
	"github.com/decomizer/storefront/model"
)

type VisitStats struct {
	Peak    int64
	Average int64
	Total   int64
	Today   int64
}

// ComputeVisitStats derives the visit summary. today is matched against the
// entry dates as a UTC calendar day.
func ComputeVisitStats(visits []model.DailyVisits, today time.Time) VisitStats {
	var stats VisitStats
	if len(visits) == 0 {
		return stats
	}
	day := today.UTC().Format("2006-01-02")
	for i, v := range visits {
		if i == 0 || v.Visits > stats.Peak {
			stats.Peak = v.Visits
		}
		stats.Total += v.Visits
		if v.Date == day {
			stats.Today = v.Visits
		}
	}
	stats.Average = int64(math.Round(float64(stats.Total) / float64(len(visits))))
	return stats
}

type ProductShare struct {
	Name       string
	OrderCount int64
	// Share is the percentage of the completed order total.
	Share float64
}

// CompletedTopProducts keeps products with a completed payment, in input order.
func CompletedTopProducts(products []model.TopProduct) []ProductShare {
	var total int64
	res := make([]ProductShare, 0, len(products))
	for _, p := range products {
		if p.PaymentStatus != constant.PaymentStatusCompleted {
			continue
		}
		total += p.OrderCount
		res = append(res, ProductShare{Name: p.Name, OrderCount: p.OrderCount})
	}
	if total == 0 {
		return res
	}
	for i := range res {
		res[i].Share = float64(res[i].OrderCount) / float64(total) * 100
	}
	return res
}

type StatusCount struct {
	Status string
	Count  int64
}

func SortedStatusCounts(counts map[string]int64) []StatusCount {
	res := make([]StatusCount, 0, len(counts))
	for status, n := range counts {
		res = append(res, StatusCount{Status: status, Count: n})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Status < res[j].Status })
	return res
}
