package dashboard

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// Render writes a plain text rendition of snap.
func Render(w io.Writer, snap Snapshot, now time.Time) error {
	switch snap.State {
	case StateLoading:
		_, err := fmt.Fprintln(w, "Loading dashboard...")
		return err
	case StateError:
		_, err := fmt.Fprintf(w, "Error: %v\n", snap.Err)
		return err
	}

	d := snap.Data
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Dashboard\tupdated %s\n", snap.FetchedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(tw, "Total orders\t%d\n", d.TotalOrders)
	fmt.Fprintf(tw, "Total revenue\t%.2f\n", d.TotalRevenue)
	fmt.Fprintf(tw, "Recent revenue\t%.2f (%+.1f%%)\n", d.RecentRevenue, d.RevenueGrowth)
	fmt.Fprintf(tw, "Users\t%d (%d new)\n", d.TotalUsers, d.RecentUsers)
	fmt.Fprintf(tw, "Active products\t%d\n", d.ActiveProducts)
	fmt.Fprintf(tw, "Active banners\t%d\n", d.ActiveBanners)
	fmt.Fprintf(tw, "Active announcements\t%d\n", d.ActiveAnnouncements)
	fmt.Fprintf(tw, "Active coupons\t%d\n", d.ActiveCoupons)
	fmt.Fprintf(tw, "Active feature videos\t%d\n", d.ActiveFeatureVideos)

	vs := ComputeVisitStats(d.DailyVisits, now)
	fmt.Fprintf(tw, "\nVisits\tpeak %d\tavg %d\ttotal %d\ttoday %d\n", vs.Peak, vs.Average, vs.Total, vs.Today)

	fmt.Fprintln(tw, "\nOrder status")
	for _, sc := range SortedStatusCounts(d.OrderStatusCounts) {
		fmt.Fprintf(tw, "  %s\t%d\n", sc.Status, sc.Count)
	}

	fmt.Fprintln(tw, "\nTop products")
	for _, p := range CompletedTopProducts(d.TopProducts) {
		fmt.Fprintf(tw, "  %s\t%d\t%.1f%%\n", p.Name, p.OrderCount, p.Share)
	}

	return tw.Flush()
}
