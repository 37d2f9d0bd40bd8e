package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/decomizer/storefront/model"
	"github.com/decomizer/storefront/utils/logger"
	"go.uber.org/zap"
)

const DefaultInterval = 5 * time.Minute

type State int

const (
	StateLoading State = iota
	StateError
	StateReady
)

func (s State) String() string {
	switch s {
	case StateError:
		return "error"
	case StateReady:
		return "ready"
	default:
		return "loading"
	}
}

// Snapshot is what the view currently shows. Data is nil unless State is ready.
type Snapshot struct {
	State     State
	Data      *model.DashboardData
	Err       error
	FetchedAt time.Time
}

type Option func(*View)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(v *View) { v.now = now }
}

// WithOnUpdate registers a callback invoked after every fetch, on the Run goroutine.
func WithOnUpdate(fn func(Snapshot)) Option {
	return func(v *View) { v.onUpdate = fn }
}

// View polls the dashboard endpoint and keeps the latest snapshot.
type View struct {
	fetcher  Fetcher
	interval time.Duration
	now      func() time.Time
	onUpdate func(Snapshot)

	mu   sync.RWMutex
	snap Snapshot
}

func NewView(fetcher Fetcher, interval time.Duration, opts ...Option) *View {
	if interval <= 0 {
		interval = DefaultInterval
	}
	v := &View{fetcher: fetcher, interval: interval, now: time.Now}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *View) Snapshot() Snapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.snap
}

// Refresh performs one fetch and replaces the snapshot. A failed fetch drops
// the previous data.
func (v *View) Refresh(ctx context.Context) Snapshot {
	data, err := v.fetcher.Fetch(ctx)
	v.apply(data, err)
	return v.Snapshot()
}

// Run fetches immediately and then once per interval until ctx is done.
// The ticker is stopped before Run returns.
func (v *View) Run(ctx context.Context) error {
	ticker := time.NewTicker(v.interval)
	defer ticker.Stop()

	if ctx.Err() != nil {
		return nil
	}
	v.refreshUnlessDone(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			v.refreshUnlessDone(ctx)
		}
	}
}

// refreshUnlessDone skips publishing a result that only reports the cancellation.
func (v *View) refreshUnlessDone(ctx context.Context) {
	data, err := v.fetcher.Fetch(ctx)
	if ctx.Err() != nil {
		return
	}
	v.apply(data, err)
}

func (v *View) apply(data *model.DashboardData, err error) {
	next := Snapshot{FetchedAt: v.now()}
	if err != nil {
		logger.Error("[DashboardView] err fetch", zap.String("error", err.Error()))
		next.State = StateError
		next.Err = err
	} else {
		next.State = StateReady
		next.Data = data
	}

	v.mu.Lock()
	v.snap = next
	v.mu.Unlock()

	if v.onUpdate != nil {
		v.onUpdate(next)
	}
}
