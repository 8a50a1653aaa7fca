package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedsync/pkg/domain"
)

// DefaultUpdateInterval is used when no interval configured
const DefaultUpdateInterval = 30 * time.Minute

// Refresher is the orchestrator part used by the scheduler
type Refresher interface {
	RefreshAll(ctx context.Context, opts RefreshOptions) domain.BatchResult
}

// Params defines scheduler parameters
type Params struct {
	Refresher      Refresher
	UpdateInterval time.Duration
	MaxConcurrent  int
	ProxySync      bool // pull everything the proxy server has on each run
	OnComplete     func(res domain.BatchResult)
}

// Scheduler runs periodic refreshes of all active sources
type Scheduler struct {
	refresher      Refresher
	updateInterval time.Duration
	maxConcurrent  int
	proxySync      bool
	onComplete     func(res domain.BatchResult)

	wg     sync.WaitGroup
	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewScheduler creates a new scheduler instance
func NewScheduler(params Params) *Scheduler {
	if params.UpdateInterval <= 0 {
		params.UpdateInterval = DefaultUpdateInterval
	}
	return &Scheduler{
		refresher:      params.Refresher,
		updateInterval: params.UpdateInterval,
		maxConcurrent:  params.MaxConcurrent,
		proxySync:      params.ProxySync,
		onComplete:     params.OnComplete,
	}
}

// Start begins periodic refreshes, the first one runs immediately. Start on a running scheduler is a no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.updateWorker(ctx)
	lgr.Printf("[INFO] scheduler started with update interval %v", s.updateInterval)
}

// Stop gracefully stops the scheduler and waits for the running refresh to finish
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// RunOnce performs a single refresh of all active sources
func (s *Scheduler) RunOnce(ctx context.Context) domain.BatchResult {
	res := s.refresher.RefreshAll(ctx, RefreshOptions{MaxConcurrent: s.maxConcurrent, FullProxySync: s.proxySync})
	for _, e := range res.Errors {
		lgr.Printf("[WARN] refresh of %s failed: %s", e.SourceName, e.Message)
	}
	if s.onComplete != nil {
		s.onComplete(res)
	}
	return res
}

// updateWorker periodically refreshes all active sources
func (s *Scheduler) updateWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	// run immediately on start
	s.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}
