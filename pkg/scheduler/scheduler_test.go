package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/feedsync/pkg/domain"
)

type refresherFunc func(ctx context.Context, opts RefreshOptions) domain.BatchResult

func (f refresherFunc) RefreshAll(ctx context.Context, opts RefreshOptions) domain.BatchResult {
	return f(ctx, opts)
}

func TestNewScheduler_Defaults(t *testing.T) {
	s := NewScheduler(Params{})
	assert.Equal(t, DefaultUpdateInterval, s.updateInterval)

	s = NewScheduler(Params{UpdateInterval: time.Minute, MaxConcurrent: 4, ProxySync: true})
	assert.Equal(t, time.Minute, s.updateInterval)
	assert.Equal(t, 4, s.maxConcurrent)
	assert.True(t, s.proxySync)
}

func TestScheduler_StartStop(t *testing.T) {
	var mu sync.Mutex
	var calls []RefreshOptions
	refresher := refresherFunc(func(_ context.Context, opts RefreshOptions) domain.BatchResult {
		mu.Lock()
		calls = append(calls, opts)
		mu.Unlock()
		return domain.BatchResult{SuccessCount: 1}
	})

	var completed int
	s := NewScheduler(Params{Refresher: refresher, UpdateInterval: 50 * time.Millisecond, MaxConcurrent: 2, ProxySync: true,
		OnComplete: func(domain.BatchResult) {
			mu.Lock()
			completed++
			mu.Unlock()
		}})

	s.Start(context.Background())
	s.Start(context.Background()) // second start is ignored
	time.Sleep(120 * time.Millisecond)
	s.Stop()

	mu.Lock()
	n := len(calls)
	assert.GreaterOrEqual(t, n, 2, "immediate run plus at least one tick")
	assert.Equal(t, n, completed)
	assert.Equal(t, RefreshOptions{MaxConcurrent: 2, FullProxySync: true}, calls[0])
	mu.Unlock()

	// no more runs after stop
	time.Sleep(80 * time.Millisecond)
	mu.Lock()
	assert.Len(t, calls, n)
	mu.Unlock()

	s.Stop() // second stop is safe
}

func TestScheduler_RunOnce(t *testing.T) {
	want := domain.BatchResult{SuccessCount: 1, FailedCount: 1, Errors: []domain.SourceError{{SourceName: "x", Message: "boom"}}}
	s := NewScheduler(Params{Refresher: refresherFunc(func(context.Context, RefreshOptions) domain.BatchResult { return want })})
	assert.Equal(t, want, s.RunOnce(context.Background()))
}
