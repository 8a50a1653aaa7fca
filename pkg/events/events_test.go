package events

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_SubscribeEmit(t *testing.T) {
	bus := New()

	var got []Event
	unsub := bus.Subscribe(func(e Event) { got = append(got, e) })

	bus.Emit(Event{Type: SourceRefreshed, SourceID: 10})
	bus.Emit(Event{Type: ArticleRead, ArticleID: 5, Reason: "user"})

	require.Len(t, got, 2)
	assert.Equal(t, SourceRefreshed, got[0].Type)
	assert.Equal(t, int64(10), got[0].SourceID)
	assert.False(t, got[0].At.IsZero(), "timestamp should be set on emit")
	assert.Equal(t, int64(5), got[1].ArticleID)
	assert.Equal(t, "user", got[1].Reason)

	unsub()
	unsub() // second call is a no-op
	bus.Emit(Event{Type: StatsUpdated})
	assert.Len(t, got, 2, "no events after unsubscribe")
	assert.Equal(t, 0, bus.Subscribers())
	assert.Equal(t, uint64(3), bus.Emitted())
}

func TestBus_HandlersCalledInOrder(t *testing.T) {
	bus := New()
	var order []int
	for i := 1; i <= 3; i++ {
		bus.Subscribe(func(Event) { order = append(order, i) })
	}
	bus.Emit(Event{Type: StatsUpdated})
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestBus_PanickingHandler(t *testing.T) {
	bus := New()
	called := false
	bus.Subscribe(func(Event) { panic("boom") })
	bus.Subscribe(func(Event) { called = true })

	assert.NotPanics(t, func() { bus.Emit(Event{Type: SourceUpdated}) })
	assert.True(t, called, "second handler should still be called")
}

func TestBus_SyncInProgress(t *testing.T) {
	bus := New()
	assert.False(t, bus.SyncInProgress())

	bus.Emit(Event{Type: BatchSyncStart})
	assert.True(t, bus.SyncInProgress())

	bus.Emit(Event{Type: BatchSyncStart}) // overlapping batch is allowed
	bus.Emit(Event{Type: BatchSyncEnd})
	assert.True(t, bus.SyncInProgress())

	bus.Emit(Event{Type: BatchSyncEnd})
	assert.False(t, bus.SyncInProgress())

	bus.Emit(Event{Type: BatchSyncEnd}) // unbalanced end doesn't go negative
	assert.False(t, bus.SyncInProgress())
	bus.Emit(Event{Type: BatchSyncStart})
	assert.True(t, bus.SyncInProgress())
}

func TestBus_SubscribeChan(t *testing.T) {
	bus := New()
	ch, unsub := bus.SubscribeChan(2)

	bus.Emit(Event{Type: SourceRefreshed, SourceID: 1})
	bus.Emit(Event{Type: SourceRefreshed, SourceID: 2})
	bus.Emit(Event{Type: SourceRefreshed, SourceID: 3}) // dropped, buffer is full

	e := <-ch
	assert.Equal(t, int64(1), e.SourceID)
	e = <-ch
	assert.Equal(t, int64(2), e.SourceID)

	select {
	case e := <-ch:
		t.Fatalf("unexpected event %+v", e)
	case <-time.After(10 * time.Millisecond):
	}

	unsub()
	_, ok := <-ch
	assert.False(t, ok, "channel should be closed")
	assert.NotPanics(t, func() { bus.Emit(Event{Type: StatsUpdated}) })
	unsub()
}

func TestBus_Concurrent(t *testing.T) {
	bus := New()
	var mu sync.Mutex
	count := 0
	bus.Subscribe(func(Event) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unsub := bus.Subscribe(func(Event) {})
			bus.Emit(Event{Type: StatsUpdated})
			unsub()
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, count)
	assert.Equal(t, 1, bus.Subscribers())
}

func TestDefault_Reset(t *testing.T) {
	b1 := Default()
	b1.Subscribe(func(Event) {})
	b2 := ResetDefault()
	assert.NotSame(t, b1, b2)
	assert.Same(t, b2, Default())
	assert.Equal(t, 0, Default().Subscribers())

	b2.Subscribe(func(Event) {})
	b2.Emit(Event{Type: BatchSyncStart})
	b2.Reset()
	assert.Equal(t, 0, b2.Subscribers())
	assert.False(t, b2.SyncInProgress())
	assert.Equal(t, uint64(0), b2.Emitted())
}
