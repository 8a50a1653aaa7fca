// Package events implements the process-wide pub/sub bus used to invalidate UI caches
// after store mutations. Handlers are called synchronously from Emit, channel subscribers
// receive events without blocking the emitter and drop them when their buffer is full.
package events

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"
)

// Type is the event tag
type Type string

// event types
const (
	SourceRefreshed     Type = "sourceRefreshed"
	AllSourcesRefreshed Type = "allSourcesRefreshed"
	SourceDeleted       Type = "sourceDeleted"
	SourceUpdated       Type = "sourceUpdated"
	ArticlesCleared     Type = "articlesCleared"
	StatsUpdated        Type = "statsUpdated"
	BatchSyncStart      Type = "batchSyncStart"
	BatchSyncEnd        Type = "batchSyncEnd"
	ArticleRead         Type = "articleRead"
)

// Event is a change notification, optional fields are zero when not relevant
type Event struct {
	Type      Type      `json:"type"`
	SourceID  int64     `json:"source_id,omitempty"`
	SourceIDs []int64   `json:"source_ids,omitempty"`
	ArticleID int64     `json:"article_id,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	At        time.Time `json:"at"`
}

// Handler receives emitted events
type Handler func(Event)

// Bus distributes events to subscribers
type Bus struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	order    []string // subscription order, handlers are called in it

	emitted    atomic.Uint64
	batchDepth atomic.Int32
}

// New makes an empty bus
func New() *Bus {
	return &Bus{handlers: make(map[string]Handler)}
}

var (
	defaultBus  = New()
	defaultLock sync.Mutex
)

// Default returns the process-wide bus instance
func Default() *Bus {
	defaultLock.Lock()
	defer defaultLock.Unlock()
	return defaultBus
}

// ResetDefault replaces the process-wide bus with an empty one, used for test isolation
func ResetDefault() *Bus {
	defaultLock.Lock()
	defer defaultLock.Unlock()
	defaultBus = New()
	return defaultBus
}

// Subscribe registers handler and returns the function removing it.
// Calling the returned function more than once is safe.
func (b *Bus) Subscribe(h Handler) (unsubscribe func()) {
	id := uuid.NewString()

	b.mu.Lock()
	b.handlers[id] = h
	b.order = append(b.order, id)
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

// SubscribeChan registers a buffered channel subscriber. Events are dropped for this
// subscriber if the buffer is full. The returned function unsubscribes and closes the channel.
func (b *Bus) SubscribeChan(size int) (events <-chan Event, unsubscribe func()) {
	if size <= 0 {
		size = 16
	}
	ch := make(chan Event, size)
	var mu sync.Mutex
	closed := false
	unsub := b.Subscribe(func(e Event) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		select {
		case ch <- e:
		default:
			lgr.Printf("[DEBUG] event %s dropped, subscriber buffer is full", e.Type)
		}
	})

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			unsub()
			mu.Lock()
			closed = true
			close(ch)
			mu.Unlock()
		})
	}
}

// Emit delivers event to all current subscribers, in subscription order.
// A panicking handler is recovered and doesn't affect other handlers.
func (b *Bus) Emit(e Event) {
	if e.At.IsZero() {
		e.At = time.Now()
	}

	switch e.Type {
	case BatchSyncStart:
		b.batchDepth.Add(1)
	case BatchSyncEnd:
		if b.batchDepth.Add(-1) < 0 {
			b.batchDepth.Store(0)
		}
	}
	b.emitted.Add(1)

	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.order))
	for _, id := range b.order {
		handlers = append(handlers, b.handlers[id])
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		b.call(h, e)
	}
}

// SyncInProgress reports whether a batch sync is active. It is advisory only,
// callers may use it to suppress redundant refresh triggers.
func (b *Bus) SyncInProgress() bool {
	return b.batchDepth.Load() > 0
}

// Emitted returns the number of events emitted so far
func (b *Bus) Emitted() uint64 {
	return b.emitted.Load()
}

// Subscribers returns the number of active subscribers
func (b *Bus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers)
}

// Reset removes all subscribers and clears counters
func (b *Bus) Reset() {
	b.mu.Lock()
	b.handlers = make(map[string]Handler)
	b.order = nil
	b.mu.Unlock()
	b.emitted.Store(0)
	b.batchDepth.Store(0)
}

func (b *Bus) remove(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.handlers, id)
	for i, v := range b.order {
		if v == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

func (b *Bus) call(h Handler, e Event) {
	defer func() {
		if r := recover(); r != nil {
			lgr.Printf("[WARN] event handler for %s panicked: %v", e.Type, r)
		}
	}()
	h(e)
}
