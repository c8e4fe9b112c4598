package routing

import (
	"sync"

	"github.com/lucasmendis/supplyline/internal/domain/logistics"
)

// RouteEventBus provides pub/sub for route configuration changes.
// Notification is pull-based: receiving an event only tells a consumer to
// re-read the resolver's state. Thread-safe, supports multiple subscribers
// per facility, and uses buffered channels so a slow subscriber never blocks
// a refresh.
type RouteEventBus struct {
	mu sync.RWMutex
	// subscribers[facilityID.String()] = []channels
	subscribers map[string][]chan logistics.RoutesChangedEvent
}

// Compile-time interface check
var _ logistics.RouteEventPublisher = (*RouteEventBus)(nil)

// NewRouteEventBus creates an event bus for route changes
func NewRouteEventBus() *RouteEventBus {
	return &RouteEventBus{
		subscribers: make(map[string][]chan logistics.RoutesChangedEvent),
	}
}

// PublishRoutesChanged delivers an event to every subscriber of the facility.
// Implements RouteEventPublisher.
func (b *RouteEventBus) PublishRoutesChanged(event logistics.RoutesChangedEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers[event.FacilityID.String()] {
		// Non-blocking send - skip if channel buffer is full
		select {
		case ch <- event:
		default:
		}
	}
}

// Subscribe registers for route changes of a specific facility. Returns a
// channel that receives events. Caller must Unsubscribe when done.
func (b *RouteEventBus) Subscribe(facilityID string) <-chan logistics.RoutesChangedEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan logistics.RoutesChangedEvent, 1)
	b.subscribers[facilityID] = append(b.subscribers[facilityID], ch)
	return ch
}

// Unsubscribe removes a subscription and closes its channel
func (b *RouteEventBus) Unsubscribe(facilityID string, ch <-chan logistics.RoutesChangedEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	channels := b.subscribers[facilityID]
	for i, c := range channels {
		if c == ch {
			close(c)
			channels[i] = channels[len(channels)-1]
			b.subscribers[facilityID] = channels[:len(channels)-1]
			break
		}
	}

	if len(b.subscribers[facilityID]) == 0 {
		delete(b.subscribers, facilityID)
	}
}

// SubscriberCount returns the number of subscribers for a facility.
// Useful for testing and monitoring.
func (b *RouteEventBus) SubscriberCount(facilityID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers[facilityID])
}
