package realtime

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// Event is the payload pushed to a connected client when one of their
// applications is shortlisted.
type Event struct {
	Message       string    `json:"message"`
	ApplicationID uuid.UUID `json:"applicationId"`
}

// Publisher is the capability the services receive for best-effort push.
// Implementations must never block or fail the caller.
type Publisher interface {
	Publish(userID uuid.UUID, event Event)
}

// Hub is an in-process registry of per-user event channels. Delivery is
// best-effort: events addressed to a user with no active subscription, or
// whose subscription buffer is full, are dropped. The notification log is
// the durable record; clients reconcile by fetching it on reconnect.
type Hub struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]map[chan Event]struct{}
}

// Compile-time check to ensure Hub implements Publisher
var _ Publisher = (*Hub)(nil)

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{
		subs: make(map[uuid.UUID]map[chan Event]struct{}),
	}
}

// subscriberBuffer bounds how many undelivered events a slow connection may
// hold before further events are dropped for it.
const subscriberBuffer = 16

// Subscribe registers a channel for the user's events. The returned cancel
// function removes the subscription and closes the channel; it is safe to
// call once.
func (h *Hub) Subscribe(userID uuid.UUID) (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[chan Event]struct{})
	}
	h.subs[userID][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if set, ok := h.subs[userID]; ok {
			if _, ok := set[ch]; ok {
				delete(set, ch)
				close(ch)
			}
			if len(set) == 0 {
				delete(h.subs, userID)
			}
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers the event to every active subscription for the user.
// It never blocks: a full subscriber buffer means the event is dropped for
// that subscriber.
func (h *Hub) Publish(userID uuid.UUID, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	set, ok := h.subs[userID]
	if !ok {
		return
	}
	for ch := range set {
		select {
		case ch <- event:
		default:
			log.Printf("Hub: dropping event for user %s (subscriber buffer full)", userID)
		}
	}
}

// SubscriberCount reports how many active subscriptions a user has.
func (h *Hub) SubscriberCount(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[userID])
}
