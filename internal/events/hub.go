// A broadcast hub for state-change events. Views subscribe instead of
// holding callbacks into the console, so mutation and rendering stay
// decoupled.

package events

import "time"

// Scope names the slice of console state an event refers to.
type Scope string

const (
	ScopeCatalog       Scope = "catalog"
	ScopeChapters      Scope = "chapters"
	ScopeUsers         Scope = "users"
	ScopeComments      Scope = "comments"
	ScopeNotifications Scope = "notifications"
	ScopeConfirm       Scope = "confirm"
	ScopeNav           Scope = "nav"
	ScopeSettings      Scope = "settings"
	ScopeInsight       Scope = "insight"
)

// Event is a single change notice.
type Event struct {
	Scope Scope     `json:"scope"`
	At    time.Time `json:"at"`
}

// Hub maintains the set of active subscribers and broadcasts events to
// them. All bookkeeping happens on the Run goroutine.
type Hub struct {
	subscribers map[chan Event]bool

	subscribe   chan chan Event
	unsubscribe chan chan Event
	events      chan Event
	quit        chan struct{}
}

// subscriber channels are buffered; a subscriber that falls this far
// behind is dropped rather than blocking dispatch.
const subscriberBuffer = 16

// NewHub creates a Hub. Call Run on its own goroutine before publishing.
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[chan Event]bool),
		subscribe:   make(chan chan Event),
		unsubscribe: make(chan chan Event),
		events:      make(chan Event, subscriberBuffer),
		quit:        make(chan struct{}),
	}
}

// Run processes subscriptions and broadcasts until Close is called.
func (h *Hub) Run() {
	for {
		select {
		case ch := <-h.subscribe:
			h.subscribers[ch] = true
		case ch := <-h.unsubscribe:
			if h.subscribers[ch] {
				delete(h.subscribers, ch)
				close(ch)
			}
		case ev := <-h.events:
			for ch := range h.subscribers {
				select {
				case ch <- ev:
				default:
					delete(h.subscribers, ch)
					close(ch)
				}
			}
		case <-h.quit:
			for ch := range h.subscribers {
				delete(h.subscribers, ch)
				close(ch)
			}
			return
		}
	}
}

// Subscribe registers a new listener and returns its event channel.
func (h *Hub) Subscribe() chan Event {
	ch := make(chan Event, subscriberBuffer)
	select {
	case h.subscribe <- ch:
	case <-h.quit:
		close(ch)
	}
	return ch
}

// Unsubscribe removes a listener; its channel is closed by the hub.
func (h *Hub) Unsubscribe(ch chan Event) {
	select {
	case h.unsubscribe <- ch:
	case <-h.quit:
	}
}

// Publish broadcasts an event for the given scope. Publishing never
// blocks the caller; if the hub's intake is full the event is dropped.
func (h *Hub) Publish(scope Scope) {
	ev := Event{Scope: scope, At: time.Now()}
	select {
	case h.events <- ev:
	default:
	}
}

// Close shuts the hub down and closes all subscriber channels.
func (h *Hub) Close() {
	close(h.quit)
}
