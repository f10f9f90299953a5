// Transient toast notifications. Each notification expires on its own
// timer, measured from its enqueue time; dismissing one early stops that
// timer so the later expiry cannot remove a second record.

package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level is the severity of a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// DefaultTTL is how long a notification stays visible before it expires.
const DefaultTTL = 4 * time.Second

// Notification is a single transient message.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Level     Level     `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

// Notifier holds the ordered queue of live notifications. The queue is
// unbounded; depth is limited only by the expiry timers.
type Notifier struct {
	mu       sync.Mutex
	ttl      time.Duration
	items    []Notification
	timers   map[string]*time.Timer
	onChange func()
	closed   bool
}

// New creates a Notifier whose notifications expire after ttl. A
// non-positive ttl falls back to DefaultTTL.
func New(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Notifier{
		ttl:    ttl,
		timers: make(map[string]*time.Timer),
	}
}

// SetOnChange registers a hook invoked after every queue mutation. Used
// by the console to publish change events.
func (n *Notifier) SetOnChange(fn func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onChange = fn
}

// Push appends a notification and arms its expiry timer.
func (n *Notifier) Push(message string, level Level) Notification {
	n.mu.Lock()

	item := Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Level:     level,
		CreatedAt: time.Now(),
	}
	n.items = append(n.items, item)
	if !n.closed {
		id := item.ID
		n.timers[id] = time.AfterFunc(n.ttl, func() {
			n.Dismiss(id)
		})
	}
	fn := n.onChange
	n.mu.Unlock()

	if fn != nil {
		fn()
	}
	return item
}

// Dismiss removes a notification and cancels its pending expiry. It is a
// no-op for unknown ids, so an expiry firing after a manual dismissal
// cannot remove anything twice.
func (n *Notifier) Dismiss(id string) bool {
	n.mu.Lock()

	if t, ok := n.timers[id]; ok {
		t.Stop()
		delete(n.timers, id)
	}
	removed := false
	for i := range n.items {
		if n.items[i].ID == id {
			n.items = append(n.items[:i], n.items[i+1:]...)
			removed = true
			break
		}
	}
	fn := n.onChange
	n.mu.Unlock()

	if removed && fn != nil {
		fn()
	}
	return removed
}

// Notifications returns a copy of the live queue in enqueue order.
func (n *Notifier) Notifications() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]Notification, len(n.items))
	copy(out, n.items)
	return out
}

// Close stops all pending timers. Notifications pushed afterwards never
// expire on their own.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.closed = true
	for id, t := range n.timers {
		t.Stop()
		delete(n.timers, id)
	}
}
